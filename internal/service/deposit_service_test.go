package service

import (
	"context"
	"errors"
	"math/big"
	"testing"

	"cwtoken-orchestrator/internal/core/domain"
	"cwtoken-orchestrator/internal/core/ports/mocks"

	"github.com/ethereum/go-ethereum/common"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

var wrapperAddr = common.HexToAddress("0x9A676e781A523b5d0C0e43731313A708CB607508")

type depositTestDeps struct {
	svc      *DepositServiceImpl
	tokenR   *mocks.MockTokenReader
	tokenW   *mocks.MockTokenWriter
	wrapperW *mocks.MockWrapperWriter
	session  *mocks.MockSession
	ctrl     *gomock.Controller
}

func setupDepositService(t *testing.T) *depositTestDeps {
	ctrl := gomock.NewController(t)
	d := &depositTestDeps{
		tokenR:   mocks.NewMockTokenReader(ctrl),
		tokenW:   mocks.NewMockTokenWriter(ctrl),
		wrapperW: mocks.NewMockWrapperWriter(ctrl),
		session:  mocks.NewMockSession(ctrl),
		ctrl:     ctrl,
	}
	d.svc = NewDepositService(d.tokenR, d.tokenW, d.wrapperW, d.session, wrapperAddr, zerolog.Nop())
	return d
}

func units(s string) *big.Int {
	v, err := domain.ParseUnits(s)
	if err != nil {
		panic(err)
	}
	return v
}

func confirmed(hexHash string) *domain.TxResult {
	return &domain.TxResult{Hash: common.HexToHash(hexHash), BlockNumber: 100}
}

func TestDepositService_Success_AllowanceSufficient(t *testing.T) {
	d := setupDepositService(t)
	defer d.ctrl.Finish()

	ctx := context.Background()
	d.session.EXPECT().Active().Return(true)
	d.session.EXPECT().Account().Return(testAccount)
	d.tokenR.EXPECT().BalanceOf(ctx, testAccount).Return(units("100"), nil)
	d.tokenR.EXPECT().Allowance(ctx, testAccount, wrapperAddr).Return(units("100"), nil)
	// Allowance already covers the amount: no Approve expected.
	d.wrapperW.EXPECT().DepositAndEncrypt(ctx, units("25")).Return(confirmed("0x01"), nil)

	err := d.svc.Deposit(ctx, "25")
	require.NoError(t, err)
}

func TestDepositService_Success_AllowanceShortTriggersApprove(t *testing.T) {
	d := setupDepositService(t)
	defer d.ctrl.Finish()

	ctx := context.Background()
	d.session.EXPECT().Active().Return(true)
	d.session.EXPECT().Account().Return(testAccount)
	d.tokenR.EXPECT().BalanceOf(ctx, testAccount).Return(units("100"), nil)
	d.tokenR.EXPECT().Allowance(ctx, testAccount, wrapperAddr).Return(units("10"), nil)

	// The approval must confirm before the deposit is submitted.
	gomock.InOrder(
		d.tokenW.EXPECT().Approve(ctx, wrapperAddr, units("25")).Return(confirmed("0x01"), nil),
		d.wrapperW.EXPECT().DepositAndEncrypt(ctx, units("25")).Return(confirmed("0x02"), nil),
	)

	err := d.svc.Deposit(ctx, "25")
	require.NoError(t, err)
}

// Malformed and non-positive amounts are rejected before any network call;
// no mock expectations beyond the session check are registered.
func TestDepositService_InvalidAmount(t *testing.T) {
	for _, amount := range []string{"", "abc", "0", "-5", "1.0000000000000000001"} {
		t.Run(amount, func(t *testing.T) {
			d := setupDepositService(t)
			defer d.ctrl.Finish()

			d.session.EXPECT().Active().Return(true)

			err := d.svc.Deposit(context.Background(), amount)
			assertAppError(t, err, "VAL_001")
		})
	}
}

func TestDepositService_NotConnected(t *testing.T) {
	d := setupDepositService(t)
	defer d.ctrl.Finish()

	d.session.EXPECT().Active().Return(false)

	err := d.svc.Deposit(context.Background(), "25")
	assertAppError(t, err, "CONN_001")
}

func TestDepositService_InsufficientBalance(t *testing.T) {
	d := setupDepositService(t)
	defer d.ctrl.Finish()

	ctx := context.Background()
	d.session.EXPECT().Active().Return(true)
	d.session.EXPECT().Account().Return(testAccount)
	d.tokenR.EXPECT().BalanceOf(ctx, testAccount).Return(units("10"), nil)

	err := d.svc.Deposit(ctx, "25")
	assertAppError(t, err, "BAL_001")
	assert.Contains(t, err.Error(), "have 10")
	assert.Contains(t, err.Error(), "want 25")
}

func TestDepositService_ApproveFailureAbortsDeposit(t *testing.T) {
	d := setupDepositService(t)
	defer d.ctrl.Finish()

	ctx := context.Background()
	d.session.EXPECT().Active().Return(true)
	d.session.EXPECT().Account().Return(testAccount)
	d.tokenR.EXPECT().BalanceOf(ctx, testAccount).Return(units("100"), nil)
	d.tokenR.EXPECT().Allowance(ctx, testAccount, wrapperAddr).Return(units("0"), nil)
	d.tokenW.EXPECT().Approve(ctx, wrapperAddr, units("25")).Return(nil, errors.New("user rejected"))
	// DepositAndEncrypt must not be called after a failed approval.

	err := d.svc.Deposit(ctx, "25")
	assertAppError(t, err, "CHAIN_001")
	assert.Contains(t, err.Error(), "approve")
}

func TestDepositService_DepositRejected(t *testing.T) {
	d := setupDepositService(t)
	defer d.ctrl.Finish()

	ctx := context.Background()
	d.session.EXPECT().Active().Return(true)
	d.session.EXPECT().Account().Return(testAccount)
	d.tokenR.EXPECT().BalanceOf(ctx, testAccount).Return(units("100"), nil)
	d.tokenR.EXPECT().Allowance(ctx, testAccount, wrapperAddr).Return(units("100"), nil)
	d.wrapperW.EXPECT().DepositAndEncrypt(ctx, units("25")).Return(nil, errors.New("execution reverted"))

	err := d.svc.Deposit(ctx, "25")
	assertAppError(t, err, "CHAIN_001")
	assert.Contains(t, err.Error(), "deposit")
}

func TestDepositService_AllowanceQueryFailure(t *testing.T) {
	d := setupDepositService(t)
	defer d.ctrl.Finish()

	ctx := context.Background()
	d.session.EXPECT().Active().Return(true)
	d.session.EXPECT().Account().Return(testAccount)
	d.tokenR.EXPECT().BalanceOf(ctx, testAccount).Return(units("100"), nil)
	d.tokenR.EXPECT().Allowance(ctx, testAccount, wrapperAddr).Return(nil, errors.New("rpc timeout"))

	err := d.svc.Deposit(ctx, "25")
	assertAppError(t, err, "BAL_003")
}
