package service

import (
	"context"
	"errors"
	"math/big"
	"testing"

	"cwtoken-orchestrator/internal/core/domain"
	"cwtoken-orchestrator/internal/core/ports/mocks"
	"cwtoken-orchestrator/pkg/apperror"

	"github.com/ethereum/go-ethereum/common"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

var testAccount = common.HexToAddress("0x70997970C51812dc3A010C7d01b50e0d17dc79C8")

type balanceTestDeps struct {
	svc     *BalanceServiceImpl
	token   *mocks.MockTokenReader
	wrapper *mocks.MockWrapperReader
	session *mocks.MockSession
	ctrl    *gomock.Controller
}

func setupBalanceService(t *testing.T) *balanceTestDeps {
	ctrl := gomock.NewController(t)
	d := &balanceTestDeps{
		token:   mocks.NewMockTokenReader(ctrl),
		wrapper: mocks.NewMockWrapperReader(ctrl),
		session: mocks.NewMockSession(ctrl),
		ctrl:    ctrl,
	}
	d.svc = NewBalanceService(d.token, d.wrapper, d.session, zerolog.Nop())
	return d
}

func TestBalanceService_ReadPublicBalance_Success(t *testing.T) {
	d := setupBalanceService(t)
	defer d.ctrl.Finish()

	ctx := context.Background()
	// 1.5 tokens at 18 decimals.
	raw, _ := new(big.Int).SetString("1500000000000000000", 10)

	d.session.EXPECT().State().Return(domain.Active)
	d.token.EXPECT().BalanceOf(ctx, testAccount).Return(raw, nil)

	got, err := d.svc.ReadPublicBalance(ctx, testAccount)
	require.NoError(t, err)
	assert.Equal(t, "1.5", got)
}

func TestBalanceService_ReadPublicBalance_Disconnected(t *testing.T) {
	d := setupBalanceService(t)
	defer d.ctrl.Finish()

	d.session.EXPECT().State().Return(domain.Disconnected)

	_, err := d.svc.ReadPublicBalance(context.Background(), testAccount)
	assertAppError(t, err, "CONN_001")
}

func TestBalanceService_ReadPublicBalance_QueryFailure(t *testing.T) {
	d := setupBalanceService(t)
	defer d.ctrl.Finish()

	ctx := context.Background()
	d.session.EXPECT().State().Return(domain.Active)
	d.token.EXPECT().BalanceOf(ctx, testAccount).Return(nil, errors.New("rpc timeout"))

	_, err := d.svc.ReadPublicBalance(ctx, testAccount)
	assertAppError(t, err, "BAL_003")
	assert.Contains(t, err.Error(), "rpc timeout")
}

func TestBalanceService_ReadEncryptedHandle_Success(t *testing.T) {
	d := setupBalanceService(t)
	defer d.ctrl.Finish()

	ctx := context.Background()
	handle := domain.EncryptedHandle(common.HexToHash("0xabc1"))

	d.session.EXPECT().State().Return(domain.ConnectedNotReady)
	d.wrapper.EXPECT().EncryptedBalanceOf(ctx, testAccount).Return(handle, nil)

	got, err := d.svc.ReadEncryptedHandle(ctx, testAccount)
	require.NoError(t, err)
	assert.Equal(t, handle, got)
}

func TestBalanceService_ReadEncryptedHandle_QueryFailure(t *testing.T) {
	d := setupBalanceService(t)
	defer d.ctrl.Finish()

	ctx := context.Background()
	d.session.EXPECT().State().Return(domain.Active)
	d.wrapper.EXPECT().EncryptedBalanceOf(ctx, testAccount).
		Return(domain.EncryptedHandle{}, errors.New("contract call reverted"))

	_, err := d.svc.ReadEncryptedHandle(ctx, testAccount)
	assertAppError(t, err, "BAL_003")
}

func TestBalanceService_ReadBoth_Success(t *testing.T) {
	d := setupBalanceService(t)
	defer d.ctrl.Finish()

	handle := domain.EncryptedHandle(common.HexToHash("0xdead"))

	d.session.EXPECT().State().Return(domain.Active)
	d.token.EXPECT().BalanceOf(gomock.Any(), testAccount).Return(big.NewInt(0), nil)
	d.wrapper.EXPECT().EncryptedBalanceOf(gomock.Any(), testAccount).Return(handle, nil)

	got, err := d.svc.ReadBoth(context.Background(), testAccount)
	require.NoError(t, err)
	assert.Equal(t, "0", got.Public)
	assert.Equal(t, handle, got.Handle)
}

func TestBalanceService_ReadBoth_EitherFailureFailsThePair(t *testing.T) {
	d := setupBalanceService(t)
	defer d.ctrl.Finish()

	d.session.EXPECT().State().Return(domain.Active)
	d.token.EXPECT().BalanceOf(gomock.Any(), testAccount).Return(big.NewInt(1), nil).AnyTimes()
	d.wrapper.EXPECT().EncryptedBalanceOf(gomock.Any(), testAccount).
		Return(domain.EncryptedHandle{}, errors.New("node unreachable"))

	got, err := d.svc.ReadBoth(context.Background(), testAccount)
	assertAppError(t, err, "BAL_003")
	assert.Nil(t, got)
}

func TestBalanceService_ReadBoth_Disconnected(t *testing.T) {
	d := setupBalanceService(t)
	defer d.ctrl.Finish()

	d.session.EXPECT().State().Return(domain.Disconnected)

	_, err := d.svc.ReadBoth(context.Background(), testAccount)
	assertAppError(t, err, "CONN_001")
}

// Reads are idempotent: repeating the same read issues the same calls and
// returns the same value with no state carried between calls.
func TestBalanceService_ReadPublicBalance_Idempotent(t *testing.T) {
	d := setupBalanceService(t)
	defer d.ctrl.Finish()

	ctx := context.Background()
	d.session.EXPECT().State().Return(domain.Active).Times(2)
	d.token.EXPECT().BalanceOf(ctx, testAccount).Return(big.NewInt(42), nil).Times(2)

	first, err := d.svc.ReadPublicBalance(ctx, testAccount)
	require.NoError(t, err)
	second, err := d.svc.ReadPublicBalance(ctx, testAccount)
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

func assertAppError(t *testing.T, err error, expectedCode string) {
	t.Helper()
	var appErr *apperror.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, expectedCode, appErr.Code)
}
