package service

import (
	"context"

	"cwtoken-orchestrator/internal/core/domain"
	"cwtoken-orchestrator/internal/core/ports"
	"cwtoken-orchestrator/pkg/apperror"

	"github.com/ethereum/go-ethereum/common"
	"github.com/rs/zerolog"
)

// DepositServiceImpl implements ports.DepositService.
type DepositServiceImpl struct {
	tokenR   ports.TokenReader
	tokenW   ports.TokenWriter
	wrapperW ports.WrapperWriter
	session  ports.Session
	spender  common.Address // the wrapper contract receiving the allowance
	log      zerolog.Logger
}

// NewDepositService creates a new DepositServiceImpl.
func NewDepositService(
	tokenR ports.TokenReader,
	tokenW ports.TokenWriter,
	wrapperW ports.WrapperWriter,
	session ports.Session,
	spender common.Address,
	log zerolog.Logger,
) *DepositServiceImpl {
	return &DepositServiceImpl{
		tokenR:   tokenR,
		tokenW:   tokenW,
		wrapperW: wrapperW,
		session:  session,
		spender:  spender,
		log:      log,
	}
}

// Deposit moves amount of public balance into the encrypted representation.
// Steps are strictly sequential ledger writes: read balance, top up the
// allowance if short, then deposit-and-encrypt. Each write confirms before
// the next begins, and a failed approval aborts before the deposit.
func (s *DepositServiceImpl) Deposit(ctx context.Context, amount string) error {
	if !s.session.Active() {
		return apperror.ErrNotConnected()
	}
	units, err := domain.ParseUnits(amount)
	if err != nil || units.Sign() <= 0 {
		return apperror.ErrInvalidAmount()
	}

	account := s.session.Account()

	// Step 1: the public balance must cover the deposit.
	balance, err := s.tokenR.BalanceOf(ctx, account)
	if err != nil {
		return apperror.ErrBalanceQueryFailed("public balance", err)
	}
	if balance.Cmp(units) < 0 {
		return apperror.ErrInsufficientBalance(domain.FormatUnits(balance), amount)
	}

	// Step 2: top up the wrapper's allowance only when short.
	allowance, err := s.tokenR.Allowance(ctx, account, s.spender)
	if err != nil {
		return apperror.ErrBalanceQueryFailed("allowance", err)
	}
	if allowance.Cmp(units) < 0 {
		s.log.Info().
			Str("allowance", domain.FormatUnits(allowance)).
			Str("amount", amount).
			Msg("allowance short, approving")

		result, err := s.tokenW.Approve(ctx, s.spender, units)
		if err != nil {
			return apperror.ErrTransactionRejected("approve", err)
		}
		s.log.Info().Str("tx", result.Hash.Hex()).Msg("approve confirmed")
	}

	// Step 3: deposit and encrypt.
	result, err := s.wrapperW.DepositAndEncrypt(ctx, units)
	if err != nil {
		return apperror.ErrTransactionRejected("deposit", err)
	}

	s.log.Info().
		Str("tx", result.Hash.Hex()).
		Str("account", account.Hex()).
		Str("amount", amount).
		Msg("deposit confirmed")

	return nil
}
