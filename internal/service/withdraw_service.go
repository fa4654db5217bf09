package service

import (
	"context"

	"cwtoken-orchestrator/internal/core/domain"
	"cwtoken-orchestrator/internal/core/ports"
	"cwtoken-orchestrator/pkg/apperror"

	"github.com/ethereum/go-ethereum/common"
	"github.com/rs/zerolog"
)

// WithdrawServiceImpl implements ports.WithdrawService: the two-phase
// withdrawal protocol. Phase one creates an on-ledger request; phase two
// decrypts the requester's true balance off the critical path, validates
// it client-side (the ledger cannot compare against ciphertext), and
// finalizes through the contract callback.
type WithdrawServiceImpl struct {
	wrapperR ports.WrapperReader
	wrapperW ports.WrapperWriter
	filterer ports.WrapperFilterer
	decrypt  ports.DecryptService
	session  ports.Session
	log      zerolog.Logger
}

// NewWithdrawService creates a new WithdrawServiceImpl.
func NewWithdrawService(
	wrapperR ports.WrapperReader,
	wrapperW ports.WrapperWriter,
	filterer ports.WrapperFilterer,
	decrypt ports.DecryptService,
	session ports.Session,
	log zerolog.Logger,
) *WithdrawServiceImpl {
	return &WithdrawServiceImpl{
		wrapperR: wrapperR,
		wrapperW: wrapperW,
		filterer: filterer,
		decrypt:  decrypt,
		session:  session,
		log:      log,
	}
}

// Withdraw runs the protocol to completion or aborts at the failing step.
// No compensating transaction is issued on abort: a request left without
// finalization is an externally visible pending state, inspectable via
// RequestState, not something to roll back client-side.
func (s *WithdrawServiceImpl) Withdraw(ctx context.Context, amount string) error {
	if !s.session.Active() {
		return apperror.ErrNotConnected()
	}
	units, err := domain.ParseUnits(amount)
	if err != nil || units.Sign() <= 0 {
		return apperror.ErrInvalidAmount()
	}

	requester := s.session.Account()

	// Phase 1: create the withdrawal request and recover its id from the
	// confirmed receipt. A receipt without the request event means the
	// deployed contract does not speak this protocol; never retried.
	result, err := s.wrapperW.WithdrawAsPlain(ctx, units)
	if err != nil {
		return apperror.ErrTransactionRejected("withdrawal request", err)
	}

	var request *domain.WithdrawalRequestedEvent
	for _, lg := range result.Logs {
		if ev, ok := s.filterer.ParseWithdrawalRequested(lg); ok {
			request = ev
			break
		}
	}
	if request == nil {
		s.log.Error().Str("tx", result.Hash.Hex()).Msg("confirmed receipt missing withdrawal request event")
		return apperror.ErrRequestEventMissing()
	}

	s.log.Info().
		Str("request_id", request.RequestID.Hex()).
		Str("tx", result.Hash.Hex()).
		Str("amount", amount).
		Msg("withdrawal requested")

	// Phase 2: decrypt the requester's true balance. The handle is read
	// after the request confirmed, so the decryption postdates the request.
	handle, err := s.wrapperR.EncryptedBalanceOf(ctx, requester)
	if err != nil {
		return apperror.ErrBalanceQueryFailed("encrypted balance", err)
	}
	if handle.IsZero() {
		return apperror.ErrNoEncryptedBalance()
	}

	actual, err := s.decrypt.Decrypt(ctx, handle)
	if err != nil {
		return err
	}

	if actual.Cmp(units) < 0 {
		return apperror.ErrInsufficientBalance(domain.FormatUnits(actual), amount)
	}

	// Finalize with the decrypted actual balance.
	final, err := s.wrapperW.FinalizeWithdrawal(ctx, request.RequestID, requester, units, actual)
	if err != nil {
		return apperror.ErrTransactionRejected("withdrawal finalization", err)
	}

	s.log.Info().
		Str("request_id", request.RequestID.Hex()).
		Str("tx", final.Hash.Hex()).
		Msg("withdrawal finalized")

	return nil
}

// RequestState returns the on-ledger view of a withdrawal request so
// callers can find requests stuck before finalization and retry manually.
func (s *WithdrawServiceImpl) RequestState(ctx context.Context, requestID common.Hash) (*domain.WithdrawalRequest, error) {
	if s.session.State() == domain.Disconnected {
		return nil, apperror.ErrNotConnected()
	}
	request, err := s.wrapperR.WithdrawalRequest(ctx, requestID)
	if err != nil {
		return nil, apperror.ErrBalanceQueryFailed("withdrawal request", err)
	}
	return request, nil
}
