package service

import (
	"context"

	"cwtoken-orchestrator/internal/core/domain"
	"cwtoken-orchestrator/internal/core/ports"
	"cwtoken-orchestrator/pkg/apperror"

	"github.com/ethereum/go-ethereum/common"
	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"
)

// BalanceServiceImpl implements ports.BalanceService.
type BalanceServiceImpl struct {
	token   ports.TokenReader
	wrapper ports.WrapperReader
	session ports.Session
	log     zerolog.Logger
}

// NewBalanceService creates a new BalanceServiceImpl.
func NewBalanceService(
	token ports.TokenReader,
	wrapper ports.WrapperReader,
	session ports.Session,
	log zerolog.Logger,
) *BalanceServiceImpl {
	return &BalanceServiceImpl{
		token:   token,
		wrapper: wrapper,
		session: session,
		log:     log,
	}
}

// ReadPublicBalance returns the public-token balance as a decimal string.
func (s *BalanceServiceImpl) ReadPublicBalance(ctx context.Context, account common.Address) (string, error) {
	if s.session.State() == domain.Disconnected {
		return "", apperror.ErrNotConnected()
	}

	balance, err := s.token.BalanceOf(ctx, account)
	if err != nil {
		return "", apperror.ErrBalanceQueryFailed("public balance", err)
	}
	return domain.FormatUnits(balance), nil
}

// ReadEncryptedHandle returns the account's current encrypted-balance handle.
func (s *BalanceServiceImpl) ReadEncryptedHandle(ctx context.Context, account common.Address) (domain.EncryptedHandle, error) {
	if s.session.State() == domain.Disconnected {
		return domain.EncryptedHandle{}, apperror.ErrNotConnected()
	}

	handle, err := s.wrapper.EncryptedBalanceOf(ctx, account)
	if err != nil {
		return domain.EncryptedHandle{}, apperror.ErrBalanceQueryFailed("encrypted balance", err)
	}
	return handle, nil
}

// ReadBoth fetches the public balance and the encrypted handle
// concurrently. Either failure fails the pair; no partial result escapes.
func (s *BalanceServiceImpl) ReadBoth(ctx context.Context, account common.Address) (*domain.Balances, error) {
	if s.session.State() == domain.Disconnected {
		return nil, apperror.ErrNotConnected()
	}

	var out domain.Balances
	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		balance, err := s.token.BalanceOf(gctx, account)
		if err != nil {
			return apperror.ErrBalanceQueryFailed("public balance", err)
		}
		out.Public = domain.FormatUnits(balance)
		return nil
	})
	g.Go(func() error {
		handle, err := s.wrapper.EncryptedBalanceOf(gctx, account)
		if err != nil {
			return apperror.ErrBalanceQueryFailed("encrypted balance", err)
		}
		out.Handle = handle
		return nil
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return &out, nil
}
