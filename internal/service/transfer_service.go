package service

import (
	"context"
	"errors"

	"cwtoken-orchestrator/internal/core/domain"
	"cwtoken-orchestrator/internal/core/ports"
	"cwtoken-orchestrator/pkg/apperror"

	"github.com/ethereum/go-ethereum/common"
	"github.com/rs/zerolog"
)

// TransferServiceImpl implements ports.TransferService.
type TransferServiceImpl struct {
	wrapperR ports.WrapperReader
	wrapperW ports.WrapperWriter
	compute  ports.ConfidentialCompute
	session  ports.Session
	log      zerolog.Logger
}

// NewTransferService creates a new TransferServiceImpl.
func NewTransferService(
	wrapperR ports.WrapperReader,
	wrapperW ports.WrapperWriter,
	compute ports.ConfidentialCompute,
	session ports.Session,
	log zerolog.Logger,
) *TransferServiceImpl {
	return &TransferServiceImpl{
		wrapperR: wrapperR,
		wrapperW: wrapperW,
		compute:  compute,
		session:  session,
		log:      log,
	}
}

// Transfer submits a confidential transfer of amount to recipient. The
// encrypted input is built fresh for this call and submitted exactly once;
// neither the sender's nor the recipient's resulting balance is learned.
func (s *TransferServiceImpl) Transfer(ctx context.Context, recipient, amount string) error {
	if !s.session.Active() {
		return apperror.ErrNotConnected()
	}
	if !common.IsHexAddress(recipient) {
		return apperror.ErrInvalidRecipient(recipient)
	}
	units, err := domain.ParseUnits(amount)
	if err != nil || units.Sign() <= 0 {
		return apperror.ErrInvalidAmount()
	}

	sender := s.session.Account()

	handle, err := s.wrapperR.EncryptedBalanceOf(ctx, sender)
	if err != nil {
		return apperror.ErrBalanceQueryFailed("encrypted balance", err)
	}
	if handle.IsZero() {
		return apperror.ErrNoEncryptedBalance()
	}

	input, err := s.compute.EncryptAmount(ctx, units)
	if err != nil {
		return apperror.ErrEncryptionFailed(err)
	}
	if !input.Complete() {
		return apperror.ErrEncryptionFailed(errors.New("compute service returned incomplete ciphertext/proof pair"))
	}

	result, err := s.wrapperW.EncryptedTransfer(ctx, common.HexToAddress(recipient), input)
	if err != nil {
		return apperror.ErrTransactionRejected("encrypted transfer", err)
	}

	s.log.Info().
		Str("tx", result.Hash.Hex()).
		Str("from", sender.Hex()).
		Str("to", recipient).
		Msg("confidential transfer confirmed")

	return nil
}
