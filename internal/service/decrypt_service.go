package service

import (
	"context"
	"math/big"

	"cwtoken-orchestrator/internal/core/domain"
	"cwtoken-orchestrator/internal/core/ports"
	"cwtoken-orchestrator/pkg/apperror"

	"github.com/rs/zerolog"
)

// DecryptServiceImpl implements ports.DecryptService.
type DecryptServiceImpl struct {
	compute ports.ConfidentialCompute
	session ports.Session
	log     zerolog.Logger
}

// NewDecryptService creates a new DecryptServiceImpl.
func NewDecryptService(compute ports.ConfidentialCompute, session ports.Session, log zerolog.Logger) *DecryptServiceImpl {
	return &DecryptServiceImpl{compute: compute, session: session, log: log}
}

// Decrypt obtains the user-authorized plaintext for handle. The value is
// current only as of the moment of decryption; callers must re-decrypt
// rather than assume it stays valid.
func (s *DecryptServiceImpl) Decrypt(ctx context.Context, handle domain.EncryptedHandle) (*big.Int, error) {
	if handle.IsZero() || !s.session.Active() {
		return nil, apperror.ErrInvalidDecryptionInput()
	}

	value, err := s.compute.DecryptHandle(ctx, handle)
	if err != nil {
		return nil, apperror.ErrDecryptionFailed(err)
	}

	s.log.Debug().
		Str("handle", handle.Hex()).
		Str("account", s.session.Account().Hex()).
		Msg("balance decrypted")

	return value, nil
}
