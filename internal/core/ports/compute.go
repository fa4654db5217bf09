package ports

import (
	"context"
	"math/big"

	"cwtoken-orchestrator/internal/core/domain"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/signer/core/apitypes"
)

//go:generate mockgen -source=compute.go -destination=mocks/compute.go -package=mocks

// ConfidentialCompute is the off-chain service performing client-side
// encryption with proof generation and authorized decryption. Both calls
// are bound to the wrapper contract and the session account held by the
// implementation.
type ConfidentialCompute interface {
	// EncryptAmount produces a single-use ciphertext+proof for amount.
	EncryptAmount(ctx context.Context, amount *big.Int) (*domain.EncryptedInput, error)
	// DecryptHandle performs the authorization handshake (EIP-712 typed
	// signature over the handle/contract/account binding) and returns the
	// plaintext value.
	DecryptHandle(ctx context.Context, handle domain.EncryptedHandle) (*big.Int, error)
}

// Signer is the session's signing identity.
type Signer interface {
	Address() common.Address
	SignTypedData(typedData apitypes.TypedData) ([]byte, error)
}

// Session exposes the connection lifecycle to workflows and the poller.
type Session interface {
	State() domain.SessionState
	// Active is shorthand for State() == domain.Active.
	Active() bool
	Account() common.Address
	// Subscribe registers a callback invoked on every state change.
	Subscribe(fn func(domain.SessionState))
}
