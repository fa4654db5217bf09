package ports

import (
	"context"
	"math/big"

	"cwtoken-orchestrator/internal/core/domain"

	"github.com/ethereum/go-ethereum/common"
)

//go:generate mockgen -source=services.go -destination=mocks/services.go -package=mocks

// BalanceService reads an account's public balance and encrypted handle.
// Reads have no side effects and never return partial results.
type BalanceService interface {
	ReadPublicBalance(ctx context.Context, account common.Address) (string, error)
	ReadEncryptedHandle(ctx context.Context, account common.Address) (domain.EncryptedHandle, error)
	// ReadBoth fetches both concurrently; it fails if either side fails.
	ReadBoth(ctx context.Context, account common.Address) (*domain.Balances, error)
}

// DecryptService obtains the user-authorized plaintext for a handle.
type DecryptService interface {
	Decrypt(ctx context.Context, handle domain.EncryptedHandle) (*big.Int, error)
}

// DepositService moves public balance into the encrypted representation.
type DepositService interface {
	Deposit(ctx context.Context, amount string) error
}

// WithdrawService runs the two-phase withdrawal protocol.
type WithdrawService interface {
	Withdraw(ctx context.Context, amount string) error
	// RequestState surfaces a withdrawal request so callers can inspect
	// requests stuck between creation and finalization.
	RequestState(ctx context.Context, requestID common.Hash) (*domain.WithdrawalRequest, error)
}

// TransferService submits confidential transfers.
type TransferService interface {
	Transfer(ctx context.Context, recipient, amount string) error
}

// HistoryService reconstructs the account's transaction history from
// event logs within the configured block window.
type HistoryService interface {
	FetchHistory(ctx context.Context, account common.Address) ([]domain.TransactionRecord, error)
}
