package ports

import (
	"context"
	"math/big"

	"cwtoken-orchestrator/internal/core/domain"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
)

//go:generate mockgen -source=gateway.go -destination=mocks/gateway.go -package=mocks

// TokenReader reads the public ERC20 token.
type TokenReader interface {
	BalanceOf(ctx context.Context, account common.Address) (*big.Int, error)
	Allowance(ctx context.Context, owner, spender common.Address) (*big.Int, error)
}

// TokenWriter submits public-token writes. Methods return only after the
// transaction is confirmed; a returned error may cover submission,
// signing, or an on-ledger revert.
type TokenWriter interface {
	Approve(ctx context.Context, spender common.Address, amount *big.Int) (*domain.TxResult, error)
}

// WrapperReader reads the confidential wrapper contract.
type WrapperReader interface {
	EncryptedBalanceOf(ctx context.Context, account common.Address) (domain.EncryptedHandle, error)
	WithdrawalRequest(ctx context.Context, requestID common.Hash) (*domain.WithdrawalRequest, error)
	IsRequestProcessed(ctx context.Context, requestID common.Hash) (bool, error)
}

// WrapperWriter submits confidential wrapper writes, confirmed before return.
type WrapperWriter interface {
	DepositAndEncrypt(ctx context.Context, amount *big.Int) (*domain.TxResult, error)
	WithdrawAsPlain(ctx context.Context, amount *big.Int) (*domain.TxResult, error)
	FinalizeWithdrawal(ctx context.Context, requestID common.Hash, requester common.Address, amount, actualBalance *big.Int) (*domain.TxResult, error)
	EncryptedTransfer(ctx context.Context, recipient common.Address, input *domain.EncryptedInput) (*domain.TxResult, error)
}

// ChainReader exposes chain coordinates needed by the history aggregator.
type ChainReader interface {
	BlockNumber(ctx context.Context) (uint64, error)
	BlockTime(ctx context.Context, number uint64) (uint64, error)
}

// WrapperFilterer queries and decodes the wrapper's emitted events.
type WrapperFilterer interface {
	FilterDeposits(ctx context.Context, user common.Address, fromBlock, toBlock uint64) ([]domain.DepositEvent, error)
	FilterWithdrawals(ctx context.Context, user common.Address, fromBlock, toBlock uint64) ([]domain.WithdrawEvent, error)
	FilterWithdrawalRequests(ctx context.Context, user common.Address, fromBlock, toBlock uint64) ([]domain.WithdrawalRequestedEvent, error)
	FilterTransfersFrom(ctx context.Context, sender common.Address, fromBlock, toBlock uint64) ([]domain.TransferEvent, error)
	FilterTransfersTo(ctx context.Context, recipient common.Address, fromBlock, toBlock uint64) ([]domain.TransferEvent, error)

	// ParseWithdrawalRequested decodes a single receipt log. The second
	// return is false when the log is some other event.
	ParseWithdrawalRequested(log types.Log) (*domain.WithdrawalRequestedEvent, bool)
}
