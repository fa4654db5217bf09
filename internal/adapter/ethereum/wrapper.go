package ethereum

import (
	"context"
	"fmt"
	"math/big"

	"cwtoken-orchestrator/internal/core/domain"

	"github.com/ethereum/go-ethereum/common"
)

// Wrapper binds the confidential wrapper contract. It implements
// ports.WrapperReader and ports.WrapperWriter.
type Wrapper struct {
	client *Client
	addr   common.Address
}

func NewWrapper(client *Client, addr common.Address) *Wrapper {
	return &Wrapper{client: client, addr: addr}
}

// Address is the deployed wrapper address, needed by callers granting it
// a token allowance.
func (w *Wrapper) Address() common.Address {
	return w.addr
}

func (w *Wrapper) EncryptedBalanceOf(ctx context.Context, account common.Address) (domain.EncryptedHandle, error) {
	out, err := w.client.call(ctx, w.addr, wrapperABI, "getEncryptedBalance", account)
	if err != nil {
		return domain.EncryptedHandle{}, err
	}
	raw, ok := out[0].([32]byte)
	if !ok {
		return domain.EncryptedHandle{}, fmt.Errorf("getEncryptedBalance returned %T, want bytes32", out[0])
	}
	return domain.EncryptedHandle(raw), nil
}

func (w *Wrapper) WithdrawalRequest(ctx context.Context, requestID common.Hash) (*domain.WithdrawalRequest, error) {
	out, err := w.client.call(ctx, w.addr, wrapperABI, "withdrawalRequests", [32]byte(requestID))
	if err != nil {
		return nil, err
	}
	if len(out) != 3 {
		return nil, fmt.Errorf("withdrawalRequests returned %d values, want 3", len(out))
	}
	requester, ok1 := out[0].(common.Address)
	amount, ok2 := out[1].(*big.Int)
	processed, ok3 := out[2].(bool)
	if !ok1 || !ok2 || !ok3 {
		return nil, fmt.Errorf("withdrawalRequests returned unexpected types (%T, %T, %T)", out[0], out[1], out[2])
	}
	return &domain.WithdrawalRequest{
		RequestID: requestID,
		Requester: requester,
		Amount:    amount,
		Processed: processed,
	}, nil
}

func (w *Wrapper) IsRequestProcessed(ctx context.Context, requestID common.Hash) (bool, error) {
	out, err := w.client.call(ctx, w.addr, wrapperABI, "isRequestProcessed", [32]byte(requestID))
	if err != nil {
		return false, err
	}
	processed, ok := out[0].(bool)
	if !ok {
		return false, fmt.Errorf("isRequestProcessed returned %T, want bool", out[0])
	}
	return processed, nil
}

func (w *Wrapper) DepositAndEncrypt(ctx context.Context, amount *big.Int) (*domain.TxResult, error) {
	return w.client.transact(ctx, w.addr, wrapperABI, "depositAndEncrypt", amount)
}

func (w *Wrapper) WithdrawAsPlain(ctx context.Context, amount *big.Int) (*domain.TxResult, error) {
	return w.client.transact(ctx, w.addr, wrapperABI, "withdrawAsPlain", amount)
}

func (w *Wrapper) FinalizeWithdrawal(ctx context.Context, requestID common.Hash, requester common.Address, amount, actualBalance *big.Int) (*domain.TxResult, error) {
	return w.client.transact(ctx, w.addr, wrapperABI, "_withdrawCallback", [32]byte(requestID), requester, amount, actualBalance)
}

func (w *Wrapper) EncryptedTransfer(ctx context.Context, recipient common.Address, input *domain.EncryptedInput) (*domain.TxResult, error) {
	return w.client.transact(ctx, w.addr, wrapperABI, "encryptedTransfer", recipient, [32]byte(input.Ciphertext), input.Proof)
}
