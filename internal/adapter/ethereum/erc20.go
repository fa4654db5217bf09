package ethereum

import (
	"context"
	"fmt"
	"math/big"

	"cwtoken-orchestrator/internal/core/domain"

	"github.com/ethereum/go-ethereum/common"
)

// ERC20 binds the public token contract. It implements ports.TokenReader
// and ports.TokenWriter.
type ERC20 struct {
	client *Client
	addr   common.Address
}

func NewERC20(client *Client, addr common.Address) *ERC20 {
	return &ERC20{client: client, addr: addr}
}

func (t *ERC20) BalanceOf(ctx context.Context, account common.Address) (*big.Int, error) {
	out, err := t.client.call(ctx, t.addr, erc20ABI, "balanceOf", account)
	if err != nil {
		return nil, err
	}
	balance, ok := out[0].(*big.Int)
	if !ok {
		return nil, fmt.Errorf("balanceOf returned %T, want *big.Int", out[0])
	}
	return balance, nil
}

func (t *ERC20) Allowance(ctx context.Context, owner, spender common.Address) (*big.Int, error) {
	out, err := t.client.call(ctx, t.addr, erc20ABI, "allowance", owner, spender)
	if err != nil {
		return nil, err
	}
	allowance, ok := out[0].(*big.Int)
	if !ok {
		return nil, fmt.Errorf("allowance returned %T, want *big.Int", out[0])
	}
	return allowance, nil
}

func (t *ERC20) Approve(ctx context.Context, spender common.Address, amount *big.Int) (*domain.TxResult, error) {
	return t.client.transact(ctx, t.addr, erc20ABI, "approve", spender, amount)
}
