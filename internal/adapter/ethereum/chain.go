package ethereum

import (
	"context"
	"fmt"
	"math/big"
)

// Chain exposes chain coordinates. It implements ports.ChainReader.
type Chain struct {
	client *Client
}

func NewChain(client *Client) *Chain {
	return &Chain{client: client}
}

func (c *Chain) BlockNumber(ctx context.Context) (uint64, error) {
	head, err := c.client.eth.BlockNumber(ctx)
	if err != nil {
		return 0, fmt.Errorf("fetch chain height: %w", err)
	}
	return head, nil
}

func (c *Chain) BlockTime(ctx context.Context, number uint64) (uint64, error) {
	header, err := c.client.eth.HeaderByNumber(ctx, new(big.Int).SetUint64(number))
	if err != nil {
		return 0, fmt.Errorf("fetch header %d: %w", number, err)
	}
	return header.Time, nil
}
