package ethereum

import (
	"context"
	"crypto/ecdsa"
	"fmt"
	"math/big"

	"cwtoken-orchestrator/internal/core/domain"

	ethereum "github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/accounts/abi/bind"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/ethereum/go-ethereum/ethclient"
	"github.com/rs/zerolog"
)

// Client wraps an RPC connection with the signing key used for all
// submitted transactions. Contract bindings in this package share one
// Client so nonce management stays in a single place (the node's pending
// pool; submissions are sequential by construction of the workflows).
type Client struct {
	eth     *ethclient.Client
	chainID *big.Int
	key     *ecdsa.PrivateKey
	from    common.Address
	log     zerolog.Logger
}

// NewClient wires an already-dialed RPC client with the session key.
func NewClient(eth *ethclient.Client, chainID int64, key *ecdsa.PrivateKey, log zerolog.Logger) *Client {
	return &Client{
		eth:     eth,
		chainID: big.NewInt(chainID),
		key:     key,
		from:    crypto.PubkeyToAddress(key.PublicKey),
		log:     log,
	}
}

// From is the transaction sender address derived from the signing key.
func (c *Client) From() common.Address {
	return c.from
}

// call performs a read-only contract call and returns the unpacked outputs.
func (c *Client) call(ctx context.Context, to common.Address, contractABI abi.ABI, method string, args ...interface{}) ([]interface{}, error) {
	data, err := contractABI.Pack(method, args...)
	if err != nil {
		return nil, fmt.Errorf("pack %s: %w", method, err)
	}

	msg := ethereum.CallMsg{From: c.from, To: &to, Data: data}
	out, err := c.eth.CallContract(ctx, msg, nil)
	if err != nil {
		return nil, fmt.Errorf("call %s: %w", method, err)
	}

	values, err := contractABI.Unpack(method, out)
	if err != nil {
		return nil, fmt.Errorf("unpack %s: %w", method, err)
	}
	return values, nil
}

// transact packs, signs, submits and waits for inclusion. It returns only
// after the receipt is available, and a reverted receipt is an error: the
// confirmation wait is part of the write, not a separate step.
func (c *Client) transact(ctx context.Context, to common.Address, contractABI abi.ABI, method string, args ...interface{}) (*domain.TxResult, error) {
	data, err := contractABI.Pack(method, args...)
	if err != nil {
		return nil, fmt.Errorf("pack %s: %w", method, err)
	}

	nonce, err := c.eth.PendingNonceAt(ctx, c.from)
	if err != nil {
		return nil, fmt.Errorf("fetch nonce: %w", err)
	}
	gasPrice, err := c.eth.SuggestGasPrice(ctx)
	if err != nil {
		return nil, fmt.Errorf("suggest gas price: %w", err)
	}

	// Estimation doubles as a pre-flight: a call that would revert fails
	// here instead of burning gas on a doomed submission.
	gasLimit, err := c.eth.EstimateGas(ctx, ethereum.CallMsg{
		From:     c.from,
		To:       &to,
		GasPrice: gasPrice,
		Data:     data,
	})
	if err != nil {
		return nil, fmt.Errorf("estimate gas for %s: %w", method, err)
	}
	gasLimit = gasLimit * 120 / 100

	tx := types.NewTx(&types.LegacyTx{
		Nonce:    nonce,
		To:       &to,
		Value:    big.NewInt(0),
		Gas:      gasLimit,
		GasPrice: gasPrice,
		Data:     data,
	})
	signed, err := types.SignTx(tx, types.LatestSignerForChainID(c.chainID), c.key)
	if err != nil {
		return nil, fmt.Errorf("sign %s: %w", method, err)
	}

	if err := c.eth.SendTransaction(ctx, signed); err != nil {
		return nil, fmt.Errorf("send %s: %w", method, err)
	}

	c.log.Debug().
		Str("method", method).
		Str("tx", signed.Hash().Hex()).
		Uint64("nonce", nonce).
		Msg("transaction submitted, waiting for inclusion")

	receipt, err := bind.WaitMined(ctx, c.eth, signed)
	if err != nil {
		return nil, fmt.Errorf("wait for %s: %w", method, err)
	}
	if receipt.Status != types.ReceiptStatusSuccessful {
		return nil, fmt.Errorf("%s reverted in block %d (tx %s)", method, receipt.BlockNumber.Uint64(), signed.Hash().Hex())
	}

	logs := make([]types.Log, 0, len(receipt.Logs))
	for _, lg := range receipt.Logs {
		logs = append(logs, *lg)
	}
	return &domain.TxResult{
		Hash:        signed.Hash(),
		BlockNumber: receipt.BlockNumber.Uint64(),
		GasUsed:     receipt.GasUsed,
		Logs:        logs,
	}, nil
}
