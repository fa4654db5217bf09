package ethereum

import (
	"context"
	"fmt"
	"math/big"

	"cwtoken-orchestrator/internal/core/domain"

	ethereum "github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/rs/zerolog"
)

// Filterer queries and decodes the wrapper's emitted events. It implements
// ports.WrapperFilterer.
type Filterer struct {
	client *Client
	addr   common.Address
	log    zerolog.Logger
}

func NewFilterer(client *Client, addr common.Address, log zerolog.Logger) *Filterer {
	return &Filterer{client: client, addr: addr, log: log}
}

func addressTopic(addr common.Address) common.Hash {
	return common.BytesToHash(addr.Bytes())
}

// filter runs one bounded log query. topics comes after the event id and
// follows the usual position semantics: nil entries match anything.
func (f *Filterer) filter(ctx context.Context, event string, fromBlock, toBlock uint64, topics ...[]common.Hash) ([]types.Log, error) {
	query := ethereum.FilterQuery{
		FromBlock: new(big.Int).SetUint64(fromBlock),
		ToBlock:   new(big.Int).SetUint64(toBlock),
		Addresses: []common.Address{f.addr},
		Topics:    append([][]common.Hash{{wrapperABI.Events[event].ID}}, topics...),
	}
	logs, err := f.client.eth.FilterLogs(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("filter %s logs: %w", event, err)
	}
	return logs, nil
}

func (f *Filterer) FilterDeposits(ctx context.Context, user common.Address, fromBlock, toBlock uint64) ([]domain.DepositEvent, error) {
	logs, err := f.filter(ctx, "Deposit", fromBlock, toBlock, []common.Hash{addressTopic(user)})
	if err != nil {
		return nil, err
	}
	out := make([]domain.DepositEvent, 0, len(logs))
	for _, lg := range logs {
		amount, err := unpackAmount("Deposit", lg)
		if err != nil {
			f.log.Warn().Err(err).Str("tx", lg.TxHash.Hex()).Msg("undecodable deposit log skipped")
			continue
		}
		out = append(out, domain.DepositEvent{
			User:   user,
			Amount: amount,
			Meta:   logMeta(lg),
		})
	}
	return out, nil
}

func (f *Filterer) FilterWithdrawals(ctx context.Context, user common.Address, fromBlock, toBlock uint64) ([]domain.WithdrawEvent, error) {
	logs, err := f.filter(ctx, "Withdraw", fromBlock, toBlock, []common.Hash{addressTopic(user)})
	if err != nil {
		return nil, err
	}
	out := make([]domain.WithdrawEvent, 0, len(logs))
	for _, lg := range logs {
		amount, err := unpackAmount("Withdraw", lg)
		if err != nil {
			f.log.Warn().Err(err).Str("tx", lg.TxHash.Hex()).Msg("undecodable withdraw log skipped")
			continue
		}
		out = append(out, domain.WithdrawEvent{
			User:   user,
			Amount: amount,
			Meta:   logMeta(lg),
		})
	}
	return out, nil
}

func (f *Filterer) FilterWithdrawalRequests(ctx context.Context, user common.Address, fromBlock, toBlock uint64) ([]domain.WithdrawalRequestedEvent, error) {
	logs, err := f.filter(ctx, "WithdrawalRequested", fromBlock, toBlock, []common.Hash{addressTopic(user)})
	if err != nil {
		return nil, err
	}
	out := make([]domain.WithdrawalRequestedEvent, 0, len(logs))
	for _, lg := range logs {
		ev, ok := f.ParseWithdrawalRequested(lg)
		if !ok {
			f.log.Warn().Str("tx", lg.TxHash.Hex()).Msg("undecodable withdrawal request log skipped")
			continue
		}
		out = append(out, *ev)
	}
	return out, nil
}

func (f *Filterer) FilterTransfersFrom(ctx context.Context, sender common.Address, fromBlock, toBlock uint64) ([]domain.TransferEvent, error) {
	logs, err := f.filter(ctx, "EncryptedTransfer", fromBlock, toBlock, []common.Hash{addressTopic(sender)})
	if err != nil {
		return nil, err
	}
	return f.decodeTransfers(logs), nil
}

func (f *Filterer) FilterTransfersTo(ctx context.Context, recipient common.Address, fromBlock, toBlock uint64) ([]domain.TransferEvent, error) {
	logs, err := f.filter(ctx, "EncryptedTransfer", fromBlock, toBlock, nil, []common.Hash{addressTopic(recipient)})
	if err != nil {
		return nil, err
	}
	return f.decodeTransfers(logs), nil
}

func (f *Filterer) decodeTransfers(logs []types.Log) []domain.TransferEvent {
	out := make([]domain.TransferEvent, 0, len(logs))
	for _, lg := range logs {
		if len(lg.Topics) != 3 || len(lg.Data) < 32 {
			f.log.Warn().Str("tx", lg.TxHash.Hex()).Msg("undecodable transfer log skipped")
			continue
		}
		out = append(out, domain.TransferEvent{
			From:            common.BytesToAddress(lg.Topics[1].Bytes()),
			To:              common.BytesToAddress(lg.Topics[2].Bytes()),
			EncryptedAmount: common.BytesToHash(lg.Data[:32]),
			Meta:            logMeta(lg),
		})
	}
	return out
}

// ParseWithdrawalRequested decodes a single receipt log; the second return
// is false when the log is some other event or malformed.
func (f *Filterer) ParseWithdrawalRequested(lg types.Log) (*domain.WithdrawalRequestedEvent, bool) {
	if len(lg.Topics) != 2 || lg.Topics[0] != wrapperABI.Events["WithdrawalRequested"].ID {
		return nil, false
	}
	values, err := wrapperABI.Unpack("WithdrawalRequested", lg.Data)
	if err != nil || len(values) != 2 {
		return nil, false
	}
	amount, ok1 := values[0].(*big.Int)
	requestID, ok2 := values[1].([32]byte)
	if !ok1 || !ok2 {
		return nil, false
	}
	return &domain.WithdrawalRequestedEvent{
		User:      common.BytesToAddress(lg.Topics[1].Bytes()),
		Amount:    amount,
		RequestID: common.Hash(requestID),
		Meta:      logMeta(lg),
	}, true
}

func unpackAmount(event string, lg types.Log) (*big.Int, error) {
	values, err := wrapperABI.Unpack(event, lg.Data)
	if err != nil {
		return nil, err
	}
	amount, ok := values[0].(*big.Int)
	if !ok {
		return nil, fmt.Errorf("%s data decoded to %T, want *big.Int", event, values[0])
	}
	return amount, nil
}

func logMeta(lg types.Log) domain.EventMeta {
	return domain.EventMeta{BlockNumber: lg.BlockNumber, TxHash: lg.TxHash}
}
