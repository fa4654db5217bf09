package service

import (
	"context"
	"sort"
	"sync"

	"cwtoken-orchestrator/internal/core/domain"
	"cwtoken-orchestrator/internal/core/ports"
	"cwtoken-orchestrator/pkg/apperror"

	"github.com/ethereum/go-ethereum/common"
	lru "github.com/hashicorp/golang-lru"
	"github.com/rs/zerolog"
)

const blockTimeCacheSize = 1024

// HistoryServiceImpl implements ports.HistoryService. History is advisory:
// it is rebuilt from event logs on every call, bounded to a recent block
// window, and a failing event category degrades the result instead of
// failing it.
type HistoryServiceImpl struct {
	chain    ports.ChainReader
	filterer ports.WrapperFilterer
	session  ports.Session
	window   uint64
	times    *lru.Cache // block number -> timestamp
	log      zerolog.Logger
}

// NewHistoryService creates a new HistoryServiceImpl. windowBlocks bounds
// how far back event queries reach.
func NewHistoryService(
	chain ports.ChainReader,
	filterer ports.WrapperFilterer,
	session ports.Session,
	windowBlocks uint64,
	log zerolog.Logger,
) *HistoryServiceImpl {
	cache, _ := lru.New(blockTimeCacheSize)
	return &HistoryServiceImpl{
		chain:    chain,
		filterer: filterer,
		session:  session,
		window:   windowBlocks,
		times:    cache,
		log:      log,
	}
}

// FetchHistory reconstructs the account's recent transactions, most recent
// first. The five event categories are queried concurrently and joined;
// the merged result is whatever subset succeeded.
func (s *HistoryServiceImpl) FetchHistory(ctx context.Context, account common.Address) ([]domain.TransactionRecord, error) {
	if s.session.State() == domain.Disconnected {
		return nil, apperror.ErrNotConnected()
	}

	head, err := s.chain.BlockNumber(ctx)
	if err != nil {
		return nil, apperror.ErrBalanceQueryFailed("chain height", err)
	}
	from := uint64(0)
	if head > s.window {
		from = head - s.window
	}

	var (
		mu      sync.Mutex
		records []domain.TransactionRecord
		wg      sync.WaitGroup
	)
	collect := func(category string, fetch func() []domain.TransactionRecord) {
		wg.Add(1)
		go func() {
			defer wg.Done()
			part := fetch()
			mu.Lock()
			records = append(records, part...)
			mu.Unlock()
			s.log.Debug().Str("category", category).Int("count", len(part)).Msg("event category merged")
		}()
	}

	collect("deposits", func() []domain.TransactionRecord {
		return s.depositRecords(ctx, account, from, head)
	})
	collect("withdrawals", func() []domain.TransactionRecord {
		return s.withdrawRecords(ctx, account, from, head)
	})
	collect("withdrawal_requests", func() []domain.TransactionRecord {
		return s.withdrawalRequestRecords(ctx, account, from, head)
	})
	collect("transfers_sent", func() []domain.TransactionRecord {
		return s.sentTransferRecords(ctx, account, from, head)
	})
	collect("transfers_received", func() []domain.TransactionRecord {
		return s.receivedTransferRecords(ctx, account, from, head)
	})

	wg.Wait()

	// Newest first; stable so same-timestamp entries keep discovery order.
	sort.SliceStable(records, func(i, j int) bool {
		return records[i].Timestamp > records[j].Timestamp
	})

	return records, nil
}

func (s *HistoryServiceImpl) depositRecords(ctx context.Context, account common.Address, from, to uint64) []domain.TransactionRecord {
	events, err := s.filterer.FilterDeposits(ctx, account, from, to)
	if err != nil {
		s.log.Warn().Err(err).Msg("deposit event query failed")
		return nil
	}
	var out []domain.TransactionRecord
	for _, ev := range events {
		ts, err := s.blockTime(ctx, ev.Meta.BlockNumber)
		if err != nil {
			s.log.Warn().Err(err).Uint64("block", ev.Meta.BlockNumber).Msg("block timestamp lookup failed")
			break
		}
		out = append(out, domain.TransactionRecord{
			Kind:        domain.KindDeposit,
			Amount:      domain.FormatUnits(ev.Amount),
			Timestamp:   ts,
			BlockNumber: ev.Meta.BlockNumber,
			TxHash:      ev.Meta.TxHash.Hex(),
			Status:      domain.RecordStatusSuccess,
		})
	}
	return out
}

func (s *HistoryServiceImpl) withdrawRecords(ctx context.Context, account common.Address, from, to uint64) []domain.TransactionRecord {
	events, err := s.filterer.FilterWithdrawals(ctx, account, from, to)
	if err != nil {
		s.log.Warn().Err(err).Msg("withdraw event query failed")
		return nil
	}
	var out []domain.TransactionRecord
	for _, ev := range events {
		ts, err := s.blockTime(ctx, ev.Meta.BlockNumber)
		if err != nil {
			s.log.Warn().Err(err).Uint64("block", ev.Meta.BlockNumber).Msg("block timestamp lookup failed")
			break
		}
		out = append(out, domain.TransactionRecord{
			Kind:        domain.KindWithdraw,
			Amount:      domain.FormatUnits(ev.Amount),
			Timestamp:   ts,
			BlockNumber: ev.Meta.BlockNumber,
			TxHash:      ev.Meta.TxHash.Hex(),
			Status:      domain.RecordStatusSuccess,
		})
	}
	return out
}

func (s *HistoryServiceImpl) withdrawalRequestRecords(ctx context.Context, account common.Address, from, to uint64) []domain.TransactionRecord {
	events, err := s.filterer.FilterWithdrawalRequests(ctx, account, from, to)
	if err != nil {
		s.log.Warn().Err(err).Msg("withdrawal request event query failed")
		return nil
	}
	var out []domain.TransactionRecord
	for _, ev := range events {
		ts, err := s.blockTime(ctx, ev.Meta.BlockNumber)
		if err != nil {
			s.log.Warn().Err(err).Uint64("block", ev.Meta.BlockNumber).Msg("block timestamp lookup failed")
			break
		}
		out = append(out, domain.TransactionRecord{
			Kind:        domain.KindWithdrawalRequest,
			Amount:      domain.FormatUnits(ev.Amount),
			Timestamp:   ts,
			BlockNumber: ev.Meta.BlockNumber,
			TxHash:      ev.Meta.TxHash.Hex(),
			Status:      domain.RecordStatusPending,
		})
	}
	return out
}

func (s *HistoryServiceImpl) sentTransferRecords(ctx context.Context, account common.Address, from, to uint64) []domain.TransactionRecord {
	events, err := s.filterer.FilterTransfersFrom(ctx, account, from, to)
	if err != nil {
		s.log.Warn().Err(err).Msg("sent transfer event query failed")
		return nil
	}
	var out []domain.TransactionRecord
	for _, ev := range events {
		ts, err := s.blockTime(ctx, ev.Meta.BlockNumber)
		if err != nil {
			s.log.Warn().Err(err).Uint64("block", ev.Meta.BlockNumber).Msg("block timestamp lookup failed")
			break
		}
		out = append(out, transferRecord(domain.KindTransferSent, ev, ts))
	}
	return out
}

func (s *HistoryServiceImpl) receivedTransferRecords(ctx context.Context, account common.Address, from, to uint64) []domain.TransactionRecord {
	events, err := s.filterer.FilterTransfersTo(ctx, account, from, to)
	if err != nil {
		s.log.Warn().Err(err).Msg("received transfer event query failed")
		return nil
	}
	var out []domain.TransactionRecord
	for _, ev := range events {
		// A transfer whose sender is the queried account was already
		// produced by the sender-side query; skip it here so a
		// self-transfer appears once, classified as sent.
		if ev.From == account {
			continue
		}
		ts, err := s.blockTime(ctx, ev.Meta.BlockNumber)
		if err != nil {
			s.log.Warn().Err(err).Uint64("block", ev.Meta.BlockNumber).Msg("block timestamp lookup failed")
			break
		}
		out = append(out, transferRecord(domain.KindTransferReceived, ev, ts))
	}
	return out
}

func transferRecord(kind domain.TransactionKind, ev domain.TransferEvent, ts uint64) domain.TransactionRecord {
	return domain.TransactionRecord{
		Kind:        kind,
		Amount:      domain.AmountConfidential,
		From:        ev.From.Hex(),
		To:          ev.To.Hex(),
		Timestamp:   ts,
		BlockNumber: ev.Meta.BlockNumber,
		TxHash:      ev.Meta.TxHash.Hex(),
		Status:      domain.RecordStatusSuccess,
	}
}

// blockTime resolves a block's timestamp through the LRU so events sharing
// a block cost one header fetch.
func (s *HistoryServiceImpl) blockTime(ctx context.Context, number uint64) (uint64, error) {
	if ts, ok := s.times.Get(number); ok {
		return ts.(uint64), nil
	}
	ts, err := s.chain.BlockTime(ctx, number)
	if err != nil {
		return 0, err
	}
	s.times.Add(number, ts)
	return ts, nil
}
