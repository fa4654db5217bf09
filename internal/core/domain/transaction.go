package domain

import (
	"math/big"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
)

// TransactionKind labels a reconstructed history entry.
type TransactionKind string

const (
	KindDeposit           TransactionKind = "deposit"
	KindWithdraw          TransactionKind = "withdraw"
	KindWithdrawalRequest TransactionKind = "withdrawal_request"
	KindTransferSent      TransactionKind = "transfer_sent"
	KindTransferReceived  TransactionKind = "transfer_received"
)

// RecordStatus is the lifecycle state of a history entry.
type RecordStatus string

const (
	RecordStatusSuccess RecordStatus = "success"
	RecordStatusPending RecordStatus = "pending"
	RecordStatusFailed  RecordStatus = "failed"
)

// AmountConfidential is the sentinel amount for confidential transfers,
// whose true value is never disclosed in event logs.
const AmountConfidential = "encrypted"

// TransactionRecord is one entry of the reconstructed history. It is
// derived from event logs on every query and never persisted.
type TransactionRecord struct {
	Kind        TransactionKind `json:"type"`
	Amount      string          `json:"amount"`
	From        string          `json:"from,omitempty"`
	To          string          `json:"to,omitempty"`
	Timestamp   uint64          `json:"timestamp"`
	BlockNumber uint64          `json:"block_number"`
	TxHash      string          `json:"transaction_hash"`
	Status      RecordStatus    `json:"status"`
}

// TxResult is a confirmed ledger write: the port boundary collapses
// submission and confirmation, so a non-nil result means the transaction
// is included with success status.
type TxResult struct {
	Hash        common.Hash
	BlockNumber uint64
	GasUsed     uint64
	Logs        []types.Log
}

// ---- Decoded wrapper events ----

// EventMeta carries the log coordinates shared by all decoded events.
type EventMeta struct {
	BlockNumber uint64
	TxHash      common.Hash
}

type DepositEvent struct {
	User   common.Address
	Amount *big.Int
	Meta   EventMeta
}

type WithdrawEvent struct {
	User   common.Address
	Amount *big.Int
	Meta   EventMeta
}

type WithdrawalRequestedEvent struct {
	User      common.Address
	Amount    *big.Int
	RequestID common.Hash
	Meta      EventMeta
}

// TransferEvent is a confidential transfer; the amount stays opaque.
type TransferEvent struct {
	From            common.Address
	To              common.Address
	EncryptedAmount common.Hash
	Meta            EventMeta
}
