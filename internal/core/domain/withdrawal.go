package domain

import (
	"math/big"

	"github.com/ethereum/go-ethereum/common"
)

// WithdrawalRequest mirrors the on-ledger two-phase withdrawal record.
// It is created by withdrawAsPlain, observed through the emitted request
// event, and completed by the finalization callback. A request that is
// never finalized stays visible here as Processed == false.
type WithdrawalRequest struct {
	RequestID common.Hash    `json:"request_id"`
	Requester common.Address `json:"requester"`
	Amount    *big.Int       `json:"amount"`
	Processed bool           `json:"processed"`
}

// DecryptionRequest is the analogous request/response pairing for
// ledger-mediated balance decryption.
type DecryptionRequest struct {
	RequestID common.Hash    `json:"request_id"`
	User      common.Address `json:"user"`
	Processed bool           `json:"processed"`
}
