package domain

import (
	"time"

	"github.com/ethereum/go-ethereum/common"
)

// EncryptedHandle is the opaque ciphertext reference the ledger returns for
// an account's confidential balance. It is not itself sensitive and must be
// passed back verbatim for decryption or further confidential operations.
// A balance-affecting write supersedes the previously observed handle.
type EncryptedHandle common.Hash

// IsZero reports whether the handle refers to no ciphertext, i.e. the
// account has never deposited.
func (h EncryptedHandle) IsZero() bool {
	return h == EncryptedHandle{}
}

func (h EncryptedHandle) Hex() string {
	return common.Hash(h).Hex()
}

// EncryptedInput is the transient ciphertext+proof pair produced per
// transfer. It is single-use and bound to one (contract, account, amount)
// triple; callers must never cache or resubmit one.
type EncryptedInput struct {
	Ciphertext common.Hash
	Proof      []byte
}

// Complete reports whether the compute service returned both halves.
func (e *EncryptedInput) Complete() bool {
	return e != nil && e.Ciphertext != (common.Hash{}) && len(e.Proof) > 0
}

// Balances is the paired public/encrypted view of one account.
type Balances struct {
	Public string          `json:"public_balance"`
	Handle EncryptedHandle `json:"-"`
}

// BalanceSnapshot is the poller's last observation, including any fetch
// error so transient failures stay visible between ticks.
type BalanceSnapshot struct {
	Public    string    `json:"public_balance"`
	Handle    string    `json:"encrypted_handle"`
	Err       string    `json:"error,omitempty"`
	FetchedAt time.Time `json:"fetched_at"`
}
