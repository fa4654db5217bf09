package integration

import (
	"context"
	"errors"
	"fmt"
	"math/big"
	"sync"

	"cwtoken-orchestrator/internal/core/domain"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/ethereum/go-ethereum/crypto"
)

// ledger is an in-memory stand-in for the RPC node and the deployed
// contract pair. It implements every gateway port plus the confidential
// compute port, with confidential balances kept as plaintext internally
// so tests can assert on decrypted values. One mutex serializes all
// access; every write advances the block height by one.
type ledger struct {
	mu sync.Mutex

	block   uint64
	public  map[common.Address]*big.Int
	granted map[common.Address]*big.Int // owner -> allowance for the wrapper

	confidential map[common.Address]*big.Int
	handleOf     map[common.Address]domain.EncryptedHandle
	handleValue  map[domain.EncryptedHandle]*big.Int
	handleSeq    uint64

	ciphertexts map[common.Hash]*big.Int // single-use transfer inputs
	cipherSeq   uint64

	requests    map[common.Hash]*domain.WithdrawalRequest
	requestByTx map[common.Hash]*domain.WithdrawalRequestedEvent
	requestSeq  uint64

	events []ledgerEvent
	txSeq  uint64
}

type ledgerEvent struct {
	kind      string // "deposit", "withdraw", "request", "transfer"
	user      common.Address
	from, to  common.Address
	amount    *big.Int
	requestID common.Hash
	block     uint64
	tx        common.Hash
}

func newLedger() *ledger {
	return &ledger{
		block:        1,
		public:       make(map[common.Address]*big.Int),
		granted:      make(map[common.Address]*big.Int),
		confidential: make(map[common.Address]*big.Int),
		handleOf:     make(map[common.Address]domain.EncryptedHandle),
		handleValue:  make(map[domain.EncryptedHandle]*big.Int),
		ciphertexts:  make(map[common.Hash]*big.Int),
		requests:     make(map[common.Hash]*domain.WithdrawalRequest),
		requestByTx:  make(map[common.Hash]*domain.WithdrawalRequestedEvent),
	}
}

func (l *ledger) seed(account common.Address, amount *big.Int) {
	l.mu.Lock()
	l.public[account] = new(big.Int).Set(amount)
	l.mu.Unlock()
}

// confidentialBalance reads the plaintext confidential balance, bypassing
// the decryption path, for test assertions.
func (l *ledger) confidentialBalance(account common.Address) *big.Int {
	l.mu.Lock()
	defer l.mu.Unlock()
	if v, ok := l.confidential[account]; ok {
		return new(big.Int).Set(v)
	}
	return big.NewInt(0)
}

func (l *ledger) nextTxLocked() (common.Hash, uint64) {
	l.txSeq++
	l.block++
	return crypto.Keccak256Hash([]byte(fmt.Sprintf("tx-%d", l.txSeq))), l.block
}

// refreshHandleLocked issues a fresh handle for the account's current
// confidential balance, superseding the previous one.
func (l *ledger) refreshHandleLocked(account common.Address) {
	l.handleSeq++
	h := domain.EncryptedHandle(crypto.Keccak256Hash(account.Bytes(), big.NewInt(int64(l.handleSeq)).Bytes()))
	l.handleOf[account] = h
	l.handleValue[h] = new(big.Int).Set(l.confidential[account])
}

func balanceOrZero(m map[common.Address]*big.Int, account common.Address) *big.Int {
	if v, ok := m[account]; ok {
		return v
	}
	return big.NewInt(0)
}

// ---- TokenReader / TokenWriter ----

func (l *ledger) BalanceOf(_ context.Context, account common.Address) (*big.Int, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	return new(big.Int).Set(balanceOrZero(l.public, account)), nil
}

func (l *ledger) Allowance(_ context.Context, owner, _ common.Address) (*big.Int, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	return new(big.Int).Set(balanceOrZero(l.granted, owner)), nil
}

func (l *ledger) Approve(_ context.Context, _ common.Address, amount *big.Int) (*domain.TxResult, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.granted[sessionAccount] = new(big.Int).Set(amount)
	tx, block := l.nextTxLocked()
	return &domain.TxResult{Hash: tx, BlockNumber: block}, nil
}

// ---- WrapperReader ----

func (l *ledger) EncryptedBalanceOf(_ context.Context, account common.Address) (domain.EncryptedHandle, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.handleOf[account], nil
}

func (l *ledger) WithdrawalRequest(_ context.Context, requestID common.Hash) (*domain.WithdrawalRequest, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	if req, ok := l.requests[requestID]; ok {
		cp := *req
		return &cp, nil
	}
	return &domain.WithdrawalRequest{RequestID: requestID}, nil
}

func (l *ledger) IsRequestProcessed(_ context.Context, requestID common.Hash) (bool, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	req, ok := l.requests[requestID]
	return ok && req.Processed, nil
}

// ---- WrapperWriter ----

func (l *ledger) DepositAndEncrypt(_ context.Context, amount *big.Int) (*domain.TxResult, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	have := balanceOrZero(l.public, sessionAccount)
	if have.Cmp(amount) < 0 {
		return nil, errors.New("execution reverted: transfer amount exceeds balance")
	}
	if balanceOrZero(l.granted, sessionAccount).Cmp(amount) < 0 {
		return nil, errors.New("execution reverted: insufficient allowance")
	}

	l.public[sessionAccount] = new(big.Int).Sub(have, amount)
	l.confidential[sessionAccount] = new(big.Int).Add(balanceOrZero(l.confidential, sessionAccount), amount)
	l.refreshHandleLocked(sessionAccount)

	tx, block := l.nextTxLocked()
	l.events = append(l.events, ledgerEvent{
		kind: "deposit", user: sessionAccount, amount: new(big.Int).Set(amount), block: block, tx: tx,
	})
	return &domain.TxResult{Hash: tx, BlockNumber: block}, nil
}

func (l *ledger) WithdrawAsPlain(_ context.Context, amount *big.Int) (*domain.TxResult, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	l.requestSeq++
	requestID := crypto.Keccak256Hash([]byte(fmt.Sprintf("request-%d", l.requestSeq)))
	tx, block := l.nextTxLocked()

	l.requests[requestID] = &domain.WithdrawalRequest{
		RequestID: requestID,
		Requester: sessionAccount,
		Amount:    new(big.Int).Set(amount),
	}
	event := &domain.WithdrawalRequestedEvent{
		User:      sessionAccount,
		Amount:    new(big.Int).Set(amount),
		RequestID: requestID,
		Meta:      domain.EventMeta{BlockNumber: block, TxHash: tx},
	}
	l.requestByTx[tx] = event
	l.events = append(l.events, ledgerEvent{
		kind: "request", user: sessionAccount, amount: event.Amount, requestID: requestID, block: block, tx: tx,
	})

	return &domain.TxResult{
		Hash:        tx,
		BlockNumber: block,
		Logs:        []types.Log{{TxHash: tx, BlockNumber: block}},
	}, nil
}

func (l *ledger) FinalizeWithdrawal(_ context.Context, requestID common.Hash, requester common.Address, amount, _ *big.Int) (*domain.TxResult, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	req, ok := l.requests[requestID]
	if !ok || req.Processed {
		return nil, errors.New("execution reverted: unknown or processed request")
	}
	have := balanceOrZero(l.confidential, requester)
	if have.Cmp(amount) < 0 {
		return nil, errors.New("execution reverted: insufficient confidential balance")
	}

	req.Processed = true
	l.confidential[requester] = new(big.Int).Sub(have, amount)
	l.public[requester] = new(big.Int).Add(balanceOrZero(l.public, requester), amount)
	l.refreshHandleLocked(requester)

	tx, block := l.nextTxLocked()
	l.events = append(l.events, ledgerEvent{
		kind: "withdraw", user: requester, amount: new(big.Int).Set(amount), block: block, tx: tx,
	})
	return &domain.TxResult{Hash: tx, BlockNumber: block}, nil
}

func (l *ledger) EncryptedTransfer(_ context.Context, recipient common.Address, input *domain.EncryptedInput) (*domain.TxResult, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	amount, ok := l.ciphertexts[input.Ciphertext]
	if !ok {
		return nil, errors.New("execution reverted: invalid input proof")
	}
	delete(l.ciphertexts, input.Ciphertext) // single use

	have := balanceOrZero(l.confidential, sessionAccount)
	if have.Cmp(amount) < 0 {
		return nil, errors.New("execution reverted: insufficient confidential balance")
	}
	l.confidential[sessionAccount] = new(big.Int).Sub(have, amount)
	l.confidential[recipient] = new(big.Int).Add(balanceOrZero(l.confidential, recipient), amount)
	l.refreshHandleLocked(sessionAccount)
	l.refreshHandleLocked(recipient)

	tx, block := l.nextTxLocked()
	l.events = append(l.events, ledgerEvent{
		kind: "transfer", from: sessionAccount, to: recipient, block: block, tx: tx,
	})
	return &domain.TxResult{Hash: tx, BlockNumber: block}, nil
}

// ---- ChainReader ----

func (l *ledger) BlockNumber(_ context.Context) (uint64, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.block, nil
}

func (l *ledger) BlockTime(_ context.Context, number uint64) (uint64, error) {
	return 1700000000 + number*12, nil
}

// ---- WrapperFilterer ----

func (l *ledger) FilterDeposits(_ context.Context, user common.Address, fromBlock, toBlock uint64) ([]domain.DepositEvent, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	var out []domain.DepositEvent
	for _, ev := range l.events {
		if ev.kind == "deposit" && ev.user == user && ev.block >= fromBlock && ev.block <= toBlock {
			out = append(out, domain.DepositEvent{
				User:   ev.user,
				Amount: ev.amount,
				Meta:   domain.EventMeta{BlockNumber: ev.block, TxHash: ev.tx},
			})
		}
	}
	return out, nil
}

func (l *ledger) FilterWithdrawals(_ context.Context, user common.Address, fromBlock, toBlock uint64) ([]domain.WithdrawEvent, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	var out []domain.WithdrawEvent
	for _, ev := range l.events {
		if ev.kind == "withdraw" && ev.user == user && ev.block >= fromBlock && ev.block <= toBlock {
			out = append(out, domain.WithdrawEvent{
				User:   ev.user,
				Amount: ev.amount,
				Meta:   domain.EventMeta{BlockNumber: ev.block, TxHash: ev.tx},
			})
		}
	}
	return out, nil
}

func (l *ledger) FilterWithdrawalRequests(_ context.Context, user common.Address, fromBlock, toBlock uint64) ([]domain.WithdrawalRequestedEvent, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	var out []domain.WithdrawalRequestedEvent
	for _, ev := range l.events {
		if ev.kind == "request" && ev.user == user && ev.block >= fromBlock && ev.block <= toBlock {
			out = append(out, domain.WithdrawalRequestedEvent{
				User:      ev.user,
				Amount:    ev.amount,
				RequestID: ev.requestID,
				Meta:      domain.EventMeta{BlockNumber: ev.block, TxHash: ev.tx},
			})
		}
	}
	return out, nil
}

func (l *ledger) FilterTransfersFrom(_ context.Context, sender common.Address, fromBlock, toBlock uint64) ([]domain.TransferEvent, error) {
	return l.filterTransfers(func(ev ledgerEvent) bool { return ev.from == sender }, fromBlock, toBlock)
}

func (l *ledger) FilterTransfersTo(_ context.Context, recipient common.Address, fromBlock, toBlock uint64) ([]domain.TransferEvent, error) {
	return l.filterTransfers(func(ev ledgerEvent) bool { return ev.to == recipient }, fromBlock, toBlock)
}

func (l *ledger) filterTransfers(match func(ledgerEvent) bool, fromBlock, toBlock uint64) ([]domain.TransferEvent, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	var out []domain.TransferEvent
	for _, ev := range l.events {
		if ev.kind == "transfer" && match(ev) && ev.block >= fromBlock && ev.block <= toBlock {
			out = append(out, domain.TransferEvent{
				From: ev.from,
				To:   ev.to,
				Meta: domain.EventMeta{BlockNumber: ev.block, TxHash: ev.tx},
			})
		}
	}
	return out, nil
}

func (l *ledger) ParseWithdrawalRequested(log types.Log) (*domain.WithdrawalRequestedEvent, bool) {
	l.mu.Lock()
	defer l.mu.Unlock()
	ev, ok := l.requestByTx[log.TxHash]
	return ev, ok
}

// ---- ConfidentialCompute ----

// inmemoryCompute encrypts by registering the plaintext against a fresh
// ciphertext on the shared ledger, and decrypts by handle lookup.
type inmemoryCompute struct {
	l *ledger
}

func (c *inmemoryCompute) EncryptAmount(_ context.Context, amount *big.Int) (*domain.EncryptedInput, error) {
	c.l.mu.Lock()
	defer c.l.mu.Unlock()
	c.l.cipherSeq++
	cipher := crypto.Keccak256Hash([]byte(fmt.Sprintf("cipher-%d", c.l.cipherSeq)))
	c.l.ciphertexts[cipher] = new(big.Int).Set(amount)
	return &domain.EncryptedInput{Ciphertext: cipher, Proof: []byte("proof")}, nil
}

func (c *inmemoryCompute) DecryptHandle(_ context.Context, handle domain.EncryptedHandle) (*big.Int, error) {
	c.l.mu.Lock()
	defer c.l.mu.Unlock()
	if v, ok := c.l.handleValue[handle]; ok {
		return new(big.Int).Set(v), nil
	}
	return nil, errors.New("unknown handle")
}

// healthyDep satisfies ports.HealthChecker for router wiring.
type healthyDep struct{ name string }

func (h healthyDep) Ping(context.Context) error { return nil }
func (h healthyDep) Name() string               { return h.name }
