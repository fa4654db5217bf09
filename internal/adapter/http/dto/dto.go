package dto

// DepositRequest is the request body for a deposit.
type DepositRequest struct {
	Amount string `json:"amount" binding:"required,token_amount"`
}

// WithdrawRequest is the request body for a withdrawal.
type WithdrawRequest struct {
	Amount string `json:"amount" binding:"required,token_amount"`
}

// TransferRequest is the request body for a confidential transfer.
type TransferRequest struct {
	Recipient string `json:"recipient" binding:"required,eth_address"`
	Amount    string `json:"amount" binding:"required,token_amount"`
}

// DecryptRequest is the request body for decrypting the session account's
// encrypted balance. Handle is optional: when omitted, the current
// on-ledger handle is used.
type DecryptRequest struct {
	Handle string `json:"handle,omitempty" binding:"omitempty,hex_hash"`
}

// BalancesResponse is the live balance pair.
type BalancesResponse struct {
	Account         string `json:"account"`
	PublicBalance   string `json:"public_balance"`
	EncryptedHandle string `json:"encrypted_handle"`
}

// DecryptResponse carries a decrypted balance. The value is a point-in-time
// observation, not a standing fact.
type DecryptResponse struct {
	Account string `json:"account"`
	Balance string `json:"balance"`
}

// OperationResponse acknowledges a completed ledger workflow.
type OperationResponse struct {
	Operation string `json:"operation"`
	Amount    string `json:"amount,omitempty"`
	Recipient string `json:"recipient,omitempty"`
}

// WithdrawalRequestResponse is the on-ledger view of one withdrawal request.
type WithdrawalRequestResponse struct {
	RequestID string `json:"request_id"`
	Requester string `json:"requester"`
	Amount    string `json:"amount"`
	Processed bool   `json:"processed"`
}

// StatusResponse reports the session state and the poller's last snapshot.
type StatusResponse struct {
	Account         string `json:"account"`
	SessionState    string `json:"session_state"`
	Polling         bool   `json:"polling"`
	PublicBalance   string `json:"public_balance,omitempty"`
	EncryptedHandle string `json:"encrypted_handle,omitempty"`
	LastError       string `json:"last_error,omitempty"`
	FetchedAt       string `json:"fetched_at,omitempty"`
}
