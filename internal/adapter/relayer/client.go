package relayer

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"math/big"
	"net/http"
	"time"

	"cwtoken-orchestrator/internal/core/domain"
	"cwtoken-orchestrator/internal/core/ports"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/ethereum/go-ethereum/common/math"
	"github.com/ethereum/go-ethereum/signer/core/apitypes"
	"github.com/rs/zerolog"
)

// Client talks to the confidential-compute relayer over HTTP. It
// implements ports.ConfidentialCompute: ciphertext+proof generation for
// submissions and the EIP-712 user-decryption handshake.
type Client struct {
	http     *http.Client
	baseURL  string
	contract common.Address
	chainID  int64
	signer   ports.Signer
	log      zerolog.Logger
}

// NewClient creates a relayer client bound to one wrapper contract and
// one signing identity.
func NewClient(baseURL string, timeout time.Duration, contract common.Address, chainID int64, signer ports.Signer, log zerolog.Logger) *Client {
	return &Client{
		http:     &http.Client{Timeout: timeout},
		baseURL:  baseURL,
		contract: contract,
		chainID:  chainID,
		signer:   signer,
		log:      log,
	}
}

type inputProofRequest struct {
	ContractAddress string `json:"contract_address"`
	UserAddress     string `json:"user_address"`
	Value           string `json:"value"`
}

type inputProofResponse struct {
	Handle     string `json:"handle"`
	InputProof string `json:"input_proof"`
}

// EncryptAmount asks the relayer for a single-use ciphertext handle and
// attestation proof for amount, bound to the wrapper contract and the
// session account.
func (c *Client) EncryptAmount(ctx context.Context, amount *big.Int) (*domain.EncryptedInput, error) {
	req := inputProofRequest{
		ContractAddress: c.contract.Hex(),
		UserAddress:     c.signer.Address().Hex(),
		Value:           amount.String(),
	}

	var resp inputProofResponse
	if err := c.post(ctx, "/v1/input-proof", req, &resp); err != nil {
		return nil, err
	}
	if resp.Handle == "" || resp.InputProof == "" {
		return nil, fmt.Errorf("relayer returned incomplete input proof (handle=%q, proof empty=%t)", resp.Handle, resp.InputProof == "")
	}

	proof, err := hexutil.Decode(resp.InputProof)
	if err != nil {
		return nil, fmt.Errorf("decode input proof: %w", err)
	}
	return &domain.EncryptedInput{
		Ciphertext: common.HexToHash(resp.Handle),
		Proof:      proof,
	}, nil
}

type userDecryptRequest struct {
	Handle          string `json:"handle"`
	ContractAddress string `json:"contract_address"`
	UserAddress     string `json:"user_address"`
	Signature       string `json:"signature"`
}

type userDecryptResponse struct {
	Value string `json:"value"`
}

// DecryptHandle performs the authorization handshake: the caller signs an
// EIP-712 statement binding (handle, contract, account) and the relayer
// answers with the plaintext only when the signature matches an account
// the ciphertext is shared with.
func (c *Client) DecryptHandle(ctx context.Context, handle domain.EncryptedHandle) (*big.Int, error) {
	account := c.signer.Address()

	sig, err := c.signer.SignTypedData(c.decryptTypedData(handle, account))
	if err != nil {
		return nil, fmt.Errorf("sign decryption request: %w", err)
	}

	req := userDecryptRequest{
		Handle:          handle.Hex(),
		ContractAddress: c.contract.Hex(),
		UserAddress:     account.Hex(),
		Signature:       hexutil.Encode(sig),
	}

	var resp userDecryptResponse
	if err := c.post(ctx, "/v1/user-decrypt", req, &resp); err != nil {
		return nil, err
	}

	value, ok := new(big.Int).SetString(resp.Value, 10)
	if !ok {
		return nil, fmt.Errorf("relayer returned non-numeric plaintext %q", resp.Value)
	}

	c.log.Debug().Str("handle", handle.Hex()).Msg("user decryption completed")
	return value, nil
}

// decryptTypedData builds the EIP-712 payload for one decryption grant.
// The domain pins the chain and the wrapper contract so a signature
// cannot be replayed against another deployment.
func (c *Client) decryptTypedData(handle domain.EncryptedHandle, account common.Address) apitypes.TypedData {
	return apitypes.TypedData{
		Types: apitypes.Types{
			"EIP712Domain": []apitypes.Type{
				{Name: "name", Type: "string"},
				{Name: "version", Type: "string"},
				{Name: "chainId", Type: "uint256"},
				{Name: "verifyingContract", Type: "address"},
			},
			"UserDecryptRequest": []apitypes.Type{
				{Name: "handle", Type: "bytes32"},
				{Name: "contractAddress", Type: "address"},
				{Name: "userAddress", Type: "address"},
			},
		},
		PrimaryType: "UserDecryptRequest",
		Domain: apitypes.TypedDataDomain{
			Name:              "ConfidentialToken.UserDecrypt",
			Version:           "1",
			ChainId:           math.NewHexOrDecimal256(c.chainID),
			VerifyingContract: c.contract.Hex(),
		},
		Message: apitypes.TypedDataMessage{
			"handle":          handle.Hex(),
			"contractAddress": c.contract.Hex(),
			"userAddress":     account.Hex(),
		},
	}
}

func (c *Client) post(ctx context.Context, path string, body, out interface{}) error {
	payload, err := json.Marshal(body)
	if err != nil {
		return fmt.Errorf("marshal relayer request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, bytes.NewReader(payload))
	if err != nil {
		return fmt.Errorf("build relayer request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("relayer %s: %w", path, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		detail, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return fmt.Errorf("relayer %s returned %d: %s", path, resp.StatusCode, bytes.TrimSpace(detail))
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode relayer response: %w", err)
	}
	return nil
}
