package signer

import (
	"crypto/ecdsa"
	"fmt"
	"strings"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/ethereum/go-ethereum/signer/core/apitypes"
)

// Local signs with an in-process secp256k1 key. It implements
// ports.Signer. The key never leaves the process; this is the session's
// whole signing identity, so there is no account switching.
type Local struct {
	key     *ecdsa.PrivateKey
	address common.Address
}

// NewLocal parses a hex-encoded private key, with or without 0x prefix.
func NewLocal(hexKey string) (*Local, error) {
	key, err := crypto.HexToECDSA(strings.TrimPrefix(hexKey, "0x"))
	if err != nil {
		return nil, fmt.Errorf("parse private key: %w", err)
	}
	return &Local{
		key:     key,
		address: crypto.PubkeyToAddress(key.PublicKey),
	}, nil
}

// Address is the account derived from the key.
func (s *Local) Address() common.Address {
	return s.address
}

// Key exposes the raw key for transaction signing.
func (s *Local) Key() *ecdsa.PrivateKey {
	return s.key
}

// SignTypedData hashes typedData per EIP-712 and signs the digest. The
// recovery id is shifted to the 27/28 convention verifiers expect.
func (s *Local) SignTypedData(typedData apitypes.TypedData) ([]byte, error) {
	digest, _, err := apitypes.TypedDataAndHash(typedData)
	if err != nil {
		return nil, fmt.Errorf("hash typed data: %w", err)
	}
	sig, err := crypto.Sign(digest, s.key)
	if err != nil {
		return nil, fmt.Errorf("sign typed data: %w", err)
	}
	sig[64] += 27
	return sig, nil
}
