package domain

import (
	"math/big"
	"testing"

	"github.com/ethereum/go-ethereum/common"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseUnits(t *testing.T) {
	tests := []struct {
		name    string
		in      string
		want    string // base-unit decimal string
		wantErr bool
	}{
		{"integer", "1", "1000000000000000000", false},
		{"fractional", "1.5", "1500000000000000000", false},
		{"small fraction", "0.000000000000000001", "1", false},
		{"zero", "0", "0", false},
		{"negative", "-2", "-2000000000000000000", false},
		{"too precise", "0.0000000000000000001", "", true},
		{"garbage", "1.2.3", "", true},
		{"empty", "", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseUnits(tt.in)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got.String())
		})
	}
}

func TestFormatUnits(t *testing.T) {
	wei, ok := new(big.Int).SetString("1500000000000000000", 10)
	require.True(t, ok)
	assert.Equal(t, "1.5", FormatUnits(wei))

	assert.Equal(t, "0", FormatUnits(big.NewInt(0)))
	assert.Equal(t, "0", FormatUnits(nil))
}

func TestParseFormatRoundTrip(t *testing.T) {
	for _, s := range []string{"1", "0.25", "123456.789"} {
		units, err := ParseUnits(s)
		require.NoError(t, err)
		assert.Equal(t, s, FormatUnits(units))
	}
}

func TestEncryptedHandle_IsZero(t *testing.T) {
	var zero EncryptedHandle
	assert.True(t, zero.IsZero())

	h := EncryptedHandle(common.HexToHash("0x01"))
	assert.False(t, h.IsZero())
}

func TestEncryptedInput_Complete(t *testing.T) {
	var nilInput *EncryptedInput
	assert.False(t, nilInput.Complete())

	assert.False(t, (&EncryptedInput{Proof: []byte{1}}).Complete())
	assert.False(t, (&EncryptedInput{Ciphertext: common.HexToHash("0x01")}).Complete())
	assert.True(t, (&EncryptedInput{
		Ciphertext: common.HexToHash("0x01"),
		Proof:      []byte{1, 2, 3},
	}).Complete())
}

func TestSessionState_String(t *testing.T) {
	assert.Equal(t, "disconnected", Disconnected.String())
	assert.Equal(t, "connected_not_ready", ConnectedNotReady.String())
	assert.Equal(t, "active", Active.String())
	assert.Equal(t, "unknown", SessionState(42).String())
}
