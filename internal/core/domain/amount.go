package domain

import (
	"fmt"
	"math/big"

	"github.com/shopspring/decimal"
)

// TokenDecimals is the shared decimal precision of the public token and
// its confidential wrapper.
const TokenDecimals = 18

// ParseUnits converts a human decimal amount ("1.5") into base units
// (wei-style integer). It rejects malformed input and amounts with more
// fractional digits than the token supports.
func ParseUnits(amount string) (*big.Int, error) {
	d, err := decimal.NewFromString(amount)
	if err != nil {
		return nil, fmt.Errorf("parse amount %q: %w", amount, err)
	}
	scaled := d.Shift(TokenDecimals)
	if !scaled.IsInteger() {
		return nil, fmt.Errorf("amount %q exceeds %d decimal places", amount, TokenDecimals)
	}
	return scaled.BigInt(), nil
}

// FormatUnits converts a base-unit integer into a human decimal string.
func FormatUnits(units *big.Int) string {
	if units == nil {
		return "0"
	}
	return decimal.NewFromBigInt(units, -TokenDecimals).String()
}
