package dto

import (
	"regexp"

	"github.com/ethereum/go-ethereum/common"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"
)

var hexHashRe = regexp.MustCompile(`^0x[0-9a-fA-F]{64}$`)

func init() {
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		_ = v.RegisterValidation("eth_address", validateEthAddress)
		_ = v.RegisterValidation("token_amount", validateTokenAmount)
		_ = v.RegisterValidation("hex_hash", validateHexHash)
	}
}

// validateEthAddress accepts 20-byte hex addresses with 0x prefix.
func validateEthAddress(fl validator.FieldLevel) bool {
	return common.IsHexAddress(fl.Field().String())
}

// validateTokenAmount accepts positive decimal amounts. Precision beyond
// the token's 18 decimals is caught later by the unit conversion.
func validateTokenAmount(fl validator.FieldLevel) bool {
	d, err := decimal.NewFromString(fl.Field().String())
	if err != nil {
		return false
	}
	return d.IsPositive()
}

// validateHexHash accepts 32-byte hex values with 0x prefix.
func validateHexHash(fl validator.FieldLevel) bool {
	return hexHashRe.MatchString(fl.Field().String())
}
