package handler

import (
	"cwtoken-orchestrator/internal/adapter/http/dto"
	"cwtoken-orchestrator/internal/core/domain"
	"cwtoken-orchestrator/internal/core/ports"
	"cwtoken-orchestrator/pkg/apperror"
	"cwtoken-orchestrator/pkg/response"

	"github.com/ethereum/go-ethereum/common"
	"github.com/gin-gonic/gin"
)

// BalanceHandler handles balance read and decryption endpoints.
type BalanceHandler struct {
	balanceSvc ports.BalanceService
	decryptSvc ports.DecryptService
	session    ports.Session
}

// NewBalanceHandler creates a new BalanceHandler.
func NewBalanceHandler(balanceSvc ports.BalanceService, decryptSvc ports.DecryptService, session ports.Session) *BalanceHandler {
	return &BalanceHandler{balanceSvc: balanceSvc, decryptSvc: decryptSvc, session: session}
}

// GetBalances handles GET /api/v1/balances.
func (h *BalanceHandler) GetBalances(c *gin.Context) {
	account := h.session.Account()

	balances, err := h.balanceSvc.ReadBoth(c.Request.Context(), account)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, dto.BalancesResponse{
		Account:         account.Hex(),
		PublicBalance:   balances.Public,
		EncryptedHandle: balances.Handle.Hex(),
	})
}

// Decrypt handles POST /api/v1/balances/decrypt. With no handle in the
// body, the account's current on-ledger handle is decrypted.
func (h *BalanceHandler) Decrypt(c *gin.Context) {
	var req dto.DecryptRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}

	account := h.session.Account()

	var handle domain.EncryptedHandle
	if req.Handle != "" {
		handle = domain.EncryptedHandle(common.HexToHash(req.Handle))
	} else {
		current, err := h.balanceSvc.ReadEncryptedHandle(c.Request.Context(), account)
		if err != nil {
			response.Error(c, err)
			return
		}
		handle = current
	}

	value, err := h.decryptSvc.Decrypt(c.Request.Context(), handle)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, dto.DecryptResponse{
		Account: account.Hex(),
		Balance: domain.FormatUnits(value),
	})
}
