package handler

import (
	"regexp"

	"cwtoken-orchestrator/internal/adapter/http/dto"
	"cwtoken-orchestrator/internal/core/domain"
	"cwtoken-orchestrator/internal/core/ports"
	"cwtoken-orchestrator/pkg/apperror"
	"cwtoken-orchestrator/pkg/response"

	"github.com/ethereum/go-ethereum/common"
	"github.com/gin-gonic/gin"
)

var hexHashRe = regexp.MustCompile(`^0x[0-9a-fA-F]{64}$`)

// WrapperHandler handles the three ledger workflows and withdrawal
// request inspection.
type WrapperHandler struct {
	depositSvc  ports.DepositService
	withdrawSvc ports.WithdrawService
	transferSvc ports.TransferService
}

// NewWrapperHandler creates a new WrapperHandler.
func NewWrapperHandler(depositSvc ports.DepositService, withdrawSvc ports.WithdrawService, transferSvc ports.TransferService) *WrapperHandler {
	return &WrapperHandler{depositSvc: depositSvc, withdrawSvc: withdrawSvc, transferSvc: transferSvc}
}

// Deposit handles POST /api/v1/deposit.
func (h *WrapperHandler) Deposit(c *gin.Context) {
	var req dto.DepositRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}

	if err := h.depositSvc.Deposit(c.Request.Context(), req.Amount); err != nil {
		response.Error(c, err)
		return
	}
	response.Accepted(c, dto.OperationResponse{Operation: "deposit", Amount: req.Amount})
}

// Withdraw handles POST /api/v1/withdraw.
func (h *WrapperHandler) Withdraw(c *gin.Context) {
	var req dto.WithdrawRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}

	if err := h.withdrawSvc.Withdraw(c.Request.Context(), req.Amount); err != nil {
		response.Error(c, err)
		return
	}
	response.Accepted(c, dto.OperationResponse{Operation: "withdraw", Amount: req.Amount})
}

// Transfer handles POST /api/v1/transfer.
func (h *WrapperHandler) Transfer(c *gin.Context) {
	var req dto.TransferRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}

	if err := h.transferSvc.Transfer(c.Request.Context(), req.Recipient, req.Amount); err != nil {
		response.Error(c, err)
		return
	}
	// The transferred amount is not echoed back: it only ever leaves the
	// process encrypted.
	response.Accepted(c, dto.OperationResponse{Operation: "transfer", Recipient: req.Recipient})
}

// GetWithdrawalRequest handles GET /api/v1/withdrawals/:id, surfacing
// requests stuck between creation and finalization.
func (h *WrapperHandler) GetWithdrawalRequest(c *gin.Context) {
	id := c.Param("id")
	if !hexHashRe.MatchString(id) {
		response.Error(c, apperror.Validation("request id must be a 0x-prefixed 32-byte hex value"))
		return
	}

	request, err := h.withdrawSvc.RequestState(c.Request.Context(), common.HexToHash(id))
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, dto.WithdrawalRequestResponse{
		RequestID: request.RequestID.Hex(),
		Requester: request.Requester.Hex(),
		Amount:    domain.FormatUnits(request.Amount),
		Processed: request.Processed,
	})
}
