package handler

import (
	"ride-escrow-network/internal/adapter/http/dto"
	"ride-escrow-network/internal/core/ports"
	"ride-escrow-network/pkg/response"

	"github.com/gin-gonic/gin"
)

// AccountHandler handles token account endpoints.
type AccountHandler struct {
	svc ports.LedgerService
}

// NewAccountHandler creates a new AccountHandler.
func NewAccountHandler(svc ports.LedgerService) *AccountHandler {
	return &AccountHandler{svc: svc}
}

// Topup handles POST /api/v1/accounts/:address/topup.
func (h *AccountHandler) Topup(c *gin.Context) {
	signer, ok := signerOf(c)
	if !ok {
		return
	}
	account, ok := addressParam(c)
	if !ok {
		return
	}
	var req dto.TopupRequest
	if !bindJSON(c, &req) {
		return
	}

	balance, err := h.svc.Topup(c.Request.Context(), ports.TopupRequest{
		Signer:     signer,
		Account:    account,
		AmountCent: req.AmountCent,
	})
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, dto.BalanceResponse{Account: account.String(), BalanceCent: balance})
}

// GetBalance handles GET /api/v1/accounts/:address/balance.
func (h *AccountHandler) GetBalance(c *gin.Context) {
	account, ok := addressParam(c)
	if !ok {
		return
	}
	balance, err := h.svc.Balance(c.Request.Context(), account)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, dto.BalanceResponse{Account: account.String(), BalanceCent: balance})
}
