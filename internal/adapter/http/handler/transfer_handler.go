package handler

import (
	"time"

	"wallet-backend/internal/adapter/http/dto"
	"wallet-backend/internal/adapter/http/middleware"
	"wallet-backend/internal/core/domain"
	"wallet-backend/internal/core/ports"
	"wallet-backend/pkg/apperror"
	"wallet-backend/pkg/response"

	"github.com/gin-gonic/gin"
)

// TransferHandler exposes the reputation-gated bank transfer.
type TransferHandler struct {
	transferSvc ports.TransferService
}

// NewTransferHandler creates a new TransferHandler.
func NewTransferHandler(transferSvc ports.TransferService) *TransferHandler {
	return &TransferHandler{transferSvc: transferSvc}
}

// Create handles POST /api/bank/transfer. A rejected transfer is still
// recorded; the caller gets 403 with the record id in the error details.
func (h *TransferHandler) Create(c *gin.Context) {
	var req dto.BankTransferRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, bindError(err, "public_key"))
		return
	}
	dto.SanitizeStruct(&req)
	c.Set(middleware.CtxPublicKey, req.PublicKey)

	rec, err := h.transferSvc.AuthorizeTransfer(c.Request.Context(), domain.TransferRequest{
		PublicKey:   req.PublicKey,
		AmountFiat:  req.AmountFiat,
		Currency:    req.Currency,
		BankAccount: req.BankAccount,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	if rec.IsRejected() {
		score := 0
		if rec.ReputationScore != nil {
			score = *rec.ReputationScore
		}
		response.Error(c, apperror.ErrReputationTooLow(score, h.transferSvc.Threshold()).
			WithDetail("transfer_id", rec.ID.String()))
		return
	}

	response.Created(c, toTransferResponse(rec))
}

// List handles GET /api/admin/transfers.
func (h *TransferHandler) List(c *gin.Context) {
	recs, err := h.transferSvc.ListTransfers(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}

	items := make([]dto.TransferResponse, 0, len(recs))
	for i := range recs {
		items = append(items, toTransferResponse(&recs[i]))
	}
	response.OK(c, dto.TransferListResponse{Transfers: items, Total: len(items)})
}

func toTransferResponse(rec *domain.TransferRecord) dto.TransferResponse {
	resp := dto.TransferResponse{
		ID:                rec.ID.String(),
		PublicKey:         rec.PublicKey,
		AmountFiat:        rec.AmountFiat,
		Currency:          rec.Currency,
		BankAccountMasked: rec.BankAccountMasked,
		Status:            string(rec.Status),
		RejectionReason:   rec.RejectionReason,
		ReputationScore:   rec.ReputationScore,
		CreatedAt:         rec.CreatedAt.Format(time.RFC3339),
	}
	if rec.CompletedAt != nil {
		s := rec.CompletedAt.Format(time.RFC3339)
		resp.CompletedAt = &s
	}
	return resp
}
