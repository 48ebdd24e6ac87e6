package handler

import (
	"wallet-backend/internal/adapter/http/dto"
	"wallet-backend/internal/core/ports"
	"wallet-backend/pkg/response"

	"github.com/gin-gonic/gin"
)

// ReputationHandler serves trust scores.
type ReputationHandler struct {
	reputationSvc ports.ReputationService
}

// NewReputationHandler creates a new ReputationHandler.
func NewReputationHandler(reputationSvc ports.ReputationService) *ReputationHandler {
	return &ReputationHandler{reputationSvc: reputationSvc}
}

// Get handles GET /api/reputation/:pubkey.
func (h *ReputationHandler) Get(c *gin.Context) {
	score, err := h.reputationSvc.Calculate(c.Request.Context(), c.Param("pubkey"))
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, dto.ReputationResponse{
		PublicKey:      score.PublicKey,
		TrustScore:     score.Score,
		Level:          string(score.Level),
		TxCount:        score.TxCount,
		TotalVolume:    score.TotalVolume,
		AccountAgeDays: score.AccountAgeDays,
		LastCalculated: score.LastCalculated,
	})
}
