package handler

import (
	"wallet-backend/internal/adapter/http/dto"
	"wallet-backend/internal/adapter/http/middleware"
	"wallet-backend/internal/core/ports"
	"wallet-backend/pkg/apperror"
	"wallet-backend/pkg/response"

	"github.com/gin-gonic/gin"
)

// ConvertHandler serves exchange rates and USDC conversions.
type ConvertHandler struct {
	convertSvc ports.ConvertService
}

// NewConvertHandler creates a new ConvertHandler.
func NewConvertHandler(convertSvc ports.ConvertService) *ConvertHandler {
	return &ConvertHandler{convertSvc: convertSvc}
}

// GetRate handles GET /api/rates?from=XLM&to=USD.
func (h *ConvertHandler) GetRate(c *gin.Context) {
	from := c.DefaultQuery("from", "XLM")
	to := c.DefaultQuery("to", "USD")
	if len(from) > 12 || len(to) > 12 {
		response.Error(c, apperror.Validation("from and to must be ticker symbols"))
		return
	}

	quote, err := h.convertSvc.GetRate(c.Request.Context(), from, to)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, dto.RateResponse{
		From:      quote.From,
		To:        quote.To,
		Rate:      quote.Rate,
		Source:    quote.Source,
		Timestamp: quote.Timestamp,
	})
}

// ToUSDC handles POST /api/convert/to-usdc.
func (h *ConvertHandler) ToUSDC(c *gin.Context) {
	var req dto.ConvertRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, bindError(err, "public_key"))
		return
	}
	if req.PublicKey != nil {
		c.Set(middleware.CtxPublicKey, *req.PublicKey)
	}

	result, err := h.convertSvc.ConvertToUSDC(c.Request.Context(), ports.ConvertRequest{
		FromToken: req.FromToken,
		Amount:    req.Amount,
		PublicKey: req.PublicKey,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, dto.ConvertResponse{
		FromToken:    result.FromToken,
		FromAmount:   result.FromAmount,
		USDCAmount:   result.USDCAmount,
		FiatAmount:   result.FiatAmount,
		FiatCurrency: result.FiatCurrency,
		Rate:         result.Rate,
		RateSource:   result.RateSource,
	})
}
