package handler

import (
	"wallet-backend/internal/adapter/http/dto"
	"wallet-backend/internal/adapter/http/middleware"
	"wallet-backend/internal/core/ports"
	"wallet-backend/pkg/apperror"
	"wallet-backend/pkg/response"

	"github.com/gin-gonic/gin"
)

// WalletHandler handles wallet lifecycle, payment and relay endpoints.
type WalletHandler struct {
	walletSvc ports.WalletService
}

// NewWalletHandler creates a new WalletHandler.
func NewWalletHandler(walletSvc ports.WalletService) *WalletHandler {
	return &WalletHandler{walletSvc: walletSvc}
}

// Generate handles POST /api/wallet/generate. An empty body means a plain
// custodial wallet whose secret is not returned.
func (h *WalletHandler) Generate(c *gin.Context) {
	var req dto.GenerateWalletRequest
	if c.Request.ContentLength != 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			response.Error(c, apperror.Validation(err.Error()))
			return
		}
	}

	result, err := h.walletSvc.GenerateWallet(c.Request.Context(), ports.GenerateWalletRequest{
		AAMode:       req.AAMode,
		RevealSecret: req.RevealSecret,
	})
	if err != nil {
		response.Error(c, err)
		return
	}
	c.Set(middleware.CtxPublicKey, result.PublicKey)

	response.Created(c, dto.GenerateWalletResponse{
		ID:        result.ID.String(),
		PublicKey: result.PublicKey,
		SecretKey: result.SecretKey,
		AAEnabled: result.AAEnabled,
	})
}

// Fund handles POST /api/wallet/fund.
func (h *WalletHandler) Fund(c *gin.Context) {
	var req dto.FundWalletRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, bindError(err, "public_key"))
		return
	}
	c.Set(middleware.CtxPublicKey, req.PublicKey)

	hash, err := h.walletSvc.FundWallet(c.Request.Context(), req.PublicKey)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, dto.FundWalletResponse{PublicKey: req.PublicKey, TxHash: hash})
}

// GetBalance handles GET /api/wallet/:pubkey/balance.
func (h *WalletHandler) GetBalance(c *gin.Context) {
	result, err := h.walletSvc.GetBalance(c.Request.Context(), c.Param("pubkey"))
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, dto.BalanceResponse{
		PublicKey:          result.PublicKey,
		Balances:           result.Balances,
		RecentTransactions: result.RecentTransactions,
	})
}

// Send handles POST /api/wallet/:pubkey/send.
func (h *WalletHandler) Send(c *gin.Context) {
	from := c.Param("pubkey")
	c.Set(middleware.CtxPublicKey, from)

	var req dto.SendRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, bindError(err, "destination"))
		return
	}
	dto.SanitizeStruct(&req)

	tx, err := h.walletSvc.SendTransaction(c.Request.Context(), ports.SendRequest{
		From:        from,
		Destination: req.Destination,
		Amount:      req.Amount.String(),
		AssetCode:   req.AssetCode,
		Memo:        req.Memo,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, tx)
}

// Relay handles POST /api/aa/relayer.
func (h *WalletHandler) Relay(c *gin.Context) {
	var req dto.RelayRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, bindError(err, "public_key"))
		return
	}
	c.Set(middleware.CtxPublicKey, req.PublicKey)

	hash, err := h.walletSvc.RelayTransaction(c.Request.Context(), req.PublicKey, req.Payload)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, dto.RelayResponse{TxHash: hash})
}
