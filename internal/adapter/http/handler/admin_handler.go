package handler

import (
	"wallet-backend/internal/adapter/http/dto"
	"wallet-backend/internal/core/ports"
	"wallet-backend/pkg/response"

	"github.com/gin-gonic/gin"
)

// AdminHandler serves operator views under /api/admin.
type AdminHandler struct {
	adminSvc ports.AdminService
}

// NewAdminHandler creates a new AdminHandler.
func NewAdminHandler(adminSvc ports.AdminService) *AdminHandler {
	return &AdminHandler{adminSvc: adminSvc}
}

// Stats handles GET /api/admin/stats.
func (h *AdminHandler) Stats(c *gin.Context) {
	stats, err := h.adminSvc.Stats(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, dto.AdminStatsResponse{
		TotalWallets:       stats.TotalWallets,
		TotalTransactions:  stats.TotalTransactions,
		TotalBankTransfers: stats.TotalBankTransfers,
		AAWalletsCount:     stats.AAWalletsCount,
	})
}

// HealthDetails handles GET /api/admin/health-details.
func (h *AdminHandler) HealthDetails(c *gin.Context) {
	d := h.adminSvc.HealthDetails(c.Request.Context())
	response.OK(c, dto.HealthDetailsResponse{
		Status:              d.Status,
		Version:             d.Version,
		DatabaseConnected:   d.DatabaseConnected,
		Dependencies:        d.Dependencies,
		StellarNetwork:      d.StellarNetwork,
		StellarHorizonURL:   d.StellarHorizonURL,
		ReputationThreshold: d.ReputationThreshold,
	})
}

// AAAccounts handles GET /api/admin/aa-accounts.
func (h *AdminHandler) AAAccounts(c *gin.Context) {
	accounts := h.adminSvc.ListAAAccounts()
	if accounts == nil {
		accounts = []string{}
	}
	response.OK(c, dto.AAAccountsResponse{Accounts: accounts, Total: len(accounts)})
}
