package middleware

import (
	"encoding/json"
	"net/http"
	"time"

	"wallet-backend/internal/core/domain"
	"wallet-backend/internal/core/ports"
	"wallet-backend/pkg/response"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// auditedRoutes maps write routes (as registered with gin) to audit actions.
var auditedRoutes = map[string]struct {
	action       domain.AuditAction
	resourceType string
}{
	"POST /api/wallet/generate":     {domain.AuditActionGenerateWallet, "wallet"},
	"POST /api/wallet/fund":         {domain.AuditActionFundWallet, "wallet"},
	"POST /api/wallet/:pubkey/send": {domain.AuditActionSend, "transaction"},
	"POST /api/aa/relayer":          {domain.AuditActionRelay, "transaction"},
	"POST /api/convert/to-usdc":     {domain.AuditActionConvert, "transaction"},
	"POST /api/bank/transfer":       {domain.AuditActionBankTransfer, "bank_transfer"},
}

// AuditLog records every completed call to an audited write route, whatever
// its outcome. Server errors are left to the request log.
func AuditLog(auditSvc ports.AuditService) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		status := c.Writer.Status()
		if status >= http.StatusInternalServerError {
			return
		}
		route, ok := auditedRoutes[c.Request.Method+" "+c.FullPath()]
		if !ok {
			return
		}

		var publicKey *string
		if pk := c.GetString(CtxPublicKey); pk != "" {
			publicKey = &pk
		}

		details, _ := json.Marshal(map[string]interface{}{
			"method":     c.Request.Method,
			"path":       c.Request.URL.Path,
			"request_id": c.GetString(response.RequestIDKey),
		})

		auditSvc.Log(c.Request.Context(), &domain.AuditLog{
			ID:           uuid.New(),
			PublicKey:    publicKey,
			Action:       route.action,
			ResourceType: route.resourceType,
			Status:       status,
			IPAddress:    c.ClientIP(),
			Details:      string(details),
			CreatedAt:    time.Now(),
		})
	}
}
