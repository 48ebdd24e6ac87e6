package handler

import (
	"wallet-backend/internal/adapter/http/middleware"
	redisStore "wallet-backend/internal/adapter/storage/redis"
	"wallet-backend/internal/core/ports"
	"wallet-backend/internal/metrics"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

// maxRequestBody caps JSON request bodies.
const maxRequestBody = 1 << 20

// RouterDeps holds all dependencies needed to set up routes.
type RouterDeps struct {
	WalletSvc      ports.WalletService
	ReputationSvc  ports.ReputationService
	TransferSvc    ports.TransferService
	ConvertSvc     ports.ConvertService
	AdminSvc       ports.AdminService
	TokenSvc       ports.TokenService         // nil = admin routes unauthenticated
	RateLimitStore *redisStore.RateLimitStore // nil = rate limiting disabled
	AuditSvc       ports.AuditService         // nil = audit logging disabled
	HealthCheckers []ports.HealthChecker
	AllowedOrigins []string
	Logger         zerolog.Logger
}

// SetupRouter initialises the Gin engine with all routes and middleware.
func SetupRouter(deps RouterDeps) *gin.Engine {
	r := gin.New()

	// Global middleware
	r.Use(middleware.RequestID())
	r.Use(middleware.Recovery(deps.Logger))
	r.Use(middleware.RequestLogger(deps.Logger))
	r.Use(metrics.Middleware())
	r.Use(middleware.CORS(deps.AllowedOrigins...))
	r.Use(middleware.MaxBodySize(maxRequestBody))

	// Audit logging (after response)
	if deps.AuditSvc != nil {
		r.Use(middleware.AuditLog(deps.AuditSvc))
	}

	r.GET("/metrics", gin.WrapH(metrics.Handler()))

	rules := middleware.DefaultRateLimitRules()

	// Helper: return rate limiter middleware if store is available, else noop.
	rl := func(group string) gin.HandlerFunc {
		if deps.RateLimitStore == nil {
			return func(c *gin.Context) { c.Next() }
		}
		rule, ok := rules[group]
		if !ok {
			return func(c *gin.Context) { c.Next() }
		}
		return middleware.RateLimiter(deps.RateLimitStore, group, rule, deps.Logger)
	}

	api := r.Group("/api")
	api.GET("/health", HealthCheck(deps.HealthCheckers...))

	walletHandler := NewWalletHandler(deps.WalletSvc)
	wallet := api.Group("/wallet")
	{
		wallet.POST("/generate", rl("wallet_generate"), walletHandler.Generate)
		wallet.POST("/fund", rl("wallet_fund"), walletHandler.Fund)
		wallet.GET("/:pubkey/balance", rl("read"), walletHandler.GetBalance)
		wallet.POST("/:pubkey/send", rl("wallet_send"), walletHandler.Send)
	}
	api.POST("/aa/relayer", rl("relay"), walletHandler.Relay)

	reputationHandler := NewReputationHandler(deps.ReputationSvc)
	api.GET("/reputation/:pubkey", rl("read"), reputationHandler.Get)

	transferHandler := NewTransferHandler(deps.TransferSvc)
	api.POST("/bank/transfer", rl("bank_transfer"), transferHandler.Create)

	convertHandler := NewConvertHandler(deps.ConvertSvc)
	api.GET("/rates", rl("read"), convertHandler.GetRate)
	api.POST("/convert/to-usdc", rl("convert"), convertHandler.ToUSDC)

	adminHandler := NewAdminHandler(deps.AdminSvc)
	admin := api.Group("/admin", rl("admin"), middleware.AdminAuth(deps.TokenSvc, deps.Logger))
	{
		admin.GET("/stats", adminHandler.Stats)
		admin.GET("/health-details", adminHandler.HealthDetails)
		admin.GET("/aa-accounts", adminHandler.AAAccounts)
		admin.GET("/transfers", transferHandler.List)
	}

	return r
}
