// Command admin-token issues a bearer token for the /api/admin endpoints
// using the same secret and issuer as the API server.
package main

import (
	"flag"
	"fmt"
	"os"
	"time"

	"wallet-backend/config"
	"wallet-backend/internal/service"
)

func main() {
	configPath := flag.String("config", "", "path to config file")
	subject := flag.String("subject", "", "operator name recorded in the token (required)")
	ttl := flag.Duration("ttl", 0, "token lifetime (default: admin.jwt_expiry)")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load config: %v\n", err)
		os.Exit(1)
	}
	if cfg.Admin.JWTSecret == "" {
		fmt.Fprintln(os.Stderr, "admin.jwt_secret is not set; admin routes are open and need no token")
		os.Exit(1)
	}

	expiry := cfg.Admin.JWTExpiry
	if *ttl > 0 {
		expiry = *ttl
	}

	tokenSvc := service.NewJWTTokenService(cfg.Admin.JWTSecret, expiry, cfg.Admin.JWTIssuer)
	token, expiresAt, err := tokenSvc.Generate(*subject)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to issue token: %v\n", err)
		os.Exit(1)
	}

	fmt.Println(token)
	fmt.Fprintf(os.Stderr, "expires at %s\n", expiresAt.UTC().Format(time.RFC3339))
}
