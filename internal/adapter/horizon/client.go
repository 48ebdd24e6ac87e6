// Package horizon implements ports.LedgerNetwork against a Horizon REST API
// and the testnet Friendbot faucet.
package horizon

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"wallet-backend/config"
	"wallet-backend/internal/core/domain"
	"wallet-backend/internal/core/ports"
	"wallet-backend/internal/metrics"

	"github.com/rs/zerolog"
	"github.com/tidwall/gjson"
	"golang.org/x/time/rate"
)

// Compile-time interface satisfaction check.
var _ ports.LedgerNetwork = (*Client)(nil)

// maxBodyBytes caps how much of a Horizon response is read.
const maxBodyBytes = 1 << 20

// Client talks to Horizon over plain HTTP. Outbound requests are paced by a
// token bucket so a burst of wallet calls cannot exhaust Horizon's quota.
type Client struct {
	http         *http.Client
	horizonURL   string
	friendbotURL string
	limiter      *rate.Limiter // nil disables pacing
	log          zerolog.Logger
}

// NewClient creates a Horizon client from configuration.
func NewClient(cfg config.StellarConfig, log zerolog.Logger) *Client {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 15 * time.Second
	}
	return NewClientWithHTTPClient(&http.Client{Timeout: timeout},
		cfg.HorizonURL, cfg.FriendbotURL, cfg.RequestsPerSecond, log)
}

// NewClientWithHTTPClient creates a Client with a custom http.Client.
// This constructor is intended for testing against an httptest server.
func NewClientWithHTTPClient(httpClient *http.Client, horizonURL, friendbotURL string, rps float64, log zerolog.Logger) *Client {
	c := &Client{
		http:         httpClient,
		horizonURL:   strings.TrimRight(horizonURL, "/"),
		friendbotURL: friendbotURL,
		log:          log,
	}
	if rps > 0 {
		burst := int(rps)
		if burst < 1 {
			burst = 1
		}
		c.limiter = rate.NewLimiter(rate.Limit(rps), burst)
	}
	return c
}

// AccountExists reports whether Horizon knows the account.
func (c *Client) AccountExists(ctx context.Context, publicKey string) (bool, error) {
	status, _, err := c.get(ctx, "account_exists", c.accountURL(publicKey))
	if err != nil {
		return false, err
	}
	switch status {
	case http.StatusOK:
		return true, nil
	case http.StatusNotFound:
		return false, nil
	default:
		return false, fmt.Errorf("horizon account lookup: unexpected status %d", status)
	}
}

// FundAccount asks Friendbot to create and fund the account.
func (c *Client) FundAccount(ctx context.Context, publicKey string) (string, error) {
	u, err := url.Parse(c.friendbotURL)
	if err != nil {
		return "", fmt.Errorf("friendbot url: %w", err)
	}
	q := u.Query()
	q.Set("addr", publicKey)
	u.RawQuery = q.Encode()

	status, body, err := c.get(ctx, "fund_account", u.String())
	if err != nil {
		return "", err
	}
	if status < 200 || status >= 300 {
		return "", fmt.Errorf("friendbot: status %d: %s", status, problemDetail(body))
	}
	hash := gjson.GetBytes(body, "hash").String()
	if hash == "" {
		return "", fmt.Errorf("friendbot: response has no transaction hash")
	}
	return hash, nil
}

// GetBalances lists the account's balance lines. An account Horizon does not
// know has no balances.
func (c *Client) GetBalances(ctx context.Context, publicKey string) ([]domain.Balance, error) {
	status, body, err := c.get(ctx, "get_balances", c.accountURL(publicKey))
	if err != nil {
		return nil, err
	}
	switch {
	case status == http.StatusNotFound:
		return []domain.Balance{}, nil
	case status != http.StatusOK:
		return nil, fmt.Errorf("horizon balances: status %d: %s", status, problemDetail(body))
	}

	balances := []domain.Balance{}
	gjson.GetBytes(body, "balances").ForEach(func(_, line gjson.Result) bool {
		b := domain.Balance{Balance: line.Get("balance").String()}
		if line.Get("asset_type").String() == "native" {
			b.AssetCode = domain.NativeAssetCode
		} else {
			b.AssetCode = line.Get("asset_code").String()
			if issuer := line.Get("asset_issuer").String(); issuer != "" {
				b.AssetIssuer = &issuer
			}
		}
		balances = append(balances, b)
		return true
	})
	return balances, nil
}

// SubmitTransaction posts an encoded transaction envelope and returns its hash.
func (c *Client) SubmitTransaction(ctx context.Context, payload string) (string, error) {
	form := url.Values{"tx": {payload}}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.horizonURL+"/transactions",
		strings.NewReader(form.Encode()))
	if err != nil {
		return "", fmt.Errorf("build submit request: %w", err)
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	status, body, err := c.do(req, "submit_transaction")
	if err != nil {
		return "", err
	}
	if status < 200 || status >= 300 {
		return "", fmt.Errorf("horizon submit: status %d: %s", status, problemDetail(body))
	}
	hash := gjson.GetBytes(body, "hash").String()
	if hash == "" {
		return "", fmt.Errorf("horizon submit: response has no transaction hash")
	}
	return hash, nil
}

// GetRecentTxHashes returns up to limit recent transaction hashes, newest
// first. Failures are logged and yield an empty slice.
func (c *Client) GetRecentTxHashes(ctx context.Context, publicKey string, limit int) []string {
	u := c.accountURL(publicKey) + "/transactions?order=desc&limit=" + strconv.Itoa(limit)

	status, body, err := c.get(ctx, "recent_transactions", u)
	if err != nil || status != http.StatusOK {
		c.log.Warn().Err(err).Int("status", status).Str("public_key", publicKey).
			Msg("recent transactions unavailable")
		return []string{}
	}

	hashes := []string{}
	for _, h := range gjson.GetBytes(body, "_embedded.records.#.hash").Array() {
		hashes = append(hashes, h.String())
	}
	return hashes
}

func (c *Client) accountURL(publicKey string) string {
	return c.horizonURL + "/accounts/" + url.PathEscape(publicKey)
}

func (c *Client) get(ctx context.Context, op, rawURL string) (int, []byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return 0, nil, fmt.Errorf("build %s request: %w", op, err)
	}
	return c.do(req, op)
}

// do paces, sends and fully reads req. Transport failures and 5xx responses
// count as failed ledger requests.
func (c *Client) do(req *http.Request, op string) (int, []byte, error) {
	if c.limiter != nil {
		if err := c.limiter.Wait(req.Context()); err != nil {
			metrics.RecordLedgerRequest(op, false)
			return 0, nil, fmt.Errorf("%s: waiting for rate limiter: %w", op, err)
		}
	}
	req.Header.Set("Accept", "application/json")

	start := time.Now()
	resp, err := c.http.Do(req)
	if err != nil {
		metrics.RecordLedgerRequest(op, false)
		return 0, nil, fmt.Errorf("%s: %w", op, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBodyBytes))
	if err != nil {
		metrics.RecordLedgerRequest(op, false)
		return 0, nil, fmt.Errorf("%s: reading body: %w", op, err)
	}

	metrics.RecordLedgerRequest(op, resp.StatusCode < 500)
	c.log.Debug().
		Str("operation", op).
		Int("status", resp.StatusCode).
		Dur("elapsed", time.Since(start)).
		Msg("horizon request")
	return resp.StatusCode, body, nil
}

// problemDetail extracts the most specific message from a Horizon problem
// document.
func problemDetail(body []byte) string {
	for _, path := range []string{
		"extras.result_codes.transaction",
		"detail",
		"title",
	} {
		if v := gjson.GetBytes(body, path); v.Exists() && v.String() != "" {
			return v.String()
		}
	}
	if len(body) > 200 {
		body = body[:200]
	}
	return string(body)
}
