// Package coingecko implements ports.RateOracle using the CoinGecko
// simple price API.
package coingecko

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"wallet-backend/config"
	"wallet-backend/internal/core/ports"

	"github.com/gregjones/httpcache"
	"github.com/rs/zerolog"
	"github.com/tidwall/gjson"
)

// Compile-time interface satisfaction check.
var _ ports.RateOracle = (*Client)(nil)

// coinIDs maps ticker symbols to CoinGecko coin ids. Unknown symbols are
// passed through lowercased.
var coinIDs = map[string]string{
	"XLM":  "stellar",
	"USDC": "usd-coin",
	"BTC":  "bitcoin",
	"ETH":  "ethereum",
}

// Client quotes prices from CoinGecko. Responses are cached in memory and
// revalidated according to the API's Cache-Control headers.
type Client struct {
	http    *http.Client
	baseURL string
	log     zerolog.Logger
}

// NewClient creates a CoinGecko client with an in-memory HTTP cache.
func NewClient(cfg config.ExternalAPIsConfig, log zerolog.Logger) *Client {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	httpClient := httpcache.NewMemoryCacheTransport().Client()
	httpClient.Timeout = timeout
	return NewClientWithHTTPClient(httpClient, cfg.CoinGeckoURL, log)
}

// NewClientWithHTTPClient creates a Client with a custom http.Client and base URL.
// This constructor is intended for testing against an httptest server.
func NewClientWithHTTPClient(httpClient *http.Client, baseURL string, log zerolog.Logger) *Client {
	return &Client{
		http:    httpClient,
		baseURL: strings.TrimRight(baseURL, "/"),
		log:     log,
	}
}

// CoinID returns the CoinGecko id for a ticker symbol.
func CoinID(symbol string) string {
	if id, ok := coinIDs[strings.ToUpper(symbol)]; ok {
		return id
	}
	return strings.ToLower(symbol)
}

// GetExchangeRate returns the price of one unit of from, denominated in to.
func (c *Client) GetExchangeRate(ctx context.Context, from, to string) (float64, error) {
	id := CoinID(from)
	vs := strings.ToLower(to)

	q := url.Values{}
	q.Set("ids", id)
	q.Set("vs_currencies", vs)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/simple/price?"+q.Encode(), nil)
	if err != nil {
		return 0, fmt.Errorf("build price request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return 0, fmt.Errorf("coingecko price %s/%s: %w", id, vs, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, 64<<10))
	if err != nil {
		return 0, fmt.Errorf("coingecko price: reading body: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return 0, fmt.Errorf("coingecko price %s/%s: status %d", id, vs, resp.StatusCode)
	}

	price := gjson.GetBytes(body, gjson.Escape(id)+"."+gjson.Escape(vs))
	if !price.Exists() {
		return 0, fmt.Errorf("coingecko price %s/%s: no quote in response", id, vs)
	}

	c.log.Debug().
		Str("coin", id).
		Str("vs", vs).
		Float64("price", price.Float()).
		Bool("cached", resp.Header.Get(httpcache.XFromCache) != "").
		Msg("price quote")
	return price.Float(), nil
}
