package binance

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"

	json "github.com/goccy/go-json"
	"github.com/spreadmon/spreadmon/pkg/types"
	"go.uber.org/zap"
	"golang.org/x/time/rate"
)

// API paths on the Binance spot REST surface.
const (
	endpointPing         = "/api/v3/ping"
	endpointExchangeInfo = "/api/v3/exchangeInfo"
	endpointTicker24h    = "/api/v3/ticker/24hr"
	endpointTickerPrice  = "/api/v3/ticker/price"
	endpointBookTicker   = "/api/v3/ticker/bookTicker"
	endpointDepth        = "/api/v3/depth"
)

// Client is a typed HTTP client for the Binance spot market-data API.
// It performs no retries and no caching; callers own the retry policy.
// A shared rate limiter paces requests under Binance's request-weight
// limits.
type Client struct {
	baseURL    string
	httpClient *http.Client
	limiter    *rate.Limiter
	logger     *zap.Logger
}

// Config holds client configuration.
type Config struct {
	BaseURL           string
	Timeout           time.Duration
	RequestsPerSecond float64
	Logger            *zap.Logger
}

// NewClient creates a new Binance market-data client.
func NewClient(cfg *Config) *Client {
	return &Client{
		baseURL: cfg.BaseURL,
		httpClient: &http.Client{
			Timeout: cfg.Timeout,
		},
		limiter: rate.NewLimiter(rate.Limit(cfg.RequestsPerSecond), 1),
		logger:  cfg.Logger,
	}
}

// Ping verifies connectivity to the exchange.
func (c *Client) Ping(ctx context.Context) error {
	return c.get(ctx, endpointPing, nil, nil)
}

// ExchangeInfo fetches the full exchange symbol metadata.
func (c *Client) ExchangeInfo(ctx context.Context) (*types.ExchangeInfo, error) {
	var info types.ExchangeInfo
	err := c.get(ctx, endpointExchangeInfo, nil, &info)
	if err != nil {
		return nil, err
	}

	return &info, nil
}

// Ticker24h fetches 24-hour ticker statistics for the given symbols in one
// batched request.
func (c *Client) Ticker24h(ctx context.Context, symbols []string) ([]types.Ticker24h, error) {
	// Binance expects the batch as a JSON array in the symbols parameter.
	batch, err := json.Marshal(symbols)
	if err != nil {
		return nil, fmt.Errorf("encode symbols: %w", err)
	}

	params := url.Values{}
	params.Set("symbols", string(batch))

	var tickers []types.Ticker24h
	err = c.get(ctx, endpointTicker24h, params, &tickers)
	if err != nil {
		return nil, err
	}

	return tickers, nil
}

// TickerPrice fetches the latest traded price for a symbol.
func (c *Client) TickerPrice(ctx context.Context, symbol string) (*types.PriceTicker, error) {
	params := url.Values{}
	params.Set("symbol", symbol)

	var ticker types.PriceTicker
	err := c.get(ctx, endpointTickerPrice, params, &ticker)
	if err != nil {
		return nil, err
	}

	return &ticker, nil
}

// BookTicker fetches the best bid and ask for a symbol.
func (c *Client) BookTicker(ctx context.Context, symbol string) (*types.BookTicker, error) {
	params := url.Values{}
	params.Set("symbol", symbol)

	var ticker types.BookTicker
	err := c.get(ctx, endpointBookTicker, params, &ticker)
	if err != nil {
		return nil, err
	}

	return &ticker, nil
}

// Depth fetches an order-book snapshot truncated to limit levels per side.
func (c *Client) Depth(ctx context.Context, symbol string, limit int) (*types.Depth, error) {
	params := url.Values{}
	params.Set("symbol", symbol)
	params.Set("limit", strconv.Itoa(limit))

	var depth types.Depth
	err := c.get(ctx, endpointDepth, params, &depth)
	if err != nil {
		return nil, err
	}

	return &depth, nil
}

// apiErrorBody is the error payload Binance attaches to non-2xx responses.
type apiErrorBody struct {
	Code int    `json:"code"`
	Msg  string `json:"msg"`
}

// get issues one GET request and decodes the response into out (skipped when
// out is nil). Transport failures surface as *types.TransportError, non-2xx
// responses as *types.APIError.
func (c *Client) get(ctx context.Context, endpoint string, params url.Values, out interface{}) error {
	err := c.limiter.Wait(ctx)
	if err != nil {
		return fmt.Errorf("rate limiter: %w", err)
	}

	requestURL := c.baseURL + endpoint
	if len(params) > 0 {
		requestURL += "?" + params.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, requestURL, nil)
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}

	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", "spreadmon/1.0")

	c.logger.Debug("binance-request", zap.String("endpoint", endpoint))

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	RequestDurationSeconds.WithLabelValues(endpoint).Observe(time.Since(start).Seconds())

	if err != nil {
		RequestsTotal.WithLabelValues(endpoint, outcomeTransportError).Inc()
		return &types.TransportError{Endpoint: endpoint, Err: err}
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		RequestsTotal.WithLabelValues(endpoint, outcomeTransportError).Inc()
		return &types.TransportError{Endpoint: endpoint, Err: err}
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		RequestsTotal.WithLabelValues(endpoint, outcomeAPIError).Inc()

		apiErr := &types.APIError{Endpoint: endpoint, StatusCode: resp.StatusCode}

		// Binance error bodies are {"code":...,"msg":...}; anything else is
		// reported with the status alone.
		var parsed apiErrorBody
		if json.Unmarshal(body, &parsed) == nil {
			apiErr.Code = parsed.Code
			apiErr.Message = parsed.Msg
		}

		return apiErr
	}

	RequestsTotal.WithLabelValues(endpoint, outcomeOK).Inc()

	if out == nil {
		return nil
	}

	err = json.Unmarshal(body, out)
	if err != nil {
		return fmt.Errorf("unmarshal %s response: %w", endpoint, err)
	}

	return nil
}
