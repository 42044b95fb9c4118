package hyperliquid

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	brconfig "hlpnl/internal/config"
	"hlpnl/internal/pkg/circuit"
	"hlpnl/internal/pkg/text"
	"hlpnl/internal/pnl"
)

// Request types understood by the /info endpoint.
const (
	typePortfolio   = "portfolio"
	typeUserFills   = "userFills"
	typeUserFunding = "userFunding"
)

const (
	maxErrorBody = 4096
	maxErrorText = 512
)

// Client wraps the Hyperliquid /info API calls needed for PnL reporting.
type Client struct {
	baseURL    *url.URL
	httpClient *http.Client
	breakers   map[string]*circuit.Breaker
}

// NewClient constructs a client from configuration.
func NewClient(cfg brconfig.HyperliquidConfig) (*Client, error) {
	raw := strings.TrimSpace(cfg.BaseURL)
	if raw == "" {
		return nil, fmt.Errorf("hyperliquid.base_url cannot be empty")
	}
	parsed, err := url.Parse(raw)
	if err != nil {
		return nil, fmt.Errorf("parse hyperliquid.base_url: %w", err)
	}
	timeout := time.Duration(cfg.TimeoutSeconds) * time.Second
	if timeout <= 0 {
		timeout = 15 * time.Second
	}
	cooldown := time.Duration(cfg.BreakerCooldownSeconds) * time.Second
	breakers := make(map[string]*circuit.Breaker, 3)
	for _, typ := range []string{typePortfolio, typeUserFills, typeUserFunding} {
		breakers[typ] = circuit.New("hyperliquid."+typ, cfg.BreakerThreshold, cooldown)
	}
	return &Client{
		baseURL:    parsed,
		httpClient: &http.Client{Timeout: timeout},
		breakers:   breakers,
	}, nil
}

// SetHTTPClient sets the HTTP client for testing.
func (c *Client) SetHTTPClient(client *http.Client) {
	c.httpClient = client
}

// Portfolio returns the account's cumulative PnL and equity history.
func (c *Client) Portfolio(ctx context.Context, user string) (pnl.PortfolioHistory, error) {
	raw, err := c.info(ctx, typePortfolio, map[string]any{"user": user})
	if err != nil {
		return pnl.PortfolioHistory{}, err
	}
	return parsePortfolio(raw)
}

// UserFills returns every fill the venue reports for user.
func (c *Client) UserFills(ctx context.Context, user string) ([]pnl.Fill, error) {
	raw, err := c.info(ctx, typeUserFills, map[string]any{"user": user})
	if err != nil {
		return nil, err
	}
	return parseFills(raw)
}

// UserFunding returns funding settlements at or after startTime (epoch ms).
func (c *Client) UserFunding(ctx context.Context, user string, startTime int64) ([]pnl.FundingEvent, error) {
	if startTime < 0 {
		startTime = 0
	}
	raw, err := c.info(ctx, typeUserFunding, map[string]any{"user": user, "startTime": startTime})
	if err != nil {
		return nil, err
	}
	return parseFunding(raw)
}

func (c *Client) info(ctx context.Context, reqType string, params map[string]any) ([]byte, error) {
	if c == nil || c.httpClient == nil {
		return nil, fmt.Errorf("hyperliquid client not initialized")
	}
	var out []byte
	call := func() error {
		var err error
		out, err = c.post(ctx, reqType, params)
		return err
	}
	var err error
	if breaker, ok := c.breakers[reqType]; ok {
		err = breaker.DoCounted(call, func(err error) bool { return upstreamFault(ctx, err) })
	} else {
		err = call()
	}
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) post(ctx context.Context, reqType string, params map[string]any) ([]byte, error) {
	body := make(map[string]any, len(params)+1)
	for k, v := range params {
		body[k] = v
	}
	body["type"] = reqType
	buf, err := json.Marshal(body)
	if err != nil {
		return nil, fmt.Errorf("marshal %s request: %w", reqType, err)
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint(), bytes.NewReader(buf))
	if err != nil {
		return nil, fmt.Errorf("build %s request: %w", reqType, err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("call hyperliquid %s: %w", reqType, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 300 {
		data, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
		return nil, &StatusError{
			ReqType: reqType,
			Code:    resp.StatusCode,
			Status:  resp.Status,
			Body:    text.Truncate(string(data), maxErrorText),
		}
	}
	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read hyperliquid %s response: %w", reqType, err)
	}
	return data, nil
}

// StatusError is a non-2xx answer from /info.
type StatusError struct {
	ReqType string
	Code    int
	Status  string
	Body    string
}

func (e *StatusError) Error() string {
	if e.Body == "" {
		return fmt.Sprintf("hyperliquid %s returned %s", e.ReqType, e.Status)
	}
	return fmt.Sprintf("hyperliquid %s returned %s: %s", e.ReqType, e.Status, e.Body)
}

// upstreamFault reports whether err says the venue is unhealthy. A 4xx is a
// bad request for one wallet, and an error after the caller's own ctx ended
// is the caller leaving; neither counts against the breaker.
func upstreamFault(ctx context.Context, err error) bool {
	if err == nil || ctx.Err() != nil {
		return false
	}
	var se *StatusError
	if errors.As(err, &se) {
		return se.Code >= http.StatusInternalServerError
	}
	return true
}

func (c *Client) endpoint() string {
	base := *c.baseURL
	base.Path = strings.TrimSuffix(base.Path, "/") + "/info"
	base.RawPath = ""
	base.RawQuery = ""
	base.Fragment = ""
	return base.String()
}
