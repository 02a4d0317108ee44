package kraken_http

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/charleschow/kraken-buy/internal/adapters/kraken_auth"
	"github.com/charleschow/kraken-buy/internal/telemetry"
)

const DefaultTimeout = 10 * time.Second

type Client struct {
	baseURL    string
	httpClient *http.Client
	signer     *kraken_auth.Signer
	nonces     *kraken_auth.NonceSource
}

type Option func(*Client)

// WithTimeout bounds every request. Zero leaves the default in place.
func WithTimeout(d time.Duration) Option {
	return func(c *Client) {
		if d > 0 {
			c.httpClient.Timeout = d
		}
	}
}

func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.httpClient = hc }
}

func WithNonceSource(n *kraken_auth.NonceSource) Option {
	return func(c *Client) { c.nonces = n }
}

// NewClient returns a client for baseURL. signer may be nil when only public
// endpoints are used.
func NewClient(baseURL string, signer *kraken_auth.Signer, opts ...Option) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	c := &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{
			Timeout: DefaultTimeout,
		},
		signer: signer,
		nonces: kraken_auth.NewNonceSource(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Public performs an unauthenticated GET and returns the validated result.
func (c *Client) Public(ctx context.Context, name string, params url.Values) (json.RawMessage, error) {
	ep, err := ResolveEndpoint(name)
	if err != nil {
		return nil, err
	}
	if ep.RequiresSigning() {
		return nil, fmt.Errorf("%w: %s is private", ErrInvalidEndpoint, name)
	}

	u := ep.URL(c.baseURL)
	if len(params) > 0 {
		u += "?" + params.Encode()
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return nil, fmt.Errorf("new request: %w", err)
	}
	return c.do(req, ep)
}

// Private attaches a nonce to params, signs the encoded body and POSTs it.
// params is not modified.
func (c *Client) Private(ctx context.Context, name string, params url.Values) (json.RawMessage, error) {
	ep, err := ResolveEndpoint(name)
	if err != nil {
		return nil, err
	}
	if !ep.RequiresSigning() {
		return nil, fmt.Errorf("%w: %s is public", ErrInvalidEndpoint, name)
	}
	if !c.signer.Enabled() {
		return nil, ErrMissingCredentials
	}

	form := url.Values{}
	for k, vs := range params {
		form[k] = append([]string(nil), vs...)
	}
	nonce := c.nonces.Next()
	form.Set("nonce", nonce)
	body := form.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, ep.URL(c.baseURL), strings.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("new request: %w", err)
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded; charset=utf-8")

	if err := c.signer.SignRequest(req, nonce, body); err != nil {
		return nil, fmt.Errorf("sign: %w", err)
	}
	return c.do(req, ep)
}

func (c *Client) do(req *http.Request, ep Endpoint) (json.RawMessage, error) {
	req.Header.Set("Accept", "application/json")
	telemetry.Metrics.RequestsSent.Inc()

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		telemetry.Metrics.RequestErrors.Inc()
		telemetry.Debugf("kraken_http: %s %s failed: %v", req.Method, ep.Path, err)
		return nil, unreachable(0, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		telemetry.Metrics.RequestErrors.Inc()
		return nil, unreachable(0, fmt.Errorf("read response: %w", err))
	}

	elapsed := time.Since(start)
	telemetry.Metrics.RequestLatency.Record(elapsed)
	telemetry.Debugf("kraken_http: %s %s -> %d (%s)", req.Method, ep.Path, resp.StatusCode, elapsed)

	result, err := validateResponse(resp.StatusCode, body)
	if err != nil {
		telemetry.Metrics.RequestErrors.Inc()
		return nil, err
	}
	return result, nil
}
