package tms

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

	"github.com/sethvargo/go-retry"

	"github.com/haulfront/haulfront-backend/pkg/config"
	pkgerrors "github.com/haulfront/haulfront-backend/pkg/errors"
	"github.com/haulfront/haulfront-backend/pkg/metrics"
)

const responseBodyReadLimit int64 = 1024

var errBaseURLRequired = errors.New("upstream base url is required")

// Transport performs authenticated JSON requests against the upstream TMS
// API. Reads are retried with exponential backoff on transient failures;
// mutations fire once because upstream idempotency is not guaranteed.
type Transport struct {
	httpClient *http.Client
	baseURL    string
	token      string
	maxRetries uint64
	retryBase  time.Duration
	metrics    *metrics.DashboardMetrics
}

// TransportOption configures optional transport behavior.
type TransportOption func(*Transport)

// WithHTTPClient overrides the default HTTP client.
func WithHTTPClient(client *http.Client) TransportOption {
	return func(t *Transport) {
		if client != nil {
			t.httpClient = client
		}
	}
}

// WithMetrics wires request counters into the transport.
func WithMetrics(m *metrics.DashboardMetrics) TransportOption {
	return func(t *Transport) {
		t.metrics = m
	}
}

// NewTransport builds the upstream transport from configuration.
func NewTransport(cfg config.UpstreamConfig, opts ...TransportOption) (*Transport, error) {
	baseURL := strings.TrimSpace(cfg.BaseURL)
	if baseURL == "" {
		return nil, errBaseURLRequired
	}

	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	retryBase := cfg.RetryBaseDelay
	if retryBase <= 0 {
		retryBase = 200 * time.Millisecond
	}

	t := &Transport{
		httpClient: &http.Client{Timeout: timeout},
		baseURL:    strings.TrimRight(baseURL, "/"),
		token:      strings.TrimSpace(cfg.Token),
		maxRetries: cfg.RetryAttempts,
		retryBase:  retryBase,
	}

	for _, opt := range opts {
		if opt != nil {
			opt(t)
		}
	}

	if t.httpClient == nil {
		t.httpClient = &http.Client{Timeout: timeout}
	}

	return t, nil
}

// Get issues a retried GET and decodes the JSON response into out.
func (t *Transport) Get(ctx context.Context, path string, query url.Values, out any) error {
	backoff := retry.WithMaxRetries(t.maxRetries, retry.NewExponential(t.retryBase))
	return retry.Do(ctx, backoff, func(ctx context.Context) error {
		err := t.do(ctx, http.MethodGet, path, query, nil, out)
		if err != nil && pkgerrors.Retryable(err) {
			return retry.RetryableError(err)
		}
		return err
	})
}

// Post issues a fire-once POST with a JSON body.
func (t *Transport) Post(ctx context.Context, path string, body, out any) error {
	payload, err := json.Marshal(body)
	if err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeInternal, err, "marshal request body")
	}
	return t.do(ctx, http.MethodPost, path, nil, payload, out)
}

// Put issues a fire-once PUT with a JSON body.
func (t *Transport) Put(ctx context.Context, path string, body, out any) error {
	payload, err := json.Marshal(body)
	if err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeInternal, err, "marshal request body")
	}
	return t.do(ctx, http.MethodPut, path, nil, payload, out)
}

func (t *Transport) do(ctx context.Context, method, path string, query url.Values, payload []byte, out any) error {
	if t == nil {
		return pkgerrors.New(pkgerrors.CodeInternal, "transport not configured")
	}

	fullURL := t.buildURL(path)
	if len(query) > 0 {
		fullURL = fullURL + "?" + query.Encode()
	}

	var body io.Reader
	if payload != nil {
		body = bytes.NewReader(payload)
	}

	httpReq, err := http.NewRequestWithContext(ctx, method, fullURL, body)
	if err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeInternal, err, fmt.Sprintf("build %s %s", method, path))
	}

	httpReq.Header.Set("Content-Type", "application/json")
	if t.token != "" {
		httpReq.Header.Set("Authorization", "Bearer "+t.token)
	}

	resp, err := t.httpClient.Do(httpReq)
	if err != nil {
		t.observe(path, "transport_error")
		return pkgerrors.Wrap(pkgerrors.CodeTransport, err, fmt.Sprintf("execute %s %s", method, path))
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		snippet, _ := io.ReadAll(io.LimitReader(resp.Body, responseBodyReadLimit))
		t.observe(path, "request_failed")
		return pkgerrors.RequestFailed(resp.StatusCode, fmt.Sprintf("%s %s: %s", method, path, strings.TrimSpace(string(snippet))))
	}

	if out != nil {
		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			t.observe(path, "decode_error")
			return pkgerrors.Wrap(pkgerrors.CodeDecode, err, fmt.Sprintf("decode %s %s response", method, path))
		}
	}

	t.observe(path, "ok")
	return nil
}

func (t *Transport) observe(endpoint, outcome string) {
	if t.metrics != nil {
		t.metrics.ObserveUpstream(endpoint, outcome)
	}
}

func (t *Transport) buildURL(path string) string {
	return t.baseURL + "/" + strings.TrimLeft(path, "/")
}
