// Package turvo talks to the Turvo carrier-execution platform. The API
// token is supplied per call by the user and never stored server-side.
package turvo

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/haulfront/haulfront-backend/pkg/config"
	pkgerrors "github.com/haulfront/haulfront-backend/pkg/errors"
)

const responseBodyReadLimit int64 = 1024

// CarrierInfo identifies the carrier assigned to an exported shipment.
type CarrierInfo struct {
	ID        string `json:"id"`
	Name      string `json:"name" validate:"required"`
	MCNumber  string `json:"mcNumber,omitempty"`
	DOTNumber string `json:"dotNumber,omitempty"`
}

// ShipmentExport is the payload sent when pushing a shipment out.
type ShipmentExport struct {
	ShipmentID  string      `json:"shipmentId" validate:"required"`
	Carrier     CarrierInfo `json:"carrierInfo"`
	Origin      string      `json:"origin,omitempty"`
	Destination string      `json:"destination,omitempty"`
}

// CreatedShipment is the platform's acknowledgment.
type CreatedShipment struct {
	ID     string `json:"id"`
	Status string `json:"status,omitempty"`
}

// Client performs token-authenticated calls against the platform API.
type Client struct {
	httpClient *http.Client
	baseURL    string
}

// Option configures the client.
type Option func(*Client)

// WithHTTPClient overrides the default HTTP client.
func WithHTTPClient(httpClient *http.Client) Option {
	return func(c *Client) {
		if httpClient != nil {
			c.httpClient = httpClient
		}
	}
}

// NewClient builds the platform client from configuration.
func NewClient(cfg config.TurvoConfig, opts ...Option) *Client {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 15 * time.Second
	}
	c := &Client{
		httpClient: &http.Client{Timeout: timeout},
		baseURL:    strings.TrimRight(cfg.BaseURL, "/"),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// TestConnection verifies that the given API token is accepted.
func (c *Client) TestConnection(ctx context.Context, apiToken string) error {
	return c.post(ctx, "/connection/test", apiToken, struct{}{}, nil)
}

// CreateShipment pushes a shipment to the platform and returns its
// identifier there.
func (c *Client) CreateShipment(ctx context.Context, apiToken string, export ShipmentExport) (*CreatedShipment, error) {
	var out CreatedShipment
	if err := c.post(ctx, "/shipments", apiToken, export, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) post(ctx context.Context, path, apiToken string, body, out any) error {
	if strings.TrimSpace(apiToken) == "" {
		return pkgerrors.New(pkgerrors.CodeValidation, "turvo api token is required")
	}

	payload, err := json.Marshal(body)
	if err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeInternal, err, "marshal turvo request body")
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, bytes.NewReader(payload))
	if err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeInternal, err, fmt.Sprintf("build POST %s", path))
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+strings.TrimSpace(apiToken))

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeTransport, err, fmt.Sprintf("execute POST %s", path))
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode == http.StatusUnauthorized || resp.StatusCode == http.StatusForbidden {
		return pkgerrors.New(pkgerrors.CodeUnauthorized, "turvo rejected the api token")
	}
	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		snippet, _ := io.ReadAll(io.LimitReader(resp.Body, responseBodyReadLimit))
		return pkgerrors.RequestFailed(resp.StatusCode, fmt.Sprintf("POST %s: %s", path, strings.TrimSpace(string(snippet))))
	}

	if out != nil {
		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			return pkgerrors.Wrap(pkgerrors.CodeDecode, err, fmt.Sprintf("decode POST %s response", path))
		}
	}
	return nil
}
