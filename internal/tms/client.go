package tms

import (
	"context"
	"net/url"
)

// requester is the transport surface the facade depends on. Tests substitute
// a fake; production wires *Transport.
type requester interface {
	Get(ctx context.Context, path string, query url.Values, out any) error
	Post(ctx context.Context, path string, body, out any) error
	Put(ctx context.Context, path string, body, out any) error
}

// Client is the typed facade over the upstream TMS API. One method per
// resource/action; it builds query strings and delegates to the transport
// without catching its errors. Callers decide whether to fall back to
// fixture data.
type Client struct {
	transport requester
}

// NewClient builds the facade around the given transport.
func NewClient(transport requester) *Client {
	return &Client{transport: transport}
}
