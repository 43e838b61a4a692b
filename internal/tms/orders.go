package tms

import (
	"context"
	"net/url"
)

// ListOrders fetches orders with optional status and paging filters.
func (c *Client) ListOrders(ctx context.Context, params ListParams) (*OrderList, error) {
	var out OrderList
	if err := c.transport.Get(ctx, "/orders", params.values(), &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// GetOrder fetches a single order by ID.
func (c *Client) GetOrder(ctx context.Context, id string) (*Order, error) {
	var out Order
	if err := c.transport.Get(ctx, "/orders/"+url.PathEscape(id), nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// CreateOrder registers a new order.
func (c *Client) CreateOrder(ctx context.Context, req OrderCreate) (*Order, error) {
	var out Order
	if err := c.transport.Post(ctx, "/orders", req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// UpdateOrder mutates an existing order.
func (c *Client) UpdateOrder(ctx context.Context, id string, req OrderCreate) (*Order, error) {
	var out Order
	if err := c.transport.Put(ctx, "/orders/"+url.PathEscape(id), req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}
