package tms

import (
	"context"
	"net/url"
)

// ListShipments fetches shipments with optional status and paging filters.
func (c *Client) ListShipments(ctx context.Context, params ListParams) (*ShipmentList, error) {
	var out ShipmentList
	if err := c.transport.Get(ctx, "/shipments", params.values(), &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// GetShipment fetches a single shipment by ID.
func (c *Client) GetShipment(ctx context.Context, id string) (*Shipment, error) {
	var out Shipment
	if err := c.transport.Get(ctx, "/shipments/"+url.PathEscape(id), nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// CreateShipment registers a new shipment.
func (c *Client) CreateShipment(ctx context.Context, req ShipmentCreate) (*Shipment, error) {
	var out Shipment
	if err := c.transport.Post(ctx, "/shipments", req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// UpdateShipment mutates an existing shipment.
func (c *Client) UpdateShipment(ctx context.Context, id string, req ShipmentUpdate) (*Shipment, error) {
	var out Shipment
	if err := c.transport.Put(ctx, "/shipments/"+url.PathEscape(id), req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// TrackShipment fetches the ordered tracking trail for a shipment.
func (c *Client) TrackShipment(ctx context.Context, id string) ([]TrackingPoint, error) {
	var out struct {
		TrackingData []TrackingPoint `json:"trackingData"`
	}
	if err := c.transport.Get(ctx, "/shipments/"+url.PathEscape(id)+"/track", nil, &out); err != nil {
		return nil, err
	}
	return out.TrackingData, nil
}
