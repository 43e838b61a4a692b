package tms

import (
	"context"
	"net/url"
)

// ListCarriers fetches carriers with optional paging and score filters.
func (c *Client) ListCarriers(ctx context.Context, params CarrierListParams) (*CarrierList, error) {
	var out CarrierList
	if err := c.transport.Get(ctx, "/carriers", params.values(), &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// GetCarrier fetches a single carrier by ID.
func (c *Client) GetCarrier(ctx context.Context, id string) (*Carrier, error) {
	var out Carrier
	if err := c.transport.Get(ctx, "/carriers/"+url.PathEscape(id), nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// CreateCarrier registers a new carrier.
func (c *Client) CreateCarrier(ctx context.Context, req CarrierCreate) (*Carrier, error) {
	var out Carrier
	if err := c.transport.Post(ctx, "/carriers", req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// UpdateCarrier mutates an existing carrier.
func (c *Client) UpdateCarrier(ctx context.Context, id string, req CarrierUpdate) (*Carrier, error) {
	var out Carrier
	if err := c.transport.Put(ctx, "/carriers/"+url.PathEscape(id), req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// RecommendCarriers scores carriers against a tender's requirements.
func (c *Client) RecommendCarriers(ctx context.Context, req ShipmentRequirements) ([]CarrierRecommendation, error) {
	var out struct {
		Recommendations []CarrierRecommendation `json:"recommendations"`
	}
	if err := c.transport.Post(ctx, "/carriers/recommendations", req, &out); err != nil {
		return nil, err
	}
	return out.Recommendations, nil
}

// GetCarrierAnalytics fetches fleet-level carrier analytics.
func (c *Client) GetCarrierAnalytics(ctx context.Context, params AnalyticsParams) (*CarrierAnalytics, error) {
	var out CarrierAnalytics
	if err := c.transport.Get(ctx, "/carriers/analytics", params.values(), &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// GetCarrierCompliance fetches the compliance summary.
func (c *Client) GetCarrierCompliance(ctx context.Context) (*ComplianceSummary, error) {
	var out ComplianceSummary
	if err := c.transport.Get(ctx, "/carriers/compliance", nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// GetCarrierPerformance fetches historical performance for one carrier.
func (c *Client) GetCarrierPerformance(ctx context.Context, id string) (*CarrierPerformance, error) {
	var out CarrierPerformance
	if err := c.transport.Get(ctx, "/carriers/"+url.PathEscape(id)+"/performance", nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// OnboardCarrier runs the guided onboarding flow for a new carrier.
func (c *Client) OnboardCarrier(ctx context.Context, req CarrierCreate) (*Carrier, error) {
	var out Carrier
	if err := c.transport.Post(ctx, "/carriers/onboard", req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}
