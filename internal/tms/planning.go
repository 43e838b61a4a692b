package tms

import (
	"context"
	"net/url"
)

// OptimizeLoadPlan asks planning to consolidate the given orders into a plan.
func (c *Client) OptimizeLoadPlan(ctx context.Context, req OptimizeRequest) (*OptimizationResult, error) {
	var out OptimizationResult
	if err := c.transport.Post(ctx, "/planning/optimize", req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// ListLoadPlans fetches load plans with optional status and paging filters.
func (c *Client) ListLoadPlans(ctx context.Context, params ListParams) (*LoadPlanList, error) {
	var out LoadPlanList
	if err := c.transport.Get(ctx, "/planning/load-plans", params.values(), &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// GetLoadPlan fetches a single load plan by ID.
func (c *Client) GetLoadPlan(ctx context.Context, id string) (*LoadPlan, error) {
	var out LoadPlan
	if err := c.transport.Get(ctx, "/planning/load-plans/"+url.PathEscape(id), nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// OptimizeRoutes requests an optimized route for a shipment.
func (c *Client) OptimizeRoutes(ctx context.Context, req RouteOptimizeRequest) (*RouteOptimization, error) {
	var out RouteOptimization
	if err := c.transport.Post(ctx, "/planning/routes/optimize", req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// GetCapacityPlan fetches the forward capacity projection.
func (c *Client) GetCapacityPlan(ctx context.Context, params CapacityParams) (*CapacityPlan, error) {
	var out CapacityPlan
	if err := c.transport.Get(ctx, "/planning/capacity", params.values(), &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// RealTimeOptimize re-optimizes in-flight plans against live conditions.
func (c *Client) RealTimeOptimize(ctx context.Context, req OptimizeRequest) (*OptimizationResult, error) {
	var out OptimizationResult
	if err := c.transport.Post(ctx, "/planning/real-time/optimize", req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// MultiModalOptimize evaluates mode mixes (road/rail/ocean/air) for a plan.
func (c *Client) MultiModalOptimize(ctx context.Context, req OptimizeRequest) (*OptimizationResult, error) {
	var out OptimizationResult
	if err := c.transport.Post(ctx, "/planning/multi-modal", req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}
