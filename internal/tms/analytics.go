package tms

import "context"

// GetDashboardSnapshot fetches the headline dashboard metrics.
func (c *Client) GetDashboardSnapshot(ctx context.Context) (*DashboardSnapshot, error) {
	var out DashboardSnapshot
	if err := c.transport.Get(ctx, "/analytics/dashboard", nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// GetPerformanceReport fetches a performance time series.
func (c *Client) GetPerformanceReport(ctx context.Context, params PerformanceParams) (*PerformanceReport, error) {
	var out PerformanceReport
	if err := c.transport.Get(ctx, "/analytics/performance", params.values(), &out); err != nil {
		return nil, err
	}
	return &out, nil
}
