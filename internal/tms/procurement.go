package tms

import "context"

// ListContracts fetches carrier contracts with optional status and paging
// filters.
func (c *Client) ListContracts(ctx context.Context, params ListParams) (*ContractList, error) {
	var out ContractList
	if err := c.transport.Get(ctx, "/procurement/contracts", params.values(), &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// ListRFQs fetches requests for quote.
func (c *Client) ListRFQs(ctx context.Context, params ListParams) (*RFQList, error) {
	var out RFQList
	if err := c.transport.Get(ctx, "/procurement/rfqs", params.values(), &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// GetProcurementSummary fetches the spend and savings headline figures.
func (c *Client) GetProcurementSummary(ctx context.Context) (*ProcurementSummary, error) {
	var out ProcurementSummary
	if err := c.transport.Get(ctx, "/procurement/summary", nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}
