package dashboard

import (
	"context"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/haulfront/haulfront-backend/internal/tms"
	"github.com/haulfront/haulfront-backend/internal/views"
)

const procurementPage = "procurement"

// ProcurementPage is the rendered strategic procurement page.
type ProcurementPage struct {
	Summary            *tms.ProcurementSummary `json:"summary,omitempty"`
	Contracts          []tms.Contract          `json:"contracts"`
	RFQs               []tms.RFQ               `json:"rfqs"`
	ActiveContracts    int                     `json:"activeContracts"`
	OpenRFQs           int                     `json:"openRFQs"`
	TotalContractValue decimal.Decimal         `json:"totalContractValue"`
	Source             views.Source            `json:"source"`
}

type procurementLoader interface {
	ListContracts(ctx context.Context, params tms.ListParams) (*tms.ContractList, error)
	ListRFQs(ctx context.Context, params tms.ListParams) (*tms.RFQList, error)
	GetProcurementSummary(ctx context.Context) (*tms.ProcurementSummary, error)
}

// contracts and RFQs stand or fall together: the page is degraded as a
// whole, never half live and half fixture.
type procurementData struct {
	contracts *tms.ContractList
	rfqs      *tms.RFQList
}

// ProcurementService loads the strategic procurement page.
type ProcurementService struct {
	loader procurementLoader
	hooks  views.FallbackHooks
}

// NewProcurementService builds the procurement page service.
func NewProcurementService(loader procurementLoader, hooks views.FallbackHooks) *ProcurementService {
	return &ProcurementService{loader: loader, hooks: hooks}
}

// Load returns the procurement page filtered by query. The text filter
// searches contract carrier/type/lanes and RFQ title/award/lanes; the
// counts and the contract value sum cover the full lists.
func (s *ProcurementService) Load(ctx context.Context, query string) ProcurementPage {
	data, source := views.LoadWithFallback(ctx, procurementPage,
		func(ctx context.Context) (procurementData, error) {
			contracts, err := s.loader.ListContracts(ctx, tms.ListParams{})
			if err != nil {
				return procurementData{}, err
			}
			rfqs, err := s.loader.ListRFQs(ctx, tms.ListParams{})
			if err != nil {
				return procurementData{}, err
			}
			return procurementData{contracts: contracts, rfqs: rfqs}, nil
		},
		func() procurementData {
			return procurementData{contracts: tms.DemoContracts(), rfqs: tms.DemoRFQs()}
		},
		s.hooks,
	)

	visibleContracts := views.Filter(data.contracts.Contracts, func(c tms.Contract) bool {
		return views.MatchesQuery(query, c.CarrierName, c.ContractType, strings.Join(c.Lanes, " "))
	})
	visibleRFQs := views.Filter(data.rfqs.RFQs, func(r tms.RFQ) bool {
		return views.MatchesQuery(query, r.Title, r.AwardedTo, strings.Join(r.Lanes, " "))
	})

	total := decimal.Zero
	for _, c := range data.contracts.Contracts {
		total = total.Add(c.TotalValue)
	}

	page := ProcurementPage{
		Contracts: visibleContracts,
		RFQs:      visibleRFQs,
		ActiveContracts: views.CountBy(data.contracts.Contracts, func(c tms.Contract) bool {
			return c.Status == "ACTIVE"
		}),
		OpenRFQs: views.CountBy(data.rfqs.RFQs, func(r tms.RFQ) bool {
			return r.Status == "OPEN"
		}),
		TotalContractValue: total,
		Source:             source,
	}

	if source == views.SourceFixture {
		page.Summary = tms.DemoProcurementSummary()
	} else if summary, err := s.loader.GetProcurementSummary(ctx); err == nil {
		page.Summary = summary
	}
	return page
}
