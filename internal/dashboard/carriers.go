package dashboard

import (
	"context"

	"github.com/haulfront/haulfront-backend/internal/tms"
	"github.com/haulfront/haulfront-backend/internal/views"
)

const carriersPage = "carriers"

// CarriersPage is the rendered carrier network page.
type CarriersPage struct {
	Carriers     []tms.Carrier             `json:"carriers"`
	ActiveCount  int                       `json:"activeCount"`
	AverageScore int                       `json:"averageScore"`
	Buckets      map[views.ScoreBucket]int `json:"buckets"`
	Analytics    *tms.CarrierAnalytics     `json:"analytics,omitempty"`
	Compliance   *tms.ComplianceSummary    `json:"compliance,omitempty"`
	Source       views.Source              `json:"source"`
}

type carrierLoader interface {
	ListCarriers(ctx context.Context, params tms.CarrierListParams) (*tms.CarrierList, error)
	GetCarrierAnalytics(ctx context.Context, params tms.AnalyticsParams) (*tms.CarrierAnalytics, error)
	GetCarrierCompliance(ctx context.Context) (*tms.ComplianceSummary, error)
}

// CarriersService loads the carrier network page.
type CarriersService struct {
	loader carrierLoader
	hooks  views.FallbackHooks
}

// NewCarriersService builds the carriers page service.
func NewCarriersService(loader carrierLoader, hooks views.FallbackHooks) *CarriersService {
	return &CarriersService{loader: loader, hooks: hooks}
}

// Load returns the carriers page filtered by query. The text filter
// searches carrier name, city, and state. Analytics and compliance are
// best-effort extras: their absence degrades the page, never blanks it.
func (s *CarriersService) Load(ctx context.Context, query string) CarriersPage {
	list, source := views.LoadWithFallback(ctx, carriersPage,
		func(ctx context.Context) (*tms.CarrierList, error) {
			return s.loader.ListCarriers(ctx, tms.CarrierListParams{})
		},
		tms.DemoCarriers,
		s.hooks,
	)

	visible := views.Filter(list.Carriers, func(c tms.Carrier) bool {
		return views.MatchesQuery(query, c.Name, c.City, c.State)
	})

	scores := make([]float64, 0, len(list.Carriers))
	for _, c := range list.Carriers {
		scores = append(scores, c.PerformanceScore)
	}

	page := CarriersPage{
		Carriers: visible,
		ActiveCount: views.CountBy(list.Carriers, func(c tms.Carrier) bool {
			return c.IsActive
		}),
		AverageScore: views.Round(views.Mean(scores)),
		Buckets:      views.BucketCounts(scores),
		Source:       source,
	}

	if analytics, err := s.loader.GetCarrierAnalytics(ctx, tms.AnalyticsParams{}); err == nil {
		page.Analytics = analytics
	}
	if compliance, err := s.loader.GetCarrierCompliance(ctx); err == nil {
		page.Compliance = compliance
	}
	return page
}
