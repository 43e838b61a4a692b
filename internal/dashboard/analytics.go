package dashboard

import (
	"context"

	"github.com/haulfront/haulfront-backend/internal/tms"
	"github.com/haulfront/haulfront-backend/internal/views"
)

const analyticsPage = "analytics"

// AnalyticsPage is the rendered performance analytics page.
type AnalyticsPage struct {
	Report tms.PerformanceReport `json:"report"`
	Source views.Source          `json:"source"`
}

type performanceLoader interface {
	GetPerformanceReport(ctx context.Context, params tms.PerformanceParams) (*tms.PerformanceReport, error)
}

// AnalyticsService loads the performance analytics page.
type AnalyticsService struct {
	loader performanceLoader
	hooks  views.FallbackHooks
}

// NewAnalyticsService builds the analytics page service.
func NewAnalyticsService(loader performanceLoader, hooks views.FallbackHooks) *AnalyticsService {
	return &AnalyticsService{loader: loader, hooks: hooks}
}

// Load returns the analytics page. An empty timeframe leaves the choice to
// the upstream's default window.
func (s *AnalyticsService) Load(ctx context.Context, timeframe string) AnalyticsPage {
	report, source := views.LoadWithFallback(ctx, analyticsPage,
		func(ctx context.Context) (*tms.PerformanceReport, error) {
			return s.loader.GetPerformanceReport(ctx, tms.PerformanceParams{Timeframe: timeframe})
		},
		tms.DemoPerformanceReport,
		s.hooks,
	)
	return AnalyticsPage{Report: *report, Source: source}
}
