package dashboard

import (
	"context"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/haulfront/haulfront-backend/internal/tms"
	"github.com/haulfront/haulfront-backend/internal/views"
)

const planningPage = "planning"

// PlanningPage is the rendered load planning page.
type PlanningPage struct {
	LoadPlans    []tms.LoadPlan  `json:"loadPlans"`
	TotalSavings decimal.Decimal `json:"totalSavings"`
	Source       views.Source    `json:"source"`
}

type planLoader interface {
	ListLoadPlans(ctx context.Context, params tms.ListParams) (*tms.LoadPlanList, error)
}

// PlanningService loads the load planning page.
type PlanningService struct {
	loader planLoader
	hooks  views.FallbackHooks
}

// NewPlanningService builds the planning page service.
func NewPlanningService(loader planLoader, hooks views.FallbackHooks) *PlanningService {
	return &PlanningService{loader: loader, hooks: hooks}
}

// Load returns the planning page. An empty or "all" status shows every
// plan. TotalSavings sums the visible plans.
func (s *PlanningService) Load(ctx context.Context, status string) PlanningPage {
	list, source := views.LoadWithFallback(ctx, planningPage,
		func(ctx context.Context) (*tms.LoadPlanList, error) {
			return s.loader.ListLoadPlans(ctx, tms.ListParams{})
		},
		tms.DemoLoadPlans,
		s.hooks,
	)

	visible := views.Filter(list.LoadPlans, func(p tms.LoadPlan) bool {
		if status == "" || strings.EqualFold(status, "all") {
			return true
		}
		return strings.EqualFold(p.Status, status)
	})

	savings := decimal.Zero
	for _, p := range visible {
		savings = savings.Add(p.TotalSavings)
	}

	return PlanningPage{
		LoadPlans:    visible,
		TotalSavings: savings,
		Source:       source,
	}
}
