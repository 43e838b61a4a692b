// Package dashboard assembles the per-page view models served to the
// browser: each service owns one page's load routine and derived
// aggregates, and every load path ends in a renderable page even when the
// upstream is down.
package dashboard

import (
	"context"
	"encoding/json"
	"sync"
	"time"

	"github.com/haulfront/haulfront-backend/internal/tms"
	"github.com/haulfront/haulfront-backend/internal/views"
)

const overviewPage = "overview"

// Activity is one entry in the overview's recent-activity feed.
type Activity struct {
	ID      int    `json:"id"`
	Type    string `json:"type"`
	Message string `json:"message"`
	Time    string `json:"time"`
}

// OverviewPage is the rendered dashboard overview.
type OverviewPage struct {
	Snapshot       tms.DashboardSnapshot `json:"snapshot"`
	RecentActivity []Activity            `json:"recentActivity"`
	Source         views.Source          `json:"source"`
	LastUpdated    time.Time             `json:"lastUpdated"`
}

type snapshotLoader interface {
	GetDashboardSnapshot(ctx context.Context) (*tms.DashboardSnapshot, error)
}

type snapshotCache interface {
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key string, value any, ttl time.Duration) error
	SnapshotKey(page string) string
}

// OverviewService loads the overview page. When a poller-maintained
// snapshot exists in the cache it is served as-is so every API instance
// shows the same view; otherwise the service falls through to a live call
// with fixture fallback.
type OverviewService struct {
	loader snapshotLoader
	cache  snapshotCache
	hooks  views.FallbackHooks
	nowFn  func() time.Time

	guard    views.Guard
	mu       sync.Mutex
	lastGood *tms.DashboardSnapshot
}

// OverviewOption configures the service.
type OverviewOption func(*OverviewService)

// WithSnapshotCache wires the shared snapshot cache.
func WithSnapshotCache(cache snapshotCache) OverviewOption {
	return func(s *OverviewService) {
		s.cache = cache
	}
}

// WithOverviewClock overrides the time source.
func WithOverviewClock(nowFn func() time.Time) OverviewOption {
	return func(s *OverviewService) {
		if nowFn != nil {
			s.nowFn = nowFn
		}
	}
}

// NewOverviewService builds the overview page service.
func NewOverviewService(loader snapshotLoader, hooks views.FallbackHooks, opts ...OverviewOption) *OverviewService {
	s := &OverviewService{
		loader: loader,
		hooks:  hooks,
		nowFn:  time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Load returns the overview page. It never fails; degraded loads serve the
// last snapshot a live call produced, or fixture data when no live call has
// succeeded yet. Concurrent loads resolve latest-wins: a slow response from
// an older load cannot overwrite a newer one.
func (s *OverviewService) Load(ctx context.Context) OverviewPage {
	if snap, ok := s.cachedSnapshot(ctx); ok {
		return s.page(snap, views.SourceCache)
	}

	token := s.guard.Begin()
	snap, source := views.LoadWithFallback(ctx, overviewPage,
		func(ctx context.Context) (tms.DashboardSnapshot, error) {
			live, err := s.loader.GetDashboardSnapshot(ctx)
			if err != nil {
				return tms.DashboardSnapshot{}, err
			}
			return *live, nil
		},
		func() tms.DashboardSnapshot { return *tms.DemoDashboardSnapshot() },
		s.hooks,
	)

	if source == views.SourceLive {
		s.remember(token, snap)
		return s.page(snap, source)
	}
	if memo, ok := s.lastKnownGood(); ok {
		return s.page(memo, views.SourceCache)
	}
	return s.page(snap, source)
}

func (s *OverviewService) remember(token uint64, snap tms.DashboardSnapshot) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.guard.Current(token) {
		return
	}
	s.lastGood = &snap
}

func (s *OverviewService) lastKnownGood() (tms.DashboardSnapshot, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.lastGood == nil {
		return tms.DashboardSnapshot{}, false
	}
	return *s.lastGood, true
}

func (s *OverviewService) cachedSnapshot(ctx context.Context) (tms.DashboardSnapshot, bool) {
	if s.cache == nil {
		return tms.DashboardSnapshot{}, false
	}
	raw, err := s.cache.Get(ctx, s.cache.SnapshotKey(overviewPage))
	if err != nil {
		return tms.DashboardSnapshot{}, false
	}
	var snap tms.DashboardSnapshot
	if err := json.Unmarshal([]byte(raw), &snap); err != nil {
		return tms.DashboardSnapshot{}, false
	}
	return snap, true
}

func (s *OverviewService) page(snap tms.DashboardSnapshot, source views.Source) OverviewPage {
	return OverviewPage{
		Snapshot:       snap,
		RecentActivity: recentActivity(),
		Source:         source,
		LastUpdated:    s.nowFn().UTC(),
	}
}

func recentActivity() []Activity {
	return []Activity{
		{ID: 1, Type: "optimization", Message: "AI optimized 12 shipments, saving $3,200", Time: "2 minutes ago"},
		{ID: 2, Type: "execution", Message: "Load plan PLAN-2024-001 executed successfully", Time: "5 minutes ago"},
		{ID: 3, Type: "tracking", Message: "Shipment SHIP-2024-045 delivered on time", Time: "8 minutes ago"},
		{ID: 4, Type: "alert", Message: "Weather delay predicted for TX-CA lane", Time: "12 minutes ago"},
	}
}
