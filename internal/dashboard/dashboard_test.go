package dashboard

import (
	"context"
	"errors"
	"io"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/haulfront/haulfront-backend/internal/tms"
	"github.com/haulfront/haulfront-backend/internal/views"
	"github.com/haulfront/haulfront-backend/pkg/logger"
	"github.com/haulfront/haulfront-backend/pkg/redis"
)

var errUpstreamDown = errors.New("upstream down")

type fakeLoader struct {
	snapshot   *tms.DashboardSnapshot
	carriers   *tms.CarrierList
	analytics  *tms.CarrierAnalytics
	compliance *tms.ComplianceSummary
	shipments  *tms.ShipmentList
	plans      *tms.LoadPlanList
	contracts  *tms.ContractList
	rfqs       *tms.RFQList
	summary    *tms.ProcurementSummary
	report     *tms.PerformanceReport
	err        error

	snapshotCalls int
}

func (f *fakeLoader) GetDashboardSnapshot(context.Context) (*tms.DashboardSnapshot, error) {
	f.snapshotCalls++
	if f.err != nil {
		return nil, f.err
	}
	return f.snapshot, nil
}

func (f *fakeLoader) ListCarriers(context.Context, tms.CarrierListParams) (*tms.CarrierList, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.carriers, nil
}

func (f *fakeLoader) GetCarrierAnalytics(context.Context, tms.AnalyticsParams) (*tms.CarrierAnalytics, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.analytics, nil
}

func (f *fakeLoader) GetCarrierCompliance(context.Context) (*tms.ComplianceSummary, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.compliance, nil
}

func (f *fakeLoader) ListShipments(context.Context, tms.ListParams) (*tms.ShipmentList, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.shipments, nil
}

func (f *fakeLoader) ListLoadPlans(context.Context, tms.ListParams) (*tms.LoadPlanList, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.plans, nil
}

func (f *fakeLoader) ListContracts(context.Context, tms.ListParams) (*tms.ContractList, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.contracts, nil
}

func (f *fakeLoader) ListRFQs(context.Context, tms.ListParams) (*tms.RFQList, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.rfqs, nil
}

func (f *fakeLoader) GetProcurementSummary(context.Context) (*tms.ProcurementSummary, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.summary, nil
}

func (f *fakeLoader) GetPerformanceReport(context.Context, tms.PerformanceParams) (*tms.PerformanceReport, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.report, nil
}

type fakeCache struct {
	data map[string]string
	err  error
}

func newFakeCache() *fakeCache {
	return &fakeCache{data: map[string]string{}}
}

func (f *fakeCache) Get(_ context.Context, key string) (string, error) {
	if f.err != nil {
		return "", f.err
	}
	value, ok := f.data[key]
	if !ok {
		return "", redis.Nil
	}
	return value, nil
}

func (f *fakeCache) Set(_ context.Context, key string, value any, _ time.Duration) error {
	if f.err != nil {
		return f.err
	}
	f.data[key] = value.(string)
	return nil
}

func (f *fakeCache) SnapshotKey(page string) string {
	return "hf:snapshot:" + page
}

func quietLogger() *logger.Logger {
	return logger.New(logger.Options{ServiceName: "test", Output: io.Discard})
}

func TestOverviewLoadLive(t *testing.T) {
	loader := &fakeLoader{snapshot: &tms.DashboardSnapshot{ActiveShipments: 10, InTransit: 4}}
	svc := NewOverviewService(loader, views.FallbackHooks{})

	page := svc.Load(context.Background())
	assert.Equal(t, views.SourceLive, page.Source)
	assert.Equal(t, 10, page.Snapshot.ActiveShipments)
	assert.Len(t, page.RecentActivity, 4)
	assert.False(t, page.LastUpdated.IsZero())
}

func TestOverviewLoadFallsBackToFixture(t *testing.T) {
	notified := 0
	loader := &fakeLoader{err: errUpstreamDown}
	svc := NewOverviewService(loader, views.FallbackHooks{
		Notify: func(page string, err error) {
			notified++
			assert.Equal(t, "overview", page)
		},
	})

	page := svc.Load(context.Background())
	assert.Equal(t, views.SourceFixture, page.Source)
	assert.Equal(t, tms.DemoDashboardSnapshot().ActiveShipments, page.Snapshot.ActiveShipments)
	assert.Equal(t, 1, notified)
}

func TestOverviewServesLastKnownGoodAfterOutage(t *testing.T) {
	loader := &fakeLoader{snapshot: &tms.DashboardSnapshot{ActiveShipments: 10}}
	svc := NewOverviewService(loader, views.FallbackHooks{})

	page := svc.Load(context.Background())
	require.Equal(t, views.SourceLive, page.Source)

	loader.err = errUpstreamDown
	page = svc.Load(context.Background())
	assert.Equal(t, views.SourceCache, page.Source)
	assert.Equal(t, 10, page.Snapshot.ActiveShipments)
}

func TestOverviewStaleLoadDoesNotOverwriteNewer(t *testing.T) {
	svc := NewOverviewService(&fakeLoader{}, views.FallbackHooks{})

	older := svc.guard.Begin()
	newer := svc.guard.Begin()

	svc.remember(newer, tms.DashboardSnapshot{ActiveShipments: 2})
	svc.remember(older, tms.DashboardSnapshot{ActiveShipments: 1})

	snap, ok := svc.lastKnownGood()
	require.True(t, ok)
	assert.Equal(t, 2, snap.ActiveShipments)
}

func TestOverviewPrefersCachedSnapshot(t *testing.T) {
	cache := newFakeCache()
	cache.data["hf:snapshot:overview"] = `{"activeShipments":99,"inTransit":12}`
	loader := &fakeLoader{snapshot: &tms.DashboardSnapshot{ActiveShipments: 1}}
	svc := NewOverviewService(loader, views.FallbackHooks{}, WithSnapshotCache(cache))

	page := svc.Load(context.Background())
	assert.Equal(t, views.SourceCache, page.Source)
	assert.Equal(t, 99, page.Snapshot.ActiveShipments)
	assert.Zero(t, loader.snapshotCalls)
}

func TestOverviewIgnoresCorruptCachedSnapshot(t *testing.T) {
	cache := newFakeCache()
	cache.data["hf:snapshot:overview"] = "{broken"
	loader := &fakeLoader{snapshot: &tms.DashboardSnapshot{ActiveShipments: 1}}
	svc := NewOverviewService(loader, views.FallbackHooks{}, WithSnapshotCache(cache))

	page := svc.Load(context.Background())
	assert.Equal(t, views.SourceLive, page.Source)
	assert.Equal(t, 1, page.Snapshot.ActiveShipments)
}

func TestCarriersLoadSearchAndAggregates(t *testing.T) {
	loader := &fakeLoader{
		carriers:   tms.DemoCarriers(),
		analytics:  &tms.CarrierAnalytics{ActiveCarriers: 3},
		compliance: &tms.ComplianceSummary{CompliantCarriers: 2},
	}
	svc := NewCarriersService(loader, views.FallbackHooks{})

	page := svc.Load(context.Background(), "dallas")
	require.Len(t, page.Carriers, 1)
	assert.Equal(t, "FastFreight LLC", page.Carriers[0].Name)

	// aggregates always cover the full list, not the filtered slice
	assert.Equal(t, 3, page.ActiveCount)
	assert.Equal(t, 94, page.AverageScore)
	assert.Equal(t, 3, page.Buckets[views.BucketExcellent])
	require.NotNil(t, page.Analytics)
	require.NotNil(t, page.Compliance)
	assert.Equal(t, views.SourceLive, page.Source)
}

func TestCarriersLoadFixtureFallback(t *testing.T) {
	svc := NewCarriersService(&fakeLoader{err: errUpstreamDown}, views.FallbackHooks{})

	page := svc.Load(context.Background(), "")
	assert.Equal(t, views.SourceFixture, page.Source)
	require.Len(t, page.Carriers, 3)
	assert.Equal(t, 94, page.AverageScore)
	assert.Nil(t, page.Analytics)
	assert.Nil(t, page.Compliance)
}

func TestShipmentsLoadTabAndQueryCombine(t *testing.T) {
	svc := NewShipmentsService(&fakeLoader{shipments: tms.DemoShipments()}, views.FallbackHooks{})
	ctx := context.Background()

	inTransit := svc.Load(ctx, "", ShipmentTabInTransit)
	require.Len(t, inTransit.Shipments, 2)

	// "acme" matches SH2024001 which is in transit, but not under delivered
	assert.Len(t, svc.Load(ctx, "acme", ShipmentTabInTransit).Shipments, 1)
	assert.Empty(t, svc.Load(ctx, "acme", ShipmentTabDelivered).Shipments)

	byDestination := svc.Load(ctx, "boston", ShipmentTabAll)
	require.Len(t, byDestination.Shipments, 1)
	assert.Equal(t, "SH2024004", byDestination.Shipments[0].ID)
}

func TestShipmentsCountsIgnoreFilter(t *testing.T) {
	svc := NewShipmentsService(&fakeLoader{shipments: tms.DemoShipments()}, views.FallbackHooks{})

	page := svc.Load(context.Background(), "acme", ShipmentTabInTransit)
	assert.Equal(t, ShipmentCounts{All: 4, Planned: 1, InTransit: 2, Delivered: 1}, page.Counts)
}

func TestPlanningLoadStatusFilterAndSavings(t *testing.T) {
	svc := NewPlanningService(&fakeLoader{plans: tms.DemoLoadPlans()}, views.FallbackHooks{})
	ctx := context.Background()

	all := svc.Load(ctx, "all")
	require.Len(t, all.LoadPlans, 2)
	assert.Equal(t, "3300", all.TotalSavings.String())

	approved := svc.Load(ctx, "approved")
	require.Len(t, approved.LoadPlans, 1)
	assert.Equal(t, "plan-002", approved.LoadPlans[0].ID)
	assert.Equal(t, "2100", approved.TotalSavings.String())
}

func TestProcurementLoadSearchAndTotals(t *testing.T) {
	loader := &fakeLoader{
		contracts: tms.DemoContracts(),
		rfqs:      tms.DemoRFQs(),
		summary:   tms.DemoProcurementSummary(),
	}
	svc := NewProcurementService(loader, views.FallbackHooks{})

	page := svc.Load(context.Background(), "premier")
	require.Len(t, page.Contracts, 1)
	assert.Equal(t, "Premier Logistics", page.Contracts[0].CarrierName)
	require.Len(t, page.RFQs, 1)
	assert.Equal(t, "rfq-003", page.RFQs[0].ID)

	// counts and the value sum always cover the full lists
	assert.Equal(t, 3, page.ActiveContracts)
	assert.Equal(t, 1, page.OpenRFQs)
	assert.Equal(t, "2470000", page.TotalContractValue.String())
	require.NotNil(t, page.Summary)
	assert.Equal(t, "2450000", page.Summary.TotalSpend.String())
	assert.Equal(t, views.SourceLive, page.Source)
}

func TestProcurementLoadFixtureFallback(t *testing.T) {
	notified := 0
	svc := NewProcurementService(&fakeLoader{err: errUpstreamDown}, views.FallbackHooks{
		Notify: func(page string, err error) {
			notified++
			assert.Equal(t, "procurement", page)
		},
	})

	page := svc.Load(context.Background(), "")
	assert.Equal(t, views.SourceFixture, page.Source)
	require.Len(t, page.Contracts, 3)
	require.Len(t, page.RFQs, 3)
	require.NotNil(t, page.Summary)
	assert.Equal(t, 8, page.Summary.PendingRFQs)
	assert.Equal(t, 1, notified)
}

func TestAnalyticsLoadLive(t *testing.T) {
	loader := &fakeLoader{report: tms.DemoPerformanceReport()}
	svc := NewAnalyticsService(loader, views.FallbackHooks{})

	page := svc.Load(context.Background(), "30d")
	assert.Equal(t, views.SourceLive, page.Source)
	require.Len(t, page.Report.Points, 3)
	assert.Equal(t, "300000", page.Report.Points[2].Margin.String())
}

func TestAnalyticsLoadFixtureFallback(t *testing.T) {
	svc := NewAnalyticsService(&fakeLoader{err: errUpstreamDown}, views.FallbackHooks{})

	page := svc.Load(context.Background(), "")
	assert.Equal(t, views.SourceFixture, page.Source)
	assert.Equal(t, "30d", page.Report.Timeframe)
	require.Len(t, page.Report.Points, 3)
}

func TestPollerRefreshStoresSnapshot(t *testing.T) {
	cache := newFakeCache()
	loader := &fakeLoader{snapshot: &tms.DashboardSnapshot{ActiveShipments: 42}}
	poller := NewPoller(loader, cache, quietLogger(), time.Second, time.Minute)

	require.NoError(t, poller.refresh(context.Background()))
	assert.Contains(t, cache.data["hf:snapshot:overview"], `"activeShipments":42`)
}

func TestPollerRunStopsOnCancel(t *testing.T) {
	cache := newFakeCache()
	loader := &fakeLoader{snapshot: &tms.DashboardSnapshot{ActiveShipments: 42}}
	poller := NewPoller(loader, cache, quietLogger(), 5*time.Millisecond, 0)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		poller.Run(ctx)
		close(done)
	}()

	time.Sleep(20 * time.Millisecond)
	cancel()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("poller did not stop after cancellation")
	}
	assert.GreaterOrEqual(t, loader.snapshotCalls, 1)
}

func TestPollerSkipsOverlappingRuns(t *testing.T) {
	cache := newFakeCache()
	loader := &fakeLoader{snapshot: &tms.DashboardSnapshot{}}
	poller := NewPoller(loader, cache, quietLogger(), time.Second, 0)

	poller.running.Store(true)
	poller.poll(context.Background())
	assert.Zero(t, loader.snapshotCalls)

	poller.running.Store(false)
	poller.poll(context.Background())
	assert.Equal(t, 1, loader.snapshotCalls)
}
