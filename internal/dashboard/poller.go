package dashboard

import (
	"context"
	"encoding/json"
	"sync/atomic"
	"time"

	"github.com/haulfront/haulfront-backend/pkg/logger"
	"github.com/haulfront/haulfront-backend/pkg/metrics"
)

// Poller refreshes the shared overview snapshot on a fixed interval and
// writes it to the cache for every API instance to serve. Runs never
// overlap: if a poll is still in flight when the ticker fires, that tick
// is skipped.
type Poller struct {
	loader      snapshotLoader
	cache       snapshotCache
	log         *logger.Logger
	metrics     *metrics.DashboardMetrics
	interval    time.Duration
	snapshotTTL time.Duration
	running     atomic.Bool
}

// PollerOption configures the poller.
type PollerOption func(*Poller)

// WithPollMetrics wires poll counters and timings.
func WithPollMetrics(m *metrics.DashboardMetrics) PollerOption {
	return func(p *Poller) {
		p.metrics = m
	}
}

// NewPoller builds the refresh poller. A non-positive interval falls back
// to 30 seconds; a non-positive TTL stores snapshots without expiry.
func NewPoller(loader snapshotLoader, cache snapshotCache, log *logger.Logger, interval, snapshotTTL time.Duration, opts ...PollerOption) *Poller {
	if interval <= 0 {
		interval = 30 * time.Second
	}
	if snapshotTTL < 0 {
		snapshotTTL = 0
	}
	p := &Poller{
		loader:      loader,
		cache:       cache,
		log:         log,
		interval:    interval,
		snapshotTTL: snapshotTTL,
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Run polls until ctx is cancelled. One poll fires immediately so a fresh
// snapshot exists before the first tick.
func (p *Poller) Run(ctx context.Context) {
	p.poll(ctx)

	ticker := time.NewTicker(p.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			p.log.Info(ctx, "snapshot poller stopped")
			return
		case <-ticker.C:
			p.poll(ctx)
		}
	}
}

func (p *Poller) poll(ctx context.Context) {
	if !p.running.CompareAndSwap(false, true) {
		p.log.Warn(ctx, "previous poll still running, skipping tick")
		return
	}
	defer p.running.Store(false)

	start := time.Now()
	err := p.refresh(ctx)
	p.metrics.ObservePoll(overviewPage, time.Since(start))

	if err != nil {
		p.metrics.IncPollFailure(overviewPage)
		p.log.Error(ctx, "snapshot poll failed", err)
		return
	}
	p.metrics.IncPollSuccess(overviewPage)
}

func (p *Poller) refresh(ctx context.Context) error {
	snap, err := p.loader.GetDashboardSnapshot(ctx)
	if err != nil {
		return err
	}

	raw, err := json.Marshal(snap)
	if err != nil {
		return err
	}
	return p.cache.Set(ctx, p.cache.SnapshotKey(overviewPage), string(raw), p.snapshotTTL)
}
