package views

import (
	"context"

	"github.com/haulfront/haulfront-backend/pkg/logger"
	"github.com/haulfront/haulfront-backend/pkg/metrics"
)

// Source names where a page load's data came from.
type Source string

const (
	SourceLive    Source = "live"
	SourceCache   Source = "cache"
	SourceFixture Source = "fixture"
)

// FallbackHooks carries the side channels a fallback should touch exactly
// once: the structured log, the fallback counter, and the user-facing
// notification. Any of them may be nil.
type FallbackHooks struct {
	Log     *logger.Logger
	Metrics *metrics.DashboardMetrics
	Notify  func(page string, err error)
}

// LoadWithFallback runs the live loader and, if it fails, substitutes the
// fixture dataset. Every page load goes through here so the
// log-notify-count trio fires exactly once per degraded load instead of
// being re-implemented per page.
func LoadWithFallback[T any](ctx context.Context, page string, live func(context.Context) (T, error), fixture func() T, hooks FallbackHooks) (T, Source) {
	value, err := live(ctx)
	if err == nil {
		return value, SourceLive
	}

	if hooks.Log != nil {
		hooks.Log.Warn(hooks.Log.WithPage(ctx, page), "live load failed, serving fixture data: "+err.Error())
	}
	if hooks.Metrics != nil {
		hooks.Metrics.IncFallback(page)
	}
	if hooks.Notify != nil {
		hooks.Notify(page, err)
	}

	return fixture(), SourceFixture
}
