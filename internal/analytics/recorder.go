// Package analytics drains redirect events into Redis counters and the
// Postgres hit log.
package analytics

import (
	"context"
	"log/slog"
	"time"

	"github.com/cskerritt/kweconomics-sub000/internal/events"
	"github.com/cskerritt/kweconomics-sub000/internal/metrics"
	"github.com/cskerritt/kweconomics-sub000/internal/store"
)

const (
	// PathsKey is a sorted set of legacy paths scored by hit count.
	PathsKey = "legacy:hits:paths"
	// TargetsKey is a hash of redirect targets to hit count.
	TargetsKey = "legacy:hits:targets"
)

type HitStore interface {
	RecordHit(ctx context.Context, h store.Hit) error
}

type Counters interface {
	ZIncrBy(ctx context.Context, key string, n float64, member string) (float64, error)
	HIncrBy(ctx context.Context, key, field string, n int64) (int64, error)
}

// Recorder consumes events.Publisher. Either sink may be nil.
type Recorder struct {
	Pub      events.Publisher
	Store    HitStore
	Counters Counters
	Logger   *slog.Logger
	// Timeout bounds each sink write.
	Timeout time.Duration
}

func (r *Recorder) log() *slog.Logger {
	if r.Logger != nil {
		return r.Logger
	}
	return slog.Default()
}

// Run blocks until ctx is done.
func (r *Recorder) Run(ctx context.Context) {
	sub := r.Pub.SubscribeRedirects()
	for {
		select {
		case <-ctx.Done():
			return
		case evt := <-sub:
			r.Record(ctx, evt)
		}
	}
}

// Record writes one event to every configured sink. Failures are logged and
// counted, never returned.
func (r *Recorder) Record(ctx context.Context, evt events.RedirectIssued) {
	timeout := r.Timeout
	if timeout <= 0 {
		timeout = 2 * time.Second
	}
	if r.Counters != nil {
		wctx, cancel := context.WithTimeout(ctx, timeout)
		_, err := r.Counters.ZIncrBy(wctx, PathsKey, 1, evt.OriginalPath)
		if err == nil {
			_, err = r.Counters.HIncrBy(wctx, TargetsKey, evt.RedirectTo, 1)
		}
		cancel()
		if err != nil {
			metrics.RecorderErrors.WithLabelValues("redis").Inc()
			r.log().Warn("redirect counter write failed", slog.String("original_path", evt.OriginalPath), slog.Any("error", err))
		}
	}
	if r.Store != nil {
		wctx, cancel := context.WithTimeout(ctx, timeout)
		err := r.Store.RecordHit(wctx, store.Hit{
			OriginalPath: evt.OriginalPath,
			RedirectTo:   evt.RedirectTo,
			Rule:         evt.Rule,
			Status:       evt.Status,
			SeenAt:       evt.At,
		})
		cancel()
		if err != nil {
			metrics.RecorderErrors.WithLabelValues("postgres").Inc()
			r.log().Warn("redirect hit write failed", slog.String("original_path", evt.OriginalPath), slog.Any("error", err))
		}
	}
}
