package v1

import (
	"context"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/render"
	"github.com/redis/go-redis/v9"

	"github.com/cskerritt/kweconomics-sub000/internal/analytics"
	"github.com/cskerritt/kweconomics-sub000/internal/store"
)

type TopStore interface {
	TopRedirects(ctx context.Context, limit int) ([]store.HitRecord, error)
}

type TopCounters interface {
	Top(ctx context.Context, key string, n int64) ([]redis.Z, error)
	HGetAll(ctx context.Context, key string) (map[string]string, error)
}

// StatsDeps: Store is preferred; Counters is the fallback when only Redis
// is configured.
type StatsDeps struct {
	Store    TopStore
	Counters TopCounters
}

func statsHandler(d StatsDeps) http.HandlerFunc {
	return func(w http.ResponseWriter, req *http.Request) {
		limit := 50
		if v := req.URL.Query().Get("limit"); v != "" {
			if i, err := strconv.Atoi(v); err == nil && i > 0 && i <= 500 {
				limit = i
			}
		}
		switch {
		case d.Store != nil:
			recs, err := d.Store.TopRedirects(req.Context(), limit)
			if err != nil {
				slog.Warn("stats query failed", slog.Any("error", err))
				render.Status(req, http.StatusInternalServerError)
				render.JSON(w, req, map[string]any{"error": "stats_error", "detail": err.Error()})
				return
			}
			render.JSON(w, req, map[string]any{"ok": true, "source": "postgres", "count": len(recs), "redirects": recs})
		case d.Counters != nil:
			zs, err := d.Counters.Top(req.Context(), analytics.PathsKey, int64(limit))
			if err != nil {
				slog.Warn("stats counters failed", slog.Any("error", err))
				render.Status(req, http.StatusInternalServerError)
				render.JSON(w, req, map[string]any{"error": "stats_error", "detail": err.Error()})
				return
			}
			raw, err := d.Counters.HGetAll(req.Context(), analytics.TargetsKey)
			if err != nil {
				slog.Warn("stats counters failed", slog.Any("error", err))
				render.Status(req, http.StatusInternalServerError)
				render.JSON(w, req, map[string]any{"error": "stats_error", "detail": err.Error()})
				return
			}
			out := make([]map[string]any, 0, len(zs))
			for _, z := range zs {
				out = append(out, map[string]any{"original_path": z.Member, "hits": int64(z.Score)})
			}
			targets := make(map[string]int64, len(raw))
			for to, v := range raw {
				if n, err := strconv.ParseInt(v, 10, 64); err == nil {
					targets[to] = n
				}
			}
			render.JSON(w, req, map[string]any{"ok": true, "source": "redis", "count": len(out), "redirects": out, "targets": targets})
		default:
			render.Status(req, http.StatusServiceUnavailable)
			render.JSON(w, req, map[string]any{"error": "stats_unavailable"})
		}
	}
}
