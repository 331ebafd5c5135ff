package httpapi

import (
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/cskerritt/kweconomics-sub000/internal/events"
	"github.com/cskerritt/kweconomics-sub000/internal/legacy"
	"github.com/cskerritt/kweconomics-sub000/internal/metrics"
)

type LegacyDeps struct {
	// Pub receives one event per issued redirect. Optional.
	Pub    events.Publisher
	Logger *slog.Logger
	SPA    SPA
	// Resolve defaults to legacy.Resolve.
	Resolve func(pathname string) *legacy.Redirect
}

// LegacyHandler is the catch-all route: artifact rules (vendor/bundle) first,
// then static files, then legacy URL rewriting, then the SPA shell.
func LegacyHandler(d LegacyDeps) http.HandlerFunc {
	resolve := d.Resolve
	if resolve == nil {
		resolve = legacy.Resolve
	}
	log := d.Logger
	if log == nil {
		log = slog.Default()
	}
	return func(w http.ResponseWriter, req *http.Request) {
		if req.Method != http.MethodGet && req.Method != http.MethodHead {
			d.SPA.ServeHTTP(w, req)
			return
		}
		rd := resolve(req.URL.Path)
		// Artifact rules apply even when the file is still on disk.
		if rd != nil && rd.Status != 0 {
			metrics.RedirectsTotal.WithLabelValues(rd.Rule, strconv.Itoa(rd.Status)).Inc()
			if rd.NoIndex {
				w.Header().Set("X-Robots-Tag", "noindex")
			}
			w.Header().Set("Cache-Control", "no-store")
			log.Debug("legacy artifact rejected", slog.String("original_path", req.URL.Path), slog.Int("status", rd.Status))
			d.SPA.ServeStatus(w, req, rd.Status)
			return
		}
		if d.SPA.HasFile(req.URL.Path) {
			d.SPA.ServeHTTP(w, req)
			return
		}
		if rd == nil {
			metrics.ResolveMisses.Inc()
			d.SPA.ServeHTTP(w, req)
			return
		}

		status := http.StatusFound
		if rd.Permanent {
			status = http.StatusMovedPermanently
		}
		metrics.RedirectsTotal.WithLabelValues(rd.Rule, strconv.Itoa(status)).Inc()
		if rd.NoIndex {
			w.Header().Set("X-Robots-Tag", "noindex")
		}
		log.Info("legacy redirect",
			slog.String("original_path", req.URL.Path),
			slog.String("redirect_to", rd.RedirectTo),
			slog.String("rule", rd.Rule),
			slog.Int("status", status),
		)
		if d.Pub != nil {
			d.Pub.PublishRedirect(req.Context(), events.RedirectIssued{
				OriginalPath: req.URL.Path,
				RedirectTo:   rd.RedirectTo,
				Rule:         rd.Rule,
				Status:       status,
				At:           time.Now().UTC(),
			})
		}
		http.Redirect(w, req, rd.RedirectTo, status)
	}
}
