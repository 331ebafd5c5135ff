package main

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/httprate"
	"github.com/go-chi/render"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	httpapi "github.com/cskerritt/kweconomics-sub000/http"
	httpv1 "github.com/cskerritt/kweconomics-sub000/http/v1"
)

type RouterDeps struct {
	Legacy httpapi.LegacyDeps
	Stats  httpv1.StatsDeps
	// RateLimit is requests per minute per IP; 0 disables limiting.
	RateLimit int
	// TrustProxy takes the client IP from X-Forwarded-For / X-Real-IP.
	TrustProxy bool
}

func BuildRouter(deps RouterDeps) http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.Recoverer)
	if deps.TrustProxy {
		r.Use(middleware.RealIP)
	}
	if deps.RateLimit > 0 {
		r.Use(httprate.LimitByIP(deps.RateLimit, 1*time.Minute))
	}
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) { w.Write([]byte(`{"ok":true}`)) })
	r.Handle("/metrics", promhttp.Handler())

	r.Group(func(r chi.Router) {
		r.Use(render.SetContentType(render.ContentTypeJSON))
		httpv1.RegisterLegacy(r, deps.Stats)
	})

	// Everything else: static assets, legacy redirects, then the SPA shell.
	r.NotFound(httpapi.LegacyHandler(deps.Legacy))

	return r
}
