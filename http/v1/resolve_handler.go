package v1

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"

	"github.com/cskerritt/kweconomics-sub000/internal/legacy"
)

type ResolveRequest struct {
	Path string `json:"path"`
}

// RegisterLegacy mounts the resolver, catalog and stats endpoints under
// /v1/legacy.
func RegisterLegacy(r chi.Router, stats StatsDeps) {
	r.Route("/v1/legacy", func(r chi.Router) {
		r.Post("/resolve", func(w http.ResponseWriter, req *http.Request) {
			var body ResolveRequest
			if err := json.NewDecoder(req.Body).Decode(&body); err != nil {
				render.Status(req, http.StatusBadRequest)
				render.JSON(w, req, map[string]any{"error": "invalid_json", "detail": err.Error()})
				return
			}
			resolve(w, req, body)
		})
		r.Get("/resolve", func(w http.ResponseWriter, req *http.Request) {
			resolve(w, req, ResolveRequest{Path: req.URL.Query().Get("path")})
		})
		r.Get("/catalog", catalogHandler)
		r.Get("/stats", statsHandler(stats))
	})
}

func resolve(w http.ResponseWriter, req *http.Request, body ResolveRequest) {
	if body.Path == "" {
		render.Status(req, http.StatusBadRequest)
		render.JSON(w, req, map[string]any{"error": "path_required"})
		return
	}
	normalized, _ := legacy.Normalize(stripQuery(body.Path))
	rd := legacy.Resolve(stripQuery(body.Path))
	render.JSON(w, req, map[string]any{
		"ok":         true,
		"path":       body.Path,
		"normalized": normalized,
		"matched":    rd != nil,
		"redirect":   rd,
	})
}

// stripQuery drops ?query and #fragment, which callers may pass through
// from a full URL.
func stripQuery(p string) string {
	for i := 0; i < len(p); i++ {
		if p[i] == '?' || p[i] == '#' {
			return p[:i]
		}
	}
	return p
}
