package httpapi

import (
	"net/http"
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/go-chi/render"
)

// SPA serves the built single-page app from Dir: existing files as-is and
// index.html for everything else so the client router can take over. With
// no Dir it answers 404 JSON.
type SPA struct {
	Dir string
}

// HasFile reports whether urlPath names a regular file under Dir.
func (s SPA) HasFile(urlPath string) bool {
	if s.Dir == "" {
		return false
	}
	info, err := os.Stat(s.file(urlPath))
	return err == nil && !info.IsDir()
}

func (s SPA) file(urlPath string) string {
	return filepath.Join(s.Dir, filepath.FromSlash(path.Clean("/"+urlPath)))
}

func (s SPA) ServeHTTP(w http.ResponseWriter, req *http.Request) {
	if s.Dir == "" {
		NotFound(w, req)
		return
	}
	if s.HasFile(req.URL.Path) {
		http.ServeFile(w, req, s.file(req.URL.Path))
		return
	}
	http.ServeFile(w, req, filepath.Join(s.Dir, "index.html"))
}

// ServeStatus renders the app shell with the given status so the client
// router shows its error page. Without a built shell it falls back to JSON.
func (s SPA) ServeStatus(w http.ResponseWriter, req *http.Request, status int) {
	if s.Dir != "" {
		if b, err := os.ReadFile(filepath.Join(s.Dir, "index.html")); err == nil {
			w.Header().Set("Content-Type", "text/html; charset=utf-8")
			w.WriteHeader(status)
			_, _ = w.Write(b)
			return
		}
	}
	errorJSON(w, req, status)
}

func NotFound(w http.ResponseWriter, req *http.Request) {
	errorJSON(w, req, http.StatusNotFound)
}

func errorJSON(w http.ResponseWriter, req *http.Request, status int) {
	code := strings.ReplaceAll(strings.ToLower(http.StatusText(status)), " ", "_")
	render.Status(req, status)
	render.JSON(w, req, map[string]any{"error": code, "path": req.URL.Path})
}
