package httpapi

import (
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cskerritt/kweconomics-sub000/internal/events"
	"github.com/cskerritt/kweconomics-sub000/internal/legacy"
)

func quiet() *slog.Logger { return slog.New(slog.NewTextHandler(io.Discard, nil)) }

func spaDir(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "index.html"), []byte("<html>app</html>"), 0o644))
	require.NoError(t, os.MkdirAll(filepath.Join(dir, "assets"), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "assets", "app.js"), []byte("console.log(1)"), 0o644))
	return dir
}

func serve(h http.Handler, method, target string) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(method, target, nil))
	return rec
}

func TestLegacyHandler_PermanentRedirect(t *testing.T) {
	pub := events.NewInMemory(4)
	h := LegacyHandler(LegacyDeps{Pub: pub, Logger: quiet()})

	rec := serve(h, http.MethodGet, "/philadelphia-metro-economist?utm_source=x")
	assert.Equal(t, http.StatusMovedPermanently, rec.Code)
	assert.Equal(t, "/services/economic-loss-assessment/pennsylvania/philadelphia", rec.Header().Get("Location"))

	evt := <-pub.SubscribeRedirects()
	assert.Equal(t, "/philadelphia-metro-economist", evt.OriginalPath)
	assert.Equal(t, "/services/economic-loss-assessment/pennsylvania/philadelphia", evt.RedirectTo)
	assert.Equal(t, legacy.RuleLocationFirst, evt.Rule)
	assert.Equal(t, http.StatusMovedPermanently, evt.Status)
	assert.False(t, evt.At.IsZero())
}

func TestLegacyHandler_TemporaryRedirect(t *testing.T) {
	h := LegacyHandler(LegacyDeps{
		Logger:  quiet(),
		Resolve: func(string) *legacy.Redirect { return &legacy.Redirect{RedirectTo: "/maintenance"} },
	})
	rec := serve(h, http.MethodGet, "/anything")
	assert.Equal(t, http.StatusFound, rec.Code)
	assert.Equal(t, "/maintenance", rec.Header().Get("Location"))
}

func TestLegacyHandler_VendorBundleIsNotIndexed(t *testing.T) {
	pub := events.NewInMemory(4)
	h := LegacyHandler(LegacyDeps{Pub: pub, Logger: quiet()})

	rec := serve(h, http.MethodGet, "/vendor/bundle/ruby/gems/foo")
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "noindex", rec.Header().Get("X-Robots-Tag"))
	assert.Empty(t, rec.Header().Get("Location"))
	assert.Contains(t, rec.Body.String(), `"not_found"`)

	select {
	case evt := <-pub.SubscribeRedirects():
		t.Fatalf("unexpected event %+v", evt)
	default:
	}
}

func TestLegacyHandler_VendorBundleOnDiskIsNotServed(t *testing.T) {
	dir := spaDir(t)
	stale := filepath.Join(dir, "vendor", "bundle", "ruby")
	require.NoError(t, os.MkdirAll(stale, 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(stale, "README.md"), []byte("stale"), 0o644))
	h := LegacyHandler(LegacyDeps{Logger: quiet(), SPA: SPA{Dir: dir}})

	for _, method := range []string{http.MethodGet, http.MethodHead} {
		rec := serve(h, method, "/vendor/bundle/ruby/README.md")
		assert.Equal(t, http.StatusNotFound, rec.Code, method)
		assert.Equal(t, "noindex", rec.Header().Get("X-Robots-Tag"), method)
		assert.NotContains(t, rec.Body.String(), "stale", method)
	}

	rec := serve(h, http.MethodGet, "/vendor/bundle/ruby/README.md")
	assert.Equal(t, "text/html; charset=utf-8", rec.Header().Get("Content-Type"))
	assert.Equal(t, "<html>app</html>", rec.Body.String())
}

func TestSPA_ServeStatusWithoutShell(t *testing.T) {
	rec := httptest.NewRecorder()
	SPA{Dir: t.TempDir()}.ServeStatus(rec, httptest.NewRequest(http.MethodGet, "/gone", nil), http.StatusGone)
	assert.Equal(t, http.StatusGone, rec.Code)
	assert.JSONEq(t, `{"error":"gone","path":"/gone"}`, rec.Body.String())
}

func TestLegacyHandler_FallsBackToSPA(t *testing.T) {
	h := LegacyHandler(LegacyDeps{Logger: quiet(), SPA: SPA{Dir: spaDir(t)}})

	rec := serve(h, http.MethodGet, "/new-jersey/camden")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "app")

	rec = serve(h, http.MethodGet, "/assets/app.js")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "console.log")
}

func TestLegacyHandler_StaticFileBeatsRedirect(t *testing.T) {
	dir := spaDir(t)
	require.NoError(t, os.MkdirAll(filepath.Join(dir, "blog"), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "blog", "feed.xml"), []byte("<rss/>"), 0o644))
	h := LegacyHandler(LegacyDeps{Logger: quiet(), SPA: SPA{Dir: dir}})

	rec := serve(h, http.MethodGet, "/blog/feed.xml")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "<rss/>", rec.Body.String())

	rec = serve(h, http.MethodGet, "/blog/some-post")
	assert.Equal(t, http.StatusMovedPermanently, rec.Code)
	assert.Equal(t, "/", rec.Header().Get("Location"))
}

func TestLegacyHandler_NonGetSkipsResolver(t *testing.T) {
	h := LegacyHandler(LegacyDeps{Logger: quiet()})
	rec := serve(h, http.MethodPost, "/blog/some-post")
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Contains(t, rec.Body.String(), "not_found")
}

func TestSPA_WithoutDir(t *testing.T) {
	rec := serve(SPA{}, http.MethodGet, "/whatever")
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.False(t, SPA{}.HasFile("/index.html"))
}

func TestSPA_RejectsTraversal(t *testing.T) {
	s := SPA{Dir: spaDir(t)}
	assert.False(t, s.HasFile("/../../etc/passwd"))
	assert.True(t, s.HasFile("/assets/app.js"))
	assert.False(t, s.HasFile("/assets"))
}
