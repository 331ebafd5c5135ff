package verify

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	httpapi "github.com/cskerritt/kweconomics-sub000/http"
	"github.com/cskerritt/kweconomics-sub000/internal/legacy"
)

func quiet() *slog.Logger { return slog.New(slog.NewTextHandler(io.Discard, nil)) }

func TestDefaultCasesPassOffline(t *testing.T) {
	cases, err := DefaultCases()
	require.NoError(t, err)
	require.NotEmpty(t, cases)

	rep, err := (&Job{Cases: cases, Logger: quiet()}).Run(context.Background())
	require.NoError(t, err)
	assert.NoError(t, rep.Err())
	passed, failed := rep.Total()
	assert.Equal(t, len(cases), passed)
	assert.Zero(t, failed)
	for cat := range predicates {
		assert.Contains(t, rep.Categories, cat, "no sample covers %s", cat)
	}
}

func TestOfflineFailuresAreReported(t *testing.T) {
	cases := []Case{
		{Category: "blog", Path: "/blog/x", To: "/"},
		{Category: "unresolvable", Path: "/economist"},
	}
	job := &Job{
		Cases:   cases,
		Logger:  quiet(),
		Resolve: func(string) *legacy.Redirect { return &legacy.Redirect{RedirectTo: "/elsewhere", Permanent: true} },
	}
	rep, err := job.Run(context.Background())
	require.NoError(t, err)
	require.Len(t, rep.Failures, 2)
	assert.Equal(t, "blog", rep.Failures[0].Case.Category)
	assert.Contains(t, rep.Failures[0].Reason, "does not fit")
	assert.Error(t, rep.Err())
}

func TestPinnedTargetMismatch(t *testing.T) {
	job := &Job{Cases: []Case{{Category: "single-segment", Path: "/nj-economist", To: "/new-york"}}, Logger: quiet()}
	rep, err := job.Run(context.Background())
	require.NoError(t, err)
	require.Len(t, rep.Failures, 1)
	assert.Contains(t, rep.Failures[0].Reason, "want /new-york, got /new-jersey")
}

func TestParseCases(t *testing.T) {
	_, err := ParseCases([]byte("cases:\n  - {category: nope, path: /x}\n"))
	assert.ErrorContains(t, err, "unknown category")

	_, err = ParseCases([]byte("cases: ["))
	assert.Error(t, err)

	dir := t.TempDir()
	p := filepath.Join(dir, "s.yaml")
	require.NoError(t, os.WriteFile(p, []byte("cases:\n  - {category: blog, path: /blog, to: /}\n"), 0o644))
	got, err := LoadCases(p)
	require.NoError(t, err)
	assert.Equal(t, []Case{{Category: "blog", Path: "/blog", To: "/"}}, got)
}

func TestFilterCases(t *testing.T) {
	cases := []Case{
		{Category: "blog", Path: "/blog"},
		{Category: "tools", Path: "/tools"},
		{Category: "blog", Path: "/blog/rss"},
	}
	got, err := FilterCases(cases, []string{"blog"})
	require.NoError(t, err)
	assert.Equal(t, []Case{cases[0], cases[2]}, got)

	got, err = FilterCases(cases, nil)
	require.NoError(t, err)
	assert.Equal(t, cases, got)

	_, err = FilterCases(cases, []string{"blgo"})
	assert.ErrorContains(t, err, "unknown category")
}

func TestRunRequiresCases(t *testing.T) {
	_, err := (&Job{}).Run(context.Background())
	assert.Error(t, err)
}

func TestLiveAgainstHandler(t *testing.T) {
	srv := httptest.NewServer(httpapi.LegacyHandler(httpapi.LegacyDeps{Logger: quiet()}))
	defer srv.Close()

	cases, err := DefaultCases()
	require.NoError(t, err)
	job := &Job{
		Cases:  cases,
		Logger: quiet(),
		Config: Config{BaseURL: srv.URL, Concurrency: 3, RPS: 500, Timeout: 2 * time.Second},
	}
	rep, err := job.Run(context.Background())
	require.NoError(t, err)
	assert.NoError(t, rep.Err())
	passed, _ := rep.Total()
	assert.Equal(t, 2*len(cases), passed)
	assert.Contains(t, rep.Categories, "blog (live)")
}

func TestLiveDetectsMissingRedirect(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	job := &Job{
		Cases:  []Case{{Category: "blog", Path: "/blog/rss", To: "/"}},
		Logger: quiet(),
		Config: Config{BaseURL: srv.URL},
	}
	rep, err := job.Run(context.Background())
	require.NoError(t, err)
	require.Len(t, rep.Failures, 1)
	assert.Equal(t, "blog (live)", rep.Failures[0].Case.Category)
	assert.Contains(t, rep.Failures[0].Reason, "want status 301, got 200")
}

func TestCheckLive(t *testing.T) {
	assert.Empty(t, checkLive(nil, Response{Status: 200}))
	assert.NotEmpty(t, checkLive(nil, Response{Status: 302, Location: "/x"}))

	vendor := &legacy.Redirect{RedirectTo: "/404", Status: 404, NoIndex: true}
	assert.Empty(t, checkLive(vendor, Response{Status: 404, NoIndex: true}))
	assert.Equal(t, "missing X-Robots-Tag: noindex", checkLive(vendor, Response{Status: 404}))

	perm := &legacy.Redirect{RedirectTo: "/california", Permanent: true}
	assert.Empty(t, checkLive(perm, Response{Status: 308, Location: "/california"}))
	assert.Contains(t, checkLive(perm, Response{Status: 301, Location: "/"}), "want Location")
}
