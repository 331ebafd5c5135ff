package verify

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"sort"
	"sync"
	"time"

	"golang.org/x/sync/errgroup"
	"golang.org/x/time/rate"

	"github.com/cskerritt/kweconomics-sub000/internal/legacy"
)

type Config struct {
	// BaseURL enables live checks against a deployed site.
	BaseURL     string
	Concurrency int
	// RPS caps live requests per second; 0 means unlimited.
	RPS     float64
	Timeout time.Duration
}

type Job struct {
	Cases  []Case
	Config Config
	Logger *slog.Logger
	// Resolve defaults to legacy.Resolve.
	Resolve func(string) *legacy.Redirect
	// Client is built from Config when nil.
	Client *Client
}

type Failure struct {
	Case   Case
	Reason string
}

type CategoryResult struct {
	Passed int
	Failed int
}

type Report struct {
	Categories map[string]*CategoryResult
	Failures   []Failure
}

func (r *Report) Total() (passed, failed int) {
	for _, c := range r.Categories {
		passed += c.Passed
		failed += c.Failed
	}
	return passed, failed
}

// Err joins every failure into one error, or nil when all cases passed.
func (r *Report) Err() error {
	var joined error
	for _, f := range r.Failures {
		joined = errors.Join(joined, fmt.Errorf("[%s] %s: %s", f.Case.Category, f.Case.Path, f.Reason))
	}
	return joined
}

func (j *Job) logger() *slog.Logger {
	if j.Logger != nil {
		return j.Logger
	}
	return slog.Default()
}

func (j *Job) resolve() func(string) *legacy.Redirect {
	if j.Resolve != nil {
		return j.Resolve
	}
	return legacy.Resolve
}

// Run checks every case offline and, when BaseURL is set, against the live
// site. The returned error is non-nil only when the run itself could not
// complete; case failures are in the report.
func (j *Job) Run(ctx context.Context) (*Report, error) {
	if len(j.Cases) == 0 {
		return nil, errors.New("verify job has no cases")
	}
	rep := &Report{Categories: map[string]*CategoryResult{}}
	var mu sync.Mutex
	record := func(c Case, reason string) {
		mu.Lock()
		defer mu.Unlock()
		cr := rep.Categories[c.Category]
		if cr == nil {
			cr = &CategoryResult{}
			rep.Categories[c.Category] = cr
		}
		if reason == "" {
			cr.Passed++
			return
		}
		cr.Failed++
		rep.Failures = append(rep.Failures, Failure{Case: c, Reason: reason})
	}

	for _, c := range j.Cases {
		record(c, j.checkOffline(c))
	}

	if j.Config.BaseURL != "" {
		if err := j.runLive(ctx, record); err != nil {
			return rep, err
		}
	}

	sort.Slice(rep.Failures, func(a, b int) bool {
		if rep.Failures[a].Case.Category != rep.Failures[b].Case.Category {
			return rep.Failures[a].Case.Category < rep.Failures[b].Case.Category
		}
		return rep.Failures[a].Case.Path < rep.Failures[b].Case.Path
	})
	passed, failed := rep.Total()
	j.logger().Info("legacy url verification finished",
		slog.Int("passed", passed), slog.Int("failed", failed), slog.Bool("live", j.Config.BaseURL != ""))
	return rep, nil
}

func (j *Job) checkOffline(c Case) string {
	r := j.resolve()(c.Path)
	if !predicates[c.Category](r) {
		return fmt.Sprintf("result %s does not fit category", describe(r))
	}
	if c.To != "" && (r == nil || r.RedirectTo != c.To) {
		return fmt.Sprintf("want %s, got %s", c.To, describe(r))
	}
	return ""
}

func (j *Job) runLive(ctx context.Context, record func(Case, string)) error {
	client := j.Client
	if client == nil {
		client = NewClient(j.Config.BaseURL, j.Config.Timeout)
	}
	limit := rate.Inf
	if j.Config.RPS > 0 {
		limit = rate.Limit(j.Config.RPS)
	}
	limiter := rate.NewLimiter(limit, 1)
	conc := j.Config.Concurrency
	if conc <= 0 {
		conc = 4
	}

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(conc)
	for _, c := range j.Cases {
		g.Go(func() error {
			if err := limiter.Wait(gctx); err != nil {
				return err
			}
			resp, err := client.Get(gctx, c.Path)
			if err != nil {
				if gctx.Err() != nil {
					return gctx.Err()
				}
				record(liveCase(c), err.Error())
				return nil
			}
			record(liveCase(c), checkLive(j.resolve()(c.Path), resp))
			return nil
		})
	}
	return g.Wait()
}

func liveCase(c Case) Case {
	c.Category += " (live)"
	return c
}

// checkLive compares the site's first response with what the resolver
// says it should be.
func checkLive(want *legacy.Redirect, got Response) string {
	switch {
	case want == nil:
		if got.Status >= 300 && got.Status < 400 {
			return fmt.Sprintf("unexpected redirect %d to %s", got.Status, got.Location)
		}
	case want.Status != 0:
		if got.Status != want.Status {
			return fmt.Sprintf("want status %d, got %d", want.Status, got.Status)
		}
		if want.NoIndex && !got.NoIndex {
			return "missing X-Robots-Tag: noindex"
		}
	default:
		code := http.StatusFound
		if want.Permanent {
			code = http.StatusMovedPermanently
		}
		if got.Status != code && !(want.Permanent && got.Status == http.StatusPermanentRedirect) {
			return fmt.Sprintf("want status %d, got %d", code, got.Status)
		}
		if got.Location != want.RedirectTo {
			return fmt.Sprintf("want Location %s, got %s", want.RedirectTo, got.Location)
		}
	}
	return ""
}

func describe(r *legacy.Redirect) string {
	if r == nil {
		return "<nil>"
	}
	if r.Status != 0 {
		return fmt.Sprintf("%s (status %d)", r.RedirectTo, r.Status)
	}
	return r.RedirectTo
}
