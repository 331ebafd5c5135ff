package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"sort"
	"syscall"

	"github.com/cskerritt/kweconomics-sub000/internal/catalog"
	"github.com/cskerritt/kweconomics-sub000/internal/env"
	"github.com/cskerritt/kweconomics-sub000/internal/legacy"
	"github.com/cskerritt/kweconomics-sub000/internal/logger"
	"github.com/cskerritt/kweconomics-sub000/internal/verify"
)

var errFailed = errors.New("verification failed")

func main() {
	log := logger.New()
	slog.SetDefault(log)
	if err := run(log); err != nil {
		if errors.Is(err, errFailed) {
			os.Exit(1)
		}
		log.Error("verification aborted", slog.Any("error", err))
		os.Exit(2)
	}
}

func run(log *slog.Logger) error {
	cases, err := loadCases(env.Get("VERIFY_SAMPLES", ""))
	if err != nil {
		return fmt.Errorf("load samples: %w", err)
	}
	cases, err = verify.FilterCases(cases, env.List("VERIFY_CATEGORIES"))
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	job := &verify.Job{
		Cases:  cases,
		Logger: log,
		Config: verify.Config{
			BaseURL:     env.Get("VERIFY_BASE_URL", ""),
			Concurrency: env.GetInt("VERIFY_CONCURRENCY", 4),
			RPS:         env.GetFloat("VERIFY_RPS", 5),
			Timeout:     env.GetDuration("VERIFY_TIMEOUT", 0),
		},
	}
	rep, err := job.Run(ctx)
	if err != nil && !errors.Is(err, context.Canceled) {
		return err
	}

	dangling := catalog.Validate(legacy.LegacyServices())
	printReport(rep, dangling)
	if len(rep.Failures) > 0 || len(dangling) > 0 {
		return errFailed
	}
	return nil
}

func loadCases(path string) ([]verify.Case, error) {
	if path == "" {
		return verify.DefaultCases()
	}
	return verify.LoadCases(path)
}

func printReport(rep *verify.Report, dangling []error) {
	names := make([]string, 0, len(rep.Categories))
	for name := range rep.Categories {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		c := rep.Categories[name]
		mark := "ok  "
		if c.Failed > 0 {
			mark = "FAIL"
		}
		fmt.Printf("%s %-28s %3d passed %3d failed\n", mark, name, c.Passed, c.Failed)
	}
	for _, f := range rep.Failures {
		fmt.Printf("  [%s] %s: %s\n", f.Case.Category, f.Case.Path, f.Reason)
	}
	for _, err := range dangling {
		fmt.Printf("  [catalog] %v\n", err)
	}
	passed, failed := rep.Total()
	fmt.Printf("%d passed, %d failed\n", passed, failed)
}
