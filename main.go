package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5/middleware"

	httpapi "github.com/cskerritt/kweconomics-sub000/http"
	httpv1 "github.com/cskerritt/kweconomics-sub000/http/v1"
	"github.com/cskerritt/kweconomics-sub000/internal/analytics"
	"github.com/cskerritt/kweconomics-sub000/internal/catalog"
	"github.com/cskerritt/kweconomics-sub000/internal/env"
	"github.com/cskerritt/kweconomics-sub000/internal/events"
	"github.com/cskerritt/kweconomics-sub000/internal/legacy"
	"github.com/cskerritt/kweconomics-sub000/internal/logger"
	"github.com/cskerritt/kweconomics-sub000/internal/redisx"
	"github.com/cskerritt/kweconomics-sub000/internal/store"
)

func main() {
	log := logger.New()
	slog.SetDefault(log)
	if err := run(log); err != nil {
		log.Error("server stopped", slog.Any("error", err))
		os.Exit(1)
	}
}

func run(log *slog.Logger) error {
	port := env.GetInt("PORT", 4002)
	for _, err := range catalog.Validate(legacy.LegacyServices()) {
		log.Warn("legacy service table", slog.Any("error", err))
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	pub := events.NewInMemory(env.GetInt("EVENT_BUFFER", 256))
	rec := &analytics.Recorder{Pub: pub, Logger: log}
	var stats httpv1.StatsDeps

	if addr := env.Get("REDIS_ADDR", ""); addr != "" {
		rc := redisx.New(addr, os.Getenv("REDIS_PASSWORD"), env.GetInt("REDIS_DB", 0))
		defer rc.Close()
		pctx, cancel := context.WithTimeout(ctx, 5*time.Second)
		if err := rc.Ping(pctx); err != nil {
			log.Warn("redis unavailable, hit counters disabled", slog.String("addr", addr), slog.Any("error", err))
		} else {
			rec.Counters = rc
			stats.Counters = rc
		}
		cancel()
	}

	if dsn := env.Get("PG_DSN", ""); dsn != "" {
		st, err := openStore(ctx, dsn)
		if err != nil {
			log.Warn("postgres unavailable, hit log disabled", slog.Any("error", err))
		} else {
			defer st.DB.Close()
			rec.Store = st
			stats.Store = st
		}
	}

	go rec.Run(ctx)

	router := BuildRouter(RouterDeps{
		Legacy: httpapi.LegacyDeps{
			Pub:    pub,
			Logger: log,
			SPA:    httpapi.SPA{Dir: env.Get("STATIC_DIR", "")},
		},
		Stats:      stats,
		RateLimit:  env.GetInt("RATE_LIMIT_PER_MIN", 300),
		TrustProxy: env.GetBool("TRUST_PROXY", false),
	})

	srv := &http.Server{
		Addr:              ":" + strconv.Itoa(port),
		Handler:           middleware.RequestID(logger.Middleware(router)),
		ReadHeaderTimeout: 10 * time.Second,
	}
	errc := make(chan error, 1)
	go func() {
		log.Info("legacy redirect server listening", slog.Int("port", port))
		errc <- srv.ListenAndServe()
	}()

	select {
	case err := <-errc:
		if !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	case <-ctx.Done():
	}
	// Drain in-flight requests before the deferred Redis/Postgres closes run.
	sctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	return srv.Shutdown(sctx)
}

func openStore(ctx context.Context, dsn string) (*store.Store, error) {
	st, err := store.Open(dsn)
	if err != nil {
		return nil, err
	}
	cctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()
	if err := st.Ping(cctx); err != nil {
		st.DB.Close()
		return nil, err
	}
	if err := st.Migrate(cctx); err != nil {
		st.DB.Close()
		return nil, err
	}
	return st, nil
}
