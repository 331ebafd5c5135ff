package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	_ "github.com/jackc/pgx/v5/stdlib"
)

type Store struct{ DB *sql.DB }

func Open(dsn string) (*Store, error) {
	db, err := sql.Open("pgx", dsn)
	if err != nil {
		return nil, err
	}
	db.SetMaxOpenConns(10)
	db.SetMaxIdleConns(5)
	db.SetConnMaxLifetime(30 * time.Minute)
	return &Store{DB: db}, nil
}

func (s *Store) Ping(ctx context.Context) error { return s.DB.PingContext(ctx) }

func (s *Store) Migrate(ctx context.Context) error {
	stmts := []string{
		`CREATE TABLE IF NOT EXISTS legacy_redirect_hits (
            original_path  TEXT PRIMARY KEY,
            redirect_to    TEXT NOT NULL,
            rule           TEXT NOT NULL,
            status         INTEGER NOT NULL,
            hits           BIGINT NOT NULL DEFAULT 0,
            first_seen_at  TIMESTAMPTZ NOT NULL DEFAULT now(),
            last_seen_at   TIMESTAMPTZ NOT NULL DEFAULT now()
        );`,
		`CREATE INDEX IF NOT EXISTS idx_redirect_hits_hits ON legacy_redirect_hits(hits DESC);`,
		`CREATE TABLE IF NOT EXISTS legacy_redirect_events (
            id             BIGSERIAL PRIMARY KEY,
            original_path  TEXT NOT NULL,
            redirect_to    TEXT NOT NULL,
            status         INTEGER NOT NULL,
            seen_at        TIMESTAMPTZ NOT NULL
        );`,
		`CREATE INDEX IF NOT EXISTS idx_redirect_events_seen ON legacy_redirect_events(seen_at DESC);`,
	}
	for _, q := range stmts {
		if _, err := s.DB.ExecContext(ctx, q); err != nil {
			return fmt.Errorf("migrate: %w", err)
		}
	}
	return nil
}

type Hit struct {
	OriginalPath string
	RedirectTo   string
	Rule         string
	Status       int
	SeenAt       time.Time
}

type HitRecord struct {
	OriginalPath string    `json:"original_path"`
	RedirectTo   string    `json:"redirect_to"`
	Rule         string    `json:"rule"`
	Status       int       `json:"status"`
	Hits         int64     `json:"hits"`
	FirstSeenAt  time.Time `json:"first_seen_at"`
	LastSeenAt   time.Time `json:"last_seen_at"`
}

// RecordHit bumps the per-path counter and appends the raw event in one
// transaction.
func (s *Store) RecordHit(ctx context.Context, h Hit) (err error) {
	if s == nil || s.DB == nil {
		return errors.New("nil db")
	}
	if h.SeenAt.IsZero() {
		h.SeenAt = time.Now()
	}
	tx, err := s.DB.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback()
		}
	}()

	if _, err = tx.ExecContext(ctx, `
        INSERT INTO legacy_redirect_hits (original_path, redirect_to, rule, status, hits, first_seen_at, last_seen_at)
        VALUES ($1,$2,$3,$4,1,$5,$5)
        ON CONFLICT (original_path)
        DO UPDATE SET redirect_to=EXCLUDED.redirect_to, rule=EXCLUDED.rule, status=EXCLUDED.status, hits=legacy_redirect_hits.hits + 1, last_seen_at=EXCLUDED.last_seen_at`,
		h.OriginalPath, h.RedirectTo, h.Rule, h.Status, h.SeenAt,
	); err != nil {
		return fmt.Errorf("upsert hit: %w", err)
	}

	if _, err = tx.ExecContext(ctx, `
        INSERT INTO legacy_redirect_events (original_path, redirect_to, status, seen_at)
        VALUES ($1,$2,$3,$4)`,
		h.OriginalPath, h.RedirectTo, h.Status, h.SeenAt,
	); err != nil {
		return fmt.Errorf("insert event: %w", err)
	}

	return tx.Commit()
}

// TopRedirects returns the most requested legacy paths.
func (s *Store) TopRedirects(ctx context.Context, limit int) ([]HitRecord, error) {
	if s == nil || s.DB == nil {
		return nil, errors.New("nil db")
	}
	if limit <= 0 || limit > 500 {
		limit = 50
	}
	rows, err := s.DB.QueryContext(ctx, `
        SELECT original_path, redirect_to, rule, status, hits, first_seen_at, last_seen_at
        FROM legacy_redirect_hits
        ORDER BY hits DESC, original_path
        LIMIT $1`, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []HitRecord
	for rows.Next() {
		var r HitRecord
		if err := rows.Scan(&r.OriginalPath, &r.RedirectTo, &r.Rule, &r.Status, &r.Hits, &r.FirstSeenAt, &r.LastSeenAt); err != nil {
			return nil, err
		}
		out = append(out, r)
	}
	return out, rows.Err()
}
