package main

import (
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
)

func quiet() *slog.Logger { return slog.New(slog.NewTextHandler(io.Discard, nil)) }

func TestRunOfflineCategory(t *testing.T) {
	t.Setenv("VERIFY_SAMPLES", "")
	t.Setenv("VERIFY_BASE_URL", "")
	t.Setenv("VERIFY_CATEGORIES", "blog,tools")
	assert.NoError(t, run(quiet()))
}

func TestRunRejectsUnknownCategory(t *testing.T) {
	t.Setenv("VERIFY_SAMPLES", "")
	t.Setenv("VERIFY_CATEGORIES", "blgo")
	err := run(quiet())
	assert.ErrorContains(t, err, "unknown category")
	assert.NotErrorIs(t, err, errFailed)
}

func TestRunMissingSamplesFile(t *testing.T) {
	t.Setenv("VERIFY_SAMPLES", t.TempDir()+"/missing.yaml")
	assert.ErrorContains(t, run(quiet()), "load samples")
}
