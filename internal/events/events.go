// Package events carries the analytics hook fired whenever a legacy URL is
// redirected.
package events

import (
	"context"
	"time"

	"github.com/cskerritt/kweconomics-sub000/internal/metrics"
)

type RedirectIssued struct {
	OriginalPath string
	RedirectTo   string
	Rule         string
	Status       int
	At           time.Time
}

type Publisher interface {
	PublishRedirect(ctx context.Context, evt RedirectIssued)
	SubscribeRedirects() <-chan RedirectIssued
}

type inMemory struct{ ch chan RedirectIssued }

// NewInMemory returns a buffered publisher. Publishing never blocks: events
// are dropped when the buffer is full.
func NewInMemory(buffer int) Publisher {
	if buffer <= 0 {
		buffer = 256
	}
	return &inMemory{ch: make(chan RedirectIssued, buffer)}
}

func (m *inMemory) PublishRedirect(_ context.Context, evt RedirectIssued) {
	select {
	case m.ch <- evt:
	default:
		metrics.EventsDropped.Inc()
	}
}

func (m *inMemory) SubscribeRedirects() <-chan RedirectIssued { return m.ch }
