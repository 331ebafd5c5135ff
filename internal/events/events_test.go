package events

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestInMemoryDropsWhenFull(t *testing.T) {
	pub := NewInMemory(1)
	ctx := context.Background()
	pub.PublishRedirect(ctx, RedirectIssued{OriginalPath: "/a", RedirectTo: "/"})
	pub.PublishRedirect(ctx, RedirectIssued{OriginalPath: "/b", RedirectTo: "/"})

	got := <-pub.SubscribeRedirects()
	assert.Equal(t, "/a", got.OriginalPath)
	select {
	case evt := <-pub.SubscribeRedirects():
		t.Fatalf("unexpected event %+v", evt)
	default:
	}
}

func TestNewInMemoryDefaultBuffer(t *testing.T) {
	pub := NewInMemory(0).(*inMemory)
	assert.Equal(t, 256, cap(pub.ch))
}
