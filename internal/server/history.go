package server

import (
	"context"
	"sync"

	"github.com/alexisbeaulieu97/fieldguide/internal/fieldguide"
	"github.com/alexisbeaulieu97/fieldguide/internal/ports"
)

// history keeps the most recently generated entries, newest first.
type history struct {
	mu    sync.Mutex
	items []fieldguide.Entry
	limit int
}

func newHistory(limit int) *history {
	return &history{limit: limit}
}

// record is an EventHandler for tree.generated events.
func (h *history) record(_ context.Context, event ports.DomainEvent) error {
	entry, ok := event.Payload().(fieldguide.Entry)
	if !ok {
		return nil
	}
	h.mu.Lock()
	defer h.mu.Unlock()
	h.items = append([]fieldguide.Entry{entry}, h.items...)
	if len(h.items) > h.limit {
		h.items = h.items[:h.limit]
	}
	return nil
}

func (h *history) entries() []fieldguide.Entry {
	h.mu.Lock()
	defer h.mu.Unlock()
	return append([]fieldguide.Entry{}, h.items...)
}
