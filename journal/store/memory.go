package store

import (
	"context"
	"slices"
	"sync"

	"github.com/rustyeddy/tradedash/journal"
)

// Memory is an in-process repository, used by tests and dry runs.
type Memory struct {
	mu      sync.Mutex
	entries []journal.Entry
}

func NewMemory(entries ...journal.Entry) *Memory {
	return &Memory{entries: slices.Clone(entries)}
}

func (m *Memory) Load(ctx context.Context) ([]journal.Entry, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return slices.Clone(m.entries), nil
}

func (m *Memory) Save(ctx context.Context, entries []journal.Entry) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.entries = slices.Clone(entries)
	return nil
}

func (m *Memory) Close() error {
	return nil
}
