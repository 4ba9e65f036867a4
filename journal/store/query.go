package store

import (
	"context"
	"fmt"

	"github.com/rustyeddy/tradedash/journal"
)

// Getter is a repository that can look up one entry by ID.
type Getter interface {
	Get(ctx context.Context, id string) (journal.Entry, error)
}

// RangeLister is a repository that can list entries in a date window.
type RangeLister interface {
	ListBetween(ctx context.Context, from, to string) ([]journal.Entry, error)
}

// Get returns the entry with the given ID. Repositories without their own
// lookup are scanned.
func Get(ctx context.Context, repo journal.Repository, id string) (journal.Entry, error) {
	if g, ok := repo.(Getter); ok {
		return g.Get(ctx, id)
	}
	entries, err := repo.Load(ctx)
	if err != nil {
		return journal.Entry{}, err
	}
	for _, e := range entries {
		if e.ID == id {
			return e, nil
		}
	}
	return journal.Entry{}, fmt.Errorf("entry %q: %w", id, ErrNotFound)
}

// ListBetween returns entries dated within [from, to], newest first.
func ListBetween(ctx context.Context, repo journal.Repository, from, to string) ([]journal.Entry, error) {
	if l, ok := repo.(RangeLister); ok {
		return l.ListBetween(ctx, from, to)
	}
	entries, err := repo.Load(ctx)
	if err != nil {
		return nil, err
	}
	var out []journal.Entry
	for _, e := range entries {
		if e.Date >= from && e.Date <= to {
			out = append(out, e)
		}
	}
	return out, nil
}
