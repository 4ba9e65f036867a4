package journal

import (
	"context"
	"fmt"
	"log/slog"
	"slices"

	"github.com/rustyeddy/tradedash/internal/trace"
	"go.opentelemetry.io/otel/attribute"
)

// Book is the entry collection behind a Repository. Every change loads the
// current snapshot, builds a new collection and saves it once.
type Book struct {
	repo Repository
	log  *slog.Logger
}

// NewBook returns a Book over repo. A nil logger uses slog.Default.
func NewBook(repo Repository, log *slog.Logger) *Book {
	if log == nil {
		log = slog.Default()
	}
	return &Book{repo: repo, log: log}
}

// Entries returns a copy of the stored collection, newest first.
func (b *Book) Entries(ctx context.Context) ([]Entry, error) {
	ctx, span := trace.StartSpan(ctx, "journal.Entries")
	defer span.End()

	entries, err := b.repo.Load(ctx)
	if err != nil {
		span.RecordError(err)
		return nil, fmt.Errorf("load entries: %w", err)
	}
	span.SetAttributes(attribute.Int("entries", len(entries)))
	return slices.Clone(entries), nil
}

// Add prepends e to the collection and returns the saved collection.
func (b *Book) Add(ctx context.Context, e Entry) ([]Entry, error) {
	return b.AddAll(ctx, []Entry{e})
}

// AddAll prepends entries, keeping their order, and saves once.
func (b *Book) AddAll(ctx context.Context, entries []Entry) ([]Entry, error) {
	ctx, span := trace.StartSpan(ctx, "journal.AddAll")
	defer span.End()

	current, err := b.Entries(ctx)
	if err != nil {
		return nil, err
	}
	return b.prepend(ctx, current, entries)
}

// Import prepends the entries whose IDs are not already in the collection
// and returns the ones it added. Repeated IDs within entries keep the first.
func (b *Book) Import(ctx context.Context, entries []Entry) ([]Entry, error) {
	ctx, span := trace.StartSpan(ctx, "journal.Import")
	defer span.End()

	current, err := b.Entries(ctx)
	if err != nil {
		return nil, err
	}

	seen := make(map[string]bool, len(current)+len(entries))
	for _, e := range current {
		seen[e.ID] = true
	}
	var fresh []Entry
	for _, e := range entries {
		if seen[e.ID] {
			b.log.DebugContext(ctx, "journal entry skipped", "id", e.ID, "reason", "duplicate id")
			continue
		}
		seen[e.ID] = true
		fresh = append(fresh, e)
	}
	span.SetAttributes(attribute.Int("skipped", len(entries)-len(fresh)))

	if _, err := b.prepend(ctx, current, fresh); err != nil {
		return nil, err
	}
	return fresh, nil
}

func (b *Book) prepend(ctx context.Context, current, entries []Entry) ([]Entry, error) {
	if len(entries) == 0 {
		return current, nil
	}

	next := make([]Entry, 0, len(entries)+len(current))
	next = append(next, entries...)
	next = append(next, current...)

	if err := b.repo.Save(ctx, next); err != nil {
		return nil, fmt.Errorf("save entries: %w", err)
	}

	for _, e := range entries {
		b.log.DebugContext(ctx, "journal entry saved", "id", e.ID, "date", e.Date, "pnl", e.PnL, "trades", e.Trades)
	}
	b.log.InfoContext(ctx, "journal updated", "added", len(entries), "total", len(next))
	return slices.Clone(next), nil
}
