package store

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rustyeddy/tradedash/journal"
)

func TestQueryHelpers(t *testing.T) {
	t.Parallel()

	sq, _ := newTestSQLite(t)
	require.NoError(t, sq.Save(context.Background(), sampleEntries()))

	for name, repo := range map[string]journal.Repository{
		"memory": NewMemory(sampleEntries()...),
		"sqlite": sq,
	} {
		t.Run(name, func(t *testing.T) {
			ctx := context.Background()

			e, err := Get(ctx, repo, "E2")
			require.NoError(t, err)
			assert.Equal(t, sampleEntries()[1], e)

			_, err = Get(ctx, repo, "missing")
			assert.ErrorIs(t, err, ErrNotFound)

			got, err := ListBetween(ctx, repo, "2024-01-02", "2024-01-03")
			require.NoError(t, err)
			require.Len(t, got, 2)
			assert.Equal(t, "E3", got[0].ID)
			assert.Equal(t, "E2", got[1].ID)

			got, err = ListBetween(ctx, repo, "2025-01-01", "2025-12-31")
			require.NoError(t, err)
			assert.Empty(t, got)
		})
	}
}

func TestQueryHelpersUseRepositoryLookups(t *testing.T) {
	t.Parallel()

	var _ Getter = (*SQLite)(nil)
	var _ RangeLister = (*SQLite)(nil)
	var _ Getter = (*Postgres)(nil)
	var _ RangeLister = (*Postgres)(nil)

	_, ok := journal.Repository(NewMemory()).(Getter)
	assert.False(t, ok)
}
