package journal

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type memRepo struct {
	entries []Entry
	saves   int
	loadErr error
	saveErr error
}

func (m *memRepo) Load(ctx context.Context) ([]Entry, error) {
	if m.loadErr != nil {
		return nil, m.loadErr
	}
	return m.entries, nil
}

func (m *memRepo) Save(ctx context.Context, entries []Entry) error {
	if m.saveErr != nil {
		return m.saveErr
	}
	m.saves++
	m.entries = entries
	return nil
}

func TestBookAddPrepends(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	repo := &memRepo{}
	b := NewBook(repo, nil)

	_, err := b.Add(ctx, Entry{ID: "A", Date: "2025-01-01"})
	require.NoError(t, err)
	got, err := b.Add(ctx, Entry{ID: "B", Date: "2025-01-02"})
	require.NoError(t, err)

	require.Len(t, got, 2)
	assert.Equal(t, "B", got[0].ID)
	assert.Equal(t, "A", got[1].ID)
	assert.Equal(t, 2, repo.saves)
}

func TestBookDoesNotMutateSnapshot(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	snapshot := []Entry{{ID: "A"}}
	repo := &memRepo{entries: snapshot}
	b := NewBook(repo, nil)

	_, err := b.Add(ctx, Entry{ID: "B"})
	require.NoError(t, err)
	assert.Equal(t, []Entry{{ID: "A"}}, snapshot)

	entries, err := b.Entries(ctx)
	require.NoError(t, err)
	entries[0].ID = "changed"
	assert.Equal(t, "B", repo.entries[0].ID)
}

func TestBookAddAllKeepsOrder(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	repo := &memRepo{entries: []Entry{{ID: "old"}}}
	b := NewBook(repo, nil)

	got, err := b.AddAll(ctx, []Entry{{ID: "n1"}, {ID: "n2"}})
	require.NoError(t, err)
	ids := []string{got[0].ID, got[1].ID, got[2].ID}
	assert.Equal(t, []string{"n1", "n2", "old"}, ids)
	assert.Equal(t, 1, repo.saves)

	_, err = b.AddAll(ctx, nil)
	require.NoError(t, err)
	assert.Equal(t, 1, repo.saves)
}

func TestBookErrors(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	boom := errors.New("boom")

	_, err := NewBook(&memRepo{loadErr: boom}, nil).Add(ctx, Entry{ID: "A"})
	assert.ErrorIs(t, err, boom)
	assert.Contains(t, err.Error(), "load entries")

	_, err = NewBook(&memRepo{saveErr: boom}, nil).Add(ctx, Entry{ID: "A"})
	assert.ErrorIs(t, err, boom)
	assert.Contains(t, err.Error(), "save entries")
}

func TestBookImportSkipsKnownIDs(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	repo := &memRepo{entries: []Entry{{ID: "old", PnL: 5}}}
	b := NewBook(repo, nil)

	added, err := b.Import(ctx, []Entry{{ID: "new"}, {ID: "old", PnL: 99}, {ID: "new", PnL: 1}})
	require.NoError(t, err)
	assert.Equal(t, []Entry{{ID: "new"}}, added)
	assert.Equal(t, []Entry{{ID: "new"}, {ID: "old", PnL: 5}}, repo.entries)
	assert.Equal(t, 1, repo.saves)

	added, err = b.Import(ctx, []Entry{{ID: "old"}, {ID: "new"}})
	require.NoError(t, err)
	assert.Empty(t, added)
	assert.Len(t, repo.entries, 2)
	assert.Equal(t, 1, repo.saves)
}
