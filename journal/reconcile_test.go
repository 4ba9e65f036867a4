package journal

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fixedIDs(ids ...string) IDFunc {
	i := 0
	return func() string {
		id := ids[i%len(ids)]
		i++
		return id
	}
}

func TestReconcile(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name             string
		trades, long, sh int
		dir              Direction
		wantLong, wantSh int
	}{
		{"single long ignores counts", 1, 5, 5, Long, 1, 0},
		{"single short ignores counts", 1, 1, 0, Short, 0, 1},
		{"zero trades treated as single", 0, 0, 0, Short, 0, 1},
		{"consistent pair kept", 5, 2, 3, Long, 2, 3},
		{"short derived from long", 5, 2, 0, Short, 2, 3},
		{"long clamped to trades", 3, 10, 0, Long, 3, 0},
		{"over-specified long wins", 4, 3, 3, Long, 3, 1},
		{"negative long clamped", 4, -2, 1, Long, 0, 4},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			l, s := Reconcile(tt.trades, tt.long, tt.sh, tt.dir)
			assert.Equal(t, tt.wantLong, l)
			assert.Equal(t, tt.wantSh, s)
		})
	}
}

func TestReconcileInvariant(t *testing.T) {
	t.Parallel()

	for trades := 0; trades <= 6; trades++ {
		for long := -1; long <= 8; long++ {
			for short := -1; short <= 8; short++ {
				for _, dir := range []Direction{Long, Short} {
					l, s := Reconcile(trades, long, short, dir)
					if trades > 1 {
						assert.Equal(t, trades, l+s)
						assert.GreaterOrEqual(t, l, 0)
						assert.GreaterOrEqual(t, s, 0)
						continue
					}
					assert.Equal(t, 1, l+s)
					if dir == Long {
						assert.Equal(t, 1, l)
					} else {
						assert.Equal(t, 1, s)
					}
				}
			}
		}
	}
}

func TestNewEntry(t *testing.T) {
	t.Parallel()

	e := NewEntry(EntryInput{
		Date:      "2025-01-02",
		PnL:       "$-120.5",
		Trades:    "4",
		Long:      "6",
		Short:     "1",
		Direction: Short,
		Bias:      Bearish,
		Reason:    "faded the open",
		Image:     "file:///tmp/chart.png",
	}, fixedIDs("E1"))

	assert.Equal(t, "E1", e.ID)
	assert.Equal(t, "2025-01-02", e.Date)
	assert.Equal(t, -120.5, e.PnL)
	assert.Equal(t, 4, e.Trades)
	assert.Equal(t, Short, e.Direction)
	assert.Equal(t, Bearish, e.Bias)
	require.NotNil(t, e.LongCount)
	require.NotNil(t, e.ShortCount)
	assert.Equal(t, 4, *e.LongCount)
	assert.Equal(t, 0, *e.ShortCount)
	assert.Equal(t, "faded the open", e.Reason)
	assert.Equal(t, "file:///tmp/chart.png", e.Image)
}

func TestNewEntryDefaultsGarbage(t *testing.T) {
	t.Parallel()

	e := NewEntry(EntryInput{PnL: "n/a", Trades: "?", Long: "x", Short: "y"}, fixedIDs("E2"))

	assert.Equal(t, 0.0, e.PnL)
	assert.Equal(t, 1, e.Trades)
	assert.Equal(t, Long, e.Direction)
	assert.Equal(t, Bullish, e.Bias)
	assert.Equal(t, 1, e.Longs())
	assert.Equal(t, 0, e.Shorts())
}

func TestFormDefaults(t *testing.T) {
	t.Parallel()

	f := NewForm(time.Date(2025, 3, 9, 23, 0, 0, 0, time.UTC))
	assert.Equal(t, "2025-03-09", f.Date)
	assert.Equal(t, "0", f.PnL)
	assert.Equal(t, "1", f.Trades)
	assert.Equal(t, "1", f.Long)
	assert.Equal(t, "0", f.Short)
	assert.Equal(t, Long, f.Direction)
	assert.Equal(t, Bullish, f.Bias)
}

func TestFormOnTradesChangedKeepsLong(t *testing.T) {
	t.Parallel()

	f := NewForm(time.Now())
	f.OnTradesChanged("5")
	assert.Equal(t, "1", f.Long)
	assert.Equal(t, "4", f.Short)

	f.OnLongChanged("4")
	assert.Equal(t, "4", f.Long)
	assert.Equal(t, "1", f.Short)

	// Shrinking the count caps long and short takes what is left.
	f.OnTradesChanged("3")
	assert.Equal(t, "3", f.Trades)
	assert.Equal(t, "3", f.Long)
	assert.Equal(t, "0", f.Short)

	// Growing it keeps long.
	f.OnTradesChanged("6")
	assert.Equal(t, "3", f.Long)
	assert.Equal(t, "3", f.Short)
}

func TestFormOnTradesChangedSingleUsesDirection(t *testing.T) {
	t.Parallel()

	f := NewForm(time.Now())
	f.Direction = Short
	f.OnTradesChanged("4")
	f.OnTradesChanged("1")
	assert.Equal(t, "0", f.Long)
	assert.Equal(t, "1", f.Short)

	f.Direction = Long
	f.OnTradesChanged("")
	assert.Equal(t, "1", f.Long)
	assert.Equal(t, "0", f.Short)
}

func TestFormOnShortChanged(t *testing.T) {
	t.Parallel()

	f := NewForm(time.Now())
	f.OnTradesChanged("5")
	f.OnShortChanged("9")
	assert.Equal(t, "5", f.Short)
	assert.Equal(t, "0", f.Long)

	f.OnShortChanged("2")
	assert.Equal(t, "3", f.Long)
	assert.Equal(t, "2", f.Short)

	// The trade-count edit re-derives from long, not from the short edit.
	f.OnTradesChanged("4")
	assert.Equal(t, "3", f.Long)
	assert.Equal(t, "1", f.Short)
}

func TestFormSubmitResets(t *testing.T) {
	t.Parallel()

	f := NewForm(time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC))
	f.PnL = "250"
	f.OnTradesChanged("3")
	f.OnLongChanged("2")
	f.Bias = Bearish
	f.Reason = "breakout"

	e := f.Submit(fixedIDs("E3"))
	assert.Equal(t, "E3", e.ID)
	assert.Equal(t, 250.0, e.PnL)
	assert.Equal(t, 3, e.Trades)
	assert.Equal(t, 2, e.Longs())
	assert.Equal(t, 1, e.Shorts())
	assert.Equal(t, Bearish, e.Bias)

	assert.Equal(t, "2025-01-01", f.Date)
	assert.Equal(t, "0", f.PnL)
	assert.Equal(t, "1", f.Trades)
	assert.Equal(t, "", f.Reason)
	assert.Equal(t, Bullish, f.Bias)
}
