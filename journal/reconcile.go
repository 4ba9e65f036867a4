package journal

import (
	"strconv"
	"strings"
	"time"
)

// Reconcile returns long and short counts consistent with trades.
//
// With a single trade the counts come from dir alone. With more, a pair that
// already sums to trades is kept; otherwise long is clamped to [0, trades]
// and short becomes the complement.
func Reconcile(trades, long, short int, dir Direction) (int, int) {
	if trades <= 1 {
		if dir == Short {
			return 0, 1
		}
		return 1, 0
	}
	long, short = max(0, long), max(0, short)
	if long+short == trades {
		return long, short
	}
	long = min(trades, long)
	return long, trades - long
}

// EntryInput is the raw form data for a new entry.
type EntryInput struct {
	Date      string
	PnL       string
	Trades    string
	Long      string
	Short     string
	Direction Direction
	Bias      Bias
	Reason    string
	Image     string
}

// IDFunc returns a fresh unique entry ID.
type IDFunc func() string

// NewEntry builds a valid entry from raw input. It never fails; bad numbers
// fall back to their defaults and the counts are reconciled.
func NewEntry(in EntryInput, ids IDFunc) Entry {
	dir := in.Direction
	if dir != Short {
		dir = Long
	}
	bias := in.Bias
	if bias != Bearish {
		bias = Bullish
	}

	trades := ParseTrades(in.Trades)
	long, short := Reconcile(trades, ParseNonNegInt(in.Long), ParseNonNegInt(in.Short), dir)

	return Entry{
		ID:         ids(),
		Date:       strings.TrimSpace(in.Date),
		PnL:        ParseMoney(in.PnL),
		Trades:     trades,
		Direction:  dir,
		Bias:       bias,
		Reason:     in.Reason,
		Image:      in.Image,
		LongCount:  intPtr(long),
		ShortCount: intPtr(short),
	}
}

// Form holds the raw fields of the entry form and keeps the long and short
// fields consistent as each one is edited.
type Form struct {
	EntryInput
}

// NewForm returns a form with its defaults, dated on the day of now.
func NewForm(now time.Time) *Form {
	f := &Form{}
	f.Date = now.UTC().Format("2006-01-02")
	f.Reset()
	return f
}

// Reset restores every field except the date to its default.
func (f *Form) Reset() {
	f.PnL = "0"
	f.Trades = "1"
	f.Long = "1"
	f.Short = "0"
	f.Direction = Long
	f.Bias = Bullish
	f.Reason = ""
	f.Image = ""
}

// OnTradesChanged applies a new trade count. Long is kept up to the new
// count and short takes the remainder. A single trade resets both counts
// from the direction.
func (f *Form) OnTradesChanged(v string) {
	f.Trades = v
	t := ParseTrades(v)
	if t > 1 {
		l := min(t, ParseNonNegInt(f.Long))
		f.setCounts(l, t-l)
		return
	}
	if f.Direction == Short {
		f.setCounts(0, 1)
	} else {
		f.setCounts(1, 0)
	}
}

// OnLongChanged clamps the long count and derives short from it.
func (f *Form) OnLongChanged(v string) {
	t := ParseTrades(f.Trades)
	l := min(t, ParseNonNegInt(v))
	f.setCounts(l, max(0, t-l))
}

// OnShortChanged clamps the short count and derives long from it.
func (f *Form) OnShortChanged(v string) {
	t := ParseTrades(f.Trades)
	s := min(t, ParseNonNegInt(v))
	f.setCounts(max(0, t-s), s)
}

// Submit builds the entry and resets the form for the next one.
func (f *Form) Submit(ids IDFunc) Entry {
	e := NewEntry(f.EntryInput, ids)
	f.Reset()
	return e
}

func (f *Form) setCounts(long, short int) {
	f.Long = strconv.Itoa(long)
	f.Short = strconv.Itoa(short)
}
