// Package journal models trade-journal entries and folds them into the
// calendar and categorical summaries shown on the dashboard.
package journal

import (
	"context"
	"strings"
)

// Direction is the side of the primary trade in an entry.
type Direction string

const (
	Long  Direction = "long"
	Short Direction = "short"
)

// ParseDirection maps free text to a Direction. Anything other than
// "short" is Long.
func ParseDirection(s string) Direction {
	if strings.EqualFold(strings.TrimSpace(s), string(Short)) {
		return Short
	}
	return Long
}

// Bias is the market view recorded with an entry.
type Bias string

const (
	Bullish Bias = "bullish"
	Bearish Bias = "bearish"
)

// ParseBias maps free text to a Bias. Anything other than "bearish" is
// Bullish.
func ParseBias(s string) Bias {
	if strings.EqualFold(strings.TrimSpace(s), string(Bearish)) {
		return Bearish
	}
	return Bullish
}

// Entry is one journal record. Entries are never modified after creation.
//
// LongCount and ShortCount are nil on entries written before per-direction
// counts existed; use Longs and Shorts to read them.
type Entry struct {
	ID         string    `json:"id"`
	Date       string    `json:"date"`
	PnL        float64   `json:"pnl"`
	Trades     int       `json:"trades"`
	Direction  Direction `json:"direction"`
	Bias       Bias      `json:"bias"`
	Reason     string    `json:"reason"`
	Image      string    `json:"image,omitempty"`
	LongCount  *int      `json:"longCount,omitempty"`
	ShortCount *int      `json:"shortCount,omitempty"`
}

// Longs returns the long trade count, falling back to the direction for
// legacy entries.
func (e Entry) Longs() int {
	if e.LongCount != nil {
		return max(0, *e.LongCount)
	}
	if e.Direction == Long {
		return 1
	}
	return 0
}

// Shorts returns the short trade count, falling back to the direction for
// legacy entries.
func (e Entry) Shorts() int {
	if e.ShortCount != nil {
		return max(0, *e.ShortCount)
	}
	if e.Direction == Short {
		return 1
	}
	return 0
}

// Win reports whether the entry is profitable. Flat entries are losses.
func (e Entry) Win() bool {
	return e.PnL > 0
}

// Repository loads and saves the whole entry collection.
type Repository interface {
	Load(ctx context.Context) ([]Entry, error)
	Save(ctx context.Context, entries []Entry) error
}

func intPtr(v int) *int {
	return &v
}
