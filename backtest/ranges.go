package backtest

import (
	"fmt"
	"strings"
	"time"
)

const dateLayout = "2006-01-02"

// Presets are the lookback windows offered by the statistics view.
var Presets = []string{"1m", "3m", "6m", "1y", "all"}

// RangeFor returns the from/to dates for a lookback preset ending at now.
// An unknown preset yields an empty window (from == to).
func RangeFor(preset string, now time.Time) (from, to string) {
	end := now.UTC()
	start := end

	switch strings.ToLower(strings.TrimSpace(preset)) {
	case "1m":
		start = end.AddDate(0, -1, 0)
	case "3m":
		start = end.AddDate(0, -3, 0)
	case "6m":
		start = end.AddDate(0, -6, 0)
	case "1y":
		start = end.AddDate(-1, 0, 0)
	case "all":
		start = time.Date(2015, 1, 1, 0, 0, 0, 0, time.UTC)
	}

	return start.Format(dateLayout), end.Format(dateLayout)
}

// ValidDate reports whether s is a YYYY-MM-DD date.
func ValidDate(s string) error {
	if _, err := time.Parse(dateLayout, s); err != nil {
		return fmt.Errorf("date %q: want YYYY-MM-DD", s)
	}
	return nil
}
