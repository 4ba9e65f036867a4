package cmd

import (
	"fmt"
	"io"
	"time"

	"github.com/olekukonko/tablewriter"
	"github.com/rustyeddy/tradedash/journal"
)

func renderEntries(w io.Writer, entries []journal.Entry) error {
	table := tablewriter.NewWriter(w)
	table.Header("ID", "Date", "P/L", "Trades", "Long", "Short", "Dir", "Bias", "Reason")
	for _, e := range entries {
		table.Append(
			e.ID,
			e.Date,
			fmt.Sprintf("%+.2f", e.PnL),
			fmt.Sprintf("%d", e.Trades),
			fmt.Sprintf("%d", e.Longs()),
			fmt.Sprintf("%d", e.Shorts()),
			string(e.Direction),
			string(e.Bias),
			truncate(e.Reason, 40),
		)
	}
	return table.Render()
}

func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n-3]) + "..."
}

// calendarGrid lays out the month starting at first as Monday-first weeks.
// Cells outside the month are blank; trading days show the day number,
// net P/L and trade count behind an up or down outcome marker.
func calendarGrid(first time.Time, days map[string]journal.Bucket) [][]string {
	first = time.Date(first.Year(), first.Month(), 1, 0, 0, 0, 0, time.UTC)
	lead := (int(first.Weekday()) + 6) % 7
	n := first.AddDate(0, 1, -1).Day()

	cells := make([]string, lead, lead+n+6)
	for d := 1; d <= n; d++ {
		key := first.AddDate(0, 0, d-1).Format("2006-01-02")
		cells = append(cells, dayCell(d, days[key]))
	}
	for len(cells)%7 != 0 {
		cells = append(cells, "")
	}

	var weeks [][]string
	for i := 0; i < len(cells); i += 7 {
		weeks = append(weeks, cells[i:i+7])
	}
	return weeks
}

func dayCell(day int, b journal.Bucket) string {
	switch b.Outcome() {
	case journal.WinDay:
		return fmt.Sprintf("%d ▲ %+.2f (%d)", day, b.PnL, b.Trades)
	case journal.LossDay:
		return fmt.Sprintf("%d ▼ %+.2f (%d)", day, b.PnL, b.Trades)
	default:
		return fmt.Sprintf("%d", day)
	}
}
