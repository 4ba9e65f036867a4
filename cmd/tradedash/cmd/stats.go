package cmd

import (
	"context"
	"fmt"
	"slices"
	"time"

	"github.com/olekukonko/tablewriter"
	"github.com/rustyeddy/tradedash/backtest"
	"github.com/rustyeddy/tradedash/journal"
	"github.com/rustyeddy/tradedash/journal/store"
	"github.com/spf13/cobra"
)

var journalStatsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Win/loss, direction and bias breakdowns",
	Long: `Summarize journal entries: count, win rate, average P/L, best day,
and the win/loss, long/short and bullish/bearish splits.

Example:
  tradedash journal stats --range 3m`,
	Args: cobra.NoArgs,
	RunE: runJournalStats,
}

var journalCalendarCmd = &cobra.Command{
	Use:   "calendar",
	Short: "Month view of daily P/L",
	Long: `Show a Monday-first month grid with each trading day's net P/L,
trade count and outcome (▲ win, ▼ loss).

Example:
  tradedash journal calendar --month 2024-01`,
	Args: cobra.NoArgs,
	RunE: runJournalCalendar,
}

var (
	statsRange string
	calMonth   string
)

func init() {
	journalCmd.AddCommand(journalStatsCmd)
	journalCmd.AddCommand(journalCalendarCmd)

	journalStatsCmd.Flags().StringVarP(&statsRange, "range", "r", "all", "lookback preset: 1m, 3m, 6m, 1y, all")
	journalCalendarCmd.Flags().StringVarP(&calMonth, "month", "m", "", "month YYYY-MM (default this month)")
}

func runJournalStats(cmd *cobra.Command, args []string) error {
	book, repo, err := openBook()
	if err != nil {
		return err
	}
	defer repo.Close()

	entries, err := withinRange(cmd.Context(), book, repo, statsRange)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	sum := journal.SummarizeDaily(entries)
	fmt.Fprintf(out, "Entries:   %d\n", sum.Count)
	fmt.Fprintf(out, "Win Rate:  %d%%\n", sum.WinRate)
	fmt.Fprintf(out, "Avg P/L:   %.2f\n", sum.AvgPnL)
	if sum.BestDay != nil {
		fmt.Fprintf(out, "Best Day:  %s (%+.2f)\n", sum.BestDay.Date, sum.BestDay.PnL)
	} else {
		fmt.Fprintln(out, "Best Day:  -")
	}
	fmt.Fprintln(out)

	cats := journal.AggregateCategories(entries)
	table := tablewriter.NewWriter(out)
	table.Header("Split", "A", "B", "A %", "B %")
	for _, row := range []struct {
		label string
		b     journal.Breakdown
	}{
		{"Win/Loss", cats.WinLoss},
		{"Direction", cats.ByDirection},
		{"Bias", cats.ByBias},
	} {
		pa, pb := row.b.Percentages()
		err := table.Append(
			row.label,
			fmt.Sprintf("%s %d", row.b[0].Name, row.b[0].Value),
			fmt.Sprintf("%s %d", row.b[1].Name, row.b[1].Value),
			fmt.Sprintf("%d%%", pa),
			fmt.Sprintf("%d%%", pb),
		)
		if err != nil {
			return err
		}
	}
	return table.Render()
}

// withinRange returns the entries dated inside a lookback preset ending
// today, using the store's date query when it has one.
func withinRange(ctx context.Context, book *journal.Book, repo journal.Repository, preset string) ([]journal.Entry, error) {
	if !slices.Contains(backtest.Presets, preset) {
		return nil, fmt.Errorf("unknown range %q", preset)
	}
	if preset == "all" {
		return book.Entries(ctx)
	}
	from, to := backtest.RangeFor(preset, now())
	return store.ListBetween(ctx, repo, from, to)
}

func runJournalCalendar(cmd *cobra.Command, args []string) error {
	month := calMonth
	if month == "" {
		month = today()[:7]
	}
	first, err := time.Parse("2006-01", month)
	if err != nil {
		return fmt.Errorf("month %q: want YYYY-MM", month)
	}

	book, repo, err := openBook()
	if err != nil {
		return err
	}
	defer repo.Close()

	entries, err := book.Entries(cmd.Context())
	if err != nil {
		return err
	}

	days := journal.AggregateCalendar(entries, month)
	trades, pnl := journal.MonthTotals(days)

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "%s  Trades: %d • Net P/L: %.2f\n", first.Format("January 2006"), trades, pnl)

	table := tablewriter.NewWriter(out)
	table.Header("Mon", "Tue", "Wed", "Thu", "Fri", "Sat", "Sun")
	if err := table.Bulk(calendarGrid(first, days)); err != nil {
		return err
	}
	return table.Render()
}
