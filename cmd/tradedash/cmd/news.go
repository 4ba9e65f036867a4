package cmd

import (
	"fmt"

	"github.com/olekukonko/tablewriter"
	"github.com/rustyeddy/tradedash/backtest"
	"github.com/rustyeddy/tradedash/news"
	"github.com/spf13/cobra"
)

var newsCmd = &cobra.Command{
	Use:   "news",
	Short: "Show the economic calendar for a day",
	Long: `Show scheduled releases filtered by impact and currency, followed by
a short note on the day's risk.

Example:
  tradedash news --impact high --ccy USD,EUR`,
	Args: cobra.NoArgs,
	RunE: runNews,
}

var (
	newsDate      string
	newsImpact    string
	newsCcys      []string
	newsNoInsight bool
)

func init() {
	rootCmd.AddCommand(newsCmd)

	newsCmd.Flags().StringVarP(&newsDate, "date", "d", "", "calendar date YYYY-MM-DD (default today)")
	newsCmd.Flags().StringVarP(&newsImpact, "impact", "i", news.All, "impact filter: all, high, medium, low")
	newsCmd.Flags().StringSliceVar(&newsCcys, "ccy", news.DefaultCurrencies, "currencies to show (empty for all)")
	newsCmd.Flags().BoolVar(&newsNoInsight, "no-insight", false, "omit the risk note")
}

func runNews(cmd *cobra.Command, args []string) error {
	date := newsDate
	if date == "" {
		date = today()
	}
	if err := backtest.ValidDate(date); err != nil {
		return err
	}
	if err := news.ValidImpact(newsImpact); err != nil {
		return err
	}

	events := news.FilterCurrencies(news.Calendar(date, newsImpact), newsCcys)

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Economic calendar %s\n", date)
	table := tablewriter.NewWriter(out)
	table.Header("Time", "Ccy", "Event", "Impact", "Forecast", "Previous", "Actual")
	for _, e := range events {
		table.Append(e.Time, e.Currency, e.Title, string(e.Impact), dash(e.Forecast), dash(e.Previous), dash(e.Actual))
	}
	if err := table.Render(); err != nil {
		return err
	}

	if !newsNoInsight {
		fmt.Fprintln(out)
		fmt.Fprintln(out, news.Insight(events))
	}
	return nil
}

func dash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}
