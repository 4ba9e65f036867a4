package cmd

import (
	"errors"
	"fmt"

	"github.com/rustyeddy/tradedash/journal"
	"github.com/rustyeddy/tradedash/journal/store"
	"github.com/rustyeddy/tradedash/pkg/id"
	"github.com/spf13/cobra"
)

var journalCmd = &cobra.Command{
	Use:   "journal",
	Short: "Record and query journal entries",
	Long: `Record daily journal entries and query them.

Subcommands:
  add      - Record an entry
  list     - List entries, newest first
  show     - Show one entry by ID
  import   - Import entries from CSV
  stats    - Win/loss, direction and bias breakdowns
  calendar - Month view of daily P/L

Examples:
  tradedash journal add --pnl '$1,250' --trades 3 --long 2 --reason "NY open sweep"
  tradedash journal list --date 2024-01-15
  tradedash journal calendar --month 2024-01`,
}

var journalAddCmd = &cobra.Command{
	Use:   "add",
	Short: "Record an entry",
	Long: `Record a journal entry. Values are parsed leniently: P/L may carry
currency symbols and separators, and bad numbers fall back to defaults.
The long and short counts are kept consistent with the trade count; when
both are given the long count wins.`,
	Args: cobra.NoArgs,
	RunE: runJournalAdd,
}

var journalListCmd = &cobra.Command{
	Use:   "list",
	Short: "List entries, newest first",
	Args:  cobra.NoArgs,
	RunE:  runJournalList,
}

var journalShowCmd = &cobra.Command{
	Use:   "show <entry-id>",
	Short: "Show one entry by ID",
	Args:  cobra.ExactArgs(1),
	RunE:  runJournalShow,
}

var journalImportCmd = &cobra.Command{
	Use:   "import <file.csv[.xz]>",
	Short: "Import entries from CSV",
	Args:  cobra.ExactArgs(1),
	RunE:  runJournalImport,
}

var (
	jDate      string
	jPnL       string
	jTrades    string
	jLong      string
	jShort     string
	jDirection string
	jBias      string
	jReason    string
	jImage     string

	jListDate string
	jListOrg  bool
	jListCSV  string
)

func init() {
	rootCmd.AddCommand(journalCmd)
	journalCmd.AddCommand(journalAddCmd)
	journalCmd.AddCommand(journalListCmd)
	journalCmd.AddCommand(journalShowCmd)
	journalCmd.AddCommand(journalImportCmd)

	f := journalAddCmd.Flags()
	f.StringVar(&jDate, "date", "", "entry date YYYY-MM-DD (default today)")
	f.StringVar(&jPnL, "pnl", "0", "net profit or loss, e.g. -35.5 or '$1,200'")
	f.StringVar(&jTrades, "trades", "1", "number of trades")
	f.StringVar(&jLong, "long", "", "long trades")
	f.StringVar(&jShort, "short", "", "short trades")
	f.StringVar(&jDirection, "direction", "long", "main direction: long or short")
	f.StringVar(&jBias, "bias", "bullish", "market bias: bullish or bearish")
	f.StringVar(&jReason, "reason", "", "why the trades were taken")
	f.StringVar(&jImage, "image", "", "chart screenshot path or URL")

	journalListCmd.Flags().StringVar(&jListDate, "date", "", "only entries on this date")
	journalListCmd.Flags().BoolVar(&jListOrg, "org", false, "print org-mode entries")
	journalListCmd.Flags().StringVar(&jListCSV, "csv", "", "export to a CSV file instead of printing (.xz compresses)")
}

// entryForm replays the add flags through the form in the order a user
// would edit them.
func entryForm(cmd *cobra.Command) *journal.Form {
	form := journal.NewForm(now())
	if jDate != "" {
		form.Date = jDate
	}
	form.PnL = jPnL
	form.Direction = journal.ParseDirection(jDirection)
	form.Bias = journal.ParseBias(jBias)
	form.Reason = jReason
	form.Image = jImage

	form.OnTradesChanged(jTrades)
	if cmd.Flags().Changed("short") {
		form.OnShortChanged(jShort)
	}
	if cmd.Flags().Changed("long") {
		form.OnLongChanged(jLong)
	}
	return form
}

func runJournalAdd(cmd *cobra.Command, args []string) error {
	form := entryForm(cmd)
	if form.Date == "" {
		return errors.New("entry date is empty")
	}

	book, repo, err := openBook()
	if err != nil {
		return err
	}
	defer repo.Close()

	e := form.Submit(id.New)
	if _, err := book.Add(cmd.Context(), e); err != nil {
		return err
	}

	fmt.Fprintln(cmd.OutOrStdout(), journal.FormatEntryOrg(e))
	return nil
}

func runJournalList(cmd *cobra.Command, args []string) error {
	book, repo, err := openBook()
	if err != nil {
		return err
	}
	defer repo.Close()

	entries, err := book.Entries(cmd.Context())
	if err != nil {
		return err
	}
	if jListDate != "" {
		entries = journal.FilterByDate(entries, jListDate)
	}

	out := cmd.OutOrStdout()
	if jListCSV != "" {
		f, err := createFile(jListCSV)
		if err != nil {
			return fmt.Errorf("create csv: %w", err)
		}
		if err := journal.WriteCSV(f, entries); err != nil {
			f.Close()
			return err
		}
		if err := f.Close(); err != nil {
			return fmt.Errorf("close csv: %w", err)
		}
		fmt.Fprintf(out, "✓ Exported %d entries to %s\n", len(entries), jListCSV)
		return nil
	}

	if len(entries) == 0 {
		fmt.Fprintln(out, "No entries.")
		return nil
	}
	if jListOrg {
		fmt.Fprintln(out, journal.FormatEntriesOrg(entries))
		return nil
	}
	return renderEntries(out, entries)
}

func runJournalShow(cmd *cobra.Command, args []string) error {
	_, repo, err := openBook()
	if err != nil {
		return err
	}
	defer repo.Close()

	e, err := store.Get(cmd.Context(), repo, args[0])
	if err != nil {
		return err
	}
	fmt.Fprintln(cmd.OutOrStdout(), journal.FormatEntryOrg(e))
	return nil
}

func runJournalImport(cmd *cobra.Command, args []string) error {
	f, err := openFile(args[0])
	if err != nil {
		return fmt.Errorf("open csv: %w", err)
	}
	defer f.Close()

	imported, err := journal.ReadCSV(f, id.New)
	if err != nil {
		return fmt.Errorf("read %s: %w", args[0], err)
	}

	book, repo, err := openBook()
	if err != nil {
		return err
	}
	defer repo.Close()

	added, err := book.Import(cmd.Context(), imported)
	if err != nil {
		return err
	}
	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "✓ Imported %d entries\n", len(added))
	if skipped := len(imported) - len(added); skipped > 0 {
		fmt.Fprintf(out, "  skipped %d already in the journal\n", skipped)
	}
	return nil
}
