package cmd

import (
	"errors"
	"fmt"

	"github.com/olekukonko/tablewriter"
	"github.com/rustyeddy/tradedash/config"
	"github.com/rustyeddy/tradedash/strategy"
	"github.com/spf13/cobra"
)

var strategyCmd = &cobra.Command{
	Use:   "strategy",
	Short: "List or add backtest strategies",
	Long: `Manage the strategy catalog used by backtest.

Subcommands:
  list - Show the configured strategies
  add  - Add a strategy to the config file

Examples:
  tradedash strategy list
  tradedash -c tradedash.yaml strategy add "London Fade"`,
}

var strategyListCmd = &cobra.Command{
	Use:   "list",
	Short: "Show the configured strategies",
	Args:  cobra.NoArgs,
	RunE:  runStrategyList,
}

var strategyAddCmd = &cobra.Command{
	Use:   "add <name>",
	Short: "Add a strategy to the config file",
	Args:  cobra.ExactArgs(1),
	RunE:  runStrategyAdd,
}

func init() {
	rootCmd.AddCommand(strategyCmd)
	strategyCmd.AddCommand(strategyListCmd)
	strategyCmd.AddCommand(strategyAddCmd)
}

func runStrategyList(cmd *cobra.Command, args []string) error {
	table := tablewriter.NewWriter(cmd.OutOrStdout())
	table.Header("ID", "Name", "R:R", "Timeframe")
	for _, s := range cfg.Strategies {
		table.Append(s.ID, s.Name, fmt.Sprintf("%.1f", s.RR), s.Timeframe)
	}
	return table.Render()
}

func runStrategyAdd(cmd *cobra.Command, args []string) error {
	if cfgFile == "" {
		return errors.New("strategy add needs --config to save the new strategy")
	}

	catalog := strategy.NewCatalog(cfg.Strategies, nil)
	s, ok := catalog.Add(args[0])
	if !ok {
		return errors.New("strategy name is empty")
	}

	saved, err := config.LoadFromFile(cfgFile)
	if err != nil {
		return err
	}
	saved.Strategies = catalog.List()
	if err := saved.SaveToFile(cfgFile); err != nil {
		return fmt.Errorf("save config: %w", err)
	}

	fmt.Fprintf(cmd.OutOrStdout(), "✓ Added %s (%s, R:R %.1f, %s)\n", s.ID, s.Name, s.RR, s.Timeframe)
	return nil
}
