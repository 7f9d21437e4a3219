package cmd

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/evalizada/manat/internal/config"
	"github.com/evalizada/manat/internal/currency"
	"github.com/evalizada/manat/internal/ledger"
)

var (
	flagCurrency string
	flagTheme    string
)

var rootCmd = &cobra.Command{
	Use:   "manat",
	Short: "Personal finance tracker",
	Long:  "Track your spendings, subscriptions and rewards from the terminal.",
	RunE:  runTUI,
}

// Execute is the main entry point called from main.go.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&flagCurrency, "currency", "c", "", "Display currency (USD or AZN)")
	rootCmd.PersistentFlags().StringVarP(&flagTheme, "theme", "t", "", "Color theme (dark, light, terminal)")
}

// newLedger builds the seeded ledger and overlays the saved config and any
// command-line overrides.
func newLedger() *ledger.Ledger {
	l := ledger.New()

	cfg, _ := config.Load()
	_ = l.SetUsername(cfg.Profile.Username)
	_ = l.SetBudget(currency.Amount(cfg.Profile.BudgetUSD))
	if cfg.Profile.GoalUSD > 0 {
		_ = l.SetGoal(currency.Amount(cfg.Profile.GoalUSD))
	}
	_ = l.SetCurrency(currency.Currency(cfg.Appearance.Currency))
	l.SetLanguage(cfg.Appearance.Language)
	l.SetTheme(cfg.Appearance.Theme)

	if flagCurrency != "" {
		_ = l.SetCurrency(currency.Currency(flagCurrency))
	}
	if flagTheme != "" {
		l.SetTheme(flagTheme)
	}

	return l
}
