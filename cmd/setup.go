package cmd

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/evalizada/manat/internal/config"
	"github.com/evalizada/manat/internal/currency"
)

var setupCmd = &cobra.Command{
	Use:   "setup",
	Short: "First-time setup wizard",
	RunE:  runSetup,
}

func init() {
	rootCmd.AddCommand(setupCmd)
}

func runSetup(_ *cobra.Command, _ []string) error {
	reader := bufio.NewReader(os.Stdin)

	// Load existing config or defaults
	cfg, _ := config.Load()

	fmt.Println()
	fmt.Println("  Welcome to manat!")
	fmt.Println()

	// 1. Username
	fmt.Println("  1. Your name")
	fmt.Printf("     Current: %s\n", cfg.Profile.Username)
	fmt.Print("     > ")
	name, _ := reader.ReadString('\n')
	name = strings.TrimSpace(name)
	if name != "" {
		cfg.Profile.Username = name
	}
	fmt.Println()

	// 2. Monthly budget
	fmt.Println("  2. Monthly budget (USD)")
	fmt.Printf("     Current: %.2f\n", cfg.Profile.BudgetUSD)
	fmt.Print("     > ")
	budget, _ := reader.ReadString('\n')
	budget = strings.TrimSpace(budget)
	if budget != "" {
		if d, err := currency.ParseDisplay(budget); err == nil && d > 0 {
			cfg.Profile.BudgetUSD = float64(d)
		} else {
			fmt.Println("     (keeping current value)")
		}
	}
	fmt.Println()

	// 3. Display currency
	fmt.Println("  3. Display currency")
	fmt.Println("     (1) USD [default]")
	fmt.Println("     (2) AZN")
	fmt.Print("     > ")
	choice, _ := reader.ReadString('\n')
	switch strings.TrimSpace(choice) {
	case "2":
		cfg.Appearance.Currency = string(currency.AZN)
	default:
		cfg.Appearance.Currency = string(currency.USD)
	}
	fmt.Println()

	// 4. Theme
	fmt.Println("  4. Color theme")
	fmt.Println("     (1) Dark [default]")
	fmt.Println("     (2) Light")
	fmt.Println("     (3) Terminal (ANSI 16)")
	fmt.Print("     > ")
	themeChoice, _ := reader.ReadString('\n')
	switch strings.TrimSpace(themeChoice) {
	case "2":
		cfg.Appearance.Theme = "light"
	case "3":
		cfg.Appearance.Theme = "terminal"
	default:
		cfg.Appearance.Theme = "dark"
	}

	// Save
	if err := config.Save(cfg); err != nil {
		return fmt.Errorf("saving config: %w", err)
	}

	fmt.Println()
	fmt.Printf("  Saved to %s\n", config.Path())
	fmt.Println("  Run `manat setup` anytime to reconfigure.")
	fmt.Println()

	return nil
}
