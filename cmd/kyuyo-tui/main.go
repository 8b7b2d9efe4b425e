package main

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/kyuyo-go/kyuyo/internal/calculation"
	"github.com/kyuyo-go/kyuyo/internal/config"
	"github.com/kyuyo-go/kyuyo/internal/tui"
)

func main() {
	env, err := config.LoadEnv()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	if env.RatesFile != "" {
		table, err := config.NewRateParser().LoadFromFile(env.RatesFile)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error loading rate table: %v\n", err)
			os.Exit(1)
		}
		calculation.RegisterTable(table)
	}

	calc, err := calculation.NewDeductionCalculatorForYear(env.TaxYear)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	p := tea.NewProgram(tui.NewModel(calc), tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error running TUI: %v\n", err)
		os.Exit(1)
	}
}
