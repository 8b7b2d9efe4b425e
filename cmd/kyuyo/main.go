package main

import (
	"fmt"
	"os"
	"runtime/debug"
	"strings"

	easy "git.fiblab.net/utils/logrus-easy-formatter"
	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/kyuyo-go/kyuyo/internal/calculation"
	"github.com/kyuyo-go/kyuyo/internal/compare"
	"github.com/kyuyo-go/kyuyo/internal/config"
	"github.com/kyuyo-go/kyuyo/internal/domain"
	"github.com/kyuyo-go/kyuyo/internal/output"
)

var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

var logLevels = map[string]logrus.Level{
	"trace": logrus.TraceLevel,
	"debug": logrus.DebugLevel,
	"info":  logrus.InfoLevel,
	"warn":  logrus.WarnLevel,
	"error": logrus.ErrorLevel,
	"off":   logrus.PanicLevel,
}

var log = logrus.WithField("module", "kyuyo")

func setupLogging(level string) error {
	logrus.SetFormatter(&easy.Formatter{
		TimestampFormat: "2006-01-02 15:04:05.0000",
		LogFormat:       "[%module%] [%time%] [%lvl%] %msg%\n",
	})
	lvl, ok := logLevels[level]
	if !ok {
		return fmt.Errorf("log level must be one of trace, debug, info, warn, error, off; got %q", level)
	}
	logrus.SetLevel(lvl)
	return nil
}

// newCalculator builds a calculator from the environment and flags:
// an explicit rates file wins, otherwise the registry serves the
// requested year (2025 embedded by default).
func newCalculator(ratesFile string, year int) (*calculation.DeductionCalculator, error) {
	if ratesFile != "" {
		log.Debugf("loading rate table from %s", ratesFile)
		table, err := config.NewRateParser().LoadFromFile(ratesFile)
		if err != nil {
			return nil, err
		}
		calculation.RegisterTable(table)
		if year == 0 {
			year = table.Year
		}
	}
	return calculation.NewDeductionCalculatorForYear(year)
}

func parseInput(cmd *cobra.Command) (domain.SalaryInput, error) {
	salary, _ := cmd.Flags().GetString("salary")
	period, _ := cmd.Flags().GetString("period")
	prefecture, _ := cmd.Flags().GetString("prefecture")
	dependents, _ := cmd.Flags().GetInt("dependents")
	ageBand, _ := cmd.Flags().GetString("age-band")
	previousYear, _ := cmd.Flags().GetString("previous-year")

	gross, err := decimal.NewFromString(salary)
	if err != nil {
		return domain.SalaryInput{}, fmt.Errorf("invalid --salary %q: %w", salary, err)
	}
	pp, err := domain.ParsePayPeriod(period)
	if err != nil {
		return domain.SalaryInput{}, err
	}
	pref, err := domain.ParsePrefecture(prefecture)
	if err != nil {
		return domain.SalaryInput{}, err
	}
	band, err := domain.ParseAgeBand(ageBand)
	if err != nil {
		return domain.SalaryInput{}, err
	}

	input := domain.SalaryInput{
		GrossAmount: gross,
		PayPeriod:   pp,
		Prefecture:  pref,
		Dependents:  dependents,
		AgeBand:     band,
	}
	if previousYear != "" {
		prev, err := decimal.NewFromString(previousYear)
		if err != nil {
			return domain.SalaryInput{}, fmt.Errorf("invalid --previous-year %q: %w", previousYear, err)
		}
		input.PreviousYearGross = &prev
	}
	return input, nil
}

func addInputFlags(cmd *cobra.Command) {
	cmd.Flags().String("salary", "", "gross salary in yen (required)")
	cmd.Flags().String("period", "monthly", "pay period: monthly or annual")
	cmd.Flags().String("prefecture", "tokyo", "prefecture (romanized, e.g. tokyo, osaka)")
	cmd.Flags().Int("dependents", 0, "number of dependents")
	cmd.Flags().String("age-band", string(domain.AgeUnder40), "age band: under40, 40-64, 65-69, 70-74")
	cmd.Flags().String("previous-year", "", "previous year's annual gross for residence tax")
	_ = cmd.MarkFlagRequired("salary")
}

func calculateCmd(env config.Env) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "calculate",
		Short: "Compute the deduction breakdown for one salary",
		RunE: func(cmd *cobra.Command, args []string) error {
			input, err := parseInput(cmd)
			if err != nil {
				return err
			}

			ratesFile, _ := cmd.Flags().GetString("rates")
			year, _ := cmd.Flags().GetInt("year")
			if ratesFile == "" {
				ratesFile = env.RatesFile
			}
			calc, err := newCalculator(ratesFile, year)
			if err != nil {
				return err
			}

			result, err := calc.Compute(input)
			if err != nil {
				return err
			}

			format, _ := cmd.Flags().GetString("format")
			formatter, err := output.ForName(format)
			if err != nil {
				return err
			}
			rendered, err := formatter.Format(result)
			if err != nil {
				return err
			}
			_, err = cmd.OutOrStdout().Write(rendered)
			return err
		},
	}
	addInputFlags(cmd)
	cmd.Flags().String("format", "table", "output format: table, json or csv")
	cmd.Flags().String("rates", "", "YAML rate table file (overrides embedded tables)")
	cmd.Flags().Int("year", env.TaxYear, "tax year")
	return cmd
}

func compareCmd(env config.Env) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "compare",
		Short: "Compare the breakdown across prefectures",
		RunE: func(cmd *cobra.Command, args []string) error {
			input, err := parseInput(cmd)
			if err != nil {
				return err
			}

			ratesFile, _ := cmd.Flags().GetString("rates")
			year, _ := cmd.Flags().GetInt("year")
			if ratesFile == "" {
				ratesFile = env.RatesFile
			}
			calc, err := newCalculator(ratesFile, year)
			if err != nil {
				return err
			}

			var prefs []domain.Prefecture
			list, _ := cmd.Flags().GetString("prefectures")
			if list != "" {
				for _, name := range strings.Split(list, ",") {
					p, err := domain.ParsePrefecture(name)
					if err != nil {
						return err
					}
					prefs = append(prefs, p)
				}
			}

			set, err := compare.Prefectures(calc, input, prefs)
			if err != nil {
				return err
			}

			format, _ := cmd.Flags().GetString("format")
			switch format {
			case "", "table":
				fmt.Fprint(cmd.OutOrStdout(), compare.FormatTable(set))
			case "csv":
				rendered, err := compare.FormatCSV(set)
				if err != nil {
					return err
				}
				_, _ = cmd.OutOrStdout().Write(rendered)
			default:
				return fmt.Errorf("unknown output format %q (expected table or csv)", format)
			}
			return nil
		},
	}
	addInputFlags(cmd)
	cmd.Flags().String("prefectures", "", "comma-separated prefectures (default: all 47)")
	cmd.Flags().String("format", "table", "output format: table or csv")
	cmd.Flags().String("rates", "", "YAML rate table file (overrides embedded tables)")
	cmd.Flags().Int("year", env.TaxYear, "tax year")
	return cmd
}

func versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(os.Stdout, "kyuyo %s (commit %s, built %s)\n", version, commit, date)
			if bi, ok := debug.ReadBuildInfo(); ok && bi != nil {
				fmt.Fprintln(os.Stdout, bi.Main.Path)
			}
		},
	}
}

func main() {
	env, err := config.LoadEnv()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	if err := setupLogging(env.LogLevel); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	rootCmd := &cobra.Command{
		Use:   "kyuyo",
		Short: "Japanese payroll deduction calculator",
		Long:  "Computes social insurance premiums, national income tax with the reconstruction surcharge, residence tax and net pay from gross salary.",
	}
	rootCmd.AddCommand(calculateCmd(env), compareCmd(env), versionCmd())

	if err := rootCmd.Execute(); err != nil {
		log.Errorf("%v", err)
		os.Exit(1)
	}
}
