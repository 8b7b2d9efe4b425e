package config

import (
	"fmt"
	"os"

	"github.com/samber/lo"
	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"

	"github.com/kyuyo-go/kyuyo/internal/domain"
)

// RateParser loads and validates external rate tables. Updating tables
// for a new tax year is a data-maintenance concern: the calculator only
// consumes what the parser hands it.
type RateParser struct{}

// NewRateParser creates a new rate table parser.
func NewRateParser() *RateParser {
	return &RateParser{}
}

// LoadFromFile loads a rate table from a YAML file and validates it
// eagerly. A table that fails validation is never returned.
func (rp *RateParser) LoadFromFile(filename string) (*domain.RateTable, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to read file %s: %w", filename, err)
	}

	var table domain.RateTable
	if err := yaml.Unmarshal(data, &table); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}

	if err := rp.ValidateRateTable(&table); err != nil {
		return nil, fmt.Errorf("rate table validation failed: %w", err)
	}

	return &table, nil
}

// ValidateRateTable checks the structural invariants of a rate table:
// complete prefecture coverage, contiguous monotone band grids, and a
// contiguous progressive bracket schedule with an unbounded tail.
func (rp *RateParser) ValidateRateTable(table *domain.RateTable) error {
	if table.Year <= 0 {
		return &domain.ConfigurationError{Detail: "year is required"}
	}

	if err := validateBands("health_bands", table.HealthBands); err != nil {
		return err
	}
	if err := validateBands("pension_bands", table.PensionBands); err != nil {
		return err
	}

	missing := lo.Filter(domain.AllPrefectures(), func(p domain.Prefecture, _ int) bool {
		_, ok := table.Prefectures[p]
		return !ok
	})
	if len(missing) > 0 {
		return &domain.ConfigurationError{Detail: fmt.Sprintf("missing insurance rates for %d prefectures (first: %s)", len(missing), missing[0])}
	}
	for p, rates := range table.Prefectures {
		if !p.Valid() {
			return &domain.ConfigurationError{Detail: "unknown prefecture: " + string(p)}
		}
		if !rates.HealthRate.IsPositive() {
			return &domain.ConfigurationError{Detail: "health rate must be positive for " + string(p)}
		}
	}

	if table.CareRate.IsNegative() || table.PensionRate.IsNegative() || table.EmploymentRate.IsNegative() {
		return &domain.ConfigurationError{Detail: "national insurance rates cannot be negative"}
	}
	if !table.EmployeeShare.IsPositive() || table.EmployeeShare.GreaterThan(decimal.NewFromInt(1)) {
		return &domain.ConfigurationError{Detail: "employee share must be in (0, 1]"}
	}

	if err := validateBrackets(table.Brackets); err != nil {
		return err
	}
	if table.SurchargeRate.IsNegative() {
		return &domain.ConfigurationError{Detail: "surcharge rate cannot be negative"}
	}

	if table.BasicDeduction.IsNegative() || table.DependentDeduction.IsNegative() {
		return &domain.ConfigurationError{Detail: "deductions cannot be negative"}
	}
	if err := validateTiers(table.EmploymentDeductionTiers); err != nil {
		return err
	}

	return validateResidence(table.Residence)
}

func validateBands(name string, bands []domain.RemunerationBand) error {
	if len(bands) == 0 {
		return &domain.ConfigurationError{Detail: name + " is empty"}
	}
	if !bands[0].Lower.IsZero() {
		return &domain.ConfigurationError{Detail: name + ": first band must start at 0"}
	}
	if !bands[len(bands)-1].Upper.IsZero() {
		return &domain.ConfigurationError{Detail: name + ": last band must be open-ended"}
	}
	for i, b := range bands {
		if !b.Remuneration.IsPositive() {
			return &domain.ConfigurationError{Detail: fmt.Sprintf("%s: grade %d remuneration must be positive", name, b.Grade)}
		}
		if i == 0 {
			continue
		}
		prev := bands[i-1]
		if !b.Lower.Equal(prev.Upper) {
			return &domain.ConfigurationError{Detail: fmt.Sprintf("%s: gap between grade %d and %d", name, prev.Grade, b.Grade)}
		}
		if b.Remuneration.LessThanOrEqual(prev.Remuneration) {
			return &domain.ConfigurationError{Detail: fmt.Sprintf("%s: remuneration not increasing at grade %d", name, b.Grade)}
		}
	}
	return nil
}

func validateBrackets(brackets []domain.TaxBracket) error {
	if len(brackets) == 0 {
		return &domain.ConfigurationError{Detail: "brackets are empty"}
	}
	if !brackets[len(brackets)-1].Upper.IsZero() {
		return &domain.ConfigurationError{Detail: "last bracket must be unbounded"}
	}
	for i, b := range brackets {
		if b.Rate.IsNegative() || b.Deduction.IsNegative() {
			return &domain.ConfigurationError{Detail: fmt.Sprintf("bracket %d: rate and deduction cannot be negative", i)}
		}
		if i == 0 {
			continue
		}
		prev := brackets[i-1]
		if prev.Upper.IsZero() {
			return &domain.ConfigurationError{Detail: "only the last bracket may be unbounded"}
		}
		if !b.Upper.IsZero() && b.Upper.LessThanOrEqual(prev.Upper) {
			return &domain.ConfigurationError{Detail: fmt.Sprintf("bracket %d: upper bound not increasing", i)}
		}
		if b.Rate.LessThan(prev.Rate) {
			return &domain.ConfigurationError{Detail: fmt.Sprintf("bracket %d: marginal rate decreases", i)}
		}
	}
	return nil
}

func validateTiers(tiers []domain.EmploymentDeductionTier) error {
	if len(tiers) == 0 {
		return &domain.ConfigurationError{Detail: "employment deduction tiers are empty"}
	}
	if !tiers[len(tiers)-1].Upper.IsZero() {
		return &domain.ConfigurationError{Detail: "last employment deduction tier must be unbounded"}
	}
	for i := 1; i < len(tiers); i++ {
		if tiers[i-1].Upper.IsZero() {
			return &domain.ConfigurationError{Detail: "only the last employment deduction tier may be unbounded"}
		}
		if !tiers[i].Upper.IsZero() && tiers[i].Upper.LessThanOrEqual(tiers[i-1].Upper) {
			return &domain.ConfigurationError{Detail: fmt.Sprintf("employment deduction tier %d: upper bound not increasing", i)}
		}
	}
	return nil
}

func validateResidence(rules domain.ResidenceTaxRules) error {
	if rules.MunicipalRate.IsNegative() || rules.PrefecturalRate.IsNegative() {
		return &domain.ConfigurationError{Detail: "residence tax rates cannot be negative"}
	}
	if rules.PerCapitaLevy.IsNegative() {
		return &domain.ConfigurationError{Detail: "per-capita levy cannot be negative"}
	}
	if rules.BasicDeduction.IsNegative() || rules.DependentDeduction.IsNegative() {
		return &domain.ConfigurationError{Detail: "residence deductions cannot be negative"}
	}
	if rules.NonTaxableIncomeBase.IsNegative() || rules.NonTaxableIncomePerDependent.IsNegative() {
		return &domain.ConfigurationError{Detail: "non-taxable thresholds cannot be negative"}
	}
	return nil
}
