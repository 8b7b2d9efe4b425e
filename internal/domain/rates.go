package domain

import (
	"github.com/shopspring/decimal"
)

// RateTable holds every statutory rate, band and deduction schedule for
// one tax year. It is loaded once (from the embedded defaults or from a
// YAML file) and never mutated, so concurrent reads need no locking.
type RateTable struct {
	Year int `yaml:"year" json:"year"`

	// HealthBands is the standard remuneration table for health and
	// long-term care insurance (50 grades for 2025).
	HealthBands []RemunerationBand `yaml:"health_bands" json:"health_bands"`
	// PensionBands is the standard remuneration table for employee
	// pension insurance (32 grades, ¥88,000 floor / ¥650,000 ceiling).
	PensionBands []RemunerationBand `yaml:"pension_bands" json:"pension_bands"`

	// Prefectures maps each prefecture to its health insurance rate.
	// Pension, employment and long-term care rates are national.
	Prefectures map[Prefecture]InsuranceRates `yaml:"prefectures" json:"prefectures"`

	CareRate       decimal.Decimal `yaml:"care_rate" json:"care_rate"`
	PensionRate    decimal.Decimal `yaml:"pension_rate" json:"pension_rate"`
	EmploymentRate decimal.Decimal `yaml:"employment_rate" json:"employment_rate"`
	// EmployeeShare is the employee's portion of health, care and
	// pension premiums (statutory 50/50 split).
	EmployeeShare decimal.Decimal `yaml:"employee_share" json:"employee_share"`

	// Brackets is the progressive national income tax schedule.
	Brackets []TaxBracket `yaml:"brackets" json:"brackets"`
	// SurchargeRate is the reconstruction special income tax rate
	// applied to the computed national tax.
	SurchargeRate decimal.Decimal `yaml:"surcharge_rate" json:"surcharge_rate"`

	BasicDeduction     decimal.Decimal `yaml:"basic_deduction" json:"basic_deduction"`
	DependentDeduction decimal.Decimal `yaml:"dependent_deduction" json:"dependent_deduction"`
	// EmploymentDeductionTiers is the salary income deduction schedule.
	EmploymentDeductionTiers []EmploymentDeductionTier `yaml:"employment_deduction_tiers" json:"employment_deduction_tiers"`

	Residence ResidenceTaxRules `yaml:"residence" json:"residence"`
}

// InsuranceRates carries the prefecture-specific premium rates.
type InsuranceRates struct {
	// HealthRate is the combined employer+employee health rate.
	HealthRate decimal.Decimal `yaml:"health_rate" json:"health_rate"`
}

// RemunerationBand is one grade of a standard remuneration table: any
// monthly salary in [Lower, Upper) is treated as Remuneration. A zero
// Upper marks the open-ended top grade; the bottom grade has Lower 0.
type RemunerationBand struct {
	Grade        int             `yaml:"grade" json:"grade"`
	Remuneration decimal.Decimal `yaml:"remuneration" json:"remuneration"`
	Lower        decimal.Decimal `yaml:"lower" json:"lower"`
	Upper        decimal.Decimal `yaml:"upper" json:"upper"`
}

// Contains reports whether a monthly salary falls in this band.
// Lower bounds are inclusive.
func (b RemunerationBand) Contains(monthly decimal.Decimal) bool {
	if monthly.LessThan(b.Lower) {
		return false
	}
	return b.Upper.IsZero() || monthly.LessThan(b.Upper)
}

// TaxBracket is one tier of the national income tax schedule:
// tax = taxable × Rate − Deduction for taxable ≤ Upper. A zero Upper
// marks the unbounded top bracket. Upper bounds are inclusive.
type TaxBracket struct {
	Upper     decimal.Decimal `yaml:"upper" json:"upper"`
	Rate      decimal.Decimal `yaml:"rate" json:"rate"`
	Deduction decimal.Decimal `yaml:"deduction" json:"deduction"`
}

// Contains reports whether a taxable income falls in this bracket.
func (b TaxBracket) Contains(taxable decimal.Decimal) bool {
	return b.Upper.IsZero() || taxable.LessThanOrEqual(b.Upper)
}

// EmploymentDeductionTier is one tier of the salary income deduction
// schedule: deduction = salary × Rate + Offset for salary ≤ Upper.
// A zero Upper marks the flat top tier.
type EmploymentDeductionTier struct {
	Upper  decimal.Decimal `yaml:"upper" json:"upper"`
	Rate   decimal.Decimal `yaml:"rate" json:"rate"`
	Offset decimal.Decimal `yaml:"offset" json:"offset"`
}

// ResidenceTaxRules holds the residence tax parameters. The income levy
// is municipal + prefectural (typically 6% + 4%) on taxable income from
// the prior year; the per-capita levy is a flat amount.
type ResidenceTaxRules struct {
	BasicDeduction     decimal.Decimal `yaml:"basic_deduction" json:"basic_deduction"`
	DependentDeduction decimal.Decimal `yaml:"dependent_deduction" json:"dependent_deduction"`
	MunicipalRate      decimal.Decimal `yaml:"municipal_rate" json:"municipal_rate"`
	PrefecturalRate    decimal.Decimal `yaml:"prefectural_rate" json:"prefectural_rate"`
	PerCapitaLevy      decimal.Decimal `yaml:"per_capita_levy" json:"per_capita_levy"`
	// NonTaxableIncomeBase and NonTaxableIncomePerDependent define the
	// exemption threshold on net income (after the employment income
	// deduction): at or below base + per_dependent × dependents the
	// residence tax is zero.
	NonTaxableIncomeBase         decimal.Decimal `yaml:"non_taxable_income_base" json:"non_taxable_income_base"`
	NonTaxableIncomePerDependent decimal.Decimal `yaml:"non_taxable_income_per_dependent" json:"non_taxable_income_per_dependent"`
}

// IncomeLevyRate is the combined municipal + prefectural rate.
func (r ResidenceTaxRules) IncomeLevyRate() decimal.Decimal {
	return r.MunicipalRate.Add(r.PrefecturalRate)
}
