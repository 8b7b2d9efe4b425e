package calculation

import (
	"github.com/shopspring/decimal"

	"github.com/kyuyo-go/kyuyo/internal/domain"
)

// ResidenceTaxCalculator computes the annual residence tax: a flat
// per-capita levy plus a proportional levy on taxable income. The
// income basis is the prior year's figures when available (the tax is
// assessed on last year's income); otherwise the current income serves
// as an estimate.
type ResidenceTaxCalculator struct {
	table *domain.RateTable
}

// NewResidenceTaxCalculator creates a residence tax calculator over a table.
func NewResidenceTaxCalculator(table *domain.RateTable) *ResidenceTaxCalculator {
	return &ResidenceTaxCalculator{table: table}
}

// Calculate returns the annual residence tax for an annual gross income
// and the social insurance paid against it. Below the non-taxable
// threshold the tax is exactly zero, per-capita levy included.
func (rc *ResidenceTaxCalculator) Calculate(annualGross, annualInsurance decimal.Decimal, dependents int) decimal.Decimal {
	rules := rc.table.Residence
	deps := decimal.NewFromInt(int64(dependents))

	employmentDeduction := NewIncomeTaxCalculator(rc.table).EmploymentIncomeDeduction(annualGross)
	netIncome := clampZero(annualGross.Sub(employmentDeduction))

	threshold := rules.NonTaxableIncomeBase.Add(rules.NonTaxableIncomePerDependent.Mul(deps))
	if netIncome.LessThanOrEqual(threshold) {
		return decimal.Zero
	}

	deductions := rules.BasicDeduction.
		Add(rules.DependentDeduction.Mul(deps)).
		Add(annualInsurance)
	taxable := floorToThousand(clampZero(netIncome.Sub(deductions)))

	incomeLevy := floorToHundred(taxable.Mul(rules.IncomeLevyRate()))
	return incomeLevy.Add(rules.PerCapitaLevy)
}
