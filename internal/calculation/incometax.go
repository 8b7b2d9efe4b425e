package calculation

import (
	"github.com/shopspring/decimal"

	"github.com/kyuyo-go/kyuyo/internal/domain"
)

// IncomeTaxCalculator computes annual national income tax and the
// reconstruction surcharge from a rate table.
type IncomeTaxCalculator struct {
	table *domain.RateTable
}

// NewIncomeTaxCalculator creates an income tax calculator over a table.
func NewIncomeTaxCalculator(table *domain.RateTable) *IncomeTaxCalculator {
	return &IncomeTaxCalculator{table: table}
}

// EmploymentIncomeDeduction resolves the salary income deduction for an
// annual gross salary from the tiered schedule. The deduction never
// exceeds the salary itself.
func (tc *IncomeTaxCalculator) EmploymentIncomeDeduction(annualGross decimal.Decimal) decimal.Decimal {
	for _, t := range tc.table.EmploymentDeductionTiers {
		if !t.Upper.IsZero() && annualGross.GreaterThan(t.Upper) {
			continue
		}
		deduction := annualGross.Mul(t.Rate).Add(t.Offset)
		return decimal.Min(deduction, annualGross)
	}
	return decimal.Zero
}

// TaxableIncome derives the national-tax taxable income: annual gross
// minus the employment income deduction, basic deduction, dependent
// deductions and annual social insurance, clamped at zero and truncated
// to ¥1,000.
func (tc *IncomeTaxCalculator) TaxableIncome(annualGross, annualInsurance decimal.Decimal, dependents int) decimal.Decimal {
	deductions := tc.EmploymentIncomeDeduction(annualGross).
		Add(tc.table.BasicDeduction).
		Add(tc.table.DependentDeduction.Mul(decimal.NewFromInt(int64(dependents)))).
		Add(annualInsurance)
	return floorToThousand(clampZero(annualGross.Sub(deductions)))
}

// bracketFor locates the bracket containing a taxable income. Upper
// bounds are inclusive: income exactly at a bracket's upper bound is
// taxed at that bracket's rate.
func (tc *IncomeTaxCalculator) bracketFor(taxable decimal.Decimal) domain.TaxBracket {
	for _, b := range tc.table.Brackets {
		if b.Contains(taxable) {
			return b
		}
	}
	return tc.table.Brackets[len(tc.table.Brackets)-1]
}

// Calculate returns the annual national income tax and the
// reconstruction surcharge, each truncated to the yen. The surcharge is
// a fixed percentage of the computed tax; it never feeds back into the
// bracket lookup.
func (tc *IncomeTaxCalculator) Calculate(annualGross, annualInsurance decimal.Decimal, dependents int) (tax, surcharge decimal.Decimal) {
	taxable := tc.TaxableIncome(annualGross, annualInsurance, dependents)
	if taxable.IsZero() {
		return decimal.Zero, decimal.Zero
	}
	b := tc.bracketFor(taxable)
	tax = floorYen(clampZero(taxable.Mul(b.Rate).Sub(b.Deduction)))
	surcharge = floorYen(tax.Mul(tc.table.SurchargeRate))
	return tax, surcharge
}
