package calculation

import (
	"github.com/shopspring/decimal"

	"github.com/kyuyo-go/kyuyo/internal/domain"
)

// InsuranceCalculator computes the employee's share of each monthly
// social insurance premium from a rate table.
type InsuranceCalculator struct {
	table *domain.RateTable
}

// NewInsuranceCalculator creates an insurance calculator over a table.
func NewInsuranceCalculator(table *domain.RateTable) *InsuranceCalculator {
	return &InsuranceCalculator{table: table}
}

// HealthPremium is the monthly health insurance premium: the health
// band's standard remuneration times the prefecture rate, split 50/50,
// employee share rounded by the 50-sen rule.
func (ic *InsuranceCalculator) HealthPremium(monthly decimal.Decimal, prefecture domain.Prefecture) (decimal.Decimal, error) {
	rates, ok := ic.table.Prefectures[prefecture]
	if !ok {
		return decimal.Zero, &domain.InvalidInputError{Field: "prefecture", Reason: "no insurance rates for " + string(prefecture)}
	}
	remuneration := standardRemuneration(ic.table.HealthBands, monthly)
	total := remuneration.Mul(rates.HealthRate)
	return roundEmployeeShare(total.Mul(ic.table.EmployeeShare)), nil
}

// CarePremium is the monthly long-term care premium for category-2
// insured (age band 40-64); zero for every other band. It uses the same
// health band remuneration with the national care rate.
func (ic *InsuranceCalculator) CarePremium(monthly decimal.Decimal, ageBand domain.AgeBand) decimal.Decimal {
	if !ageBand.LongTermCareEligible() {
		return decimal.Zero
	}
	remuneration := standardRemuneration(ic.table.HealthBands, monthly)
	total := remuneration.Mul(ic.table.CareRate)
	return roundEmployeeShare(total.Mul(ic.table.EmployeeShare))
}

// PensionPremium is the monthly employee pension premium. The pension
// band table applies the statutory ceiling and floor before the rate is
// applied. Contributions end at 70.
func (ic *InsuranceCalculator) PensionPremium(monthly decimal.Decimal, ageBand domain.AgeBand) decimal.Decimal {
	if !ageBand.PensionEligible() {
		return decimal.Zero
	}
	remuneration := standardRemuneration(ic.table.PensionBands, monthly)
	total := remuneration.Mul(ic.table.PensionRate)
	return roundEmployeeShare(total.Mul(ic.table.EmployeeShare))
}

// EmploymentPremium is the monthly employment insurance premium. Unlike
// health and pension it is levied on actual pay, not a banded
// remuneration, at the employee rate with 50-sen rounding.
func (ic *InsuranceCalculator) EmploymentPremium(monthly decimal.Decimal) decimal.Decimal {
	return roundEmployeeShare(monthly.Mul(ic.table.EmploymentRate))
}
