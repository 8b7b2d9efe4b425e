package calculation

import (
	"github.com/shopspring/decimal"

	"github.com/kyuyo-go/kyuyo/internal/domain"
)

// EstimateYearEndAdjustment reconciles the exact annual national tax
// liability (income tax plus reconstruction surcharge) against the
// amount withheld during the year. A positive balance means additional
// tax is due; a negative balance is the refund.
func (dc *DeductionCalculator) EstimateYearEndAdjustment(input domain.SalaryInput, withheld decimal.Decimal) (*domain.YearEndAdjustment, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}
	if withheld.IsNegative() {
		return nil, &domain.InvalidInputError{Field: "withheld", Reason: "cannot be negative"}
	}

	monthly := input.MonthlyGross()
	health, err := dc.insurance.HealthPremium(monthly, input.Prefecture)
	if err != nil {
		return nil, err
	}
	annualInsurance := health.
		Add(dc.insurance.CarePremium(monthly, input.AgeBand)).
		Add(dc.insurance.PensionPremium(monthly, input.AgeBand)).
		Add(dc.insurance.EmploymentPremium(monthly)).
		Mul(decimal.NewFromInt(12))

	tax, surcharge := dc.incomeTax.Calculate(input.AnnualGross(), annualInsurance, input.Dependents)
	liability := tax.Add(surcharge)

	return &domain.YearEndAdjustment{
		AnnualLiability: liability,
		Withheld:        withheld,
		Balance:         liability.Sub(withheld),
	}, nil
}
