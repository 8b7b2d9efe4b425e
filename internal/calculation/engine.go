package calculation

import (
	"github.com/shopspring/decimal"

	"github.com/kyuyo-go/kyuyo/internal/domain"
)

// DeductionCalculator runs the full deduction pipeline for one salary:
// standard remuneration lookup, social insurance premiums, taxable
// income, national income tax plus reconstruction surcharge, residence
// tax, and net pay. It is stateless apart from the read-only rate
// table, so a single instance is safe for concurrent use.
type DeductionCalculator struct {
	table     *domain.RateTable
	insurance *InsuranceCalculator
	incomeTax *IncomeTaxCalculator
	residence *ResidenceTaxCalculator
}

// NewDeductionCalculator creates a calculator over a rate table.
func NewDeductionCalculator(table *domain.RateTable) *DeductionCalculator {
	return &DeductionCalculator{
		table:     table,
		insurance: NewInsuranceCalculator(table),
		incomeTax: NewIncomeTaxCalculator(table),
		residence: NewResidenceTaxCalculator(table),
	}
}

// NewDeductionCalculator2025 creates a calculator over the embedded
// 2025 tables.
func NewDeductionCalculator2025() *DeductionCalculator {
	return NewDeductionCalculator(NewRateTable2025())
}

// NewDeductionCalculatorForYear creates a calculator for a registered
// tax year, failing with UnsupportedYearError otherwise.
func NewDeductionCalculatorForYear(year int) (*DeductionCalculator, error) {
	table, err := TableForYear(year)
	if err != nil {
		return nil, err
	}
	return NewDeductionCalculator(table), nil
}

// Table returns the rate table the calculator was built over.
func (dc *DeductionCalculator) Table() *domain.RateTable { return dc.table }

// Compute derives the full deduction breakdown for one salary input.
// All lines are reported at the input's pay period and net pay equals
// gross minus the sum of the lines, to the yen.
func (dc *DeductionCalculator) Compute(input domain.SalaryInput) (*domain.DeductionResult, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	monthly := input.MonthlyGross()

	health, err := dc.insurance.HealthPremium(monthly, input.Prefecture)
	if err != nil {
		return nil, err
	}
	care := dc.insurance.CarePremium(monthly, input.AgeBand)
	pension := dc.insurance.PensionPremium(monthly, input.AgeBand)
	employment := dc.insurance.EmploymentPremium(monthly)

	monthsPerYear := decimal.NewFromInt(12)
	annualInsurance := health.Add(care).Add(pension).Add(employment).Mul(monthsPerYear)

	annualGross := input.AnnualGross()
	tax, surcharge := dc.incomeTax.Calculate(annualGross, annualInsurance, input.Dependents)

	residenceBase := annualGross
	if input.PreviousYearGross != nil {
		residenceBase = *input.PreviousYearGross
	}
	residence := dc.residence.Calculate(residenceBase, annualInsurance, input.Dependents)

	result := &domain.DeductionResult{
		Year:       dc.table.Year,
		PayPeriod:  input.PayPeriod,
		Prefecture: input.Prefecture,
		Gross:      input.GrossAmount,
	}
	if input.PayPeriod == domain.PayPeriodMonthly {
		result.HealthInsurance = health
		result.LongTermCare = care
		result.PensionInsurance = pension
		result.EmploymentInsurance = employment
		result.NationalIncomeTax = monthlyPortion(tax)
		result.ReconstructionSurcharge = monthlyPortion(surcharge)
		result.ResidenceTax = monthlyPortion(residence)
	} else {
		result.HealthInsurance = health.Mul(monthsPerYear)
		result.LongTermCare = care.Mul(monthsPerYear)
		result.PensionInsurance = pension.Mul(monthsPerYear)
		result.EmploymentInsurance = employment.Mul(monthsPerYear)
		result.NationalIncomeTax = tax
		result.ReconstructionSurcharge = surcharge
		result.ResidenceTax = residence
	}
	result.NetPay = input.GrossAmount.Sub(result.TotalDeductions())

	return result, nil
}
