package domain

import (
	"github.com/shopspring/decimal"
)

// PayPeriod identifies whether a salary figure covers one month or one year.
type PayPeriod string

const (
	PayPeriodMonthly PayPeriod = "monthly"
	PayPeriodAnnual  PayPeriod = "annual"
)

// ParsePayPeriod parses a pay period string.
func ParsePayPeriod(s string) (PayPeriod, error) {
	switch PayPeriod(s) {
	case PayPeriodMonthly, PayPeriodAnnual:
		return PayPeriod(s), nil
	}
	return "", &InvalidInputError{Field: "period", Reason: "must be 'monthly' or 'annual'"}
}

// AgeBand is the coarse age classification that drives premium eligibility.
// Long-term care insurance is withheld from payroll only for category-2
// insured (40-64). Employee pension contributions stop at 70.
type AgeBand string

const (
	AgeUnder40 AgeBand = "under40"
	Age40To64  AgeBand = "40-64"
	Age65To69  AgeBand = "65-69"
	Age70To74  AgeBand = "70-74"
)

// ParseAgeBand parses an age band string.
func ParseAgeBand(s string) (AgeBand, error) {
	switch AgeBand(s) {
	case AgeUnder40, Age40To64, Age65To69, Age70To74:
		return AgeBand(s), nil
	}
	return "", &InvalidInputError{Field: "age_band", Reason: "must be one of under40, 40-64, 65-69, 70-74"}
}

// LongTermCareEligible reports whether the long-term care premium is
// withheld from salary for this band.
func (a AgeBand) LongTermCareEligible() bool { return a == Age40To64 }

// PensionEligible reports whether employee pension contributions still apply.
func (a AgeBand) PensionEligible() bool { return a != Age70To74 }

// SalaryInput is the immutable input to a single deduction calculation.
type SalaryInput struct {
	// GrossAmount is the gross salary in yen for the given pay period.
	GrossAmount decimal.Decimal
	PayPeriod   PayPeriod
	Prefecture  Prefecture
	Dependents  int
	AgeBand     AgeBand

	// PreviousYearGross, when set, is the prior year's annual gross used
	// as the residence tax base (residence tax is levied on last year's
	// income). When nil the current income is used as an estimate.
	PreviousYearGross *decimal.Decimal
}

// Validate checks the input eagerly; no calculation runs on invalid input.
func (s SalaryInput) Validate() error {
	if s.GrossAmount.IsNegative() {
		return &InvalidInputError{Field: "gross_amount", Reason: "cannot be negative"}
	}
	if s.PayPeriod != PayPeriodMonthly && s.PayPeriod != PayPeriodAnnual {
		return &InvalidInputError{Field: "period", Reason: "must be 'monthly' or 'annual'"}
	}
	if !s.Prefecture.Valid() {
		return &InvalidInputError{Field: "prefecture", Reason: "unknown prefecture: " + string(s.Prefecture)}
	}
	if s.Dependents < 0 {
		return &InvalidInputError{Field: "dependents", Reason: "cannot be negative"}
	}
	if _, err := ParseAgeBand(string(s.AgeBand)); err != nil {
		return err
	}
	if s.PreviousYearGross != nil && s.PreviousYearGross.IsNegative() {
		return &InvalidInputError{Field: "previous_year_gross", Reason: "cannot be negative"}
	}
	return nil
}

// AnnualGross returns the gross salary normalized to a full year.
func (s SalaryInput) AnnualGross() decimal.Decimal {
	if s.PayPeriod == PayPeriodMonthly {
		return s.GrossAmount.Mul(decimal.NewFromInt(12))
	}
	return s.GrossAmount
}

// MonthlyGross returns the gross salary normalized to one month.
// Annual amounts truncate to the yen.
func (s SalaryInput) MonthlyGross() decimal.Decimal {
	if s.PayPeriod == PayPeriodAnnual {
		return s.GrossAmount.Div(decimal.NewFromInt(12)).Floor()
	}
	return s.GrossAmount
}

// DeductionResult is the per-call breakdown of withheld amounts. All
// figures are yen at the pay period of the originating SalaryInput.
type DeductionResult struct {
	Year       int             `json:"year"`
	PayPeriod  PayPeriod       `json:"pay_period"`
	Prefecture Prefecture      `json:"prefecture"`
	Gross      decimal.Decimal `json:"gross"`

	HealthInsurance         decimal.Decimal `json:"health_insurance"`
	LongTermCare            decimal.Decimal `json:"long_term_care"`
	PensionInsurance        decimal.Decimal `json:"pension_insurance"`
	EmploymentInsurance     decimal.Decimal `json:"employment_insurance"`
	NationalIncomeTax       decimal.Decimal `json:"national_income_tax"`
	ReconstructionSurcharge decimal.Decimal `json:"reconstruction_surcharge"`
	ResidenceTax            decimal.Decimal `json:"residence_tax"`

	NetPay decimal.Decimal `json:"net_pay"`
}

// TotalDeductions sums every withheld line.
func (r DeductionResult) TotalDeductions() decimal.Decimal {
	return r.HealthInsurance.
		Add(r.LongTermCare).
		Add(r.PensionInsurance).
		Add(r.EmploymentInsurance).
		Add(r.NationalIncomeTax).
		Add(r.ReconstructionSurcharge).
		Add(r.ResidenceTax)
}

// SocialInsuranceTotal sums the insurance premium lines only.
func (r DeductionResult) SocialInsuranceTotal() decimal.Decimal {
	return r.HealthInsurance.
		Add(r.LongTermCare).
		Add(r.PensionInsurance).
		Add(r.EmploymentInsurance)
}

// RetentionRate is net pay as a fraction of gross. Zero gross yields zero.
func (r DeductionResult) RetentionRate() decimal.Decimal {
	if r.Gross.IsZero() {
		return decimal.Zero
	}
	return r.NetPay.Div(r.Gross).Round(4)
}

// YearEndAdjustment reconciles the exact annual liability against what
// was actually withheld during the year.
type YearEndAdjustment struct {
	AnnualLiability decimal.Decimal `json:"annual_liability"`
	Withheld        decimal.Decimal `json:"withheld"`
	// Balance is liability minus withheld: positive means additional tax
	// is due, negative means a refund.
	Balance decimal.Decimal `json:"balance"`
}
