package calculation

import "github.com/shopspring/decimal"

// Rounding happens at each deduction stage, not only on the final
// result; payroll software parity depends on rounding at the same
// points the statutes do.

var (
	thousand = decimal.NewFromInt(1000)
	hundred  = decimal.NewFromInt(100)
	twelve   = decimal.NewFromInt(12)
	half     = decimal.New(5, -1)
)

// floorYen truncates to the yen.
func floorYen(d decimal.Decimal) decimal.Decimal { return d.Floor() }

// roundEmployeeShare applies the statutory premium rounding for the
// employee's share: a fraction of 50 sen or less truncates, above 50
// sen rounds up.
func roundEmployeeShare(d decimal.Decimal) decimal.Decimal {
	whole := d.Floor()
	if d.Sub(whole).GreaterThan(half) {
		return whole.Add(decimal.NewFromInt(1))
	}
	return whole
}

// floorToThousand truncates taxable income to the next lower ¥1,000.
func floorToThousand(d decimal.Decimal) decimal.Decimal {
	return d.Div(thousand).Floor().Mul(thousand)
}

// floorToHundred truncates a tax amount to the next lower ¥100.
func floorToHundred(d decimal.Decimal) decimal.Decimal {
	return d.Div(hundred).Floor().Mul(hundred)
}

// monthlyPortion converts an annual tax line to its monthly withholding
// amount, truncated to the yen.
func monthlyPortion(annual decimal.Decimal) decimal.Decimal {
	return annual.Div(twelve).Floor()
}

// clampZero floors an intermediate amount at zero; deductions exceeding
// income never produce negative tax.
func clampZero(d decimal.Decimal) decimal.Decimal {
	if d.IsNegative() {
		return decimal.Zero
	}
	return d
}
