package calculation

import (
	"github.com/shopspring/decimal"

	"github.com/kyuyo-go/kyuyo/internal/domain"
)

// standardRemuneration maps a monthly salary onto its grade's standard
// remuneration. The tables are legally a step function, never a linear
// formula: every salary in a grade's [lower, upper) range is treated as
// the grade's fixed remuneration, caps and floors included (the open
// bottom and top grades are the statutory floor and ceiling).
func standardRemuneration(bands []domain.RemunerationBand, monthly decimal.Decimal) decimal.Decimal {
	for _, b := range bands {
		if b.Contains(monthly) {
			return b.Remuneration
		}
	}
	// Tables validated at load time always cover [0, inf); unreachable
	// with a registered table.
	return decimal.Zero
}
