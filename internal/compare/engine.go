package compare

import (
	"fmt"

	"github.com/samber/lo"
	"github.com/shopspring/decimal"

	"github.com/kyuyo-go/kyuyo/internal/calculation"
	"github.com/kyuyo-go/kyuyo/internal/domain"
)

// Row is one prefecture's breakdown for the compared salary.
type Row struct {
	Prefecture      domain.Prefecture
	HealthInsurance decimal.Decimal
	LongTermCare    decimal.Decimal
	TotalDeductions decimal.Decimal
	NetPay          decimal.Decimal
}

// ComparisonSet holds the same salary computed across prefectures.
// Only the health (and care) premium varies by prefecture, so the net
// pay spread isolates the prefecture rate difference.
type ComparisonSet struct {
	Year  int
	Input domain.SalaryInput
	Rows  []Row
}

// Prefectures computes the breakdown for one salary across the given
// prefectures (all 47 when none are given), in JIS code order.
func Prefectures(calc *calculation.DeductionCalculator, input domain.SalaryInput, prefs []domain.Prefecture) (*ComparisonSet, error) {
	if len(prefs) == 0 {
		prefs = domain.AllPrefectures()
	}

	rows := make([]Row, 0, len(prefs))
	for _, p := range prefs {
		in := input
		in.Prefecture = p
		result, err := calc.Compute(in)
		if err != nil {
			return nil, fmt.Errorf("compute for %s: %w", p, err)
		}
		rows = append(rows, Row{
			Prefecture:      p,
			HealthInsurance: result.HealthInsurance,
			LongTermCare:    result.LongTermCare,
			TotalDeductions: result.TotalDeductions(),
			NetPay:          result.NetPay,
		})
	}

	return &ComparisonSet{Year: calc.Table().Year, Input: input, Rows: rows}, nil
}

// CheapestPrefecture returns the row with the highest net pay.
func (cs *ComparisonSet) CheapestPrefecture() Row {
	return lo.MaxBy(cs.Rows, func(a, b Row) bool {
		return a.NetPay.GreaterThan(b.NetPay)
	})
}

// Spread is the net pay difference between the best and worst rows.
func (cs *ComparisonSet) Spread() decimal.Decimal {
	best := lo.MaxBy(cs.Rows, func(a, b Row) bool { return a.NetPay.GreaterThan(b.NetPay) })
	worst := lo.MinBy(cs.Rows, func(a, b Row) bool { return a.NetPay.LessThan(b.NetPay) })
	return best.NetPay.Sub(worst.NetPay)
}
