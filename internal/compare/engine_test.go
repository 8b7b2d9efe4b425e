package compare

import (
	"strings"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kyuyo-go/kyuyo/internal/calculation"
	"github.com/kyuyo-go/kyuyo/internal/domain"
)

func compareInput() domain.SalaryInput {
	return domain.SalaryInput{
		GrossAmount: decimal.NewFromInt(5000000),
		PayPeriod:   domain.PayPeriodAnnual,
		Prefecture:  domain.Tokyo,
		AgeBand:     domain.AgeUnder40,
	}
}

func TestPrefectures(t *testing.T) {
	calc := calculation.NewDeductionCalculator2025()

	set, err := Prefectures(calc, compareInput(), []domain.Prefecture{domain.Tokyo, domain.Osaka, domain.Niigata})
	require.NoError(t, err)
	require.Len(t, set.Rows, 3)
	assert.Equal(t, 2025, set.Year)

	// Rows keep the requested order.
	assert.Equal(t, domain.Tokyo, set.Rows[0].Prefecture)
	assert.Equal(t, domain.Osaka, set.Rows[1].Prefecture)
	assert.Equal(t, domain.Niigata, set.Rows[2].Prefecture)

	// Only the health premium varies, so the lowest rate wins.
	best := set.CheapestPrefecture()
	assert.Equal(t, domain.Niigata, best.Prefecture)
	assert.True(t, set.Spread().IsPositive())

	// Osaka's rate is above Tokyo's, so its net pay is lower.
	assert.True(t, set.Rows[1].NetPay.LessThan(set.Rows[0].NetPay))
}

func TestPrefecturesDefaultsToAll47(t *testing.T) {
	calc := calculation.NewDeductionCalculator2025()

	set, err := Prefectures(calc, compareInput(), nil)
	require.NoError(t, err)
	assert.Len(t, set.Rows, 47)
	assert.Equal(t, domain.Hokkaido, set.Rows[0].Prefecture)
	assert.Equal(t, domain.Okinawa, set.Rows[46].Prefecture)
}

func TestPrefecturesInvalidInput(t *testing.T) {
	calc := calculation.NewDeductionCalculator2025()

	input := compareInput()
	input.GrossAmount = decimal.NewFromInt(-1)
	_, err := Prefectures(calc, input, nil)
	var invalid *domain.InvalidInputError
	require.ErrorAs(t, err, &invalid)
}

func TestFormatTable(t *testing.T) {
	calc := calculation.NewDeductionCalculator2025()
	set, err := Prefectures(calc, compareInput(), []domain.Prefecture{domain.Tokyo, domain.Niigata})
	require.NoError(t, err)

	rendered := FormatTable(set)
	assert.Contains(t, rendered, "PREFECTURE COMPARISON")
	assert.Contains(t, rendered, "tokyo")
	assert.Contains(t, rendered, "niigata")
	assert.Contains(t, rendered, "Highest net pay: niigata")
}

func TestFormatCSV(t *testing.T) {
	calc := calculation.NewDeductionCalculator2025()
	set, err := Prefectures(calc, compareInput(), []domain.Prefecture{domain.Tokyo, domain.Osaka})
	require.NoError(t, err)

	data, err := FormatCSV(set)
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(string(data)), "\n")
	require.Len(t, lines, 3)
	assert.Equal(t, "Prefecture,HealthInsurance,LongTermCare,TotalDeductions,NetPay", lines[0])
	assert.True(t, strings.HasPrefix(lines[1], "tokyo,"))
	assert.True(t, strings.HasPrefix(lines[2], "osaka,"))
}
