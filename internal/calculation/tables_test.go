package calculation

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kyuyo-go/kyuyo/internal/domain"
)

func TestTableForYear(t *testing.T) {
	table, err := TableForYear(2025)
	require.NoError(t, err)
	assert.Equal(t, 2025, table.Year)

	_, err = TableForYear(1999)
	var unsupported *domain.UnsupportedYearError
	require.ErrorAs(t, err, &unsupported)
	assert.Equal(t, 1999, unsupported.Year)
}

func TestRegisterTable(t *testing.T) {
	future := NewRateTable2025()
	future.Year = 2097
	RegisterTable(future)

	calc, err := NewDeductionCalculatorForYear(2097)
	require.NoError(t, err)
	assert.Equal(t, 2097, calc.Table().Year)
}

func TestNewDeductionCalculatorForYearUnsupported(t *testing.T) {
	_, err := NewDeductionCalculatorForYear(1899)
	var unsupported *domain.UnsupportedYearError
	require.ErrorAs(t, err, &unsupported)
}

func TestRateTable2025Shape(t *testing.T) {
	table := NewRateTable2025()

	assert.Len(t, table.HealthBands, 50)
	assert.Len(t, table.PensionBands, 32)
	assert.Len(t, table.Prefectures, 47)
	assert.Len(t, table.Brackets, 7)
	assert.Len(t, table.EmploymentDeductionTiers, 6)

	for _, p := range domain.AllPrefectures() {
		rates, ok := table.Prefectures[p]
		require.True(t, ok, "missing rates for %s", p)
		assert.True(t, rates.HealthRate.IsPositive(), "rate for %s", p)
	}

	// Spot rates against the published 2025 table.
	assert.True(t, table.Prefectures[domain.Tokyo].HealthRate.Equal(decimal.RequireFromString("0.0991")))
	assert.True(t, table.Prefectures[domain.Ibaraki].HealthRate.Equal(decimal.RequireFromString("0.0967")))
	assert.True(t, table.PensionRate.Equal(decimal.RequireFromString("0.183")))
}

func TestRateTable2025BandGridsAreContiguous(t *testing.T) {
	table := NewRateTable2025()

	for _, bands := range [][]domain.RemunerationBand{table.HealthBands, table.PensionBands} {
		assert.True(t, bands[0].Lower.IsZero())
		assert.True(t, bands[len(bands)-1].Upper.IsZero())
		for i := 1; i < len(bands); i++ {
			assert.True(t, bands[i].Lower.Equal(bands[i-1].Upper),
				"gap before grade %d", bands[i].Grade)
			assert.True(t, bands[i].Remuneration.GreaterThan(bands[i-1].Remuneration),
				"remuneration not increasing at grade %d", bands[i].Grade)
		}
	}
}
