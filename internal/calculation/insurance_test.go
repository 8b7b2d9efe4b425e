package calculation

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kyuyo-go/kyuyo/internal/domain"
)

func TestHealthPremium(t *testing.T) {
	ic := NewInsuranceCalculator(NewRateTable2025())

	tests := []struct {
		name       string
		monthly    int64
		prefecture domain.Prefecture
		want       int64
	}{
		// 830,000 × 9.67% / 2 = 40,130.5 → 50 sen truncates
		{"ibaraki high earner", 847938, domain.Ibaraki, 40130},
		// 410,000 × 9.91% / 2 = 20,315.5 → 50 sen truncates
		{"tokyo mid band", 416666, domain.Tokyo, 20315},
		// 500,000 × 9.91% / 2 = 24,775 exact
		{"tokyo round band", 500000, domain.Tokyo, 24775},
		// tiny salary still maps to grade 1: 58,000 × 9.91% / 2 = 2,873.9
		{"tokyo grade one", 10000, domain.Tokyo, 2874},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ic.HealthPremium(decimal.NewFromInt(tt.monthly), tt.prefecture)
			require.NoError(t, err)
			assert.True(t, got.Equal(decimal.NewFromInt(tt.want)), "got %s", got)
		})
	}
}

func TestHealthPremiumUnknownPrefecture(t *testing.T) {
	ic := NewInsuranceCalculator(NewRateTable2025())
	_, err := ic.HealthPremium(decimal.NewFromInt(300000), domain.Prefecture("edo"))
	var invalid *domain.InvalidInputError
	require.ErrorAs(t, err, &invalid)
}

func TestCarePremium(t *testing.T) {
	ic := NewInsuranceCalculator(NewRateTable2025())
	monthly := decimal.NewFromInt(416666)

	// 410,000 × 1.59% / 2 = 3,259.5 → 50 sen truncates
	got := ic.CarePremium(monthly, domain.Age40To64)
	assert.True(t, got.Equal(decimal.NewFromInt(3259)), "got %s", got)

	for _, band := range []domain.AgeBand{domain.AgeUnder40, domain.Age65To69, domain.Age70To74} {
		assert.True(t, ic.CarePremium(monthly, band).IsZero(), "band %s", band)
	}
}

func TestPensionPremium(t *testing.T) {
	ic := NewInsuranceCalculator(NewRateTable2025())

	tests := []struct {
		name    string
		monthly int64
		ageBand domain.AgeBand
		want    int64
	}{
		// ceiling applies before the rate: 650,000 × 18.3% / 2
		{"above ceiling", 847938, domain.AgeUnder40, 59475},
		{"mid band", 416666, domain.AgeUnder40, 37515},
		{"round band", 500000, domain.Age40To64, 45750},
		// statutory floor grade: 88,000 × 18.3% / 2 = 8,052
		{"below floor", 50000, domain.AgeUnder40, 8052},
		{"contributions end at 70", 500000, domain.Age70To74, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ic.PensionPremium(decimal.NewFromInt(tt.monthly), tt.ageBand)
			assert.True(t, got.Equal(decimal.NewFromInt(tt.want)), "got %s", got)
		})
	}
}

func TestEmploymentPremium(t *testing.T) {
	ic := NewInsuranceCalculator(NewRateTable2025())

	tests := []struct {
		name    string
		monthly int64
		want    int64
	}{
		// 847,938 × 0.55% = 4,663.659 → rounds up past 50 sen
		{"fraction above half", 847938, 4664},
		// 500,000 × 0.55% = 2,750 exact
		{"exact", 500000, 2750},
		// 416,666 × 0.55% = 2,291.663 → rounds up past 50 sen
		{"mid salary", 416666, 2292},
		// levied on actual pay, not a band: 100 × 0.55% = 0.55 → 1
		{"not banded", 100, 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ic.EmploymentPremium(decimal.NewFromInt(tt.monthly))
			assert.True(t, got.Equal(decimal.NewFromInt(tt.want)), "got %s", got)
		})
	}
}
