package calculation

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestRoundEmployeeShare(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want int64
	}{
		{"exact yen", "100", 100},
		{"50 sen truncates", "100.5", 100},
		{"just above 50 sen rounds up", "100.51", 101},
		{"below 50 sen truncates", "100.49", 100},
		{"zero", "0", 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := roundEmployeeShare(decimal.RequireFromString(tt.in))
			assert.True(t, got.Equal(decimal.NewFromInt(tt.want)), "got %s", got)
		})
	}
}

func TestTruncationHelpers(t *testing.T) {
	assert.True(t, floorToThousand(decimal.NewFromInt(2358536)).Equal(decimal.NewFromInt(2358000)))
	assert.True(t, floorToThousand(decimal.NewFromInt(999)).Equal(decimal.Zero))
	assert.True(t, floorToHundred(decimal.NewFromInt(173099)).Equal(decimal.NewFromInt(173000)))
	assert.True(t, floorYen(decimal.RequireFromString("2904.3")).Equal(decimal.NewFromInt(2904)))
}

func TestMonthlyPortion(t *testing.T) {
	// 245,800 / 12 = 20,483.33... truncates to the yen.
	assert.True(t, monthlyPortion(decimal.NewFromInt(245800)).Equal(decimal.NewFromInt(20483)))
	assert.True(t, monthlyPortion(decimal.NewFromInt(138300)).Equal(decimal.NewFromInt(11525)))
}

func TestClampZero(t *testing.T) {
	assert.True(t, clampZero(decimal.NewFromInt(-5)).IsZero())
	assert.True(t, clampZero(decimal.NewFromInt(5)).Equal(decimal.NewFromInt(5)))
}
