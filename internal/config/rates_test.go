package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/kyuyo-go/kyuyo/internal/calculation"
	"github.com/kyuyo-go/kyuyo/internal/domain"
)

func writeTable(t *testing.T, table *domain.RateTable) string {
	t.Helper()
	data, err := yaml.Marshal(table)
	require.NoError(t, err)
	path := filepath.Join(t.TempDir(), "rates.yaml")
	require.NoError(t, os.WriteFile(path, data, 0o644))
	return path
}

func TestLoadFromFile(t *testing.T) {
	source := calculation.NewRateTable2025()
	source.Year = 2026
	path := writeTable(t, source)

	table, err := NewRateParser().LoadFromFile(path)
	require.NoError(t, err)

	assert.Equal(t, 2026, table.Year)
	assert.Len(t, table.Prefectures, 47)
	assert.Len(t, table.HealthBands, 50)
	assert.True(t, table.Prefectures[domain.Tokyo].HealthRate.Equal(decimal.RequireFromString("0.0991")))
	assert.True(t, table.SurchargeRate.Equal(decimal.RequireFromString("0.021")))
}

func TestLoadFromFileMissing(t *testing.T) {
	_, err := NewRateParser().LoadFromFile(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}

func TestLoadFromFileMalformedYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "rates.yaml")
	require.NoError(t, os.WriteFile(path, []byte("year: [not a year"), 0o644))
	_, err := NewRateParser().LoadFromFile(path)
	assert.Error(t, err)
}

func TestValidateRateTable(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*domain.RateTable)
		detail string
	}{
		{
			name:   "embedded table is valid",
			mutate: func(t *domain.RateTable) {},
		},
		{
			name:   "missing year",
			mutate: func(t *domain.RateTable) { t.Year = 0 },
			detail: "year",
		},
		{
			name:   "empty health bands",
			mutate: func(t *domain.RateTable) { t.HealthBands = nil },
			detail: "health_bands",
		},
		{
			name: "band gap",
			mutate: func(t *domain.RateTable) {
				t.HealthBands[5].Lower = t.HealthBands[5].Lower.Add(decimal.NewFromInt(1))
			},
			detail: "gap",
		},
		{
			name: "closed last band",
			mutate: func(t *domain.RateTable) {
				t.HealthBands[len(t.HealthBands)-1].Upper = decimal.NewFromInt(9999999)
			},
			detail: "open-ended",
		},
		{
			name: "missing prefecture",
			mutate: func(t *domain.RateTable) {
				delete(t.Prefectures, domain.Okinawa)
			},
			detail: "missing insurance rates",
		},
		{
			name: "non-positive health rate",
			mutate: func(t *domain.RateTable) {
				t.Prefectures[domain.Tokyo] = domain.InsuranceRates{HealthRate: decimal.Zero}
			},
			detail: "health rate",
		},
		{
			name:   "empty brackets",
			mutate: func(t *domain.RateTable) { t.Brackets = nil },
			detail: "brackets",
		},
		{
			name: "bounded last bracket",
			mutate: func(t *domain.RateTable) {
				t.Brackets[len(t.Brackets)-1].Upper = decimal.NewFromInt(99999999)
			},
			detail: "unbounded",
		},
		{
			name: "decreasing bracket rate",
			mutate: func(t *domain.RateTable) {
				t.Brackets[2].Rate = decimal.RequireFromString("0.01")
			},
			detail: "rate decreases",
		},
		{
			name: "employee share above one",
			mutate: func(t *domain.RateTable) {
				t.EmployeeShare = decimal.NewFromInt(2)
			},
			detail: "employee share",
		},
		{
			name:   "empty deduction tiers",
			mutate: func(t *domain.RateTable) { t.EmploymentDeductionTiers = nil },
			detail: "tiers",
		},
		{
			name: "negative per-capita levy",
			mutate: func(t *domain.RateTable) {
				t.Residence.PerCapitaLevy = decimal.NewFromInt(-1)
			},
			detail: "per-capita",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			table := calculation.NewRateTable2025()
			tt.mutate(table)
			err := NewRateParser().ValidateRateTable(table)
			if tt.detail == "" {
				assert.NoError(t, err)
				return
			}
			var confErr *domain.ConfigurationError
			require.ErrorAs(t, err, &confErr)
			assert.Contains(t, confErr.Detail, tt.detail)
		})
	}
}

func TestLoadFromFileRejectsInvalidTable(t *testing.T) {
	source := calculation.NewRateTable2025()
	source.Brackets = nil
	path := writeTable(t, source)

	_, err := NewRateParser().LoadFromFile(path)
	var confErr *domain.ConfigurationError
	require.ErrorAs(t, err, &confErr)
}

func unsetenv(t *testing.T, key string) {
	t.Helper()
	old, ok := os.LookupEnv(key)
	require.NoError(t, os.Unsetenv(key))
	t.Cleanup(func() {
		if ok {
			_ = os.Setenv(key, old)
		}
	})
}

func TestLoadEnvDefaults(t *testing.T) {
	unsetenv(t, "KYUYO_RATES_FILE")
	unsetenv(t, "KYUYO_TAX_YEAR")
	unsetenv(t, "KYUYO_LOG_LEVEL")

	env, err := LoadEnv()
	require.NoError(t, err)
	assert.Equal(t, 2025, env.TaxYear)
	assert.Equal(t, "info", env.LogLevel)
	assert.Empty(t, env.RatesFile)
}

func TestLoadEnvOverrides(t *testing.T) {
	t.Setenv("KYUYO_TAX_YEAR", "2026")
	t.Setenv("KYUYO_LOG_LEVEL", "debug")

	env, err := LoadEnv()
	require.NoError(t, err)
	assert.Equal(t, 2026, env.TaxYear)
	assert.Equal(t, "debug", env.LogLevel)
}
