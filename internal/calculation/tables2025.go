package calculation

import (
	"sync"

	"github.com/shopspring/decimal"

	"github.com/kyuyo-go/kyuyo/internal/domain"
)

// Embedded reference data for tax year 2025 (Reiwa 7). Health rates are
// the Kyokai Kenpo prefecture rates effective March 2025; pension,
// employment and long-term care rates are national. Sources: MHLW
// standard rate tables and the NTA bracket schedule for 2025.

func band(grade int, remuneration, lower, upper int64) domain.RemunerationBand {
	return domain.RemunerationBand{
		Grade:        grade,
		Remuneration: decimal.NewFromInt(remuneration),
		Lower:        decimal.NewFromInt(lower),
		Upper:        decimal.NewFromInt(upper),
	}
}

// healthBands2025 is the 50-grade standard remuneration table for
// health and long-term care insurance. Upper 0 marks the open top.
func healthBands2025() []domain.RemunerationBand {
	return []domain.RemunerationBand{
		band(1, 58000, 0, 63000),
		band(2, 68000, 63000, 73000),
		band(3, 78000, 73000, 83000),
		band(4, 88000, 83000, 93000),
		band(5, 98000, 93000, 101000),
		band(6, 104000, 101000, 107000),
		band(7, 110000, 107000, 114000),
		band(8, 118000, 114000, 122000),
		band(9, 126000, 122000, 130000),
		band(10, 134000, 130000, 138000),
		band(11, 142000, 138000, 146000),
		band(12, 150000, 146000, 155000),
		band(13, 160000, 155000, 165000),
		band(14, 170000, 165000, 175000),
		band(15, 180000, 175000, 185000),
		band(16, 190000, 185000, 195000),
		band(17, 200000, 195000, 210000),
		band(18, 220000, 210000, 230000),
		band(19, 240000, 230000, 250000),
		band(20, 260000, 250000, 270000),
		band(21, 280000, 270000, 290000),
		band(22, 300000, 290000, 310000),
		band(23, 320000, 310000, 330000),
		band(24, 340000, 330000, 350000),
		band(25, 360000, 350000, 370000),
		band(26, 380000, 370000, 395000),
		band(27, 410000, 395000, 425000),
		band(28, 440000, 425000, 455000),
		band(29, 470000, 455000, 485000),
		band(30, 500000, 485000, 515000),
		band(31, 530000, 515000, 545000),
		band(32, 560000, 545000, 575000),
		band(33, 590000, 575000, 605000),
		band(34, 620000, 605000, 635000),
		band(35, 650000, 635000, 665000),
		band(36, 680000, 665000, 695000),
		band(37, 710000, 695000, 730000),
		band(38, 750000, 730000, 770000),
		band(39, 790000, 770000, 810000),
		band(40, 830000, 810000, 855000),
		band(41, 880000, 855000, 905000),
		band(42, 930000, 905000, 955000),
		band(43, 980000, 955000, 1005000),
		band(44, 1030000, 1005000, 1055000),
		band(45, 1090000, 1055000, 1115000),
		band(46, 1150000, 1115000, 1175000),
		band(47, 1210000, 1175000, 1235000),
		band(48, 1270000, 1235000, 1295000),
		band(49, 1330000, 1295000, 1355000),
		band(50, 1390000, 1355000, 0),
	}
}

// pensionBands2025 is the 32-grade pension table. Its grid matches
// health grades 4-35 with an ¥88,000 floor and a ¥650,000 ceiling, so
// it is derived from the health table rather than written twice.
func pensionBands2025() []domain.RemunerationBand {
	health := healthBands2025()
	bands := make([]domain.RemunerationBand, 0, 32)
	for i, hb := range health[3:35] {
		bands = append(bands, domain.RemunerationBand{
			Grade:        i + 1,
			Remuneration: hb.Remuneration,
			Lower:        hb.Lower,
			Upper:        hb.Upper,
		})
	}
	bands[0].Lower = decimal.Zero
	bands[len(bands)-1].Upper = decimal.Zero
	return bands
}

// prefectureRates2025 maps each prefecture to its 2025 Kyokai Kenpo
// health insurance rate (employer + employee combined).
func prefectureRates2025() map[domain.Prefecture]domain.InsuranceRates {
	rates := map[domain.Prefecture]string{
		domain.Hokkaido:  "0.1031",
		domain.Aomori:    "0.0987",
		domain.Iwate:     "0.0962",
		domain.Miyagi:    "0.1011",
		domain.Akita:     "0.1001",
		domain.Yamagata:  "0.0975",
		domain.Fukushima: "0.0962",
		domain.Ibaraki:   "0.0967",
		domain.Tochigi:   "0.0982",
		domain.Gunma:     "0.0977",
		domain.Saitama:   "0.0976",
		domain.Chiba:     "0.0979",
		domain.Tokyo:     "0.0991",
		domain.Kanagawa:  "0.0992",
		domain.Niigata:   "0.0935",
		domain.Toyama:    "0.0965",
		domain.Ishikawa:  "0.0988",
		domain.Fukui:     "0.0994",
		domain.Yamanashi: "0.0989",
		domain.Nagano:    "0.0955",
		domain.Gifu:      "0.0993",
		domain.Shizuoka:  "0.0985",
		domain.Aichi:     "0.1003",
		domain.Mie:       "0.0999",
		domain.Shiga:     "0.0997",
		domain.Kyoto:     "0.1003",
		domain.Osaka:     "0.1024",
		domain.Hyogo:     "0.1016",
		domain.Nara:      "0.1002",
		domain.Wakayama:  "0.1019",
		domain.Tottori:   "0.0993",
		domain.Shimane:   "0.0994",
		domain.Okayama:   "0.1017",
		domain.Hiroshima: "0.0997",
		domain.Yamaguchi: "0.1036",
		domain.Tokushima: "0.1047",
		domain.Kagawa:    "0.1021",
		domain.Ehime:     "0.1018",
		domain.Kochi:     "0.1013",
		domain.Fukuoka:   "0.1031",
		domain.Saga:      "0.1078",
		domain.Nagasaki:  "0.1041",
		domain.Kumamoto:  "0.1012",
		domain.Oita:      "0.1025",
		domain.Miyazaki:  "0.1009",
		domain.Kagoshima: "0.1031",
		domain.Okinawa:   "0.0944",
	}
	out := make(map[domain.Prefecture]domain.InsuranceRates, len(rates))
	for p, r := range rates {
		out[p] = domain.InsuranceRates{HealthRate: decimal.RequireFromString(r)}
	}
	return out
}

func bracket(upper int64, rate string, deduction int64) domain.TaxBracket {
	return domain.TaxBracket{
		Upper:     decimal.NewFromInt(upper),
		Rate:      decimal.RequireFromString(rate),
		Deduction: decimal.NewFromInt(deduction),
	}
}

// brackets2025 is the national income tax schedule. Upper bounds are
// inclusive; the last bracket is unbounded (Upper 0).
func brackets2025() []domain.TaxBracket {
	return []domain.TaxBracket{
		bracket(1949000, "0.05", 0),
		bracket(3299000, "0.10", 97500),
		bracket(6949000, "0.20", 427500),
		bracket(8999000, "0.23", 636000),
		bracket(17999000, "0.33", 1536000),
		bracket(39999000, "0.40", 2796000),
		bracket(0, "0.45", 4796000),
	}
}

func tier(upper int64, rate string, offset int64) domain.EmploymentDeductionTier {
	return domain.EmploymentDeductionTier{
		Upper:  decimal.NewFromInt(upper),
		Rate:   decimal.RequireFromString(rate),
		Offset: decimal.NewFromInt(offset),
	}
}

// employmentDeductionTiers2025 is the salary income deduction schedule:
// deduction = salary × rate + offset within each tier.
func employmentDeductionTiers2025() []domain.EmploymentDeductionTier {
	return []domain.EmploymentDeductionTier{
		tier(1625000, "0", 550000),
		tier(1800000, "0.40", -100000),
		tier(3600000, "0.30", 80000),
		tier(6600000, "0.20", 440000),
		tier(8500000, "0.10", 1100000),
		tier(0, "0", 1950000),
	}
}

// NewRateTable2025 builds the embedded 2025 rate table.
func NewRateTable2025() *domain.RateTable {
	return &domain.RateTable{
		Year:           2025,
		HealthBands:    healthBands2025(),
		PensionBands:   pensionBands2025(),
		Prefectures:    prefectureRates2025(),
		CareRate:       decimal.RequireFromString("0.0159"),
		PensionRate:    decimal.RequireFromString("0.183"),
		EmploymentRate: decimal.RequireFromString("0.0055"),
		EmployeeShare:  decimal.RequireFromString("0.5"),
		Brackets:       brackets2025(),
		SurchargeRate:  decimal.RequireFromString("0.021"),

		BasicDeduction:           decimal.NewFromInt(480000),
		DependentDeduction:       decimal.NewFromInt(380000),
		EmploymentDeductionTiers: employmentDeductionTiers2025(),

		Residence: domain.ResidenceTaxRules{
			BasicDeduction:               decimal.NewFromInt(430000),
			DependentDeduction:           decimal.NewFromInt(330000),
			MunicipalRate:                decimal.RequireFromString("0.06"),
			PrefecturalRate:              decimal.RequireFromString("0.04"),
			PerCapitaLevy:                decimal.NewFromInt(5000),
			NonTaxableIncomeBase:         decimal.NewFromInt(450000),
			NonTaxableIncomePerDependent: decimal.NewFromInt(350000),
		},
	}
}

var (
	tablesMu sync.RWMutex
	tables   = map[int]*domain.RateTable{}
)

func init() {
	RegisterTable(NewRateTable2025())
}

// RegisterTable adds a rate table to the year registry, replacing any
// table already registered for that year.
func RegisterTable(t *domain.RateTable) {
	tablesMu.Lock()
	defer tablesMu.Unlock()
	tables[t.Year] = t
}

// TableForYear returns the registered table for a tax year, or an
// UnsupportedYearError when none is registered.
func TableForYear(year int) (*domain.RateTable, error) {
	tablesMu.RLock()
	defer tablesMu.RUnlock()
	t, ok := tables[year]
	if !ok {
		return nil, &domain.UnsupportedYearError{Year: year}
	}
	return t, nil
}
