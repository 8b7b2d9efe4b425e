package output

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/kyuyo-go/kyuyo/internal/domain"
)

// Formatter renders a deduction breakdown in one output format.
type Formatter interface {
	Name() string
	Format(result *domain.DeductionResult) ([]byte, error)
}

// ForName resolves a formatter by name (table, json, csv).
func ForName(name string) (Formatter, error) {
	switch strings.ToLower(name) {
	case "", "table":
		return TableFormatter{}, nil
	case "json":
		return JSONFormatter{}, nil
	case "csv":
		return CSVFormatter{}, nil
	}
	return nil, fmt.Errorf("unknown output format %q (expected table, json or csv)", name)
}

// TableFormatter renders a console breakdown table.
type TableFormatter struct{}

func (TableFormatter) Name() string { return "table" }

func (TableFormatter) Format(result *domain.DeductionResult) ([]byte, error) {
	var sb strings.Builder

	sb.WriteString("PAYROLL DEDUCTION BREAKDOWN\n")
	sb.WriteString(strings.Repeat("=", 52) + "\n")
	sb.WriteString(fmt.Sprintf("Tax year:    %d\n", result.Year))
	sb.WriteString(fmt.Sprintf("Prefecture:  %s\n", result.Prefecture))
	sb.WriteString(fmt.Sprintf("Pay period:  %s\n", result.PayPeriod))
	sb.WriteString("\n")

	writeLine(&sb, "Gross salary", result.Gross)
	sb.WriteString(strings.Repeat("-", 52) + "\n")
	writeLine(&sb, "Health insurance", result.HealthInsurance)
	if result.LongTermCare.IsPositive() {
		writeLine(&sb, "Long-term care", result.LongTermCare)
	}
	writeLine(&sb, "Pension insurance", result.PensionInsurance)
	writeLine(&sb, "Employment insurance", result.EmploymentInsurance)
	writeLine(&sb, "National income tax", result.NationalIncomeTax)
	writeLine(&sb, "Reconstruction surcharge", result.ReconstructionSurcharge)
	writeLine(&sb, "Residence tax", result.ResidenceTax)
	sb.WriteString(strings.Repeat("-", 52) + "\n")
	writeLine(&sb, "Total deductions", result.TotalDeductions())
	writeLine(&sb, "Net pay", result.NetPay)
	sb.WriteString(fmt.Sprintf("%-28s %21s%%\n", "Retention rate",
		result.RetentionRate().Mul(decimal.NewFromInt(100)).StringFixed(2)))
	sb.WriteString(strings.Repeat("=", 52) + "\n")

	return []byte(sb.String()), nil
}

func writeLine(sb *strings.Builder, label string, amount decimal.Decimal) {
	sb.WriteString(fmt.Sprintf("%-28s %20s\n", label, FormatYen(amount)))
}

// FormatYen renders a yen amount with thousands separators and a
// currency sign, e.g. ¥1,234,567.
func FormatYen(d decimal.Decimal) string {
	s := d.StringFixed(0)
	neg := strings.HasPrefix(s, "-")
	s = strings.TrimPrefix(s, "-")
	var grouped strings.Builder
	for i, r := range s {
		if i > 0 && (len(s)-i)%3 == 0 {
			grouped.WriteByte(',')
		}
		grouped.WriteRune(r)
	}
	if neg {
		return "-¥" + grouped.String()
	}
	return "¥" + grouped.String()
}
