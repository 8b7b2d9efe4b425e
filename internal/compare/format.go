package compare

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"strings"

	"github.com/kyuyo-go/kyuyo/internal/output"
)

// FormatTable renders the comparison as a console table sorted by the
// order the rows were computed in (JIS code order by default).
func FormatTable(cs *ComparisonSet) string {
	var sb strings.Builder

	sb.WriteString("PREFECTURE COMPARISON\n")
	sb.WriteString(strings.Repeat("=", 76) + "\n")
	sb.WriteString(fmt.Sprintf("Tax year: %d   Gross (%s): %s\n", cs.Year,
		cs.Input.PayPeriod, output.FormatYen(cs.Input.GrossAmount)))
	sb.WriteString("\n")

	sb.WriteString(fmt.Sprintf("%-12s %15s %15s %15s %15s\n",
		"Prefecture", "Health", "Care", "Deductions", "Net pay"))
	sb.WriteString(strings.Repeat("-", 76) + "\n")
	for _, row := range cs.Rows {
		sb.WriteString(fmt.Sprintf("%-12s %15s %15s %15s %15s\n",
			row.Prefecture,
			output.FormatYen(row.HealthInsurance),
			output.FormatYen(row.LongTermCare),
			output.FormatYen(row.TotalDeductions),
			output.FormatYen(row.NetPay)))
	}
	sb.WriteString(strings.Repeat("=", 76) + "\n")

	if len(cs.Rows) > 1 {
		best := cs.CheapestPrefecture()
		sb.WriteString(fmt.Sprintf("\nHighest net pay: %s (%s); spread across rows: %s\n",
			best.Prefecture, output.FormatYen(best.NetPay), output.FormatYen(cs.Spread())))
	}

	return sb.String()
}

// FormatCSV renders the comparison as CSV, one row per prefecture.
func FormatCSV(cs *ComparisonSet) ([]byte, error) {
	buf := &bytes.Buffer{}
	w := csv.NewWriter(buf)

	if err := w.Write([]string{"Prefecture", "HealthInsurance", "LongTermCare", "TotalDeductions", "NetPay"}); err != nil {
		return nil, err
	}
	for _, row := range cs.Rows {
		record := []string{
			string(row.Prefecture),
			row.HealthInsurance.StringFixed(0),
			row.LongTermCare.StringFixed(0),
			row.TotalDeductions.StringFixed(0),
			row.NetPay.StringFixed(0),
		}
		if err := w.Write(record); err != nil {
			return nil, err
		}
	}

	w.Flush()
	return buf.Bytes(), w.Error()
}
