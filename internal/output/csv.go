package output

import (
	"bytes"
	"encoding/csv"
	"strconv"

	"github.com/kyuyo-go/kyuyo/internal/domain"
)

// CSVFormatter renders the breakdown as a single CSV record.
type CSVFormatter struct{}

func (CSVFormatter) Name() string { return "csv" }

func (CSVFormatter) Format(result *domain.DeductionResult) ([]byte, error) {
	buf := &bytes.Buffer{}
	w := csv.NewWriter(buf)

	header := []string{
		"Year", "Prefecture", "PayPeriod", "Gross",
		"HealthInsurance", "LongTermCare", "PensionInsurance", "EmploymentInsurance",
		"NationalIncomeTax", "ReconstructionSurcharge", "ResidenceTax",
		"TotalDeductions", "NetPay",
	}
	if err := w.Write(header); err != nil {
		return nil, err
	}

	row := []string{
		strconv.Itoa(result.Year),
		string(result.Prefecture),
		string(result.PayPeriod),
		result.Gross.StringFixed(0),
		result.HealthInsurance.StringFixed(0),
		result.LongTermCare.StringFixed(0),
		result.PensionInsurance.StringFixed(0),
		result.EmploymentInsurance.StringFixed(0),
		result.NationalIncomeTax.StringFixed(0),
		result.ReconstructionSurcharge.StringFixed(0),
		result.ResidenceTax.StringFixed(0),
		result.TotalDeductions().StringFixed(0),
		result.NetPay.StringFixed(0),
	}
	if err := w.Write(row); err != nil {
		return nil, err
	}

	w.Flush()
	return buf.Bytes(), w.Error()
}
