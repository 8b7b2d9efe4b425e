package output

import (
	"encoding/json"

	"github.com/kyuyo-go/kyuyo/internal/domain"
)

// JSONFormatter renders the breakdown as indented JSON, with the
// derived totals included for downstream tooling.
type JSONFormatter struct{}

func (JSONFormatter) Name() string { return "json" }

func (JSONFormatter) Format(result *domain.DeductionResult) ([]byte, error) {
	payload := struct {
		*domain.DeductionResult
		TotalDeductions string `json:"total_deductions"`
		RetentionRate   string `json:"retention_rate"`
	}{
		DeductionResult: result,
		TotalDeductions: result.TotalDeductions().String(),
		RetentionRate:   result.RetentionRate().String(),
	}
	return json.MarshalIndent(payload, "", "  ")
}
