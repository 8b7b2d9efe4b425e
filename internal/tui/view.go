package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/kyuyo-go/kyuyo/internal/output"
)

// View implements tea.Model.
func (m Model) View() string {
	var sb strings.Builder

	sb.WriteString(titleStyle.Render(fmt.Sprintf("kyuyo · payroll deductions (%d)", m.calc.Table().Year)))
	sb.WriteString("\n\n")

	sb.WriteString(fmt.Sprintf("Salary (%s): %s\n", m.payPeriod(), m.salaryInput.View()))
	sb.WriteString(fmt.Sprintf("Prefecture:  < %s >    Age band: ^ %s v    Dependents: %d\n",
		m.prefecture(), m.ageBand(), m.dependents))
	sb.WriteString("\n")

	if m.err != nil {
		sb.WriteString(errStyle.Render(m.err.Error()))
		sb.WriteString("\n")
	} else if m.result != nil {
		sb.WriteString(panelStyle.Render(m.breakdownPanel()))
		sb.WriteString("\n")
	}

	sb.WriteString("\n")
	sb.WriteString(helpStyle.Render("enter compute · ←/→ prefecture · ↑/↓ age band · +/- dependents · tab period · esc quit"))
	sb.WriteString("\n")

	return sb.String()
}

func (m Model) breakdownPanel() string {
	r := m.result
	lines := []string{
		row("Gross", output.FormatYen(r.Gross)),
		row("Health insurance", output.FormatYen(r.HealthInsurance)),
	}
	if r.LongTermCare.IsPositive() {
		lines = append(lines, row("Long-term care", output.FormatYen(r.LongTermCare)))
	}
	lines = append(lines,
		row("Pension insurance", output.FormatYen(r.PensionInsurance)),
		row("Employment insurance", output.FormatYen(r.EmploymentInsurance)),
		row("National income tax", output.FormatYen(r.NationalIncomeTax)),
		row("Reconstruction surcharge", output.FormatYen(r.ReconstructionSurcharge)),
		row("Residence tax", output.FormatYen(r.ResidenceTax)),
		labelStyle.Render("Net pay")+netStyle.Render(valueStyle.Render(output.FormatYen(r.NetPay))),
	)
	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

func row(label, value string) string {
	return labelStyle.Render(label) + valueStyle.Render(value)
}
