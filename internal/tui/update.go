package tui

import (
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/shopspring/decimal"

	"github.com/kyuyo-go/kyuyo/internal/domain"
)

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "esc":
			return m, tea.Quit
		case "left":
			m.prefIndex = (m.prefIndex + len(m.prefectures) - 1) % len(m.prefectures)
			return m.recompute(), nil
		case "right":
			m.prefIndex = (m.prefIndex + 1) % len(m.prefectures)
			return m.recompute(), nil
		case "up":
			m.ageIndex = (m.ageIndex + len(ageBands) - 1) % len(ageBands)
			return m.recompute(), nil
		case "down":
			m.ageIndex = (m.ageIndex + 1) % len(ageBands)
			return m.recompute(), nil
		case "+":
			m.dependents++
			return m.recompute(), nil
		case "-":
			if m.dependents > 0 {
				m.dependents--
			}
			return m.recompute(), nil
		case "tab":
			m.annual = !m.annual
			return m.recompute(), nil
		case "enter":
			return m.recompute(), nil
		}
	}

	var cmd tea.Cmd
	m.salaryInput, cmd = m.salaryInput.Update(msg)
	return m, cmd
}

// recompute recalculates the breakdown from the current selections,
// leaving the previous result visible while the salary field is empty.
func (m Model) recompute() Model {
	raw := m.salaryInput.Value()
	if raw == "" {
		return m
	}
	gross, err := decimal.NewFromString(raw)
	if err != nil {
		m.err = &domain.InvalidInputError{Field: "gross_amount", Reason: "not a number: " + raw}
		return m
	}

	result, err := m.calc.Compute(domain.SalaryInput{
		GrossAmount: gross,
		PayPeriod:   m.payPeriod(),
		Prefecture:  m.prefecture(),
		Dependents:  m.dependents,
		AgeBand:     m.ageBand(),
	})
	if err != nil {
		m.err = err
		return m
	}
	m.err = nil
	m.result = result
	return m
}
