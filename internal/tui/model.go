package tui

import (
	"github.com/charmbracelet/bubbles/textinput"

	"github.com/kyuyo-go/kyuyo/internal/calculation"
	"github.com/kyuyo-go/kyuyo/internal/domain"
)

var ageBands = []domain.AgeBand{
	domain.AgeUnder40,
	domain.Age40To64,
	domain.Age65To69,
	domain.Age70To74,
}

// Model holds the interactive calculator state: one salary input and
// the breakdown computed from the current selections.
type Model struct {
	calc *calculation.DeductionCalculator

	salaryInput textinput.Model
	prefectures []domain.Prefecture
	prefIndex   int
	ageIndex    int
	dependents  int
	annual      bool

	result *domain.DeductionResult
	err    error

	width  int
	height int
}

// NewModel creates the TUI model over a calculator.
func NewModel(calc *calculation.DeductionCalculator) Model {
	ti := textinput.New()
	ti.Placeholder = "gross salary in yen"
	ti.CharLimit = 12
	ti.Width = 20
	ti.Focus()

	prefs := domain.AllPrefectures()
	m := Model{
		calc:        calc,
		salaryInput: ti,
		prefectures: prefs,
		prefIndex:   domain.Tokyo.Code() - 1,
	}
	return m
}

func (m Model) prefecture() domain.Prefecture { return m.prefectures[m.prefIndex] }

func (m Model) ageBand() domain.AgeBand { return ageBands[m.ageIndex] }

func (m Model) payPeriod() domain.PayPeriod {
	if m.annual {
		return domain.PayPeriodAnnual
	}
	return domain.PayPeriodMonthly
}
