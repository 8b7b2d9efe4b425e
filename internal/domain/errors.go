package domain

import "fmt"

// InvalidInputError reports a malformed SalaryInput field. It is always
// raised before any calculation runs.
type InvalidInputError struct {
	Field  string
	Reason string
}

func (e *InvalidInputError) Error() string {
	return fmt.Sprintf("invalid input: %s: %s", e.Field, e.Reason)
}

// UnsupportedYearError reports that no rate table is registered for the
// requested tax year.
type UnsupportedYearError struct {
	Year int
}

func (e *UnsupportedYearError) Error() string {
	return fmt.Sprintf("no rate table for tax year %d", e.Year)
}

// ConfigurationError reports a malformed or incomplete rate table
// supplied by an external data source.
type ConfigurationError struct {
	Detail string
}

func (e *ConfigurationError) Error() string {
	return fmt.Sprintf("rate table configuration: %s", e.Detail)
}
