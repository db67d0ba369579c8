// Package parsererror defines the typed errors surfaced by the spreadsheet
// ingestor. Expected reconciliation outcomes (no match, invalid amount) are
// ordinary return values, not errors.
package parsererror

import "fmt"

// InvalidFormatError reports an input file that does not conform to the
// expected bank-export format. This is a batch-level failure: the whole
// file is rejected.
type InvalidFormatError struct {
	FilePath       string
	ExpectedFormat string
	Msg            string
}

func (e *InvalidFormatError) Error() string {
	return fmt.Sprintf("invalid format in file '%s': %s. Expected: %s",
		e.FilePath, e.Msg, e.ExpectedFormat)
}

// ParseError reports a failure to parse a specific field value.
type ParseError struct {
	Parser string
	Field  string
	Value  string
	Err    error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("%s: failed to parse %s='%s': %v",
		e.Parser, e.Field, e.Value, e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// MissingColumnError reports a required column that could not be resolved
// from the spreadsheet header under any of its accepted aliases.
type MissingColumnError struct {
	Column  string
	Aliases []string
}

func (e *MissingColumnError) Error() string {
	return fmt.Sprintf("required column %q not found under aliases %v", e.Column, e.Aliases)
}
