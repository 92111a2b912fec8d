package hob

import "fmt"

// ValidationError reports a malformed observation or package definition.
type ValidationError struct{ Msg string }

func (e *ValidationError) Error() string { return "hob: " + e.Msg }

func validationf(format string, args ...interface{}) *ValidationError {
	return &ValidationError{Msg: fmt.Sprintf(format, args...)}
}

// FormatError reports a structurally malformed package file.
type FormatError struct {
	Line int // one-based line position, 0 when unknown
	Msg  string
}

func (e *FormatError) Error() string {
	if e.Line > 0 {
		return fmt.Sprintf("hob: line %d: %s", e.Line, e.Msg)
	}
	return "hob: " + e.Msg
}

// IntegrityFault reports disagreement between the sample total declared in
// dataset 1 and the total actually decoded. No partial result is returned.
type IntegrityFault struct{ Want, Got int }

func (e *IntegrityFault) Error() string {
	return fmt.Sprintf("hob: dataset 1 declares %d observation readings, file contains %d", e.Want, e.Got)
}
