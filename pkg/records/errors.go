package records

import (
	"fmt"
	"strings"
)

// UsageError reports missing or malformed command input.
type UsageError struct {
	Msg string
}

func (e *UsageError) Error() string { return e.Msg }

func usagef(format string, args ...interface{}) error {
	return &UsageError{Msg: fmt.Sprintf(format, args...)}
}

// ValidationError reports a payload that would be rejected before any call is
// made: required fields without a value, or a malformed date.
type ValidationError struct {
	Missing []string
	Msg     string
}

func (e *ValidationError) Error() string {
	if len(e.Missing) > 0 {
		return fmt.Sprintf("missing required fields: [%s]", strings.Join(e.Missing, ", "))
	}
	return e.Msg
}
