package records

import "time"

const dateLayout = "2006-01-02"

// ValidateDate checks that value is a real calendar date in YYYY-MM-DD form.
// flag names the option in the error message.
func ValidateDate(flag, value string) error {
	if _, err := time.Parse(dateLayout, value); err != nil {
		return &ValidationError{Msg: "--" + flag + " must be YYYY-MM-DD format"}
	}
	return nil
}
