package people

import "errors"

var (
	ErrMalformedPayload = errors.New("malformed JSON payload")
	ErrMissingFields    = errors.New("missing required fields")
	ErrInvalidZip       = errors.New("invalid ZIP code")
)

// ValidationError reports input that breaks a field rule.
// Message is safe to show to the client; Fields lists the offending
// fields when the rule is about presence.
type ValidationError struct {
	Message string
	Fields  []string
	err     error
}

func (e *ValidationError) Error() string {
	return e.Message
}

func (e *ValidationError) Unwrap() error {
	return e.err
}

func missingFields(fields []string) *ValidationError {
	return &ValidationError{Message: "Missing required fields", Fields: fields, err: ErrMissingFields}
}

func invalidZip() *ValidationError {
	return &ValidationError{Message: "ZIP code must be exactly 5 digits", err: ErrInvalidZip}
}
