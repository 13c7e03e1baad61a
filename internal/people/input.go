package people

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// Input is a decoded JSON object whose values have not been checked.
type Input map[string]any

// DecodeInput reads exactly one JSON object from r.
// Anything else, including trailing data, is ErrMalformedPayload.
func DecodeInput(r io.Reader) (Input, error) {
	dec := json.NewDecoder(r)
	dec.UseNumber()

	var in Input
	if err := dec.Decode(&in); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedPayload, err)
	}
	if in == nil {
		return nil, fmt.Errorf("%w: null body", ErrMalformedPayload)
	}
	if _, err := dec.Token(); err != io.EOF {
		return nil, fmt.Errorf("%w: trailing data", ErrMalformedPayload)
	}
	return in, nil
}

// Text returns the field as a trimmed string. Missing and null
// fields are empty; other scalars are written the way JSON spells them.
func (in Input) Text(key string) string {
	var s string
	switch v := in[key].(type) {
	case nil:
		return ""
	case string:
		s = v
	case json.Number:
		s = v.String()
	case bool:
		s = strconv.FormatBool(v)
	case float64:
		s = strconv.FormatFloat(v, 'f', -1, 64)
	default:
		s = fmt.Sprint(v)
	}
	return strings.TrimSpace(s)
}

// Value returns the field classified for tri-state parsing.
func (in Input) Value(key string) Value {
	v, ok := in[key]
	if !ok {
		return Absent{}
	}
	return ValueOf(v)
}

// Missing lists the required fields that are empty after trimming.
func (in Input) Missing() []string {
	var missing []string
	for _, field := range RequiredFields {
		if in.Text(field) == "" {
			missing = append(missing, field)
		}
	}
	return missing
}

// NewPerson sanitizes in and validates it. The returned Person has no ID.
func NewPerson(in Input) (Person, error) {
	if missing := in.Missing(); len(missing) > 0 {
		return Person{}, missingFields(missing)
	}

	p := Person{
		FirstName:   in.Text("first_name"),
		LastName:    in.Text("last_name"),
		DateOfBirth: in.Text("date_of_birth"),
		Address:     in.Text("address"),
	}

	if zip := in.Text("zip"); zip != "" {
		if !IsZip(zip) {
			return Person{}, invalidZip()
		}
		p.Zip = &zip
	}

	for _, attr := range Attributes {
		*attr.Field(&p) = ParseTristate(in.Value(attr.Name))
	}
	return p, nil
}

// IsZip reports whether s is exactly five ASCII digits.
func IsZip(s string) bool {
	return len(s) == 5 && IsDigits(s)
}

// IsDigits reports whether s is non-empty and all ASCII digits.
func IsDigits(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}
