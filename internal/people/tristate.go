package people

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// Tristate is a yes/no attribute that may also be unknown.
// The zero value is Unknown; absent input never becomes False.
type Tristate int8

const (
	Unknown Tristate = iota
	True
	False
)

// Of returns True or False for b.
func Of(b bool) Tristate {
	if b {
		return True
	}
	return False
}

func (t Tristate) String() string {
	switch t {
	case True:
		return "true"
	case False:
		return "false"
	}
	return "unknown"
}

// Bool reports the value and whether it is known.
func (t Tristate) Bool() (value, known bool) {
	return t == True, t != Unknown
}

// MarshalJSON encodes Unknown as null.
func (t Tristate) MarshalJSON() ([]byte, error) {
	switch t {
	case True:
		return []byte("true"), nil
	case False:
		return []byte("false"), nil
	}
	return []byte("null"), nil
}

// UnmarshalJSON accepts null, true and false.
func (t *Tristate) UnmarshalJSON(data []byte) error {
	switch string(bytes.TrimSpace(data)) {
	case "null":
		*t = Unknown
	case "true":
		*t = True
	case "false":
		*t = False
	default:
		return fmt.Errorf("tristate: invalid value %s", data)
	}
	return nil
}

// Stored converts t to the value written to an INTEGER column.
func (t Tristate) Stored() any {
	v, known := t.Bool()
	if !known {
		return nil
	}
	if v {
		return int64(1)
	}
	return int64(0)
}

// FromStored maps a column value as returned by the driver back to a
// Tristate. NULL stays Unknown; any other value maps to its truthiness,
// so numbers are true when nonzero and text or blobs when non-empty.
// Columns written by other programs may hold text or reals.
func FromStored(v any) Tristate {
	switch x := v.(type) {
	case nil:
		return Unknown
	case int64:
		return Of(x != 0)
	case float64:
		return Of(x != 0)
	case bool:
		return Of(x)
	case string:
		return Of(x != "")
	case []byte:
		return Of(len(x) != 0)
	}
	return True
}

// Value is loosely typed input for a tri-state attribute.
// It is one of Absent, Boolean, Number or Text.
type Value interface {
	isValue()
}

// Absent is a missing key, a JSON null, or a value with no usable shape.
type Absent struct{}

type Boolean bool

type Number float64

type Text string

func (Absent) isValue()  {}
func (Boolean) isValue() {}
func (Number) isValue()  {}
func (Text) isValue()    {}

// ValueOf classifies a decoded JSON value.
func ValueOf(v any) Value {
	switch x := v.(type) {
	case bool:
		return Boolean(x)
	case float64:
		return Number(x)
	case int:
		return Number(x)
	case int64:
		return Number(x)
	case json.Number:
		f, err := strconv.ParseFloat(string(x), 64)
		if err != nil && !errors.Is(err, strconv.ErrRange) {
			return Absent{}
		}
		// out of range numbers come back as ±Inf, which are nonzero
		return Number(f)
	case string:
		return Text(x)
	}
	return Absent{}
}

// ParseTristate maps any Value to a Tristate. It never fails:
// unrecognised text degrades to Unknown.
func ParseTristate(v Value) Tristate {
	switch x := v.(type) {
	case Boolean:
		return Of(bool(x))
	case Number:
		return Of(x != 0)
	case Text:
		switch strings.ToLower(strings.TrimSpace(string(x))) {
		case "1", "true", "yes", "on":
			return True
		case "0", "false", "no", "off":
			return False
		}
	}
	return Unknown
}
