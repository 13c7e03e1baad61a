package people

import (
	"encoding/json"
	"errors"
	"math"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseTristate(t *testing.T) {
	tests := []struct {
		name  string
		input Value
		want  Tristate
	}{
		{"absent", Absent{}, Unknown},
		{"boolean true", Boolean(true), True},
		{"boolean false", Boolean(false), False},
		{"number 42", Number(42), True},
		{"number 0", Number(0), False},
		{"number fraction", Number(0.5), True},
		{"negative number", Number(-1), True},
		{"yes", Text("yes"), True},
		{"YES padded", Text("  YES "), True},
		{"on", Text("on"), True},
		{"1", Text("1"), True},
		{"true", Text("True"), True},
		{"off", Text("off"), False},
		{"no", Text("No"), False},
		{"0", Text("0"), False},
		{"false", Text("FALSE"), False},
		{"empty", Text(""), Unknown},
		{"null text", Text("null"), Unknown},
		{"none text", Text("None"), Unknown},
		{"maybe", Text("maybe"), Unknown},
		{"2 as text", Text("2"), Unknown},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ParseTristate(tt.input))
		})
	}
}

func TestValueOf(t *testing.T) {
	assert.Equal(t, Absent{}, ValueOf(nil))
	assert.Equal(t, Boolean(true), ValueOf(true))
	assert.Equal(t, Number(42), ValueOf(json.Number("42")))
	assert.Equal(t, Number(1.5), ValueOf(1.5))
	assert.Equal(t, Text("yes"), ValueOf("yes"))
	assert.Equal(t, Absent{}, ValueOf([]any{"yes"}))
	assert.Equal(t, Absent{}, ValueOf(map[string]any{"a": 1}))
	assert.Equal(t, Absent{}, ValueOf(json.Number("1x")))
}

func TestValueOfOutOfRange(t *testing.T) {
	assert.Equal(t, Number(math.Inf(1)), ValueOf(json.Number("1e400")))
	assert.Equal(t, Number(math.Inf(-1)), ValueOf(json.Number("-1e400")))

	in, err := DecodeInput(strings.NewReader(`{"veteran":1e400,"dependents":-1e400}`))
	require.NoError(t, err)
	assert.Equal(t, True, ParseTristate(in.Value("veteran")))
	assert.Equal(t, True, ParseTristate(in.Value("dependents")))
}

func TestTristateJSON(t *testing.T) {
	type doc struct {
		A Tristate `json:"a"`
		B Tristate `json:"b"`
		C Tristate `json:"c"`
	}

	data, err := json.Marshal(doc{A: True, B: False, C: Unknown})
	require.NoError(t, err)
	assert.JSONEq(t, `{"a":true,"b":false,"c":null}`, string(data))

	var got doc
	require.NoError(t, json.Unmarshal([]byte(`{"a":false,"b":null,"c":true}`), &got))
	assert.Equal(t, doc{A: False, B: Unknown, C: True}, got)

	assert.Error(t, json.Unmarshal([]byte(`{"a":"yes"}`), &got))
}

func TestFromStored(t *testing.T) {
	tests := []struct {
		name   string
		stored any
		want   Tristate
	}{
		{"null", nil, Unknown},
		{"one", int64(1), True},
		{"zero", int64(0), False},
		{"seven", int64(7), True},
		{"negative", int64(-1), True},
		{"real half", 0.5, True},
		{"real zero", 0.0, False},
		{"bool", true, True},
		{"text", "yes", True},
		{"text no", "no", True},
		{"empty text", "", False},
		{"blob", []byte{0}, True},
		{"empty blob", []byte{}, False},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, FromStored(tt.stored))
		})
	}
}

func TestStoredRoundTrip(t *testing.T) {
	assert.Nil(t, Unknown.Stored())
	assert.Equal(t, int64(1), True.Stored())
	assert.Equal(t, int64(0), False.Stored())

	for _, ts := range []Tristate{Unknown, True, False} {
		assert.Equal(t, ts, FromStored(ts.Stored()), ts.String())
	}
}

func TestTristateBool(t *testing.T) {
	v, known := True.Bool()
	assert.True(t, v)
	assert.True(t, known)

	v, known = False.Bool()
	assert.False(t, v)
	assert.True(t, known)

	_, known = Unknown.Bool()
	assert.False(t, known)
}

func TestDecodeInput(t *testing.T) {
	tests := []struct {
		name    string
		body    string
		wantErr bool
	}{
		{"object", `{"first_name":"Ada"}`, false},
		{"object with whitespace", "  {\"a\": 1}\n", false},
		{"empty body", ``, true},
		{"not json", `first_name=Ada`, true},
		{"truncated", `{"first_name":`, true},
		{"array", `[1,2]`, true},
		{"string", `"Ada"`, true},
		{"null", `null`, true},
		{"trailing data", `{"a":1} {"b":2}`, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in, err := DecodeInput(strings.NewReader(tt.body))
			if tt.wantErr {
				require.Error(t, err)
				assert.True(t, errors.Is(err, ErrMalformedPayload))
				return
			}
			require.NoError(t, err)
			assert.NotNil(t, in)
		})
	}
}

func TestNewPerson(t *testing.T) {
	t.Run("trims and keeps unknowns", func(t *testing.T) {
		p, err := NewPerson(Input{
			"first_name": "  Ada ",
			"last_name":  "Lovelace",
			"zip":        " 20500 ",
			"veteran":    "yes",
			"dependents": json.Number("0"),
		})
		require.NoError(t, err)
		assert.Equal(t, "Ada", p.FirstName)
		assert.Equal(t, "Lovelace", p.LastName)
		assert.Equal(t, "", p.DateOfBirth)
		assert.Equal(t, "20500", p.ZipCode())
		assert.Equal(t, True, p.Veteran)
		assert.Equal(t, False, p.Dependents)
		assert.Equal(t, Unknown, p.CriminalHistory)
		assert.Zero(t, p.ID)
	})

	t.Run("missing names", func(t *testing.T) {
		_, err := NewPerson(Input{"first_name": "   ", "zip": "20500"})
		var verr *ValidationError
		require.True(t, errors.As(err, &verr))
		assert.Equal(t, "Missing required fields", verr.Message)
		assert.Equal(t, []string{"first_name", "last_name"}, verr.Fields)
		assert.True(t, errors.Is(err, ErrMissingFields))
	})

	t.Run("numbers become text", func(t *testing.T) {
		p, err := NewPerson(Input{"first_name": json.Number("7"), "last_name": true, "zip": json.Number("20500")})
		require.NoError(t, err)
		assert.Equal(t, "7", p.FirstName)
		assert.Equal(t, "true", p.LastName)
		assert.Equal(t, "20500", p.ZipCode())
	})
}

func TestZipValidation(t *testing.T) {
	tests := []struct {
		name    string
		zip     any
		want    *string
		wantErr bool
	}{
		{"five digits", "20500", ptr("20500"), false},
		{"leading zero", "02142", ptr("02142"), false},
		{"four digits", "2050", nil, true},
		{"six digits", "205001", nil, true},
		{"letters", "2050a", nil, true},
		{"non-ascii digits", "２０５００", nil, true},
		{"empty", "", nil, false},
		{"blank", "   ", nil, false},
		{"null", nil, nil, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p, err := NewPerson(Input{"first_name": "Ada", "last_name": "Lovelace", "zip": tt.zip})
			if tt.wantErr {
				require.Error(t, err)
				assert.EqualError(t, err, "ZIP code must be exactly 5 digits")
				assert.True(t, errors.Is(err, ErrInvalidZip))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, p.Zip)
		})
	}

	t.Run("absent", func(t *testing.T) {
		p, err := NewPerson(Input{"first_name": "Ada", "last_name": "Lovelace"})
		require.NoError(t, err)
		assert.Nil(t, p.Zip)
	})
}

func TestAttributesCoverPerson(t *testing.T) {
	var p Person
	seen := map[*Tristate]bool{}
	for _, attr := range Attributes {
		f := attr.Field(&p)
		assert.False(t, seen[f], "attribute %s shares a field", attr.Name)
		seen[f] = true
	}
	assert.Len(t, Attributes, 10)

	data, err := json.Marshal(p)
	require.NoError(t, err)
	var fields map[string]any
	require.NoError(t, json.Unmarshal(data, &fields))
	for _, attr := range Attributes {
		v, ok := fields[attr.Name]
		assert.True(t, ok, "json is missing %s", attr.Name)
		assert.Nil(t, v)
	}
}

func ptr(s string) *string { return &s }
