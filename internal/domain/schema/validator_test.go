package schema

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/syntropysoft/praetorian-go/internal/domain"
)

func intPtr(v int) *int             { return &v }
func floatPtr(v float64) *float64   { return &v }
func boolPtr(v bool) *bool          { return &v }

func codes(findings []domain.Finding) []string {
	out := make([]string, len(findings))
	for i, f := range findings {
		out[i] = f.Code
	}
	return out
}

func TestValidate_TypeMismatch(t *testing.T) {
	findings := Validate(42, &domain.Schema{Type: "string"}, "port")

	require.Len(t, findings, 1)
	assert.Equal(t, domain.CodeInvalidType, findings[0].Code)
	assert.Equal(t, "port", findings[0].Path)
}

func TestValidate_NullOnlyMatchesNullType(t *testing.T) {
	assert.Empty(t, Validate(nil, &domain.Schema{Type: "null"}, "x"))

	findings := Validate(nil, &domain.Schema{Type: "string"}, "x")
	require.Len(t, findings, 1)
	assert.Equal(t, domain.CodeInvalidType, findings[0].Code)
}

func TestValidate_IntegerAndNumber(t *testing.T) {
	assert.Empty(t, Validate(5, &domain.Schema{Type: "integer"}, "x"))
	assert.Empty(t, Validate(5, &domain.Schema{Type: "number"}, "x"))
	assert.Empty(t, Validate(5.5, &domain.Schema{Type: "number"}, "x"))

	// JSON decoding yields float64 even for whole numbers.
	assert.Empty(t, Validate(float64(5), &domain.Schema{Type: "integer"}, "x"))

	findings := Validate(5.5, &domain.Schema{Type: "integer"}, "x")
	require.Len(t, findings, 1)
	assert.Equal(t, domain.CodeInvalidType, findings[0].Code)
}

func TestValidate_ChecksDoNotShortCircuit(t *testing.T) {
	s := &domain.Schema{
		Type:      "string",
		Pattern:   "^[a-z]+$",
		MinLength: intPtr(10),
	}

	findings := Validate("A1", s, "name")
	assert.ElementsMatch(t, []string{domain.CodePatternMismatch, domain.CodeMinLengthError}, codes(findings),
		"a single pass must surface every violation at the path")
}

func TestValidate_Formats(t *testing.T) {
	cases := []struct {
		format string
		good   string
		bad    string
	}{
		{"email", "ops@example.com", "not-an-email"},
		{"uri", "https://example.com/x", "example.com"},
		{"date-time", "2026-08-26T10:00:00Z", "2026-08-26"},
		{"date", "2026-08-26", "26/08/2026"},
		{"time", "10:15:00", "10:15"},
		{"uuid", "123e4567-e89b-12d3-a456-426614174000", "123e4567"},
		{"hostname", "db.internal.example.com", "-bad-.com"},
		{"ipv4", "192.168.1.10", "256.1.1.1"},
		{"ipv6", "2001:db8::1", "2001:::db8"},
	}

	for _, tc := range cases {
		t.Run(tc.format, func(t *testing.T) {
			s := &domain.Schema{Type: "string", Format: tc.format}
			assert.Empty(t, Validate(tc.good, s, "v"), "good value %q", tc.good)

			findings := Validate(tc.bad, s, "v")
			require.Len(t, findings, 1, "bad value %q", tc.bad)
			assert.Equal(t, domain.CodeInvalidFormat, findings[0].Code)
		})
	}
}

func TestValidate_UnsupportedFormat(t *testing.T) {
	findings := Validate("x", &domain.Schema{Format: "zip-code"}, "v")

	require.Len(t, findings, 1)
	assert.Equal(t, domain.CodeUnsupportedFormat, findings[0].Code, "schema typos must not be silently ignored")
}

func TestValidate_InvalidPatternDegrades(t *testing.T) {
	findings := Validate("x", &domain.Schema{Pattern: "(unclosed"}, "v")

	require.Len(t, findings, 1)
	assert.Equal(t, domain.CodeInvalidPattern, findings[0].Code)
}

func TestValidate_RangeOnlyFiresForNumbers(t *testing.T) {
	s := &domain.Schema{Type: "number", Minimum: floatPtr(1), Maximum: floatPtr(10)}

	assert.Empty(t, Validate(5, s, "v"))

	low := Validate(0, s, "v")
	require.Len(t, low, 1)
	assert.Equal(t, domain.CodeMinimumError, low[0].Code)

	high := Validate(11, s, "v")
	require.Len(t, high, 1)
	assert.Equal(t, domain.CodeMaximumError, high[0].Code)

	// Wrong runtime type: the type checker reports, range stays silent.
	findings := Validate("nope", s, "v")
	assert.Equal(t, []string{domain.CodeInvalidType}, codes(findings))
}

func TestValidate_Enum(t *testing.T) {
	s := &domain.Schema{Enum: []any{"dev", "staging", "prod"}}

	assert.Empty(t, Validate("prod", s, "env"))

	findings := Validate("qa", s, "env")
	require.Len(t, findings, 1)
	assert.Equal(t, domain.CodeInvalidEnum, findings[0].Code)
	assert.Contains(t, findings[0].Message, "dev")
	assert.Contains(t, findings[0].Message, "staging")
	assert.Contains(t, findings[0].Message, "prod")
}

func TestValidate_EnumNumericNormalization(t *testing.T) {
	s := &domain.Schema{Enum: []any{1, 2, 3}}
	assert.Empty(t, Validate(float64(2), s, "v"), "YAML int and JSON float64 must agree")
}

func TestValidate_RequiredProperty(t *testing.T) {
	s := &domain.Schema{
		Type:       "object",
		Required:   []string{"name"},
		Properties: map[string]*domain.Schema{"name": {Type: "string"}},
	}

	findings := Validate(map[string]any{}, s, "")
	require.Len(t, findings, 1)
	assert.Equal(t, domain.CodeRequiredPropMissing, findings[0].Code)
	assert.Equal(t, "name", findings[0].Path)
}

func TestValidate_RequiredPropertyNullCountsAsMissing(t *testing.T) {
	s := &domain.Schema{Type: "object", Required: []string{"name"}}

	findings := Validate(map[string]any{"name": nil}, s, "")
	require.NotEmpty(t, findings)
	assert.Equal(t, domain.CodeRequiredPropMissing, findings[0].Code)
}

func TestValidate_AdditionalProperties(t *testing.T) {
	s := &domain.Schema{
		Type:                 "object",
		Properties:           map[string]*domain.Schema{"a": {Type: "integer"}},
		AdditionalProperties: boolPtr(false),
	}

	findings := Validate(map[string]any{"a": 1, "extra": true}, s, "")
	require.Len(t, findings, 1)
	assert.Equal(t, domain.CodeAdditionalPropDenied, findings[0].Code)
	assert.Equal(t, "extra", findings[0].Path)

	// Default (unset) permits extra keys silently.
	open := &domain.Schema{Type: "object", Properties: map[string]*domain.Schema{"a": {Type: "integer"}}}
	assert.Empty(t, Validate(map[string]any{"a": 1, "extra": true}, open, ""))
}

func TestValidate_NestedObjectPaths(t *testing.T) {
	s := &domain.Schema{
		Type: "object",
		Properties: map[string]*domain.Schema{
			"db": {
				Type:       "object",
				Properties: map[string]*domain.Schema{"port": {Type: "integer"}},
			},
		},
	}

	findings := Validate(map[string]any{"db": map[string]any{"port": "not-a-port"}}, s, "")
	require.Len(t, findings, 1)
	assert.Equal(t, "db.port", findings[0].Path)
}

func TestValidate_ArraySingleItemSchema(t *testing.T) {
	s := &domain.Schema{
		Type:  "array",
		Items: &domain.SchemaItems{Single: &domain.Schema{Type: "string"}},
	}

	findings := Validate([]any{"a", 1, "c"}, s, "hosts")
	require.Len(t, findings, 1)
	assert.Equal(t, "hosts[1]", findings[0].Path)
}

func TestValidate_ArrayTupleReusesLastSchema(t *testing.T) {
	s := &domain.Schema{
		Type: "array",
		Items: &domain.SchemaItems{Tuple: []*domain.Schema{
			{Type: "string"},
			{Type: "integer"},
		}},
	}

	// Index 2 and beyond reuse the integer schema.
	assert.Empty(t, Validate([]any{"name", 1, 2, 3}, s, "t"))

	findings := Validate([]any{"name", 1, "oops"}, s, "t")
	require.Len(t, findings, 1)
	assert.Equal(t, "t[2]", findings[0].Path)
}

func TestValueAt(t *testing.T) {
	tree := map[string]any{"a": map[string]any{"b": map[string]any{"c": 7}}}

	v, ok := ValueAt(tree, "a.b.c")
	require.True(t, ok)
	assert.Equal(t, 7, v)

	_, ok = ValueAt(tree, "a.x")
	assert.False(t, ok)

	root, ok := ValueAt(tree, "")
	require.True(t, ok)
	assert.Equal(t, tree, root)
}
