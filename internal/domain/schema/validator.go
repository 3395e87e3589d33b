package schema

import (
	"fmt"
	"math"
	"reflect"
	"regexp"
	"sort"
	"strings"

	"github.com/syntropysoft/praetorian-go/internal/domain"
)

// Validate checks a value against a JSON-Schema-like descriptor and
// returns one finding per violation. All checks run independently
// (never short-circuited) so a single pass surfaces every defect at a
// path. Findings default to error severity; rule-level evaluation may
// reroute them.
//
// The validator is total: malformed schemas (bad regex, unknown
// format) degrade to findings instead of errors.
func Validate(value any, s *domain.Schema, path string) []domain.Finding {
	if s == nil {
		return nil
	}

	var findings []domain.Finding
	findings = append(findings, checkType(value, s, path)...)
	findings = append(findings, checkFormat(value, s, path)...)
	findings = append(findings, checkPattern(value, s, path)...)
	findings = append(findings, checkLength(value, s, path)...)
	findings = append(findings, checkRange(value, s, path)...)
	findings = append(findings, checkEnum(value, s, path)...)

	if obj, ok := value.(map[string]any); ok {
		findings = append(findings, checkObject(obj, s, path)...)
	}
	if arr, ok := value.([]any); ok {
		findings = append(findings, checkArray(arr, s, path)...)
	}

	return findings
}

// checkType verifies the value's runtime type against schema.type.
// nil fails unless the declared type is exactly "null".
func checkType(value any, s *domain.Schema, path string) []domain.Finding {
	if s.Type == "" {
		return nil
	}

	actual := typeName(value)
	ok := false
	switch s.Type {
	case "number":
		ok = actual == "number" || actual == "integer"
	default:
		ok = actual == s.Type
	}
	if ok {
		return nil
	}

	return []domain.Finding{errFinding(domain.CodeInvalidType, path,
		fmt.Sprintf("expected type %q, got %s", s.Type, actual))}
}

// checkFormat applies a built-in format validator. String-only: other
// runtime types are the type checker's problem. An unrecognized format
// name is a schema authoring defect and is reported, not ignored.
func checkFormat(value any, s *domain.Schema, path string) []domain.Finding {
	if s.Format == "" {
		return nil
	}
	str, ok := value.(string)
	if !ok {
		return nil
	}

	re, known := formatPatterns[s.Format]
	if !known {
		return []domain.Finding{errFinding(domain.CodeUnsupportedFormat, path,
			fmt.Sprintf("unsupported format %q", s.Format))}
	}
	if !re.MatchString(str) {
		return []domain.Finding{errFinding(domain.CodeInvalidFormat, path,
			fmt.Sprintf("value %q does not match format %q", str, s.Format))}
	}
	return nil
}

// checkPattern compiles schema.pattern fresh per call. An invalid
// regex degrades to a finding so one bad schema never aborts the run.
func checkPattern(value any, s *domain.Schema, path string) []domain.Finding {
	if s.Pattern == "" {
		return nil
	}
	str, ok := value.(string)
	if !ok {
		return nil
	}

	re, err := regexp.Compile(s.Pattern)
	if err != nil {
		return []domain.Finding{errFinding(domain.CodeInvalidPattern, path,
			fmt.Sprintf("invalid pattern %q: %v", s.Pattern, err))}
	}
	if !re.MatchString(str) {
		return []domain.Finding{errFinding(domain.CodePatternMismatch, path,
			fmt.Sprintf("value %q does not match pattern %q", str, s.Pattern))}
	}
	return nil
}

func checkLength(value any, s *domain.Schema, path string) []domain.Finding {
	str, ok := value.(string)
	if !ok {
		return nil
	}

	var findings []domain.Finding
	n := len([]rune(str))
	if s.MinLength != nil && n < *s.MinLength {
		findings = append(findings, errFinding(domain.CodeMinLengthError, path,
			fmt.Sprintf("length %d is below minimum %d", n, *s.MinLength)))
	}
	if s.MaxLength != nil && n > *s.MaxLength {
		findings = append(findings, errFinding(domain.CodeMaxLengthError, path,
			fmt.Sprintf("length %d exceeds maximum %d", n, *s.MaxLength)))
	}
	return findings
}

func checkRange(value any, s *domain.Schema, path string) []domain.Finding {
	num, ok := numericValue(value)
	if !ok {
		return nil
	}

	var findings []domain.Finding
	if s.Minimum != nil && num < *s.Minimum {
		findings = append(findings, errFinding(domain.CodeMinimumError, path,
			fmt.Sprintf("value %v is below minimum %v", num, *s.Minimum)))
	}
	if s.Maximum != nil && num > *s.Maximum {
		findings = append(findings, errFinding(domain.CodeMaximumError, path,
			fmt.Sprintf("value %v exceeds maximum %v", num, *s.Maximum)))
	}
	return findings
}

// checkEnum tests strict membership against schema.enum. Numbers are
// normalized before comparison so YAML's int and JSON's float64 agree.
func checkEnum(value any, s *domain.Schema, path string) []domain.Finding {
	if len(s.Enum) == 0 {
		return nil
	}

	for _, allowed := range s.Enum {
		if strictEqual(value, allowed) {
			return nil
		}
	}

	return []domain.Finding{errFinding(domain.CodeInvalidEnum, path,
		fmt.Sprintf("value %v is not one of the allowed values %v", value, s.Enum))}
}

// checkObject enforces required properties and additionalProperties,
// then recurses into each declared property that is present.
func checkObject(obj map[string]any, s *domain.Schema, path string) []domain.Finding {
	var findings []domain.Finding

	for _, name := range s.Required {
		v, present := obj[name]
		if !present || v == nil {
			findings = append(findings, errFinding(domain.CodeRequiredPropMissing, childPath(path, name),
				fmt.Sprintf("required property %q is missing", name)))
		}
	}

	if s.AdditionalProperties != nil && !*s.AdditionalProperties {
		for _, name := range sortedObjKeys(obj) {
			if _, declared := s.Properties[name]; !declared {
				findings = append(findings, errFinding(domain.CodeAdditionalPropDenied, childPath(path, name),
					fmt.Sprintf("property %q is not allowed", name)))
			}
		}
	}

	for _, name := range sortedObjKeys(obj) {
		prop, declared := s.Properties[name]
		if !declared {
			continue
		}
		findings = append(findings, Validate(obj[name], prop, childPath(path, name))...)
	}

	return findings
}

// checkArray validates each element. A single items schema applies to
// all positions; a tuple applies positionally, reusing its last schema
// for trailing elements.
func checkArray(arr []any, s *domain.Schema, path string) []domain.Finding {
	if s.Items == nil {
		return nil
	}

	var findings []domain.Finding
	for i, el := range arr {
		es := s.Items.At(i)
		if es == nil {
			continue
		}
		findings = append(findings, Validate(el, es, fmt.Sprintf("%s[%d]", path, i))...)
	}
	return findings
}

// ValueAt resolves a dot-delimited key path inside a document tree.
func ValueAt(tree map[string]any, path string) (any, bool) {
	if path == "" {
		return tree, tree != nil
	}
	var cur any = tree
	for _, seg := range strings.Split(path, ".") {
		m, ok := cur.(map[string]any)
		if !ok {
			return nil, false
		}
		cur, ok = m[seg]
		if !ok {
			return nil, false
		}
	}
	return cur, true
}

func typeName(value any) string {
	switch v := value.(type) {
	case nil:
		return "null"
	case bool:
		return "boolean"
	case string:
		return "string"
	case int, int32, int64, uint, uint32, uint64:
		return "integer"
	case float32:
		if float64(v) == math.Trunc(float64(v)) {
			return "integer"
		}
		return "number"
	case float64:
		if v == math.Trunc(v) {
			return "integer"
		}
		return "number"
	case map[string]any:
		return "object"
	case []any:
		return "array"
	default:
		return reflect.TypeOf(value).Kind().String()
	}
}

func numericValue(value any) (float64, bool) {
	switch v := value.(type) {
	case int:
		return float64(v), true
	case int32:
		return float64(v), true
	case int64:
		return float64(v), true
	case uint:
		return float64(v), true
	case uint32:
		return float64(v), true
	case uint64:
		return float64(v), true
	case float32:
		return float64(v), true
	case float64:
		return v, true
	default:
		return 0, false
	}
}

func strictEqual(a, b any) bool {
	na, aok := numericValue(a)
	nb, bok := numericValue(b)
	if aok && bok {
		return na == nb
	}
	if aok != bok {
		return false
	}
	return reflect.DeepEqual(a, b)
}

func childPath(path, name string) string {
	if path == "" {
		return name
	}
	return path + "." + name
}

func sortedObjKeys(m map[string]any) []string {
	ks := make([]string, 0, len(m))
	for k := range m {
		ks = append(ks, k)
	}
	sort.Strings(ks)
	return ks
}

func errFinding(code, path, message string) domain.Finding {
	return domain.Finding{
		Code:     code,
		Message:  message,
		Severity: domain.SeverityError,
		Path:     path,
	}
}
