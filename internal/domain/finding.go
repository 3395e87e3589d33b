package domain

// Finding represents a single problem (or observation) reported by a
// validator. Code is a stable string constant consumed by downstream
// tooling (reporters, CI gating) and must never change once published.
type Finding struct {
	Code     string         `json:"code"`
	Message  string         `json:"message"`
	Severity string         `json:"severity"`
	Path     string         `json:"path,omitempty"`
	File     string         `json:"file,omitempty"`
	Context  map[string]any `json:"context,omitempty"`
}

const (
	SeverityError   = "error"
	SeverityWarning = "warning"
	SeverityInfo    = "info"
)

// Security rule severities map to summary buckets, not result buckets.
const (
	SeverityCritical = "critical"
	SeverityHigh     = "high"
	SeverityMedium   = "medium"
	SeverityLow      = "low"
)

// SeverityBucket maps a rule severity onto the result bucket its
// findings land in: critical and high block, medium warns, low informs.
func SeverityBucket(severity string) string {
	switch severity {
	case SeverityCritical, SeverityHigh, SeverityError, "":
		return SeverityError
	case SeverityMedium, SeverityWarning:
		return SeverityWarning
	default:
		return SeverityInfo
	}
}

// Stable finding codes. These are part of the public contract.
const (
	CodeMissingKey            = "MISSING_KEY"
	CodeRequiredKeyMissing    = "REQUIRED_KEY_MISSING"
	CodeEmptyKey              = "EMPTY_KEY"
	CodeInsufficientFiles     = "INSUFFICIENT_FILES"
	CodeMixedKeyNaming        = "MIXED_KEY_NAMING"
	CodeInvalidType           = "INVALID_TYPE"
	CodeInvalidFormat         = "INVALID_FORMAT"
	CodeUnsupportedFormat     = "UNSUPPORTED_FORMAT"
	CodePatternMismatch       = "PATTERN_MISMATCH"
	CodeInvalidPattern        = "INVALID_PATTERN"
	CodeMinLengthError        = "MIN_LENGTH_ERROR"
	CodeMaxLengthError        = "MAX_LENGTH_ERROR"
	CodeMinimumError          = "MINIMUM_ERROR"
	CodeMaximumError          = "MAXIMUM_ERROR"
	CodeInvalidEnum           = "INVALID_ENUM"
	CodeRequiredPropMissing   = "REQUIRED_PROPERTY_MISSING"
	CodeAdditionalPropDenied  = "ADDITIONAL_PROPERTY_NOT_ALLOWED"
	CodeNoSchemaDefined       = "NO_SCHEMA_DEFINED"
	CodeUnknownRuleType       = "UNKNOWN_RULE_TYPE"
	CodeSecurityRulePrefix    = "SECURITY_" // completed with the rule id
)
