package domain

import "time"

// ValidationResult is the uniform shape every evaluator returns.
// Invariant: Success == (len(Errors) == 0), unless a non-strict run
// degraded blocking errors after the fact (see Degrade).
type ValidationResult struct {
	Success  bool           `json:"success"`
	Errors   []Finding      `json:"errors"`
	Warnings []Finding      `json:"warnings"`
	Info     []Finding      `json:"info,omitempty"`
	Results  []RuleResult   `json:"results,omitempty"`
	Metadata ResultMetadata `json:"metadata"`
}

// RuleResult is the per-rule detail attached by rule-driven evaluators.
type RuleResult struct {
	RuleID   string `json:"rule_id"`
	RuleName string `json:"rule_name,omitempty"`
	Passed   bool   `json:"passed"`
	Severity string `json:"severity"`
	Message  string `json:"message,omitempty"`
	Evidence string `json:"evidence,omitempty"`
}

// ResultMetadata carries run counters. DurationMS is the only field
// allowed to differ between two runs over identical inputs.
type ResultMetadata struct {
	FilesCompared  int   `json:"files_compared,omitempty"`
	TotalKeys      int   `json:"total_keys,omitempty"`
	IgnoredKeys    int   `json:"ignored_keys,omitempty"`
	RequiredKeys   int   `json:"required_keys,omitempty"`
	EmptyKeys      int   `json:"empty_keys,omitempty"`
	RulesEvaluated int   `json:"rules_evaluated,omitempty"`
	DurationMS     int64 `json:"duration_ms"`
}

// NewValidationResult returns an empty, successful result.
func NewValidationResult() *ValidationResult {
	return &ValidationResult{
		Success:  true,
		Errors:   []Finding{},
		Warnings: []Finding{},
	}
}

// Add routes a finding into the bucket matching its severity and
// updates Success. Info findings never affect the verdict.
func (r *ValidationResult) Add(f Finding) {
	switch f.Severity {
	case SeverityError:
		r.Errors = append(r.Errors, f)
		r.Success = false
	case SeverityWarning:
		r.Warnings = append(r.Warnings, f)
	default:
		r.Info = append(r.Info, f)
	}
}

// Merge folds other results into r. Counters are summed, durations are
// summed, and Success degrades if any merged result failed.
func (r *ValidationResult) Merge(others ...*ValidationResult) {
	for _, o := range others {
		if o == nil {
			continue
		}
		r.Errors = append(r.Errors, o.Errors...)
		r.Warnings = append(r.Warnings, o.Warnings...)
		r.Info = append(r.Info, o.Info...)
		r.Results = append(r.Results, o.Results...)
		if !o.Success {
			r.Success = false
		}
		r.Metadata.FilesCompared += o.Metadata.FilesCompared
		r.Metadata.TotalKeys += o.Metadata.TotalKeys
		r.Metadata.IgnoredKeys += o.Metadata.IgnoredKeys
		r.Metadata.RequiredKeys += o.Metadata.RequiredKeys
		r.Metadata.EmptyKeys += o.Metadata.EmptyKeys
		r.Metadata.RulesEvaluated += o.Metadata.RulesEvaluated
		r.Metadata.DurationMS += o.Metadata.DurationMS
	}
}

// Degrade converts a failed result into a passing one for non-strict
// runs. Error findings are retained so reporters still show them.
func (r *ValidationResult) Degrade() {
	r.Success = true
}

// SetDuration records elapsed time since start in milliseconds.
func (m *ResultMetadata) SetDuration(start time.Time) {
	m.DurationMS = time.Since(start).Milliseconds()
}
