package pattern

import (
	"fmt"
	"regexp"
	"time"

	"github.com/syntropysoft/praetorian-go/internal/domain"
	"github.com/syntropysoft/praetorian-go/internal/domain/schema"
)

// Evaluate applies named regex rules to documents. A rule with a Key
// tests the scalar at that path; a rule without one tests the whole
// raw document text. Rule severity decides which result bucket a
// failure lands in; an invalid regex is a rule-authoring defect and
// degrades to an INVALID_PATTERN error without aborting other rules.
func Evaluate(docs []domain.ConfigDocument, rules []domain.PatternRule) *domain.ValidationResult {
	start := time.Now()
	result := domain.NewValidationResult()

	for _, rule := range rules {
		if !rule.Enabled {
			continue
		}
		result.Metadata.RulesEvaluated++

		re, err := regexp.Compile(rule.Pattern)
		if err != nil {
			result.Add(domain.Finding{
				Code:     domain.CodeInvalidPattern,
				Message:  fmt.Sprintf("pattern rule %q: invalid pattern %q: %v", rule.ID, rule.Pattern, err),
				Severity: domain.SeverityError,
			})
			result.Results = append(result.Results, domain.RuleResult{
				RuleID:   rule.ID,
				RuleName: rule.Name,
				Passed:   false,
				Severity: domain.SeverityError,
				Message:  "invalid pattern",
			})
			continue
		}

		severity := rule.Severity
		if severity == "" {
			severity = domain.SeverityError
		}

		failures := 0
		for _, doc := range docs {
			subject, ok := subjectText(doc, rule.Key)
			if !ok {
				continue
			}
			if re.MatchString(subject) {
				continue
			}
			failures++
			result.Add(domain.Finding{
				Code:     domain.CodePatternMismatch,
				Message:  fmt.Sprintf("rule %q: value does not match pattern %q", rule.ID, rule.Pattern),
				Severity: domain.SeverityBucket(severity),
				Path:     rule.Key,
				File:     doc.Path,
			})
		}

		rr := domain.RuleResult{
			RuleID:   rule.ID,
			RuleName: rule.Name,
			Passed:   failures == 0,
			Severity: severity,
		}
		if failures > 0 {
			rr.Message = fmt.Sprintf("%d document(s) failed", failures)
		}
		result.Results = append(result.Results, rr)
	}

	result.Metadata.SetDuration(start)
	return result
}

// subjectText extracts what the rule's pattern runs against: the
// scalar at rule.Key rendered as text, or the raw document.
func subjectText(doc domain.ConfigDocument, key string) (string, bool) {
	if key == "" {
		return doc.Raw, doc.Raw != ""
	}
	v, found := schema.ValueAt(doc.Content, key)
	if !found || v == nil {
		return "", false
	}
	switch s := v.(type) {
	case string:
		return s, true
	default:
		return fmt.Sprintf("%v", v), true
	}
}
