package schema

import (
	"fmt"
	"time"

	"github.com/syntropysoft/praetorian-go/internal/domain"
)

// Evaluate applies schema rules to a set of documents. A rule's Key
// targets a subtree (empty key means the document root); documents
// missing the key are skipped here because presence is the equality
// analyzer's concern. A rule authored without a schema is itself a
// defect and degrades to a NO_SCHEMA_DEFINED error finding.
func Evaluate(docs []domain.ConfigDocument, rules []domain.SchemaRule) *domain.ValidationResult {
	start := time.Now()
	result := domain.NewValidationResult()

	for _, rule := range rules {
		if !rule.Enabled {
			continue
		}
		result.Metadata.RulesEvaluated++

		if rule.Schema == nil {
			result.Add(domain.Finding{
				Code:     domain.CodeNoSchemaDefined,
				Message:  fmt.Sprintf("schema rule %q has no schema", rule.ID),
				Severity: domain.SeverityError,
				Path:     rule.Key,
			})
			result.Results = append(result.Results, domain.RuleResult{
				RuleID:   rule.ID,
				RuleName: rule.Name,
				Passed:   false,
				Severity: ruleSeverity(rule.Severity),
				Message:  "no schema defined",
			})
			continue
		}

		failures := 0
		for _, doc := range docs {
			value, found := ValueAt(doc.Content, rule.Key)
			if !found {
				continue
			}
			for _, f := range Validate(value, rule.Schema, rule.Key) {
				f.File = doc.Path
				// Authoring defects stay errors no matter how the
				// rule is labelled; everything else takes the bucket
				// the rule's severity routes to.
				if f.Code != domain.CodeInvalidPattern && f.Code != domain.CodeUnsupportedFormat {
					f.Severity = domain.SeverityBucket(rule.Severity)
				}
				result.Add(f)
				failures++
			}
		}

		rr := domain.RuleResult{
			RuleID:   rule.ID,
			RuleName: rule.Name,
			Passed:   failures == 0,
			Severity: ruleSeverity(rule.Severity),
		}
		if failures > 0 {
			rr.Message = fmt.Sprintf("%d schema violation(s)", failures)
		}
		result.Results = append(result.Results, rr)
	}

	result.Metadata.SetDuration(start)
	return result
}

func ruleSeverity(s string) string {
	if s == "" {
		return domain.SeverityError
	}
	return s
}
