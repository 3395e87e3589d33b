package security

import (
	"fmt"
	"strings"
	"time"

	"github.com/syntropysoft/praetorian-go/internal/domain"
)

// Result is a validation result enriched with the security-specific
// summary and, when compliance rules ran, a compliance roll-up.
// Compliance is absent (not null) when no compliance rules were
// evaluated.
type Result struct {
	Validation *domain.ValidationResult `json:"validation"`
	Summary    Summary                  `json:"summary"`
	Compliance *ComplianceResult        `json:"compliance,omitempty"`
}

// Summary buckets failed rules by severity.
type Summary struct {
	Total    int `json:"total"`
	Passed   int `json:"passed"`
	Failed   int `json:"failed"`
	Critical int `json:"critical"`
	High     int `json:"high"`
	Medium   int `json:"medium"`
	Low      int `json:"low"`
}

// Evaluate dispatches each enabled rule to its sub-evaluator and
// aggregates pass/fail. Empty content or an empty rule list is an
// empty-but-valid result with an all-zero summary.
func Evaluate(content string, rules []domain.SecurityRule, ctx domain.SecurityContext) *Result {
	start := time.Now()
	result := &Result{Validation: domain.NewValidationResult()}

	if strings.TrimSpace(content) == "" || len(rules) == 0 {
		result.Validation.Metadata.SetDuration(start)
		return result
	}

	var complianceRollup *ComplianceResult

	for _, rule := range rules {
		if !rule.Enabled {
			continue
		}
		result.Validation.Metadata.RulesEvaluated++

		var rr domain.RuleResult
		switch rule.Type {
		case domain.RuleTypeSecret:
			rr = evalSecret(content, rule)
		case domain.RuleTypePermission:
			rr = checkPermissions(rule, ctx)
		case domain.RuleTypeVulnerability:
			rr = evalVulnerability(content, rule)
		case domain.RuleTypeCompliance:
			var cr ComplianceResult
			rr, cr = evalCompliance(content, rule)
			complianceRollup = mergeCompliance(complianceRollup, cr)
		default:
			rr = domain.RuleResult{
				RuleID:   rule.ID,
				RuleName: rule.Name,
				Passed:   false,
				Severity: rule.Severity,
				Message:  "Unknown rule type",
			}
			result.Validation.Add(domain.Finding{
				Code:     domain.CodeUnknownRuleType,
				Message:  fmt.Sprintf("security rule %q has unknown type %q", rule.ID, rule.Type),
				Severity: domain.SeverityError,
				File:     ctx.FilePath,
			})
		}

		result.Validation.Results = append(result.Validation.Results, rr)
		tally(&result.Summary, rr)

		if !rr.Passed && rule.Type != "" && isValidType(rule.Type) {
			result.Validation.Add(domain.Finding{
				Code:     domain.CodeSecurityRulePrefix + rule.ID,
				Message:  rr.Message,
				Severity: domain.SeverityBucket(rule.Severity),
				File:     ctx.FilePath,
				Context:  findingContext(rr),
			})
		}
	}

	result.Compliance = complianceRollup
	result.Validation.Metadata.SetDuration(start)
	return result
}

func evalSecret(content string, rule domain.SecurityRule) domain.RuleResult {
	rr := domain.RuleResult{
		RuleID:   rule.ID,
		RuleName: rule.Name,
		Passed:   true,
		Severity: rule.Severity,
	}

	matches := DetectSecrets(content, []domain.SecurityRule{rule})
	if len(matches) == 0 {
		return rr
	}

	rr.Passed = false
	rr.Message = fmt.Sprintf("%d potential secret(s) detected", len(matches))
	rr.Evidence = matches[0].MaskedValue
	return rr
}

func evalVulnerability(content string, rule domain.SecurityRule) domain.RuleResult {
	rr := domain.RuleResult{
		RuleID:   rule.ID,
		RuleName: rule.Name,
		Passed:   true,
		Severity: rule.Severity,
	}

	matches := scanVulnerabilities(content, rule)
	if len(matches) == 0 {
		return rr
	}

	rr.Passed = false
	rr.Message = fmt.Sprintf("%d vulnerable pattern(s) detected", len(matches))
	rr.Evidence = matches[0].MaskedValue
	return rr
}

func evalCompliance(content string, rule domain.SecurityRule) (domain.RuleResult, ComplianceResult) {
	rr := domain.RuleResult{
		RuleID:   rule.ID,
		RuleName: rule.Name,
		Passed:   true,
		Severity: rule.Severity,
	}

	reqs := rule.Requirements
	if len(reqs) == 0 {
		reqs = StandardRequirements(rule.Standard)
	}

	cr := CheckCompliance(content, rule.Standard, reqs)
	if !cr.Passed {
		rr.Passed = false
		rr.Message = fmt.Sprintf("%d %s requirement(s) not met", len(cr.FailedRequirements), rule.Standard)
		rr.Evidence = strings.Join(cr.FailedRequirements, ", ")
	}
	return rr, cr
}

func mergeCompliance(acc *ComplianceResult, cr ComplianceResult) *ComplianceResult {
	if acc == nil {
		out := cr
		return &out
	}
	if acc.Standard != cr.Standard {
		acc.Standard = "multiple"
	}
	if !cr.Passed {
		acc.Passed = false
		acc.FailedRequirements = append(acc.FailedRequirements, cr.FailedRequirements...)
	}
	return acc
}

func tally(s *Summary, rr domain.RuleResult) {
	s.Total++
	if rr.Passed {
		s.Passed++
		return
	}
	s.Failed++
	switch rr.Severity {
	case domain.SeverityCritical:
		s.Critical++
	case domain.SeverityHigh:
		s.High++
	case domain.SeverityMedium:
		s.Medium++
	case domain.SeverityLow:
		s.Low++
	}
}

func findingContext(rr domain.RuleResult) map[string]any {
	if rr.Evidence == "" {
		return nil
	}
	return map[string]any{"evidence": rr.Evidence}
}

func isValidType(t string) bool {
	switch t {
	case domain.RuleTypeSecret, domain.RuleTypePermission,
		domain.RuleTypeVulnerability, domain.RuleTypeCompliance:
		return true
	}
	return false
}
