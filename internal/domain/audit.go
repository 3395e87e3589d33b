package domain

import (
	"strings"
	"time"
)

// AuditReport summarizes a full validation run as a 0-100 score with a
// letter grade, suitable for CI dashboards and badges.
type AuditReport struct {
	ID         string            `json:"id"`
	Timestamp  time.Time         `json:"timestamp"`
	CommitHash string            `json:"commit_hash,omitempty"`
	Dirty      bool              `json:"dirty,omitempty"`
	Score      int               `json:"score"`
	Grade      string            `json:"grade"`
	Summary    AuditSummary      `json:"summary"`
	Result     *ValidationResult `json:"result"`
}

// AuditSummary counts findings by bucket.
type AuditSummary struct {
	Errors         int `json:"errors"`
	SecurityErrors int `json:"security_errors"`
	Warnings       int `json:"warnings"`
	Info           int `json:"info"`
	RulesEvaluated int `json:"rules_evaluated"`
	RulesFailed    int `json:"rules_failed"`
}

func (r AuditReport) Passed() bool { return r.Result != nil && r.Result.Success }

// ComputeAuditScore derives a 0-100 score from a merged validation
// result. Security findings weigh double structural ones.
func ComputeAuditScore(result *ValidationResult) (int, AuditSummary) {
	var s AuditSummary
	if result == nil {
		return 0, s
	}

	penalty := 0
	for _, f := range result.Errors {
		s.Errors++
		if strings.HasPrefix(f.Code, CodeSecurityRulePrefix) {
			s.SecurityErrors++
			penalty += 16
		} else {
			penalty += 8
		}
	}
	for range result.Warnings {
		s.Warnings++
		penalty += 3
	}
	s.Info = len(result.Info)

	s.RulesEvaluated = len(result.Results)
	for _, rr := range result.Results {
		if !rr.Passed {
			s.RulesFailed++
		}
	}

	score := 100 - penalty
	if score < 0 {
		score = 0
	}
	return score, s
}

// GradeFor maps a 0-100 score to a letter grade.
func GradeFor(score int) string {
	switch {
	case score >= 90:
		return "A+"
	case score >= 80:
		return "A"
	case score >= 70:
		return "B"
	case score >= 60:
		return "C"
	case score >= 50:
		return "D"
	default:
		return "F"
	}
}

// BadgeColor maps a score to a shields.io badge color.
func BadgeColor(score int) string {
	switch {
	case score >= 90:
		return "brightgreen"
	case score >= 80:
		return "green"
	case score >= 70:
		return "yellow"
	case score >= 60:
		return "orange"
	case score >= 50:
		return "red"
	default:
		return "critical"
	}
}
