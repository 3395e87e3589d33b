package tui_test

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/syntropysoft/praetorian-go/internal/adapters/outbound/tui"
	"github.com/syntropysoft/praetorian-go/internal/domain"
)

func sampleResult() *domain.ValidationResult {
	r := domain.NewValidationResult()
	r.Add(domain.Finding{
		Code:     domain.CodeMissingKey,
		Message:  `Key "database.timeout" is missing in prod.yaml`,
		Severity: domain.SeverityError,
		Path:     "database.timeout",
		File:     "prod.yaml",
	})
	r.Add(domain.Finding{
		Code:     domain.CodePatternMismatch,
		Message:  "debug does not match ^false$",
		Severity: domain.SeverityWarning,
		Path:     "debug",
		File:     "dev.yaml",
	})
	r.Add(domain.Finding{
		Code:     domain.CodeEmptyKey,
		Message:  `Key "cache.prefix" is empty`,
		Severity: domain.SeverityInfo,
		Path:     "cache.prefix",
		File:     "dev.yaml",
	})
	r.Metadata.FilesCompared = 2
	r.Metadata.TotalKeys = 14
	r.Metadata.DurationMS = 3
	return r
}

func TestRenderResult_Verdict(t *testing.T) {
	output := tui.RenderResult(sampleResult())
	assert.Contains(t, output, "FAILED")

	passed := domain.NewValidationResult()
	assert.Contains(t, tui.RenderResult(passed), "PASSED")
}

func TestRenderResult_FindingCodes(t *testing.T) {
	output := tui.RenderResult(sampleResult())
	assert.Contains(t, output, "MISSING_KEY")
	assert.Contains(t, output, "PATTERN_MISMATCH")
	assert.Contains(t, output, "EMPTY_KEY")
}

func TestRenderResult_CountsBySeverity(t *testing.T) {
	output := tui.RenderResult(sampleResult())
	assert.Contains(t, output, "1 errors")
	assert.Contains(t, output, "1 warnings")
	assert.Contains(t, output, "1 info")
}

func TestRenderResult_ErrorsBeforeWarnings(t *testing.T) {
	output := tui.RenderResult(sampleResult())
	errIdx := strings.Index(output, "MISSING_KEY")
	warnIdx := strings.Index(output, "PATTERN_MISMATCH")
	infoIdx := strings.Index(output, "EMPTY_KEY")
	assert.True(t, errIdx < warnIdx, "errors render before warnings")
	assert.True(t, warnIdx < infoIdx, "warnings render before info")
}

func TestRenderResult_ShowsLocationAndMetadata(t *testing.T) {
	output := tui.RenderResult(sampleResult())
	assert.Contains(t, output, "prod.yaml")
	assert.Contains(t, output, "database.timeout")
	assert.Contains(t, output, "2 files")
	assert.Contains(t, output, "14 keys")
}

func TestRenderResult_NoFindings(t *testing.T) {
	output := tui.RenderResult(domain.NewValidationResult())
	assert.Contains(t, output, "No findings.")
}

func sampleAudit() *domain.AuditReport {
	return &domain.AuditReport{
		ID:         "0c8b7c0e-9f4e-4ad6-9e59-0f6d1a1b2c3d",
		Timestamp:  time.Date(2026, 1, 15, 10, 0, 0, 0, time.UTC),
		CommitHash: "a1b2c3d4e5f6a7b8c9d0a1b2c3d4e5f6a7b8c9d0",
		Dirty:      true,
		Score:      84,
		Grade:      "A",
		Summary:    domain.AuditSummary{Errors: 2, Warnings: 1, RulesEvaluated: 5, RulesFailed: 1},
		Result:     sampleResult(),
	}
}

func TestRenderAudit_ScoreAndGrade(t *testing.T) {
	output := tui.RenderAudit(sampleAudit())
	assert.Contains(t, output, "84 / 100")
	assert.Contains(t, output, "A")
}

func TestRenderAudit_ShortCommitAndDirtyMarker(t *testing.T) {
	output := tui.RenderAudit(sampleAudit())
	assert.Contains(t, output, "a1b2c3d")
	assert.NotContains(t, output, "a1b2c3d4e5f6")
	assert.Contains(t, output, "dirty")
}

func TestRenderAudit_IncludesFindings(t *testing.T) {
	output := tui.RenderAudit(sampleAudit())
	assert.Contains(t, output, "MISSING_KEY")
	assert.Contains(t, output, "5 rules evaluated, 1 failed")
}

func TestRenderHealth(t *testing.T) {
	report := domain.NewHealthReport()
	report.Add("config", true, "praetorian.yaml loads and validates")
	report.Add("files", false, "missing: prod.yaml")

	output := tui.RenderHealth(report)

	assert.Contains(t, output, "config")
	assert.Contains(t, output, "missing: prod.yaml")
	assert.Contains(t, output, "Workspace needs attention.")
}

func TestRenderHealth_Healthy(t *testing.T) {
	report := domain.NewHealthReport()
	report.Add("config", true, "ok")

	assert.Contains(t, tui.RenderHealth(report), "Workspace is ready.")
}
