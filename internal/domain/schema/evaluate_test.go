package schema

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/syntropysoft/praetorian-go/internal/domain"
)

func TestEvaluate_RuleViolation(t *testing.T) {
	docs := []domain.ConfigDocument{
		{Path: "dev.yaml", Content: map[string]any{"server": map[string]any{"port": "8080"}}},
	}
	rules := []domain.SchemaRule{{
		ID:      "server-port",
		Key:     "server.port",
		Enabled: true,
		Schema:  &domain.Schema{Type: "integer"},
	}}

	result := Evaluate(docs, rules)

	assert.False(t, result.Success)
	require.Len(t, result.Errors, 1)
	assert.Equal(t, domain.CodeInvalidType, result.Errors[0].Code)
	assert.Equal(t, "dev.yaml", result.Errors[0].File)
	require.Len(t, result.Results, 1)
	assert.False(t, result.Results[0].Passed)
}

func TestEvaluate_WarningSeverityRoutesToWarnings(t *testing.T) {
	docs := []domain.ConfigDocument{
		{Path: "dev.yaml", Content: map[string]any{"env": "qa"}},
	}
	rules := []domain.SchemaRule{{
		ID:       "env-enum",
		Key:      "env",
		Severity: domain.SeverityWarning,
		Enabled:  true,
		Schema:   &domain.Schema{Enum: []any{"dev", "prod"}},
	}}

	result := Evaluate(docs, rules)

	assert.True(t, result.Success, "warning-severity rules must not fail the run")
	assert.Empty(t, result.Errors)
	require.Len(t, result.Warnings, 1)
	assert.Equal(t, domain.CodeInvalidEnum, result.Warnings[0].Code)
}

func TestEvaluate_CriticalSeverityBlocks(t *testing.T) {
	docs := []domain.ConfigDocument{
		{Path: "prod.yaml", Content: map[string]any{"database": map[string]any{"port": "not-a-number"}}},
	}
	rules := []domain.SchemaRule{{
		ID:       "db-port",
		Key:      "database.port",
		Severity: domain.SeverityCritical,
		Enabled:  true,
		Schema:   &domain.Schema{Type: "integer"},
	}}

	result := Evaluate(docs, rules)

	assert.False(t, result.Success, "critical routes to the error bucket")
	require.Len(t, result.Errors, 1)
	assert.Equal(t, domain.SeverityError, result.Errors[0].Severity)
	assert.Empty(t, result.Info)
	require.Len(t, result.Results, 1)
	assert.Equal(t, domain.SeverityCritical, result.Results[0].Severity, "rule results keep the authored severity")
}

func TestEvaluate_AuthoringDefectsStayErrors(t *testing.T) {
	docs := []domain.ConfigDocument{
		{Path: "dev.yaml", Content: map[string]any{"host": "a", "zip": "b"}},
	}
	rules := []domain.SchemaRule{
		{
			ID:       "broken-regex",
			Key:      "host",
			Severity: domain.SeverityWarning,
			Enabled:  true,
			Schema:   &domain.Schema{Pattern: "(unclosed"},
		},
		{
			ID:       "bad-format",
			Key:      "zip",
			Severity: domain.SeverityWarning,
			Enabled:  true,
			Schema:   &domain.Schema{Format: "zip-code"},
		},
	}

	result := Evaluate(docs, rules)

	assert.False(t, result.Success, "a rule defect must surface even on warning rules")
	require.Len(t, result.Errors, 2)
	assert.Equal(t, domain.CodeInvalidPattern, result.Errors[0].Code)
	assert.Equal(t, domain.CodeUnsupportedFormat, result.Errors[1].Code)
	assert.Empty(t, result.Warnings)
}

func TestEvaluate_NoSchemaDefined(t *testing.T) {
	rules := []domain.SchemaRule{{ID: "broken", Enabled: true}}

	result := Evaluate(nil, rules)

	assert.False(t, result.Success)
	require.Len(t, result.Errors, 1)
	assert.Equal(t, domain.CodeNoSchemaDefined, result.Errors[0].Code)
}

func TestEvaluate_DisabledRuleSkipped(t *testing.T) {
	rules := []domain.SchemaRule{{ID: "off", Enabled: false}}

	result := Evaluate(nil, rules)

	assert.True(t, result.Success)
	assert.Zero(t, result.Metadata.RulesEvaluated)
	assert.Empty(t, result.Results)
}

func TestEvaluate_AbsentKeySkipsDocument(t *testing.T) {
	docs := []domain.ConfigDocument{
		{Path: "dev.yaml", Content: map[string]any{"other": 1}},
	}
	rules := []domain.SchemaRule{{
		ID:      "opt",
		Key:     "optional.section",
		Enabled: true,
		Schema:  &domain.Schema{Type: "object"},
	}}

	result := Evaluate(docs, rules)

	assert.True(t, result.Success, "presence is the equality analyzer's concern")
	require.Len(t, result.Results, 1)
	assert.True(t, result.Results[0].Passed)
}
