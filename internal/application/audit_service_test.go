package application

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/syntropysoft/praetorian-go/internal/adapters/outbound/gitinfo"
)

func newAuditService() *AuditService {
	return NewAuditService(newValidateService(), gitinfo.New())
}

func TestAudit_CleanWorkspaceScoresPerfect(t *testing.T) {
	dir := writeWorkspace(t, map[string]string{
		"praetorian.yaml": "files:\n  - dev.yaml\n  - prod.yaml\nsecurity:\n  use_defaults: false\n",
		"dev.yaml":        "a: 1\n",
		"prod.yaml":       "a: 2\n",
	})

	report, err := newAuditService().Audit(dir)

	require.NoError(t, err)
	assert.Equal(t, 100, report.Score)
	assert.Equal(t, "A+", report.Grade)
	assert.True(t, report.Passed())
	assert.NotEmpty(t, report.ID)
	assert.Empty(t, report.CommitHash, "temp dir is not a git repo")
}

func TestAudit_ErrorsLowerTheScore(t *testing.T) {
	dir := writeWorkspace(t, map[string]string{
		"praetorian.yaml": "files:\n  - dev.yaml\n  - prod.yaml\nsecurity:\n  use_defaults: false\n",
		"dev.yaml":        "a: 1\nb: 2\nc: 3\n",
		"prod.yaml":       "a: 1\n",
	})

	report, err := newAuditService().Audit(dir)

	require.NoError(t, err)
	assert.False(t, report.Passed())
	// two structural errors at 8 points each
	assert.Equal(t, 84, report.Score)
	assert.Equal(t, "A", report.Grade)
	assert.Equal(t, 2, report.Summary.Errors)
	assert.Zero(t, report.Summary.SecurityErrors)
}

func TestAudit_SecurityErrorsWeighDouble(t *testing.T) {
	dir := writeWorkspace(t, map[string]string{
		"praetorian.yaml": "files:\n  - dev.yaml\n  - prod.yaml\n",
		"dev.yaml":        "api_key: sk-abcdefghijklmnopqrstuvwxyz\n",
		"prod.yaml":       "api_key: replaced-at-deploy-time\n",
	})

	report, err := newAuditService().Audit(dir)

	require.NoError(t, err)
	assert.False(t, report.Passed())
	assert.GreaterOrEqual(t, report.Summary.SecurityErrors, 1)
	assert.Less(t, report.Score, 100)
}

func TestAudit_PropagatesValidationFailure(t *testing.T) {
	dir := writeWorkspace(t, map[string]string{
		"praetorian.yaml": "files:\n  - missing.yaml\n  - also-missing.yaml\n",
	})

	_, err := newAuditService().Audit(dir)

	require.Error(t, err)
}
