package security

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/syntropysoft/praetorian-go/internal/domain"
)

func TestCheckCompliance_EmptyContentFails(t *testing.T) {
	result := CheckCompliance("   \n", StandardGDPR, gdprRequirements)

	assert.False(t, result.Passed)
	assert.Equal(t, []string{"No content to validate"}, result.FailedRequirements)
}

func TestCheckCompliance_EmptyRequirementsPass(t *testing.T) {
	result := CheckCompliance("anything", "CUSTOM", nil)

	assert.True(t, result.Passed)
	assert.Empty(t, result.FailedRequirements)
}

func TestCheckCompliance_ReportsFailedRequirementIDs(t *testing.T) {
	reqs := []domain.ComplianceRequirement{
		{ID: "REQ-1", Pattern: `encryption`},
		{ID: "REQ-2", Pattern: `audit`},
	}

	result := CheckCompliance("encryption: aes256", "CUSTOM", reqs)

	assert.False(t, result.Passed)
	assert.Equal(t, []string{"REQ-2"}, result.FailedRequirements)
}

func TestCheckCompliance_InvalidRequirementPatternFails(t *testing.T) {
	reqs := []domain.ComplianceRequirement{{ID: "REQ-BAD", Pattern: "(unclosed"}}

	result := CheckCompliance("content", "CUSTOM", reqs)

	assert.False(t, result.Passed)
	assert.Equal(t, []string{"REQ-BAD"}, result.FailedRequirements)
}

func TestCheckPCIDSSCompliance(t *testing.T) {
	content := `
encryption: aes256
access_control: rbac
password_policy: strong
audit: enabled
`
	result := CheckPCIDSSCompliance(content)
	assert.True(t, result.Passed)
	assert.Equal(t, StandardPCIDSS, result.Standard)

	partial := CheckPCIDSSCompliance("encryption: aes256")
	assert.False(t, partial.Passed)
	assert.Contains(t, partial.FailedRequirements, "PCI-DSS-10.1")
}

func TestStandardSpecificCheckers(t *testing.T) {
	content := `
retention: 30d
privacy: strict
encryption: on
incident: runbook
access_control: rbac
audit: on
tls: required
internal_control: documented
logging: on
`
	require.True(t, CheckGDPRCompliance(content).Passed)
	require.True(t, CheckHIPAACompliance(content).Passed)
	require.True(t, CheckSOXCompliance(content).Passed)
	require.True(t, CheckISO27001Compliance(content).Passed)
}

func TestStandardRequirements_Unknown(t *testing.T) {
	assert.Nil(t, StandardRequirements("NIST"))
	assert.NotEmpty(t, StandardRequirements(StandardHIPAA))
}
