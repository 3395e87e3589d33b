package security

import (
	"regexp"
	"strings"

	"github.com/syntropysoft/praetorian-go/internal/domain"
)

// ComplianceResult reports which requirements of a standard a document
// fails. A requirement is satisfied by pattern presence anywhere in
// the content; this is an existence check, not structural validation.
type ComplianceResult struct {
	Standard           string   `json:"standard"`
	Passed             bool     `json:"passed"`
	FailedRequirements []string `json:"failed_requirements,omitempty"`
}

// Supported compliance standards.
const (
	StandardPCIDSS   = "PCI-DSS"
	StandardGDPR     = "GDPR"
	StandardHIPAA    = "HIPAA"
	StandardSOX      = "SOX"
	StandardISO27001 = "ISO27001"
)

var pciDSSRequirements = []domain.ComplianceRequirement{
	{ID: "PCI-DSS-3.4", Pattern: `(?i)encrypt`},
	{ID: "PCI-DSS-7.1", Pattern: `(?i)access[_-]?control|rbac|role`},
	{ID: "PCI-DSS-8.2", Pattern: `(?i)password[_-]?policy|authentication`},
	{ID: "PCI-DSS-10.1", Pattern: `(?i)audit|logging`},
}

var gdprRequirements = []domain.ComplianceRequirement{
	{ID: "GDPR-ART-17", Pattern: `(?i)retention`},
	{ID: "GDPR-ART-25", Pattern: `(?i)privacy|anonymi[sz]|pseudonym`},
	{ID: "GDPR-ART-32", Pattern: `(?i)encrypt`},
	{ID: "GDPR-ART-33", Pattern: `(?i)breach|incident`},
}

var hipaaRequirements = []domain.ComplianceRequirement{
	{ID: "HIPAA-164.312-A", Pattern: `(?i)access[_-]?control`},
	{ID: "HIPAA-164.312-B", Pattern: `(?i)audit`},
	{ID: "HIPAA-164.312-E", Pattern: `(?i)tls|encrypt`},
}

var soxRequirements = []domain.ComplianceRequirement{
	{ID: "SOX-302", Pattern: `(?i)audit|attestation`},
	{ID: "SOX-404", Pattern: `(?i)internal[_-]?control|control`},
	{ID: "SOX-802", Pattern: `(?i)retention`},
}

var iso27001Requirements = []domain.ComplianceRequirement{
	{ID: "ISO27001-A.9", Pattern: `(?i)access[_-]?control|rbac`},
	{ID: "ISO27001-A.10", Pattern: `(?i)crypto|encrypt`},
	{ID: "ISO27001-A.12", Pattern: `(?i)logging|monitoring|backup`},
}

// CheckCompliance is the generic entry point taking externally
// supplied requirements. Empty content always fails with a sentinel
// requirement; an empty requirement list always passes.
func CheckCompliance(content, standard string, requirements []domain.ComplianceRequirement) ComplianceResult {
	if strings.TrimSpace(content) == "" {
		return ComplianceResult{
			Standard:           standard,
			FailedRequirements: []string{"No content to validate"},
		}
	}

	result := ComplianceResult{Standard: standard, Passed: true}
	for _, req := range requirements {
		re, err := regexp.Compile(req.Pattern)
		if err != nil || !re.MatchString(content) {
			result.Passed = false
			result.FailedRequirements = append(result.FailedRequirements, req.ID)
		}
	}
	return result
}

func CheckPCIDSSCompliance(content string) ComplianceResult {
	return CheckCompliance(content, StandardPCIDSS, pciDSSRequirements)
}

func CheckGDPRCompliance(content string) ComplianceResult {
	return CheckCompliance(content, StandardGDPR, gdprRequirements)
}

func CheckHIPAACompliance(content string) ComplianceResult {
	return CheckCompliance(content, StandardHIPAA, hipaaRequirements)
}

func CheckSOXCompliance(content string) ComplianceResult {
	return CheckCompliance(content, StandardSOX, soxRequirements)
}

func CheckISO27001Compliance(content string) ComplianceResult {
	return CheckCompliance(content, StandardISO27001, iso27001Requirements)
}

// StandardRequirements returns the fixed requirement table for a
// known standard, or nil for an unrecognized one.
func StandardRequirements(standard string) []domain.ComplianceRequirement {
	switch standard {
	case StandardPCIDSS:
		return pciDSSRequirements
	case StandardGDPR:
		return gdprRequirements
	case StandardHIPAA:
		return hipaaRequirements
	case StandardSOX:
		return soxRequirements
	case StandardISO27001:
		return iso27001Requirements
	default:
		return nil
	}
}
