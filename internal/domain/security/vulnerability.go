package security

import (
	"regexp"

	"github.com/syntropysoft/praetorian-go/internal/domain"
)

// scanVulnerabilities matches a rule's vulnerability patterns against
// raw text. Same pass/fail/evidence shape as the secret sub-evaluator,
// without confidence scoring or masking.
func scanVulnerabilities(content string, rule domain.SecurityRule) []SecretMatch {
	var matches []SecretMatch

	for _, p := range rule.Patterns {
		re, err := regexp.Compile(p)
		if err != nil {
			continue
		}
		for _, loc := range re.FindAllStringIndex(content, -1) {
			text := content[loc[0]:loc[1]]
			if excludedMatch(text, rule.ExcludePatterns) {
				continue
			}
			line, col := location(content, loc[0])
			matches = append(matches, SecretMatch{
				SecretType:   rule.Name,
				MaskedValue:  text, // vulnerability evidence is not secret material
				Context:      contextSnippet(content, loc[0]),
				LineNumber:   line,
				ColumnNumber: col,
			})
		}
	}

	return matches
}
