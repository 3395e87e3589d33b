package security

import (
	"regexp"
	"strings"

	"github.com/syntropysoft/praetorian-go/internal/domain"
)

// SecretMatch describes one secret candidate found in raw text. It is
// derived per regex match and discarded after reporting; the raw value
// never leaves this package unmasked.
type SecretMatch struct {
	SecretType   string `json:"secret_type"`
	MaskedValue  string `json:"masked_value"`
	Confidence   int    `json:"confidence"`
	Context      string `json:"context"`
	LineNumber   int    `json:"line_number"`
	ColumnNumber int    `json:"column_number"`
}

// DetectSecrets scans content with every enabled secret rule. Matches
// satisfying any of the rule's exclude patterns are discarded as false
// positives. Each regexp scan is a fresh iteration over the content,
// so rules can be reused across calls without shared scan state.
func DetectSecrets(content string, rules []domain.SecurityRule) []SecretMatch {
	var matches []SecretMatch

	for _, rule := range rules {
		if !rule.Enabled || rule.Type != domain.RuleTypeSecret {
			continue
		}

		name := rule.Name
		if name == "" {
			name = rule.ID
		}

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
					SecretType:   name,
					MaskedValue:  MaskSecret(text),
					Confidence:   ConfidenceScore(rule.ID, text),
					Context:      contextSnippet(content, loc[0]),
					LineNumber:   line,
					ColumnNumber: col,
				})
			}
		}
	}

	return matches
}

func excludedMatch(text string, excludePatterns []string) bool {
	for _, p := range excludePatterns {
		re, err := regexp.Compile(p)
		if err != nil {
			continue
		}
		if re.MatchString(text) {
			return true
		}
	}
	return false
}

// ConfidenceScore estimates how likely a matched string is a genuine
// secret. Deterministic heuristic, clamped to [0,100]: long values,
// mixed alphanumerics and special characters all raise confidence, and
// well-known value shapes (sk- API keys, dotted JWTs) raise it further.
func ConfidenceScore(ruleID, value string) int {
	score := 50

	if len(value) >= 20 {
		score += 20
	}
	if len(value) >= 40 {
		score += 10
	}

	hasLetter, hasDigit, hasSpecial := false, false, false
	for _, r := range value {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z':
			hasLetter = true
		case r >= '0' && r <= '9':
			hasDigit = true
		default:
			hasSpecial = true
		}
	}
	if hasLetter && hasDigit {
		score += 15
	}
	if hasSpecial {
		score += 10
	}

	if strings.Contains(ruleID, "API_KEY") && strings.HasPrefix(value, "sk-") {
		score += 20
	}
	if strings.Contains(ruleID, "JWT") && strings.Contains(value, ".") {
		score += 15
	}

	if score > 100 {
		score = 100
	}
	return score
}

// MaskSecret hides the middle of a secret, keeping two characters on
// each side. Values of four characters or fewer are masked entirely.
func MaskSecret(value string) string {
	if len(value) <= 4 {
		return strings.Repeat("*", len(value))
	}
	middle := len(value) - 4
	if middle < 4 {
		middle = 4
	}
	return value[:2] + strings.Repeat("*", middle) + value[len(value)-2:]
}

// location converts a byte offset into a 1-based line number and a
// column counted from the preceding newline (or string start).
func location(content string, idx int) (line, col int) {
	before := content[:idx]
	line = strings.Count(before, "\n") + 1
	col = idx - strings.LastIndex(before, "\n")
	return line, col
}

// contextSnippet returns the line containing the match, trimmed.
func contextSnippet(content string, idx int) string {
	start := strings.LastIndex(content[:idx], "\n") + 1
	end := strings.Index(content[idx:], "\n")
	if end < 0 {
		end = len(content)
	} else {
		end += idx
	}
	snippet := strings.TrimSpace(content[start:end])
	if len(snippet) > 120 {
		snippet = snippet[:120]
	}
	return snippet
}
