package keys

import (
	"fmt"
	"strings"

	"github.com/fatih/camelcase"

	"github.com/syntropysoft/praetorian-go/internal/domain"
)

// AnalyzeNaming reports documents that mix camelCase and snake_case
// key segments. Mixed naming is a readability smell, not a defect, so
// findings are informational and never affect the verdict.
func AnalyzeNaming(docs []domain.ConfigDocument) []domain.Finding {
	var findings []domain.Finding

	for _, doc := range docs {
		camel, snake := 0, 0
		for _, path := range ExtractKeys(doc.Content) {
			seg := path
			if i := strings.LastIndex(path, "."); i >= 0 {
				seg = path[i+1:]
			}
			switch {
			case strings.Contains(seg, "_"):
				snake++
			case len(camelcase.Split(seg)) > 1:
				camel++
			}
		}
		if camel > 0 && snake > 0 {
			findings = append(findings, domain.Finding{
				Code:     domain.CodeMixedKeyNaming,
				Severity: domain.SeverityInfo,
				Message:  fmt.Sprintf("mixed key naming styles: %d camelCase and %d snake_case segments", camel, snake),
				File:     doc.Path,
			})
		}
	}

	return findings
}
