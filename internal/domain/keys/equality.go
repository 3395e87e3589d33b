package keys

import (
	"fmt"
	"time"

	"github.com/syntropysoft/praetorian-go/internal/domain"
)

// Compare checks that every document exposes the same key set.
//
// The master key set is the union of all non-ignored key paths across
// the documents; each document is then reported against that snapshot.
// Required keys are checked independently of ignore rules (compliance
// keys must never be ignorable). Empty values are reported as
// informational findings and never affect the verdict.
func Compare(docs []domain.ConfigDocument, ignoreKeys, requiredKeys []string) *domain.ValidationResult {
	start := time.Now()
	result := domain.NewValidationResult()
	result.Metadata.FilesCompared = len(docs)
	result.Metadata.IgnoredKeys = len(ignoreKeys)
	result.Metadata.RequiredKeys = len(requiredKeys)

	if len(docs) < 2 {
		result.Add(domain.Finding{
			Code:     domain.CodeInsufficientFiles,
			Message:  "Need at least 2 files to compare",
			Severity: domain.SeverityWarning,
		})
		result.Metadata.SetDuration(start)
		return result
	}

	ignore := NewMatcher(ignoreKeys)

	// Per-document key sets, plus the master union in first-seen order.
	type docIndex struct {
		all      map[string]struct{} // every key, before ignore filtering
		filtered map[string]struct{}
		ordered  []string // filtered, extraction order
	}
	indexes := make([]docIndex, len(docs))
	var master []string
	masterSet := make(map[string]struct{})

	for i, doc := range docs {
		extracted := ExtractKeys(doc.Content)
		idx := docIndex{
			all:      make(map[string]struct{}, len(extracted)),
			filtered: make(map[string]struct{}, len(extracted)),
		}
		for _, k := range extracted {
			idx.all[k] = struct{}{}
			if ignore.Matches(k) {
				continue
			}
			idx.filtered[k] = struct{}{}
			idx.ordered = append(idx.ordered, k)
			if _, seen := masterSet[k]; !seen {
				masterSet[k] = struct{}{}
				master = append(master, k)
			}
		}
		indexes[i] = idx
	}
	result.Metadata.TotalKeys = len(master)

	// Missing keys, document-major.
	for i, doc := range docs {
		for _, k := range master {
			if _, ok := indexes[i].filtered[k]; ok {
				continue
			}
			result.Add(domain.Finding{
				Code:     domain.CodeMissingKey,
				Severity: domain.SeverityError,
				Message:  fmt.Sprintf("missing key %q", k),
				Path:     k,
				File:     doc.Path,
				Context:  map[string]any{"available_keys": indexes[i].ordered},
			})
		}
	}

	// Required keys, checked against the unfiltered sets.
	for i, doc := range docs {
		for _, k := range requiredKeys {
			if _, ok := indexes[i].all[k]; ok {
				continue
			}
			result.Add(domain.Finding{
				Code:     domain.CodeRequiredKeyMissing,
				Severity: domain.SeverityError,
				Message:  fmt.Sprintf("required key %q is missing", k),
				Path:     k,
				File:     doc.Path,
			})
		}
	}

	// Empty values are informational only.
	for _, doc := range docs {
		for _, k := range EmptyLeaves(doc.Content) {
			if ignore.Matches(k) {
				continue
			}
			result.Metadata.EmptyKeys++
			result.Add(domain.Finding{
				Code:     domain.CodeEmptyKey,
				Severity: domain.SeverityInfo,
				Message:  fmt.Sprintf("key %q has an empty value", k),
				Path:     k,
				File:     doc.Path,
			})
		}
	}

	result.Metadata.SetDuration(start)
	return result
}
