package application

import (
	"fmt"
	"path/filepath"
	"time"

	"github.com/syntropysoft/praetorian-go/internal/domain"
	"github.com/syntropysoft/praetorian-go/internal/domain/keys"
	"github.com/syntropysoft/praetorian-go/internal/domain/pattern"
	"github.com/syntropysoft/praetorian-go/internal/domain/schema"
	"github.com/syntropysoft/praetorian-go/internal/domain/security"
)

// ValidateService orchestrates the validation pipeline:
// load config → load documents → compare keys → schemas → patterns →
// security per document → naming analysis → merge → strict verdict.
type ValidateService struct {
	configLoader domain.ConfigLoader
	docLoader    domain.DocumentLoader
}

func NewValidateService(configLoader domain.ConfigLoader, docLoader domain.DocumentLoader) *ValidateService {
	return &ValidateService{
		configLoader: configLoader,
		docLoader:    docLoader,
	}
}

// Validate runs the full pipeline for a workspace.
func (s *ValidateService) Validate(workspacePath string) (*domain.ValidationResult, error) {
	cfg, err := s.configLoader.Load(workspacePath)
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}
	return s.ValidateWithConfig(workspacePath, cfg)
}

// ValidateWithConfig runs the pipeline with an already-loaded config.
// File paths in the config resolve relative to workspacePath.
func (s *ValidateService) ValidateWithConfig(workspacePath string, cfg domain.Config) (*domain.ValidationResult, error) {
	start := time.Now()

	docs, err := s.docLoader.Load(resolvePaths(workspacePath, cfg.Files))
	if err != nil {
		return nil, fmt.Errorf("loading documents: %w", err)
	}

	result := keys.Compare(docs, cfg.IgnoreKeys, cfg.RequiredKeys)
	result.Merge(
		schema.Evaluate(docs, cfg.Schemas),
		pattern.Evaluate(docs, cfg.Patterns),
	)

	secRules := securityRules(cfg)
	for _, doc := range docs {
		sec := security.Evaluate(doc.Raw, secRules, domain.SecurityContext{
			FilePath: doc.Path,
			Mode:     doc.Mode,
		})
		result.Merge(sec.Validation)
	}

	for _, f := range keys.AnalyzeNaming(docs) {
		result.Add(f)
	}

	if !cfg.Strict {
		result.Degrade()
	}

	// Merge summed the per-evaluator timings; the report shows wall time.
	result.Metadata.SetDuration(start)
	return result, nil
}

// securityRules combines built-in rules with authored ones. Authored
// rules come last so a duplicated id overrides by evaluation order.
func securityRules(cfg domain.Config) []domain.SecurityRule {
	if !cfg.Security.UseDefaults {
		return cfg.Security.Rules
	}
	rules := security.DefaultRules()
	return append(rules, cfg.Security.Rules...)
}

func resolvePaths(workspacePath string, files []string) []string {
	resolved := make([]string, len(files))
	for i, f := range files {
		if filepath.IsAbs(f) {
			resolved[i] = f
			continue
		}
		resolved[i] = filepath.Join(workspacePath, f)
	}
	return resolved
}
