package domain

import (
	"fmt"
	"regexp"
)

// ValidSeverities enumerates the severities a rule may be authored with.
// The first three route findings into result buckets; the last four are
// security summary buckets.
var ValidSeverities = []string{
	SeverityError, SeverityWarning, SeverityInfo,
	SeverityCritical, SeverityHigh, SeverityMedium, SeverityLow,
}

// ValidRuleTypes enumerates recognized security rule sub-types.
var ValidRuleTypes = []string{
	RuleTypeSecret, RuleTypePermission, RuleTypeVulnerability, RuleTypeCompliance,
}

// Config holds workspace configuration loaded from praetorian.yaml.
type Config struct {
	Files        []string       `yaml:"files"          json:"files,omitempty"`
	IgnoreKeys   []string       `yaml:"ignore_keys"    json:"ignore_keys,omitempty"`
	RequiredKeys []string       `yaml:"required_keys"  json:"required_keys,omitempty"`
	Strict       bool           `yaml:"strict"         json:"strict,omitempty"`
	Schemas      []SchemaRule   `yaml:"schemas"        json:"schemas,omitempty"`
	Patterns     []PatternRule  `yaml:"patterns"       json:"patterns,omitempty"`
	Security     SecurityConfig `yaml:"security"       json:"security,omitempty"`
}

// SecurityConfig selects the security rule set for a workspace.
type SecurityConfig struct {
	UseDefaults bool           `yaml:"use_defaults" json:"use_defaults,omitempty"`
	Rules       []SecurityRule `yaml:"rules"        json:"rules,omitempty"`
}

// DefaultConfig returns a config that compares nothing and enables the
// built-in security rules.
func DefaultConfig() Config {
	return Config{
		Strict:   true,
		Security: SecurityConfig{UseDefaults: true},
	}
}

// Validate checks the config for authoring mistakes and returns a
// descriptive error. Regex validity is deliberately not checked here:
// a bad pattern degrades to a finding at evaluation time so one bad
// rule never blocks loading the rest (the health command reports them).
func (c Config) Validate() error {
	for i, r := range c.Schemas {
		if r.ID == "" {
			return fmt.Errorf("schemas[%d]: id must not be empty", i)
		}
		if err := validSeverity(r.Severity); err != nil {
			return fmt.Errorf("schema rule %q: %w", r.ID, err)
		}
	}

	for i, r := range c.Patterns {
		if r.ID == "" {
			return fmt.Errorf("patterns[%d]: id must not be empty", i)
		}
		if r.Pattern == "" {
			return fmt.Errorf("pattern rule %q: pattern must not be empty", r.ID)
		}
		if err := validSeverity(r.Severity); err != nil {
			return fmt.Errorf("pattern rule %q: %w", r.ID, err)
		}
	}

	for i, r := range c.Security.Rules {
		if r.ID == "" {
			return fmt.Errorf("security.rules[%d]: id must not be empty", i)
		}
		if !isValidRuleType(r.Type) {
			return fmt.Errorf("security rule %q: unknown type %q (valid: secret, permission, vulnerability, compliance)", r.ID, r.Type)
		}
		if err := validSeverity(r.Severity); err != nil {
			return fmt.Errorf("security rule %q: %w", r.ID, err)
		}
	}

	return nil
}

// CompileIssues reports every authored regex that does not compile.
// Used by the health command; evaluation degrades these to findings.
func (c Config) CompileIssues() []string {
	var issues []string
	check := func(where, pattern string) {
		if pattern == "" {
			return
		}
		if _, err := regexp.Compile(pattern); err != nil {
			issues = append(issues, fmt.Sprintf("%s: %v", where, err))
		}
	}

	for _, r := range c.Patterns {
		check(fmt.Sprintf("pattern rule %q", r.ID), r.Pattern)
	}
	for _, r := range c.Schemas {
		if r.Schema != nil {
			collectSchemaPatterns(fmt.Sprintf("schema rule %q", r.ID), r.Schema, check)
		}
	}
	for _, r := range c.Security.Rules {
		for _, p := range r.Patterns {
			check(fmt.Sprintf("security rule %q pattern", r.ID), p)
		}
		for _, p := range r.ExcludePatterns {
			check(fmt.Sprintf("security rule %q exclude pattern", r.ID), p)
		}
		for _, req := range r.Requirements {
			check(fmt.Sprintf("security rule %q requirement %q", r.ID, req.ID), req.Pattern)
		}
	}

	return issues
}

func collectSchemaPatterns(where string, s *Schema, check func(where, pattern string)) {
	check(where, s.Pattern)
	for name, prop := range s.Properties {
		collectSchemaPatterns(where+"."+name, prop, check)
	}
	if s.Items != nil {
		if s.Items.Single != nil {
			collectSchemaPatterns(where+"[]", s.Items.Single, check)
		}
		for i, t := range s.Items.Tuple {
			collectSchemaPatterns(fmt.Sprintf("%s[%d]", where, i), t, check)
		}
	}
}

func validSeverity(s string) error {
	if s == "" {
		return nil
	}
	for _, v := range ValidSeverities {
		if s == v {
			return nil
		}
	}
	return fmt.Errorf("unknown severity %q (valid: error, warning, info, critical, high, medium, low)", s)
}

func isValidRuleType(t string) bool {
	for _, v := range ValidRuleTypes {
		if t == v {
			return true
		}
	}
	return false
}
