package domain

import (
	"fmt"
	"io/fs"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

// SchemaRule binds a schema descriptor to a key path inside the
// compared documents. An empty Key targets the document root.
type SchemaRule struct {
	ID       string  `yaml:"id" json:"id"`
	Name     string  `yaml:"name,omitempty" json:"name,omitempty"`
	Key      string  `yaml:"key,omitempty" json:"key,omitempty"`
	Severity string  `yaml:"severity,omitempty" json:"severity,omitempty"`
	Enabled  bool    `yaml:"enabled" json:"enabled"`
	Schema   *Schema `yaml:"schema,omitempty" json:"schema,omitempty"`
}

// PatternRule is a named regular expression applied to an extracted
// value or the whole document text.
type PatternRule struct {
	ID          string `yaml:"id" json:"id"`
	Name        string `yaml:"name,omitempty" json:"name,omitempty"`
	Description string `yaml:"description,omitempty" json:"description,omitempty"`
	Key         string `yaml:"key,omitempty" json:"key,omitempty"`
	Severity    string `yaml:"severity,omitempty" json:"severity,omitempty"`
	Enabled     bool   `yaml:"enabled" json:"enabled"`
	Pattern     string `yaml:"pattern" json:"pattern"`
}

// Rules are enabled unless the author says otherwise.
func (r *SchemaRule) UnmarshalYAML(node *yaml.Node) error {
	type plain SchemaRule
	p := plain{Enabled: true}
	if err := node.Decode(&p); err != nil {
		return err
	}
	*r = SchemaRule(p)
	return nil
}

func (r *PatternRule) UnmarshalYAML(node *yaml.Node) error {
	type plain PatternRule
	p := plain{Enabled: true}
	if err := node.Decode(&p); err != nil {
		return err
	}
	*r = PatternRule(p)
	return nil
}

// Security rule sub-types.
const (
	RuleTypeSecret        = "secret"
	RuleTypePermission    = "permission"
	RuleTypeVulnerability = "vulnerability"
	RuleTypeCompliance    = "compliance"
)

// SecurityRule describes one security/compliance check. Only the
// fields matching Type are interpreted by the evaluator.
type SecurityRule struct {
	ID          string `yaml:"id" json:"id"`
	Name        string `yaml:"name,omitempty" json:"name,omitempty"`
	Description string `yaml:"description,omitempty" json:"description,omitempty"`
	Type        string `yaml:"type" json:"type"`
	Severity    string `yaml:"severity,omitempty" json:"severity,omitempty"`
	Enabled     bool   `yaml:"enabled" json:"enabled"`

	// secret / vulnerability
	Patterns        []string `yaml:"patterns,omitempty" json:"patterns,omitempty"`
	ExcludePatterns []string `yaml:"exclude_patterns,omitempty" json:"exclude_patterns,omitempty"`

	// permission
	FilePattern    string    `yaml:"file_pattern,omitempty" json:"file_pattern,omitempty"`
	MaxPermissions OctalMode `yaml:"max_permissions,omitempty" json:"max_permissions,omitempty"`
	MinPermissions OctalMode `yaml:"min_permissions,omitempty" json:"min_permissions,omitempty"`

	// compliance
	Standard     string                  `yaml:"standard,omitempty" json:"standard,omitempty"`
	Requirements []ComplianceRequirement `yaml:"requirements,omitempty" json:"requirements,omitempty"`
}

func (r *SecurityRule) UnmarshalYAML(node *yaml.Node) error {
	type plain SecurityRule
	p := plain{Enabled: true}
	if err := node.Decode(&p); err != nil {
		return err
	}
	*r = SecurityRule(p)
	return nil
}

// ComplianceRequirement pairs a regulatory requirement id with the
// pattern whose presence satisfies it.
type ComplianceRequirement struct {
	ID      string `yaml:"id" json:"id"`
	Pattern string `yaml:"pattern" json:"pattern"`
}

// SecurityContext carries the file facts permission rules check against.
type SecurityContext struct {
	FilePath string
	Mode     fs.FileMode
}

// OctalMode is a permission bitmask authored as an octal string
// ("600", "0644") in YAML, stored as the parsed mode.
type OctalMode uint32

func (m *OctalMode) UnmarshalYAML(node *yaml.Node) error {
	s := strings.TrimPrefix(strings.TrimSpace(node.Value), "0o")
	if s == "" {
		*m = 0
		return nil
	}
	v, err := strconv.ParseUint(strings.TrimPrefix(s, "0"), 8, 32)
	if err != nil {
		return fmt.Errorf("invalid octal permission %q: %w", node.Value, err)
	}
	*m = OctalMode(v)
	return nil
}

func (m OctalMode) String() string { return strconv.FormatUint(uint64(m), 8) }

// Schema is a JSON-Schema-like descriptor. Only the subset the
// validation pipeline supports is modeled; $ref and combinators are
// out of scope.
type Schema struct {
	Type                 string             `yaml:"type,omitempty" json:"type,omitempty"`
	Format               string             `yaml:"format,omitempty" json:"format,omitempty"`
	Pattern              string             `yaml:"pattern,omitempty" json:"pattern,omitempty"`
	MinLength            *int               `yaml:"minLength,omitempty" json:"minLength,omitempty"`
	MaxLength            *int               `yaml:"maxLength,omitempty" json:"maxLength,omitempty"`
	Minimum              *float64           `yaml:"minimum,omitempty" json:"minimum,omitempty"`
	Maximum              *float64           `yaml:"maximum,omitempty" json:"maximum,omitempty"`
	Enum                 []any              `yaml:"enum,omitempty" json:"enum,omitempty"`
	Properties           map[string]*Schema `yaml:"properties,omitempty" json:"properties,omitempty"`
	Required             []string           `yaml:"required,omitempty" json:"required,omitempty"`
	AdditionalProperties *bool              `yaml:"additionalProperties,omitempty" json:"additionalProperties,omitempty"`
	Items                *SchemaItems       `yaml:"items,omitempty" json:"items,omitempty"`
}

// SchemaItems holds either a single element schema or a positional
// tuple of schemas, matching JSON Schema's two "items" forms.
type SchemaItems struct {
	Single *Schema   `json:"single,omitempty"`
	Tuple  []*Schema `json:"tuple,omitempty"`
}

func (it *SchemaItems) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind == yaml.SequenceNode {
		return node.Decode(&it.Tuple)
	}
	var s Schema
	if err := node.Decode(&s); err != nil {
		return err
	}
	it.Single = &s
	return nil
}

// At returns the schema for element index i. Tuple mode reuses the
// last schema for trailing indices beyond the tuple length.
func (it *SchemaItems) At(i int) *Schema {
	if it.Single != nil {
		return it.Single
	}
	if len(it.Tuple) == 0 {
		return nil
	}
	if i >= len(it.Tuple) {
		return it.Tuple[len(it.Tuple)-1]
	}
	return it.Tuple[i]
}
