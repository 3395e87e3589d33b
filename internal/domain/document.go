package domain

import "io/fs"

// ConfigDocument is a parsed configuration file. Content is the decoded
// tree (mappings, arrays, scalars); the core never parses YAML/JSON
// itself and treats documents as read-only.
type ConfigDocument struct {
	Path    string         `json:"path"`
	Format  string         `json:"format"` // "yaml" or "json"
	Content map[string]any `json:"content"`
	Mode    fs.FileMode    `json:"-"` // permission bits for security checks
	Raw     string         `json:"-"` // raw text for secret/compliance scans
}

const (
	FormatYAML = "yaml"
	FormatJSON = "json"
)
