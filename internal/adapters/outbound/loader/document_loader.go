package loader

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/syntropysoft/praetorian-go/internal/domain"
)

// FileLoader implements domain.DocumentLoader by reading YAML and JSON
// files from disk.
type FileLoader struct{}

func New() *FileLoader {
	return &FileLoader{}
}

// Load reads every path into a ConfigDocument. Paths are returned in
// the order given; a single unreadable or unparsable file fails the
// whole load so validation never runs against a partial set.
func (l *FileLoader) Load(paths []string) ([]domain.ConfigDocument, error) {
	docs := make([]domain.ConfigDocument, 0, len(paths))
	for _, path := range paths {
		doc, err := loadOne(path)
		if err != nil {
			return nil, err
		}
		docs = append(docs, doc)
	}
	return docs, nil
}

func loadOne(path string) (domain.ConfigDocument, error) {
	format, err := formatFor(path)
	if err != nil {
		return domain.ConfigDocument{}, err
	}

	info, err := os.Stat(path)
	if err != nil {
		return domain.ConfigDocument{}, fmt.Errorf("reading %s: %w", path, err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return domain.ConfigDocument{}, fmt.Errorf("reading %s: %w", path, err)
	}

	content, err := parse(data, format)
	if err != nil {
		return domain.ConfigDocument{}, fmt.Errorf("parsing %s: %w", path, err)
	}

	return domain.ConfigDocument{
		Path:    path,
		Format:  format,
		Content: content,
		Mode:    info.Mode().Perm(),
		Raw:     string(data),
	}, nil
}

func formatFor(path string) (string, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return domain.FormatYAML, nil
	case ".json":
		return domain.FormatJSON, nil
	default:
		return "", fmt.Errorf("unsupported file format %q (want .yaml, .yml or .json)", filepath.Ext(path))
	}
}

func parse(data []byte, format string) (map[string]any, error) {
	// An empty document is a valid document with no keys.
	if len(strings.TrimSpace(string(data))) == 0 {
		return map[string]any{}, nil
	}

	var content map[string]any
	switch format {
	case domain.FormatJSON:
		if err := json.Unmarshal(data, &content); err != nil {
			return nil, err
		}
	default:
		if err := yaml.Unmarshal(data, &content); err != nil {
			return nil, err
		}
	}

	if content == nil {
		content = map[string]any{}
	}
	return content, nil
}
