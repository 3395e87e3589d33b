package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/syntropysoft/praetorian-go/internal/domain"
)

const fileName = "praetorian.yaml"

// YAMLLoader implements domain.ConfigLoader by reading praetorian.yaml.
type YAMLLoader struct{}

// New creates a YAMLLoader.
func New() *YAMLLoader { return &YAMLLoader{} }

// Load reads praetorian.yaml from workspacePath.
// Returns DefaultConfig if the file does not exist.
func (l *YAMLLoader) Load(workspacePath string) (domain.Config, error) {
	data, err := os.ReadFile(filepath.Join(workspacePath, fileName))
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return domain.DefaultConfig(), nil
		}
		return domain.Config{}, err
	}

	// Unmarshal on top of the defaults so omitted booleans (strict,
	// security.use_defaults) keep their default value of true.
	cfg := domain.DefaultConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return domain.Config{}, fmt.Errorf("parsing %s: %w", fileName, err)
	}

	if err := cfg.Validate(); err != nil {
		return domain.Config{}, fmt.Errorf("invalid %s: %w", fileName, err)
	}

	return cfg, nil
}
