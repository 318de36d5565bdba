// Package config loads the per-project analyzer configuration.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/TeiNam/oracle-migration-analyzer-sub002/internal/domain"
	"gopkg.in/yaml.v3"
)

const fileName = ".oramigrate.yaml"

// YAMLLoader implements domain.ConfigLoader by reading .oramigrate.yaml.
type YAMLLoader struct{}

func New() *YAMLLoader { return &YAMLLoader{} }

// Load reads .oramigrate.yaml from rootPath. A missing file yields the
// defaults so projects without configuration keep working.
func (l *YAMLLoader) Load(rootPath string) (domain.ProjectConfig, error) {
	data, err := os.ReadFile(filepath.Join(rootPath, fileName))
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return domain.DefaultConfig(), nil
		}
		return domain.ProjectConfig{}, err
	}

	var cfg domain.ProjectConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return domain.ProjectConfig{}, fmt.Errorf("parsing %s: %w", fileName, err)
	}
	if err := cfg.Validate(); err != nil {
		return domain.ProjectConfig{}, fmt.Errorf("invalid %s: %w", fileName, err)
	}
	if cfg.Target == "" {
		cfg.Target = domain.DefaultConfig().Target
	}
	return cfg, nil
}
