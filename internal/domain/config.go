package domain

import "fmt"

// ProjectConfig holds project-level configuration loaded from .oramigrate.yaml.
// It only steers the batch dispatcher and exporters; the scoring engine never
// reads configuration.
type ProjectConfig struct {
	Target       string   `yaml:"target"         json:"target,omitempty"`
	ExcludePaths []string `yaml:"exclude_paths"  json:"exclude_paths,omitempty"`
	History      *bool    `yaml:"history"        json:"history,omitempty"`
}

// DefaultConfig returns the configuration used when no .oramigrate.yaml exists.
func DefaultConfig() ProjectConfig {
	return ProjectConfig{Target: string(PostgreSQL)}
}

// Validate catches typos in user-supplied raw input before it is used.
func (c ProjectConfig) Validate() error {
	if c.Target != "" {
		if d := TargetDialect(c.Target); !d.Valid() {
			return fmt.Errorf("target must be %q or %q, got %q", PostgreSQL, MySQL, c.Target)
		}
	}
	return nil
}

// HistoryEnabled reports whether runs should be persisted. Defaults to true.
func (c ProjectConfig) HistoryEnabled() bool {
	return c.History == nil || *c.History
}
