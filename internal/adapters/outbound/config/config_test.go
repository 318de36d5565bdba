package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/TeiNam/oracle-migration-analyzer-sub002/internal/adapters/outbound/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, root, content string) {
	t.Helper()
	require.NoError(t, os.WriteFile(filepath.Join(root, ".oramigrate.yaml"), []byte(content), 0o644))
}

func TestLoad_MissingFileYieldsDefaults(t *testing.T) {
	cfg, err := config.New().Load(t.TempDir())
	require.NoError(t, err)
	assert.Equal(t, "postgresql", cfg.Target)
	assert.Empty(t, cfg.ExcludePaths)
	assert.True(t, cfg.HistoryEnabled())
}

func TestLoad_FullConfig(t *testing.T) {
	root := t.TempDir()
	writeConfig(t, root, `target: mysql
exclude_paths:
  - legacy
  - archive/2019
history: false
`)

	cfg, err := config.New().Load(root)
	require.NoError(t, err)
	assert.Equal(t, "mysql", cfg.Target)
	assert.Equal(t, []string{"legacy", "archive/2019"}, cfg.ExcludePaths)
	assert.False(t, cfg.HistoryEnabled())
}

func TestLoad_EmptyTargetDefaulted(t *testing.T) {
	root := t.TempDir()
	writeConfig(t, root, "exclude_paths: [legacy]\n")

	cfg, err := config.New().Load(root)
	require.NoError(t, err)
	assert.Equal(t, "postgresql", cfg.Target)
}

func TestLoad_InvalidTarget(t *testing.T) {
	root := t.TempDir()
	writeConfig(t, root, "target: mariadb\n")

	_, err := config.New().Load(root)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "mariadb")
}

func TestLoad_MalformedYAML(t *testing.T) {
	root := t.TempDir()
	writeConfig(t, root, "target: [unclosed\n")

	_, err := config.New().Load(root)
	assert.Error(t, err)
}
