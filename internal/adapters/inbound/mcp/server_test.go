package mcp_test

import (
	"testing"

	mcpadapter "github.com/TeiNam/oracle-migration-analyzer-sub002/internal/adapters/inbound/mcp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewServer(t *testing.T) {
	s := mcpadapter.NewServer(".", "test")
	require.NotNil(t, s)
}

func TestServerRegistersTools(t *testing.T) {
	s := mcpadapter.NewServer(".", "test")
	require.NotNil(t, s)

	tools := s.ListTools()
	require.NotNil(t, tools)

	expectedTools := []string{
		"oramigrate_analyze_sql",
		"oramigrate_analyze_plsql",
		"oramigrate_analyze_project",
	}

	for _, name := range expectedTools {
		_, exists := tools[name]
		assert.True(t, exists, "tool %q should be registered", name)
	}

	assert.Len(t, tools, len(expectedTools))
}
