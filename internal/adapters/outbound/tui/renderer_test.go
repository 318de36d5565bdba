package tui_test

import (
	"testing"
	"time"

	"github.com/TeiNam/oracle-migration-analyzer-sub002/internal/adapters/outbound/tui"
	"github.com/TeiNam/oracle-migration-analyzer-sub002/internal/domain"
	"github.com/stretchr/testify/assert"
)

func TestRenderSQL(t *testing.T) {
	r := &domain.SQLComplexityResult{
		Target:          domain.PostgreSQL,
		NormalizedScore: 2.4,
		Level:           domain.Simple,
		Recommendation:  "automatic conversion with review",
		Features:        domain.SQLFeatureSet{OracleFunctions: []string{"NVL", "DECODE"}},
	}
	out := tui.RenderSQL(r)

	assert.Contains(t, out, "structural")
	assert.Contains(t, out, "conversion_difficulty")
	assert.Contains(t, out, "NVL, DECODE")
	assert.Contains(t, out, "automatic conversion with review")
}

func TestRenderPLSQL_MySQLShowsConstraintBars(t *testing.T) {
	r := &domain.PLSQLComplexityResult{
		Target:         domain.MySQL,
		ObjectType:     domain.ObjectPackage,
		Level:          domain.Complex,
		Recommendation: "manual conversion by a migration engineer",
	}
	out := tui.RenderPLSQL(r)
	assert.Contains(t, out, "mysql_constraints")
	assert.Contains(t, out, "app_migration")

	r.Target = domain.PostgreSQL
	out = tui.RenderPLSQL(r)
	assert.NotContains(t, out, "mysql_constraints")
}

func TestRenderBatch(t *testing.T) {
	batch := &domain.BatchResult{
		Target:    domain.PostgreSQL,
		Timestamp: time.Now(),
		Files: []domain.FileResult{
			{Path: "ok.sql", SQL: &domain.SQLComplexityResult{NormalizedScore: 1.2, Level: domain.Simple}},
			{Path: "bad.pkb", Err: "unrecognized object type"},
		},
	}
	batch.Summary = domain.Summarize(batch.Files)

	out := tui.RenderBatch(batch)
	assert.Contains(t, out, "ok.sql")
	assert.Contains(t, out, "bad.pkb")
	assert.Contains(t, out, "unrecognized object type")
}

func TestRenderHistory(t *testing.T) {
	assert.Contains(t, tui.RenderHistory(nil), "No history recorded yet")

	entries := []domain.RunEntry{{Timestamp: "2026-08-25T10:00:00Z", Path: "a.sql", Score: 1.5, Level: "SIMPLE"}}
	out := tui.RenderHistory(entries)
	assert.Contains(t, out, "a.sql")
	assert.Contains(t, out, "2026-08-25T10:00:00Z")
}
