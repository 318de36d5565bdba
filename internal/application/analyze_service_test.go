package application_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/TeiNam/oracle-migration-analyzer-sub002/internal/adapters/outbound/scanner"
	"github.com/TeiNam/oracle-migration-analyzer-sub002/internal/application"
	"github.com/TeiNam/oracle-migration-analyzer-sub002/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, root, rel, content string) {
	t.Helper()
	path := filepath.Join(root, rel)
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
}

func newProjectDir(t *testing.T) string {
	t.Helper()
	root := t.TempDir()
	writeFile(t, root, "queries/report.sql", "SELECT id, name FROM users WHERE active = 1")
	writeFile(t, root, "plsql/pay_pkg.pkb", `CREATE OR REPLACE PACKAGE BODY pay_pkg AS
  PROCEDURE run IS
  BEGIN
    NULL;
  END run;
END pay_pkg;`)
	writeFile(t, root, "plsql/broken.pkb", "this is not plsql at all")
	writeFile(t, root, "ddl.sql", "CREATE OR REPLACE PROCEDURE touch IS BEGIN NULL; END;")
	writeFile(t, root, "notes.txt", "not a source file")
	return root
}

func TestAnalyzeProject(t *testing.T) {
	root := newProjectDir(t)
	svc := application.NewAnalyzeService(scanner.New())

	batch, err := svc.AnalyzeProject(context.Background(), root, domain.PostgreSQL)
	require.NoError(t, err)

	require.Len(t, batch.Files, 4)
	assert.Equal(t, 4, batch.Summary.TotalFiles)
	assert.Equal(t, 1, batch.Summary.Failed)

	// Results come back sorted by path regardless of worker completion order.
	paths := make([]string, 0, len(batch.Files))
	for _, f := range batch.Files {
		paths = append(paths, f.Path)
	}
	assert.Equal(t, []string{
		"ddl.sql",
		filepath.Join("plsql", "broken.pkb"),
		filepath.Join("plsql", "pay_pkg.pkb"),
		filepath.Join("queries", "report.sql"),
	}, paths)
}

func TestAnalyzeProject_SQLFileWithDDLTakesPLSQLPipeline(t *testing.T) {
	root := newProjectDir(t)
	svc := application.NewAnalyzeService(scanner.New())

	batch, err := svc.AnalyzeProject(context.Background(), root, domain.PostgreSQL)
	require.NoError(t, err)

	var ddl, query *domain.FileResult
	for i := range batch.Files {
		switch batch.Files[i].Path {
		case "ddl.sql":
			ddl = &batch.Files[i]
		case filepath.Join("queries", "report.sql"):
			query = &batch.Files[i]
		}
	}
	require.NotNil(t, ddl)
	require.NotNil(t, query)

	assert.Equal(t, domain.SourcePLSQL, ddl.Kind)
	require.NotNil(t, ddl.PLSQL)
	assert.Equal(t, domain.ObjectProcedure, ddl.PLSQL.ObjectType)

	assert.Equal(t, domain.SourceSQL, query.Kind)
	assert.NotNil(t, query.SQL)
}

func TestAnalyzeProject_PerFileFailuresDoNotAbort(t *testing.T) {
	root := newProjectDir(t)
	svc := application.NewAnalyzeService(scanner.New())

	batch, err := svc.AnalyzeProject(context.Background(), root, domain.MySQL)
	require.NoError(t, err)

	var broken *domain.FileResult
	for i := range batch.Files {
		if batch.Files[i].Path == filepath.Join("plsql", "broken.pkb") {
			broken = &batch.Files[i]
		}
	}
	require.NotNil(t, broken)
	assert.Contains(t, broken.Err, "unrecognized")
	assert.Nil(t, broken.PLSQL)
}

func TestAnalyzeProject_InvalidDialect(t *testing.T) {
	svc := application.NewAnalyzeService(scanner.New())
	_, err := svc.AnalyzeProject(context.Background(), t.TempDir(), domain.TargetDialect("none"))
	assert.ErrorIs(t, err, domain.ErrInvalidDialect)
}

func TestAnalyzeProject_Cancellation(t *testing.T) {
	root := newProjectDir(t)
	svc := application.NewAnalyzeService(scanner.New())

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := svc.AnalyzeProject(ctx, root, domain.PostgreSQL)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestRunEntries(t *testing.T) {
	ts := time.Date(2026, 8, 25, 10, 0, 0, 0, time.UTC)
	batch := &domain.BatchResult{
		Target:    domain.MySQL,
		Timestamp: ts,
		Files: []domain.FileResult{
			{Path: "a.sql", Kind: domain.SourceSQL, SQL: &domain.SQLComplexityResult{NormalizedScore: 1.5, Level: domain.Simple}},
			{Path: "b.pkb", Kind: domain.SourcePLSQL, PLSQL: &domain.PLSQLComplexityResult{
				ObjectType: domain.ObjectPackage, NormalizedScore: 6.0, Level: domain.Complex,
			}},
			{Path: "bad.pkb", Kind: domain.SourcePLSQL, Err: "unreadable"},
		},
	}

	entries := application.RunEntries(batch)
	require.Len(t, entries, 2, "failed files are not persisted")

	assert.Equal(t, ts.Format(time.RFC3339), entries[0].Timestamp)
	assert.Equal(t, "a.sql", entries[0].Path)
	assert.Equal(t, "mysql", entries[0].Target)
	assert.Equal(t, "PACKAGE", entries[1].ObjectType)
	assert.Equal(t, 6.0, entries[1].Score)
}

func TestSniffKind(t *testing.T) {
	assert.Equal(t, domain.SourceSQL, application.SniffKind("SELECT * FROM t"))
	assert.Equal(t, domain.SourcePLSQL, application.SniffKind("CREATE OR REPLACE PACKAGE p AS END;"))
	assert.Equal(t, domain.SourcePLSQL, application.SniffKind("create procedure p is begin null; end;"))
	assert.Equal(t, domain.SourcePLSQL, application.SniffKind("DECLARE v NUMBER; BEGIN NULL; END;"))
	assert.Equal(t, domain.SourceSQL, application.SniffKind("UPDATE t SET a = 1"))
}
