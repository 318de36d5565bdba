package application_test

import (
	"testing"

	"github.com/TeiNam/oracle-migration-analyzer-sub002/internal/application"
	"github.com/TeiNam/oracle-migration-analyzer-sub002/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAnalyzeSQL_EmptyInput(t *testing.T) {
	a := application.NewAnalyzer()

	_, err := a.AnalyzeSQL("", domain.PostgreSQL)
	assert.ErrorIs(t, err, domain.ErrEmptyInput)

	_, err = a.AnalyzeSQL("   \n\t  ", domain.PostgreSQL)
	assert.ErrorIs(t, err, domain.ErrEmptyInput)
}

func TestAnalyzePLSQL_EmptyInput(t *testing.T) {
	_, err := application.NewAnalyzer().AnalyzePLSQL("  ", domain.MySQL)
	assert.ErrorIs(t, err, domain.ErrEmptyInput)
}

func TestAnalyze_InvalidDialect(t *testing.T) {
	a := application.NewAnalyzer()

	_, err := a.AnalyzeSQL("SELECT 1 FROM dual", domain.TargetDialect("sqlite"))
	assert.ErrorIs(t, err, domain.ErrInvalidDialect)

	_, err = a.AnalyzePLSQL("CREATE PROCEDURE p IS BEGIN NULL; END;", domain.TargetDialect(""))
	assert.ErrorIs(t, err, domain.ErrInvalidDialect)
}

func TestAnalyzeSQL_SimpleSelect(t *testing.T) {
	res, err := application.NewAnalyzer().AnalyzeSQL("SELECT * FROM users", domain.PostgreSQL)
	require.NoError(t, err)

	assert.Equal(t, 0, res.Features.JoinCount)
	assert.True(t, res.Features.HasFullScanRisk)
	assert.Equal(t, domain.VerySimple, res.Level)
	assert.Equal(t, "automatic conversion", res.Recommendation)
}

func TestAnalyzeSQL_JoinsDetectedThroughPipeline(t *testing.T) {
	q := `SELECT e.name, d.name
		FROM employees e
		JOIN departments d ON e.dept_id = d.id
		JOIN locations l ON d.loc_id = l.id
		WHERE e.active = 1`

	res, err := application.NewAnalyzer().AnalyzeSQL(q, domain.PostgreSQL)
	require.NoError(t, err)
	assert.Equal(t, 2, res.Features.JoinCount)
	assert.False(t, res.Features.HasFullScanRisk)
}

func TestAnalyzeSQL_Idempotent(t *testing.T) {
	q := "SELECT NVL(a, 0) FROM t WHERE b = 1"
	a := application.NewAnalyzer()

	first, err := a.AnalyzeSQL(q, domain.MySQL)
	require.NoError(t, err)
	second, err := a.AnalyzeSQL(q, domain.MySQL)
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

func TestAnalyzePLSQL_PackageBody(t *testing.T) {
	src := `CREATE OR REPLACE PACKAGE BODY billing AS
  PROCEDURE charge(p_id NUMBER) IS
  BEGIN
    UPDATE accounts SET balance = balance - 1 WHERE id = p_id;
    COMMIT;
  END charge;
END billing;`

	res, err := application.NewAnalyzer().AnalyzePLSQL(src, domain.PostgreSQL)
	require.NoError(t, err)

	assert.Equal(t, domain.ObjectPackage, res.ObjectType)
	assert.Equal(t, 7.0, res.BaseScore)
	assert.True(t, res.Features.TransactionControl.Commit)
}

func TestAnalyzePLSQL_MySQLNeverScoresBelowPostgres(t *testing.T) {
	src := `CREATE OR REPLACE PROCEDURE sync IS
BEGIN
  FOR r IN (SELECT id FROM src) LOOP
    EXECUTE IMMEDIATE 'INSERT INTO dst VALUES (' || r.id || ')';
  END LOOP;
  COMMIT;
END;`
	a := application.NewAnalyzer()

	pg, err := a.AnalyzePLSQL(src, domain.PostgreSQL)
	require.NoError(t, err)
	my, err := a.AnalyzePLSQL(src, domain.MySQL)
	require.NoError(t, err)

	assert.GreaterOrEqual(t, my.TotalScore, pg.TotalScore)
}

func TestAnalyzePLSQL_UnrecognizedSource(t *testing.T) {
	_, err := application.NewAnalyzer().AnalyzePLSQL("GRANT SELECT ON t TO app", domain.PostgreSQL)
	require.Error(t, err)

	var objErr *domain.UnrecognizedObjectTypeError
	assert.ErrorAs(t, err, &objErr)
}
