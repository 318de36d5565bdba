package analyze_test

import (
	"testing"

	"github.com/TeiNam/oracle-migration-analyzer-sub002/internal/domain"
	"github.com/TeiNam/oracle-migration-analyzer-sub002/internal/domain/analyze"
	"github.com/stretchr/testify/assert"
)

func detect(raw string) *domain.SQLFeatureSet {
	return analyze.DetectSQL(analyze.Normalize(raw))
}

func TestDetectSQL_BareSelect(t *testing.T) {
	fs := detect("SELECT * FROM users")

	assert.Equal(t, 0, fs.JoinCount)
	assert.Equal(t, 0, fs.SubqueryDepth)
	assert.Equal(t, 0, fs.CTECount)
	assert.True(t, fs.HasFullScanRisk, "no WHERE clause means full-scan risk")
	assert.False(t, fs.HasCountCall)
	assert.Empty(t, fs.OracleSyntax)
}

func TestDetectSQL_ExplicitJoins(t *testing.T) {
	fs := detect(`SELECT e.id FROM employees e
		JOIN departments d ON e.dept_id = d.id
		JOIN locations l ON d.loc_id = l.id
		WHERE e.active = 1`)

	assert.Equal(t, 2, fs.JoinCount)
	assert.False(t, fs.HasFullScanRisk)
}

func TestDetectSQL_OuterJoinKeywordCountsOnce(t *testing.T) {
	fs := detect("SELECT * FROM a LEFT OUTER JOIN b ON a.id = b.id")
	assert.Equal(t, 1, fs.JoinCount)
}

func TestDetectSQL_ImplicitCommaJoins(t *testing.T) {
	// Select-list commas are not joins; FROM-clause commas are.
	fs := detect("SELECT x, y, z FROM t, u WHERE t.id = u.id")
	assert.Equal(t, 1, fs.JoinCount)
}

func TestDetectSQL_SubqueryDepth(t *testing.T) {
	fs := detect(`SELECT * FROM t WHERE a IN
		(SELECT b FROM u WHERE c IN (SELECT d FROM v))`)
	assert.Equal(t, 2, fs.SubqueryDepth)
}

func TestDetectSQL_SiblingSubqueriesDoNotStack(t *testing.T) {
	fs := detect("SELECT (SELECT 1 FROM dual), (SELECT 2 FROM dual) FROM t")
	assert.Equal(t, 1, fs.SubqueryDepth)
}

func TestDetectSQL_CTEs(t *testing.T) {
	fs := detect(`WITH a AS (SELECT 1 FROM dual),
		b AS (SELECT 2 FROM dual)
		SELECT * FROM a JOIN b ON 1 = 1`)

	assert.Equal(t, 2, fs.CTECount)
	assert.Equal(t, 1, fs.JoinCount, "CTE-list commas are not FROM-clause joins")
}

func TestDetectSQL_SetOperators(t *testing.T) {
	fs := detect(`SELECT a FROM t UNION ALL
		SELECT b FROM u UNION
		SELECT c FROM v`)
	assert.Equal(t, 2, fs.SetOperatorCount)
}

func TestDetectSQL_AnalyticVersusAggregate(t *testing.T) {
	fs := detect(`SELECT dept, SUM(sal) total,
		ROW_NUMBER() OVER (ORDER BY sal DESC) rn
		FROM emp GROUP BY dept`)

	assert.Equal(t, 1, fs.AnalyticFuncCount)
	assert.Equal(t, 1, fs.AggregateFuncCount)
	assert.True(t, fs.HasGroupBy)
}

func TestDetectSQL_AggregateWithOverIsAnalyticOnly(t *testing.T) {
	fs := detect("SELECT SUM(sal) OVER (PARTITION BY dept) FROM emp")
	assert.Equal(t, 1, fs.AnalyticFuncCount)
	assert.Equal(t, 0, fs.AggregateFuncCount)
}

func TestDetectSQL_HierarchicalSyntax(t *testing.T) {
	fs := detect(`SELECT employee_id, LEVEL FROM employees
		START WITH manager_id IS NULL
		CONNECT BY PRIOR employee_id = manager_id`)

	assert.Contains(t, fs.OracleSyntax, "CONNECT BY")
	assert.Contains(t, fs.OracleSyntax, "START WITH")
	assert.Contains(t, fs.OracleSyntax, "PRIOR")
	assert.Contains(t, fs.OracleSyntax, "LEVEL")
}

func TestDetectSQL_LegacyOuterJoinOperator(t *testing.T) {
	fs := detect("SELECT * FROM a, b WHERE a.id = b.id(+)")
	assert.Contains(t, fs.OracleSyntax, "(+)")
}

func TestDetectSQL_OracleFunctionsSortedAndBoundarySafe(t *testing.T) {
	fs := detect("SELECT TO_CHAR(hiredate, 'YYYY'), NVL(comm, 0) FROM emp")
	assert.Equal(t, []string{"NVL", "TO_CHAR"}, fs.OracleFunctions)

	// NVL2 must not double-report as NVL.
	fs = detect("SELECT NVL2(comm, 1, 0) FROM emp")
	assert.Equal(t, []string{"NVL2"}, fs.OracleFunctions)
}

func TestDetectSQL_HintsOnlyInsideHintBlocks(t *testing.T) {
	fs := detect("SELECT /*+ FULL(e) INDEX(d idx1) */ * FROM emp e, dept d WHERE e.dept_id = d.id")
	assert.ElementsMatch(t, []string{"FULL", "INDEX"}, fs.Hints)

	// The same words outside a hint block are plain identifiers.
	fs = detect("SELECT full_name FROM person_index WHERE id = 1")
	assert.Empty(t, fs.Hints)
}

func TestDetectSQL_HintOccurrencesCountIndividually(t *testing.T) {
	fs := detect("SELECT /*+ USE_NL(a b) USE_NL(b c) */ * FROM a, b, c WHERE a.id = b.id")
	assert.Equal(t, []string{"USE_NL", "USE_NL"}, fs.Hints)
}

func TestDetectSQL_WherePenalties(t *testing.T) {
	fs := detect(`SELECT DISTINCT name FROM t
		WHERE UPPER(name) LIKE '%smith%'
		AND (a = 1 OR b = 2 OR c = 3 OR d = 4)`)

	assert.True(t, fs.Penalties.Distinct)
	assert.True(t, fs.Penalties.LikePattern)
	assert.True(t, fs.Penalties.OrConditions)
	assert.True(t, fs.Penalties.FunctionInWhere)
}

func TestDetectSQL_PenaltiesStayOff(t *testing.T) {
	fs := detect("SELECT name FROM t WHERE id = 1 OR id = 2")

	assert.False(t, fs.Penalties.Distinct)
	assert.False(t, fs.Penalties.LikePattern)
	assert.False(t, fs.Penalties.OrConditions, "fewer than three ORs")
	assert.False(t, fs.Penalties.FunctionInWhere)
}

func TestDetectSQL_DerivedTables(t *testing.T) {
	fs := detect(`SELECT * FROM (SELECT id FROM t) x, (SELECT id FROM u) y
		WHERE x.id = y.id`)

	assert.Equal(t, 2, fs.DerivedTableCount)
	assert.Equal(t, 1, fs.JoinCount)
}

func TestDetectSQL_KeepClause(t *testing.T) {
	fs := detect("SELECT MAX(sal) KEEP (DENSE_RANK FIRST ORDER BY hiredate) FROM emp")
	assert.True(t, fs.HasKeepClause)
	assert.Equal(t, 1, fs.AggregateFuncCount)
}

func TestDetectSQL_Deterministic(t *testing.T) {
	q := "SELECT NVL(a, 0), COUNT(*) FROM t, u WHERE t.id = u.id GROUP BY a"
	assert.Equal(t, detect(q), detect(q))
}
