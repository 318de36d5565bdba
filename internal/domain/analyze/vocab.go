package analyze

// Closed vocabularies for table-driven detection. All tables are built once
// at init and never mutated, so concurrent analyses can share them freely.

// oracleSyntax lists Oracle-only syntax keywords and phrases. Phrases are
// matched against the normalized text; single words against the token stream.
var oracleSyntax = []string{
	"CONNECT BY",
	"START WITH",
	"PRIOR",
	"ROWNUM",
	"ROWID",
	"LEVEL",
	"DUAL",
	"PIVOT",
	"UNPIVOT",
	"MODEL",
	"MERGE",
	"FLASHBACK",
	"RETURNING",
	"(+)",
}

// oracleFunctionNames lists the Oracle-only functions the detector reports.
// The scoring package owns the per-dialect weights keyed by these names.
var oracleFunctionNames = []string{
	"NVL", "NVL2", "DECODE",
	"TO_DATE", "TO_CHAR", "TO_NUMBER",
	"SYSDATE", "SYSTIMESTAMP",
	"ADD_MONTHS", "MONTHS_BETWEEN", "LAST_DAY", "NEXT_DAY", "TRUNC",
	"INSTR", "SUBSTR", "LPAD", "RPAD",
	"REGEXP_LIKE", "REGEXP_REPLACE", "REGEXP_SUBSTR", "REGEXP_INSTR",
	"LISTAGG", "WM_CONCAT", "XMLAGG",
	"MEDIAN", "PERCENTILE_CONT", "PERCENTILE_DISC",
	"SYS_GUID", "SYS_CONTEXT", "USERENV",
}

// oracleHints lists the recognized optimizer hint names. Hints only count
// when they appear inside a hint-comment block (/*+ ... */).
var oracleHints = map[string]bool{
	"FULL":         true,
	"INDEX":        true,
	"NO_INDEX":     true,
	"INDEX_FFS":    true,
	"USE_NL":       true,
	"USE_HASH":     true,
	"USE_MERGE":    true,
	"LEADING":      true,
	"ORDERED":      true,
	"PARALLEL":     true,
	"NO_PARALLEL":  true,
	"APPEND":       true,
	"FIRST_ROWS":   true,
	"ALL_ROWS":     true,
	"DRIVING_SITE": true,
	"PUSH_PRED":    true,
	"NO_MERGE":     true,
	"MATERIALIZE":  true,
	"CARDINALITY":  true,
	"RESULT_CACHE": true,
}

// analyticFunctions are counted only when the call is immediately followed
// by an OVER clause.
var analyticFunctions = map[string]bool{
	"ROW_NUMBER":      true,
	"RANK":            true,
	"DENSE_RANK":      true,
	"LAG":             true,
	"LEAD":            true,
	"FIRST_VALUE":     true,
	"LAST_VALUE":      true,
	"NTILE":           true,
	"CUME_DIST":       true,
	"PERCENT_RANK":    true,
	"RATIO_TO_REPORT": true,
}

// aggregateFunctions double as analytic functions when followed by OVER;
// the detector counts each call in exactly one of the two buckets.
var aggregateFunctions = map[string]bool{
	"COUNT":    true,
	"SUM":      true,
	"AVG":      true,
	"MIN":      true,
	"MAX":      true,
	"STDDEV":   true,
	"VARIANCE": true,
}

// advancedFeatures maps reported feature names to the normalized-text
// pattern that reveals them.
var advancedFeatures = []struct {
	Name    string
	Pattern string
}{
	{"PIPELINED", "PIPELINED"},
	{"REF CURSOR", "REF CURSOR"},
	{"AUTONOMOUS_TRANSACTION", "AUTONOMOUS_TRANSACTION"},
	{"PRAGMA", "PRAGMA"},
	{"OBJECT TYPE", "AS OBJECT"},
	{"VARRAY", "VARRAY"},
	{"NESTED TABLE", "NESTED TABLE"},
}

// contextDependencies maps reported dependency names to their pattern.
var contextDependencies = []struct {
	Name    string
	Pattern string
}{
	{"SYS_CONTEXT", "SYS_CONTEXT"},
	{"USERENV", "USERENV"},
	{"GLOBAL_TEMPORARY_TABLE", "GLOBAL TEMPORARY TABLE"},
	{"DBMS_SESSION", "DBMS_SESSION"},
	{"DBMS_APPLICATION_INFO", "DBMS_APPLICATION_INFO"},
}
