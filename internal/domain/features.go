package domain

// SQLFeatureSet holds everything the SQL detector extracts from one query.
// All fields are write-once: the detector fills them and nothing mutates
// them afterwards.
type SQLFeatureSet struct {
	JoinCount          int      `json:"join_count"`
	SubqueryDepth      int      `json:"subquery_depth"`
	CTECount           int      `json:"cte_count"`
	SetOperatorCount   int      `json:"set_operator_count"`
	OracleSyntax       []string `json:"detected_oracle_syntax"`
	OracleFunctions    []string `json:"detected_oracle_functions"`
	Hints              []string `json:"detected_hints"`
	AnalyticFuncCount  int      `json:"analytic_function_count"`
	AggregateFuncCount int      `json:"aggregate_function_count"`
	CaseExprCount      int      `json:"case_expression_count"`
	HasFullScanRisk    bool     `json:"has_fullscan_risk"`
	DerivedTableCount  int      `json:"derived_table_count"`

	HasOrderBy    bool `json:"has_order_by"`
	HasGroupBy    bool `json:"has_group_by"`
	HasHaving     bool `json:"has_having"`
	HasKeepClause bool `json:"has_keep_clause"`
	HasCountCall  bool `json:"has_count_call"`

	Penalties PerformancePenalties `json:"performance_penalty_flags"`

	// NormalizedLength drives the data-volume bucket.
	NormalizedLength int `json:"normalized_length"`
}

// PerformancePenalties are the query performance risk flags.
type PerformancePenalties struct {
	Distinct        bool `json:"distinct"`
	OrConditions    bool `json:"or_conditions"`
	LikePattern     bool `json:"like_pattern"`
	FunctionInWhere bool `json:"function_in_where"`
}

// PLSQLFeatureSet holds everything the PL/SQL detector extracts from one
// program unit.
type PLSQLFeatureSet struct {
	ObjectType           ObjectType          `json:"object_type"`
	LineCount            int                 `json:"line_count"`
	CursorCount          int                 `json:"cursor_count"`
	ExceptionBlockCount  int                 `json:"exception_block_count"`
	NestingDepth         int                 `json:"nesting_depth"`
	BulkOperationCount   int                 `json:"bulk_operation_count"`
	DynamicSQLCount      int                 `json:"dynamic_sql_count"`
	PackageCallCount     int                 `json:"package_call_count"`
	DBLinkCount          int                 `json:"dblink_count"`
	AdvancedFeatures     []string            `json:"advanced_features"`
	ExternalDependencies []string            `json:"external_dependencies"`
	TransactionControl   TransactionControl  `json:"transaction_control"`
	HasPackageVariables  bool                `json:"has_package_variables"`
	ContextDependencies  []string            `json:"context_dependencies"`

	// Inputs to the business-logic and MySQL-constraint sub-scores.
	IfCount            int  `json:"if_count"`
	ArithmeticOpCount  int  `json:"arithmetic_op_count"`
	UsesNumberType     bool `json:"uses_number_type"`
	UsesLOBTypes       bool `json:"uses_lob_types"`
	UsesVarchar2       bool `json:"uses_varchar2"`
	HasInsteadOfClause bool `json:"has_instead_of_clause"`
	HasCompoundClause  bool `json:"has_compound_clause"`
	NonUpdatableView   bool `json:"non_updatable_view"`
}

// TransactionControl carries the four independent transaction flags.
type TransactionControl struct {
	Savepoint           bool `json:"savepoint"`
	Rollback            bool `json:"rollback"`
	RollbackToSavepoint bool `json:"rollback_to_savepoint"`
	Commit              bool `json:"commit"`
}
