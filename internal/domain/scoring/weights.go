// Package scoring turns detected feature sets into complexity scores. There
// is exactly one aggregator per source kind; every constant lives in the two
// weight tables below so scores stay comparable across runs and targets.
package scoring

import "github.com/TeiNam/oracle-migration-analyzer-sub002/internal/domain"

// LadderStep is one rung of a threshold ladder: the first step whose Max is
// >= the measured count supplies the score.
type LadderStep struct {
	Max   int
	Score float64
}

// ladderScore applies the first-match-wins rule, falling back to the
// overflow score when the count exceeds every rung.
func ladderScore(ladder []LadderStep, count int, overflow float64) float64 {
	for _, step := range ladder {
		if count <= step.Max {
			return step.Score
		}
	}
	return overflow
}

// WeightTable carries every per-dialect constant of both aggregation paths.
// Instances are built once at package init and never mutated; they are safe
// to read from any number of goroutines.
type WeightTable struct {
	Dialect domain.TargetDialect

	// structural
	JoinLadder        []LadderStep
	JoinOverflow      float64
	SubqueryLadder    [3]float64 // depth 0, 1, 2
	SubqueryOverBase  float64    // overflow formula: base + min(cap, (depth-2)*step)
	SubqueryOverStep  float64
	SubqueryOverCap   float64
	CTECoefficient    float64
	CTEMax            float64
	SetOpCoefficient  float64
	SetOpMax          float64
	FullScanPenalty   float64 // zero for PostgreSQL
	MaxStructural     float64

	// oracle_specific
	MaxOracleSpecific float64

	// functions_expressions
	AggregateCoef       float64
	AggregateMax        float64
	CaseCoef            float64
	CaseMax             float64
	RegexFunctionBonus  float64
	CountNoWherePenalty float64            // zero for PostgreSQL
	SpecialAggregates   map[string]float64 // zero-length for PostgreSQL
	KeepClausePenalty   float64            // zero for PostgreSQL
	MaxFunctions        float64

	// data_volume buckets: <200, <500, <1000, >=1000 normalized chars
	DataVolume [4]float64

	// execution_complexity
	JoinDepthPenalty   float64
	JoinPenaltyJoins   int // penalty applies when joins exceed this
	JoinPenaltyDepth   int // or when subquery depth exceeds this
	OrderByScore       float64
	GroupByScore       float64
	HavingScore        float64
	DerivedTableCoef   float64 // zero for PostgreSQL
	DerivedTableMax    float64
	PenaltyDistinct    float64 // the four WHERE-clause flags, zero for PostgreSQL
	PenaltyOr          float64
	PenaltyLike        float64
	PenaltyFuncWhere   float64
	MaxExecution       float64

	// conversion_difficulty
	MaxFeatureDifficulty float64
	MaxConversion        float64

	// SQL normalization divisor
	MaxTotalScore float64

	// PL/SQL path
	PLSQLBase           map[domain.ObjectType]float64
	PLSQLMaxScore       float64
	BulkOpCoef          float64
	BulkOpMax           float64
	AppMigrationPenalty map[domain.ObjectType]float64 // zero-length for PostgreSQL
	MySQLConstraintsMax float64                       // zero for PostgreSQL
}

// hintLadder buckets the optimizer-hint count; identical for both dialects.
var hintLadder = []LadderStep{{0, 0}, {2, 0.5}, {5, 1.0}}

const hintOverflow = 1.5

// postgresWeights and mysqlWeights are the two immutable configurations.
// Every MySQL base score and penalty term dominates its PostgreSQL
// counterpart so that, for identical input, the MySQL-target total is never
// lower.
var postgresWeights = &WeightTable{
	Dialect: domain.PostgreSQL,

	JoinLadder:       []LadderStep{{0, 0}, {2, 0.5}, {5, 1.0}, {8, 1.5}},
	JoinOverflow:     2.0,
	SubqueryLadder:   [3]float64{0, 1.0, 1.5},
	SubqueryOverBase: 1.5,
	SubqueryOverStep: 0.5,
	SubqueryOverCap:  1.0,
	CTECoefficient:   0.5,
	CTEMax:           1.5,
	SetOpCoefficient: 0.5,
	SetOpMax:         1.0,
	MaxStructural:    4.0,

	MaxOracleSpecific: 3.0,

	AggregateCoef:      0.5,
	AggregateMax:       2.0,
	CaseCoef:           0.5,
	CaseMax:            2.0,
	RegexFunctionBonus: 1.0,
	MaxFunctions:       2.5,

	DataVolume: [4]float64{0.5, 1.0, 1.5, 2.0},

	JoinDepthPenalty: 0.5,
	JoinPenaltyJoins: 5,
	JoinPenaltyDepth: 2,
	OrderByScore:     0.1,
	GroupByScore:     0.1,
	HavingScore:      0.2,
	MaxExecution:     1.0,

	MaxFeatureDifficulty: 3.0,
	MaxConversion:        4.5,

	MaxTotalScore: 17.0,

	PLSQLBase: map[domain.ObjectType]float64{
		domain.ObjectPackage:          7.0,
		domain.ObjectProcedure:        4.0,
		domain.ObjectFunction:         4.0,
		domain.ObjectTrigger:          5.0,
		domain.ObjectView:             2.0,
		domain.ObjectMaterializedView: 3.0,
	},
	PLSQLMaxScore: 20.0,
	BulkOpCoef:    0.4,
	BulkOpMax:     1.0,
}

var mysqlWeights = &WeightTable{
	Dialect: domain.MySQL,

	JoinLadder:       []LadderStep{{0, 0}, {2, 1.0}, {5, 2.0}, {8, 3.0}},
	JoinOverflow:     4.0,
	SubqueryLadder:   [3]float64{0, 2.0, 4.0},
	SubqueryOverBase: 4.0,
	SubqueryOverStep: 1.0,
	SubqueryOverCap:  2.0,
	CTECoefficient:   1.0,
	CTEMax:           3.0,
	SetOpCoefficient: 0.8,
	SetOpMax:         2.0,
	FullScanPenalty:  1.0,
	MaxStructural:    6.0,

	MaxOracleSpecific: 3.0,

	AggregateCoef:       0.5,
	AggregateMax:        2.0,
	CaseCoef:            0.5,
	CaseMax:             2.0,
	RegexFunctionBonus:  1.0,
	CountNoWherePenalty: 0.5,
	SpecialAggregates: map[string]float64{
		"MEDIAN":          0.5,
		"PERCENTILE_CONT": 0.5,
		"PERCENTILE_DISC": 0.5,
		"LISTAGG":         0.3,
		"XMLAGG":          0.5,
	},
	KeepClausePenalty: 0.5,
	MaxFunctions:      2.5,

	DataVolume: [4]float64{0.5, 1.2, 2.0, 2.5},

	JoinDepthPenalty: 1.5,
	JoinPenaltyJoins: 3,
	JoinPenaltyDepth: 1,
	OrderByScore:     0.3,
	GroupByScore:     0.4,
	HavingScore:      0.3,
	DerivedTableCoef: 0.5,
	DerivedTableMax:  1.0,
	PenaltyDistinct:  0.2,
	PenaltyOr:        0.3,
	PenaltyLike:      0.3,
	PenaltyFuncWhere: 0.2,
	MaxExecution:     2.5,

	MaxFeatureDifficulty: 3.0,
	MaxConversion:        4.5,

	MaxTotalScore: 21.0,

	PLSQLBase: map[domain.ObjectType]float64{
		domain.ObjectPackage:          8.0,
		domain.ObjectProcedure:        5.0,
		domain.ObjectFunction:         5.0,
		domain.ObjectTrigger:          6.0,
		domain.ObjectView:             2.5,
		domain.ObjectMaterializedView: 4.5,
	},
	PLSQLMaxScore: 23.5,
	BulkOpCoef:    0.3,
	BulkOpMax:     0.8,
	AppMigrationPenalty: map[domain.ObjectType]float64{
		domain.ObjectPackage:   2.0,
		domain.ObjectProcedure: 2.0,
		domain.ObjectFunction:  2.0,
		domain.ObjectTrigger:   1.5,
	},
	MySQLConstraintsMax: 1.5,
}

// WeightsFor returns the immutable table for a dialect.
func WeightsFor(d domain.TargetDialect) (*WeightTable, error) {
	switch d {
	case domain.PostgreSQL:
		return postgresWeights, nil
	case domain.MySQL:
		return mysqlWeights, nil
	}
	return nil, domain.ErrInvalidDialect
}
