package scoring

import (
	"math"
	"strings"

	"github.com/TeiNam/oracle-migration-analyzer-sub002/internal/domain"
)

// oracleSpecificScores is the oracle_specific contribution of syntax other
// than the four specially-weighted features (CONNECT BY, PIVOT/UNPIVOT,
// MODEL, analytic functions).
var oracleSpecificScores = map[string]float64{
	"START WITH": 0.5,
	"PRIOR":      0.5,
	"ROWNUM":     0.5,
	"ROWID":      0.5,
	"LEVEL":      0.3,
	"DUAL":       0.2,
	"MERGE":      1.0,
	"FLASHBACK":  1.0,
	"RETURNING":  0.5,
	"(+)":        1.0,
}

// conversionDifficulty maps detected syntax and function names to the
// per-feature difficulty of the conversion_difficulty sub-score. Detected
// features missing from the table fall back to conversionDifficultyDefault.
var conversionDifficulty = map[string]float64{
	"MODEL":         1.0,
	"CONNECT BY":    1.0,
	"START WITH":    0.5,
	"PRIOR":         0.5,
	"PIVOT":         0.5,
	"UNPIVOT":       0.5,
	"MERGE":         0.5,
	"XMLAGG":        0.5,
	"FLASHBACK":     0.5,
	"WM_CONCAT":     0.5,
	"(+)":           0.5,
	"ROWNUM":        0.3,
	"ROWID":         0.3,
	"DECODE":        0.3,
	"LEVEL":         0.3,
	"RETURNING":     0.3,
	"SYS_GUID":      0.3,
	"SYS_CONTEXT":   0.3,
	"USERENV":       0.3,
	"REGEXP_SUBSTR": 0.3,
	"REGEXP_INSTR":  0.3,
	"DUAL":          0.1,
	"SYSDATE":       0.1,
	"SYSTIMESTAMP":  0.1,
	"NVL":           0.1,
	"TO_DATE":       0.1,
	"TO_CHAR":       0.1,
	"TO_NUMBER":     0.1,
}

const conversionDifficultyDefault = 0.2

// functionScores holds the per-dialect functions_expressions contribution of
// each detected Oracle function, PostgreSQL first. MySQL values never
// undercut PostgreSQL values.
var functionScores = map[string][2]float64{
	"NVL":             {0.1, 0.1},
	"NVL2":            {0.2, 0.3},
	"DECODE":          {0.3, 0.4},
	"TO_DATE":         {0.1, 0.2},
	"TO_CHAR":         {0.1, 0.2},
	"TO_NUMBER":       {0.1, 0.2},
	"SYSDATE":         {0.1, 0.1},
	"SYSTIMESTAMP":    {0.1, 0.2},
	"ADD_MONTHS":      {0.2, 0.3},
	"MONTHS_BETWEEN":  {0.2, 0.3},
	"LAST_DAY":        {0.1, 0.1},
	"NEXT_DAY":        {0.2, 0.3},
	"TRUNC":           {0.2, 0.3},
	"INSTR":           {0.1, 0.2},
	"SUBSTR":          {0.1, 0.1},
	"LPAD":            {0.1, 0.1},
	"RPAD":            {0.1, 0.1},
	"REGEXP_LIKE":     {0.2, 0.4},
	"REGEXP_REPLACE":  {0.2, 0.4},
	"REGEXP_SUBSTR":   {0.3, 0.5},
	"REGEXP_INSTR":    {0.3, 0.5},
	"LISTAGG":         {0.1, 0.2},
	"WM_CONCAT":       {0.3, 0.4},
	"XMLAGG":          {0.3, 0.3},
	"MEDIAN":          {0.2, 0.2},
	"PERCENTILE_CONT": {0.3, 0.3},
	"PERCENTILE_DISC": {0.3, 0.3},
	"SYS_GUID":        {0.2, 0.3},
	"SYS_CONTEXT":     {0.3, 0.4},
	"USERENV":         {0.3, 0.4},
}

// ScoreSQL aggregates a detected feature set into the six SQL sub-scores and
// the normalized classification for the given target dialect.
func ScoreSQL(fs *domain.SQLFeatureSet, target domain.TargetDialect) (*domain.SQLComplexityResult, error) {
	w, err := WeightsFor(target)
	if err != nil {
		return nil, err
	}

	r := &domain.SQLComplexityResult{
		Target:   target,
		Features: *fs,
	}
	r.StructuralScore = structuralScore(fs, w)
	r.OracleSpecificScore = oracleSpecificScore(fs, w)
	r.FunctionExprScore = functionExprScore(fs, w)
	r.DataVolumeScore = dataVolumeScore(fs.NormalizedLength, w)
	r.ExecutionScore = executionScore(fs, w)
	r.ConversionScore = conversionScore(fs, w)

	r.TotalScore = r.StructuralScore + r.OracleSpecificScore + r.FunctionExprScore +
		r.DataVolumeScore + r.ExecutionScore + r.ConversionScore
	r.NormalizedScore = normalize(r.TotalScore, w.MaxTotalScore)
	r.Level = domain.LevelFor(r.NormalizedScore)
	r.Recommendation = domain.RecommendationFor(r.Level)
	return r, nil
}

// normalize maps a raw total onto the 0-10 scale, clamped at both ends.
func normalize(total, maxTotal float64) float64 {
	n := total * 10 / maxTotal
	return math.Max(0, math.Min(10, n))
}

func structuralScore(fs *domain.SQLFeatureSet, w *WeightTable) float64 {
	s := ladderScore(w.JoinLadder, fs.JoinCount, w.JoinOverflow)

	if fs.SubqueryDepth <= 2 {
		s += w.SubqueryLadder[fs.SubqueryDepth]
	} else {
		over := float64(fs.SubqueryDepth-2) * w.SubqueryOverStep
		s += w.SubqueryOverBase + math.Min(w.SubqueryOverCap, over)
	}

	s += math.Min(w.CTEMax, float64(fs.CTECount)*w.CTECoefficient)
	s += math.Min(w.SetOpMax, float64(fs.SetOperatorCount)*w.SetOpCoefficient)
	if fs.HasFullScanRisk {
		s += w.FullScanPenalty
	}
	return math.Min(w.MaxStructural, s)
}

func oracleSpecificScore(fs *domain.SQLFeatureSet, w *WeightTable) float64 {
	detected := make(map[string]bool, len(fs.OracleSyntax))
	for _, kw := range fs.OracleSyntax {
		detected[kw] = true
	}

	var s float64
	if detected["CONNECT BY"] {
		s += 2.0
	}
	if detected["PIVOT"] || detected["UNPIVOT"] {
		s += 2.0
	}
	if detected["MODEL"] {
		s += 3.0
	}
	s += math.Min(3.0, float64(fs.AnalyticFuncCount))

	for _, kw := range fs.OracleSyntax {
		s += oracleSpecificScores[kw]
	}
	return math.Min(w.MaxOracleSpecific, s)
}

func functionExprScore(fs *domain.SQLFeatureSet, w *WeightTable) float64 {
	s := math.Min(w.AggregateMax, float64(fs.AggregateFuncCount)*w.AggregateCoef)
	s += math.Min(w.CaseMax, float64(fs.CaseExprCount)*w.CaseCoef)

	for _, fn := range fs.OracleFunctions {
		if strings.HasPrefix(fn, "REGEXP_") {
			s += w.RegexFunctionBonus
			break
		}
	}
	if fs.HasCountCall && fs.HasFullScanRisk {
		s += w.CountNoWherePenalty
	}

	idx := 0
	if w.Dialect == domain.MySQL {
		idx = 1
	}
	for _, fn := range fs.OracleFunctions {
		s += functionScores[fn][idx]
		s += w.SpecialAggregates[fn]
	}
	if fs.HasKeepClause {
		s += w.KeepClausePenalty
	}
	return math.Min(w.MaxFunctions, s)
}

func dataVolumeScore(length int, w *WeightTable) float64 {
	switch {
	case length < 200:
		return w.DataVolume[0]
	case length < 500:
		return w.DataVolume[1]
	case length < 1000:
		return w.DataVolume[2]
	default:
		return w.DataVolume[3]
	}
}

func executionScore(fs *domain.SQLFeatureSet, w *WeightTable) float64 {
	var s float64
	if fs.JoinCount > w.JoinPenaltyJoins || fs.SubqueryDepth > w.JoinPenaltyDepth {
		s += w.JoinDepthPenalty
	}
	if fs.HasOrderBy {
		s += w.OrderByScore
	}
	if fs.HasGroupBy {
		s += w.GroupByScore
	}
	if fs.HasHaving {
		s += w.HavingScore
	}
	s += math.Min(w.DerivedTableMax, float64(fs.DerivedTableCount)*w.DerivedTableCoef)
	if fs.Penalties.Distinct {
		s += w.PenaltyDistinct
	}
	if fs.Penalties.OrConditions {
		s += w.PenaltyOr
	}
	if fs.Penalties.LikePattern {
		s += w.PenaltyLike
	}
	if fs.Penalties.FunctionInWhere {
		s += w.PenaltyFuncWhere
	}
	return math.Min(w.MaxExecution, s)
}

func conversionScore(fs *domain.SQLFeatureSet, w *WeightTable) float64 {
	s := ladderScore(hintLadder, len(fs.Hints), hintOverflow)

	var features float64
	for _, kw := range fs.OracleSyntax {
		features += difficultyFor(kw)
	}
	for _, fn := range fs.OracleFunctions {
		features += difficultyFor(fn)
	}
	s += math.Min(w.MaxFeatureDifficulty, features)
	return math.Min(w.MaxConversion, s)
}

func difficultyFor(feature string) float64 {
	if d, ok := conversionDifficulty[feature]; ok {
		return d
	}
	return conversionDifficultyDefault
}
