package scoring

import (
	"math"

	"github.com/TeiNam/oracle-migration-analyzer-sub002/internal/domain"
)

// Per-category caps of the PL/SQL path. These are dialect-independent; the
// dialect-specific terms live in the weight tables.
const (
	maxCodeComplexity  = 3.0
	maxOracleFeatures  = 3.0
	maxBusinessLogic   = 2.0
	maxConversionPLSQL = 2.0
)

// ScorePLSQL aggregates a detected PL/SQL feature set into the per-category
// sub-scores and normalized classification for the given target dialect.
func ScorePLSQL(fs *domain.PLSQLFeatureSet, target domain.TargetDialect) (*domain.PLSQLComplexityResult, error) {
	w, err := WeightsFor(target)
	if err != nil {
		return nil, err
	}

	r := &domain.PLSQLComplexityResult{
		Target:     target,
		ObjectType: fs.ObjectType,
		Features:   *fs,
	}
	r.BaseScore = w.PLSQLBase[fs.ObjectType]
	r.CodeComplexityScore = codeComplexityScore(fs)
	r.OracleFeatureScore = oracleFeatureScore(fs, w)
	r.BusinessLogicScore = businessLogicScore(fs)
	r.ConversionScore = plsqlConversionScore(fs)
	if w.Dialect == domain.MySQL {
		r.MySQLConstraints = mysqlConstraintsScore(fs, w)
		r.AppMigrationPenalty = w.AppMigrationPenalty[fs.ObjectType]
	}

	r.TotalScore = r.BaseScore + r.CodeComplexityScore + r.OracleFeatureScore +
		r.BusinessLogicScore + r.ConversionScore + r.MySQLConstraints + r.AppMigrationPenalty
	r.NormalizedScore = normalize(r.TotalScore, w.PLSQLMaxScore)
	r.Level = domain.LevelFor(r.NormalizedScore)
	r.Recommendation = domain.RecommendationFor(r.Level)
	return r, nil
}

func codeComplexityScore(fs *domain.PLSQLFeatureSet) float64 {
	var s float64
	switch {
	case fs.LineCount == 0:
		s = 0
	case fs.LineCount < 100:
		s = 0.5
	case fs.LineCount < 300:
		s = 1.0
	case fs.LineCount < 500:
		s = 1.5
	case fs.LineCount < 1000:
		s = 2.0
	default:
		s = 2.5
	}
	s += math.Min(1.0, float64(fs.CursorCount)*0.3)
	s += math.Min(0.5, float64(fs.ExceptionBlockCount)*0.2)
	switch {
	case fs.NestingDepth <= 2:
	case fs.NestingDepth <= 4:
		s += 0.5
	case fs.NestingDepth <= 6:
		s += 1.0
	default:
		s += 1.5
	}
	return math.Min(maxCodeComplexity, s)
}

func oracleFeatureScore(fs *domain.PLSQLFeatureSet, w *WeightTable) float64 {
	s := math.Min(2.0, float64(fs.PackageCallCount)*0.5)
	s += math.Min(1.5, float64(fs.DBLinkCount)*1.0)
	s += math.Min(1.0, float64(fs.DynamicSQLCount)*0.5)
	s += math.Min(w.BulkOpMax, float64(fs.BulkOperationCount)*w.BulkOpCoef)
	s += math.Min(1.5, float64(len(fs.AdvancedFeatures))*0.5)
	return math.Min(maxOracleFeatures, s)
}

func businessLogicScore(fs *domain.PLSQLFeatureSet) float64 {
	var s float64
	switch {
	case fs.TransactionControl.Savepoint:
		s = 0.8
	case fs.TransactionControl.Rollback || fs.TransactionControl.Commit:
		s = 0.5
	}
	s += math.Min(1.0, float64(fs.ArithmeticOpCount/10)*0.3)
	s += math.Min(0.5, float64(fs.IfCount)*0.2)
	s += math.Min(1.0, float64(len(fs.ContextDependencies))*0.5)
	if fs.HasPackageVariables {
		s += 0.8
	}
	return math.Min(maxBusinessLogic, s)
}

func plsqlConversionScore(fs *domain.PLSQLFeatureSet) float64 {
	s := math.Min(1.0, float64(len(fs.ExternalDependencies))*0.5)
	return math.Min(maxConversionPLSQL, s)
}

func mysqlConstraintsScore(fs *domain.PLSQLFeatureSet, w *WeightTable) float64 {
	var s float64
	if fs.UsesNumberType {
		s += 0.5
	}
	if fs.UsesLOBTypes {
		s += 0.3
	}
	if fs.UsesVarchar2 {
		s += 0.3
	}
	if fs.HasInsteadOfClause {
		s += 0.5
	}
	if fs.HasCompoundClause {
		s += 0.5
	}
	if fs.NonUpdatableView {
		s += 0.3
	}
	if fs.ObjectType == domain.ObjectMaterializedView {
		s += 0.5
	}
	return math.Min(w.MySQLConstraintsMax, s)
}
