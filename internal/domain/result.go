package domain

import "time"

// SQLComplexityResult is the immutable outcome of scoring one query.
type SQLComplexityResult struct {
	Target TargetDialect `json:"target"`

	StructuralScore     float64 `json:"structural_score"`
	OracleSpecificScore float64 `json:"oracle_specific_score"`
	FunctionExprScore   float64 `json:"functions_expressions_score"`
	DataVolumeScore     float64 `json:"data_volume_score"`
	ExecutionScore      float64 `json:"execution_complexity_score"`
	ConversionScore     float64 `json:"conversion_difficulty_score"`

	TotalScore      float64         `json:"total_score"`
	NormalizedScore float64         `json:"normalized_score"`
	Level           ComplexityLevel `json:"complexity_level"`
	Recommendation  string          `json:"recommendation"`

	Features SQLFeatureSet `json:"features"`
}

// PLSQLComplexityResult is the immutable outcome of scoring one program unit.
type PLSQLComplexityResult struct {
	Target     TargetDialect `json:"target"`
	ObjectType ObjectType    `json:"object_type"`

	BaseScore           float64 `json:"base_score"`
	CodeComplexityScore float64 `json:"code_complexity_score"`
	OracleFeatureScore  float64 `json:"oracle_features_score"`
	BusinessLogicScore  float64 `json:"business_logic_score"`
	ConversionScore     float64 `json:"conversion_difficulty_score"`
	MySQLConstraints    float64 `json:"mysql_constraints_score"`
	AppMigrationPenalty float64 `json:"app_migration_penalty"`

	TotalScore      float64         `json:"total_score"`
	NormalizedScore float64         `json:"normalized_score"`
	Level           ComplexityLevel `json:"complexity_level"`
	Recommendation  string          `json:"recommendation"`

	Features PLSQLFeatureSet `json:"features"`
}

// FileResult pairs one analyzed file with its outcome. Exactly one of SQL
// and PLSQL is set on success; Err holds the failure otherwise.
type FileResult struct {
	Path  string                 `json:"path"`
	Kind  SourceKind             `json:"kind"`
	SQL   *SQLComplexityResult   `json:"sql,omitempty"`
	PLSQL *PLSQLComplexityResult `json:"plsql,omitempty"`
	Err   string                 `json:"error,omitempty"`
}

// NormalizedScore returns the file's score regardless of source kind.
func (f FileResult) NormalizedScore() float64 {
	switch {
	case f.SQL != nil:
		return f.SQL.NormalizedScore
	case f.PLSQL != nil:
		return f.PLSQL.NormalizedScore
	}
	return 0
}

// Level returns the file's tier, or "" on error results.
func (f FileResult) Level() ComplexityLevel {
	switch {
	case f.SQL != nil:
		return f.SQL.Level
	case f.PLSQL != nil:
		return f.PLSQL.Level
	}
	return ""
}

// SourceKind tells the dispatcher which detector pipeline a file takes.
type SourceKind string

const (
	SourceSQL   SourceKind = "sql"
	SourcePLSQL SourceKind = "plsql"
)

// BatchResult aggregates a directory analysis.
type BatchResult struct {
	RootPath   string        `json:"root_path"`
	Target     TargetDialect `json:"target"`
	CommitHash string        `json:"commit_hash,omitempty"`
	Timestamp  time.Time     `json:"timestamp"`
	Files      []FileResult  `json:"files"`
	Summary    BatchSummary  `json:"summary"`
}

// BatchSummary holds the roll-up figures for a batch run.
type BatchSummary struct {
	TotalFiles int                     `json:"total_files"`
	Failed     int                     `json:"failed"`
	ByLevel    map[ComplexityLevel]int `json:"by_level"`
	MeanScore  float64                 `json:"mean_score"`
	MaxScore   float64                 `json:"max_score"`
}

// Summarize recomputes the summary block from the file results.
func Summarize(files []FileResult) BatchSummary {
	s := BatchSummary{
		TotalFiles: len(files),
		ByLevel:    make(map[ComplexityLevel]int),
	}
	var sum float64
	scored := 0
	for _, f := range files {
		if f.Err != "" {
			s.Failed++
			continue
		}
		scored++
		n := f.NormalizedScore()
		sum += n
		if n > s.MaxScore {
			s.MaxScore = n
		}
		s.ByLevel[f.Level()]++
	}
	if scored > 0 {
		s.MeanScore = sum / float64(scored)
	}
	return s
}

// RunEntry is one persisted history row for a past analysis.
type RunEntry struct {
	Timestamp  string  `json:"timestamp"`
	Path       string  `json:"path"`
	Kind       string  `json:"kind"`
	ObjectType string  `json:"object_type,omitempty"`
	Target     string  `json:"target"`
	Score      float64 `json:"score"`
	Level      string  `json:"level"`
}
