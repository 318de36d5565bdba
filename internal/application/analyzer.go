// Package application orchestrates the analysis pipeline: normalize, detect,
// score. It owns the engine boundary the adapters call into.
package application

import (
	"strings"

	"github.com/TeiNam/oracle-migration-analyzer-sub002/internal/domain"
	"github.com/TeiNam/oracle-migration-analyzer-sub002/internal/domain/analyze"
	"github.com/TeiNam/oracle-migration-analyzer-sub002/internal/domain/scoring"
)

// Analyzer is the stateless engine boundary. Both methods are pure functions
// over their input; concurrent calls need no coordination.
type Analyzer struct{}

func NewAnalyzer() *Analyzer { return &Analyzer{} }

// AnalyzeSQL scores one query against the target dialect. Fails with
// domain.ErrEmptyInput when text is empty after trimming.
func (Analyzer) AnalyzeSQL(text string, target domain.TargetDialect) (*domain.SQLComplexityResult, error) {
	if strings.TrimSpace(text) == "" {
		return nil, domain.ErrEmptyInput
	}
	if !target.Valid() {
		return nil, domain.ErrInvalidDialect
	}
	fs := analyze.DetectSQL(analyze.Normalize(text))
	return scoring.ScoreSQL(fs, target)
}

// AnalyzePLSQL scores one program unit against the target dialect. Fails
// with domain.ErrEmptyInput or domain.UnrecognizedObjectTypeError.
func (Analyzer) AnalyzePLSQL(text string, target domain.TargetDialect) (*domain.PLSQLComplexityResult, error) {
	if strings.TrimSpace(text) == "" {
		return nil, domain.ErrEmptyInput
	}
	if !target.Valid() {
		return nil, domain.ErrInvalidDialect
	}
	fs, err := analyze.DetectPLSQL(text)
	if err != nil {
		return nil, err
	}
	return scoring.ScorePLSQL(fs, target)
}
