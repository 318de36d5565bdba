package application

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"runtime"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/TeiNam/oracle-migration-analyzer-sub002/internal/domain"
)

// plsqlHeaderRe spots DDL headers inside .sql files so program units stored
// with a generic extension still take the PL/SQL pipeline.
var plsqlHeaderRe = regexp.MustCompile(`(?i)\bCREATE\s+(OR\s+REPLACE\s+)?(PACKAGE|PROCEDURE|FUNCTION|TRIGGER|TYPE|(MATERIALIZED\s+)?VIEW)\b`)

// AnalyzeService is the batch dispatcher: it maps the analyzer over a
// directory of source files with a fixed worker pool. Per-file failures are
// recorded on the file result and never abort the batch.
type AnalyzeService struct {
	scanner  domain.SourceScanner
	analyzer *Analyzer
	workers  int
}

func NewAnalyzeService(scanner domain.SourceScanner) *AnalyzeService {
	return &AnalyzeService{
		scanner:  scanner,
		analyzer: NewAnalyzer(),
		workers:  runtime.NumCPU(),
	}
}

// AnalyzeProject scans rootPath and scores every discovered source file
// against the target dialect. Cancellation lives here, at the dispatch
// layer: a single analysis always terminates on its own.
func (s *AnalyzeService) AnalyzeProject(ctx context.Context, rootPath string, target domain.TargetDialect, excludePaths ...string) (*domain.BatchResult, error) {
	if !target.Valid() {
		return nil, domain.ErrInvalidDialect
	}
	scan, err := s.scanner.Scan(rootPath, excludePaths...)
	if err != nil {
		return nil, fmt.Errorf("scanning %s: %w", rootPath, err)
	}

	type job struct {
		path string
		kind domain.SourceKind
	}
	jobs := make(chan job)
	results := make(chan domain.FileResult)

	var wg sync.WaitGroup
	for i := 0; i < s.workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := range jobs {
				results <- s.analyzeFile(scan.RootPath, j.path, j.kind, target)
			}
		}()
	}

	go func() {
		defer close(jobs)
		for _, f := range scan.SQLFiles {
			select {
			case jobs <- job{f, domain.SourceSQL}:
			case <-ctx.Done():
				return
			}
		}
		for _, f := range scan.PLSQLFiles {
			select {
			case jobs <- job{f, domain.SourcePLSQL}:
			case <-ctx.Done():
				return
			}
		}
	}()

	go func() {
		wg.Wait()
		close(results)
	}()

	batch := &domain.BatchResult{
		RootPath:  scan.RootPath,
		Target:    target,
		Timestamp: time.Now(),
	}
	for r := range results {
		batch.Files = append(batch.Files, r)
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	sort.Slice(batch.Files, func(i, j int) bool { return batch.Files[i].Path < batch.Files[j].Path })
	batch.Summary = domain.Summarize(batch.Files)
	return batch, nil
}

func (s *AnalyzeService) analyzeFile(root, rel string, kind domain.SourceKind, target domain.TargetDialect) domain.FileResult {
	fr := domain.FileResult{Path: rel, Kind: kind}

	data, err := os.ReadFile(filepath.Join(root, rel))
	if err != nil {
		fr.Err = err.Error()
		return fr
	}
	text := string(data)

	// A .sql file carrying a program-unit DDL header takes the PL/SQL path.
	if kind == domain.SourceSQL && plsqlHeaderRe.MatchString(text) {
		kind = domain.SourcePLSQL
		fr.Kind = kind
	}

	switch kind {
	case domain.SourceSQL:
		res, err := s.analyzer.AnalyzeSQL(text, target)
		if err != nil {
			fr.Err = err.Error()
			return fr
		}
		fr.SQL = res
	case domain.SourcePLSQL:
		res, err := s.analyzer.AnalyzePLSQL(text, target)
		if err != nil {
			fr.Err = err.Error()
			return fr
		}
		fr.PLSQL = res
	}
	return fr
}

// RunEntries converts a batch into history rows for persistence.
func RunEntries(batch *domain.BatchResult) []domain.RunEntry {
	entries := make([]domain.RunEntry, 0, len(batch.Files))
	ts := batch.Timestamp.Format(time.RFC3339)
	for _, f := range batch.Files {
		if f.Err != "" {
			continue
		}
		e := domain.RunEntry{
			Timestamp: ts,
			Path:      f.Path,
			Kind:      string(f.Kind),
			Target:    string(batch.Target),
			Score:     f.NormalizedScore(),
			Level:     string(f.Level()),
		}
		if f.PLSQL != nil {
			e.ObjectType = string(f.PLSQL.ObjectType)
		}
		entries = append(entries, e)
	}
	return entries
}

// SniffKind exposes the SQL-vs-PL/SQL routing decision for adapters that
// analyze inline text rather than files.
func SniffKind(text string) domain.SourceKind {
	if plsqlHeaderRe.MatchString(text) || strings.Contains(strings.ToUpper(text), "DECLARE") {
		return domain.SourcePLSQL
	}
	return domain.SourceSQL
}
