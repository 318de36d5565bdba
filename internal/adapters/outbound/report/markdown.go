package report

import (
	"fmt"
	"sort"
	"strings"

	"github.com/TeiNam/oracle-migration-analyzer-sub002/internal/domain"
)

// levelOrder fixes the rendering order of tiers in the summary table.
var levelOrder = []domain.ComplexityLevel{
	domain.VerySimple, domain.Simple, domain.Moderate,
	domain.Complex, domain.VeryComplex, domain.ExtremelyComplex,
}

// Markdown renders a batch result as a report document: summary table first,
// then one section per analyzed file.
func Markdown(batch *domain.BatchResult) string {
	var b strings.Builder

	b.WriteString("# Oracle Migration Complexity Report\n\n")
	fmt.Fprintf(&b, "- Project: `%s`\n", batch.RootPath)
	fmt.Fprintf(&b, "- Target dialect: **%s**\n", batch.Target)
	if batch.CommitHash != "" {
		fmt.Fprintf(&b, "- Commit: `%s`\n", batch.CommitHash)
	}
	fmt.Fprintf(&b, "- Analyzed: %s\n\n", batch.Timestamp.Format("2006-01-02 15:04:05"))

	b.WriteString("## Summary\n\n")
	fmt.Fprintf(&b, "| Files | Failed | Mean score | Max score |\n")
	fmt.Fprintf(&b, "|---|---|---|---|\n")
	fmt.Fprintf(&b, "| %d | %d | %.2f | %.2f |\n\n", batch.Summary.TotalFiles,
		batch.Summary.Failed, batch.Summary.MeanScore, batch.Summary.MaxScore)

	b.WriteString("| Complexity | Count |\n|---|---|\n")
	for _, lvl := range levelOrder {
		if n := batch.Summary.ByLevel[lvl]; n > 0 {
			fmt.Fprintf(&b, "| %s | %d |\n", lvl, n)
		}
	}
	b.WriteString("\n## Files\n\n")

	files := append([]domain.FileResult(nil), batch.Files...)
	sort.Slice(files, func(i, j int) bool {
		return files[i].NormalizedScore() > files[j].NormalizedScore()
	})

	for _, f := range files {
		writeFileSection(&b, f)
	}
	return b.String()
}

func writeFileSection(b *strings.Builder, f domain.FileResult) {
	fmt.Fprintf(b, "### %s\n\n", f.Path)
	if f.Err != "" {
		fmt.Fprintf(b, "Analysis failed: %s\n\n", f.Err)
		return
	}

	switch {
	case f.SQL != nil:
		r := f.SQL
		fmt.Fprintf(b, "- Score: **%.1f / 10** (%s) — %s\n", r.NormalizedScore, r.Level, r.Recommendation)
		fmt.Fprintf(b, "- Joins: %d, subquery depth: %d, CTEs: %d, set operators: %d\n",
			r.Features.JoinCount, r.Features.SubqueryDepth, r.Features.CTECount, r.Features.SetOperatorCount)
		writeList(b, "Oracle syntax", r.Features.OracleSyntax)
		writeList(b, "Oracle functions", r.Features.OracleFunctions)
		writeList(b, "Hints", r.Features.Hints)
		if r.Features.HasFullScanRisk {
			b.WriteString("- Full-scan risk: no WHERE clause\n")
		}
	case f.PLSQL != nil:
		r := f.PLSQL
		fmt.Fprintf(b, "- Object type: %s\n", r.ObjectType)
		fmt.Fprintf(b, "- Score: **%.1f / 10** (%s) — %s\n", r.NormalizedScore, r.Level, r.Recommendation)
		fmt.Fprintf(b, "- Lines: %d, cursors: %d, nesting depth: %d, dynamic SQL: %d\n",
			r.Features.LineCount, r.Features.CursorCount, r.Features.NestingDepth, r.Features.DynamicSQLCount)
		writeList(b, "Advanced features", r.Features.AdvancedFeatures)
		writeList(b, "External dependencies", r.Features.ExternalDependencies)
		writeList(b, "Context dependencies", r.Features.ContextDependencies)
	}
	b.WriteString("\n")
}

func writeList(b *strings.Builder, label string, items []string) {
	if len(items) == 0 {
		return
	}
	fmt.Fprintf(b, "- %s: %s\n", label, strings.Join(items, ", "))
}
