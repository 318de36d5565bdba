// Package tui renders analysis results for the terminal.
package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/TeiNam/oracle-migration-analyzer-sub002/internal/domain"
)

var (
	accent  = lipgloss.Color("#D97706") // amber
	fg      = lipgloss.Color("#E8E6E3")
	dim     = lipgloss.Color("#6B7280")
	faint   = lipgloss.Color("#3F3F46")
	success = lipgloss.Color("#22C55E")
	danger  = lipgloss.Color("#EF4444")
	warning = lipgloss.Color("#F59E0B")
)

var (
	headerStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(accent).
			Align(lipgloss.Center)

	boxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(accent).
			Padding(1, 4).
			Align(lipgloss.Center).
			Width(68)

	levelColors = map[domain.ComplexityLevel]lipgloss.Color{
		domain.VerySimple:       success,
		domain.Simple:           lipgloss.Color("#A3E635"),
		domain.Moderate:         warning,
		domain.Complex:          lipgloss.Color("#FB923C"),
		domain.VeryComplex:      danger,
		domain.ExtremelyComplex: lipgloss.Color("#B91C1C"),
	}

	dimStyle      = lipgloss.NewStyle().Foreground(dim)
	faintStyle    = lipgloss.NewStyle().Foreground(faint)
	failStyle     = lipgloss.NewStyle().Foreground(danger)
	titleStyle    = lipgloss.NewStyle().Bold(true).Foreground(fg)
	separatorLine = faintStyle.Render(strings.Repeat("─", 64))
)

func levelColor(level domain.ComplexityLevel) lipgloss.Color {
	if c, ok := levelColors[level]; ok {
		return c
	}
	return dim
}

func scoreBox(subtitle string, score float64, level domain.ComplexityLevel) string {
	title := headerStyle.Render("oramigrate")
	sub := dimStyle.Render(subtitle)
	styled := lipgloss.NewStyle().Bold(true).Foreground(levelColor(level))
	line := styled.Render(fmt.Sprintf("%.1f / 10", score)) + "  " + styled.Render(string(level))
	return boxStyle.Render(title + "\n" + sub + "\n\n" + line)
}

// RenderSQL renders a single-query result.
func RenderSQL(r *domain.SQLComplexityResult) string {
	var b strings.Builder
	b.WriteString(scoreBox("SQL Migration Complexity — "+string(r.Target), r.NormalizedScore, r.Level))
	b.WriteString("\n\n")

	renderBar(&b, "structural", r.StructuralScore, 6.0)
	renderBar(&b, "oracle_specific", r.OracleSpecificScore, 3.0)
	renderBar(&b, "functions_expressions", r.FunctionExprScore, 2.5)
	renderBar(&b, "data_volume", r.DataVolumeScore, 2.5)
	renderBar(&b, "execution_complexity", r.ExecutionScore, 2.5)
	renderBar(&b, "conversion_difficulty", r.ConversionScore, 4.5)

	b.WriteString("\n  " + separatorLine + "\n\n")
	renderFeatureLine(&b, "Oracle syntax", r.Features.OracleSyntax)
	renderFeatureLine(&b, "Oracle functions", r.Features.OracleFunctions)
	renderFeatureLine(&b, "Hints", r.Features.Hints)
	fmt.Fprintf(&b, "  %s %s\n", titleStyle.Render("Recommendation:"), r.Recommendation)
	return b.String()
}

// RenderPLSQL renders a single program-unit result.
func RenderPLSQL(r *domain.PLSQLComplexityResult) string {
	var b strings.Builder
	sub := fmt.Sprintf("PL/SQL %s — %s", r.ObjectType, r.Target)
	b.WriteString(scoreBox(sub, r.NormalizedScore, r.Level))
	b.WriteString("\n\n")

	renderBar(&b, "base", r.BaseScore, 8.0)
	renderBar(&b, "code_complexity", r.CodeComplexityScore, 3.0)
	renderBar(&b, "oracle_features", r.OracleFeatureScore, 3.0)
	renderBar(&b, "business_logic", r.BusinessLogicScore, 2.0)
	renderBar(&b, "conversion_difficulty", r.ConversionScore, 2.0)
	if r.Target == domain.MySQL {
		renderBar(&b, "mysql_constraints", r.MySQLConstraints, 1.5)
		renderBar(&b, "app_migration", r.AppMigrationPenalty, 2.0)
	}

	b.WriteString("\n  " + separatorLine + "\n\n")
	renderFeatureLine(&b, "Advanced features", r.Features.AdvancedFeatures)
	renderFeatureLine(&b, "External dependencies", r.Features.ExternalDependencies)
	renderFeatureLine(&b, "Context dependencies", r.Features.ContextDependencies)
	fmt.Fprintf(&b, "  %s %s\n", titleStyle.Render("Recommendation:"), r.Recommendation)
	return b.String()
}

// RenderBatch renders the directory-level roll-up.
func RenderBatch(batch *domain.BatchResult) string {
	var b strings.Builder
	level := domain.LevelFor(batch.Summary.MeanScore)
	b.WriteString(scoreBox("Batch — "+string(batch.Target), batch.Summary.MeanScore, level))
	b.WriteString("\n\n")

	fmt.Fprintf(&b, "  %s %d files, %d failed\n\n", titleStyle.Render("Analyzed:"),
		batch.Summary.TotalFiles, batch.Summary.Failed)

	for _, f := range batch.Files {
		if f.Err != "" {
			fmt.Fprintf(&b, "  %s %s  %s\n", failStyle.Render("✗"), f.Path, dimStyle.Render(f.Err))
			continue
		}
		lvl := f.Level()
		mark := lipgloss.NewStyle().Foreground(levelColor(lvl)).Render("●")
		fmt.Fprintf(&b, "  %s %-48s %5.1f  %s\n", mark, f.Path, f.NormalizedScore(),
			dimStyle.Render(string(lvl)))
	}
	if batch.CommitHash != "" {
		b.WriteString("\n  " + dimStyle.Render("commit "+batch.CommitHash) + "\n")
	}
	return b.String()
}

// RenderHistory renders persisted runs, oldest first.
func RenderHistory(entries []domain.RunEntry) string {
	if len(entries) == 0 {
		return dimStyle.Render("  No history recorded yet.") + "\n"
	}
	var b strings.Builder
	b.WriteString("  " + titleStyle.Render("History") + "\n\n")
	for _, e := range entries {
		fmt.Fprintf(&b, "  %s  %-40s %5.1f  %s\n", dimStyle.Render(e.Timestamp), e.Path, e.Score,
			dimStyle.Render(e.Level))
	}
	return b.String()
}

func renderBar(b *strings.Builder, name string, score, max float64) {
	const width = 20
	filled := 0
	if max > 0 {
		filled = int(score / max * width)
	}
	if filled > width {
		filled = width
	}
	bar := strings.Repeat("█", filled) + strings.Repeat("░", width-filled)
	fmt.Fprintf(b, "  %-24s %s %5.2f\n", name, faintStyle.Render(bar), score)
}

func renderFeatureLine(b *strings.Builder, label string, items []string) {
	if len(items) == 0 {
		return
	}
	fmt.Fprintf(b, "  %s %s\n", titleStyle.Render(label+":"), dimStyle.Render(strings.Join(items, ", ")))
}
