package domain_test

import (
	"testing"

	"github.com/TeiNam/oracle-migration-analyzer-sub002/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTargetDialect_Valid(t *testing.T) {
	assert.True(t, domain.PostgreSQL.Valid())
	assert.True(t, domain.MySQL.Valid())
	assert.False(t, domain.TargetDialect("oracle").Valid())
	assert.False(t, domain.TargetDialect("").Valid())
}

func TestLevelFor_Breakpoints(t *testing.T) {
	cases := []struct {
		score float64
		want  domain.ComplexityLevel
	}{
		{0, domain.VerySimple},
		{1, domain.VerySimple},
		{1.01, domain.Simple},
		{3, domain.Simple},
		{3.01, domain.Moderate},
		{5, domain.Moderate},
		{5.5, domain.Complex},
		{7, domain.Complex},
		{7.01, domain.VeryComplex},
		{9, domain.VeryComplex},
		{9.01, domain.ExtremelyComplex},
		{10, domain.ExtremelyComplex},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, domain.LevelFor(tc.score), "score=%v", tc.score)
	}
}

func TestRecommendationFor_CoversEveryLevel(t *testing.T) {
	levels := []domain.ComplexityLevel{
		domain.VerySimple, domain.Simple, domain.Moderate,
		domain.Complex, domain.VeryComplex, domain.ExtremelyComplex,
	}
	seen := make(map[string]bool)
	for _, lvl := range levels {
		rec := domain.RecommendationFor(lvl)
		assert.NotEmpty(t, rec, "level %s", lvl)
		assert.False(t, seen[rec], "recommendation reused for %s", lvl)
		seen[rec] = true
	}
	assert.Equal(t, "automatic conversion", domain.RecommendationFor(domain.VerySimple))
	assert.Equal(t, "complete redesign", domain.RecommendationFor(domain.ExtremelyComplex))
	assert.Empty(t, domain.RecommendationFor(domain.ComplexityLevel("UNKNOWN")))
}

func TestParseObjectType(t *testing.T) {
	got, err := domain.ParseObjectType("PACKAGE")
	require.NoError(t, err)
	assert.Equal(t, domain.ObjectPackage, got)

	got, err = domain.ParseObjectType("MATERIALIZED_VIEW")
	require.NoError(t, err)
	assert.Equal(t, domain.ObjectMaterializedView, got)

	_, err = domain.ParseObjectType("SEQUENCE")
	assert.Error(t, err)
}
