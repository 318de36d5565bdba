package domain

import "fmt"

// TargetDialect selects which weight table and penalty terms apply to an
// analysis. The engine only accepts the typed values below; string parsing
// belongs to the CLI adapter.
type TargetDialect string

const (
	PostgreSQL TargetDialect = "postgresql"
	MySQL      TargetDialect = "mysql"
)

func (d TargetDialect) Valid() bool {
	return d == PostgreSQL || d == MySQL
}

func (d TargetDialect) String() string { return string(d) }

// ObjectType classifies a PL/SQL program unit.
type ObjectType string

const (
	ObjectPackage          ObjectType = "PACKAGE"
	ObjectProcedure        ObjectType = "PROCEDURE"
	ObjectFunction         ObjectType = "FUNCTION"
	ObjectTrigger          ObjectType = "TRIGGER"
	ObjectView             ObjectType = "VIEW"
	ObjectMaterializedView ObjectType = "MATERIALIZED_VIEW"
)

// ComplexityLevel is one of the six fixed classification tiers.
type ComplexityLevel string

const (
	VerySimple       ComplexityLevel = "VERY_SIMPLE"
	Simple           ComplexityLevel = "SIMPLE"
	Moderate         ComplexityLevel = "MODERATE"
	Complex          ComplexityLevel = "COMPLEX"
	VeryComplex      ComplexityLevel = "VERY_COMPLEX"
	ExtremelyComplex ComplexityLevel = "EXTREMELY_COMPLEX"
)

// LevelFor maps a normalized 0-10 score onto its tier. Breakpoints are
// inclusive on the upper bound: a score of exactly 3.0 is still SIMPLE.
func LevelFor(normalized float64) ComplexityLevel {
	switch {
	case normalized <= 1:
		return VerySimple
	case normalized <= 3:
		return Simple
	case normalized <= 5:
		return Moderate
	case normalized <= 7:
		return Complex
	case normalized <= 9:
		return VeryComplex
	default:
		return ExtremelyComplex
	}
}

// RecommendationFor returns the fixed migration recommendation for a tier.
func RecommendationFor(level ComplexityLevel) string {
	switch level {
	case VerySimple:
		return "automatic conversion"
	case Simple:
		return "automatic conversion with review"
	case Moderate:
		return "assisted conversion with targeted rework"
	case Complex:
		return "manual conversion by a migration engineer"
	case VeryComplex:
		return "manual conversion with redesign of critical parts"
	case ExtremelyComplex:
		return "complete redesign"
	default:
		return ""
	}
}

// ParseObjectType converts a stored string back to a typed ObjectType.
func ParseObjectType(s string) (ObjectType, error) {
	switch ObjectType(s) {
	case ObjectPackage, ObjectProcedure, ObjectFunction, ObjectTrigger, ObjectView, ObjectMaterializedView:
		return ObjectType(s), nil
	}
	return "", fmt.Errorf("unknown object type %q", s)
}
