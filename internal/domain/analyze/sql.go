package analyze

import (
	"regexp"
	"sort"
	"strings"

	"github.com/TeiNam/oracle-migration-analyzer-sub002/internal/domain"
)

var fromTerminators = map[string]bool{
	"WHERE": true, "GROUP": true, "ORDER": true, "HAVING": true,
	"UNION": true, "INTERSECT": true, "MINUS": true, "EXCEPT": true,
}

var whereTerminators = map[string]bool{
	"GROUP": true, "ORDER": true, "HAVING": true,
	"UNION": true, "INTERSECT": true, "MINUS": true, "EXCEPT": true,
}

var (
	hintBlockRe     = regexp.MustCompile(`/\*\+([^*]*(?:\*[^/][^*]*)*)\*/`)
	likeWildcardRe  = regexp.MustCompile(`LIKE\s*'%[^']*%'`)
	setOperators    = map[string]bool{"UNION": true, "INTERSECT": true, "MINUS": true, "EXCEPT": true}
	notCallKeywords = map[string]bool{"IN": true, "EXISTS": true, "NOT": true, "ANY": true, "ALL": true, "SOME": true, "AND": true, "OR": true, "SELECT": true}
)

// DetectSQL extracts the full feature set from one normalized query. It is a
// pure function: identical input always yields an identical feature set.
func DetectSQL(text string) *domain.SQLFeatureSet {
	events := scanEvents(text)

	fs := &domain.SQLFeatureSet{
		JoinCount:        countJoins(events),
		SubqueryDepth:    subqueryDepth(events),
		CTECount:         countCTEs(events),
		SetOperatorCount: countSetOperators(events),
		CaseExprCount:    countWordEvents(events, "CASE"),
		HasFullScanRisk:  hasToken(text, "SELECT") && !hasToken(text, "WHERE"),
		HasOrderBy:       hasPhrase(text, "ORDER BY"),
		HasGroupBy:       hasPhrase(text, "GROUP BY"),
		HasHaving:        hasToken(text, "HAVING"),
		HasKeepClause:    hasToken(text, "KEEP"),
		HasCountCall:     hasToken(text, "COUNT"),
		NormalizedLength: len(text),
	}

	fs.AnalyticFuncCount, fs.AggregateFuncCount = countFunctionCalls(events)
	fs.DerivedTableCount = countDerivedTables(events)
	fs.OracleSyntax = detectOracleSyntax(text)
	fs.OracleFunctions = detectOracleFunctions(text)
	fs.Hints = detectHints(text)
	fs.Penalties = wherePenalties(text, events)
	return fs
}

// countJoins counts explicit JOIN keywords (outer-keyword variants count the
// single JOIN token, never twice) plus implicit joins: top-level commas in
// the FROM clause.
func countJoins(events []event) int {
	n := countWordEvents(events, "JOIN")
	start, end, ok := clauseSpan(events, "FROM", fromTerminators)
	if !ok {
		return n
	}
	for i := start + 1; i < end; i++ {
		if events[i].kind == evComma && events[i].depth == 0 {
			n++
		}
	}
	return n
}

// subqueryDepth folds the event stream with a stack of open SELECTs. Each
// SELECT records the paren depth it lives at; a closing paren pops every
// SELECT opened deeper than the resumed depth. The outermost SELECT does not
// count as a subquery.
func subqueryDepth(events []event) int {
	var stack []int
	maxOpen := 0
	for _, ev := range events {
		switch {
		case ev.kind == evWord && ev.word == "SELECT":
			stack = append(stack, ev.depth)
			if len(stack) > maxOpen {
				maxOpen = len(stack)
			}
		case ev.kind == evClose:
			for len(stack) > 0 && stack[len(stack)-1] > ev.depth {
				stack = stack[:len(stack)-1]
			}
		}
	}
	if maxOpen <= 1 {
		return 0
	}
	return maxOpen - 1
}

// countCTEs counts `<name> AS (` occurrences inside the WITH-clause region,
// stopping at the first top-level SELECT, which starts the main query.
func countCTEs(events []event) int {
	withIdx := -1
	for i, ev := range events {
		if ev.kind == evWord && ev.depth == 0 && ev.word == "WITH" {
			withIdx = i
			break
		}
	}
	if withIdx == -1 {
		return 0
	}
	n := 0
	for i := withIdx + 1; i < len(events); i++ {
		ev := events[i]
		if ev.kind == evWord && ev.depth == 0 && ev.word == "SELECT" {
			break
		}
		if ev.kind != evWord || ev.depth != 0 || ev.word != "AS" {
			continue
		}
		// `name AS (` or `name (cols) AS (`: the event before AS is the CTE
		// name or the close of its column list.
		prevOK := events[i-1].kind == evWord || events[i-1].kind == evClose
		nextOK := i+1 < len(events) && events[i+1].kind == evOpen
		if prevOK && nextOK {
			n++
		}
	}
	return n
}

// countSetOperators counts UNION (UNION ALL counts once), INTERSECT, MINUS
// and EXCEPT occurrences.
func countSetOperators(events []event) int {
	n := 0
	for _, ev := range events {
		if ev.kind == evWord && setOperators[ev.word] {
			n++
		}
	}
	return n
}

// countFunctionCalls walks call sites once and buckets each into analytic
// (call followed by OVER) or aggregate. A SUM(...) OVER (...) is analytic
// only, never both.
func countFunctionCalls(events []event) (analytic, aggregate int) {
	for i := 0; i+1 < len(events); i++ {
		if events[i].kind != evWord || events[i+1].kind != evOpen {
			continue
		}
		name := events[i].word
		isAnalytic := analyticFunctions[name]
		isAggregate := aggregateFunctions[name]
		if !isAnalytic && !isAggregate {
			continue
		}
		switch {
		case followedByOver(events, i+1):
			analytic++
		case isAggregate:
			aggregate++
		}
	}
	return analytic, aggregate
}

// followedByOver reports whether the call whose argument list opens at
// events[openIdx] is immediately followed by an OVER clause.
func followedByOver(events []event, openIdx int) bool {
	d := events[openIdx].depth
	for i := openIdx + 1; i < len(events); i++ {
		if events[i].kind == evClose && events[i].depth == d {
			w := nextWord(events, i+1)
			return w != -1 && events[w].word == "OVER"
		}
	}
	return false
}

// countDerivedTables counts subqueries opening directly inside the FROM
// clause: an open paren at clause depth whose first token is SELECT.
func countDerivedTables(events []event) int {
	start, end, ok := clauseSpan(events, "FROM", fromTerminators)
	if !ok {
		return 0
	}
	n := 0
	for i := start + 1; i < end-1; i++ {
		if events[i].kind == evOpen && events[i].depth == 0 &&
			events[i+1].kind == evWord && events[i+1].word == "SELECT" {
			n++
		}
	}
	return n
}

func detectOracleSyntax(text string) []string {
	var found []string
	for _, kw := range oracleSyntax {
		if hasPhrase(text, kw) {
			found = append(found, kw)
		}
	}
	return found
}

func detectOracleFunctions(text string) []string {
	var found []string
	for _, name := range oracleFunctionNames {
		if hasToken(text, name) {
			found = append(found, name)
		}
	}
	sort.Strings(found)
	return found
}

// detectHints collects recognized hint names, one entry per occurrence,
// looking only inside /*+ ... */ blocks.
func detectHints(text string) []string {
	var found []string
	for _, m := range hintBlockRe.FindAllStringSubmatch(text, -1) {
		for _, ev := range scanEvents(strings.ToUpper(m[1])) {
			if ev.kind == evWord && oracleHints[ev.word] {
				found = append(found, ev.word)
			}
		}
	}
	return found
}

// wherePenalties evaluates the four performance-risk flags. DISTINCT is
// checked against the whole query; the other three only apply inside the
// WHERE clause.
func wherePenalties(text string, events []event) domain.PerformancePenalties {
	p := domain.PerformancePenalties{Distinct: hasToken(text, "DISTINCT")}

	start, end, ok := clauseSpan(events, "WHERE", whereTerminators)
	if !ok {
		return p
	}
	from := events[start].pos
	to := len(text)
	if end < len(events) {
		to = events[end].pos
	}
	region := text[from:to]

	p.LikePattern = likeWildcardRe.MatchString(region)

	orCount := 0
	for i := start + 1; i < end; i++ {
		ev := events[i]
		if ev.kind != evWord {
			continue
		}
		if ev.word == "OR" {
			orCount++
		}
		// A word followed by an open paren is treated as a call unless it
		// is a keyword that legitimately precedes a parenthesized list.
		if i+1 < end && events[i+1].kind == evOpen && !notCallKeywords[ev.word] {
			p.FunctionInWhere = true
		}
	}
	p.OrConditions = orCount >= 3
	return p
}

// hasToken reports whether word occurs in text with non-word characters (or
// string boundaries) on both sides. Boundary checks only apply where the
// pattern itself starts or ends with a word character, so operator glyphs
// like (+) match anywhere.
func hasToken(text, word string) bool {
	if word == "" {
		return false
	}
	for idx := 0; ; {
		k := strings.Index(text[idx:], word)
		if k < 0 {
			return false
		}
		k += idx
		before := !isWordByte(word[0]) || k == 0 || !isWordByte(text[k-1])
		after := !isWordByte(word[len(word)-1]) || k+len(word) >= len(text) || !isWordByte(text[k+len(word)])
		if before && after {
			return true
		}
		idx = k + 1
	}
}

// hasPhrase is hasToken for multi-word phrases and operator glyphs.
func hasPhrase(text, phrase string) bool {
	return hasToken(text, phrase)
}

func countWordEvents(events []event, word string) int {
	n := 0
	for _, ev := range events {
		if ev.kind == evWord && ev.word == word {
			n++
		}
	}
	return n
}
