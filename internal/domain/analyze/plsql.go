package analyze

import (
	"regexp"
	"sort"
	"strings"

	"github.com/TeiNam/oracle-migration-analyzer-sub002/internal/domain"
)

var (
	explicitCursorRe = regexp.MustCompile(`\bCURSOR [A-Z][A-Z0-9_$#]* IS\b`)
	forSelectLoopRe  = regexp.MustCompile(`\bFOR [A-Z][A-Z0-9_$#]* IN \( ?SELECT\b`)
	forCursorLoopRe  = regexp.MustCompile(`\bFOR [A-Z][A-Z0-9_$#]* IN ([A-Z][A-Z0-9_$#]*) LOOP\b`)
	packageCallRe    = regexp.MustCompile(`\b[A-Z][A-Z0-9_$#]*\.[A-Z][A-Z0-9_$#]* ?[(;]`)
	dbLinkRe         = regexp.MustCompile(`@[A-Z][A-Z0-9_$#.]+`)
	varDeclRe        = regexp.MustCompile(`\b[A-Z][A-Z0-9_$#]* (CONSTANT )?(NUMBER|VARCHAR2|CHAR|NCHAR|NVARCHAR2|DATE|TIMESTAMP|BOOLEAN|INTEGER|PLS_INTEGER|BINARY_INTEGER|CLOB|BLOB|LONG|RAW)\b[^;]*;`)
)

// DetectPLSQL extracts the full feature set from one PL/SQL program unit.
// The object-type classifier runs first; source that matches none of the
// supported types fails with UnrecognizedObjectTypeError.
func DetectPLSQL(raw string) (*domain.PLSQLFeatureSet, error) {
	text := Normalize(raw)
	objType, err := classifyObjectType(text)
	if err != nil {
		return nil, err
	}

	events := scanEvents(text)

	fs := &domain.PLSQLFeatureSet{
		ObjectType:          objType,
		LineCount:           CountSourceLines(raw),
		CursorCount:         countCursors(text),
		ExceptionBlockCount: countWordEvents(events, "EXCEPTION"),
		NestingDepth:        nestingDepth(events),
		BulkOperationCount:  countPhrase(text, "BULK COLLECT INTO") + countWordEvents(events, "FORALL"),
		DynamicSQLCount:     countPhrase(text, "EXECUTE IMMEDIATE"),
		PackageCallCount:    len(packageCallRe.FindAllString(text, -1)),
		DBLinkCount:         len(dbLinkRe.FindAllString(text, -1)),
		TransactionControl: domain.TransactionControl{
			Savepoint:           hasToken(text, "SAVEPOINT"),
			Rollback:            hasToken(text, "ROLLBACK"),
			RollbackToSavepoint: hasPhrase(text, "ROLLBACK TO"),
			Commit:              hasToken(text, "COMMIT"),
		},
		IfCount:           countIfStatements(events),
		ArithmeticOpCount: countArithmeticOps(text),
		UsesNumberType:    hasToken(text, "NUMBER"),
		UsesLOBTypes:      hasToken(text, "CLOB") || hasToken(text, "BLOB"),
		UsesVarchar2:      hasToken(text, "VARCHAR2"),
	}

	for _, af := range advancedFeatures {
		if hasPhrase(text, af.Pattern) {
			fs.AdvancedFeatures = append(fs.AdvancedFeatures, af.Name)
		}
	}
	for _, cd := range contextDependencies {
		if hasPhrase(text, cd.Pattern) {
			fs.ContextDependencies = append(fs.ContextDependencies, cd.Name)
		}
	}
	fs.ExternalDependencies = detectExternalDependencies(events)

	if objType == domain.ObjectPackage {
		fs.HasPackageVariables = hasPackageVariables(text)
	}
	if objType == domain.ObjectTrigger {
		fs.HasInsteadOfClause = hasPhrase(text, "INSTEAD OF")
		fs.HasCompoundClause = hasPhrase(text, "COMPOUND TRIGGER")
	}
	if objType == domain.ObjectView {
		fs.NonUpdatableView = hasToken(text, "JOIN") || hasPhrase(text, "GROUP BY") ||
			hasToken(text, "DISTINCT") || hasToken(text, "UNION")
	}
	return fs, nil
}

// classifyObjectType is a priority-ordered first-match classifier. The order
// matters because some keywords are substrings of other patterns: VIEW must
// lose to MATERIALIZED VIEW, and PACKAGE must win before FUNCTION, since
// package bodies contain both.
//
// TYPE maps to PROCEDURE for score compatibility with earlier releases.
func classifyObjectType(text string) (domain.ObjectType, error) {
	switch {
	case hasPhrase(text, "MATERIALIZED VIEW"):
		return domain.ObjectMaterializedView, nil
	case hasToken(text, "VIEW"):
		return domain.ObjectView, nil
	case hasToken(text, "PACKAGE"):
		return domain.ObjectPackage, nil
	case hasToken(text, "TRIGGER"):
		return domain.ObjectTrigger, nil
	case hasToken(text, "FUNCTION"):
		return domain.ObjectFunction, nil
	case hasToken(text, "PROCEDURE"):
		return domain.ObjectProcedure, nil
	case hasToken(text, "TYPE"):
		return domain.ObjectProcedure, nil
	}
	head := text
	if len(head) > 40 {
		head = head[:40]
	}
	return "", &domain.UnrecognizedObjectTypeError{Head: head}
}

// countCursors counts explicit `CURSOR name IS` declarations plus implicit
// cursor FOR loops: `FOR x IN (SELECT ...)` and `FOR x IN cursor_name LOOP`.
// Range loops never match the cursor-name form because their lower bound is
// numeric, and REVERSE loops leave the keyword adjacent to the bound rather
// than LOOP.
func countCursors(text string) int {
	n := len(explicitCursorRe.FindAllString(text, -1))
	n += len(forSelectLoopRe.FindAllString(text, -1))
	for _, m := range forCursorLoopRe.FindAllStringSubmatch(text, -1) {
		if m[1] != "REVERSE" {
			n++
		}
	}
	return n
}

// nestingDepth folds the ordered keyword stream: BEGIN/IF/LOOP/WHILE/FOR/CASE
// push, END pops. Compound closers (END IF, END LOOP, END CASE) absorb their
// trailing keyword so it cannot double as an opener, and a LOOP that closes a
// FOR or WHILE header does not push a second level.
func nestingDepth(events []event) int {
	words := make([]event, 0, len(events))
	for _, ev := range events {
		if ev.kind == evWord {
			words = append(words, ev)
		}
	}

	depth, maxDepth := 0, 0
	pendingLoop := false
	push := func() {
		depth++
		if depth > maxDepth {
			maxDepth = depth
		}
	}

	for i := 0; i < len(words); i++ {
		switch words[i].word {
		case "BEGIN", "IF", "CASE":
			push()
		case "FOR", "WHILE":
			// SELECT ... FOR UPDATE is not a loop header.
			if words[i].word == "FOR" && i+1 < len(words) && words[i+1].word == "UPDATE" {
				continue
			}
			push()
			pendingLoop = true
		case "LOOP":
			if pendingLoop {
				pendingLoop = false
			} else {
				push()
			}
		case "END":
			if depth > 0 {
				depth--
			}
			if i+1 < len(words) {
				switch words[i+1].word {
				case "IF", "LOOP", "CASE":
					i++
				}
			}
		}
	}
	return maxDepth
}

// countIfStatements counts IF keywords that open a conditional; the IF in
// END IF is part of the closer.
func countIfStatements(events []event) int {
	n := 0
	var prev string
	for _, ev := range events {
		if ev.kind != evWord {
			continue
		}
		if ev.word == "IF" && prev != "END" {
			n++
		}
		prev = ev.word
	}
	return n
}

// countArithmeticOps counts arithmetic operator characters outside hint
// blocks, a rough proxy for embedded calculation logic.
func countArithmeticOps(text string) int {
	clean := hintBlockRe.ReplaceAllString(text, " ")
	n := 0
	for i := 0; i < len(clean); i++ {
		switch clean[i] {
		case '+', '-', '*', '/':
			n++
		}
	}
	return n
}

// detectExternalDependencies collects distinct UTL_ and DBMS_ package names.
func detectExternalDependencies(events []event) []string {
	seen := map[string]bool{}
	for _, ev := range events {
		if ev.kind != evWord {
			continue
		}
		if strings.HasPrefix(ev.word, "UTL_") || strings.HasPrefix(ev.word, "DBMS_") {
			seen[ev.word] = true
		}
	}
	if len(seen) == 0 {
		return nil
	}
	deps := make([]string, 0, len(seen))
	for d := range seen {
		deps = append(deps, d)
	}
	sort.Strings(deps)
	return deps
}

// hasPackageVariables scans the package header region, between the PACKAGE
// declaration and the first PROCEDURE, FUNCTION or BEGIN, for a
// variable-declaration pattern.
func hasPackageVariables(text string) bool {
	start := strings.Index(text, "PACKAGE")
	if start == -1 {
		return false
	}
	header := text[start:]
	end := len(header)
	for _, kw := range []string{"PROCEDURE", "FUNCTION", "BEGIN"} {
		if k := strings.Index(header, kw); k != -1 && k < end {
			end = k
		}
	}
	return varDeclRe.MatchString(header[:end])
}

// countPhrase counts boundary-safe occurrences of phrase in text.
func countPhrase(text, phrase string) int {
	if phrase == "" {
		return 0
	}
	n := 0
	for idx := 0; ; {
		k := strings.Index(text[idx:], phrase)
		if k < 0 {
			return n
		}
		k += idx
		before := !isWordByte(phrase[0]) || k == 0 || !isWordByte(text[k-1])
		after := !isWordByte(phrase[len(phrase)-1]) || k+len(phrase) >= len(text) || !isWordByte(text[k+len(phrase)])
		if before && after {
			n++
		}
		idx = k + len(phrase)
	}
}
