package analyze

// The detectors that measure depth or count-with-context all fold the same
// left-to-right event stream instead of running independent pattern counts,
// which mis-measure nested or adjacent constructs.

type eventKind uint8

const (
	evWord eventKind = iota
	evOpen
	evClose
	evComma
)

// event is one typed occurrence at a source position. depth is the
// parenthesis depth of the position itself: for evOpen the depth outside the
// paren, for evClose the depth resumed after it closes.
type event struct {
	kind  eventKind
	word  string
	pos   int
	depth int
}

func isWordByte(c byte) bool {
	return c >= 'A' && c <= 'Z' || c >= '0' && c <= '9' || c == '_' || c == '$' || c == '#'
}

// scanEvents tokenizes normalized text into word, paren, and comma events.
// Quoted literals produce no events. Hint-comment bodies are skipped so hint
// names never masquerade as query keywords.
func scanEvents(text string) []event {
	events := make([]event, 0, len(text)/4)
	depth := 0

	for i := 0; i < len(text); {
		c := text[i]
		switch {
		case c == '\'':
			j := i + 1
			for j < len(text) && text[j] != '\'' {
				j++
			}
			i = j + 1
		case c == '/' && i+1 < len(text) && text[i+1] == '*':
			j := i + 2
			for j+1 < len(text) && !(text[j] == '*' && text[j+1] == '/') {
				j++
			}
			i = j + 2
		case c == '(':
			events = append(events, event{kind: evOpen, pos: i, depth: depth})
			depth++
			i++
		case c == ')':
			if depth > 0 {
				depth--
			}
			events = append(events, event{kind: evClose, pos: i, depth: depth})
			i++
		case c == ',':
			events = append(events, event{kind: evComma, pos: i, depth: depth})
			i++
		case isWordByte(c) && !(c >= '0' && c <= '9'):
			j := i + 1
			for j < len(text) && isWordByte(text[j]) {
				j++
			}
			events = append(events, event{kind: evWord, word: text[i:j], pos: i, depth: depth})
			i = j
		default:
			i++
		}
	}
	return events
}

// nextWord returns the first word event at or after index i, or -1.
func nextWord(events []event, i int) int {
	for ; i < len(events); i++ {
		if events[i].kind == evWord {
			return i
		}
	}
	return -1
}

// clauseSpan locates the first top-level occurrence of the opening keyword
// and returns the event index range (open, end] of its clause: the clause
// runs until one of the terminator keywords appears at the same depth, or
// until the end of the stream. Returns ok=false when the keyword is absent.
func clauseSpan(events []event, open string, terminators map[string]bool) (start, end int, ok bool) {
	start = -1
	for i, ev := range events {
		if ev.kind == evWord && ev.depth == 0 && ev.word == open {
			start = i
			break
		}
	}
	if start == -1 {
		return 0, 0, false
	}
	for i := start + 1; i < len(events); i++ {
		ev := events[i]
		if ev.kind == evWord && ev.depth == 0 && terminators[ev.word] {
			return start, i, true
		}
	}
	return start, len(events), true
}
