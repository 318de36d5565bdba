// Package analyze contains the feature-detection pass over Oracle SQL and
// PL/SQL source text. Every detector is a pure function over the normalized
// text; nothing in this package performs I/O or holds state between calls.
package analyze

import "strings"

// Normalize produces the canonical text all detectors scan: comments
// removed, uppercased, whitespace collapsed to single spaces, trimmed.
// Optimizer hint blocks (/*+ ... */) survive normalization because hint
// detection has to see them. Never fails; empty input yields empty output.
func Normalize(raw string) string {
	stripped := stripComments(raw, true)
	return strings.Join(strings.Fields(strings.ToUpper(stripped)), " ")
}

// StripComments removes line and block comments but keeps line breaks, so
// PL/SQL line counting can run on source that still has its original shape.
func StripComments(raw string) string {
	return stripComments(raw, false)
}

// stripComments walks the source once, copying everything except comments.
// String literals are copied verbatim so a -- or /* inside a quoted value
// never starts a comment. When keepHints is set, block comments opening
// with /*+ are preserved whole.
func stripComments(src string, keepHints bool) string {
	var b strings.Builder
	b.Grow(len(src))

	for i := 0; i < len(src); {
		c := src[i]

		// Quoted literal: copy through the closing quote, honoring ''
		// escapes.
		if c == '\'' {
			j := i + 1
			for j < len(src) {
				if src[j] == '\'' {
					if j+1 < len(src) && src[j+1] == '\'' {
						j += 2
						continue
					}
					j++
					break
				}
				j++
			}
			b.WriteString(src[i:j])
			i = j
			continue
		}

		// Line comment: drop through end of line, keep the newline.
		if c == '-' && i+1 < len(src) && src[i+1] == '-' {
			j := i + 2
			for j < len(src) && src[j] != '\n' {
				j++
			}
			i = j
			continue
		}

		// Block comment, possibly a hint block.
		if c == '/' && i+1 < len(src) && src[i+1] == '*' {
			isHint := i+2 < len(src) && src[i+2] == '+'
			j := i + 2
			for j+1 < len(src) && !(src[j] == '*' && src[j+1] == '/') {
				j++
			}
			if j+1 < len(src) {
				j += 2
			} else {
				j = len(src) // unterminated comment runs to EOF
			}
			if isHint && keepHints {
				b.WriteString(src[i:j])
			} else {
				b.WriteByte(' ')
			}
			i = j
			continue
		}

		b.WriteByte(c)
		i++
	}
	return b.String()
}

// CountSourceLines counts non-blank lines after comment removal. It runs on
// the raw text, before whitespace collapsing, so line breaks survive.
func CountSourceLines(raw string) int {
	n := 0
	for _, line := range strings.Split(StripComments(raw), "\n") {
		if strings.TrimSpace(line) != "" {
			n++
		}
	}
	return n
}
