// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package iniconf

import (
	"regexp"
	"strings"
)

// LineKind identifies the form of a single configuration line.
type LineKind int

const (
	// LineUnknown is a line that matches no known form. It is dropped.
	LineUnknown LineKind = iota
	// LineComment is a line whose first non-space character is ";".
	LineComment
	// LineKeyValue is a "key = value" pair.
	LineKeyValue
	// LineSection is a "[name]" section header.
	LineSection
	// LineBlank is a zero-length line. It closes the current section.
	LineBlank
)

// String returns a short lower-case name of the kind.
func (k LineKind) String() string {
	switch k {
	case LineComment:
		return "comment"
	case LineKeyValue:
		return "key-value"
	case LineSection:
		return "section"
	case LineBlank:
		return "blank"
	default:
		return "unknown"
	}
}

// Line is the classification result for one raw line.
//
// Key and Value are set for [LineKeyValue], Section for [LineSection].
type Line struct {
	Kind    LineKind
	Key     string
	Value   string
	Section string
}

// space matches the characters treated as white space around names and
// values. It is wider than RE2's \s: vertical tab, no-break space and the
// byte order mark are included so that files saved by Windows editors parse
// the same way.
const space = `[\t\n\v\f\r \x{00A0}\x{1680}\x{2000}-\x{200A}\x{2028}\x{2029}\x{202F}\x{205F}\x{3000}\x{FEFF}]`

var (
	commentPattern  = compile(`^S*;.*$`)
	keyValuePattern = compile(`^S*([^=]+?)S*=S*(.*?)S*$`)
	sectionPattern  = compile(`^S*\[(.*)\]S*$`)
)

func compile(pattern string) *regexp.Regexp {
	return regexp.MustCompile(strings.ReplaceAll(pattern, "S*", space+"*"))
}

// ClassifyLine determines the form of raw. Forms are checked in a fixed
// order: comment, key-value, section, blank. The first match wins, so
// "a=[b]" is a key-value pair and ";a=b" is a comment.
func ClassifyLine(raw string) Line {
	if commentPattern.MatchString(raw) {
		return Line{Kind: LineComment}
	}

	if m := keyValuePattern.FindStringSubmatch(raw); m != nil {
		return Line{
			Kind:  LineKeyValue,
			Key:   trimSpace(m[1]),
			Value: m[2],
		}
	}

	if m := sectionPattern.FindStringSubmatch(raw); m != nil {
		return Line{
			Kind:    LineSection,
			Section: trimSpace(m[1]),
		}
	}

	if raw == "" {
		return Line{Kind: LineBlank}
	}

	return Line{Kind: LineUnknown}
}

func trimSpace(s string) string {
	return strings.TrimFunc(s, isSpace)
}

// isSpace reports whether r belongs to the space class.
func isSpace(r rune) bool {
	switch r {
	case '\t', '\n', '\v', '\f', '\r', ' ',
		'\u00A0', '\u1680', '\u2028', '\u2029', '\u202F', '\u205F', '\u3000', '\uFEFF':
		return true
	}
	return r >= '\u2000' && r <= '\u200A'
}

// splitLines splits document on "\r\n", "\r" and "\n". Every terminator
// ends exactly one line, so consecutive terminators yield blank lines.
func splitLines(document string) []string {
	lines := make([]string, 0, strings.Count(document, "\n")+1)

	start := 0
	for i := 0; i < len(document); i++ {
		switch document[i] {
		case '\n':
			lines = append(lines, document[start:i])
			start = i + 1
		case '\r':
			lines = append(lines, document[start:i])
			if i+1 < len(document) && document[i+1] == '\n' {
				i++
			}
			start = i + 1
		}
	}

	return append(lines, document[start:])
}
