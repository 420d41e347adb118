package search

import (
	"iter"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Search returns every line of contents that contains query. When
// caseSensitive is false both sides are lowercased before comparing.
func Search(query, contents string, caseSensitive bool) []Match {
	if caseSensitive {
		return CaseSensitive(query, contents)
	}
	return CaseInsensitive(query, contents)
}

// CaseSensitive returns the lines of contents that contain query as an exact
// substring. An empty query matches every line.
func CaseSensitive(query, contents string) []Match {
	var results []Match
	for n, text := range Lines(contents) {
		if strings.Contains(text, query) {
			results = append(results, Match{Line: n, Text: text})
		}
	}
	return results
}

// CaseInsensitive returns the lines of contents that contain query once both
// are converted to lowercase. The returned text is the original line.
func CaseInsensitive(query, contents string) []Match {
	// A Caser is not safe for concurrent use, so each call builds its own.
	lower := cases.Lower(language.Und)
	queryLower := lower.String(query)

	var results []Match
	for n, text := range Lines(contents) {
		if strings.Contains(lower.String(text), queryLower) {
			results = append(results, Match{Line: n, Text: text})
		}
	}
	return results
}

// Lines yields each line of contents with its 1-based number. A trailing
// newline does not start an extra empty line, and a "\r" directly before a
// "\n" is dropped along with it.
func Lines(contents string) iter.Seq2[int, string] {
	return func(yield func(int, string) bool) {
		n := 0
		for line := range strings.Lines(contents) {
			n++
			if trimmed, ok := strings.CutSuffix(line, "\n"); ok {
				line = strings.TrimSuffix(trimmed, "\r")
			}
			if !yield(n, line) {
				return
			}
		}
	}
}
