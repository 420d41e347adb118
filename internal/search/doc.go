// Package search implements line-oriented substring search over an in-memory
// text. It is pure: no I/O, no logging, no shared state.
//
// Contents are split into lines on '\n'. Each line is numbered from 1 and
// tested for containment of the query, either exactly or after lowercasing
// both sides. Matches come back in ascending line order and carry the
// original, unmodified line text.
package search
