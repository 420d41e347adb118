package search

// Match is a single line of the searched contents that contains the query.
type Match struct {
	Line int    // 1-based line number
	Text string // The line as it appears in the contents, without its terminator
}

// String returns the display form of the match, which is the raw line text.
func (m Match) String() string {
	return m.Text
}
