package app

// Default logging settings. The command line has no way to change them, so
// a normal run prints nothing but matches.
const (
	DefaultLogLevel  = "warn"
	DefaultLogFormat = "text"
)

// Config holds everything a single search run needs.
type Config struct {
	Query         string
	Filename      string
	CaseSensitive bool

	LogLevel  string // debug, info, warn or error; anything else means warn
	LogFormat string // text or json; anything else means text
}

// NewConfig returns the configuration for one search with the default
// logging settings. An empty query or filename is kept as is: the first
// matches every line and the second fails later as an unreadable file.
func NewConfig(query, filename string, caseSensitive bool) *Config {
	return &Config{
		Query:         query,
		Filename:      filename,
		CaseSensitive: caseSensitive,
		LogLevel:      DefaultLogLevel,
		LogFormat:     DefaultLogFormat,
	}
}
