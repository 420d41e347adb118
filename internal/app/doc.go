// Package app contains the search run itself: it loads the configured file,
// searches it and prints the matching lines. It is decoupled from the
// command line so it can be driven directly from tests.
package app
