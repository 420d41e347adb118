// Package fsutil loads files from disk for searching. Files are read whole
// into memory and must hold valid UTF-8 text.
package fsutil
