package app

import (
	"context"
	"fmt"

	"github.com/specialistvlad/minigrep/internal/ctxlog"
	"github.com/specialistvlad/minigrep/internal/fsutil"
	"github.com/specialistvlad/minigrep/internal/search"
)

// Run reads the configured file, searches it and writes the text of every
// matching line to the App's output, one per line. Nothing is written when
// the file cannot be read.
func (a *App) Run(ctx context.Context) error {
	ctx = ctxlog.WithLogger(ctx, a.logger)
	a.logger.Debug("App.Run method started.", "file", a.config.Filename, "case_sensitive", a.config.CaseSensitive)

	contents, err := fsutil.ReadTextFile(ctx, a.config.Filename)
	if err != nil {
		return err
	}

	matches := search.Search(a.config.Query, contents, a.config.CaseSensitive)
	a.logger.Debug("Search finished.", "query", a.config.Query, "matches", len(matches))

	for _, m := range matches {
		if _, err := fmt.Fprintln(a.outW, m); err != nil {
			return fmt.Errorf("failed to write match on line %d: %w", m.Line, err)
		}
	}

	a.logger.Debug("App.Run method finished.")
	return nil
}
