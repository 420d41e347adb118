package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/specialistvlad/minigrep/internal/app"
	"github.com/specialistvlad/minigrep/internal/cli"
)

// main is the entrypoint for the minigrep application.
func main() {
	// Use a minimal logger until the App builds its own.
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelWarn,
	})))

	// The real main function handles errors and exit codes.
	if err := run(os.Stdout, os.Stderr, os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(exitCode(err))
	}
}

// exitCode maps a run error to the process exit status: the code carried by
// a *cli.ExitError, 1 for any other failure and 0 for success.
func exitCode(err error) int {
	if err == nil {
		return 0
	}
	var exitErr *cli.ExitError
	if errors.As(err, &exitErr) {
		return exitErr.Code
	}
	return 1
}

// run encapsulates the main application logic for easier testing and error handling.
func run(outW, logW io.Writer, args []string) error {
	config, err := cli.Parse(args)
	if err != nil {
		return err
	}

	return app.New(outW, logW, config).Run(context.Background())
}
