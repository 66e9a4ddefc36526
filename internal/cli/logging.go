package cli

import (
	"log/slog"
	"os"

	"github.com/MatusOllah/slogcolor"
)

// setupLogging installs a colorized slog handler on stderr as the process
// default logger. Command output itself goes to stdout via fmt.
func setupLogging(verbose bool) {
	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}

	opts := *slogcolor.DefaultOptions
	opts.Level = level
	slog.SetDefault(slog.New(slogcolor.NewHandler(os.Stderr, &opts)))
}
