package main

import (
	"context"
	"flag"
	"log/slog"
	"os"
	"path"
	"strings"
	"time"

	"github.com/google/subcommands"
	"github.com/lmittmann/tint"

	"github.com/baskervilski/invoicer/cmd"
)

func main() {
	slog.SetDefault(slog.New(
		tint.NewHandler(os.Stderr, &tint.Options{
			Level:      levelFromEnv(),
			TimeFormat: time.Kitchen,
		}),
	))

	commander := subcommands.NewCommander(flag.CommandLine, path.Base(os.Args[0]))
	cmd.Register(commander)

	flag.Parse()
	os.Exit(int(commander.Execute(context.Background())))
}

// levelFromEnv reads the log level from the LOG_LEVEL environment
// variable (debug, info, warn, error), defaulting to info.
func levelFromEnv() slog.Level {
	switch strings.ToLower(os.Getenv("LOG_LEVEL")) {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
