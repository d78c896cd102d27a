// Command dln converts images to and from the DLN format.
package main

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
)

// Version information - set by ldflags during build
var (
	Version   = "dev"
	GitCommit = "unknown"
)

const usage = `dln - DLN image container tool

Usage:
  dln encode [-o out.dln] [-compressor zstd|lz4] [-store] [-meta key=value]... <image>
  dln decode [-o out.png] [-compressor zstd|lz4] [-strict] <image.dln>
  dln info <image.dln>
  dln version

Inputs may be PNG, JPEG, GIF, BMP, TIFF, WebP or DDS. Decode output format
follows the -o extension (PNG, JPEG, GIF, BMP, TIFF or DDS).

Environment variables:
  DLN_LOG_LEVEL=debug    Enable debug logging
`

func main() {
	logger := newLogger(os.Getenv("DLN_LOG_LEVEL"))
	if err := run(os.Args[1:], os.Stdout, logger); err != nil {
		if errors.Is(err, errUsage) {
			fmt.Fprint(os.Stderr, usage)
			os.Exit(2)
		}
		logger.Error("command failed", "err", err)
		os.Exit(1)
	}
}

var errUsage = errors.New("usage")

func newLogger(level string) *slog.Logger {
	lvl := slog.LevelInfo
	switch strings.ToLower(level) {
	case "debug":
		lvl = slog.LevelDebug
	case "warn":
		lvl = slog.LevelWarn
	case "error":
		lvl = slog.LevelError
	}

	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: lvl}))
}

func run(args []string, stdout io.Writer, logger *slog.Logger) error {
	if len(args) == 0 {
		return errUsage
	}

	switch args[0] {
	case "encode":
		return runEncode(args[1:], logger)
	case "decode":
		return runDecode(args[1:], logger)
	case "info":
		return runInfo(args[1:], stdout)
	case "version", "--version", "-v":
		fmt.Fprintf(stdout, "dln %s (commit %s)\n", Version, GitCommit)
		return nil
	case "help", "--help", "-h":
		fmt.Fprint(stdout, usage)
		return nil
	default:
		return errUsage
	}
}
