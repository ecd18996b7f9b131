// Package main is the entry point for the richclip styled-text exporter.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"golang.org/x/term"

	"github.com/dshills/richclip/internal/config"
	"github.com/dshills/richclip/internal/log"
)

// Version information (set via ldflags during build).
var (
	version = "dev"
	commit  = "unknown"
	date    = "unknown"
)

// cfg holds the loaded settings. Populated by the root PersistentPreRunE
// before any subcommand runs.
var cfg = config.Default()

var rootCmd = &cobra.Command{
	Use:   "richclip",
	Short: "Styled-text exporter for source code",
	Long: `Richclip flattens source code selections into styled artifacts:
syntax-highlighted HTML, RTF, ANSI or msgpack output driven by color
schemes and overlay marks, with font fallback segmentation and common
indent stripping. Disjoint selections are stitched into one stream.`,
	Version:           version,
	SilenceUsage:      true,
	PersistentPreRunE: initRoot,
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		_ = zap.L().Sync()
	},
}

func init() {
	rootCmd.PersistentFlags().StringP("config", "c", "", "settings file (default: <user config dir>/richclip/config.toml)")
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "debug logging")
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		os.Exit(1)
	}
}

// initRoot builds the process logger and loads settings. A missing
// settings file is not an error; the defaults apply.
func initRoot(cmd *cobra.Command, args []string) error {
	verbose, err := cmd.Flags().GetBool("verbose")
	if err != nil {
		return err
	}
	l, err := log.Init(verbose)
	if err != nil {
		return fmt.Errorf("initializing logger: %w", err)
	}
	zap.ReplaceGlobals(l)
	cmd.SetContext(log.NewContext(cmd.Context(), l))

	path, err := cmd.Flags().GetString("config")
	if err != nil {
		return err
	}
	if path == "" {
		path = config.DefaultPath()
	}
	if path == "" {
		return nil
	}
	loaded, err := config.Load(path)
	if err != nil {
		return err
	}
	if err := loaded.Validate(); err != nil {
		return fmt.Errorf("settings file %s: %w", path, err)
	}
	cfg = loaded
	l.Debug("settings loaded", zap.String("path", path))
	return nil
}

// isTerminal reports whether f is attached to a terminal.
func isTerminal(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}
