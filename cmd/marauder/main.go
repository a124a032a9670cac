// Package main provides the entry point for the marauder catalog browser.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/five82/marauder/internal/app"
	"github.com/five82/marauder/internal/config"
	"github.com/five82/marauder/internal/prefs"
)

var version = "0.1.0-dev"

// runApp is replaced in tests.
var runApp = app.Run

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "marauder: %v\n", err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var opts app.Options

	cmd := &cobra.Command{
		Use:   "marauder",
		Short: "Browse the characters of the wizarding world in your terminal",
		Long: `marauder shows a searchable, filterable and paginated catalog of
Harry Potter characters. Press ? inside the program for key bindings.

The catalog comes from the copy built into the binary unless --catalog or the
config file names a file or an http(s) URL.`,
		Version:       version,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runApp(cmd.Context(), opts)
		},
	}

	flags := cmd.Flags()
	flags.StringVar(&opts.ConfigPath, "config", "", "config file (default "+config.DefaultPath()+")")
	flags.StringVar(&opts.PrefsPath, "prefs", "", "preferences file (default "+prefs.DefaultPath()+")")
	flags.StringVarP(&opts.Overrides.Catalog, "catalog", "c", "", `catalog source: "bundled", a path, file:// or http(s) URL`)
	flags.StringVar(&opts.Overrides.LogLevel, "log-level", "", "log level: debug, info, warn or error")
	flags.StringVar(&opts.Overrides.Locale, "locale", "", "interface language: es or en")

	return cmd
}
