package main

import (
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"github.com/walteh/importrc/cmd/importrc/opts"
)

var (
	// Flags
	debug bool
)

// addRootFlags adds shared flags to the root command
func addRootFlags(cmd *cobra.Command, o *opts.RootOpts) {
	cmd.PersistentFlags().StringVarP(&o.ConfigFile, "config", "c", "", "config file path (.importrc.yaml or .importrc.hcl)")
	cmd.PersistentFlags().BoolVarP(&debug, "debug", "d", false, "enable debug logging")
	cmd.PersistentFlags().BoolVar(&o.DryRun, "dry-run", false, "report changes without writing files")
	cmd.PersistentFlags().BoolVar(&o.Async, "async", false, "process files in parallel")
	cmd.PersistentFlags().StringVar(&o.SharedPackage, "shared-package", "", "canonical package for collapsed type imports")
	cmd.PersistentFlags().StringSliceVar(&o.Extensions, "extensions", nil, "file extension allowlist (e.g. .ts,.tsx)")
}

// setupLogging configures zerolog based on flags
func setupLogging() {
	if debug {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	} else {
		zerolog.SetGlobalLevel(zerolog.InfoLevel)
	}
	log := zerolog.New(os.Stderr).With().Timestamp().Logger()
	zerolog.DefaultContextLogger = &log
}
