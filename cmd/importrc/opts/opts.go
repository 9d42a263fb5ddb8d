package opts

import (
	"context"
	"io"

	"github.com/walteh/importrc/pkg/config"
	"gitlab.com/tozd/go/errors"
)

// RootOpts contains shared options used by all commands
type RootOpts struct {
	ConfigFile    string
	SharedPackage string
	Extensions    []string
	DryRun        bool
	Async         bool
	Console       io.Writer
}

// Resolve builds the effective configuration for a run. Precedence: flags
// and the positional root argument override file values, defaults fill the
// rest. rootDir is empty when the user gave no positional argument, so a
// config file's root survives unless explicitly overridden; with neither,
// the walk roots at the current directory.
func (o *RootOpts) Resolve(ctx context.Context, rootDir string) (*config.Config, error) {
	var cfg *config.Config
	if o.ConfigFile != "" {
		loaded, err := config.Load(ctx, o.ConfigFile)
		if err != nil {
			return nil, errors.Errorf("loading config: %w", err)
		}
		cfg = loaded
	} else {
		cfg = config.Default(rootDir)
	}

	if rootDir != "" {
		cfg.Root = rootDir
	}
	if cfg.Root == "" {
		cfg.Root = "."
	}
	if o.SharedPackage != "" {
		cfg.SharedPackage = o.SharedPackage
	}
	if len(o.Extensions) > 0 {
		cfg.Extensions = o.Extensions
	}
	if o.DryRun {
		cfg.DryRun = true
	}
	if o.Async {
		cfg.Async = true
	}

	if err := cfg.Validate(); err != nil {
		return nil, errors.Errorf("validating config: %w", err)
	}

	return cfg, nil
}
