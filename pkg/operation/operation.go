// Package operation wires the walker, engine, and reporter into the
// user-facing fix and status operations
package operation

import (
	"context"

	"github.com/walteh/importrc/pkg/config"
	"github.com/walteh/importrc/pkg/status"
	"github.com/walteh/importrc/pkg/walker"
	"gitlab.com/tozd/go/errors"
)

// 🎯 Operator defines the main interface for importrc operations
type Operator interface {
	// Fix rewrites matching import specifiers under the configured root
	Fix(ctx context.Context) (*walker.Summary, error)
	// Status is a read-only check indicating if any file would change
	Status(ctx context.Context) (bool, error)
}

// 🔧 Options contains configuration for the operator
type Options struct {
	// Config is the importrc configuration
	Config *config.Config
	// Reporter prints per-file progress and the final summary
	Reporter *status.Reporter
}

// 🏭 New creates a new operator with the given options
func New(opts Options) (Operator, error) {
	if opts.Config == nil {
		return nil, errors.Errorf("config is required")
	}
	if opts.Reporter == nil {
		return nil, errors.Errorf("reporter is required")
	}
	if err := opts.Config.Validate(); err != nil {
		return nil, errors.Errorf("validating config: %w", err)
	}
	return &operator{
		config:   opts.Config,
		reporter: opts.Reporter,
	}, nil
}

// 🎮 operator implements the Operator interface
type operator struct {
	config   *config.Config
	reporter *status.Reporter
}
