package commands

import (
	"github.com/spf13/cobra"
	"github.com/walteh/importrc/cmd/importrc/opts"
	"github.com/walteh/importrc/pkg/operation"
	"github.com/walteh/importrc/pkg/status"
	"gitlab.com/tozd/go/errors"
)

// NewStatusCmd creates a new status command
func NewStatusCmd(opts *opts.RootOpts) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "status [root]",
		Short: "Check if any files need normalizing",
		Long: `Status checks whether any source files under the root contain import
specifiers that fix would rewrite. It never modifies files.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			// Empty means no positional root was given; Resolve then keeps
			// a config file's root, or falls back to the current directory.
			root := ""
			if len(args) > 0 {
				root = args[0]
			}

			// Resolve config
			cfg, err := opts.Resolve(ctx, root)
			if err != nil {
				return errors.Errorf("resolving config: %w", err)
			}

			// Create reporter
			reporter := status.NewReporter(opts.Console, status.NewDefaultFileFormatter(), cfg.MaxReported)

			// Create operator
			op, err := operation.New(operation.Options{
				Config:   cfg,
				Reporter: reporter,
			})
			if err != nil {
				return errors.Errorf("creating operator: %w", err)
			}

			// Run status check
			needsFix, err := op.Status(ctx)
			if err != nil {
				reporter.Error(ctx, err)
				return errors.Errorf("checking status: %w", err)
			}

			// Log result
			if needsFix {
				reporter.Header(ctx, "Files need normalizing")
			} else {
				reporter.Header(ctx, "Imports are already canonical")
			}

			return nil
		},
	}

	return cmd
}
