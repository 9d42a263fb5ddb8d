package commands

import (
	"github.com/spf13/cobra"
	"github.com/walteh/importrc/cmd/importrc/opts"
	"github.com/walteh/importrc/pkg/operation"
	"github.com/walteh/importrc/pkg/status"
	"gitlab.com/tozd/go/errors"
)

// NewFixCmd creates a new fix command
func NewFixCmd(opts *opts.RootOpts) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "fix [root]",
		Short: "Rewrite matching import specifiers in place",
		Long: `Fix normalizes relative import paths under the given root directory.
It will:
1. Walk the tree for source files (.ts and .tsx by default)
2. Collapse relative types/ imports to the shared package
3. Localize deep utils/ imports to a single ../ level
4. Write changed files back in place and report the total`,
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

			// Run fix
			if _, err := op.Fix(ctx); err != nil {
				reporter.Error(ctx, err)
				return errors.Errorf("fixing imports: %w", err)
			}

			return nil
		},
	}

	return cmd
}
