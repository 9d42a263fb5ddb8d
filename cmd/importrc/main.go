// Copyright 2025 walteh LLC
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package main

import (
	"context"
	"os"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"github.com/walteh/importrc/cmd/importrc/commands"
	"github.com/walteh/importrc/cmd/importrc/opts"
)

func main() {
	ctx := log.Logger.WithContext(context.Background())

	rootOpts := &opts.RootOpts{Console: os.Stdout}

	// Create root command
	rootCmd := &cobra.Command{
		Use:   "importrc",
		Short: "A tool for normalizing relative import paths in a source tree",
		Long: `importrc walks a directory of TypeScript sources and rewrites relative
types/ and utils/ import specifiers into their canonical forms, reporting
which files changed.`,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			setupLogging()
		},
	}

	// Add shared flags
	addRootFlags(rootCmd, rootOpts)

	// Add commands
	rootCmd.AddCommand(
		commands.NewFixCmd(rootOpts),
		commands.NewStatusCmd(rootOpts),
	)

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		log.Error().Err(err).Msg("command failed")
		os.Exit(1)
	}
}
