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

package operation

import (
	"context"

	"github.com/rs/zerolog"
	"github.com/walteh/importrc/pkg/rewrite"
	"github.com/walteh/importrc/pkg/walker"
	"gitlab.com/tozd/go/errors"
)

// 🏃 Fix rewrites matching import specifiers under the configured root,
// reporting each changed file and the final count
func (op *operator) Fix(ctx context.Context) (*walker.Summary, error) {
	logger := zerolog.Ctx(ctx)
	logger.Debug().Str("root", op.config.Root).Bool("dry_run", op.config.DryRun).Msg("starting fix")

	w, err := walker.New(walker.Options{
		Root:           op.config.Root,
		Extensions:     op.config.Extensions,
		IgnorePatterns: op.config.IgnorePatterns,
		Rules:          rewrite.DefaultRules(op.config.SharedPackage),
		DryRun:         op.config.DryRun,
		Async:          op.config.Async,
		OnChanged:      op.reporter.FileFixed,
	})
	if err != nil {
		return nil, errors.Errorf("creating walker: %w", err)
	}

	summary, err := w.Walk(ctx)
	if err != nil {
		return nil, errors.Errorf("walking tree: %w", err)
	}

	op.reporter.Summary(ctx, summary.Changed)
	return summary, nil
}

// 🔍 Status reports whether any file under the root would be rewritten.
// It never writes; the walk runs in dry-run mode regardless of config.
func (op *operator) Status(ctx context.Context) (bool, error) {
	logger := zerolog.Ctx(ctx)
	logger.Debug().Str("root", op.config.Root).Msg("checking status")

	w, err := walker.New(walker.Options{
		Root:           op.config.Root,
		Extensions:     op.config.Extensions,
		IgnorePatterns: op.config.IgnorePatterns,
		Rules:          rewrite.DefaultRules(op.config.SharedPackage),
		DryRun:         true,
	})
	if err != nil {
		return false, errors.Errorf("creating walker: %w", err)
	}

	summary, err := w.Walk(ctx)
	if err != nil {
		return false, errors.Errorf("walking tree: %w", err)
	}

	return summary.Changed > 0, nil
}
