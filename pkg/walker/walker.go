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

package walker

import (
	"context"
	"io/fs"
	"os"
	"path/filepath"
	"runtime"
	"sync"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/rs/zerolog"
	"github.com/walteh/importrc/pkg/rewrite"
	"gitlab.com/tozd/go/errors"
	"golang.org/x/sync/errgroup"
)

// 📊 Summary accumulates outcome counts for one walk
type Summary struct {
	Scanned int // candidate files read and passed to the engine
	Changed int // files whose content was rewritten
}

// 🔧 Options configures a walk
type Options struct {
	Root           string                                 // Directory tree to normalize
	Extensions     []string                               // File extension allowlist (e.g. ".ts", ".tsx")
	IgnorePatterns []string                               // Doublestar patterns for files or directories to skip
	Rules          []rewrite.Rule                         // Ordered rewrite rules
	DryRun         bool                                   // Report changes without writing them
	Async          bool                                   // Process files in parallel
	OnChanged      func(ctx context.Context, path string) // Called once per changed file
}

// 🚶 Walker enumerates candidate files and runs them through the engine
type Walker struct {
	opts     Options
	rewriter *rewrite.RuleRewriter
}

// 🏭 New creates a new walker
func New(opts Options) (*Walker, error) {
	if opts.Root == "" {
		return nil, errors.Errorf("root is required")
	}
	if len(opts.Extensions) == 0 {
		return nil, errors.Errorf("at least one extension is required")
	}
	if len(opts.Rules) == 0 {
		return nil, errors.Errorf("at least one rule is required")
	}

	rewriter := rewrite.NewRuleRewriter()
	if err := rewriter.ValidateRules(opts.Rules); err != nil {
		return nil, errors.Errorf("validating rules: %w", err)
	}

	return &Walker{opts: opts, rewriter: rewriter}, nil
}

// Walk runs the engine over every candidate file under the root. Engine
// invocations are independent of each other, so async mode fans files out
// across a bounded errgroup; report order is unspecified in that mode.
// The first I/O error aborts the walk; files already rewritten stay
// rewritten.
func (w *Walker) Walk(ctx context.Context) (*Summary, error) {
	files, err := w.collect(ctx)
	if err != nil {
		return nil, errors.Errorf("enumerating files: %w", err)
	}

	summary := &Summary{Scanned: len(files)}

	if w.opts.Async {
		if err := w.processAsync(ctx, files, summary); err != nil {
			return nil, err
		}
		return summary, nil
	}

	for _, path := range files {
		changed, err := w.processFile(ctx, path)
		if err != nil {
			return nil, errors.Errorf("processing file %s: %w", path, err)
		}
		if changed {
			summary.Changed++
			if w.opts.OnChanged != nil {
				w.opts.OnChanged(ctx, path)
			}
		}
	}

	return summary, nil
}

// ⚡ processAsync processes files in parallel with a bounded errgroup
func (w *Walker) processAsync(ctx context.Context, files []string, summary *Summary) error {
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(runtime.GOMAXPROCS(0))

	var mu sync.Mutex
	for _, path := range files {
		path := path
		g.Go(func() error {
			changed, err := w.processFile(gctx, path)
			if err != nil {
				return errors.Errorf("processing file %s: %w", path, err)
			}
			if changed {
				mu.Lock()
				summary.Changed++
				mu.Unlock()
				if w.opts.OnChanged != nil {
					w.opts.OnChanged(gctx, path)
				}
			}
			return nil
		})
	}

	return g.Wait()
}

// 🔍 collect enumerates candidate files under the root in walk order
func (w *Walker) collect(ctx context.Context) ([]string, error) {
	logger := zerolog.Ctx(ctx)

	var files []string
	err := filepath.WalkDir(w.opts.Root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}

		rel, relErr := filepath.Rel(w.opts.Root, path)
		if relErr != nil {
			return relErr
		}
		rel = filepath.ToSlash(rel)

		if d.IsDir() {
			if rel != "." && w.shouldIgnore(ctx, rel) {
				logger.Debug().Str("dir", rel).Msg("directory ignored by pattern")
				return filepath.SkipDir
			}
			return nil
		}

		if !w.matchesExtension(path) {
			return nil
		}
		if w.shouldIgnore(ctx, rel) {
			logger.Debug().Str("file", rel).Msg("file ignored by pattern")
			return nil
		}

		files = append(files, path)
		return nil
	})
	if err != nil {
		return nil, err
	}

	logger.Debug().Int("count", len(files)).Str("root", w.opts.Root).Msg("collected candidate files")
	return files, nil
}

// 📄 processFile runs one file through the engine and persists the result
func (w *Walker) processFile(ctx context.Context, path string) (bool, error) {
	f, err := os.Open(path)
	if err != nil {
		return false, errors.Errorf("opening file: %w", err)
	}

	result, err := w.rewriter.Rewrite(ctx, f, w.opts.Rules)
	f.Close()
	if err != nil {
		return false, errors.Errorf("rewriting content: %w", err)
	}

	if !result.WasModified {
		return false, nil
	}

	if w.opts.DryRun {
		zerolog.Ctx(ctx).Debug().Str("file", path).Msg("dry run, skipping write")
		return true, nil
	}

	if err := w.writeFileAtomic(path, result.ModifiedContent); err != nil {
		return false, errors.Errorf("writing file: %w", err)
	}

	zerolog.Ctx(ctx).Debug().
		Str("file", path).
		Int("replacements", result.ReplacementCount).
		Msg("rewrote file")

	return true, nil
}

// 💾 writeFileAtomic writes content via a temp file and rename
func (w *Walker) writeFileAtomic(path string, content []byte) error {
	info, err := os.Stat(path)
	if err != nil {
		return errors.Errorf("stating file: %w", err)
	}

	dir := filepath.Dir(path)
	tmp, err := os.CreateTemp(dir, ".importrc-*")
	if err != nil {
		return errors.Errorf("creating temp file: %w", err)
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(content); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return errors.Errorf("writing temp file: %w", err)
	}
	if err := tmp.Chmod(info.Mode()); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return errors.Errorf("preserving file mode: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return errors.Errorf("closing temp file: %w", err)
	}

	if err := os.Rename(tmpName, path); err != nil {
		os.Remove(tmpName)
		return errors.Errorf("replacing file: %w", err)
	}

	return nil
}

// 🔍 matchesExtension checks the file against the extension allowlist
func (w *Walker) matchesExtension(path string) bool {
	ext := filepath.Ext(path)
	for _, allowed := range w.opts.Extensions {
		if ext == allowed {
			return true
		}
	}
	return false
}

// 🔍 shouldIgnore checks a root-relative path against the ignore patterns
func (w *Walker) shouldIgnore(ctx context.Context, rel string) bool {
	for _, pattern := range w.opts.IgnorePatterns {
		matched, err := doublestar.Match(pattern, rel)
		if err != nil {
			zerolog.Ctx(ctx).Debug().Str("pattern", pattern).Str("path", rel).Err(err).Msg("error matching pattern")
			continue
		}
		if matched {
			return true
		}
	}
	return false
}
