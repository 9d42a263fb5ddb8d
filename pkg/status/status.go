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

package status

import (
	"context"
	"fmt"
	"io"
	"sync"

	"github.com/pterm/pterm"
	"github.com/rs/zerolog"
)

// 🎯 Reporter prints per-file progress and the final summary. Listing is
// capped at maxReported paths; every change is still counted and logged to
// zerolog. Safe for concurrent use by an async walk.
type Reporter struct {
	console     io.Writer
	formatter   FileFormatter
	maxReported int
	mu          sync.Mutex
	reported    int
}

// 🏭 NewReporter creates a new reporter
func NewReporter(console io.Writer, formatter FileFormatter, maxReported int) *Reporter {
	return &Reporter{
		console:     console,
		formatter:   formatter,
		maxReported: maxReported,
	}
}

// 📝 FileFixed reports one rewritten file, up to the listing cap
func (r *Reporter) FileFixed(ctx context.Context, path string) {
	r.mu.Lock()
	defer r.mu.Unlock()

	zerolog.Ctx(ctx).Info().Str("file", path).Msg("fixed file")

	if r.reported >= r.maxReported {
		return
	}
	r.reported++

	fmt.Fprintln(r.console, r.formatter.FormatFixed(path))
}

// 📝 Summary prints the final count line
func (r *Reporter) Summary(ctx context.Context, changed int) {
	r.mu.Lock()
	defer r.mu.Unlock()

	fmt.Fprintf(r.console, "\n%s\n", r.formatter.FormatSummary(changed))
	zerolog.Ctx(ctx).Info().Int("changed", changed).Msg("walk complete")
}

// 📝 Header prints the run banner
func (r *Reporter) Header(ctx context.Context, msg string) {
	r.mu.Lock()
	defer r.mu.Unlock()

	pterm.Info.WithWriter(r.console).WithPrefix(pterm.Prefix{Text: "📦"}).Println(msg)
	zerolog.Ctx(ctx).Info().Msg(msg)
}

// 📝 Error prints an error message
func (r *Reporter) Error(ctx context.Context, err error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	pterm.Error.WithWriter(r.console).Println(r.formatter.FormatError(err))
	zerolog.Ctx(ctx).Error().Err(err).Msg("run failed")
}
