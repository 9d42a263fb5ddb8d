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

package operation_test

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/fatih/color"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/walteh/importrc/pkg/config"
	"github.com/walteh/importrc/pkg/operation"
	"github.com/walteh/importrc/pkg/status"
)

// 🧪 createTestEnv creates a source tree, config, and reporter for tests
func createTestEnv(t *testing.T) (context.Context, *config.Config, *status.Reporter, *bytes.Buffer) {
	t.Helper()
	color.NoColor = true

	root := t.TempDir()
	files := map[string]string{
		"panel.ts":  `import { PanelProps } from "../../types/panel"`,
		"format.ts": `import { helper } from "../../../utils/format"`,
		"app.ts":    `import React from "react"`,
	}
	for name, content := range files {
		require.NoError(t, os.WriteFile(filepath.Join(root, name), []byte(content), 0644))
	}

	cfg := config.Default(root)

	var buf bytes.Buffer
	reporter := status.NewReporter(&buf, status.NewDefaultFileFormatter(), cfg.MaxReported)

	logger := zerolog.New(zerolog.NewTestWriter(t))
	ctx := logger.WithContext(context.Background())

	return ctx, cfg, reporter, &buf
}

// 🧪 TestFix tests the full fix operation end to end
func TestFix(t *testing.T) {
	ctx, cfg, reporter, buf := createTestEnv(t)

	op, err := operation.New(operation.Options{Config: cfg, Reporter: reporter})
	require.NoError(t, err)

	summary, err := op.Fix(ctx)
	require.NoError(t, err)
	assert.Equal(t, 3, summary.Scanned)
	assert.Equal(t, 2, summary.Changed)

	out := buf.String()
	assert.Contains(t, out, "Fixed: ")
	assert.Contains(t, out, "Fixed 2 files total")

	content, err := os.ReadFile(filepath.Join(cfg.Root, "panel.ts"))
	require.NoError(t, err)
	assert.Equal(t, `import { PanelProps } from "@convex-panel/shared"`, string(content))

	// A second run finds nothing left to fix
	needsFix, err := op.Status(ctx)
	require.NoError(t, err)
	assert.False(t, needsFix)
}

// 🧪 TestFix_DryRun verifies dry-run reports without writing
func TestFix_DryRun(t *testing.T) {
	ctx, cfg, reporter, buf := createTestEnv(t)
	cfg.DryRun = true

	op, err := operation.New(operation.Options{Config: cfg, Reporter: reporter})
	require.NoError(t, err)

	summary, err := op.Fix(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2, summary.Changed)
	assert.Contains(t, buf.String(), "Fixed 2 files total")

	content, err := os.ReadFile(filepath.Join(cfg.Root, "panel.ts"))
	require.NoError(t, err)
	assert.Equal(t, `import { PanelProps } from "../../types/panel"`, string(content))
}

// 🧪 TestStatus tests the read-only status check
func TestStatus(t *testing.T) {
	ctx, cfg, reporter, _ := createTestEnv(t)

	op, err := operation.New(operation.Options{Config: cfg, Reporter: reporter})
	require.NoError(t, err)

	needsFix, err := op.Status(ctx)
	require.NoError(t, err)
	assert.True(t, needsFix)

	// Status must not modify anything
	content, err := os.ReadFile(filepath.Join(cfg.Root, "panel.ts"))
	require.NoError(t, err)
	assert.Equal(t, `import { PanelProps } from "../../types/panel"`, string(content))
}

func TestNew_Validation(t *testing.T) {
	tests := []struct {
		name      string
		opts      operation.Options
		wantError string
	}{
		{
			name:      "missing_config",
			opts:      operation.Options{Reporter: status.NewReporter(&bytes.Buffer{}, status.NewDefaultFileFormatter(), 50)},
			wantError: "config is required",
		},
		{
			name:      "missing_reporter",
			opts:      operation.Options{Config: config.Default("src")},
			wantError: "reporter is required",
		},
		{
			name:      "invalid_config",
			opts:      operation.Options{Config: &config.Config{}, Reporter: status.NewReporter(&bytes.Buffer{}, status.NewDefaultFileFormatter(), 50)},
			wantError: "root is required",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := operation.New(tt.opts)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantError)
		})
	}
}
