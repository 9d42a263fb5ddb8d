package status

import (
	"testing"

	"github.com/fatih/color"
	"github.com/stretchr/testify/assert"
	"gitlab.com/tozd/go/errors"
)

func TestDefaultFileFormatter(t *testing.T) {
	color.NoColor = true
	f := NewDefaultFileFormatter()

	assert.Equal(t, "Fixed: src/panel.ts", f.FormatFixed("src/panel.ts"))
	assert.Equal(t, "Fixed 0 files total", f.FormatSummary(0))
	assert.Equal(t, "Fixed 12 files total", f.FormatSummary(12))
	assert.Equal(t, "", f.FormatError(nil))
	assert.Contains(t, f.FormatError(errors.New("boom")), "boom")
}
