package status

import (
	"fmt"

	"github.com/fatih/color"
)

// FileFormatter defines how per-file results and the final summary are
// formatted for the console
type FileFormatter interface {
	// FormatFixed formats the line for one rewritten file
	FormatFixed(path string) string

	// FormatSummary formats the final count line
	FormatSummary(changed int) string

	// FormatError formats an error message
	FormatError(err error) string
}

// DefaultFileFormatter provides a default implementation of FileFormatter
type DefaultFileFormatter struct{}

// NewDefaultFileFormatter creates a new DefaultFileFormatter
func NewDefaultFileFormatter() *DefaultFileFormatter {
	return &DefaultFileFormatter{}
}

// FormatFixed formats the line for one rewritten file. Color is dropped
// automatically when the output is not a terminal.
func (f *DefaultFileFormatter) FormatFixed(path string) string {
	return fmt.Sprintf("%s %s", color.New(color.FgGreen).Sprint("Fixed:"), path)
}

// FormatSummary formats the final count line
func (f *DefaultFileFormatter) FormatSummary(changed int) string {
	return fmt.Sprintf("Fixed %d files total", changed)
}

// FormatError formats an error message with emoji
func (f *DefaultFileFormatter) FormatError(err error) string {
	if err == nil {
		return ""
	}
	return fmt.Sprintf("❌ Error: %v", err)
}
