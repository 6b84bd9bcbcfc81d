// Where: internal/ui/console.go
// What: Console output helpers for consistent CLI UX.
// Why: Standardize indentation and message structure across commands.
package ui

import (
	"fmt"
	"io"
)

// Console provides helper methods for formatted output.
type Console struct {
	Out io.Writer
}

// New creates a new Console writing to the provided writer.
func New(out io.Writer) *Console {
	return &Console{Out: out}
}

// Header prints a section header with an emoji.
// Example: 🎨 Branding update:
func (c *Console) Header(emoji, title string) {
	fmt.Fprintf(c.Out, "%s %s\n", emoji, title)
}

// Item prints a key-value item with indentation.
// Example:    Instance: cloud.example.com
func (c *Console) Item(key string, value any) {
	fmt.Fprintf(c.Out, "   %-12s %v\n", key+":", value)
}

// Success prints a success message with a checkmark.
func (c *Console) Success(msg string) {
	fmt.Fprintf(c.Out, "✅ %s\n", msg)
}

// Warn prints a warning message.
func (c *Console) Warn(msg string) {
	fmt.Fprintf(c.Out, "⚠️  %s\n", msg)
}

// Error prints an error message with a cross mark.
func (c *Console) Error(msg string) {
	fmt.Fprintf(c.Out, "✗ %s\n", msg)
}
