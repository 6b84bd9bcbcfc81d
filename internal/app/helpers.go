// Where: internal/app/helpers.go
// What: Shared error reporting for command handlers.
// Why: Map the error taxonomy to console messages and exit codes.
package app

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/charmbracelet/huh"
	"github.com/vcdtools/vcdbrand/internal/ui"
	"github.com/vcdtools/vcdbrand/internal/vcd"
)

func exitWithError(out io.Writer, err error) int {
	fmt.Fprintf(out, "✗ %v\n", err)
	return 1
}

// reportFailure prints the failure and returns the exit code. Aborted
// prompts and interrupts get a quiet stop message; a failed login gets the
// fixed authentication message.
func reportFailure(console *ui.Console, err error) int {
	switch {
	case errors.Is(err, huh.ErrUserAborted) || errors.Is(err, context.Canceled):
		console.Warn("Stopping...")
	case errors.Is(err, vcd.ErrAuthenticationFailed):
		console.Error("Authentication failed.")
	default:
		console.Error(err.Error())
	}
	return 1
}
