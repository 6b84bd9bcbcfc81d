// Where: internal/app/deps.go
// What: Injected dependencies for command handlers.
// Why: Enable swapping the API client and prompts in tests.
package app

import (
	"context"
	"io"

	"github.com/rs/zerolog"
	"github.com/vcdtools/vcdbrand/internal/branding"
	"github.com/vcdtools/vcdbrand/internal/interaction"
	"github.com/vcdtools/vcdbrand/internal/vcd"
)

// BrandingClient is the slice of the Cloud Director client the command
// handlers need.
type BrandingClient interface {
	Login(ctx context.Context, creds vcd.Credentials) (vcd.Session, error)
	SetTheme(ctx context.Context, session vcd.Session, theme branding.Theme) error
	UploadLogo(ctx context.Context, session vcd.Session, path string) error
}

// Dependencies holds all injected dependencies required for CLI command
// execution.
type Dependencies struct {
	Out         io.Writer
	Prompter    interaction.Prompter
	Interactive func() bool
	NewClient   func(rawURL string, opts vcd.Options) BrandingClient
	ConfigPath  func() (string, error)
	Logger      zerolog.Logger
}
