// Where: cmd/vcdbrand/cli.go
// What: CLI dependency wiring helpers.
// Why: Centralize construction for testability.
package main

import (
	"os"

	"github.com/vcdtools/vcdbrand/internal/app"
	"github.com/vcdtools/vcdbrand/internal/config"
	infra "github.com/vcdtools/vcdbrand/internal/infra/interaction"
	"github.com/vcdtools/vcdbrand/internal/interaction"
	"github.com/vcdtools/vcdbrand/internal/vcd"
)

// buildDependencies constructs the runtime dependencies required by the CLI:
// the huh prompter, TTY detection, the API client factory, and the global
// config path resolver.
func buildDependencies() app.Dependencies {
	return app.Dependencies{
		Out:         os.Stdout,
		Prompter:    infra.HuhPrompter{},
		Interactive: interaction.Interactive,
		NewClient: func(rawURL string, opts vcd.Options) app.BrandingClient {
			return vcd.NewClient(rawURL, opts)
		},
		ConfigPath: config.GlobalConfigPath,
	}
}
