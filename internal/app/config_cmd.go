// Where: internal/app/config_cmd.go
// What: Handlers for the config subcommands.
// Why: Persist per-operator defaults without retyping the instance URL.
package app

import (
	"io"

	"github.com/vcdtools/vcdbrand/internal/config"
	"github.com/vcdtools/vcdbrand/internal/ui"
	"github.com/vcdtools/vcdbrand/internal/vcd"
)

func configPath(deps Dependencies) (string, error) {
	if deps.ConfigPath != nil {
		return deps.ConfigPath()
	}
	return config.GlobalConfigPath()
}

func runConfigSetURL(cli CLI, deps Dependencies, out io.Writer) int {
	console := ui.New(out)

	path, err := configPath(deps)
	if err != nil {
		return exitWithError(out, err)
	}
	cfg, err := config.LoadGlobalConfig(path)
	if err != nil {
		return exitWithError(out, err)
	}

	cfg.URL = vcd.NormalizeURL(cli.Config.SetURL.URL)
	if cfg.Version == 0 {
		cfg.Version = 1
	}
	if err := config.SaveGlobalConfig(path, cfg); err != nil {
		return exitWithError(out, err)
	}

	console.Success("Default instance URL set to " + cfg.URL)
	return 0
}

func runConfigShow(_ CLI, deps Dependencies, out io.Writer) int {
	console := ui.New(out)

	path, err := configPath(deps)
	if err != nil {
		return exitWithError(out, err)
	}
	cfg, err := config.LoadGlobalConfig(path)
	if err != nil {
		return exitWithError(out, err)
	}

	url := cfg.URL
	if url == "" {
		url = "(not set)"
	}
	console.Header("⚙️", "Configuration:")
	console.Item("File", path)
	console.Item("URL", url)
	console.Item("Insecure", cfg.Insecure)
	return 0
}
