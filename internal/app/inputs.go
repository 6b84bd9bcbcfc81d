// Where: internal/app/inputs.go
// What: Input resolution for URL, credentials, color, and logo.
// Why: One precedence order everywhere: flag > env > config > prompt.
package app

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/vcdtools/vcdbrand/internal/branding"
	"github.com/vcdtools/vcdbrand/internal/config"
	"github.com/vcdtools/vcdbrand/internal/meta"
	"github.com/vcdtools/vcdbrand/internal/ui"
	"github.com/vcdtools/vcdbrand/internal/vcd"
)

func envValue(suffix string) string {
	return strings.TrimSpace(os.Getenv(meta.EnvPrefix + "_" + suffix))
}

// loadGlobalConfig loads the config file, falling back to defaults when the
// file is absent or unreadable. Branding commands never fail on config.
func loadGlobalConfig(deps Dependencies) config.GlobalConfig {
	pathFn := deps.ConfigPath
	if pathFn == nil {
		pathFn = config.GlobalConfigPath
	}
	path, err := pathFn()
	if err != nil {
		return config.DefaultGlobalConfig()
	}
	cfg, err := config.LoadGlobalConfig(path)
	if err != nil {
		return config.DefaultGlobalConfig()
	}
	return cfg
}

func interactive(deps Dependencies) bool {
	return deps.Interactive != nil && deps.Interactive() && deps.Prompter != nil
}

func resolveURL(cli CLI, cfg config.GlobalConfig, deps Dependencies) (string, error) {
	for _, candidate := range []string{cli.URL, envValue("URL"), cfg.URL} {
		if strings.TrimSpace(candidate) != "" {
			return vcd.NormalizeURL(candidate), nil
		}
	}
	if !interactive(deps) {
		return "", errors.New("no instance URL provided (use --url, VCD_URL, or 'config set-url')")
	}
	raw, err := deps.Prompter.Input("Cloud Director URL", "vcd.example.com")
	if err != nil {
		return "", err
	}
	return vcd.NormalizeURL(raw), nil
}

func resolveCredentials(cli CLI, deps Dependencies) (vcd.Credentials, error) {
	creds := vcd.Credentials{
		Username: firstNonEmpty(cli.Username, envValue("USERNAME")),
		Password: firstNonEmpty(cli.Password, envValue("PASSWORD")),
	}

	if creds.Username == "" {
		if !interactive(deps) {
			return vcd.Credentials{}, errors.New("no username provided (use --username or VCD_USERNAME)")
		}
		username, err := deps.Prompter.Input("Username", "")
		if err != nil {
			return vcd.Credentials{}, err
		}
		creds.Username = username
	}

	if creds.Password == "" {
		if !interactive(deps) {
			return vcd.Credentials{}, errors.New("no password provided (use --password or VCD_PASSWORD)")
		}
		password, err := deps.Prompter.Password("Password")
		if err != nil {
			return vcd.Credentials{}, err
		}
		creds.Password = password
	}

	return creds, nil
}

// resolveColor validates a flag/env color fatally and prompts in a retry
// loop otherwise.
func resolveColor(cli CLI, deps Dependencies, console *ui.Console) (string, error) {
	if raw := firstNonEmpty(cli.Color, envValue("COLOR")); raw != "" {
		return branding.NormalizeColor(raw)
	}
	if !interactive(deps) {
		return "", errors.New("no color provided (use --color or VCD_COLOR)")
	}
	for {
		raw, err := deps.Prompter.Input("Color", "#0088CC")
		if err != nil {
			return "", err
		}
		color, err := branding.NormalizeColor(raw)
		if err != nil {
			console.Error(err.Error())
			continue
		}
		return color, nil
	}
}

// resolveLogo validates a flag/env path fatally and prompts in a retry loop
// otherwise. The file itself is only opened at upload time.
func resolveLogo(cli CLI, deps Dependencies, console *ui.Console) (string, error) {
	if path := firstNonEmpty(cli.LogoPath, envValue("LOGO")); path != "" {
		if err := branding.ValidateLogoPath(path); err != nil {
			return "", err
		}
		return path, nil
	}
	if !interactive(deps) {
		return "", errors.New("no logo provided (use --logo-file or VCD_LOGO)")
	}
	for {
		path, err := deps.Prompter.Input("Path to logo", "logo.png")
		if err != nil {
			return "", err
		}
		if err := branding.ValidateLogoPath(path); err != nil {
			console.Error(err.Error())
			continue
		}
		return path, nil
	}
}

// resolveTheme builds the descriptor to send: theme-file overrides when
// given, stock descriptor otherwise. The validated color always wins.
func resolveTheme(cli CLI, color string) (branding.Theme, error) {
	theme := branding.DefaultTheme()
	if cli.ThemeFile != "" {
		loaded, err := branding.LoadThemeFile(cli.ThemeFile)
		if err != nil {
			return branding.Theme{}, fmt.Errorf("load theme overrides: %w", err)
		}
		theme = loaded
	}
	theme.PortalColor = color
	return theme, nil
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if strings.TrimSpace(v) != "" {
			return strings.TrimSpace(v)
		}
	}
	return ""
}
