// Where: internal/app/app.go
// What: CLI entrypoint logic.
// Why: Provide a testable command dispatcher.
package app

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/alecthomas/kong"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/vcdtools/vcdbrand/internal/meta"
	"github.com/vcdtools/vcdbrand/internal/version"
)

// CLI defines the command-line interface structure parsed by Kong.
// It contains global flags and all subcommand definitions.
type CLI struct {
	URL       string `help:"Cloud Director URL" placeholder:"HOST"`
	Username  string `short:"u" help:"System administrator username"`
	Password  string `short:"p" help:"Password (prefer VCD_PASSWORD or a prompt)"`
	Color     string `help:"Theme color in #RRGGBB format"`
	LogoPath  string `name:"logo-file" help:"Path to the logo image (.png, .jpeg, .jpg)"`
	ThemeFile string `name:"theme-file" help:"YAML theme overrides file"`
	EnvFile   string `name:"env-file" help:"Path to .env file"`
	Insecure  bool   `help:"Skip TLS certificate verification (self-signed management endpoints only)"`
	Verbose   bool   `short:"v" help:"Enable debug logging"`

	Apply   ApplyCmd   `cmd:"" help:"Set theme color and upload logo"`
	Theme   ThemeCmd   `cmd:"" help:"Set theme color only"`
	Logo    LogoCmd    `cmd:"" help:"Upload logo only"`
	Config  ConfigCmd  `cmd:"" help:"Manage configuration"`
	Version VersionCmd `cmd:"" help:"Show version information"`
}

type (
	ApplyCmd   struct{}
	ThemeCmd   struct{}
	LogoCmd    struct{}
	VersionCmd struct{}
)

// ConfigCmd groups the configuration subcommands.
type ConfigCmd struct {
	SetURL ConfigSetURLCmd `cmd:"" name:"set-url" help:"Persist a default instance URL"`
	Show   ConfigShowCmd   `cmd:"" help:"Show the effective configuration"`
}

type ConfigSetURLCmd struct {
	URL string `arg:"" help:"Instance URL"`
}

type ConfigShowCmd struct{}

// Run is the main entry point for CLI command execution.
// It parses the command-line arguments, identifies the requested command,
// and dispatches to the appropriate handler. Returns 0 on success, 1 on error.
func Run(args []string, deps Dependencies) int {
	out := deps.Out
	if out == nil {
		out = os.Stdout
	}

	cli := CLI{}
	parser, err := kong.New(&cli, kong.Name(meta.AppName))
	if err != nil {
		return exitWithError(out, err)
	}

	ctx, err := parser.Parse(args)
	if err != nil {
		fmt.Fprintln(out, err)
		fmt.Fprintf(out, "Run '%s --help' for usage.\n", meta.AppName)
		return 1
	}

	// Load environment file if provided or if .env exists in current directory
	if cli.EnvFile != "" {
		if err := godotenv.Load(cli.EnvFile); err != nil {
			fmt.Fprintf(out, "Warning: failed to load env file %s: %v\n", cli.EnvFile, err)
		}
	} else if _, err := os.Stat(".env"); err == nil {
		if err := godotenv.Load(); err != nil {
			fmt.Fprintf(out, "Warning: failed to load .env: %v\n", err)
		}
	}

	deps.Logger = newLogger(cli.Verbose)

	command := ctx.Command()
	if exitCode, handled := dispatchCommand(command, cli, deps, out); handled {
		return exitCode
	}

	fmt.Fprintln(out, "unknown command")
	return 1
}

type commandHandler func(CLI, Dependencies, io.Writer) int

func dispatchCommand(command string, cli CLI, deps Dependencies, out io.Writer) (int, bool) {
	exactHandlers := map[string]commandHandler{
		"apply":       runApply,
		"theme":       runTheme,
		"logo":        runLogo,
		"config show": runConfigShow,
		"version":     func(_ CLI, _ Dependencies, out io.Writer) int { return runVersion(out) },
	}

	if handler, ok := exactHandlers[command]; ok {
		return handler(cli, deps, out), true
	}

	if strings.HasPrefix(command, "config set-url") {
		return runConfigSetURL(cli, deps, out), true
	}

	return 1, false
}

// runVersion prints the version information of the CLI.
func runVersion(out io.Writer) int {
	fmt.Fprintln(out, version.GetVersion())
	return 0
}

// newLogger builds the debug logger. Without --verbose all logging is
// discarded; the console stays reserved for the UX helpers.
func newLogger(verbose bool) zerolog.Logger {
	if !verbose {
		return zerolog.Nop()
	}
	writer := zerolog.ConsoleWriter{Out: os.Stderr}
	return zerolog.New(writer).Level(zerolog.DebugLevel).With().Timestamp().Logger()
}
