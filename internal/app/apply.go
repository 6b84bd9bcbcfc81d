// Where: internal/app/apply.go
// What: Handlers for the apply, theme, and logo commands.
// Why: Orchestrate login, theme PUT, and logo upload as one workflow.
package app

import (
	"context"
	"io"
	"os"
	"os/signal"

	"github.com/vcdtools/vcdbrand/internal/ui"
	"github.com/vcdtools/vcdbrand/internal/vcd"
)

// runApply performs the full branding workflow: theme then logo. The logo
// upload only starts after the theme call succeeded; a failed upload does
// not roll the theme back.
func runApply(cli CLI, deps Dependencies, out io.Writer) int {
	console := ui.New(out)
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	client, session, err := openSession(ctx, cli, deps, console)
	if err != nil {
		return reportFailure(console, err)
	}

	if code := applyTheme(ctx, cli, deps, console, client, session); code != 0 {
		return code
	}
	return applyLogo(ctx, cli, deps, console, client, session)
}

// runTheme sets only the theme color.
func runTheme(cli CLI, deps Dependencies, out io.Writer) int {
	console := ui.New(out)
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	client, session, err := openSession(ctx, cli, deps, console)
	if err != nil {
		return reportFailure(console, err)
	}
	return applyTheme(ctx, cli, deps, console, client, session)
}

// runLogo uploads only the logo.
func runLogo(cli CLI, deps Dependencies, out io.Writer) int {
	console := ui.New(out)
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	client, session, err := openSession(ctx, cli, deps, console)
	if err != nil {
		return reportFailure(console, err)
	}
	return applyLogo(ctx, cli, deps, console, client, session)
}

// openSession resolves instance URL and credentials and logs in.
func openSession(ctx context.Context, cli CLI, deps Dependencies, console *ui.Console) (BrandingClient, vcd.Session, error) {
	cfg := loadGlobalConfig(deps)

	url, err := resolveURL(cli, cfg, deps)
	if err != nil {
		return nil, vcd.Session{}, err
	}

	insecure := cli.Insecure || cfg.Insecure
	if insecure {
		console.Warn("TLS certificate verification disabled.")
	}
	client := deps.NewClient(url, vcd.Options{Insecure: insecure, Logger: deps.Logger})

	creds, err := resolveCredentials(cli, deps)
	if err != nil {
		return nil, vcd.Session{}, err
	}

	session, err := client.Login(ctx, creds)
	if err != nil {
		return nil, vcd.Session{}, err
	}
	return client, session, nil
}

func applyTheme(ctx context.Context, cli CLI, deps Dependencies, console *ui.Console, client BrandingClient, session vcd.Session) int {
	color, err := resolveColor(cli, deps, console)
	if err != nil {
		return reportFailure(console, err)
	}
	theme, err := resolveTheme(cli, color)
	if err != nil {
		return reportFailure(console, err)
	}
	if err := client.SetTheme(ctx, session, theme); err != nil {
		return reportFailure(console, err)
	}
	console.Success("Set theme color to " + color)
	return 0
}

func applyLogo(ctx context.Context, cli CLI, deps Dependencies, console *ui.Console, client BrandingClient, session vcd.Session) int {
	path, err := resolveLogo(cli, deps, console)
	if err != nil {
		return reportFailure(console, err)
	}
	if err := client.UploadLogo(ctx, session, path); err != nil {
		return reportFailure(console, err)
	}
	console.Success("Set logo to " + path)
	return 0
}
