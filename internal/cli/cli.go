// Package cli implements the vibectl maintenance commands.
package cli

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/glamour"
	"github.com/google/subcommands"
	"go.uber.org/zap"

	"github.com/ndewijer/VibeInvestor-Backend/internal/app"
	"github.com/ndewijer/VibeInvestor-Backend/internal/config"
	"github.com/ndewijer/VibeInvestor-Backend/internal/logging"
)

// Commands are registered by cmd/vibectl.
var Commands = []subcommands.Command{
	&migrateCmd{},
	&seedCmd{},
	&digestCmd{},
	&forecastCmd{},
	&syncGoalsCmd{},
}

// stdout is swapped in tests.
var stdout io.Writer = os.Stdout

// openApp loads configuration and opens the application without migrating.
func openApp(ctx context.Context) (*app.App, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}
	logger, err := logging.New(cfg.Log)
	if err != nil {
		return nil, err
	}
	zap.ReplaceGlobals(logger)
	return app.New(ctx, cfg, logger)
}

// fail prints err and returns the failure status.
func fail(err error) subcommands.ExitStatus {
	fmt.Fprintln(os.Stderr, err)
	return subcommands.ExitFailure
}

// printMarkdown renders md for the terminal, falling back to the raw text.
func printMarkdown(md string) {
	r, err := glamour.NewTermRenderer(glamour.WithAutoStyle(), glamour.WithWordWrap(100))
	if err == nil {
		var out string
		if out, err = r.Render(md); err == nil {
			fmt.Fprint(stdout, out)
			return
		}
	}
	fmt.Fprint(stdout, md)
}
