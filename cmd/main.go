package main

import (
	"context"
	"fmt"
	"io"
	"log"
	"os"
	"slices"
	"time"

	"github.com/tomdyson/toktab-cli/internal/catalog"
	configcmd "github.com/tomdyson/toktab-cli/internal/cli/command/config"
	providerscmd "github.com/tomdyson/toktab-cli/internal/cli/command/providers"
	searchcmd "github.com/tomdyson/toktab-cli/internal/cli/command/search"
	showcmd "github.com/tomdyson/toktab-cli/internal/cli/command/show"
	"github.com/tomdyson/toktab-cli/internal/cli/registry"
	cfg "github.com/tomdyson/toktab-cli/internal/config"
	"github.com/tomdyson/toktab-cli/internal/i18n"
	"github.com/tomdyson/toktab-cli/internal/logger"
	"github.com/tomdyson/toktab-cli/internal/services"
	"github.com/tomdyson/toktab-cli/internal/ui"
	"github.com/tomdyson/toktab-cli/internal/version"
	"github.com/urfave/cli/v3"
)

// updateCheckGrace caps how long we wait for the background update
// check before exiting.
const updateCheckGrace = 3 * time.Second

func main() {
	app, translations, err := initializeApp()
	if err != nil {
		log.Fatalf("Error iniciando la cli: %v", err)
	}

	updateDone := make(chan struct{})
	go func() {
		defer close(updateDone)
		checker := services.NewVersionChecker(version.FullVersion(), translations)
		checker.CheckForUpdates(context.Background())
	}()

	runErr := app.Run(context.Background(), os.Args)
	waitForUpdateCheck(updateDone, updateCheckGrace)

	if runErr != nil {
		ui.HandleAppError(os.Stdout, runErr, translations)
		os.Exit(1)
	}
}

// waitForUpdateCheck blocks until the update-check goroutine finishes,
// bounded by limit so a slow network never stalls exit.
func waitForUpdateCheck(done <-chan struct{}, limit time.Duration) {
	select {
	case <-done:
	case <-time.After(limit):
	}
}

func initializeApp() (*cli.Command, *i18n.Translations, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return nil, nil, err
	}

	cfgApp, err := cfg.LoadConfig(homeDir)
	if err != nil {
		return nil, nil, err
	}

	translations, err := i18n.NewTranslations(cfgApp.Language, "")
	if err != nil {
		return nil, nil, err
	}

	// Global flags have to take effect before urfave parses anything,
	// so they are read straight from argv here.
	logger.Initialize(slices.Contains(os.Args, "--debug"), slices.Contains(os.Args, "--verbose"))
	if !cfgApp.UseColor || slices.Contains(os.Args, "--no-color") {
		ui.DisableColor()
	}

	client := catalog.NewClient(cfgApp.BaseURL, time.Duration(cfgApp.TimeoutSeconds)*time.Second)

	app, err := buildApp(translations, cfgApp, client, os.Stdout)
	if err != nil {
		return nil, nil, err
	}
	return app, translations, nil
}

// buildApp assembles the root command: the registered subcommands, the
// global flags and the default action that treats a bare argument as a
// model slug, so `toktab gpt-4o` behaves like `toktab show gpt-4o`.
func buildApp(translations *i18n.Translations, cfgApp *cfg.Config, client *catalog.Client, out io.Writer) (*cli.Command, error) {
	showFactory := showcmd.NewShowCommandFactory(client).WithOutput(out)

	registerCommand := registry.NewRegistry(cfgApp, translations)
	if err := registerCommand.Register("show", showFactory); err != nil {
		return nil, fmt.Errorf("error al registrar el comando 'show': %w", err)
	}
	if err := registerCommand.Register("search", searchcmd.NewSearchCommandFactory(client).WithOutput(out)); err != nil {
		return nil, fmt.Errorf("error al registrar el comando 'search': %w", err)
	}
	if err := registerCommand.Register("providers", providerscmd.NewProvidersCommandFactory(client).WithOutput(out)); err != nil {
		return nil, fmt.Errorf("error al registrar el comando 'providers': %w", err)
	}
	if err := registerCommand.Register("config", configcmd.NewConfigCommandFactory().WithOutput(out)); err != nil {
		return nil, fmt.Errorf("error al registrar el comando 'config': %w", err)
	}

	commands := registerCommand.CreateCommands()

	helpCommand := &cli.Command{
		Name:    "help",
		Aliases: []string{"h"},
		Usage:   translations.GetMessage("help_command_usage", 0, nil),
		Action: func(ctx context.Context, cmd *cli.Command) error {
			return cli.ShowAppHelp(cmd)
		},
	}
	commands = append(commands, helpCommand)

	app := &cli.Command{
		Name:        "toktab",
		Usage:       translations.GetMessage("app_usage", 0, nil),
		Version:     version.Version,
		Description: translations.GetMessage("app_description", 0, nil),
		Commands:    commands,
		Writer:      out,
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:  "json",
				Usage: translations.GetMessage("json_flag", 0, nil),
			},
			&cli.BoolFlag{
				Name:  "no-color",
				Usage: translations.GetMessage("no_color_flag", 0, nil),
			},
			&cli.BoolFlag{
				Name:  "debug",
				Usage: translations.GetMessage("debug_flag", 0, nil),
			},
			&cli.BoolFlag{
				Name:  "verbose",
				Usage: translations.GetMessage("verbose_flag", 0, nil),
			},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			if cmd.Args().Len() == 0 {
				return cli.ShowAppHelp(cmd)
			}
			return showFactory.Run(ctx, translations, cmd.Args().First(), cmd.Bool("json"))
		},
	}

	return app, nil
}
