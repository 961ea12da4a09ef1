package show

import (
	"context"
	"io"
	"os"

	"github.com/tomdyson/toktab-cli/internal/catalog"
	"github.com/tomdyson/toktab-cli/internal/config"
	apperrors "github.com/tomdyson/toktab-cli/internal/errors"
	"github.com/tomdyson/toktab-cli/internal/i18n"
	"github.com/tomdyson/toktab-cli/internal/ui"
	"github.com/urfave/cli/v3"
)

type ShowCommandFactory struct {
	client *catalog.Client
	out    io.Writer
}

func NewShowCommandFactory(client *catalog.Client) *ShowCommandFactory {
	return &ShowCommandFactory{
		client: client,
		out:    os.Stdout,
	}
}

// WithOutput redirects the command output, for tests.
func (f *ShowCommandFactory) WithOutput(w io.Writer) *ShowCommandFactory {
	f.out = w
	return f
}

func (f *ShowCommandFactory) CreateCommand(t *i18n.Translations, _ *config.Config) *cli.Command {
	return &cli.Command{
		Name:      "show",
		Usage:     t.GetMessage("show_command_usage", 0, nil),
		ArgsUsage: "<slug>",
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:  "json",
				Usage: t.GetMessage("json_flag", 0, nil),
			},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			slug := cmd.Args().First()
			if slug == "" {
				return apperrors.NewAppError(apperrors.TypeConfiguration,
					t.GetMessage("show_slug_required", 0, nil), nil)
			}
			return f.Run(ctx, t, slug, cmd.Bool("json"))
		},
	}
}

// Run fetches a model and renders it. It also backs the root default
// action, so `toktab gpt-4o` behaves like `toktab show gpt-4o`.
func (f *ShowCommandFactory) Run(ctx context.Context, t *i18n.Translations, slug string, jsonOutput bool) error {
	var sp *ui.SmartSpinner
	if !jsonOutput {
		sp = ui.NewSmartSpinner(t.GetMessage("fetching_model", 0, map[string]interface{}{
			"Slug": slug,
		}))
		sp.Start()
	}

	model, err := f.client.GetModel(ctx, slug)
	if sp != nil {
		sp.Stop()
	}
	if err != nil {
		return err
	}

	renderer := ui.NewRenderer(f.out, t)
	if jsonOutput {
		renderer.RenderJSON(model.Raw)
		return nil
	}
	renderer.RenderModel(model)
	return nil
}
