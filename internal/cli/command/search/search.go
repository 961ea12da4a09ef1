package search

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

type SearchCommandFactory struct {
	client *catalog.Client
	out    io.Writer
}

func NewSearchCommandFactory(client *catalog.Client) *SearchCommandFactory {
	return &SearchCommandFactory{
		client: client,
		out:    os.Stdout,
	}
}

// WithOutput redirects the command output, for tests.
func (f *SearchCommandFactory) WithOutput(w io.Writer) *SearchCommandFactory {
	f.out = w
	return f
}

func (f *SearchCommandFactory) CreateCommand(t *i18n.Translations, cfg *config.Config) *cli.Command {
	return &cli.Command{
		Name:        "search",
		Usage:       t.GetMessage("search_command_usage", 0, nil),
		Description: t.GetMessage("search_command_description", 0, nil),
		ArgsUsage:   "<query>",
		Flags: []cli.Flag{
			&cli.IntFlag{
				Name:    "limit",
				Aliases: []string{"l"},
				Value:   int64(cfg.DefaultLimit),
				Usage: t.GetMessage("search_limit_flag", 0, map[string]interface{}{
					"Max": config.MaxSearchLimit,
				}),
			},
			&cli.BoolFlag{
				Name:  "json",
				Usage: t.GetMessage("json_flag", 0, nil),
			},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			query := cmd.Args().First()
			if query == "" {
				return apperrors.NewAppError(apperrors.TypeConfiguration,
					t.GetMessage("search_query_required", 0, nil), nil)
			}

			limit := int(cmd.Int("limit"))
			if limit <= 0 {
				limit = cfg.DefaultLimit
			}

			return f.Run(ctx, t, query, limit, cmd.Bool("json"))
		},
	}
}

func (f *SearchCommandFactory) Run(ctx context.Context, t *i18n.Translations, query string, limit int, jsonOutput bool) error {
	var sp *ui.SmartSpinner
	if !jsonOutput {
		sp = ui.NewSmartSpinner(t.GetMessage("searching", 0, map[string]interface{}{
			"Query": query,
		}))
		sp.Start()
	}

	result, err := f.client.Search(ctx, query, limit)
	if sp != nil {
		sp.Stop()
	}
	if err != nil {
		return err
	}

	renderer := ui.NewRenderer(f.out, t)
	if jsonOutput {
		renderer.RenderJSON(result.Raw)
		return nil
	}
	renderer.RenderSearchResults(result)
	return nil
}
