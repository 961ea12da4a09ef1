package providers

import (
	"context"
	"encoding/json"
	"io"
	"os"

	"github.com/tomdyson/toktab-cli/internal/catalog"
	"github.com/tomdyson/toktab-cli/internal/config"
	apperrors "github.com/tomdyson/toktab-cli/internal/errors"
	"github.com/tomdyson/toktab-cli/internal/i18n"
	"github.com/tomdyson/toktab-cli/internal/ui"
	"github.com/urfave/cli/v3"
)

type ProvidersCommandFactory struct {
	client *catalog.Client
	out    io.Writer
}

func NewProvidersCommandFactory(client *catalog.Client) *ProvidersCommandFactory {
	return &ProvidersCommandFactory{
		client: client,
		out:    os.Stdout,
	}
}

// WithOutput redirects the command output, for tests.
func (f *ProvidersCommandFactory) WithOutput(w io.Writer) *ProvidersCommandFactory {
	f.out = w
	return f
}

func (f *ProvidersCommandFactory) CreateCommand(t *i18n.Translations, _ *config.Config) *cli.Command {
	return &cli.Command{
		Name:  "providers",
		Usage: t.GetMessage("providers_command_usage", 0, nil),
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:  "json",
				Usage: t.GetMessage("json_flag", 0, nil),
			},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			providers, err := f.client.ListProviders(ctx)
			if err != nil {
				return err
			}

			renderer := ui.NewRenderer(f.out, t)
			if cmd.Bool("json") {
				data, err := json.Marshal(providers)
				if err != nil {
					return apperrors.NewAppError(apperrors.TypeInternal, "Failed to encode providers", err)
				}
				renderer.RenderJSON(data)
				return nil
			}
			renderer.RenderProviders(providers)
			return nil
		},
	}
}
