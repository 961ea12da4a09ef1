package config

import (
	"context"
	"net/url"

	cfg "github.com/tomdyson/toktab-cli/internal/config"
	apperrors "github.com/tomdyson/toktab-cli/internal/errors"
	"github.com/tomdyson/toktab-cli/internal/i18n"
	"github.com/tomdyson/toktab-cli/internal/ui"
	"github.com/urfave/cli/v3"
)

func (c *ConfigCommandFactory) newSetURLCommand(t *i18n.Translations, config *cfg.Config) *cli.Command {
	return &cli.Command{
		Name:      "set-url",
		Usage:     t.GetMessage("config_set_url_usage", 0, nil),
		ArgsUsage: "<url>",
		Action: func(ctx context.Context, command *cli.Command) error {
			raw := command.Args().First()
			if raw == "" {
				return apperrors.NewAppError(apperrors.TypeConfiguration,
					t.GetMessage("url_arg_required", 0, nil), nil)
			}

			parsed, err := url.Parse(raw)
			if err != nil || parsed.Scheme == "" || parsed.Host == "" {
				return apperrors.ErrInvalidBaseURL.WithContext("url", raw)
			}

			config.BaseURL = raw
			if err := cfg.SaveConfig(config); err != nil {
				return err
			}

			ui.PrintSuccess(c.out, t.GetMessage("url_set", 0, map[string]interface{}{
				"URL": raw,
			}))
			return nil
		},
	}
}
