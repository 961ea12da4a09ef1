package config

import (
	"context"

	cfg "github.com/tomdyson/toktab-cli/internal/config"
	apperrors "github.com/tomdyson/toktab-cli/internal/errors"
	"github.com/tomdyson/toktab-cli/internal/i18n"
	"github.com/tomdyson/toktab-cli/internal/ui"
	"github.com/urfave/cli/v3"
)

func (c *ConfigCommandFactory) newSetLangCommand(t *i18n.Translations, config *cfg.Config) *cli.Command {
	return &cli.Command{
		Name:      "set-lang",
		Usage:     t.GetMessage("config_set_lang_usage", 0, nil),
		ArgsUsage: "<lang>",
		Action: func(ctx context.Context, command *cli.Command) error {
			lang := command.Args().First()
			if lang == "" {
				return apperrors.NewAppError(apperrors.TypeConfiguration,
					t.GetMessage("language_arg_required", 0, nil), nil)
			}

			if err := t.SetLanguage(lang); err != nil {
				return apperrors.NewAppError(apperrors.TypeConfiguration, err.Error(), nil)
			}

			config.Language = lang
			if err := cfg.SaveConfig(config); err != nil {
				return err
			}

			ui.PrintSuccess(c.out, t.GetMessage("language_set", 0, map[string]interface{}{
				"Lang": lang,
			}))
			return nil
		},
	}
}
