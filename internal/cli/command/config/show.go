package config

import (
	"context"
	"fmt"

	cfg "github.com/tomdyson/toktab-cli/internal/config"
	"github.com/tomdyson/toktab-cli/internal/i18n"
	"github.com/tomdyson/toktab-cli/internal/ui"
	"github.com/urfave/cli/v3"
)

func (c *ConfigCommandFactory) newShowCommand(t *i18n.Translations, config *cfg.Config) *cli.Command {
	return &cli.Command{
		Name:  "show",
		Usage: t.GetMessage("config_show_usage", 0, nil),
		Action: func(ctx context.Context, command *cli.Command) error {
			_, _ = fmt.Fprintf(c.out, "\n%s\n\n", ui.Accent.Sprint(t.GetMessage("current_config", 0, nil)))

			rows := [][2]string{
				{t.GetMessage("config_language_label", 0, nil), config.Language},
				{t.GetMessage("config_base_url_label", 0, nil), config.BaseURL},
				{t.GetMessage("config_timeout_label", 0, nil), fmt.Sprintf("%ds", config.TimeoutSeconds)},
				{t.GetMessage("config_limit_label", 0, nil), fmt.Sprintf("%d", config.DefaultLimit)},
				{t.GetMessage("config_color_label", 0, nil), fmt.Sprintf("%t", config.UseColor)},
				{t.GetMessage("config_file_label", 0, nil), config.PathFile},
			}

			width := 0
			for _, row := range rows {
				if len(row[0]) > width {
					width = len(row[0])
				}
			}
			for _, row := range rows {
				label := fmt.Sprintf("%-*s", width, row[0])
				_, _ = fmt.Fprintf(c.out, "  %s  %s\n", ui.Dim.Sprint(label), row[1])
			}
			_, _ = fmt.Fprintln(c.out)
			return nil
		},
	}
}
