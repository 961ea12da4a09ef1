package config

import (
	"io"
	"os"

	cfg "github.com/tomdyson/toktab-cli/internal/config"
	"github.com/tomdyson/toktab-cli/internal/i18n"
	"github.com/urfave/cli/v3"
)

type ConfigCommandFactory struct {
	out io.Writer
}

func NewConfigCommandFactory() *ConfigCommandFactory {
	return &ConfigCommandFactory{out: os.Stdout}
}

// WithOutput redirects the command output, for tests.
func (c *ConfigCommandFactory) WithOutput(w io.Writer) *ConfigCommandFactory {
	c.out = w
	return c
}

func (c *ConfigCommandFactory) CreateCommand(t *i18n.Translations, config *cfg.Config) *cli.Command {
	return &cli.Command{
		Name:  "config",
		Usage: t.GetMessage("config_command_usage", 0, nil),
		Commands: []*cli.Command{
			c.newShowCommand(t, config),
			c.newSetLangCommand(t, config),
			c.newSetURLCommand(t, config),
		},
	}
}
