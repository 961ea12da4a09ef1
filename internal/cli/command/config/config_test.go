package config

import (
	"bytes"
	"context"
	"testing"

	"github.com/fatih/color"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	cfg "github.com/tomdyson/toktab-cli/internal/config"
	"github.com/tomdyson/toktab-cli/internal/i18n"
	"github.com/urfave/cli/v3"
)

func setupConfigTest(t *testing.T) (*cfg.Config, *cli.Command, *bytes.Buffer) {
	t.Helper()

	prev := color.NoColor
	color.NoColor = true
	t.Cleanup(func() { color.NoColor = prev })

	config, err := cfg.LoadConfig(t.TempDir())
	require.NoError(t, err)

	translations, err := i18n.NewTranslations("en", t.TempDir())
	require.NoError(t, err)

	var buf bytes.Buffer
	cmd := NewConfigCommandFactory().WithOutput(&buf).CreateCommand(translations, config)

	app := &cli.Command{Commands: []*cli.Command{cmd}}
	return config, app, &buf
}

func TestShowCommand(t *testing.T) {
	t.Run("should display the configuration", func(t *testing.T) {
		_, app, buf := setupConfigTest(t)

		err := app.Run(context.Background(), []string{"toktab", "config", "show"})

		assert.NoError(t, err)
		assert.Contains(t, buf.String(), "Current configuration")
		assert.Contains(t, buf.String(), "https://toktab.com/api")
		assert.Contains(t, buf.String(), "en")
	})
}

func TestSetLangCommand(t *testing.T) {
	t.Run("should persist a supported language", func(t *testing.T) {
		config, app, buf := setupConfigTest(t)

		err := app.Run(context.Background(), []string{"toktab", "config", "set-lang", "en"})

		assert.NoError(t, err)
		assert.Equal(t, "en", config.Language)
		assert.Contains(t, buf.String(), "Language set to 'en'")
	})

	t.Run("should reject an unsupported language", func(t *testing.T) {
		config, app, _ := setupConfigTest(t)

		err := app.Run(context.Background(), []string{"toktab", "config", "set-lang", "fr"})

		assert.Error(t, err)
		assert.Equal(t, "en", config.Language)
	})

	t.Run("should fail without an argument", func(t *testing.T) {
		_, app, _ := setupConfigTest(t)

		err := app.Run(context.Background(), []string{"toktab", "config", "set-lang"})

		assert.Error(t, err)
	})
}

func TestSetURLCommand(t *testing.T) {
	t.Run("should persist a valid URL", func(t *testing.T) {
		config, app, buf := setupConfigTest(t)

		err := app.Run(context.Background(), []string{"toktab", "config", "set-url", "https://example.com/api"})

		assert.NoError(t, err)
		assert.Equal(t, "https://example.com/api", config.BaseURL)
		assert.Contains(t, buf.String(), "Catalog URL set to 'https://example.com/api'")
	})

	t.Run("should reject an invalid URL", func(t *testing.T) {
		config, app, _ := setupConfigTest(t)

		err := app.Run(context.Background(), []string{"toktab", "config", "set-url", "not a url"})

		assert.Error(t, err)
		assert.Equal(t, "https://toktab.com/api", config.BaseURL)
	})

	t.Run("should fail without an argument", func(t *testing.T) {
		_, app, _ := setupConfigTest(t)

		err := app.Run(context.Background(), []string{"toktab", "config", "set-url"})

		assert.Error(t, err)
	})
}
