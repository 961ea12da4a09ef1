package providers

import (
	"bytes"
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/fatih/color"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tomdyson/toktab-cli/internal/catalog"
	"github.com/tomdyson/toktab-cli/internal/config"
	"github.com/tomdyson/toktab-cli/internal/i18n"
	"github.com/urfave/cli/v3"
)

func setupProvidersTest(t *testing.T, handler http.HandlerFunc) (*cli.Command, *bytes.Buffer) {
	t.Helper()

	prev := color.NoColor
	color.NoColor = true
	t.Cleanup(func() { color.NoColor = prev })

	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	translations, err := i18n.NewTranslations("en", t.TempDir())
	require.NoError(t, err)

	var buf bytes.Buffer
	client := catalog.NewClient(server.URL, 0)
	cmd := NewProvidersCommandFactory(client).WithOutput(&buf).CreateCommand(translations, &config.Config{})

	app := &cli.Command{Commands: []*cli.Command{cmd}}
	return app, &buf
}

func TestProvidersCommand(t *testing.T) {
	t.Run("should render the provider list", func(t *testing.T) {
		app, buf := setupProvidersTest(t, func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "/providers", r.URL.Path)
			_, _ = w.Write([]byte(`["anthropic", "openai"]`))
		})

		err := app.Run(context.Background(), []string{"toktab", "providers"})

		assert.NoError(t, err)
		assert.Contains(t, buf.String(), "Providers (2)")
		assert.Contains(t, buf.String(), "• anthropic")
		assert.Contains(t, buf.String(), "• openai")
	})

	t.Run("should emit raw JSON with --json", func(t *testing.T) {
		app, buf := setupProvidersTest(t, func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte(`["anthropic"]`))
		})

		err := app.Run(context.Background(), []string{"toktab", "providers", "--json"})

		assert.NoError(t, err)
		assert.Equal(t, "[\n  \"anthropic\"\n]\n", buf.String())
	})

	t.Run("should surface API errors", func(t *testing.T) {
		app, _ := setupProvidersTest(t, func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusBadGateway)
		})

		err := app.Run(context.Background(), []string{"toktab", "providers"})

		assert.Error(t, err)
		assert.Contains(t, err.Error(), "API error: 502")
	})
}
