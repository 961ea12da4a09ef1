package search

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

func setupSearchTest(t *testing.T, handler http.HandlerFunc) (*cli.Command, *bytes.Buffer) {
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
	cmd := NewSearchCommandFactory(client).WithOutput(&buf).CreateCommand(translations, &config.Config{DefaultLimit: 20})

	app := &cli.Command{Commands: []*cli.Command{cmd}}
	return app, &buf
}

func TestSearchCommand(t *testing.T) {
	t.Run("should render a results table", func(t *testing.T) {
		app, buf := setupSearchTest(t, func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "claude", r.URL.Query().Get("q"))
			assert.Equal(t, "20", r.URL.Query().Get("limit"))
			_, _ = w.Write([]byte(`{
				"results": [
					{"slug": "claude-3-opus", "provider": "anthropic", "input_cost_per_token": 0.000015, "output_cost_per_token": 0.000075}
				],
				"query": "claude",
				"count": 1
			}`))
		})

		err := app.Run(context.Background(), []string{"toktab", "search", "claude"})

		assert.NoError(t, err)
		assert.Contains(t, buf.String(), "Found 1 model for 'claude'")
		assert.Contains(t, buf.String(), "claude-3-opus")
		assert.Contains(t, buf.String(), "anthropic")
	})

	t.Run("should pass a custom limit through", func(t *testing.T) {
		app, _ := setupSearchTest(t, func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "5", r.URL.Query().Get("limit"))
			_, _ = w.Write([]byte(`{"results": [], "query": "x", "count": 0}`))
		})

		err := app.Run(context.Background(), []string{"toktab", "search", "--limit", "5", "x"})

		assert.NoError(t, err)
	})

	t.Run("should emit raw JSON with --json", func(t *testing.T) {
		app, buf := setupSearchTest(t, func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte(`{"results":[],"query":"x","count":0}`))
		})

		err := app.Run(context.Background(), []string{"toktab", "search", "--json", "x"})

		assert.NoError(t, err)
		assert.Contains(t, buf.String(), "\"query\": \"x\"")
	})

	t.Run("should report empty results in plain mode", func(t *testing.T) {
		app, buf := setupSearchTest(t, func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte(`{"results": [], "query": "zzz", "count": 0}`))
		})

		err := app.Run(context.Background(), []string{"toktab", "search", "zzz"})

		assert.NoError(t, err)
		assert.Contains(t, buf.String(), "No models found for 'zzz'")
	})

	t.Run("should fail without a query", func(t *testing.T) {
		app, _ := setupSearchTest(t, func(w http.ResponseWriter, r *http.Request) {})

		err := app.Run(context.Background(), []string{"toktab", "search"})

		assert.Error(t, err)
		assert.Contains(t, err.Error(), "query is required")
	})

	t.Run("should surface invalid-query errors", func(t *testing.T) {
		app, _ := setupSearchTest(t, func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusBadRequest)
		})

		err := app.Run(context.Background(), []string{"toktab", "search", "???"})

		assert.Error(t, err)
		assert.Contains(t, err.Error(), "Invalid search query")
	})
}
