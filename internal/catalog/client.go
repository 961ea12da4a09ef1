package catalog

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	apperrors "github.com/tomdyson/toktab-cli/internal/errors"
	"github.com/tomdyson/toktab-cli/internal/logger"
)

const (
	DefaultBaseURL = "https://toktab.com/api"
	DefaultTimeout = 10 * time.Second

	// The service never returns more than this many search results.
	MaxSearchLimit = 50

	defaultSearchLimit = 20
)

// Client talks to the TokTab catalog service.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

func NewClient(baseURL string, timeout time.Duration) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{
			Timeout: timeout,
		},
	}
}

// GetModel fetches the full pricing/capability record for a model slug.
func (c *Client) GetModel(ctx context.Context, slug string) (*Model, error) {
	endpoint := fmt.Sprintf("%s/%s/", c.baseURL, url.PathEscape(slug))
	logger.Debug(ctx, "fetching model", "slug", slug, "url", endpoint)

	body, err := c.get(ctx, endpoint, func(status int) *apperrors.AppError {
		if status == http.StatusNotFound {
			return apperrors.ErrModelNotFound.
				WithMessage(fmt.Sprintf("Model '%s' not found", slug)).
				WithContext("slug", slug)
		}
		return apperrors.ErrAPI.WithMessage(fmt.Sprintf("API error: %d", status))
	})
	if err != nil {
		return nil, err
	}

	var model Model
	if err := json.Unmarshal(body, &model); err != nil {
		return nil, apperrors.NewAppError(apperrors.TypeAPI, "Invalid response from catalog", err)
	}
	if model.Slug == "" {
		model.Slug = slug
	}
	model.Raw = body
	return &model, nil
}

// Search looks up models matching a query, which supports partial matches
// and a 'provider:' prefix. The limit is capped at MaxSearchLimit.
func (c *Client) Search(ctx context.Context, query string, limit int) (*SearchResult, error) {
	if limit <= 0 {
		limit = defaultSearchLimit
	}
	if limit > MaxSearchLimit {
		limit = MaxSearchLimit
	}

	params := url.Values{}
	params.Set("q", query)
	params.Set("limit", strconv.Itoa(limit))
	endpoint := fmt.Sprintf("%s/search?%s", c.baseURL, params.Encode())
	logger.Debug(ctx, "searching models", "query", query, "limit", limit)

	body, err := c.get(ctx, endpoint, func(status int) *apperrors.AppError {
		if status == http.StatusBadRequest {
			return apperrors.ErrInvalidQuery.WithContext("query", query)
		}
		return apperrors.ErrAPI.WithMessage(fmt.Sprintf("API error: %d", status))
	})
	if err != nil {
		return nil, err
	}

	var result SearchResult
	if err := json.Unmarshal(body, &result); err != nil {
		return nil, apperrors.NewAppError(apperrors.TypeAPI, "Invalid response from catalog", err)
	}
	result.Raw = body
	return &result, nil
}

// ListProviders fetches the provider names known to the catalog.
func (c *Client) ListProviders(ctx context.Context) ([]string, error) {
	endpoint := fmt.Sprintf("%s/providers", c.baseURL)
	logger.Debug(ctx, "fetching providers", "url", endpoint)

	body, err := c.get(ctx, endpoint, func(status int) *apperrors.AppError {
		return apperrors.ErrAPI.WithMessage(fmt.Sprintf("API error: %d", status))
	})
	if err != nil {
		return nil, err
	}

	var providers []string
	if err := json.Unmarshal(body, &providers); err != nil {
		return nil, apperrors.NewAppError(apperrors.TypeAPI, "Invalid response from catalog", err)
	}
	return providers, nil
}

// get issues the request and maps transport failures and non-2xx statuses
// onto the catalog error set.
func (c *Client) get(ctx context.Context, endpoint string, statusErr func(int) *apperrors.AppError) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, apperrors.NewAppError(apperrors.TypeInternal, "Failed to build request", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, classifyTransportError(err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, statusErr(resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, classifyTransportError(err)
	}
	return body, nil
}

func classifyTransportError(err error) *apperrors.AppError {
	var netErr net.Error
	if errors.As(err, &netErr) && netErr.Timeout() {
		return apperrors.ErrTimeout
	}
	if errors.Is(err, context.DeadlineExceeded) {
		return apperrors.ErrTimeout
	}
	return apperrors.ErrNetwork.WithError(err)
}
