// Package pexels searches stock photos via the Pexels API.
package pexels

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/lexibase/lexibase-backend/internal/provider"
)

const defaultBaseURL = "https://api.pexels.com/v1"

// Provider searches images on Pexels. Authentication is the raw API key in
// the Authorization header.
type Provider struct {
	baseURL    string
	apiKey     string
	httpClient *http.Client
	log        *slog.Logger
}

// NewProvider creates a Provider with the default Pexels URL.
func NewProvider(apiKey string, timeout time.Duration, logger *slog.Logger) *Provider {
	return &Provider{
		baseURL:    defaultBaseURL,
		apiKey:     apiKey,
		httpClient: &http.Client{Timeout: timeout},
		log:        logger.With("adapter", "pexels"),
	}
}

// NewProviderWithURL creates a Provider with a custom base URL (for testing).
func NewProviderWithURL(baseURL, apiKey string, logger *slog.Logger) *Provider {
	return &Provider{
		baseURL:    baseURL,
		apiKey:     apiKey,
		httpClient: &http.Client{Timeout: 10 * time.Second},
		log:        logger.With("adapter", "pexels"),
	}
}

// Search returns up to perPage images for the query. Returns an empty slice
// when nothing matches.
func (p *Provider) Search(ctx context.Context, query string, perPage int) ([]provider.ImageResult, error) {
	if perPage <= 0 {
		perPage = 1
	}

	reqURL := p.baseURL + "/search?" + url.Values{
		"query":    {query},
		"per_page": {strconv.Itoa(perPage)},
	}.Encode()

	p.log.DebugContext(ctx, "pexels request", slog.String("query", query))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, fmt.Errorf("pexels: create request: %w", err)
	}
	req.Header.Set("Authorization", p.apiKey)

	resp, err := p.doWithRetry(ctx, req, query)
	if err != nil {
		p.log.ErrorContext(ctx, "pexels request failed", slog.String("query", query), slog.String("error", err.Error()))
		return nil, fmt.Errorf("pexels: request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("pexels: unexpected status %d", resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("pexels: read body: %w", err)
	}

	var sr searchResponse
	if err := json.Unmarshal(body, &sr); err != nil {
		return nil, fmt.Errorf("pexels: decode json: %w", err)
	}

	results := make([]provider.ImageResult, 0, len(sr.Photos))
	for _, photo := range sr.Photos {
		results = append(results, provider.ImageResult{
			URL:          photo.Src.Large,
			ThumbnailURL: photo.Src.Tiny,
			Photographer: photo.Photographer,
			Alt:          photo.Alt,
		})
	}

	p.log.DebugContext(ctx, "pexels response",
		slog.String("query", query),
		slog.Int("results", len(results)),
	)

	return results, nil
}

// doWithRetry executes the request with a single retry on 5xx or network errors.
func (p *Provider) doWithRetry(ctx context.Context, req *http.Request, query string) (*http.Response, error) {
	resp, err := p.httpClient.Do(req)

	shouldRetry := err != nil || (resp != nil && resp.StatusCode >= 500)
	if !shouldRetry {
		return resp, err
	}

	if ctx.Err() != nil {
		return resp, err
	}

	reason := "network error"
	if err == nil && resp != nil {
		reason = fmt.Sprintf("status %d", resp.StatusCode)
	}
	p.log.WarnContext(ctx, "pexels retry", slog.String("query", query), slog.String("reason", reason))

	if resp != nil && resp.Body != nil {
		resp.Body.Close()
	}

	time.Sleep(500 * time.Millisecond)

	return p.httpClient.Do(req)
}
