// Package merriam fetches English dictionary entries from the
// Merriam-Webster Collegiate API.
package merriam

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"time"

	"github.com/lexibase/lexibase-backend/internal/provider"
)

const defaultBaseURL = "https://dictionaryapi.com/api/v3/references/collegiate/json"

// Provider fetches dictionary data from the Merriam-Webster API.
type Provider struct {
	baseURL    string
	apiKey     string
	httpClient *http.Client
	log        *slog.Logger
}

// NewProvider creates a Provider with the default Merriam-Webster URL.
func NewProvider(apiKey string, timeout time.Duration, logger *slog.Logger) *Provider {
	return &Provider{
		baseURL:    defaultBaseURL,
		apiKey:     apiKey,
		httpClient: &http.Client{Timeout: timeout},
		log:        logger.With("adapter", "merriam"),
	}
}

// NewProviderWithURL creates a Provider with a custom base URL (for testing).
func NewProviderWithURL(baseURL, apiKey string, logger *slog.Logger) *Provider {
	return &Provider{
		baseURL:    baseURL,
		apiKey:     apiKey,
		httpClient: &http.Client{Timeout: 10 * time.Second},
		log:        logger.With("adapter", "merriam"),
	}
}

// Lookup fetches the dictionary entry for the given English word.
// Returns nil, nil when the word is unknown; the API signals that by
// answering with spelling suggestions instead of entry objects.
func (p *Provider) Lookup(ctx context.Context, word string) (*provider.DictionaryResult, error) {
	reqURL := p.baseURL + "/" + url.PathEscape(word) + "?" + url.Values{"key": {p.apiKey}}.Encode()

	p.log.DebugContext(ctx, "merriam request", slog.String("word", word))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, fmt.Errorf("merriam: create request: %w", err)
	}

	resp, err := p.doWithRetry(ctx, req, word)
	if err != nil {
		p.log.ErrorContext(ctx, "merriam request failed", slog.String("word", word), slog.String("error", err.Error()))
		return nil, fmt.Errorf("merriam: request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("merriam: unexpected status %d", resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("merriam: read body: %w", err)
	}

	// Unknown words come back as a bare array of suggestion strings.
	var entries []apiEntry
	if err := json.Unmarshal(body, &entries); err != nil {
		var suggestions []string
		if json.Unmarshal(body, &suggestions) == nil {
			return nil, nil
		}
		return nil, fmt.Errorf("merriam: decode json: %w", err)
	}
	if len(entries) == 0 {
		return nil, nil
	}

	result := mapAPIResponse(word, entries)

	p.log.DebugContext(ctx, "merriam response",
		slog.String("word", word),
		slog.Int("senses", len(result.Senses)),
	)

	return result, nil
}

// doWithRetry executes the request with a single retry on 5xx or network errors.
func (p *Provider) doWithRetry(ctx context.Context, req *http.Request, word string) (*http.Response, error) {
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
	p.log.WarnContext(ctx, "merriam retry", slog.String("word", word), slog.String("reason", reason))

	if resp != nil && resp.Body != nil {
		resp.Body.Close()
	}

	time.Sleep(500 * time.Millisecond)

	return p.httpClient.Do(req)
}
