// Package ordnet fetches Danish dictionary entries from an ordnet.dk
// compatible JSON endpoint.
package ordnet

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

const defaultBaseURL = "https://ordnet.dk/ddo/api"

// Provider fetches dictionary data for Danish words.
type Provider struct {
	baseURL    string
	httpClient *http.Client
	log        *slog.Logger
}

// NewProvider creates a Provider. An empty baseURL selects the default
// endpoint.
func NewProvider(baseURL string, timeout time.Duration, logger *slog.Logger) *Provider {
	if baseURL == "" {
		baseURL = defaultBaseURL
	}
	return &Provider{
		baseURL:    baseURL,
		httpClient: &http.Client{Timeout: timeout},
		log:        logger.With("adapter", "ordnet"),
	}
}

// Lookup fetches the dictionary entry for the given Danish word.
// Returns nil, nil if the word is not found (HTTP 404).
func (p *Provider) Lookup(ctx context.Context, word string) (*provider.DictionaryResult, error) {
	reqURL := p.baseURL + "/entry?" + url.Values{"query": {word}}.Encode()

	p.log.DebugContext(ctx, "ordnet request", slog.String("word", word))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, fmt.Errorf("ordnet: create request: %w", err)
	}

	resp, err := p.doWithRetry(ctx, req, word)
	if err != nil {
		p.log.ErrorContext(ctx, "ordnet request failed", slog.String("word", word), slog.String("error", err.Error()))
		return nil, fmt.Errorf("ordnet: request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return nil, nil
	}

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("ordnet: unexpected status %d", resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("ordnet: read body: %w", err)
	}

	var entry apiEntry
	if err := json.Unmarshal(body, &entry); err != nil {
		return nil, fmt.Errorf("ordnet: decode json: %w", err)
	}

	result := mapAPIResponse(entry)

	p.log.DebugContext(ctx, "ordnet response",
		slog.String("word", word),
		slog.Int("senses", len(result.Senses)),
		slog.Int("synonyms", len(result.Synonyms)),
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

	// Don't retry if context is already cancelled.
	if ctx.Err() != nil {
		return resp, err
	}

	reason := "network error"
	if err == nil && resp != nil {
		reason = fmt.Sprintf("status %d", resp.StatusCode)
	}
	p.log.WarnContext(ctx, "ordnet retry", slog.String("word", word), slog.String("reason", reason))

	if resp != nil && resp.Body != nil {
		resp.Body.Close()
	}

	time.Sleep(500 * time.Millisecond)

	return p.httpClient.Do(req)
}

// mapAPIResponse converts an ordnet entry to a provider.DictionaryResult.
func mapAPIResponse(entry apiEntry) *provider.DictionaryResult {
	result := &provider.DictionaryResult{
		Word:   entry.Headword,
		Senses: []provider.SenseResult{},
	}

	if entry.WordClass != "" {
		wc := entry.WordClass
		result.PartOfSpeech = &wc
	}
	if entry.Phonetic != "" {
		ph := entry.Phonetic
		result.Phonetic = &ph
	}
	if entry.AudioURL != "" {
		audio := entry.AudioURL
		result.AudioURL = &audio
	}

	for _, sense := range entry.Senses {
		if sense.Definition == "" {
			continue
		}
		s := provider.SenseResult{
			Definition: sense.Definition,
			Examples:   []provider.ExampleResult{},
		}
		if sense.Label != "" {
			label := sense.Label
			s.UsageLabel = &label
		}
		for _, ex := range sense.Examples {
			if ex == "" {
				continue
			}
			s.Examples = append(s.Examples, provider.ExampleResult{Sentence: ex})
		}
		result.Senses = append(result.Senses, s)

		result.Synonyms = append(result.Synonyms, sense.Synonyms...)
	}

	return result
}
