// Package translate translates short phrases via the MyMemory API.
package translate

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

const defaultBaseURL = "https://api.mymemory.translated.net"

// Provider translates text between languages. The optional contact email
// raises MyMemory's anonymous rate limit.
type Provider struct {
	baseURL    string
	email      string
	httpClient *http.Client
	log        *slog.Logger
}

// NewProvider creates a Provider with the default MyMemory URL.
func NewProvider(email string, timeout time.Duration, logger *slog.Logger) *Provider {
	return &Provider{
		baseURL:    defaultBaseURL,
		email:      email,
		httpClient: &http.Client{Timeout: timeout},
		log:        logger.With("adapter", "translate"),
	}
}

// NewProviderWithURL creates a Provider with a custom base URL (for testing).
func NewProviderWithURL(baseURL, email string, logger *slog.Logger) *Provider {
	return &Provider{
		baseURL:    baseURL,
		email:      email,
		httpClient: &http.Client{Timeout: 10 * time.Second},
		log:        logger.With("adapter", "translate"),
	}
}

// Translate translates text from one language to another. Language codes are
// ISO 639-1 ("da", "en").
func (p *Provider) Translate(ctx context.Context, text, from, to string) (*provider.TranslationResult, error) {
	params := url.Values{
		"q":        {text},
		"langpair": {from + "|" + to},
	}
	if p.email != "" {
		params.Set("de", p.email)
	}

	reqURL := p.baseURL + "/get?" + params.Encode()

	p.log.DebugContext(ctx, "translate request",
		slog.String("text", text), slog.String("langpair", from+"|"+to))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, fmt.Errorf("translate: create request: %w", err)
	}

	resp, err := p.doWithRetry(ctx, req, text)
	if err != nil {
		p.log.ErrorContext(ctx, "translate request failed", slog.String("text", text), slog.String("error", err.Error()))
		return nil, fmt.Errorf("translate: request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("translate: unexpected status %d", resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("translate: read body: %w", err)
	}

	var tr translateResponse
	if err := json.Unmarshal(body, &tr); err != nil {
		return nil, fmt.Errorf("translate: decode json: %w", err)
	}

	// MyMemory reports errors in-band with a 200 response.
	if tr.ResponseStatus != 200 {
		return nil, fmt.Errorf("translate: provider status %d: %s", tr.ResponseStatus, tr.ResponseDetails)
	}

	p.log.DebugContext(ctx, "translate response",
		slog.String("text", text),
		slog.Float64("match", tr.ResponseData.Match))

	return &provider.TranslationResult{
		Text:  tr.ResponseData.TranslatedText,
		Match: tr.ResponseData.Match,
	}, nil
}

// doWithRetry executes the request with a single retry on 5xx or network errors.
func (p *Provider) doWithRetry(ctx context.Context, req *http.Request, text string) (*http.Response, error) {
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
	p.log.WarnContext(ctx, "translate retry", slog.String("text", text), slog.String("reason", reason))

	if resp != nil && resp.Body != nil {
		resp.Body.Close()
	}

	time.Sleep(500 * time.Millisecond)

	return p.httpClient.Do(req)
}
