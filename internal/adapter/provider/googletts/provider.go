// Package googletts synthesizes word pronunciations via the Google Cloud
// Text-to-Speech REST API.
package googletts

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"time"

	"github.com/lexibase/lexibase-backend/internal/provider"
)

const defaultBaseURL = "https://texttospeech.googleapis.com/v1"

// Provider synthesizes MP3 audio for short texts.
type Provider struct {
	baseURL    string
	apiKey     string
	httpClient *http.Client
	log        *slog.Logger
}

// NewProvider creates a Provider with the default Google TTS URL.
func NewProvider(apiKey string, timeout time.Duration, logger *slog.Logger) *Provider {
	return &Provider{
		baseURL:    defaultBaseURL,
		apiKey:     apiKey,
		httpClient: &http.Client{Timeout: timeout},
		log:        logger.With("adapter", "googletts"),
	}
}

// NewProviderWithURL creates a Provider with a custom base URL (for testing).
func NewProviderWithURL(baseURL, apiKey string, logger *slog.Logger) *Provider {
	return &Provider{
		baseURL:    baseURL,
		apiKey:     apiKey,
		httpClient: &http.Client{Timeout: 10 * time.Second},
		log:        logger.With("adapter", "googletts"),
	}
}

// ttsLanguage maps our language codes to BCP-47 voice languages.
var ttsLanguage = map[string]string{
	"da": "da-DK",
	"en": "en-US",
	"ru": "ru-RU",
}

// Synthesize generates MP3 audio for the text in the given language.
func (p *Provider) Synthesize(ctx context.Context, text, languageCode string) (*provider.AudioResult, error) {
	voiceLang, ok := ttsLanguage[languageCode]
	if !ok {
		return nil, fmt.Errorf("googletts: unsupported language %q", languageCode)
	}

	payload := synthesizeRequest{}
	payload.Input.Text = text
	payload.Voice.LanguageCode = voiceLang
	payload.Voice.SsmlGender = "FEMALE"
	payload.AudioConfig.AudioEncoding = "MP3"

	body, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("googletts: encode request: %w", err)
	}

	reqURL := p.baseURL + "/text:synthesize?" + url.Values{"key": {p.apiKey}}.Encode()

	p.log.DebugContext(ctx, "googletts request",
		slog.String("text", text), slog.String("language", voiceLang))

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, reqURL, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("googletts: create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := p.doWithRetry(ctx, req, text, body)
	if err != nil {
		p.log.ErrorContext(ctx, "googletts request failed", slog.String("text", text), slog.String("error", err.Error()))
		return nil, fmt.Errorf("googletts: request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("googletts: unexpected status %d", resp.StatusCode)
	}

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("googletts: read body: %w", err)
	}

	var sr synthesizeResponse
	if err := json.Unmarshal(respBody, &sr); err != nil {
		return nil, fmt.Errorf("googletts: decode json: %w", err)
	}

	audio, err := base64.StdEncoding.DecodeString(sr.AudioContent)
	if err != nil {
		return nil, fmt.Errorf("googletts: decode audio: %w", err)
	}

	p.log.DebugContext(ctx, "googletts response",
		slog.String("text", text), slog.Int("bytes", len(audio)))

	return &provider.AudioResult{MP3: audio, LanguageCode: voiceLang}, nil
}

// doWithRetry executes the request with a single retry on 5xx or network
// errors. POST bodies are rebuilt for the second attempt.
func (p *Provider) doWithRetry(ctx context.Context, req *http.Request, text string, body []byte) (*http.Response, error) {
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
	p.log.WarnContext(ctx, "googletts retry", slog.String("text", text), slog.String("reason", reason))

	if resp != nil && resp.Body != nil {
		resp.Body.Close()
	}

	time.Sleep(500 * time.Millisecond)

	retry := req.Clone(ctx)
	retry.Body = io.NopCloser(bytes.NewReader(body))
	return p.httpClient.Do(retry)
}
