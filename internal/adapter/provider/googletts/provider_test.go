package googletts

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
)

func newTestLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestProvider_Synthesize_Success(t *testing.T) {
	t.Parallel()

	audio := []byte("fake-mp3-bytes")

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			t.Errorf("method = %s, want POST", r.Method)
		}
		if got := r.URL.Query().Get("key"); got != "apikey" {
			t.Errorf("key = %q, want apikey", got)
		}

		var req synthesizeRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			t.Errorf("decode request: %v", err)
		}
		if req.Input.Text != "hund" {
			t.Errorf("Input.Text = %q, want hund", req.Input.Text)
		}
		if req.Voice.LanguageCode != "da-DK" {
			t.Errorf("Voice.LanguageCode = %q, want da-DK", req.Voice.LanguageCode)
		}
		if req.AudioConfig.AudioEncoding != "MP3" {
			t.Errorf("AudioEncoding = %q, want MP3", req.AudioConfig.AudioEncoding)
		}

		json.NewEncoder(w).Encode(synthesizeResponse{
			AudioContent: base64.StdEncoding.EncodeToString(audio),
		})
	}))
	defer srv.Close()

	p := NewProviderWithURL(srv.URL, "apikey", newTestLogger())
	result, err := p.Synthesize(context.Background(), "hund", "da")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if string(result.MP3) != string(audio) {
		t.Errorf("MP3 bytes mismatch: got %q", result.MP3)
	}
	if result.LanguageCode != "da-DK" {
		t.Errorf("LanguageCode = %q, want da-DK", result.LanguageCode)
	}
}

func TestProvider_Synthesize_UnsupportedLanguage(t *testing.T) {
	t.Parallel()

	p := NewProviderWithURL("http://unused", "apikey", newTestLogger())
	if _, err := p.Synthesize(context.Background(), "hello", "xx"); err == nil {
		t.Fatal("expected error for unsupported language")
	}
}

func TestProvider_Synthesize_RetryResendsBody(t *testing.T) {
	t.Parallel()

	var callCount atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		n := callCount.Add(1)
		body, _ := io.ReadAll(r.Body)
		if len(body) == 0 {
			t.Errorf("attempt %d: empty request body", n)
		}
		if n == 1 {
			w.WriteHeader(http.StatusInternalServerError)
			return
		}
		json.NewEncoder(w).Encode(synthesizeResponse{
			AudioContent: base64.StdEncoding.EncodeToString([]byte("ok")),
		})
	}))
	defer srv.Close()

	p := NewProviderWithURL(srv.URL, "apikey", newTestLogger())
	result, err := p.Synthesize(context.Background(), "kat", "da")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if string(result.MP3) != "ok" {
		t.Errorf("MP3 = %q, want ok", result.MP3)
	}
	if got := callCount.Load(); got != 2 {
		t.Errorf("call count = %d, want 2", got)
	}
}

func TestProvider_Synthesize_InvalidBase64(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"audioContent": "!!! not base64 !!!"}`))
	}))
	defer srv.Close()

	p := NewProviderWithURL(srv.URL, "apikey", newTestLogger())
	if _, err := p.Synthesize(context.Background(), "hund", "da"); err == nil {
		t.Fatal("expected error for invalid base64 audio")
	}
}
