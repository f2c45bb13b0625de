// Command enrich batch-fills missing images and pronunciation audio for
// catalog words using the configured external providers. It is intended to
// be run offline or from cron, not as part of the main server.
//
// Flags:
//
//	--language  ISO 639-1 code of the words to enrich (default: da)
//
// Exit codes: 0 = success, 1 = error.
package main

import (
	"context"
	"flag"
	"log"
	"log/slog"
	"os"
	"time"

	"github.com/lexibase/lexibase-backend/internal/adapter/postgres"
	wordrepo "github.com/lexibase/lexibase-backend/internal/adapter/postgres/word"
	"github.com/lexibase/lexibase-backend/internal/adapter/provider/googletts"
	"github.com/lexibase/lexibase-backend/internal/adapter/provider/pexels"
	"github.com/lexibase/lexibase-backend/internal/adapter/provider/translate"
	"github.com/lexibase/lexibase-backend/internal/adapter/storage/localdisk"
	"github.com/lexibase/lexibase-backend/internal/app"
	"github.com/lexibase/lexibase-backend/internal/config"
	"github.com/lexibase/lexibase-backend/internal/provider"
	"github.com/lexibase/lexibase-backend/internal/service/media"
)

type imageSearcher interface {
	Search(ctx context.Context, query string, perPage int) ([]provider.ImageResult, error)
}

type speechSynthesizer interface {
	Synthesize(ctx context.Context, text, languageCode string) (*provider.AudioResult, error)
}

type translator interface {
	Translate(ctx context.Context, text, from, to string) (*provider.TranslationResult, error)
}

func main() {
	language := flag.String("language", "da", "ISO 639-1 code of the words to enrich")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	logger := app.NewLogger(cfg.Log)

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Minute)
	defer cancel()

	pool, err := postgres.NewPool(ctx, cfg.Database)
	if err != nil {
		logger.Error("connect to database", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer pool.Close()

	timeout := cfg.Providers.RequestTimeout

	var images imageSearcher
	if cfg.Providers.PexelsAPIKey != "" {
		images = pexels.NewProvider(cfg.Providers.PexelsAPIKey, timeout, logger)
	}
	var tts speechSynthesizer
	if cfg.Providers.GoogleTTSAPIKey != "" {
		tts = googletts.NewProvider(cfg.Providers.GoogleTTSAPIKey, timeout, logger)
	}
	var tr translator
	if cfg.Providers.TranslateEmail != "" {
		tr = translate.NewProvider(cfg.Providers.TranslateEmail, timeout, logger)
	}

	store, err := localdisk.NewStore(cfg.Enrich.AudioDir, cfg.Enrich.AudioBaseURL, logger)
	if err != nil {
		logger.Error("create audio store", slog.String("error", err.Error()))
		os.Exit(1)
	}

	svc := media.NewService(logger, wordrepo.New(pool), images, tts, tr, store, cfg.Enrich)

	report, err := svc.EnrichMissing(ctx, *language)
	if err != nil {
		logger.Error("enrichment failed", slog.String("error", err.Error()))
		os.Exit(1)
	}

	logger.Info("enrichment finished",
		slog.String("language", *language),
		slog.Int("processed", report.Processed),
		slog.Int("images_added", report.ImagesAdded),
		slog.Int("audio_added", report.AudioAdded),
		slog.Int("failed", report.Failed),
	)
}
