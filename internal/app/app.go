package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/lexibase/lexibase-backend/internal/adapter/postgres"
	listrepo "github.com/lexibase/lexibase-backend/internal/adapter/postgres/list"
	reviewlogrepo "github.com/lexibase/lexibase-backend/internal/adapter/postgres/reviewlog"
	tokenrepo "github.com/lexibase/lexibase-backend/internal/adapter/postgres/token"
	userrepo "github.com/lexibase/lexibase-backend/internal/adapter/postgres/user"
	userwordrepo "github.com/lexibase/lexibase-backend/internal/adapter/postgres/userword"
	wordrepo "github.com/lexibase/lexibase-backend/internal/adapter/postgres/word"
	"github.com/lexibase/lexibase-backend/internal/adapter/provider/googletts"
	"github.com/lexibase/lexibase-backend/internal/adapter/provider/merriam"
	"github.com/lexibase/lexibase-backend/internal/adapter/provider/ordnet"
	"github.com/lexibase/lexibase-backend/internal/adapter/provider/pexels"
	"github.com/lexibase/lexibase-backend/internal/adapter/provider/translate"
	"github.com/lexibase/lexibase-backend/internal/adapter/storage/localdisk"
	"github.com/lexibase/lexibase-backend/internal/auth"
	"github.com/lexibase/lexibase-backend/internal/config"
	"github.com/lexibase/lexibase-backend/internal/provider"
	authsvc "github.com/lexibase/lexibase-backend/internal/service/auth"
	"github.com/lexibase/lexibase-backend/internal/service/dictionary"
	"github.com/lexibase/lexibase-backend/internal/service/ingest"
	"github.com/lexibase/lexibase-backend/internal/service/list"
	"github.com/lexibase/lexibase-backend/internal/service/media"
	"github.com/lexibase/lexibase-backend/internal/service/practice"
	usersvc "github.com/lexibase/lexibase-backend/internal/service/user"
	"github.com/lexibase/lexibase-backend/internal/service/userdict"
	"github.com/lexibase/lexibase-backend/internal/transport/middleware"
	"github.com/lexibase/lexibase-backend/internal/transport/rest"
)

// dictionaryLookup matches the ingest service source interface.
type dictionaryLookup interface {
	Lookup(ctx context.Context, word string) (*provider.DictionaryResult, error)
}

// imageSearcher matches the media service image provider interface.
type imageSearcher interface {
	Search(ctx context.Context, query string, perPage int) ([]provider.ImageResult, error)
}

// speechSynthesizer matches the media service TTS provider interface.
type speechSynthesizer interface {
	Synthesize(ctx context.Context, text, languageCode string) (*provider.AudioResult, error)
}

// translator matches the media service translation provider interface.
type translator interface {
	Translate(ctx context.Context, text, from, to string) (*provider.TranslationResult, error)
}

// Run is the application entry point. It loads configuration, applies
// migrations, wires repositories, providers and services, and serves HTTP
// until the context is canceled.
func Run(ctx context.Context) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	logger := NewLogger(cfg.Log)

	logger.Info("starting application",
		slog.String("version", BuildVersion()),
		slog.String("log_level", cfg.Log.Level),
	)

	if err := Migrate(ctx, cfg.Database.DSN); err != nil {
		return fmt.Errorf("apply migrations: %w", err)
	}

	pool, err := postgres.NewPool(ctx, cfg.Database)
	if err != nil {
		return fmt.Errorf("connect to database: %w", err)
	}
	defer pool.Close()

	txManager := postgres.NewTxManager(pool)

	users := userrepo.New(pool)
	tokens := tokenrepo.New(pool)
	words := wordrepo.New(pool)
	userWords := userwordrepo.New(pool)
	lists := listrepo.New(pool)
	reviews := reviewlogrepo.New(pool)

	jwtManager := auth.NewJWTManager(cfg.Auth.JWTSecret, cfg.Auth.JWTIssuer, cfg.Auth.AccessTokenTTL)

	timeout := cfg.Providers.RequestTimeout

	var ordnetSrc, merriamSrc dictionaryLookup
	if cfg.Providers.OrdnetBaseURL != "" {
		ordnetSrc = ordnet.NewProvider(cfg.Providers.OrdnetBaseURL, timeout, logger)
	}
	if cfg.Providers.MerriamWebsterKey != "" {
		merriamSrc = merriam.NewProvider(cfg.Providers.MerriamWebsterKey, timeout, logger)
	}

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

	audioStore, err := localdisk.NewStore(cfg.Enrich.AudioDir, cfg.Enrich.AudioBaseURL, logger)
	if err != nil {
		return fmt.Errorf("create audio store: %w", err)
	}

	authService := authsvc.NewService(logger, users, tokens, txManager, jwtManager, cfg.Auth)
	dictionaryService := dictionary.NewService(logger, words, txManager, cfg.Dictionary)
	userDictService := userdict.NewService(logger, userWords, words, cfg.Dictionary)
	listService := list.NewService(logger, lists, userWords, txManager, cfg.Dictionary)
	practiceService := practice.NewService(logger, userWords, reviews, users, txManager, cfg.Practice)
	userService := usersvc.NewService(logger, users, tokens, txManager)
	ingestService := ingest.NewService(logger, words, txManager, ordnetSrc, merriamSrc)
	mediaService := media.NewService(logger, words, images, tts, tr, audioStore, cfg.Enrich)

	limiter := middleware.NewRateLimiter(10 * time.Minute)
	defer limiter.Stop()

	handlers := rest.Handlers{
		Auth:     rest.NewAuthHandler(authService, logger),
		Words:    rest.NewWordHandler(dictionaryService, logger),
		MyWords:  rest.NewMyWordsHandler(userDictService, logger),
		Lists:    rest.NewListHandler(listService, logger),
		Practice: rest.NewPracticeHandler(practiceService, logger),
		Profile:  rest.NewProfileHandler(userService, logger),
		Admin:    rest.NewAdminHandler(userService, ingestService, mediaService, dictionaryService, logger),
		Health:   rest.NewHealthHandler(pool, BuildVersion()),
	}

	router := rest.NewRouter(cfg, handlers, jwtManager, limiter, logger)

	server := &http.Server{
		Addr:         fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port),
		Handler:      router,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("http server listening", slog.String("addr", server.Addr))
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return fmt.Errorf("http server: %w", err)
	case <-ctx.Done():
	}

	logger.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("server shutdown: %w", err)
	}

	logger.Info("stopped")
	return nil
}
