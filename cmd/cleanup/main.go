// Command cleanup permanently removes soft-deleted dictionary words past
// the retention window and deletes expired refresh tokens. It is intended
// to be invoked by an external cron job, not as an in-process goroutine.
//
// Exit codes: 0 = success, 1 = error.
package main

import (
	"context"
	"log"
	"log/slog"
	"os"
	"time"

	"github.com/lexibase/lexibase-backend/internal/adapter/postgres"
	tokenrepo "github.com/lexibase/lexibase-backend/internal/adapter/postgres/token"
	wordrepo "github.com/lexibase/lexibase-backend/internal/adapter/postgres/word"
	"github.com/lexibase/lexibase-backend/internal/app"
	"github.com/lexibase/lexibase-backend/internal/config"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	logger := app.NewLogger(cfg.Log)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
	defer cancel()

	pool, err := postgres.NewPool(ctx, cfg.Database)
	if err != nil {
		logger.Error("connect to database", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer pool.Close()

	words := wordrepo.New(pool)
	tokens := tokenrepo.New(pool)

	cutoff := time.Now().AddDate(0, 0, -cfg.Dictionary.HardDeleteRetentionDays)

	purged, err := words.HardDeleteOlderThan(ctx, cutoff)
	if err != nil {
		logger.Error("purge deleted words failed",
			slog.String("error", err.Error()),
			slog.Time("cutoff", cutoff),
		)
		os.Exit(1)
	}

	expired, err := tokens.DeleteExpired(ctx)
	if err != nil {
		logger.Error("delete expired tokens failed", slog.String("error", err.Error()))
		os.Exit(1)
	}

	logger.Info("cleanup finished",
		slog.Int64("words_purged", purged),
		slog.Int64("tokens_deleted", expired),
	)
}
