// Command seeder populates a fresh database with an admin account and a
// starter set of Danish vocabulary grouped into an official list. It is
// intended to be run once after migrations, not as part of the main server.
//
// Flags:
//
//	--admin-email     email for the admin account (default: admin@lexibase.local)
//	--admin-password  password for the admin account (required)
//
// Exit codes: 0 = success, 1 = error.
package main

import (
	"context"
	"errors"
	"flag"
	"log"
	"log/slog"
	"os"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/lexibase/lexibase-backend/internal/adapter/postgres"
	listrepo "github.com/lexibase/lexibase-backend/internal/adapter/postgres/list"
	userrepo "github.com/lexibase/lexibase-backend/internal/adapter/postgres/user"
	wordrepo "github.com/lexibase/lexibase-backend/internal/adapter/postgres/word"
	"github.com/lexibase/lexibase-backend/internal/app"
	"github.com/lexibase/lexibase-backend/internal/config"
	"github.com/lexibase/lexibase-backend/internal/domain"
)

type seedWord struct {
	text       string
	pos        domain.PartOfSpeech
	definition string
	example    string
	english    string
}

var starterWords = []seedWord{
	{"hund", domain.PartOfSpeechNoun, "kødædende pattedyr der holdes som husdyr", "Hunden logrer med halen.", "dog"},
	{"kat", domain.PartOfSpeechNoun, "mindre kødædende pattedyr der holdes som husdyr", "Katten fanger mus.", "cat"},
	{"hus", domain.PartOfSpeechNoun, "bygning som mennesker bor i", "De købte et gammelt hus.", "house"},
	{"spise", domain.PartOfSpeechVerb, "indtage føde", "Vi skal spise klokken seks.", "eat"},
	{"drikke", domain.PartOfSpeechVerb, "indtage væske", "Husk at drikke vand.", "drink"},
	{"rød", domain.PartOfSpeechAdjective, "med samme farve som blod", "Hun har en rød cykel.", "red"},
	{"hurtig", domain.PartOfSpeechAdjective, "som bevæger sig med stor fart", "Toget er meget hurtigt.", "fast"},
	{"langsomt", domain.PartOfSpeechAdverb, "med lav fart", "Han gik langsomt hjem.", "slowly"},
}

func main() {
	adminEmail := flag.String("admin-email", "admin@lexibase.local", "email for the admin account")
	adminPassword := flag.String("admin-password", "", "password for the admin account")
	flag.Parse()

	if *adminPassword == "" {
		log.Fatal("--admin-password is required")
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	logger := app.NewLogger(cfg.Log)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
	defer cancel()

	if err := app.Migrate(ctx, cfg.Database.DSN); err != nil {
		logger.Error("apply migrations", slog.String("error", err.Error()))
		os.Exit(1)
	}

	pool, err := postgres.NewPool(ctx, cfg.Database)
	if err != nil {
		logger.Error("connect to database", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer pool.Close()

	users := userrepo.New(pool)
	words := wordrepo.New(pool)
	lists := listrepo.New(pool)

	if err := seedAdmin(ctx, users, *adminEmail, *adminPassword, cfg.Auth.PasswordHashCost, logger); err != nil {
		logger.Error("seed admin", slog.String("error", err.Error()))
		os.Exit(1)
	}

	if err := seedCatalog(ctx, words, lists, logger); err != nil {
		logger.Error("seed catalog", slog.String("error", err.Error()))
		os.Exit(1)
	}

	logger.Info("seeding finished")
}

func seedAdmin(ctx context.Context, users *userrepo.Repo, email, password string, hashCost int, logger *slog.Logger) error {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), hashCost)
	if err != nil {
		return err
	}

	admin := &domain.User{
		Email:        email,
		Username:     "admin",
		Name:         "Administrator",
		Role:         domain.UserRoleAdmin,
		BaseLanguage: "en",
		TargetLang:   "da",
	}

	created, err := users.Create(ctx, admin, string(hash))
	if errors.Is(err, domain.ErrAlreadyExists) {
		logger.Info("admin account already exists", slog.String("email", email))
		return nil
	}
	if err != nil {
		return err
	}

	settings := domain.DefaultUserSettings(created.ID)
	if err := users.CreateSettings(ctx, &settings); err != nil {
		return err
	}

	logger.Info("admin account created", slog.String("email", email))
	return nil
}

func seedCatalog(ctx context.Context, words *wordrepo.Repo, lists *listrepo.Repo, logger *slog.Logger) error {
	description := "Starter vocabulary for absolute beginners."
	list, err := lists.Create(ctx, &domain.List{
		Name:        "Dansk for begyndere",
		Description: &description,
		Difficulty:  domain.DifficultyBeginner,
		IsPublic:    true,
	})
	if errors.Is(err, domain.ErrAlreadyExists) {
		logger.Info("starter list already exists")
		return nil
	}
	if err != nil {
		return err
	}

	for _, sw := range starterWords {
		pos := sw.pos
		word := &domain.Word{
			Text:           sw.text,
			TextNormalized: domain.NormalizeText(sw.text),
			LanguageCode:   "da",
			PartOfSpeech:   &pos,
			Difficulty:     domain.DifficultyBeginner,
			Source:         domain.WordSourceAdmin,
		}

		created, err := words.Create(ctx, word)
		if errors.Is(err, domain.ErrAlreadyExists) {
			continue
		}
		if err != nil {
			return err
		}

		defs := []domain.Definition{{
			Position: 1,
			Text:     sw.definition,
			Examples: []domain.Example{{Position: 1, Sentence: sw.example}},
		}}
		if err := words.SetDefinitions(ctx, created.ID, defs); err != nil {
			return err
		}

		trs := []domain.Translation{{LanguageCode: "en", Text: sw.english}}
		if err := words.SetTranslations(ctx, created.ID, trs); err != nil {
			return err
		}

		if err := lists.AddWord(ctx, list.ID, created.ID); err != nil {
			return err
		}
	}

	logger.Info("starter catalog created", slog.Int("words", len(starterWords)))
	return nil
}
