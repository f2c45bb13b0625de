package testhelper

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/lexibase/lexibase-backend/internal/domain"
)

// uniqueSuffix returns a short unique string for generating non-conflicting test data.
func uniqueSuffix() string {
	return uuid.New().String()[:8]
}

// SeedUser creates a user with default settings and the role "user".
// Returns a filled domain.User.
func SeedUser(t *testing.T, pool *pgxpool.Pool) domain.User {
	t.Helper()
	ctx := context.Background()

	suffix := uniqueSuffix()
	now := time.Now().UTC().Truncate(time.Microsecond)
	user := domain.User{
		ID:           uuid.New(),
		Email:        "testuser-" + suffix + "@example.com",
		Username:     "testuser-" + suffix,
		Name:         "Test User " + suffix,
		Role:         domain.UserRoleUser,
		BaseLanguage: "en",
		TargetLang:   "da",
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	_, err := pool.Exec(ctx,
		`INSERT INTO users (id, email, username, name, password_hash, role, base_language, target_lang, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`,
		user.ID, user.Email, user.Username, user.Name, "$2a$10$testhash."+suffix,
		user.Role.String(), user.BaseLanguage, user.TargetLang, user.CreatedAt, user.UpdatedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedUser insert user: %v", err)
	}

	settings := domain.DefaultUserSettings(user.ID)

	_, err = pool.Exec(ctx,
		`INSERT INTO user_settings (user_id, daily_goal, words_per_session, new_words_per_day, timezone)
		 VALUES ($1, $2, $3, $4, $5)`,
		settings.UserID, settings.DailyGoal, settings.WordsPerSession, settings.NewWordsPerDay, settings.Timezone,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedUser insert user_settings: %v", err)
	}

	return user
}

// SeedAdmin creates a user with the admin role.
func SeedAdmin(t *testing.T, pool *pgxpool.Pool) domain.User {
	t.Helper()

	user := SeedUser(t, pool)
	_, err := pool.Exec(context.Background(),
		`UPDATE users SET role = 'admin' WHERE id = $1`, user.ID)
	if err != nil {
		t.Fatalf("testhelper: SeedAdmin promote user: %v", err)
	}
	user.Role = domain.UserRoleAdmin
	return user
}

// SeedWord creates a Danish dictionary word with 2 definitions (each with one
// example), 2 synonyms and 1 English translation. Returns a fully populated
// domain.Word.
func SeedWord(t *testing.T, pool *pgxpool.Pool, text string) domain.Word {
	t.Helper()
	ctx := context.Background()

	suffix := uniqueSuffix()
	now := time.Now().UTC().Truncate(time.Microsecond)
	pos := domain.PartOfSpeechNoun

	word := domain.Word{
		ID:             uuid.New(),
		Text:           text,
		TextNormalized: domain.NormalizeText(text),
		LanguageCode:   "da",
		PartOfSpeech:   &pos,
		Difficulty:     domain.DifficultyIntermediate,
		Source:         domain.WordSourceAdmin,
		CreatedAt:      now,
		UpdatedAt:      now,
	}

	_, err := pool.Exec(ctx,
		`INSERT INTO words (id, text, text_normalized, language_code, part_of_speech, difficulty, source, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`,
		word.ID, word.Text, word.TextNormalized, word.LanguageCode,
		word.PartOfSpeech.String(), word.Difficulty.String(), word.Source.String(),
		word.CreatedAt, word.UpdatedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedWord insert word: %v", err)
	}

	word.Definitions = make([]domain.Definition, 2)
	for i := range word.Definitions {
		def := domain.Definition{
			ID:       uuid.New(),
			WordID:   word.ID,
			Text:     "Definition " + suffix + "-" + string(rune('A'+i)),
			Position: i,
		}

		_, err := pool.Exec(ctx,
			`INSERT INTO definitions (id, word_id, text, position) VALUES ($1, $2, $3, $4)`,
			def.ID, def.WordID, def.Text, def.Position,
		)
		if err != nil {
			t.Fatalf("testhelper: SeedWord insert definition[%d]: %v", i, err)
		}

		exTranslation := "Example translation " + suffix
		ex := domain.Example{
			ID:           uuid.New(),
			DefinitionID: def.ID,
			Sentence:     "Example sentence " + suffix + "-" + string(rune('A'+i)),
			Translation:  &exTranslation,
			Position:     0,
		}

		_, err = pool.Exec(ctx,
			`INSERT INTO examples (id, definition_id, sentence, translation, position)
			 VALUES ($1, $2, $3, $4, $5)`,
			ex.ID, ex.DefinitionID, ex.Sentence, ex.Translation, ex.Position,
		)
		if err != nil {
			t.Fatalf("testhelper: SeedWord insert example[%d]: %v", i, err)
		}
		def.Examples = []domain.Example{ex}
		word.Definitions[i] = def
	}

	word.Synonyms = make([]domain.Synonym, 2)
	for i := range word.Synonyms {
		syn := domain.Synonym{
			ID:     uuid.New(),
			WordID: word.ID,
			Text:   "synonym-" + suffix + "-" + string(rune('a'+i)),
		}

		_, err := pool.Exec(ctx,
			`INSERT INTO synonyms (id, word_id, text) VALUES ($1, $2, $3)`,
			syn.ID, syn.WordID, syn.Text,
		)
		if err != nil {
			t.Fatalf("testhelper: SeedWord insert synonym[%d]: %v", i, err)
		}
		word.Synonyms[i] = syn
	}

	tr := domain.Translation{
		ID:           uuid.New(),
		WordID:       word.ID,
		LanguageCode: "en",
		Text:         "translation-" + suffix,
		Position:     0,
	}

	_, err = pool.Exec(ctx,
		`INSERT INTO translations (id, word_id, language_code, text, position)
		 VALUES ($1, $2, $3, $4, $5)`,
		tr.ID, tr.WordID, tr.LanguageCode, tr.Text, tr.Position,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedWord insert translation: %v", err)
	}
	word.Translations = []domain.Translation{tr}

	return word
}

// SeedUserWord links a word into the user's dictionary with status NEW.
func SeedUserWord(t *testing.T, pool *pgxpool.Pool, userID, wordID uuid.UUID) domain.UserWord {
	t.Helper()
	ctx := context.Background()

	now := time.Now().UTC().Truncate(time.Microsecond)
	uw := domain.UserWord{
		UserID:    userID,
		WordID:    wordID,
		Status:    domain.LearningStatusNew,
		AddedAt:   now,
		UpdatedAt: now,
	}

	_, err := pool.Exec(ctx,
		`INSERT INTO user_words (user_id, word_id, status, added_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5)`,
		uw.UserID, uw.WordID, uw.Status.String(), uw.AddedAt, uw.UpdatedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedUserWord insert: %v", err)
	}

	return uw
}

// SeedList creates a list owned by ownerID (nil for an official list) with
// the given word IDs as members.
func SeedList(t *testing.T, pool *pgxpool.Pool, ownerID *uuid.UUID, wordIDs ...uuid.UUID) domain.List {
	t.Helper()
	ctx := context.Background()

	suffix := uniqueSuffix()
	now := time.Now().UTC().Truncate(time.Microsecond)
	list := domain.List{
		ID:         uuid.New(),
		OwnerID:    ownerID,
		Name:       "Test List " + suffix,
		Difficulty: domain.DifficultyIntermediate,
		IsPublic:   true,
		WordCount:  len(wordIDs),
		CreatedAt:  now,
		UpdatedAt:  now,
	}

	_, err := pool.Exec(ctx,
		`INSERT INTO lists (id, owner_id, name, difficulty, is_public, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7)`,
		list.ID, list.OwnerID, list.Name, list.Difficulty.String(), list.IsPublic,
		list.CreatedAt, list.UpdatedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedList insert list: %v", err)
	}

	for _, wordID := range wordIDs {
		_, err := pool.Exec(ctx,
			`INSERT INTO list_words (list_id, word_id) VALUES ($1, $2)`,
			list.ID, wordID,
		)
		if err != nil {
			t.Fatalf("testhelper: SeedList insert list_word: %v", err)
		}
	}

	return list
}
