// Package word implements the dictionary word repository using PostgreSQL.
package word

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	postgres "github.com/lexibase/lexibase-backend/internal/adapter/postgres"
	"github.com/lexibase/lexibase-backend/internal/domain"
)

// Repo provides word persistence backed by PostgreSQL. Words carry nested
// definitions, examples, synonyms and translations; nested collections are
// replaced atomically inside a caller-provided transaction.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new word repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

const wordColumns = `id, text, text_normalized, language_code, part_of_speech, difficulty,
       phonetic, audio_url, image_url, source, created_at, updated_at, deleted_at`

const createWordSQL = `
INSERT INTO words (id, text, text_normalized, language_code, part_of_speech, difficulty, phonetic, audio_url, image_url, source)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
RETURNING ` + wordColumns

const getWordByIDSQL = `
SELECT ` + wordColumns + `
FROM words
WHERE id = $1 AND deleted_at IS NULL`

const getWordByTextSQL = `
SELECT ` + wordColumns + `
FROM words
WHERE text_normalized = $1 AND language_code = $2 AND deleted_at IS NULL`

const updateWordSQL = `
UPDATE words
SET text = $2, text_normalized = $3, part_of_speech = $4, difficulty = $5,
    phonetic = $6, audio_url = $7, image_url = $8, updated_at = now()
WHERE id = $1 AND deleted_at IS NULL
RETURNING ` + wordColumns

const updateMediaSQL = `
UPDATE words
SET audio_url = COALESCE($2, audio_url),
    image_url = COALESCE($3, image_url),
    updated_at = now()
WHERE id = $1 AND deleted_at IS NULL
RETURNING ` + wordColumns

const softDeleteWordSQL = `
UPDATE words SET deleted_at = now(), updated_at = now()
WHERE id = $1 AND deleted_at IS NULL`

const restoreWordSQL = `
UPDATE words SET deleted_at = NULL, updated_at = now()
WHERE id = $1 AND deleted_at IS NOT NULL
RETURNING ` + wordColumns

const hardDeleteOldSQL = `
DELETE FROM words WHERE deleted_at IS NOT NULL AND deleted_at < $1`

const listMissingMediaSQL = `
SELECT ` + wordColumns + `
FROM words
WHERE language_code = $1 AND deleted_at IS NULL
  AND (audio_url IS NULL OR image_url IS NULL)
ORDER BY created_at
LIMIT $2`

// Create inserts a new word row. A duplicate (text_normalized, language_code)
// pair maps to domain.ErrAlreadyExists.
func (r *Repo) Create(ctx context.Context, w *domain.Word) (*domain.Word, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	row := querier.QueryRow(ctx, createWordSQL,
		w.ID, w.Text, w.TextNormalized, w.LanguageCode,
		posParam(w.PartOfSpeech), w.Difficulty.String(), w.Phonetic,
		w.AudioURL, w.ImageURL, w.Source.String(),
	)

	created, err := scanWord(row)
	if err != nil {
		return nil, postgres.MapError(err, "word", w.Text)
	}
	return created, nil
}

// GetByID returns a word with its definitions, examples, synonyms and
// translations loaded.
func (r *Repo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Word, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	w, err := scanWord(querier.QueryRow(ctx, getWordByIDSQL, id))
	if err != nil {
		return nil, postgres.MapError(err, "word", id)
	}
	if err := r.loadDetails(ctx, querier, w); err != nil {
		return nil, fmt.Errorf("load word %s details: %w", id, err)
	}
	return w, nil
}

// GetByText returns a word by its normalized text and language, with details.
func (r *Repo) GetByText(ctx context.Context, normalized, languageCode string) (*domain.Word, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	w, err := scanWord(querier.QueryRow(ctx, getWordByTextSQL, normalized, languageCode))
	if err != nil {
		return nil, postgres.MapError(err, "word", normalized)
	}
	if err := r.loadDetails(ctx, querier, w); err != nil {
		return nil, fmt.Errorf("load word %q details: %w", normalized, err)
	}
	return w, nil
}

// Update modifies the core word fields and returns the updated row without
// nested collections.
func (r *Repo) Update(ctx context.Context, w *domain.Word) (*domain.Word, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	row := querier.QueryRow(ctx, updateWordSQL,
		w.ID, w.Text, w.TextNormalized, posParam(w.PartOfSpeech), w.Difficulty.String(), w.Phonetic,
		w.AudioURL, w.ImageURL,
	)

	updated, err := scanWord(row)
	if err != nil {
		return nil, postgres.MapError(err, "word", w.ID)
	}
	return updated, nil
}

// UpdateMedia sets audio and image URLs. Nil arguments keep existing values.
func (r *Repo) UpdateMedia(ctx context.Context, id uuid.UUID, audioURL, imageURL *string) (*domain.Word, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	w, err := scanWord(querier.QueryRow(ctx, updateMediaSQL, id, audioURL, imageURL))
	if err != nil {
		return nil, postgres.MapError(err, "word", id)
	}
	return w, nil
}

// SoftDelete marks the word deleted without removing user references.
func (r *Repo) SoftDelete(ctx context.Context, id uuid.UUID) error {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	tag, err := querier.Exec(ctx, softDeleteWordSQL, id)
	if err != nil {
		return postgres.MapError(err, "word", id)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("word %s: %w", id, domain.ErrNotFound)
	}
	return nil
}

// Restore clears the deletion mark on a soft-deleted word.
func (r *Repo) Restore(ctx context.Context, id uuid.UUID) (*domain.Word, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	w, err := scanWord(querier.QueryRow(ctx, restoreWordSQL, id))
	if err != nil {
		return nil, postgres.MapError(err, "word", id)
	}
	return w, nil
}

// HardDeleteOlderThan permanently removes words soft-deleted before the
// cutoff. Child rows go with ON DELETE CASCADE.
func (r *Repo) HardDeleteOlderThan(ctx context.Context, cutoff time.Time) (int64, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	tag, err := querier.Exec(ctx, hardDeleteOldSQL, cutoff)
	if err != nil {
		return 0, fmt.Errorf("hard delete words: %w", err)
	}
	return tag.RowsAffected(), nil
}

// ListMissingMedia returns words of a language that lack an audio or image
// URL, oldest first.
func (r *Repo) ListMissingMedia(ctx context.Context, languageCode string, limit int) ([]domain.Word, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	rows, err := querier.Query(ctx, listMissingMediaSQL, languageCode, limit)
	if err != nil {
		return nil, fmt.Errorf("list words missing media: %w", err)
	}
	defer rows.Close()

	return scanWords(rows)
}

// ---------------------------------------------------------------------------
// Nested collections
// ---------------------------------------------------------------------------

const deleteDefinitionsSQL = `DELETE FROM definitions WHERE word_id = $1`

const insertDefinitionSQL = `
INSERT INTO definitions (word_id, text, usage_label, position)
VALUES ($1, $2, $3, $4)
RETURNING id`

const insertExampleSQL = `
INSERT INTO examples (definition_id, sentence, translation, position)
VALUES ($1, $2, $3, $4)`

const deleteSynonymsSQL = `DELETE FROM synonyms WHERE word_id = $1`

const insertSynonymSQL = `
INSERT INTO synonyms (word_id, text) VALUES ($1, $2) ON CONFLICT DO NOTHING`

const deleteTranslationsSQL = `DELETE FROM translations WHERE word_id = $1`

const insertTranslationSQL = `
INSERT INTO translations (word_id, language_code, text, position)
VALUES ($1, $2, $3, $4)
ON CONFLICT DO NOTHING`

// SetDefinitions replaces the word's definitions and their examples. Must be
// called inside a transaction together with the word update.
func (r *Repo) SetDefinitions(ctx context.Context, wordID uuid.UUID, defs []domain.Definition) error {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	if _, err := querier.Exec(ctx, deleteDefinitionsSQL, wordID); err != nil {
		return postgres.MapError(err, "definition", wordID)
	}

	for i, def := range defs {
		var defID uuid.UUID
		err := querier.QueryRow(ctx, insertDefinitionSQL, wordID, def.Text, def.UsageLabel, i).Scan(&defID)
		if err != nil {
			return postgres.MapError(err, "definition", wordID)
		}
		for j, ex := range def.Examples {
			if _, err := querier.Exec(ctx, insertExampleSQL, defID, ex.Sentence, ex.Translation, j); err != nil {
				return postgres.MapError(err, "example", defID)
			}
		}
	}
	return nil
}

// SetSynonyms replaces the word's synonyms.
func (r *Repo) SetSynonyms(ctx context.Context, wordID uuid.UUID, synonyms []string) error {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	if _, err := querier.Exec(ctx, deleteSynonymsSQL, wordID); err != nil {
		return postgres.MapError(err, "synonym", wordID)
	}
	for _, s := range synonyms {
		if _, err := querier.Exec(ctx, insertSynonymSQL, wordID, s); err != nil {
			return postgres.MapError(err, "synonym", wordID)
		}
	}
	return nil
}

// SetTranslations replaces the word's translations.
func (r *Repo) SetTranslations(ctx context.Context, wordID uuid.UUID, translations []domain.Translation) error {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	if _, err := querier.Exec(ctx, deleteTranslationsSQL, wordID); err != nil {
		return postgres.MapError(err, "translation", wordID)
	}
	for i, t := range translations {
		if _, err := querier.Exec(ctx, insertTranslationSQL, wordID, t.LanguageCode, t.Text, i); err != nil {
			return postgres.MapError(err, "translation", wordID)
		}
	}
	return nil
}

const loadDefinitionsSQL = `
SELECT d.id, d.word_id, d.text, d.usage_label, d.position,
       e.id, e.sentence, e.translation, e.position
FROM definitions d
LEFT JOIN examples e ON e.definition_id = d.id
WHERE d.word_id = $1
ORDER BY d.position, e.position`

const loadSynonymsSQL = `
SELECT id, word_id, text FROM synonyms WHERE word_id = $1 ORDER BY text`

const loadTranslationsSQL = `
SELECT id, word_id, language_code, text
FROM translations
WHERE word_id = $1
ORDER BY position`

func (r *Repo) loadDetails(ctx context.Context, querier postgres.Querier, w *domain.Word) error {
	rows, err := querier.Query(ctx, loadDefinitionsSQL, w.ID)
	if err != nil {
		return err
	}
	defer rows.Close()

	var defs []domain.Definition
	index := make(map[uuid.UUID]int)
	for rows.Next() {
		var d domain.Definition
		var exID *uuid.UUID
		var exSentence, exTranslation *string
		var exPosition *int
		err := rows.Scan(&d.ID, &d.WordID, &d.Text, &d.UsageLabel, &d.Position,
			&exID, &exSentence, &exTranslation, &exPosition)
		if err != nil {
			return err
		}

		pos, seen := index[d.ID]
		if !seen {
			pos = len(defs)
			index[d.ID] = pos
			defs = append(defs, d)
		}
		if exID != nil {
			defs[pos].Examples = append(defs[pos].Examples, domain.Example{
				ID:           *exID,
				DefinitionID: d.ID,
				Sentence:     *exSentence,
				Translation:  exTranslation,
				Position:     *exPosition,
			})
		}
	}
	if err := rows.Err(); err != nil {
		return err
	}
	w.Definitions = defs

	synRows, err := querier.Query(ctx, loadSynonymsSQL, w.ID)
	if err != nil {
		return err
	}
	defer synRows.Close()
	for synRows.Next() {
		var s domain.Synonym
		if err := synRows.Scan(&s.ID, &s.WordID, &s.Text); err != nil {
			return err
		}
		w.Synonyms = append(w.Synonyms, s)
	}
	if err := synRows.Err(); err != nil {
		return err
	}

	trRows, err := querier.Query(ctx, loadTranslationsSQL, w.ID)
	if err != nil {
		return err
	}
	defer trRows.Close()
	for trRows.Next() {
		var t domain.Translation
		if err := trRows.Scan(&t.ID, &t.WordID, &t.LanguageCode, &t.Text); err != nil {
			return err
		}
		w.Translations = append(w.Translations, t)
	}
	return trRows.Err()
}

// ---------------------------------------------------------------------------
// Scanning helpers
// ---------------------------------------------------------------------------

func scanWord(row pgx.Row) (*domain.Word, error) {
	var w domain.Word
	var pos *string
	var difficulty, source string
	err := row.Scan(
		&w.ID, &w.Text, &w.TextNormalized, &w.LanguageCode, &pos, &difficulty,
		&w.Phonetic, &w.AudioURL, &w.ImageURL, &source,
		&w.CreatedAt, &w.UpdatedAt, &w.DeletedAt,
	)
	if err != nil {
		return nil, err
	}
	if pos != nil {
		p := domain.PartOfSpeech(*pos)
		w.PartOfSpeech = &p
	}
	w.Difficulty = domain.DifficultyLevel(difficulty)
	w.Source = domain.WordSource(source)
	return &w, nil
}

func scanWords(rows pgx.Rows) ([]domain.Word, error) {
	var words []domain.Word
	for rows.Next() {
		w, err := scanWord(rows)
		if err != nil {
			return nil, err
		}
		words = append(words, *w)
	}
	return words, rows.Err()
}

func posParam(p *domain.PartOfSpeech) *string {
	if p == nil {
		return nil
	}
	s := p.String()
	return &s
}
