// Package userword implements the per-user dictionary repository using
// PostgreSQL. Rows are keyed by (user_id, word_id).
package userword

import (
	"context"
	"errors"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	postgres "github.com/lexibase/lexibase-backend/internal/adapter/postgres"
	"github.com/lexibase/lexibase-backend/internal/domain"
)

// Repo provides user-word persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new user-word repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

var psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

const userWordColumns = `uw.user_id, uw.word_id, uw.custom_definition, uw.custom_difficulty,
       uw.status, uw.review_count, uw.correct_count, uw.correct_streak, uw.progress,
       uw.last_reviewed_at, uw.next_review_at, uw.added_at, uw.updated_at, uw.deleted_at`

const addUserWordSQL = `
INSERT INTO user_words (user_id, word_id, custom_definition, custom_difficulty)
VALUES ($1, $2, $3, $4)
ON CONFLICT (user_id, word_id) DO UPDATE
SET deleted_at = NULL, updated_at = now()
WHERE user_words.deleted_at IS NOT NULL
RETURNING user_id, word_id, custom_definition, custom_difficulty,
       status, review_count, correct_count, correct_streak, progress,
       last_reviewed_at, next_review_at, added_at, updated_at, deleted_at`

const getUserWordSQL = `
SELECT ` + userWordColumns + `
FROM user_words uw
WHERE uw.user_id = $1 AND uw.word_id = $2 AND uw.deleted_at IS NULL`

const customizeSQL = `
UPDATE user_words
SET custom_definition = $3, custom_difficulty = $4, updated_at = now()
WHERE user_id = $1 AND word_id = $2 AND deleted_at IS NULL
RETURNING user_id, word_id, custom_definition, custom_difficulty,
       status, review_count, correct_count, correct_streak, progress,
       last_reviewed_at, next_review_at, added_at, updated_at, deleted_at`

const removeUserWordSQL = `
UPDATE user_words SET deleted_at = now(), updated_at = now()
WHERE user_id = $1 AND word_id = $2 AND deleted_at IS NULL`

const restoreUserWordSQL = `
UPDATE user_words SET deleted_at = NULL, updated_at = now()
WHERE user_id = $1 AND word_id = $2 AND deleted_at IS NOT NULL
RETURNING user_id, word_id, custom_definition, custom_difficulty,
       status, review_count, correct_count, correct_streak, progress,
       last_reviewed_at, next_review_at, added_at, updated_at, deleted_at`

const updateProgressSQL = `
UPDATE user_words
SET status = $3, review_count = $4, correct_count = $5, correct_streak = $6,
    progress = $7, last_reviewed_at = $8, next_review_at = $9, updated_at = now()
WHERE user_id = $1 AND word_id = $2 AND deleted_at IS NULL
RETURNING user_id, word_id, custom_definition, custom_difficulty,
       status, review_count, correct_count, correct_streak, progress,
       last_reviewed_at, next_review_at, added_at, updated_at, deleted_at`

const countActiveSQL = `
SELECT count(*) FROM user_words WHERE user_id = $1 AND deleted_at IS NULL`

const dueWordsSQL = `
SELECT ` + userWordColumns + `
FROM user_words uw
WHERE uw.user_id = $1 AND uw.deleted_at IS NULL
  AND uw.status <> 'MASTERED'
  AND uw.next_review_at IS NOT NULL AND uw.next_review_at <= $2
ORDER BY uw.next_review_at
LIMIT $3`

const newWordsSQL = `
SELECT ` + userWordColumns + `
FROM user_words uw
WHERE uw.user_id = $1 AND uw.deleted_at IS NULL AND uw.status = 'NEW'
ORDER BY uw.added_at
LIMIT $2`

const statusCountsSQL = `
SELECT status, count(*)
FROM user_words
WHERE user_id = $1 AND deleted_at IS NULL
GROUP BY status`

const countDueSQL = `
SELECT count(*)
FROM user_words
WHERE user_id = $1 AND deleted_at IS NULL
  AND status <> 'MASTERED'
  AND next_review_at IS NOT NULL AND next_review_at <= $2`

// Add inserts a word into the user's dictionary. Re-adding a previously
// removed word revives the old row; re-adding an active word maps to
// domain.ErrAlreadyExists via the no-op upsert returning zero rows.
func (r *Repo) Add(ctx context.Context, uw *domain.UserWord) (*domain.UserWord, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	row := querier.QueryRow(ctx, addUserWordSQL,
		uw.UserID, uw.WordID, uw.CustomDefinition, difficultyParam(uw.CustomDifficulty))

	created, err := scanUserWord(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("user word %s/%s: %w", uw.UserID, uw.WordID, domain.ErrAlreadyExists)
		}
		return nil, postgres.MapError(err, "user_word", uw.WordID)
	}
	return created, nil
}

// Get returns one active user word without the dictionary word attached.
func (r *Repo) Get(ctx context.Context, userID, wordID uuid.UUID) (*domain.UserWord, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	uw, err := scanUserWord(querier.QueryRow(ctx, getUserWordSQL, userID, wordID))
	if err != nil {
		return nil, postgres.MapError(err, "user_word", wordID)
	}
	return uw, nil
}

// Customize sets the user's own definition and difficulty for a word.
func (r *Repo) Customize(ctx context.Context, userID, wordID uuid.UUID, definition *string, difficulty *domain.DifficultyLevel) (*domain.UserWord, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	row := querier.QueryRow(ctx, customizeSQL, userID, wordID, definition, difficultyParam(difficulty))
	uw, err := scanUserWord(row)
	if err != nil {
		return nil, postgres.MapError(err, "user_word", wordID)
	}
	return uw, nil
}

// Remove soft-deletes the word from the user's dictionary. Learning progress
// survives for a later restore.
func (r *Repo) Remove(ctx context.Context, userID, wordID uuid.UUID) error {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	tag, err := querier.Exec(ctx, removeUserWordSQL, userID, wordID)
	if err != nil {
		return postgres.MapError(err, "user_word", wordID)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("user word %s: %w", wordID, domain.ErrNotFound)
	}
	return nil
}

// Restore revives a removed user word with its old progress.
func (r *Repo) Restore(ctx context.Context, userID, wordID uuid.UUID) (*domain.UserWord, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	uw, err := scanUserWord(querier.QueryRow(ctx, restoreUserWordSQL, userID, wordID))
	if err != nil {
		return nil, postgres.MapError(err, "user_word", wordID)
	}
	return uw, nil
}

// UpdateProgress persists recalculated learning-progress fields after a
// practice answer.
func (r *Repo) UpdateProgress(ctx context.Context, uw *domain.UserWord) (*domain.UserWord, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	row := querier.QueryRow(ctx, updateProgressSQL,
		uw.UserID, uw.WordID, uw.Status.String(),
		uw.ReviewCount, uw.CorrectCount, uw.CorrectStreak, uw.Progress,
		uw.LastReviewedAt, uw.NextReviewAt,
	)

	updated, err := scanUserWord(row)
	if err != nil {
		return nil, postgres.MapError(err, "user_word", uw.WordID)
	}
	return updated, nil
}

// CountActive returns the number of words in the user's dictionary.
func (r *Repo) CountActive(ctx context.Context, userID uuid.UUID) (int, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	var count int
	if err := querier.QueryRow(ctx, countActiveSQL, userID).Scan(&count); err != nil {
		return 0, fmt.Errorf("count user words: %w", err)
	}
	return count, nil
}

// ListDue returns user words whose next review is at or before now, most
// overdue first.
func (r *Repo) ListDue(ctx context.Context, userID uuid.UUID, now time.Time, limit int) ([]domain.UserWord, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	rows, err := querier.Query(ctx, dueWordsSQL, userID, now, limit)
	if err != nil {
		return nil, fmt.Errorf("list due words: %w", err)
	}
	defer rows.Close()

	return scanUserWords(rows)
}

// ListNew returns user words that have never been reviewed, oldest first.
func (r *Repo) ListNew(ctx context.Context, userID uuid.UUID, limit int) ([]domain.UserWord, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	rows, err := querier.Query(ctx, newWordsSQL, userID, limit)
	if err != nil {
		return nil, fmt.Errorf("list new words: %w", err)
	}
	defer rows.Close()

	return scanUserWords(rows)
}

// CountDue returns the number of words due for review at the given time.
func (r *Repo) CountDue(ctx context.Context, userID uuid.UUID, now time.Time) (int, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	var count int
	if err := querier.QueryRow(ctx, countDueSQL, userID, now).Scan(&count); err != nil {
		return 0, fmt.Errorf("count due words: %w", err)
	}
	return count, nil
}

// StatusCounts returns how many user words sit in each learning status.
func (r *Repo) StatusCounts(ctx context.Context, userID uuid.UUID) (domain.StatusCounts, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	rows, err := querier.Query(ctx, statusCountsSQL, userID)
	if err != nil {
		return domain.StatusCounts{}, fmt.Errorf("status counts: %w", err)
	}
	defer rows.Close()

	var counts domain.StatusCounts
	for rows.Next() {
		var status string
		var n int
		if err := rows.Scan(&status, &n); err != nil {
			return domain.StatusCounts{}, fmt.Errorf("status counts: %w", err)
		}
		switch domain.LearningStatus(status) {
		case domain.LearningStatusNew:
			counts.New = n
		case domain.LearningStatusInProgress:
			counts.InProgress = n
		case domain.LearningStatusLearned:
			counts.Learned = n
		case domain.LearningStatusMastered:
			counts.Mastered = n
		}
		counts.Total += n
	}
	return counts, rows.Err()
}

// List returns the user's words matching the filter together with the
// attached dictionary words, plus the total match count.
func (r *Repo) List(ctx context.Context, userID uuid.UUID, filter domain.UserWordFilter) ([]domain.UserWord, int, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	base := psql.Select().
		From("user_words uw").
		Join("words w ON w.id = uw.word_id").
		Where(sq.Eq{"uw.user_id": userID, "uw.deleted_at": nil}).
		Where(sq.Eq{"w.deleted_at": nil})

	if filter.Search != nil && *filter.Search != "" {
		normalized := domain.NormalizeText(*filter.Search)
		base = base.Where(sq.Like{"w.text_normalized": normalized + "%"})
	}
	if filter.Status != nil {
		base = base.Where(sq.Eq{"uw.status": filter.Status.String()})
	}
	if filter.ListID != nil {
		base = base.Where(sq.Expr(
			"EXISTS (SELECT 1 FROM list_words lw WHERE lw.list_id = ? AND lw.word_id = uw.word_id)",
			*filter.ListID))
	}

	countSQL, countArgs, err := base.Columns("count(*)").ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("build count query: %w", err)
	}

	var total int
	if err := querier.QueryRow(ctx, countSQL, countArgs...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("count user words: %w", err)
	}
	if total == 0 {
		return nil, 0, nil
	}

	query := base.Columns(userWordColumns,
		`w.id, w.text, w.text_normalized, w.language_code, w.part_of_speech, w.difficulty,
		 w.phonetic, w.audio_url, w.image_url, w.source, w.created_at, w.updated_at, w.deleted_at`).
		OrderBy("uw.added_at DESC")
	if filter.Limit > 0 {
		query = query.Limit(uint64(filter.Limit))
	}
	if filter.Offset > 0 {
		query = query.Offset(uint64(filter.Offset))
	}

	listSQL, listArgs, err := query.ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("build list query: %w", err)
	}

	rows, err := querier.Query(ctx, listSQL, listArgs...)
	if err != nil {
		return nil, 0, fmt.Errorf("list user words: %w", err)
	}
	defer rows.Close()

	var result []domain.UserWord
	for rows.Next() {
		uw, w, err := scanUserWordWithWord(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("list user words: %w", err)
		}
		uw.Word = w
		result = append(result, *uw)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("list user words: %w", err)
	}
	return result, total, nil
}

// ---------------------------------------------------------------------------
// Scanning helpers
// ---------------------------------------------------------------------------

func scanUserWord(row pgx.Row) (*domain.UserWord, error) {
	var uw domain.UserWord
	var customDifficulty *string
	var status string
	err := row.Scan(
		&uw.UserID, &uw.WordID, &uw.CustomDefinition, &customDifficulty,
		&status, &uw.ReviewCount, &uw.CorrectCount, &uw.CorrectStreak, &uw.Progress,
		&uw.LastReviewedAt, &uw.NextReviewAt, &uw.AddedAt, &uw.UpdatedAt, &uw.DeletedAt,
	)
	if err != nil {
		return nil, err
	}
	uw.Status = domain.LearningStatus(status)
	if customDifficulty != nil {
		d := domain.DifficultyLevel(*customDifficulty)
		uw.CustomDifficulty = &d
	}
	return &uw, nil
}

func scanUserWords(rows pgx.Rows) ([]domain.UserWord, error) {
	var result []domain.UserWord
	for rows.Next() {
		uw, err := scanUserWord(rows)
		if err != nil {
			return nil, err
		}
		result = append(result, *uw)
	}
	return result, rows.Err()
}

func scanUserWordWithWord(row pgx.Row) (*domain.UserWord, *domain.Word, error) {
	var uw domain.UserWord
	var customDifficulty *string
	var status string
	var w domain.Word
	var pos *string
	var wordDifficulty, source string
	err := row.Scan(
		&uw.UserID, &uw.WordID, &uw.CustomDefinition, &customDifficulty,
		&status, &uw.ReviewCount, &uw.CorrectCount, &uw.CorrectStreak, &uw.Progress,
		&uw.LastReviewedAt, &uw.NextReviewAt, &uw.AddedAt, &uw.UpdatedAt, &uw.DeletedAt,
		&w.ID, &w.Text, &w.TextNormalized, &w.LanguageCode, &pos, &wordDifficulty,
		&w.Phonetic, &w.AudioURL, &w.ImageURL, &source,
		&w.CreatedAt, &w.UpdatedAt, &w.DeletedAt,
	)
	if err != nil {
		return nil, nil, err
	}
	uw.Status = domain.LearningStatus(status)
	if customDifficulty != nil {
		d := domain.DifficultyLevel(*customDifficulty)
		uw.CustomDifficulty = &d
	}
	if pos != nil {
		p := domain.PartOfSpeech(*pos)
		w.PartOfSpeech = &p
	}
	w.Difficulty = domain.DifficultyLevel(wordDifficulty)
	w.Source = domain.WordSource(source)
	return &uw, &w, nil
}

func difficultyParam(d *domain.DifficultyLevel) *string {
	if d == nil {
		return nil
	}
	s := d.String()
	return &s
}
