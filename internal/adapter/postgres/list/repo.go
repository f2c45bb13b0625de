// Package list implements the word-list repository using PostgreSQL.
// It covers the shared list catalog, list membership and per-user list
// copies (user_lists, keyed by user_id+list_id).
package list

import (
	"context"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	postgres "github.com/lexibase/lexibase-backend/internal/adapter/postgres"
	"github.com/lexibase/lexibase-backend/internal/domain"
)

// Repo provides list persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new list repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

var psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

const listColumns = `l.id, l.owner_id, l.name, l.description, l.difficulty, l.is_public,
       l.cover_url, l.created_at, l.updated_at, l.deleted_at,
       (SELECT count(*) FROM list_words lw WHERE lw.list_id = l.id)`

const createListSQL = `
INSERT INTO lists (id, owner_id, name, description, difficulty, is_public, cover_url)
VALUES ($1, $2, $3, $4, $5, $6, $7)`

const getListSQL = `
SELECT ` + listColumns + `
FROM lists l
WHERE l.id = $1 AND l.deleted_at IS NULL`

const updateListSQL = `
UPDATE lists
SET name = $2, description = $3, difficulty = $4, is_public = $5,
    cover_url = COALESCE($6, cover_url), updated_at = now()
WHERE id = $1 AND deleted_at IS NULL`

const softDeleteListSQL = `
UPDATE lists SET deleted_at = now(), updated_at = now()
WHERE id = $1 AND deleted_at IS NULL`

const addWordToListSQL = `
INSERT INTO list_words (list_id, word_id) VALUES ($1, $2)
ON CONFLICT DO NOTHING`

const removeWordFromListSQL = `
DELETE FROM list_words WHERE list_id = $1 AND word_id = $2`

const countListWordsSQL = `
SELECT count(*) FROM list_words WHERE list_id = $1`

const listWordIDsSQL = `
SELECT lw.word_id
FROM list_words lw
JOIN words w ON w.id = lw.word_id
WHERE lw.list_id = $1 AND w.deleted_at IS NULL
ORDER BY lw.added_at`

const listWordsSQL = `
SELECT w.id, w.text, w.text_normalized, w.language_code, w.part_of_speech, w.difficulty,
       w.phonetic, w.audio_url, w.image_url, w.source, w.created_at, w.updated_at, w.deleted_at
FROM list_words lw
JOIN words w ON w.id = lw.word_id
WHERE lw.list_id = $1 AND w.deleted_at IS NULL
ORDER BY lw.added_at`

// Create inserts a new list and returns it with a zero word count.
func (r *Repo) Create(ctx context.Context, l *domain.List) (*domain.List, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	_, err := querier.Exec(ctx, createListSQL,
		l.ID, l.OwnerID, l.Name, l.Description, l.Difficulty.String(), l.IsPublic, l.CoverURL)
	if err != nil {
		return nil, postgres.MapError(err, "list", l.ID)
	}
	return r.GetByID(ctx, l.ID)
}

// GetByID returns a list with its word count but without member words.
func (r *Repo) GetByID(ctx context.Context, id uuid.UUID) (*domain.List, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	l, err := scanList(querier.QueryRow(ctx, getListSQL, id))
	if err != nil {
		return nil, postgres.MapError(err, "list", id)
	}
	return l, nil
}

// GetWithWords returns a list together with its member words.
func (r *Repo) GetWithWords(ctx context.Context, id uuid.UUID) (*domain.List, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	l, err := scanList(querier.QueryRow(ctx, getListSQL, id))
	if err != nil {
		return nil, postgres.MapError(err, "list", id)
	}

	rows, err := querier.Query(ctx, listWordsSQL, id)
	if err != nil {
		return nil, fmt.Errorf("load list %s words: %w", id, err)
	}
	defer rows.Close()

	for rows.Next() {
		w, err := scanListWord(rows)
		if err != nil {
			return nil, fmt.Errorf("load list %s words: %w", id, err)
		}
		l.Words = append(l.Words, *w)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("load list %s words: %w", id, err)
	}
	return l, nil
}

// Update modifies the list's metadata.
func (r *Repo) Update(ctx context.Context, l *domain.List) (*domain.List, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	tag, err := querier.Exec(ctx, updateListSQL,
		l.ID, l.Name, l.Description, l.Difficulty.String(), l.IsPublic, l.CoverURL)
	if err != nil {
		return nil, postgres.MapError(err, "list", l.ID)
	}
	if tag.RowsAffected() == 0 {
		return nil, fmt.Errorf("list %s: %w", l.ID, domain.ErrNotFound)
	}
	return r.GetByID(ctx, l.ID)
}

// SoftDelete marks the list deleted. Member rows stay for a possible restore.
func (r *Repo) SoftDelete(ctx context.Context, id uuid.UUID) error {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	tag, err := querier.Exec(ctx, softDeleteListSQL, id)
	if err != nil {
		return postgres.MapError(err, "list", id)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("list %s: %w", id, domain.ErrNotFound)
	}
	return nil
}

// AddWord adds a word to the list. Adding a word twice is a no-op.
func (r *Repo) AddWord(ctx context.Context, listID, wordID uuid.UUID) error {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	if _, err := querier.Exec(ctx, addWordToListSQL, listID, wordID); err != nil {
		return postgres.MapError(err, "list_word", wordID)
	}
	return nil
}

// RemoveWord removes a word from the list.
func (r *Repo) RemoveWord(ctx context.Context, listID, wordID uuid.UUID) error {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	tag, err := querier.Exec(ctx, removeWordFromListSQL, listID, wordID)
	if err != nil {
		return postgres.MapError(err, "list_word", wordID)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("list word %s: %w", wordID, domain.ErrNotFound)
	}
	return nil
}

// CountWords returns the number of words in the list.
func (r *Repo) CountWords(ctx context.Context, listID uuid.UUID) (int, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	var count int
	if err := querier.QueryRow(ctx, countListWordsSQL, listID).Scan(&count); err != nil {
		return 0, fmt.Errorf("count list words: %w", err)
	}
	return count, nil
}

// WordIDs returns the ids of the list's active member words, oldest first.
func (r *Repo) WordIDs(ctx context.Context, listID uuid.UUID) ([]uuid.UUID, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	rows, err := querier.Query(ctx, listWordIDsSQL, listID)
	if err != nil {
		return nil, fmt.Errorf("list word ids: %w", err)
	}
	defer rows.Close()

	var ids []uuid.UUID
	for rows.Next() {
		var id uuid.UUID
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("scan word id: %w", err)
		}
		ids = append(ids, id)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate word ids: %w", err)
	}
	return ids, nil
}

// Browse returns catalog lists matching the filter plus the total count.
// Only public and official lists are visible here; private lists show up
// through the user's own collection.
func (r *Repo) Browse(ctx context.Context, filter domain.ListFilter) ([]domain.List, int, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	base := psql.Select().From("lists l").
		Where(sq.Eq{"l.deleted_at": nil}).
		Where(sq.Or{sq.Eq{"l.is_public": true}, sq.Eq{"l.owner_id": nil}})

	if filter.Search != nil && *filter.Search != "" {
		base = base.Where(sq.ILike{"l.name": "%" + *filter.Search + "%"})
	}
	if filter.Difficulty != nil {
		base = base.Where(sq.Eq{"l.difficulty": filter.Difficulty.String()})
	}
	if filter.OfficialOnly {
		base = base.Where(sq.Eq{"l.owner_id": nil})
	}

	countSQL, countArgs, err := base.Columns("count(*)").ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("build count query: %w", err)
	}

	var total int
	if err := querier.QueryRow(ctx, countSQL, countArgs...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("count lists: %w", err)
	}
	if total == 0 {
		return nil, 0, nil
	}

	query := base.Columns(listColumns).OrderBy("l.created_at DESC")
	if filter.Limit > 0 {
		query = query.Limit(uint64(filter.Limit))
	}
	if filter.Offset > 0 {
		query = query.Offset(uint64(filter.Offset))
	}

	browseSQL, browseArgs, err := query.ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("build browse query: %w", err)
	}

	rows, err := querier.Query(ctx, browseSQL, browseArgs...)
	if err != nil {
		return nil, 0, fmt.Errorf("browse lists: %w", err)
	}
	defer rows.Close()

	var lists []domain.List
	for rows.Next() {
		l, err := scanList(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("browse lists: %w", err)
		}
		lists = append(lists, *l)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("browse lists: %w", err)
	}
	return lists, total, nil
}

// ---------------------------------------------------------------------------
// UserList operations
// ---------------------------------------------------------------------------

const addUserListSQL = `
INSERT INTO user_lists (user_id, list_id)
VALUES ($1, $2)
ON CONFLICT (user_id, list_id) DO UPDATE
SET deleted_at = NULL, updated_at = now()
WHERE user_lists.deleted_at IS NOT NULL
RETURNING user_id, list_id, custom_name, custom_description, progress, added_at, updated_at, deleted_at`

const getUserListSQL = `
SELECT user_id, list_id, custom_name, custom_description, progress, added_at, updated_at, deleted_at
FROM user_lists
WHERE user_id = $1 AND list_id = $2 AND deleted_at IS NULL`

const renameUserListSQL = `
UPDATE user_lists
SET custom_name = $3, custom_description = $4, updated_at = now()
WHERE user_id = $1 AND list_id = $2 AND deleted_at IS NULL
RETURNING user_id, list_id, custom_name, custom_description, progress, added_at, updated_at, deleted_at`

const updateUserListProgressSQL = `
UPDATE user_lists SET progress = $3, updated_at = now()
WHERE user_id = $1 AND list_id = $2 AND deleted_at IS NULL`

const removeUserListSQL = `
UPDATE user_lists SET deleted_at = now(), updated_at = now()
WHERE user_id = $1 AND list_id = $2 AND deleted_at IS NULL`

const listUserListsSQL = `
SELECT ul.user_id, ul.list_id, ul.custom_name, ul.custom_description, ul.progress,
       ul.added_at, ul.updated_at, ul.deleted_at,
       ` + listColumns + `
FROM user_lists ul
JOIN lists l ON l.id = ul.list_id
WHERE ul.user_id = $1 AND ul.deleted_at IS NULL AND l.deleted_at IS NULL
ORDER BY ul.added_at DESC`

// AddToUser attaches a list to the user's collection. Re-adding a removed
// list revives it; re-adding an active one maps to domain.ErrAlreadyExists.
func (r *Repo) AddToUser(ctx context.Context, userID, listID uuid.UUID) (*domain.UserList, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	ul, err := scanUserList(querier.QueryRow(ctx, addUserListSQL, userID, listID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("user list %s: %w", listID, domain.ErrAlreadyExists)
		}
		return nil, postgres.MapError(err, "user_list", listID)
	}
	return ul, nil
}

// GetUserList returns one active user-list row.
func (r *Repo) GetUserList(ctx context.Context, userID, listID uuid.UUID) (*domain.UserList, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	ul, err := scanUserList(querier.QueryRow(ctx, getUserListSQL, userID, listID))
	if err != nil {
		return nil, postgres.MapError(err, "user_list", listID)
	}
	return ul, nil
}

// RenameUserList sets the user's custom name and description for a list.
func (r *Repo) RenameUserList(ctx context.Context, userID, listID uuid.UUID, name, description *string) (*domain.UserList, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	ul, err := scanUserList(querier.QueryRow(ctx, renameUserListSQL, userID, listID, name, description))
	if err != nil {
		return nil, postgres.MapError(err, "user_list", listID)
	}
	return ul, nil
}

// UpdateUserListProgress stores the recalculated share of learned words.
func (r *Repo) UpdateUserListProgress(ctx context.Context, userID, listID uuid.UUID, progress int) error {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	tag, err := querier.Exec(ctx, updateUserListProgressSQL, userID, listID, progress)
	if err != nil {
		return postgres.MapError(err, "user_list", listID)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("user list %s: %w", listID, domain.ErrNotFound)
	}
	return nil
}

// RemoveFromUser soft-deletes the list from the user's collection.
func (r *Repo) RemoveFromUser(ctx context.Context, userID, listID uuid.UUID) error {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	tag, err := querier.Exec(ctx, removeUserListSQL, userID, listID)
	if err != nil {
		return postgres.MapError(err, "user_list", listID)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("user list %s: %w", listID, domain.ErrNotFound)
	}
	return nil
}

// ListForUser returns the user's lists with the shared list attached.
func (r *Repo) ListForUser(ctx context.Context, userID uuid.UUID) ([]domain.UserList, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	rows, err := querier.Query(ctx, listUserListsSQL, userID)
	if err != nil {
		return nil, fmt.Errorf("list user lists: %w", err)
	}
	defer rows.Close()

	var result []domain.UserList
	for rows.Next() {
		var ul domain.UserList
		var l domain.List
		var difficulty string
		err := rows.Scan(
			&ul.UserID, &ul.ListID, &ul.CustomName, &ul.CustomDescription, &ul.Progress,
			&ul.AddedAt, &ul.UpdatedAt, &ul.DeletedAt,
			&l.ID, &l.OwnerID, &l.Name, &l.Description, &difficulty, &l.IsPublic,
			&l.CoverURL, &l.CreatedAt, &l.UpdatedAt, &l.DeletedAt, &l.WordCount,
		)
		if err != nil {
			return nil, fmt.Errorf("list user lists: %w", err)
		}
		l.Difficulty = domain.DifficultyLevel(difficulty)
		ul.List = &l
		result = append(result, ul)
	}
	return result, rows.Err()
}

// ---------------------------------------------------------------------------
// Scanning helpers
// ---------------------------------------------------------------------------

func scanList(row pgx.Row) (*domain.List, error) {
	var l domain.List
	var difficulty string
	err := row.Scan(
		&l.ID, &l.OwnerID, &l.Name, &l.Description, &difficulty, &l.IsPublic,
		&l.CoverURL, &l.CreatedAt, &l.UpdatedAt, &l.DeletedAt, &l.WordCount,
	)
	if err != nil {
		return nil, err
	}
	l.Difficulty = domain.DifficultyLevel(difficulty)
	return &l, nil
}

func scanListWord(row pgx.Row) (*domain.Word, error) {
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

func scanUserList(row pgx.Row) (*domain.UserList, error) {
	var ul domain.UserList
	err := row.Scan(
		&ul.UserID, &ul.ListID, &ul.CustomName, &ul.CustomDescription, &ul.Progress,
		&ul.AddedAt, &ul.UpdatedAt, &ul.DeletedAt,
	)
	if err != nil {
		return nil, err
	}
	return &ul, nil
}
