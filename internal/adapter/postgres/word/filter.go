package word

import (
	"context"
	"fmt"

	sq "github.com/Masterminds/squirrel"

	postgres "github.com/lexibase/lexibase-backend/internal/adapter/postgres"
	"github.com/lexibase/lexibase-backend/internal/domain"
)

var psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

// sortColumns maps allowed sort keys to real columns. Anything else falls
// back to created_at.
var sortColumns = map[string]string{
	"text":       "text_normalized",
	"created_at": "created_at",
	"updated_at": "updated_at",
}

// List returns words matching the filter plus the total match count.
// Search uses trigram similarity against text_normalized so partial and
// slightly misspelled queries still hit.
func (r *Repo) List(ctx context.Context, filter domain.WordFilter) ([]domain.Word, int, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	base := psql.Select().From("words").Where(sq.Eq{"deleted_at": nil})

	if filter.Search != nil && *filter.Search != "" {
		normalized := domain.NormalizeText(*filter.Search)
		base = base.Where(sq.Or{
			sq.Like{"text_normalized": normalized + "%"},
			sq.Expr("text_normalized % ?", normalized),
		})
	}
	if filter.LanguageCode != nil {
		base = base.Where(sq.Eq{"language_code": *filter.LanguageCode})
	}
	if filter.PartOfSpeech != nil {
		base = base.Where(sq.Eq{"part_of_speech": filter.PartOfSpeech.String()})
	}
	if filter.Difficulty != nil {
		base = base.Where(sq.Eq{"difficulty": filter.Difficulty.String()})
	}
	if filter.Source != nil {
		base = base.Where(sq.Eq{"source": filter.Source.String()})
	}

	countSQL, countArgs, err := base.Columns("count(*)").ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("build count query: %w", err)
	}

	var total int
	if err := querier.QueryRow(ctx, countSQL, countArgs...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("count words: %w", err)
	}
	if total == 0 {
		return nil, 0, nil
	}

	column, ok := sortColumns[filter.SortBy]
	if !ok {
		column = "created_at"
	}
	order := column + " DESC"
	if filter.SortOrder == "ASC" {
		order = column + " ASC"
	}

	query := base.Columns(wordColumns).OrderBy(order)
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
		return nil, 0, fmt.Errorf("list words: %w", err)
	}
	defer rows.Close()

	words, err := scanWords(rows)
	if err != nil {
		return nil, 0, fmt.Errorf("list words: %w", err)
	}
	return words, total, nil
}
