// Package reviewlog implements the practice answer log repository using
// PostgreSQL. The log is append-only and feeds the practice dashboard.
package reviewlog

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	postgres "github.com/lexibase/lexibase-backend/internal/adapter/postgres"
	"github.com/lexibase/lexibase-backend/internal/domain"
)

// Repo provides review-log persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new review-log repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

const createLogSQL = `
INSERT INTO review_logs (user_id, word_id, correct, answered_at)
VALUES ($1, $2, $3, $4)
RETURNING id, user_id, word_id, correct, answered_at`

const countSinceSQL = `
SELECT count(*) FROM review_logs
WHERE user_id = $1 AND answered_at >= $2`

const reviewDaysSQL = `
SELECT date_trunc('day', answered_at AT TIME ZONE $2)::date AS day, count(*)
FROM review_logs
WHERE user_id = $1 AND answered_at >= $3
GROUP BY day
ORDER BY day DESC`

// Create appends one answered question to the log.
func (r *Repo) Create(ctx context.Context, log *domain.ReviewLog) (*domain.ReviewLog, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	answeredAt := log.AnsweredAt
	if answeredAt.IsZero() {
		answeredAt = time.Now()
	}

	var created domain.ReviewLog
	err := querier.QueryRow(ctx, createLogSQL, log.UserID, log.WordID, log.Correct, answeredAt).Scan(
		&created.ID, &created.UserID, &created.WordID, &created.Correct, &created.AnsweredAt,
	)
	if err != nil {
		return nil, postgres.MapError(err, "review_log", log.WordID)
	}
	return &created, nil
}

// CountSince returns how many questions the user answered at or after the
// given time.
func (r *Repo) CountSince(ctx context.Context, userID uuid.UUID, since time.Time) (int, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	var count int
	if err := querier.QueryRow(ctx, countSinceSQL, userID, since).Scan(&count); err != nil {
		return 0, fmt.Errorf("count reviews: %w", err)
	}
	return count, nil
}

// ReviewDays returns per-day review counts in the user's timezone since the
// given time, newest day first. Used for the day-streak calculation.
func (r *Repo) ReviewDays(ctx context.Context, userID uuid.UUID, timezone string, since time.Time) ([]domain.DayReviewCount, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	rows, err := querier.Query(ctx, reviewDaysSQL, userID, timezone, since)
	if err != nil {
		return nil, fmt.Errorf("review days: %w", err)
	}
	defer rows.Close()

	var days []domain.DayReviewCount
	for rows.Next() {
		var d domain.DayReviewCount
		if err := rows.Scan(&d.Date, &d.Count); err != nil {
			return nil, fmt.Errorf("review days: %w", err)
		}
		days = append(days, d)
	}
	return days, rows.Err()
}
