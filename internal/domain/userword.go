package domain

import (
	"time"

	"github.com/google/uuid"
)

// UserWord is the per-user join record against a shared dictionary word.
// It carries the user's customizations and learning progress.
// Identified by the composite key (UserID, WordID).
type UserWord struct {
	UserID           uuid.UUID
	WordID           uuid.UUID
	CustomDefinition *string
	CustomDifficulty *DifficultyLevel

	Status         LearningStatus
	ReviewCount    int
	CorrectCount   int
	CorrectStreak  int
	Progress       int // 0..100
	LastReviewedAt *time.Time
	NextReviewAt   *time.Time

	AddedAt   time.Time
	UpdatedAt time.Time
	DeletedAt *time.Time

	// Word is populated on detail reads.
	Word *Word
}

// IsDeleted returns true if the user removed the word from their dictionary.
func (uw *UserWord) IsDeleted() bool {
	return uw.DeletedAt != nil
}

// Accuracy returns the fraction of correct answers, 0 when never reviewed.
func (uw *UserWord) Accuracy() float64 {
	if uw.ReviewCount == 0 {
		return 0
	}
	return float64(uw.CorrectCount) / float64(uw.ReviewCount)
}

// ReviewLog is one answered practice question.
type ReviewLog struct {
	ID         uuid.UUID
	UserID     uuid.UUID
	WordID     uuid.UUID
	Correct    bool
	AnsweredAt time.Time
}

// StatusCounts holds the count of user words per learning status.
type StatusCounts struct {
	New        int
	InProgress int
	Learned    int
	Mastered   int
	Total      int
}

// DayReviewCount holds the review count for a specific date.
type DayReviewCount struct {
	Date  time.Time
	Count int
}

// Dashboard holds aggregated practice statistics for a user.
type Dashboard struct {
	DueCount      int
	NewCount      int
	ReviewedToday int
	DayStreak     int
	StatusCounts  StatusCounts
}
