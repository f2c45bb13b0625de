package practice

import (
	"time"

	"github.com/lexibase/lexibase-backend/internal/config"
	"github.com/lexibase/lexibase-backend/internal/domain"
)

// applyAnswer folds one answer into the user word's learning state: counters,
// streak, status, progress score and the next review time.
func applyAnswer(uw *domain.UserWord, correct bool, now time.Time, cfg config.PracticeConfig) {
	uw.ReviewCount++
	if correct {
		uw.CorrectCount++
		uw.CorrectStreak++
	} else {
		uw.CorrectStreak = 0
	}

	uw.Status = nextStatus(uw, cfg)
	uw.Progress = progressScore(uw)

	reviewedAt := now
	uw.LastReviewedAt = &reviewedAt

	next := now.Add(nextInterval(uw.CorrectStreak, cfg.IntervalLadder))
	uw.NextReviewAt = &next
}

// nextStatus derives the learning status from the counters. Status only
// moves forward through reviews; a wrong answer resets the streak but never
// demotes below IN_PROGRESS.
func nextStatus(uw *domain.UserWord, cfg config.PracticeConfig) domain.LearningStatus {
	if uw.CorrectStreak >= cfg.MasteredMinStreak && uw.ReviewCount >= cfg.MasteredMinReviews {
		return domain.LearningStatusMastered
	}
	if uw.ReviewCount >= cfg.LearnedMinReviews && uw.Accuracy() >= cfg.LearnedMinAccuracy {
		return domain.LearningStatusLearned
	}
	if uw.ReviewCount > 0 {
		return domain.LearningStatusInProgress
	}
	return domain.LearningStatusNew
}

// progressScore maps the learning state to a 0..100 score: up to 70 points
// for accuracy plus 10 per streak step capped at 30. Mastered words are
// always 100.
func progressScore(uw *domain.UserWord) int {
	if uw.Status == domain.LearningStatusMastered {
		return 100
	}

	score := int(uw.Accuracy() * 70)

	streakBonus := uw.CorrectStreak * 10
	if streakBonus > 30 {
		streakBonus = 30
	}
	score += streakBonus

	if score > 99 {
		score = 99
	}
	return score
}

// nextInterval picks the review interval from the ladder by streak length.
// Streak 0 (wrong answer) and streak 1 both get the first rung; longer
// streaks climb the ladder and saturate at the top.
func nextInterval(streak int, ladder []time.Duration) time.Duration {
	if len(ladder) == 0 {
		return 24 * time.Hour
	}

	idx := streak - 1
	if idx < 0 {
		idx = 0
	}
	if idx >= len(ladder) {
		idx = len(ladder) - 1
	}
	return ladder[idx]
}

// dayStreak counts consecutive practice days ending today or yesterday.
// days must be ordered newest first, as ReviewDays returns them.
func dayStreak(days []domain.DayReviewCount, today time.Time) int {
	if len(days) == 0 {
		return 0
	}

	today = today.Truncate(24 * time.Hour)

	expected := today
	if !days[0].Date.Equal(today) {
		// No reviews yet today: a streak ending yesterday still counts.
		expected = today.AddDate(0, 0, -1)
	}

	streak := 0
	for _, d := range days {
		if !d.Date.Equal(expected) {
			break
		}
		streak++
		expected = expected.AddDate(0, 0, -1)
	}
	return streak
}
