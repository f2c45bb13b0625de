package practice

import (
	"testing"
	"time"

	"github.com/lexibase/lexibase-backend/internal/config"
	"github.com/lexibase/lexibase-backend/internal/domain"
)

func testCfg() config.PracticeConfig {
	return config.PracticeConfig{
		LearnedMinReviews:  3,
		LearnedMinAccuracy: 0.8,
		MasteredMinStreak:  7,
		MasteredMinReviews: 10,
		SessionSizeMax:     50,
		IntervalLadder: []time.Duration{
			24 * time.Hour,
			48 * time.Hour,
			96 * time.Hour,
			7 * 24 * time.Hour,
			14 * 24 * time.Hour,
			30 * 24 * time.Hour,
		},
	}
}

func TestApplyAnswer_FirstCorrect(t *testing.T) {
	t.Parallel()

	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	uw := &domain.UserWord{Status: domain.LearningStatusNew}

	applyAnswer(uw, true, now, testCfg())

	if uw.ReviewCount != 1 || uw.CorrectCount != 1 || uw.CorrectStreak != 1 {
		t.Errorf("counters: got=(%d,%d,%d), want=(1,1,1)", uw.ReviewCount, uw.CorrectCount, uw.CorrectStreak)
	}
	if uw.Status != domain.LearningStatusInProgress {
		t.Errorf("Status: got=%s, want=IN_PROGRESS", uw.Status)
	}
	if uw.LastReviewedAt == nil || !uw.LastReviewedAt.Equal(now) {
		t.Errorf("LastReviewedAt: got=%v, want=%s", uw.LastReviewedAt, now)
	}
	// Streak 1 → first rung, 24h.
	wantNext := now.Add(24 * time.Hour)
	if uw.NextReviewAt == nil || !uw.NextReviewAt.Equal(wantNext) {
		t.Errorf("NextReviewAt: got=%v, want=%s", uw.NextReviewAt, wantNext)
	}
}

func TestApplyAnswer_WrongAnswerResetsStreak(t *testing.T) {
	t.Parallel()

	now := time.Now()
	uw := &domain.UserWord{
		Status:        domain.LearningStatusInProgress,
		ReviewCount:   5,
		CorrectCount:  4,
		CorrectStreak: 4,
	}

	applyAnswer(uw, false, now, testCfg())

	if uw.CorrectStreak != 0 {
		t.Errorf("CorrectStreak: got=%d, want=0", uw.CorrectStreak)
	}
	if uw.ReviewCount != 6 || uw.CorrectCount != 4 {
		t.Errorf("counters: got=(%d,%d), want=(6,4)", uw.ReviewCount, uw.CorrectCount)
	}
	// Wrong answer drops back to the first rung.
	wantNext := now.Add(24 * time.Hour)
	if uw.NextReviewAt == nil || !uw.NextReviewAt.Equal(wantNext) {
		t.Errorf("NextReviewAt: got=%v, want=%s", uw.NextReviewAt, wantNext)
	}
}

func TestApplyAnswer_ReachesLearned(t *testing.T) {
	t.Parallel()

	// Two correct reviews done, the third pushes past both thresholds:
	// 3 reviews, 3/3 accuracy >= 0.8.
	uw := &domain.UserWord{
		Status:        domain.LearningStatusInProgress,
		ReviewCount:   2,
		CorrectCount:  2,
		CorrectStreak: 2,
	}

	applyAnswer(uw, true, time.Now(), testCfg())

	if uw.Status != domain.LearningStatusLearned {
		t.Errorf("Status: got=%s, want=LEARNED", uw.Status)
	}
}

func TestApplyAnswer_AccuracyTooLowStaysInProgress(t *testing.T) {
	t.Parallel()

	// 4 reviews with only 2 correct: accuracy 0.5 < 0.8.
	uw := &domain.UserWord{
		Status:       domain.LearningStatusInProgress,
		ReviewCount:  3,
		CorrectCount: 1,
	}

	applyAnswer(uw, true, time.Now(), testCfg())

	if uw.Status != domain.LearningStatusInProgress {
		t.Errorf("Status: got=%s, want=IN_PROGRESS", uw.Status)
	}
}

func TestApplyAnswer_ReachesMastered(t *testing.T) {
	t.Parallel()

	// Streak 6 → 7 and reviews 9 → 10 cross both mastered thresholds.
	uw := &domain.UserWord{
		Status:        domain.LearningStatusLearned,
		ReviewCount:   9,
		CorrectCount:  8,
		CorrectStreak: 6,
	}

	applyAnswer(uw, true, time.Now(), testCfg())

	if uw.Status != domain.LearningStatusMastered {
		t.Errorf("Status: got=%s, want=MASTERED", uw.Status)
	}
	if uw.Progress != 100 {
		t.Errorf("Progress: got=%d, want=100", uw.Progress)
	}
}

func TestApplyAnswer_StreakAloneIsNotMastered(t *testing.T) {
	t.Parallel()

	// Streak crosses 7 but total reviews stay below 10.
	uw := &domain.UserWord{
		Status:        domain.LearningStatusLearned,
		ReviewCount:   6,
		CorrectCount:  6,
		CorrectStreak: 6,
	}

	applyAnswer(uw, true, time.Now(), testCfg())

	if uw.Status == domain.LearningStatusMastered {
		t.Error("7-streak with only 7 reviews should not be MASTERED")
	}
}

func TestNextInterval_ClimbsAndSaturates(t *testing.T) {
	t.Parallel()

	ladder := testCfg().IntervalLadder

	tests := []struct {
		streak int
		want   time.Duration
	}{
		{0, 24 * time.Hour},
		{1, 24 * time.Hour},
		{2, 48 * time.Hour},
		{3, 96 * time.Hour},
		{6, 30 * 24 * time.Hour},
		{50, 30 * 24 * time.Hour}, // saturates at the top rung
	}

	for _, tt := range tests {
		if got := nextInterval(tt.streak, ladder); got != tt.want {
			t.Errorf("nextInterval(%d) = %s, want %s", tt.streak, got, tt.want)
		}
	}
}

func TestNextInterval_EmptyLadder(t *testing.T) {
	t.Parallel()

	if got := nextInterval(3, nil); got != 24*time.Hour {
		t.Errorf("nextInterval with empty ladder = %s, want 24h", got)
	}
}

func TestProgressScore(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		uw   domain.UserWord
		want int
	}{
		{
			name: "never reviewed",
			uw:   domain.UserWord{},
			want: 0,
		},
		{
			name: "perfect accuracy short streak",
			uw:   domain.UserWord{ReviewCount: 2, CorrectCount: 2, CorrectStreak: 2},
			want: 90, // 70 accuracy + 20 streak
		},
		{
			name: "streak bonus capped",
			uw:   domain.UserWord{ReviewCount: 6, CorrectCount: 6, CorrectStreak: 6},
			want: 99, // 70 + 30, clamped below 100 for non-mastered
		},
		{
			name: "mastered is always 100",
			uw:   domain.UserWord{Status: domain.LearningStatusMastered, ReviewCount: 10, CorrectCount: 8},
			want: 100,
		},
		{
			name: "half accuracy no streak",
			uw:   domain.UserWord{ReviewCount: 4, CorrectCount: 2},
			want: 35,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := progressScore(&tt.uw); got != tt.want {
				t.Errorf("progressScore = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestDayStreak(t *testing.T) {
	t.Parallel()

	today := time.Date(2025, 6, 10, 0, 0, 0, 0, time.UTC)
	day := func(offset int) domain.DayReviewCount {
		return domain.DayReviewCount{Date: today.AddDate(0, 0, offset), Count: 1}
	}

	tests := []struct {
		name string
		days []domain.DayReviewCount
		want int
	}{
		{
			name: "no reviews",
			days: nil,
			want: 0,
		},
		{
			name: "three days ending today",
			days: []domain.DayReviewCount{day(0), day(-1), day(-2)},
			want: 3,
		},
		{
			name: "streak ending yesterday still counts",
			days: []domain.DayReviewCount{day(-1), day(-2)},
			want: 2,
		},
		{
			name: "gap breaks the streak",
			days: []domain.DayReviewCount{day(0), day(-1), day(-3), day(-4)},
			want: 2,
		},
		{
			name: "last review long ago",
			days: []domain.DayReviewCount{day(-5), day(-6)},
			want: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := dayStreak(tt.days, today); got != tt.want {
				t.Errorf("dayStreak = %d, want %d", got, tt.want)
			}
		})
	}
}
