package config

import (
	"fmt"
	"strings"
	"time"
)

// Validate performs business-rule validation on the loaded configuration.
// It must be called after loading; Load calls it automatically.
func (c *Config) Validate() error {
	if len(c.Auth.JWTSecret) < 32 {
		return fmt.Errorf("auth.jwt_secret must be at least 32 characters (got %d)", len(c.Auth.JWTSecret))
	}

	if c.Auth.PasswordHashCost < 4 || c.Auth.PasswordHashCost > 31 {
		return fmt.Errorf("auth.password_hash_cost must be within [4, 31] (got %d)", c.Auth.PasswordHashCost)
	}

	if err := c.Practice.validate(); err != nil {
		return fmt.Errorf("practice: %w", err)
	}

	if c.Enrich.ChunkSize <= 0 {
		return fmt.Errorf("enrich.chunk_size must be > 0 (got %d)", c.Enrich.ChunkSize)
	}

	return nil
}

func (p *PracticeConfig) validate() error {
	if p.LearnedMinReviews <= 0 {
		return fmt.Errorf("learned_min_reviews must be > 0 (got %d)", p.LearnedMinReviews)
	}
	if p.LearnedMinAccuracy <= 0 || p.LearnedMinAccuracy > 1 {
		return fmt.Errorf("learned_min_accuracy must be within (0, 1] (got %v)", p.LearnedMinAccuracy)
	}
	if p.MasteredMinStreak <= 0 {
		return fmt.Errorf("mastered_min_streak must be > 0 (got %d)", p.MasteredMinStreak)
	}
	if p.SessionSizeMax <= 0 {
		return fmt.Errorf("session_size_max must be > 0 (got %d)", p.SessionSizeMax)
	}

	ladder, err := ParseIntervalLadder(p.IntervalLadderRaw)
	if err != nil {
		return fmt.Errorf("interval_ladder: %w", err)
	}
	if len(ladder) == 0 {
		return fmt.Errorf("interval_ladder must contain at least one step")
	}
	p.IntervalLadder = ladder

	return nil
}

// ParseIntervalLadder parses a comma-separated string of durations
// (e.g. "1d,2d,4d,168h") into a slice of time.Duration. The "d" suffix is
// accepted as a shorthand for 24h. An empty string returns a nil slice.
func ParseIntervalLadder(raw string) ([]time.Duration, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil, nil
	}

	parts := strings.Split(raw, ",")
	steps := make([]time.Duration, 0, len(parts))

	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p == "" {
			continue
		}
		if strings.HasSuffix(p, "d") {
			var days int
			if _, err := fmt.Sscanf(p, "%dd", &days); err != nil || days <= 0 {
				return nil, fmt.Errorf("invalid day duration %q", p)
			}
			steps = append(steps, time.Duration(days)*24*time.Hour)
			continue
		}
		d, err := time.ParseDuration(p)
		if err != nil {
			return nil, fmt.Errorf("invalid duration %q: %w", p, err)
		}
		steps = append(steps, d)
	}

	return steps, nil
}
