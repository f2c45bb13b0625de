package domain

import (
	"time"

	"github.com/google/uuid"
)

// User represents an authenticated application user.
type User struct {
	ID           uuid.UUID
	Email        string
	Username     string
	Name         string
	Role         UserRole
	BaseLanguage string // language the user already speaks
	TargetLang   string // language the user is learning
	AvatarURL    *string
	CreatedAt    time.Time
	UpdatedAt    time.Time
	DeletedAt    *time.Time
}

// IsDeleted returns true if the user account has been deactivated.
func (u *User) IsDeleted() bool {
	return u.DeletedAt != nil
}

// UserSettings holds per-user practice preferences.
type UserSettings struct {
	UserID          uuid.UUID
	DailyGoal       int // reviews per day the user aims for
	WordsPerSession int
	NewWordsPerDay  int
	Timezone        string
	UpdatedAt       time.Time
}

// DefaultUserSettings returns UserSettings with sensible defaults.
func DefaultUserSettings(userID uuid.UUID) UserSettings {
	return UserSettings{
		UserID:          userID,
		DailyGoal:       20,
		WordsPerSession: 10,
		NewWordsPerDay:  5,
		Timezone:        "UTC",
	}
}

// RefreshToken represents a hashed refresh token stored in the database.
type RefreshToken struct {
	ID        uuid.UUID
	UserID    uuid.UUID
	TokenHash string
	ExpiresAt time.Time
	CreatedAt time.Time
	RevokedAt *time.Time
}

// IsRevoked returns true if the token has been revoked.
func (t *RefreshToken) IsRevoked() bool {
	return t.RevokedAt != nil
}

// IsExpired returns true if the token has expired relative to now.
func (t *RefreshToken) IsExpired(now time.Time) bool {
	return t.ExpiresAt.Before(now)
}
