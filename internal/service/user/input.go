package user

import (
	"time"

	"github.com/lexibase/lexibase-backend/internal/domain"
)

// UpdateProfileInput holds optional profile fields; nil fields are unchanged.
type UpdateProfileInput struct {
	Name         *string
	AvatarURL    *string
	BaseLanguage *string
	TargetLang   *string
}

// Validate validates the update profile input.
func (i UpdateProfileInput) Validate() error {
	var errs []domain.FieldError

	if i.Name != nil && (len(*i.Name) == 0 || len(*i.Name) > 100) {
		errs = append(errs, domain.FieldError{Field: "name", Message: "must be between 1 and 100 characters"})
	}
	if i.AvatarURL != nil && len(*i.AvatarURL) > 2048 {
		errs = append(errs, domain.FieldError{Field: "avatar_url", Message: "too long"})
	}
	if i.BaseLanguage != nil && len(*i.BaseLanguage) != 2 {
		errs = append(errs, domain.FieldError{Field: "base_language", Message: "must be an ISO 639-1 code"})
	}
	if i.TargetLang != nil && len(*i.TargetLang) != 2 {
		errs = append(errs, domain.FieldError{Field: "target_language", Message: "must be an ISO 639-1 code"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// UpdateSettingsInput holds optional settings fields; nil fields are
// unchanged.
type UpdateSettingsInput struct {
	DailyGoal       *int
	WordsPerSession *int
	NewWordsPerDay  *int
	Timezone        *string
}

// Validate validates the update settings input.
func (i UpdateSettingsInput) Validate() error {
	var errs []domain.FieldError

	if i.DailyGoal != nil && (*i.DailyGoal < 1 || *i.DailyGoal > 500) {
		errs = append(errs, domain.FieldError{Field: "daily_goal", Message: "must be between 1 and 500"})
	}
	if i.WordsPerSession != nil && (*i.WordsPerSession < 1 || *i.WordsPerSession > 100) {
		errs = append(errs, domain.FieldError{Field: "words_per_session", Message: "must be between 1 and 100"})
	}
	if i.NewWordsPerDay != nil && (*i.NewWordsPerDay < 0 || *i.NewWordsPerDay > 100) {
		errs = append(errs, domain.FieldError{Field: "new_words_per_day", Message: "must be between 0 and 100"})
	}
	if i.Timezone != nil {
		if _, err := time.LoadLocation(*i.Timezone); err != nil {
			errs = append(errs, domain.FieldError{Field: "timezone", Message: "unknown IANA timezone"})
		}
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}
