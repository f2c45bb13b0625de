package list

import (
	"strings"

	"github.com/lexibase/lexibase-backend/internal/domain"
)

// CreateListInput holds parameters for creating a list.
type CreateListInput struct {
	Name        string
	Description *string
	Difficulty  domain.DifficultyLevel
	IsPublic    bool
	CoverURL    *string

	// Official creates an admin-curated list without an owner.
	Official bool
}

// Validate validates the create input.
func (i CreateListInput) Validate() error {
	var errs []domain.FieldError

	if strings.TrimSpace(i.Name) == "" {
		errs = append(errs, domain.FieldError{Field: "name", Message: "required"})
	} else if len(i.Name) > 255 {
		errs = append(errs, domain.FieldError{Field: "name", Message: "too long"})
	}

	if i.Difficulty != "" && !i.Difficulty.IsValid() {
		errs = append(errs, domain.FieldError{Field: "difficulty", Message: "invalid value"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// UpdateListInput holds parameters for a partial list update.
type UpdateListInput struct {
	Name        *string
	Description *string
	Difficulty  *domain.DifficultyLevel
	IsPublic    *bool
	CoverURL    *string
}

// Validate validates the update input.
func (i UpdateListInput) Validate() error {
	var errs []domain.FieldError

	if i.Name != nil && strings.TrimSpace(*i.Name) == "" {
		errs = append(errs, domain.FieldError{Field: "name", Message: "must not be empty"})
	}
	if i.Difficulty != nil && !i.Difficulty.IsValid() {
		errs = append(errs, domain.FieldError{Field: "difficulty", Message: "invalid value"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}
