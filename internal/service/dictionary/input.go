package dictionary

import (
	"strings"

	"github.com/lexibase/lexibase-backend/internal/domain"
)

// ExampleInput is a usage example attached to a definition.
type ExampleInput struct {
	Sentence    string
	Translation *string
}

// DefinitionInput is one numbered definition with its examples.
type DefinitionInput struct {
	Text       string
	UsageLabel *string
	Examples   []ExampleInput
}

// TranslationInput is a translation of the word into another language.
type TranslationInput struct {
	LanguageCode string
	Text         string
}

// CreateWordInput holds parameters for creating a catalog word.
type CreateWordInput struct {
	Text         string
	LanguageCode string
	PartOfSpeech *domain.PartOfSpeech
	Difficulty   domain.DifficultyLevel
	Phonetic     *string
	AudioURL     *string
	ImageURL     *string
	Source       domain.WordSource

	Definitions  []DefinitionInput
	Synonyms     []string
	Translations []TranslationInput
}

// Validate validates the create input.
func (i CreateWordInput) Validate() error {
	var errs []domain.FieldError

	if strings.TrimSpace(i.Text) == "" {
		errs = append(errs, domain.FieldError{Field: "text", Message: "required"})
	} else if len(i.Text) > 255 {
		errs = append(errs, domain.FieldError{Field: "text", Message: "too long"})
	}

	if i.LanguageCode == "" {
		errs = append(errs, domain.FieldError{Field: "language_code", Message: "required"})
	} else if len(i.LanguageCode) != 2 {
		errs = append(errs, domain.FieldError{Field: "language_code", Message: "must be an ISO 639-1 code"})
	}

	if i.PartOfSpeech != nil && !i.PartOfSpeech.IsValid() {
		errs = append(errs, domain.FieldError{Field: "part_of_speech", Message: "invalid value"})
	}

	if i.Difficulty != "" && !i.Difficulty.IsValid() {
		errs = append(errs, domain.FieldError{Field: "difficulty", Message: "invalid value"})
	}

	if i.Source != "" && !i.Source.IsValid() {
		errs = append(errs, domain.FieldError{Field: "source", Message: "invalid value"})
	}

	if len(i.Definitions) == 0 {
		errs = append(errs, domain.FieldError{Field: "definitions", Message: "at least one required"})
	}
	for _, d := range i.Definitions {
		if strings.TrimSpace(d.Text) == "" {
			errs = append(errs, domain.FieldError{Field: "definitions", Message: "definition text required"})
			break
		}
	}

	for _, tr := range i.Translations {
		if len(tr.LanguageCode) != 2 || strings.TrimSpace(tr.Text) == "" {
			errs = append(errs, domain.FieldError{Field: "translations", Message: "language code and text required"})
			break
		}
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// UpdateWordInput holds parameters for updating a catalog word.
// Nil slices leave the corresponding child rows untouched.
type UpdateWordInput struct {
	Text         *string
	PartOfSpeech *domain.PartOfSpeech
	Difficulty   *domain.DifficultyLevel
	Phonetic     *string
	AudioURL     *string
	ImageURL     *string

	Definitions  []DefinitionInput
	Synonyms     []string
	Translations []TranslationInput
}

// Validate validates the update input.
func (i UpdateWordInput) Validate() error {
	var errs []domain.FieldError

	if i.Text != nil && strings.TrimSpace(*i.Text) == "" {
		errs = append(errs, domain.FieldError{Field: "text", Message: "must not be empty"})
	}
	if i.PartOfSpeech != nil && !i.PartOfSpeech.IsValid() {
		errs = append(errs, domain.FieldError{Field: "part_of_speech", Message: "invalid value"})
	}
	if i.Difficulty != nil && !i.Difficulty.IsValid() {
		errs = append(errs, domain.FieldError{Field: "difficulty", Message: "invalid value"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// mapDefinitions converts definition inputs to domain definitions with
// positions assigned by order.
func mapDefinitions(inputs []DefinitionInput) []domain.Definition {
	defs := make([]domain.Definition, 0, len(inputs))
	for pos, d := range inputs {
		def := domain.Definition{
			Text:       strings.TrimSpace(d.Text),
			UsageLabel: d.UsageLabel,
			Position:   pos + 1,
		}
		for epos, e := range d.Examples {
			def.Examples = append(def.Examples, domain.Example{
				Sentence:    strings.TrimSpace(e.Sentence),
				Translation: e.Translation,
				Position:    epos + 1,
			})
		}
		defs = append(defs, def)
	}
	return defs
}

// mapTranslations converts translation inputs to domain translations.
func mapTranslations(inputs []TranslationInput) []domain.Translation {
	trs := make([]domain.Translation, 0, len(inputs))
	for pos, tr := range inputs {
		trs = append(trs, domain.Translation{
			LanguageCode: tr.LanguageCode,
			Text:         strings.TrimSpace(tr.Text),
			Position:     pos + 1,
		})
	}
	return trs
}
