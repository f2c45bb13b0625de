package domain

import (
	"time"

	"github.com/google/uuid"
)

// Language is a supported dictionary language.
type Language struct {
	Code      string // ISO 639-1, e.g. "da", "en"
	Name      string
	CreatedAt time.Time
}

// Word is a shared dictionary entry. Words are curated by admins or imported
// from external dictionaries; users reference them through UserWord.
type Word struct {
	ID             uuid.UUID
	Text           string
	TextNormalized string
	LanguageCode   string
	PartOfSpeech   *PartOfSpeech
	Difficulty     DifficultyLevel
	Phonetic       *string
	AudioURL       *string
	ImageURL       *string
	Source         WordSource
	CreatedAt      time.Time
	UpdatedAt      time.Time
	DeletedAt      *time.Time

	Definitions  []Definition
	Synonyms     []Synonym
	Translations []Translation
}

// IsDeleted returns true if the word has been soft-deleted.
func (w *Word) IsDeleted() bool {
	return w.DeletedAt != nil
}

// Definition is a numbered definition of a word, optionally carrying a usage
// label ("formal", "slang", ...).
type Definition struct {
	ID         uuid.UUID
	WordID     uuid.UUID
	Text       string
	UsageLabel *string
	Position   int
	CreatedAt  time.Time

	Examples []Example
}

// Example is a usage example attached to a definition.
type Example struct {
	ID           uuid.UUID
	DefinitionID uuid.UUID
	Sentence     string
	Translation  *string
	Position     int
	CreatedAt    time.Time
}

// Synonym is a synonym string attached to a word.
type Synonym struct {
	ID        uuid.UUID
	WordID    uuid.UUID
	Text      string
	CreatedAt time.Time
}

// Translation is a translation of a word into another language.
type Translation struct {
	ID           uuid.UUID
	WordID       uuid.UUID
	LanguageCode string
	Text         string
	Position     int
}
