package domain

import "github.com/google/uuid"

// WordFilter defines parameters for searching and paginating catalog words.
type WordFilter struct {
	// Search performs ILIKE '%...%' on text_normalized.
	Search *string

	// LanguageCode restricts results to one language.
	LanguageCode *string

	PartOfSpeech *PartOfSpeech
	Difficulty   *DifficultyLevel
	Source       *WordSource

	// SortBy: "text", "created_at", "updated_at". Default "created_at".
	SortBy string
	// SortOrder: "ASC" or "DESC". Default "DESC".
	SortOrder string

	Limit  int
	Offset int
}

// UserWordFilter defines parameters for listing a user's dictionary.
type UserWordFilter struct {
	Search *string
	Status *LearningStatus
	ListID *uuid.UUID

	Limit  int
	Offset int
}

// ListFilter defines parameters for browsing the list catalog.
type ListFilter struct {
	Search     *string
	Difficulty *DifficultyLevel

	// OfficialOnly keeps only admin-curated lists.
	OfficialOnly bool

	Limit  int
	Offset int
}
