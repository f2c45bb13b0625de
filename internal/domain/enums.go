package domain

// LearningStatus represents how far a user has progressed with a word.
type LearningStatus string

const (
	LearningStatusNew        LearningStatus = "NEW"
	LearningStatusInProgress LearningStatus = "IN_PROGRESS"
	LearningStatusLearned    LearningStatus = "LEARNED"
	LearningStatusMastered   LearningStatus = "MASTERED"
)

func (s LearningStatus) String() string { return string(s) }

func (s LearningStatus) IsValid() bool {
	switch s {
	case LearningStatusNew, LearningStatusInProgress, LearningStatusLearned, LearningStatusMastered:
		return true
	}
	return false
}

// PartOfSpeech represents the grammatical category of a word.
type PartOfSpeech string

const (
	PartOfSpeechNoun         PartOfSpeech = "NOUN"
	PartOfSpeechVerb         PartOfSpeech = "VERB"
	PartOfSpeechAdjective    PartOfSpeech = "ADJECTIVE"
	PartOfSpeechAdverb       PartOfSpeech = "ADVERB"
	PartOfSpeechPronoun      PartOfSpeech = "PRONOUN"
	PartOfSpeechPreposition  PartOfSpeech = "PREPOSITION"
	PartOfSpeechConjunction  PartOfSpeech = "CONJUNCTION"
	PartOfSpeechInterjection PartOfSpeech = "INTERJECTION"
	PartOfSpeechNumeral      PartOfSpeech = "NUMERAL"
	PartOfSpeechPhrase       PartOfSpeech = "PHRASE"
	PartOfSpeechOther        PartOfSpeech = "OTHER"
)

func (p PartOfSpeech) String() string { return string(p) }

func (p PartOfSpeech) IsValid() bool {
	switch p {
	case PartOfSpeechNoun, PartOfSpeechVerb, PartOfSpeechAdjective, PartOfSpeechAdverb,
		PartOfSpeechPronoun, PartOfSpeechPreposition, PartOfSpeechConjunction,
		PartOfSpeechInterjection, PartOfSpeechNumeral, PartOfSpeechPhrase, PartOfSpeechOther:
		return true
	}
	return false
}

// DifficultyLevel is the CEFR-style difficulty bucket of a word or list.
type DifficultyLevel string

const (
	DifficultyBeginner     DifficultyLevel = "BEGINNER"
	DifficultyElementary   DifficultyLevel = "ELEMENTARY"
	DifficultyIntermediate DifficultyLevel = "INTERMEDIATE"
	DifficultyAdvanced     DifficultyLevel = "ADVANCED"
	DifficultyProficient   DifficultyLevel = "PROFICIENT"
)

func (d DifficultyLevel) String() string { return string(d) }

func (d DifficultyLevel) IsValid() bool {
	switch d {
	case DifficultyBeginner, DifficultyElementary, DifficultyIntermediate,
		DifficultyAdvanced, DifficultyProficient:
		return true
	}
	return false
}

// WordSource identifies where a dictionary word came from.
type WordSource string

const (
	WordSourceAdmin  WordSource = "ADMIN"
	WordSourceImport WordSource = "IMPORT"
	WordSourceUser   WordSource = "USER"
)

func (s WordSource) String() string { return string(s) }

func (s WordSource) IsValid() bool {
	switch s {
	case WordSourceAdmin, WordSourceImport, WordSourceUser:
		return true
	}
	return false
}

// UserRole represents the authorization level of a user.
type UserRole string

const (
	UserRoleUser  UserRole = "user"
	UserRoleAdmin UserRole = "admin"
)

func (r UserRole) String() string { return string(r) }

func (r UserRole) IsValid() bool {
	switch r {
	case UserRoleUser, UserRoleAdmin:
		return true
	}
	return false
}

func (r UserRole) IsAdmin() bool {
	return r == UserRoleAdmin
}
