package rest

import (
	"time"

	"github.com/lexibase/lexibase-backend/internal/domain"
)

// Shared response DTOs. Field names follow the camelCase JSON convention of
// the web client.

type userResponse struct {
	ID           string  `json:"id"`
	Email        string  `json:"email"`
	Username     string  `json:"username"`
	Name         string  `json:"name"`
	Role         string  `json:"role"`
	BaseLanguage string  `json:"baseLanguage"`
	TargetLang   string  `json:"targetLanguage"`
	AvatarURL    *string `json:"avatarUrl,omitempty"`
	CreatedAt    string  `json:"createdAt"`
}

func toUserResponse(u *domain.User) userResponse {
	return userResponse{
		ID:           u.ID.String(),
		Email:        u.Email,
		Username:     u.Username,
		Name:         u.Name,
		Role:         u.Role.String(),
		BaseLanguage: u.BaseLanguage,
		TargetLang:   u.TargetLang,
		AvatarURL:    u.AvatarURL,
		CreatedAt:    u.CreatedAt.Format(time.RFC3339),
	}
}

type settingsResponse struct {
	DailyGoal       int    `json:"dailyGoal"`
	WordsPerSession int    `json:"wordsPerSession"`
	NewWordsPerDay  int    `json:"newWordsPerDay"`
	Timezone        string `json:"timezone"`
}

func toSettingsResponse(s *domain.UserSettings) settingsResponse {
	return settingsResponse{
		DailyGoal:       s.DailyGoal,
		WordsPerSession: s.WordsPerSession,
		NewWordsPerDay:  s.NewWordsPerDay,
		Timezone:        s.Timezone,
	}
}

type exampleResponse struct {
	Sentence    string  `json:"sentence"`
	Translation *string `json:"translation,omitempty"`
}

type definitionResponse struct {
	Text       string            `json:"text"`
	UsageLabel *string           `json:"usageLabel,omitempty"`
	Examples   []exampleResponse `json:"examples,omitempty"`
}

type translationResponse struct {
	LanguageCode string `json:"languageCode"`
	Text         string `json:"text"`
}

type wordResponse struct {
	ID           string                `json:"id"`
	Text         string                `json:"text"`
	LanguageCode string                `json:"languageCode"`
	PartOfSpeech *string               `json:"partOfSpeech,omitempty"`
	Difficulty   string                `json:"difficulty"`
	Phonetic     *string               `json:"phonetic,omitempty"`
	AudioURL     *string               `json:"audioUrl,omitempty"`
	ImageURL     *string               `json:"imageUrl,omitempty"`
	Source       string                `json:"source"`
	Definitions  []definitionResponse  `json:"definitions,omitempty"`
	Synonyms     []string              `json:"synonyms,omitempty"`
	Translations []translationResponse `json:"translations,omitempty"`
}

func toWordResponse(w *domain.Word) wordResponse {
	resp := wordResponse{
		ID:           w.ID.String(),
		Text:         w.Text,
		LanguageCode: w.LanguageCode,
		Difficulty:   w.Difficulty.String(),
		Phonetic:     w.Phonetic,
		AudioURL:     w.AudioURL,
		ImageURL:     w.ImageURL,
		Source:       w.Source.String(),
	}
	if w.PartOfSpeech != nil {
		pos := w.PartOfSpeech.String()
		resp.PartOfSpeech = &pos
	}
	for _, d := range w.Definitions {
		dr := definitionResponse{Text: d.Text, UsageLabel: d.UsageLabel}
		for _, e := range d.Examples {
			dr.Examples = append(dr.Examples, exampleResponse{Sentence: e.Sentence, Translation: e.Translation})
		}
		resp.Definitions = append(resp.Definitions, dr)
	}
	for _, s := range w.Synonyms {
		resp.Synonyms = append(resp.Synonyms, s.Text)
	}
	for _, tr := range w.Translations {
		resp.Translations = append(resp.Translations, translationResponse{LanguageCode: tr.LanguageCode, Text: tr.Text})
	}
	return resp
}

func toWordResponses(words []domain.Word) []wordResponse {
	out := make([]wordResponse, 0, len(words))
	for i := range words {
		out = append(out, toWordResponse(&words[i]))
	}
	return out
}

type userWordResponse struct {
	WordID           string        `json:"wordId"`
	Status           string        `json:"status"`
	Progress         int           `json:"progress"`
	ReviewCount      int           `json:"reviewCount"`
	CorrectCount     int           `json:"correctCount"`
	CorrectStreak    int           `json:"correctStreak"`
	CustomDefinition *string       `json:"customDefinition,omitempty"`
	CustomDifficulty *string       `json:"customDifficulty,omitempty"`
	LastReviewedAt   *string       `json:"lastReviewedAt,omitempty"`
	NextReviewAt     *string       `json:"nextReviewAt,omitempty"`
	Word             *wordResponse `json:"word,omitempty"`
}

func toUserWordResponse(uw *domain.UserWord) userWordResponse {
	resp := userWordResponse{
		WordID:           uw.WordID.String(),
		Status:           uw.Status.String(),
		Progress:         uw.Progress,
		ReviewCount:      uw.ReviewCount,
		CorrectCount:     uw.CorrectCount,
		CorrectStreak:    uw.CorrectStreak,
		CustomDefinition: uw.CustomDefinition,
		LastReviewedAt:   formatTimePtr(uw.LastReviewedAt),
		NextReviewAt:     formatTimePtr(uw.NextReviewAt),
	}
	if uw.CustomDifficulty != nil {
		d := uw.CustomDifficulty.String()
		resp.CustomDifficulty = &d
	}
	if uw.Word != nil {
		w := toWordResponse(uw.Word)
		resp.Word = &w
	}
	return resp
}

func toUserWordResponses(words []domain.UserWord) []userWordResponse {
	out := make([]userWordResponse, 0, len(words))
	for i := range words {
		out = append(out, toUserWordResponse(&words[i]))
	}
	return out
}

type listResponse struct {
	ID          string         `json:"id"`
	OwnerID     *string        `json:"ownerId,omitempty"`
	Name        string         `json:"name"`
	Description *string        `json:"description,omitempty"`
	Difficulty  string         `json:"difficulty"`
	IsPublic    bool           `json:"isPublic"`
	IsOfficial  bool           `json:"isOfficial"`
	CoverURL    *string        `json:"coverUrl,omitempty"`
	WordCount   int            `json:"wordCount"`
	Words       []wordResponse `json:"words,omitempty"`
}

func toListResponse(l *domain.List) listResponse {
	resp := listResponse{
		ID:          l.ID.String(),
		Name:        l.Name,
		Description: l.Description,
		Difficulty:  l.Difficulty.String(),
		IsPublic:    l.IsPublic,
		IsOfficial:  l.IsOfficial(),
		CoverURL:    l.CoverURL,
		WordCount:   l.WordCount,
	}
	if l.OwnerID != nil {
		id := l.OwnerID.String()
		resp.OwnerID = &id
	}
	if len(l.Words) > 0 {
		resp.Words = toWordResponses(l.Words)
	}
	return resp
}

type userListResponse struct {
	ListID            string        `json:"listId"`
	CustomName        *string       `json:"customName,omitempty"`
	CustomDescription *string       `json:"customDescription,omitempty"`
	Progress          int           `json:"progress"`
	List              *listResponse `json:"list,omitempty"`
}

func toUserListResponse(ul *domain.UserList) userListResponse {
	resp := userListResponse{
		ListID:            ul.ListID.String(),
		CustomName:        ul.CustomName,
		CustomDescription: ul.CustomDescription,
		Progress:          ul.Progress,
	}
	if ul.List != nil {
		l := toListResponse(ul.List)
		resp.List = &l
	}
	return resp
}

// pageResponse wraps a paginated collection.
type pageResponse struct {
	Items any `json:"items"`
	Total int `json:"total"`
}

func formatTimePtr(t *time.Time) *string {
	if t == nil {
		return nil
	}
	s := t.Format(time.RFC3339)
	return &s
}
