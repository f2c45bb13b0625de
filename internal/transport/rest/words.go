package rest

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/google/uuid"

	"github.com/lexibase/lexibase-backend/internal/domain"
	"github.com/lexibase/lexibase-backend/internal/service/dictionary"
)

// dictionaryService defines the catalog interface needed by WordHandler.
type dictionaryService interface {
	GetWord(ctx context.Context, id uuid.UUID) (*domain.Word, error)
	LookupText(ctx context.Context, text, languageCode string) (*domain.Word, error)
	Search(ctx context.Context, filter domain.WordFilter) ([]domain.Word, int, error)
	CreateWord(ctx context.Context, input dictionary.CreateWordInput) (*domain.Word, error)
	UpdateWord(ctx context.Context, id uuid.UUID, input dictionary.UpdateWordInput) (*domain.Word, error)
	DeleteWord(ctx context.Context, id uuid.UUID) error
	RestoreWord(ctx context.Context, id uuid.UUID) (*domain.Word, error)
}

// WordHandler serves the shared dictionary endpoints.
type WordHandler struct {
	svc dictionaryService
	log *slog.Logger
}

// NewWordHandler creates a WordHandler.
func NewWordHandler(svc dictionaryService, logger *slog.Logger) *WordHandler {
	return &WordHandler{svc: svc, log: logger.With("handler", "words")}
}

// Search handles GET /v1/words.
// Query: q, language, partOfSpeech, difficulty, source, sortBy, order,
// limit, offset.
func (h *WordHandler) Search(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	filter := domain.WordFilter{
		SortBy:    q.Get("sortBy"),
		SortOrder: q.Get("order"),
		Limit:     queryInt(r, "limit", 0),
		Offset:    queryInt(r, "offset", 0),
	}
	if v := q.Get("q"); v != "" {
		filter.Search = &v
	}
	if v := q.Get("language"); v != "" {
		filter.LanguageCode = &v
	}
	if v := q.Get("partOfSpeech"); v != "" {
		pos := domain.PartOfSpeech(v)
		filter.PartOfSpeech = &pos
	}
	if v := q.Get("difficulty"); v != "" {
		d := domain.DifficultyLevel(v)
		filter.Difficulty = &d
	}
	if v := q.Get("source"); v != "" {
		s := domain.WordSource(v)
		filter.Source = &s
	}

	words, total, err := h.svc.Search(r.Context(), filter)
	if err != nil {
		writeDomainError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, pageResponse{Items: toWordResponses(words), Total: total})
}

// Get handles GET /v1/words/{id}.
func (h *WordHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := pathUUID(r, "id")
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid word id")
		return
	}

	word, err := h.svc.GetWord(r.Context(), id)
	if err != nil {
		writeDomainError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, toWordResponse(word))
}

// Lookup handles GET /v1/words/lookup?text=...&language=da.
func (h *WordHandler) Lookup(w http.ResponseWriter, r *http.Request) {
	text := r.URL.Query().Get("text")
	language := r.URL.Query().Get("language")

	word, err := h.svc.LookupText(r.Context(), text, language)
	if err != nil {
		writeDomainError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, toWordResponse(word))
}

type exampleRequest struct {
	Sentence    string  `json:"sentence"`
	Translation *string `json:"translation"`
}

type definitionRequest struct {
	Text       string           `json:"text"`
	UsageLabel *string          `json:"usageLabel"`
	Examples   []exampleRequest `json:"examples"`
}

type translationRequest struct {
	LanguageCode string `json:"languageCode"`
	Text         string `json:"text"`
}

type createWordRequest struct {
	Text         string               `json:"text"`
	LanguageCode string               `json:"languageCode"`
	PartOfSpeech *string              `json:"partOfSpeech"`
	Difficulty   string               `json:"difficulty"`
	Phonetic     *string              `json:"phonetic"`
	AudioURL     *string              `json:"audioUrl"`
	ImageURL     *string              `json:"imageUrl"`
	Definitions  []definitionRequest  `json:"definitions"`
	Synonyms     []string             `json:"synonyms"`
	Translations []translationRequest `json:"translations"`
}

func mapDefinitionRequests(reqs []definitionRequest) []dictionary.DefinitionInput {
	defs := make([]dictionary.DefinitionInput, 0, len(reqs))
	for _, d := range reqs {
		def := dictionary.DefinitionInput{Text: d.Text, UsageLabel: d.UsageLabel}
		for _, e := range d.Examples {
			def.Examples = append(def.Examples, dictionary.ExampleInput{Sentence: e.Sentence, Translation: e.Translation})
		}
		defs = append(defs, def)
	}
	return defs
}

func mapTranslationRequests(reqs []translationRequest) []dictionary.TranslationInput {
	trs := make([]dictionary.TranslationInput, 0, len(reqs))
	for _, tr := range reqs {
		trs = append(trs, dictionary.TranslationInput{LanguageCode: tr.LanguageCode, Text: tr.Text})
	}
	return trs
}

// Create handles POST /v1/admin/words.
func (h *WordHandler) Create(w http.ResponseWriter, r *http.Request) {
	if !requireAdmin(w, r) {
		return
	}

	var req createWordRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	input := dictionary.CreateWordInput{
		Text:         req.Text,
		LanguageCode: req.LanguageCode,
		Difficulty:   domain.DifficultyLevel(req.Difficulty),
		Phonetic:     req.Phonetic,
		AudioURL:     req.AudioURL,
		ImageURL:     req.ImageURL,
		Definitions:  mapDefinitionRequests(req.Definitions),
		Synonyms:     req.Synonyms,
		Translations: mapTranslationRequests(req.Translations),
	}
	if req.PartOfSpeech != nil {
		pos := domain.PartOfSpeech(*req.PartOfSpeech)
		input.PartOfSpeech = &pos
	}

	word, err := h.svc.CreateWord(r.Context(), input)
	if err != nil {
		writeDomainError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusCreated, toWordResponse(word))
}

type updateWordRequest struct {
	Text         *string              `json:"text"`
	PartOfSpeech *string              `json:"partOfSpeech"`
	Difficulty   *string              `json:"difficulty"`
	Phonetic     *string              `json:"phonetic"`
	AudioURL     *string              `json:"audioUrl"`
	ImageURL     *string              `json:"imageUrl"`
	Definitions  []definitionRequest  `json:"definitions"`
	Synonyms     []string             `json:"synonyms"`
	Translations []translationRequest `json:"translations"`
}

// Update handles PATCH /v1/admin/words/{id}.
func (h *WordHandler) Update(w http.ResponseWriter, r *http.Request) {
	if !requireAdmin(w, r) {
		return
	}

	id, err := pathUUID(r, "id")
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid word id")
		return
	}

	var req updateWordRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	input := dictionary.UpdateWordInput{
		Text:     req.Text,
		Phonetic: req.Phonetic,
		AudioURL: req.AudioURL,
		ImageURL: req.ImageURL,
		Synonyms: req.Synonyms,
	}
	if req.PartOfSpeech != nil {
		pos := domain.PartOfSpeech(*req.PartOfSpeech)
		input.PartOfSpeech = &pos
	}
	if req.Difficulty != nil {
		d := domain.DifficultyLevel(*req.Difficulty)
		input.Difficulty = &d
	}
	if req.Definitions != nil {
		input.Definitions = mapDefinitionRequests(req.Definitions)
	}
	if req.Translations != nil {
		input.Translations = mapTranslationRequests(req.Translations)
	}

	word, err := h.svc.UpdateWord(r.Context(), id, input)
	if err != nil {
		writeDomainError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, toWordResponse(word))
}

// Delete handles DELETE /v1/admin/words/{id}. Soft delete.
func (h *WordHandler) Delete(w http.ResponseWriter, r *http.Request) {
	if !requireAdmin(w, r) {
		return
	}

	id, err := pathUUID(r, "id")
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid word id")
		return
	}

	if err := h.svc.DeleteWord(r.Context(), id); err != nil {
		writeDomainError(w, r, h.log, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// Restore handles POST /v1/admin/words/{id}/restore.
func (h *WordHandler) Restore(w http.ResponseWriter, r *http.Request) {
	if !requireAdmin(w, r) {
		return
	}

	id, err := pathUUID(r, "id")
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid word id")
		return
	}

	word, err := h.svc.RestoreWord(r.Context(), id)
	if err != nil {
		writeDomainError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, toWordResponse(word))
}
