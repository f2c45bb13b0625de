package media

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/lexibase/lexibase-backend/internal/domain"
	"github.com/lexibase/lexibase-backend/internal/provider"
)

var _ imageSearcher = &imageSearcherMock{}

type imageSearcherMock struct {
	SearchFunc func(ctx context.Context, query string, perPage int) ([]provider.ImageResult, error)

	mu    sync.Mutex
	calls struct {
		Search int
	}
}

func (m *imageSearcherMock) Search(ctx context.Context, query string, perPage int) ([]provider.ImageResult, error) {
	m.mu.Lock()
	m.calls.Search++
	m.mu.Unlock()
	return m.SearchFunc(ctx, query, perPage)
}

var _ speechSynthesizer = &synthesizerMock{}

type synthesizerMock struct {
	SynthesizeFunc func(ctx context.Context, text, languageCode string) (*provider.AudioResult, error)

	mu    sync.Mutex
	calls struct {
		Synthesize int
	}
}

func (m *synthesizerMock) Synthesize(ctx context.Context, text, languageCode string) (*provider.AudioResult, error) {
	m.mu.Lock()
	m.calls.Synthesize++
	m.mu.Unlock()
	return m.SynthesizeFunc(ctx, text, languageCode)
}

var _ translator = &translatorMock{}

type translatorMock struct {
	TranslateFunc func(ctx context.Context, text, from, to string) (*provider.TranslationResult, error)
}

func (m *translatorMock) Translate(ctx context.Context, text, from, to string) (*provider.TranslationResult, error) {
	return m.TranslateFunc(ctx, text, from, to)
}

var _ audioStore = &audioStoreMock{}

type audioStoreMock struct {
	SaveFunc func(ctx context.Context, name string, data []byte) (string, error)
}

func (m *audioStoreMock) Save(ctx context.Context, name string, data []byte) (string, error) {
	if m.SaveFunc == nil {
		return "/static/audio/" + name, nil
	}
	return m.SaveFunc(ctx, name, data)
}

var _ wordRepo = &wordRepoMock{}

type wordRepoMock struct {
	GetByIDFunc          func(ctx context.Context, id uuid.UUID) (*domain.Word, error)
	UpdateMediaFunc      func(ctx context.Context, id uuid.UUID, audioURL, imageURL *string) (*domain.Word, error)
	ListMissingMediaFunc func(ctx context.Context, languageCode string, limit int) ([]domain.Word, error)

	mu    sync.Mutex
	calls struct {
		UpdateMedia int
	}
}

func (m *wordRepoMock) GetByID(ctx context.Context, id uuid.UUID) (*domain.Word, error) {
	return m.GetByIDFunc(ctx, id)
}

func (m *wordRepoMock) UpdateMedia(ctx context.Context, id uuid.UUID, audioURL, imageURL *string) (*domain.Word, error) {
	m.mu.Lock()
	m.calls.UpdateMedia++
	m.mu.Unlock()
	return m.UpdateMediaFunc(ctx, id, audioURL, imageURL)
}

func (m *wordRepoMock) ListMissingMedia(ctx context.Context, languageCode string, limit int) ([]domain.Word, error) {
	return m.ListMissingMediaFunc(ctx, languageCode, limit)
}
