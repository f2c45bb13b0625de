package media

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/lexibase/lexibase-backend/internal/domain"
)

// Report summarizes an EnrichWords run.
type Report struct {
	Processed   int
	ImagesAdded int
	AudioAdded  int
	Failed      int
}

// EnrichMissing enriches up to cfg.MaxWords words of a language that lack an
// image or audio URL.
func (s *Service) EnrichMissing(ctx context.Context, languageCode string) (*Report, error) {
	words, err := s.words.ListMissingMedia(ctx, languageCode, s.cfg.MaxWords)
	if err != nil {
		return nil, fmt.Errorf("media.EnrichMissing: %w", err)
	}
	return s.EnrichWords(ctx, words)
}

// EnrichWords fills in missing image and audio URLs for the given words.
// Words are processed in chunks of cfg.ChunkSize, concurrently within a
// chunk, with cfg.ChunkDelay between chunks to pace outbound API calls.
// Individual failures are logged and counted, never fatal.
func (s *Service) EnrichWords(ctx context.Context, words []domain.Word) (*Report, error) {
	report := &Report{}
	if len(words) == 0 {
		return report, nil
	}

	chunkSize := s.cfg.ChunkSize
	if chunkSize <= 0 {
		chunkSize = 1
	}

	var mu sync.Mutex

	for start := 0; start < len(words); start += chunkSize {
		if err := ctx.Err(); err != nil {
			return report, err
		}

		end := min(start+chunkSize, len(words))
		chunk := words[start:end]

		var wg sync.WaitGroup
		for i := range chunk {
			wg.Add(1)
			go func(w *domain.Word) {
				defer wg.Done()

				images, audio, err := s.enrichWord(ctx, w)

				mu.Lock()
				defer mu.Unlock()
				report.Processed++
				if images {
					report.ImagesAdded++
				}
				if audio {
					report.AudioAdded++
				}
				if err != nil {
					report.Failed++
				}
			}(&chunk[i])
		}
		wg.Wait()

		if end < len(words) && s.cfg.ChunkDelay > 0 {
			select {
			case <-ctx.Done():
				return report, ctx.Err()
			case <-time.After(s.cfg.ChunkDelay):
			}
		}
	}

	s.log.InfoContext(ctx, "enrichment finished",
		slog.Int("processed", report.Processed),
		slog.Int("images", report.ImagesAdded),
		slog.Int("audio", report.AudioAdded),
		slog.Int("failed", report.Failed),
	)

	return report, nil
}

// enrichWord fills whichever of image and audio is missing. A failure in one
// does not block the other.
func (s *Service) enrichWord(ctx context.Context, word *domain.Word) (imageAdded, audioAdded bool, err error) {
	var imageURL, audioURL *string

	if word.ImageURL == nil && s.images != nil {
		url, imgErr := s.searchImage(ctx, word)
		if imgErr != nil {
			err = imgErr
			s.log.WarnContext(ctx, "image enrichment failed",
				slog.String("text", word.Text), slog.String("error", imgErr.Error()))
		} else {
			imageURL = &url
		}
	}

	if word.AudioURL == nil && s.tts != nil {
		url, audioErr := s.synthesizeAudio(ctx, word)
		if audioErr != nil {
			err = audioErr
			s.log.WarnContext(ctx, "audio enrichment failed",
				slog.String("text", word.Text), slog.String("error", audioErr.Error()))
		} else {
			audioURL = &url
		}
	}

	if imageURL == nil && audioURL == nil {
		return false, false, err
	}

	if _, updErr := s.words.UpdateMedia(ctx, word.ID, audioURL, imageURL); updErr != nil {
		s.log.WarnContext(ctx, "media update failed",
			slog.String("text", word.Text), slog.String("error", updErr.Error()))
		return false, false, updErr
	}

	return imageURL != nil, audioURL != nil, err
}
