package ingest

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/google/uuid"

	"github.com/lexibase/lexibase-backend/internal/domain"
	"github.com/lexibase/lexibase-backend/internal/provider"
)

// BatchReport summarizes an IngestBatch run.
type BatchReport struct {
	Ingested int
	Missing  []string // words the source does not know
	Failed   []string // words that errored out
}

// IngestWord fetches the word from the external dictionary for the given
// language and upserts it into the catalog with Source=IMPORT. Existing
// entries keep their curated fields (difficulty, image); part of speech,
// phonetic and audio are only filled when missing, while definitions,
// synonyms and translations are replaced with the fetched ones.
func (s *Service) IngestWord(ctx context.Context, text, languageCode string) (*domain.Word, error) {
	normalized := domain.NormalizeText(text)
	if normalized == "" {
		return nil, domain.NewValidationError("text", "must not be empty")
	}

	source, ok := s.sources[languageCode]
	if !ok {
		return nil, domain.NewValidationError("language_code", "no dictionary source for this language")
	}

	res, err := source.Lookup(ctx, normalized)
	if err != nil {
		return nil, fmt.Errorf("ingest.IngestWord lookup %q: %w", normalized, err)
	}
	if res == nil {
		return nil, fmt.Errorf("ingest.IngestWord %q: %w", normalized, domain.ErrNotFound)
	}

	word, defs, synonyms, translations := mapResult(res, normalized, languageCode)

	var out *domain.Word
	err = s.tx.RunInTx(ctx, func(ctx context.Context) error {
		var wordID uuid.UUID

		existing, err := s.words.GetByText(ctx, normalized, languageCode)
		switch {
		case errors.Is(err, domain.ErrNotFound):
			created, err := s.words.Create(ctx, word)
			if err != nil {
				return fmt.Errorf("create: %w", err)
			}
			wordID = created.ID
		case err != nil:
			return fmt.Errorf("get by text: %w", err)
		default:
			if existing.PartOfSpeech == nil {
				existing.PartOfSpeech = word.PartOfSpeech
			}
			if existing.Phonetic == nil {
				existing.Phonetic = word.Phonetic
			}
			if existing.AudioURL == nil {
				existing.AudioURL = word.AudioURL
			}
			if _, err := s.words.Update(ctx, existing); err != nil {
				return fmt.Errorf("update: %w", err)
			}
			wordID = existing.ID
		}

		if err := s.words.SetDefinitions(ctx, wordID, defs); err != nil {
			return fmt.Errorf("set definitions: %w", err)
		}
		if len(synonyms) > 0 {
			if err := s.words.SetSynonyms(ctx, wordID, synonyms); err != nil {
				return fmt.Errorf("set synonyms: %w", err)
			}
		}
		if len(translations) > 0 {
			if err := s.words.SetTranslations(ctx, wordID, translations); err != nil {
				return fmt.Errorf("set translations: %w", err)
			}
		}

		out, err = s.words.GetByID(ctx, wordID)
		return err
	})
	if err != nil {
		return nil, fmt.Errorf("ingest.IngestWord %q: %w", normalized, err)
	}

	s.log.InfoContext(ctx, "word ingested",
		slog.String("text", out.Text),
		slog.String("language", languageCode),
		slog.Int("definitions", len(out.Definitions)),
	)

	return out, nil
}

// IngestBatch ingests each word in turn. Individual failures are logged and
// skipped; the loop stops early only when the context is cancelled.
func (s *Service) IngestBatch(ctx context.Context, texts []string, languageCode string) (*BatchReport, error) {
	report := &BatchReport{}

	for _, text := range texts {
		if ctx.Err() != nil {
			return report, ctx.Err()
		}

		_, err := s.IngestWord(ctx, text, languageCode)
		switch {
		case err == nil:
			report.Ingested++
		case errors.Is(err, domain.ErrNotFound):
			s.log.InfoContext(ctx, "word not in source dictionary",
				slog.String("text", text), slog.String("language", languageCode))
			report.Missing = append(report.Missing, text)
		default:
			s.log.WarnContext(ctx, "word ingest failed",
				slog.String("text", text), slog.String("error", err.Error()))
			report.Failed = append(report.Failed, text)
		}
	}

	return report, nil
}

// mapResult converts a dictionary provider result into domain records.
func mapResult(res *provider.DictionaryResult, normalized, languageCode string) (*domain.Word, []domain.Definition, []string, []domain.Translation) {
	text := strings.TrimSpace(res.Word)
	if text == "" {
		text = normalized
	}

	word := &domain.Word{
		Text:           text,
		TextNormalized: normalized,
		LanguageCode:   languageCode,
		PartOfSpeech:   mapPartOfSpeech(res.PartOfSpeech),
		Difficulty:     domain.DifficultyIntermediate,
		Phonetic:       res.Phonetic,
		AudioURL:       res.AudioURL,
		Source:         domain.WordSourceImport,
	}

	defs := make([]domain.Definition, 0, len(res.Senses))
	for i, sense := range res.Senses {
		d := domain.Definition{
			Text:       sense.Definition,
			UsageLabel: sense.UsageLabel,
			Position:   i + 1,
		}
		for j, ex := range sense.Examples {
			d.Examples = append(d.Examples, domain.Example{
				Sentence:    ex.Sentence,
				Translation: ex.Translation,
				Position:    j + 1,
			})
		}
		defs = append(defs, d)
	}

	synonyms := dedupe(res.Synonyms)

	// External sources gloss into English; for English words the glosses
	// target Danish.
	targetLang := "en"
	if languageCode == "en" {
		targetLang = "da"
	}
	var translations []domain.Translation
	for i, tr := range dedupe(res.Translations) {
		translations = append(translations, domain.Translation{
			LanguageCode: targetLang,
			Text:         tr,
			Position:     i + 1,
		})
	}

	return word, defs, synonyms, translations
}

// posTable maps the raw part-of-speech labels the sources use (Danish word
// classes from ordnet, functional labels from Merriam-Webster).
var posTable = map[string]domain.PartOfSpeech{
	"noun":              domain.PartOfSpeechNoun,
	"verb":              domain.PartOfSpeechVerb,
	"transitive verb":   domain.PartOfSpeechVerb,
	"intransitive verb": domain.PartOfSpeechVerb,
	"adjective":         domain.PartOfSpeechAdjective,
	"adverb":            domain.PartOfSpeechAdverb,
	"pronoun":           domain.PartOfSpeechPronoun,
	"preposition":       domain.PartOfSpeechPreposition,
	"conjunction":       domain.PartOfSpeechConjunction,
	"interjection":      domain.PartOfSpeechInterjection,

	"substantiv":  domain.PartOfSpeechNoun,
	"verbum":      domain.PartOfSpeechVerb,
	"adjektiv":    domain.PartOfSpeechAdjective,
	"adverbium":   domain.PartOfSpeechAdverb,
	"pronomen":    domain.PartOfSpeechPronoun,
	"præposition": domain.PartOfSpeechPreposition,
	"konjunktion": domain.PartOfSpeechConjunction,
	"udråbsord":   domain.PartOfSpeechInterjection,
	"talord":      domain.PartOfSpeechNumeral,
}

func mapPartOfSpeech(raw *string) *domain.PartOfSpeech {
	if raw == nil {
		return nil
	}
	label := strings.ToLower(strings.TrimSpace(*raw))
	if label == "" {
		return nil
	}
	pos, ok := posTable[label]
	if !ok {
		pos = domain.PartOfSpeechOther
	}
	return &pos
}

func dedupe(items []string) []string {
	var out []string
	seen := make(map[string]struct{}, len(items))
	for _, item := range items {
		item = strings.TrimSpace(item)
		if item == "" {
			continue
		}
		key := strings.ToLower(item)
		if _, ok := seen[key]; ok {
			continue
		}
		seen[key] = struct{}{}
		out = append(out, item)
	}
	return out
}
