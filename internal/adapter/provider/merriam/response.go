package merriam

import (
	"strings"
	"unicode"

	"github.com/lexibase/lexibase-backend/internal/provider"
)

// apiEntry is the subset of a Merriam-Webster collegiate entry we consume.
type apiEntry struct {
	Meta struct {
		ID       string     `json:"id"`
		Syns     [][]string `json:"syns"`
		Stems    []string   `json:"stems"`
		Offensiv bool       `json:"offensive"`
	} `json:"meta"`
	Hwi struct {
		Hw  string `json:"hw"`
		Prs []struct {
			Mw    string `json:"mw"`
			Sound struct {
				Audio string `json:"audio"`
			} `json:"sound"`
		} `json:"prs"`
	} `json:"hwi"`
	Fl       string   `json:"fl"`
	Shortdef []string `json:"shortdef"`
}

const audioBaseURL = "https://media.merriam-webster.com/audio/prons/en/us/mp3"

// mapAPIResponse merges all homograph entries for a word into one result.
// Only entries whose headword matches the queried word contribute; the API
// also returns derived forms ("test-drive" for "test") we don't want.
func mapAPIResponse(word string, entries []apiEntry) *provider.DictionaryResult {
	result := &provider.DictionaryResult{
		Word:   word,
		Senses: []provider.SenseResult{},
	}

	seenSynonyms := make(map[string]bool)

	for _, entry := range entries {
		headword := strings.ReplaceAll(entry.Hwi.Hw, "*", "")
		if !strings.EqualFold(headword, word) {
			continue
		}

		if result.PartOfSpeech == nil && entry.Fl != "" {
			fl := entry.Fl
			result.PartOfSpeech = &fl
		}

		for _, pr := range entry.Hwi.Prs {
			if result.Phonetic == nil && pr.Mw != "" {
				mw := pr.Mw
				result.Phonetic = &mw
			}
			if result.AudioURL == nil && pr.Sound.Audio != "" {
				audio := audioURL(pr.Sound.Audio)
				result.AudioURL = &audio
			}
		}

		for _, def := range entry.Shortdef {
			if def == "" {
				continue
			}
			result.Senses = append(result.Senses, provider.SenseResult{
				Definition: def,
				Examples:   []provider.ExampleResult{},
			})
		}

		for _, group := range entry.Meta.Syns {
			for _, syn := range group {
				if !seenSynonyms[syn] {
					seenSynonyms[syn] = true
					result.Synonyms = append(result.Synonyms, syn)
				}
			}
		}
	}

	return result
}

// audioURL builds the media URL for an audio reference per the API docs:
// the subdirectory is "bix"/"gg"/"number" for the special prefixes,
// otherwise the first character.
func audioURL(audio string) string {
	subdir := string(audio[0])
	switch {
	case strings.HasPrefix(audio, "bix"):
		subdir = "bix"
	case strings.HasPrefix(audio, "gg"):
		subdir = "gg"
	case unicode.IsDigit(rune(audio[0])) || unicode.IsPunct(rune(audio[0])):
		subdir = "number"
	}
	return audioBaseURL + "/" + subdir + "/" + audio + ".mp3"
}
