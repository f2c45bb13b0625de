// Package provider defines the structured results returned by external
// data providers (dictionaries, image search, TTS, translation).
package provider

// DictionaryResult is the structured result from a dictionary API provider.
type DictionaryResult struct {
	Word         string
	PartOfSpeech *string
	Phonetic     *string
	AudioURL     *string
	Senses       []SenseResult
	Synonyms     []string
	Translations []string
}

// SenseResult represents a single word sense from an external dictionary.
type SenseResult struct {
	Definition string
	UsageLabel *string
	Examples   []ExampleResult
}

// ExampleResult represents a usage example from an external dictionary.
type ExampleResult struct {
	Sentence    string
	Translation *string
}

// ImageResult is one image returned by an image search provider.
type ImageResult struct {
	URL          string
	ThumbnailURL string
	Photographer string
	Alt          string
}

// AudioResult is synthesized speech returned by a TTS provider.
type AudioResult struct {
	// MP3 holds the decoded audio bytes.
	MP3 []byte
	// LanguageCode is the BCP-47 code the audio was synthesized for.
	LanguageCode string
}

// TranslationResult is a translation of a phrase returned by a translation
// provider.
type TranslationResult struct {
	Text string
	// Match is the provider's confidence in [0,1].
	Match float64
}
