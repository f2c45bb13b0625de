package ordnet

// apiEntry represents one dictionary entry from the ordnet endpoint.
type apiEntry struct {
	Headword  string     `json:"headword"`
	WordClass string     `json:"word_class"`
	Phonetic  string     `json:"phonetic"`
	AudioURL  string     `json:"audio_url"`
	Senses    []apiSense `json:"senses"`
}

// apiSense represents a numbered sense with examples and synonyms.
type apiSense struct {
	Definition string   `json:"definition"`
	Label      string   `json:"label"`
	Examples   []string `json:"examples"`
	Synonyms   []string `json:"synonyms"`
}
