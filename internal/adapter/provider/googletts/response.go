package googletts

// synthesizeRequest is the text:synthesize request payload.
type synthesizeRequest struct {
	Input struct {
		Text string `json:"text"`
	} `json:"input"`
	Voice struct {
		LanguageCode string `json:"languageCode"`
		SsmlGender   string `json:"ssmlGender"`
	} `json:"voice"`
	AudioConfig struct {
		AudioEncoding string `json:"audioEncoding"`
	} `json:"audioConfig"`
}

// synthesizeResponse carries the base64-encoded audio.
type synthesizeResponse struct {
	AudioContent string `json:"audioContent"`
}
