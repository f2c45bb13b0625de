package pexels

// searchResponse is the Pexels /v1/search payload.
type searchResponse struct {
	TotalResults int        `json:"total_results"`
	Photos       []apiPhoto `json:"photos"`
}

type apiPhoto struct {
	ID           int    `json:"id"`
	Photographer string `json:"photographer"`
	Alt          string `json:"alt"`
	Src          struct {
		Large string `json:"large"`
		Tiny  string `json:"tiny"`
	} `json:"src"`
}
