package models

// Raw response shapes for the RAWG games API.

type RawgSearchResponse struct {
	Results []RawgGame `json:"results"`
}

type RawgGame struct {
	ID              int            `json:"id"`
	Name            string         `json:"name"`
	Released        string         `json:"released"`
	BackgroundImage string         `json:"background_image"`
	Rating          *float64       `json:"rating"`
	DescriptionRaw  string         `json:"description_raw"`
	Platforms       []RawgPlatform `json:"platforms"`
	Genres          []RawgGenre    `json:"genres"`
	EsrbRating      *RawgEsrb      `json:"esrb_rating"`
}

type RawgPlatform struct {
	Platform RawgPlatformInfo `json:"platform"`
}

type RawgPlatformInfo struct {
	Name string `json:"name"`
}

type RawgGenre struct {
	Name string `json:"name"`
}

type RawgEsrb struct {
	Name string `json:"name"`
}
