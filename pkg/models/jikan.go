package models

// Raw response shapes for the Jikan v4 API. Decoded as-is and mapped into
// CatalogItem by the catalog package.

type JikanSearchResponse struct {
	Data       []JikanAnime    `json:"data"`
	Pagination JikanPagination `json:"pagination"`
}

type JikanAnimeResponse struct {
	Data JikanAnime `json:"data"`
}

type JikanAnime struct {
	MalID         int          `json:"mal_id"`
	Title         string       `json:"title"`
	TitleEnglish  string       `json:"title_english"`
	TitleJapanese string       `json:"title_japanese"`
	Synopsis      string       `json:"synopsis"`
	Images        JikanImages  `json:"images"`
	Score         *float64     `json:"score"`
	Type          string       `json:"type"`
	Episodes      *int         `json:"episodes"`
	Status        string       `json:"status"`
	Rating        string       `json:"rating"`
	Genres        []JikanGenre `json:"genres"`
}

type JikanImages struct {
	JPG  JikanImageFormat `json:"jpg"`
	WebP JikanImageFormat `json:"webp"`
}

type JikanImageFormat struct {
	ImageURL      string `json:"image_url"`
	SmallImageURL string `json:"small_image_url"`
	LargeImageURL string `json:"large_image_url"`
}

type JikanGenre struct {
	Name string `json:"name"`
}

type JikanPagination struct {
	HasNextPage bool `json:"has_next_page"`
}

type JikanRecommendationsResponse struct {
	Data []JikanRecommendation `json:"data"`
}

type JikanRecommendation struct {
	Entries []JikanRecommendationEntry `json:"entry"`
}

type JikanRecommendationEntry struct {
	MalID  int         `json:"mal_id"`
	Title  string      `json:"title"`
	Images JikanImages `json:"images"`
}
