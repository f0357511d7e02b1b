package models

import "strings"

// Kind discriminates catalog items and favorites.
type Kind string

const (
	KindGame  Kind = "Game"
	KindAnime Kind = "Anime"
)

// ParseKind normalizes user-supplied kind strings ("game", "Anime", ...)
// to the canonical form. Returns false for anything else.
func ParseKind(s string) (Kind, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "game":
		return KindGame, true
	case "anime":
		return KindAnime, true
	default:
		return "", false
	}
}

// CatalogItem is the normalized, public form of an upstream game or anime
// record. It is never persisted; adult-content fields are derived
// deterministically from the same upstream record on every request.
type CatalogItem struct {
	ExternalID    string   `json:"externalId"`
	Kind          Kind     `json:"kind"`
	Title         string   `json:"title"`
	TitleEnglish  string   `json:"titleEnglish,omitempty"`
	TitleJapanese string   `json:"titleJapanese,omitempty"`
	Synopsis      string   `json:"synopsis,omitempty"`
	ImageURL      string   `json:"imageUrl"`
	Rating        *float64 `json:"rating"`
	Genres        []string `json:"genres"`

	// anime-specific
	Episodes  int    `json:"episodes,omitempty"`
	Status    string `json:"status,omitempty"`
	AgeRating string `json:"ageRating,omitempty"`

	// game-specific
	Platforms  []string `json:"platforms,omitempty"`
	Released   string   `json:"released,omitempty"`
	EsrbRating string   `json:"esrbRating,omitempty"`

	IsAdultContent  bool     `json:"isAdultContent"`
	ContentWarnings []string `json:"contentWarnings"`
}

// AnimeRecommendation is a flattened entry from the upstream
// recommendations feed.
type AnimeRecommendation struct {
	ExternalID          string `json:"externalId"`
	Title               string `json:"title"`
	ImageURL            string `json:"imageUrl"`
	RecommendationCount int    `json:"recommendationCount"`
}
