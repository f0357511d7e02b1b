package catalog

import (
	"strconv"
	"unicode/utf8"

	"catalogohub/pkg/models"
)

// Synopsis truncation thresholds. Zero disables truncation (details path).
const (
	SearchSynopsisLimit  = 500
	PopularSynopsisLimit = 300
)

const noSynopsis = "Sem sinopse disponível"

// NormalizeAnime maps one raw Jikan record into the public catalog shape,
// classifying adult content from the untruncated source fields.
func NormalizeAnime(a models.JikanAnime, synopsisLimit int) models.CatalogItem {
	genres := make([]string, 0, len(a.Genres))
	for _, g := range a.Genres {
		genres = append(genres, g.Name)
	}

	class := Classify(Record{
		Kind:      models.KindAnime,
		Title:     a.Title,
		Synopsis:  a.Synopsis,
		AgeRating: a.Rating,
		Genres:    genres,
	})

	titleEnglish := a.TitleEnglish
	if titleEnglish == "" {
		titleEnglish = a.Title
	}
	titleJapanese := a.TitleJapanese
	if titleJapanese == "" {
		titleJapanese = a.Title
	}

	episodes := 0
	if a.Episodes != nil {
		episodes = *a.Episodes
	}

	return models.CatalogItem{
		ExternalID:      strconv.Itoa(a.MalID),
		Kind:            models.KindAnime,
		Title:           a.Title,
		TitleEnglish:    titleEnglish,
		TitleJapanese:   titleJapanese,
		Synopsis:        normalizeSynopsis(a.Synopsis, synopsisLimit),
		ImageURL:        animeImageURL(a.Images),
		Rating:          a.Score,
		Genres:          genres,
		Episodes:        episodes,
		Status:          a.Status,
		AgeRating:       a.Rating,
		IsAdultContent:  class.IsAdultContent,
		ContentWarnings: class.ContentWarnings,
	}
}

// NormalizeGame maps one raw RAWG record into the public catalog shape.
func NormalizeGame(g models.RawgGame, descriptionLimit int) models.CatalogItem {
	genres := make([]string, 0, len(g.Genres))
	for _, gr := range g.Genres {
		genres = append(genres, gr.Name)
	}

	platforms := make([]string, 0, len(g.Platforms))
	for _, p := range g.Platforms {
		platforms = append(platforms, p.Platform.Name)
	}

	esrb := ""
	if g.EsrbRating != nil {
		esrb = g.EsrbRating.Name
	}

	class := Classify(Record{
		Kind:      models.KindGame,
		Title:     g.Name,
		Synopsis:  g.DescriptionRaw,
		AgeRating: esrb,
		Genres:    genres,
	})

	return models.CatalogItem{
		ExternalID:      strconv.Itoa(g.ID),
		Kind:            models.KindGame,
		Title:           g.Name,
		Synopsis:        normalizeSynopsis(g.DescriptionRaw, descriptionLimit),
		ImageURL:        g.BackgroundImage,
		Rating:          g.Rating,
		Genres:          genres,
		Platforms:       platforms,
		Released:        g.Released,
		EsrbRating:      esrb,
		IsAdultContent:  class.IsAdultContent,
		ContentWarnings: class.ContentWarnings,
	}
}

// NormalizeRecommendation flattens one recommendations-feed entry.
func NormalizeRecommendation(e models.JikanRecommendationEntry) models.AnimeRecommendation {
	return models.AnimeRecommendation{
		ExternalID:          strconv.Itoa(e.MalID),
		Title:               e.Title,
		ImageURL:            recommendationImageURL(e.Images),
		RecommendationCount: 1,
	}
}

// normalizeSynopsis truncates on rune boundaries so a cut never leaves
// an invalid UTF-8 tail in the response.
func normalizeSynopsis(s string, limit int) string {
	if s == "" {
		return noSynopsis
	}
	if limit > 0 && utf8.RuneCountInString(s) > limit {
		return string([]rune(s)[:limit]) + "..."
	}
	return s
}

// animeImageURL prefers the jpg image, then the webp variants.
func animeImageURL(img models.JikanImages) string {
	if img.JPG.ImageURL != "" {
		return img.JPG.ImageURL
	}
	if img.WebP.LargeImageURL != "" {
		return img.WebP.LargeImageURL
	}
	return img.WebP.ImageURL
}

func recommendationImageURL(img models.JikanImages) string {
	if img.JPG.ImageURL != "" {
		return img.JPG.ImageURL
	}
	return img.WebP.ImageURL
}
