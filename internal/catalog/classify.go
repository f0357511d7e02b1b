package catalog

import (
	"strings"

	"catalogohub/pkg/models"
)

// Classification is the adult-content verdict for one catalog record.
// ContentWarnings is non-empty only when IsAdultContent is true.
type Classification struct {
	IsAdultContent  bool
	ContentWarnings []string
}

// Record is the single normalized shape the classifier operates on.
// AgeRating carries the ESRB rating name for games and the upstream
// rating string for anime. Absent fields stay empty and never match.
type Record struct {
	Kind      models.Kind
	Title     string
	Synopsis  string
	AgeRating string
	Genres    []string
}

// Immutable classification vocabularies.
var (
	adultEsrbRatings  = []string{"Mature", "Adults Only", "Rating Pending"}
	adultGameGenres   = []string{"Adult", "Erotic", "Hentai", "NSFW", "Gore", "Violent", "Horror", "Sexual Content"}
	adultGameKeywords = []string{"BDSM", "Hentai", "Porn", "Sex", "XXX", "Lewd", "18+", "Adult"}

	adultAnimeRatings = []string{"R+", "RX", "R18", "R18+", "17+", "ADULT", "MATURE", "R-17+"}

	adultAnimeGenreKeywords = []string{
		"hentai", "ecchi", "erotic", "adult", "mature",
		"gore", "violence", "sexual", "seinen", "josei",
		"horror", "psychological", "thriller", "demons", "supernatural",
		"vampire", "zombie", "dark fantasy", "tragedy", "dementia",
	}

	adultAnimeThemes = []string{"hentai", "ecchi", "gore", "torture", "rape", "violence", "sex", "porn", "blood", "death"}
)

// Classify decides adult-content status and warnings for a record.
// Pure and deterministic: the same input always yields the same output.
func Classify(rec Record) Classification {
	if rec.Kind == models.KindAnime {
		return classifyAnime(rec)
	}
	return classifyGame(rec)
}

func classifyGame(rec Record) Classification {
	adult := false

	for _, r := range adultEsrbRatings {
		if rec.AgeRating == r {
			adult = true
			break
		}
	}

	if !adult {
		for _, g := range rec.Genres {
			for _, a := range adultGameGenres {
				if strings.EqualFold(g, a) {
					adult = true
					break
				}
			}
			if adult {
				break
			}
		}
	}

	if !adult {
		title := strings.ToLower(rec.Title)
		for _, kw := range adultGameKeywords {
			if strings.Contains(title, strings.ToLower(kw)) {
				adult = true
				break
			}
		}
	}

	if !adult {
		return Classification{ContentWarnings: []string{}}
	}

	warnings := []string{"Adult Content"}
	if rec.AgeRating != "" {
		warnings = append(warnings, "ESRB: "+rec.AgeRating)
	}
	return Classification{IsAdultContent: true, ContentWarnings: warnings}
}

func classifyAnime(rec Record) Classification {
	adult := false
	rating := strings.ToUpper(rec.AgeRating)

	if rating != "" {
		for _, r := range adultAnimeRatings {
			if strings.Contains(rating, r) {
				adult = true
				break
			}
		}
	}

	if !adult {
		for _, g := range rec.Genres {
			name := strings.ToLower(g)
			for _, kw := range adultAnimeGenreKeywords {
				if strings.Contains(name, kw) {
					adult = true
					break
				}
			}
			if adult {
				break
			}
		}
	}

	if !adult {
		title := strings.ToLower(rec.Title)
		synopsis := strings.ToLower(rec.Synopsis)
		for _, theme := range adultAnimeThemes {
			if strings.Contains(title, theme) || strings.Contains(synopsis, theme) {
				adult = true
				break
			}
		}
	}

	if !adult {
		return Classification{ContentWarnings: []string{}}
	}
	return Classification{IsAdultContent: true, ContentWarnings: animeWarnings(rating, rec.Genres)}
}

// animeWarnings enumerates rating-tier and genre-family messages. Items
// flagged only by title/synopsis themes carry no specific warning.
func animeWarnings(rating string, genres []string) []string {
	warnings := []string{}

	if rating != "" {
		switch {
		case strings.Contains(rating, "R+"), strings.Contains(rating, "RX"), strings.Contains(rating, "R18"):
			warnings = append(warnings, "Conteúdo adulto explícito")
		case strings.Contains(rating, "17+"):
			warnings = append(warnings, "Conteúdo para maiores de 17 anos")
		case strings.Contains(rating, "R-17+"):
			warnings = append(warnings, "Conteúdo violento ou sugestivo")
		}
	}

	for _, g := range genres {
		name := strings.ToLower(g)
		switch {
		case strings.Contains(name, "hentai"):
			warnings = append(warnings, "Conteúdo sexual explícito")
		case strings.Contains(name, "ecchi"):
			warnings = append(warnings, "Conteúdo sugestivo/ecchi")
		case strings.Contains(name, "gore"), strings.Contains(name, "violence"):
			warnings = append(warnings, "Violência gráfica")
		case strings.Contains(name, "horror"):
			warnings = append(warnings, "Temas de horror")
		case strings.Contains(name, "psychological"):
			warnings = append(warnings, "Temas psicológicos intensos")
		case strings.Contains(name, "demons"), strings.Contains(name, "supernatural"):
			warnings = append(warnings, "Temas sobrenaturais")
		}
	}

	return dedupe(warnings)
}

func dedupe(in []string) []string {
	seen := make(map[string]struct{}, len(in))
	out := in[:0]
	for _, s := range in {
		if _, ok := seen[s]; ok {
			continue
		}
		seen[s] = struct{}{}
		out = append(out, s)
	}
	return out
}
