package genres

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Category groups upstream genre names under a content family. The
// lists are static reference data served to clients building filter UIs.
type Category struct {
	Name        string   `json:"name"`
	Type        string   `json:"type"`
	GameGenres  []string `json:"gameGenres"`
	AnimeGenres []string `json:"animeGenres"`
	Description string   `json:"description"`
	MinimumAge  int      `json:"minimumAge"`
}

var gameCategories = []Category{
	{
		Name:        "sexual content",
		Type:        "adult",
		GameGenres:  []string{"Erotic", "Adult", "Hentai", "NSFW", "Pornographic"},
		AnimeGenres: []string{},
		MinimumAge:  18,
	},
	{
		Name:        "Violence",
		Type:        "violent",
		GameGenres:  []string{"Gore", "Violent", "Horror", "Brutal", "Dark"},
		AnimeGenres: []string{},
		MinimumAge:  18,
	},
	{
		Name:        "Provocative Themes",
		Type:        "provocative",
		GameGenres:  []string{"Provocative", "Controversial", "Taboo"},
		AnimeGenres: []string{},
		MinimumAge:  18,
	},
}

var animeCategories = []Category{
	{
		Name:        "Sexual Content",
		Type:        "adult",
		GameGenres:  []string{},
		AnimeGenres: []string{"Ecchi", "Hentai", "Erotica", "Adult Cast"},
		MinimumAge:  18,
	},
	{
		Name:        "Violence",
		Type:        "violent",
		GameGenres:  []string{},
		AnimeGenres: []string{"Gore", "Horror", "Violence", "Dark Fantasy", "Psychological"},
		MinimumAge:  18,
	},
	{
		Name:        "Mature Themes",
		Type:        "mature",
		GameGenres:  []string{},
		AnimeGenres: []string{"Mature", "Seinen", "Josei", "Drama", "Tragedy"},
		MinimumAge:  18,
	},
}

type Handler struct{}

func NewHandler() *Handler {
	return &Handler{}
}

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/game-categories", h.gameCategories)
	rg.GET("/anime-categories", h.animeCategories)
	rg.GET("/adult-game-genres", h.adultGameGenres)
	rg.GET("/adult-anime-genres", h.adultAnimeGenres)
}

func (h *Handler) gameCategories(c *gin.Context) {
	c.JSON(http.StatusOK, gameCategories)
}

func (h *Handler) animeCategories(c *gin.Context) {
	c.JSON(http.StatusOK, animeCategories)
}

func (h *Handler) adultGameGenres(c *gin.Context) {
	c.JSON(http.StatusOK, adultGenres(gameCategories, func(cat Category) []string {
		return cat.GameGenres
	}))
}

func (h *Handler) adultAnimeGenres(c *gin.Context) {
	c.JSON(http.StatusOK, adultGenres(animeCategories, func(cat Category) []string {
		return cat.AnimeGenres
	}))
}

// adultGenres flattens the genre lists of every "adult" category,
// dropping duplicates while keeping order.
func adultGenres(categories []Category, pick func(Category) []string) []string {
	seen := make(map[string]struct{})
	out := []string{}
	for _, cat := range categories {
		if cat.Type != "adult" {
			continue
		}
		for _, g := range pick(cat) {
			if _, ok := seen[g]; ok {
				continue
			}
			seen[g] = struct{}{}
			out = append(out, g)
		}
	}
	return out
}
