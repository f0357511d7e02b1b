package games

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"catalogohub/pkg/models"
)

type Handler struct {
	Client *Client
	Log    *logrus.Logger
}

func NewHandler(client *Client, log *logrus.Logger) *Handler {
	return &Handler{Client: client, Log: log}
}

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/search", h.search)
	rg.GET("/recent", h.recent)
	rg.GET("/popular", h.popular)
	rg.GET("/:id", h.details)
}

func (h *Handler) search(c *gin.Context) {
	query := strings.TrimSpace(c.Query("query"))
	if query == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "query required"})
		return
	}

	page := parseInt(c.Query("page"), 1)

	items, err := h.Client.Search(c.Request.Context(), query, page)
	if err != nil {
		h.upstreamError(c, err)
		return
	}
	c.JSON(http.StatusOK, items)
}

func (h *Handler) details(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return
	}

	item, err := h.Client.Details(c.Request.Context(), id)
	if err != nil {
		h.upstreamError(c, err)
		return
	}
	if item == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "not found"})
		return
	}
	c.JSON(http.StatusOK, item)
}

func (h *Handler) recent(c *gin.Context) {
	limit := parseInt(c.Query("limit"), 5)
	includeAdult := c.Query("includeAdult") == "true"

	items, err := h.Client.Recent(c.Request.Context(), limit)
	if err != nil {
		h.upstreamError(c, err)
		return
	}
	c.JSON(http.StatusOK, filterAdult(items, includeAdult))
}

func (h *Handler) popular(c *gin.Context) {
	page := parseInt(c.Query("page"), 1)
	pageSize := parseInt(c.Query("pageSize"), 20)
	includeAdult := c.Query("includeAdult") == "true"

	items, err := h.Client.Popular(c.Request.Context(), page, pageSize)
	if err != nil {
		h.upstreamError(c, err)
		return
	}
	c.JSON(http.StatusOK, filterAdult(items, includeAdult))
}

// filterAdult drops adult-flagged items unless the caller opted in.
func filterAdult(items []models.CatalogItem, includeAdult bool) []models.CatalogItem {
	if includeAdult {
		return items
	}
	out := make([]models.CatalogItem, 0, len(items))
	for _, it := range items {
		if !it.IsAdultContent {
			out = append(out, it)
		}
	}
	return out
}

func (h *Handler) upstreamError(c *gin.Context, err error) {
	h.Log.WithError(err).Error("games upstream request failed")
	c.JSON(http.StatusBadGateway, gin.H{"error": "games provider unavailable"})
}

func parseInt(s string, def int) int {
	s = strings.TrimSpace(s)
	if s == "" {
		return def
	}
	n, err := strconv.Atoi(s)
	if err != nil || n <= 0 {
		return def
	}
	return n
}
