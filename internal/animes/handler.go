package animes

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
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
	rg.GET("/popular", h.popular)
	rg.GET("/recommendations", h.recommendations)
	rg.GET("/:id", h.details)
}

func (h *Handler) search(c *gin.Context) {
	query := strings.TrimSpace(c.Query("query"))
	if query == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "query required"})
		return
	}

	page := parseInt(c.Query("page"), 1)
	limit := parseInt(c.Query("limit"), 20)

	result, err := h.Client.Search(c.Request.Context(), query, page, limit)
	if err != nil {
		h.upstreamError(c, err)
		return
	}
	c.JSON(http.StatusOK, result)
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

func (h *Handler) popular(c *gin.Context) {
	page := parseInt(c.Query("page"), 1)
	limit := parseInt(c.Query("limit"), 20)

	items, err := h.Client.Popular(c.Request.Context(), page, limit)
	if err != nil {
		h.upstreamError(c, err)
		return
	}
	c.JSON(http.StatusOK, items)
}

func (h *Handler) recommendations(c *gin.Context) {
	limit := parseInt(c.Query("limit"), 5)

	items, err := h.Client.Recommendations(c.Request.Context(), limit)
	if err != nil {
		h.upstreamError(c, err)
		return
	}
	c.JSON(http.StatusOK, items)
}

// upstreamError hides provider details from the caller; they go to the
// log only.
func (h *Handler) upstreamError(c *gin.Context, err error) {
	h.Log.WithError(err).Error("anime upstream request failed")
	c.JSON(http.StatusBadGateway, gin.H{"error": "anime provider unavailable"})
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
