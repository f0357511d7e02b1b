package animes

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/sirupsen/logrus"

	"catalogohub/internal/catalog"
	"catalogohub/pkg/models"
)

const defaultTimeout = 30 * time.Second

// Client talks to the Jikan v4 API and returns normalized catalog items.
type Client struct {
	baseURL    string
	httpClient *http.Client
	logger     *logrus.Logger
}

func NewClient(baseURL string, logger *logrus.Logger) *Client {
	if logger == nil {
		logger = logrus.New()
	}
	return &Client{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: defaultTimeout,
			Transport: &http.Transport{
				MaxIdleConns:        100,
				MaxIdleConnsPerHost: 10,
				IdleConnTimeout:     90 * time.Second,
			},
		},
		logger: logger,
	}
}

// SearchResult is a page of normalized search hits.
type SearchResult struct {
	Results     []models.CatalogItem `json:"results"`
	HasNextPage bool                 `json:"hasNextPage"`
}

func (c *Client) Search(ctx context.Context, query string, page, limit int) (*SearchResult, error) {
	params := url.Values{}
	params.Set("q", query)
	params.Set("page", strconv.Itoa(page))
	params.Set("limit", strconv.Itoa(limit))

	var raw models.JikanSearchResponse
	if err := c.get(ctx, "/anime?"+params.Encode(), &raw); err != nil {
		return nil, err
	}

	results := make([]models.CatalogItem, 0, len(raw.Data))
	for _, a := range raw.Data {
		results = append(results, catalog.NormalizeAnime(a, catalog.SearchSynopsisLimit))
	}

	return &SearchResult{
		Results:     results,
		HasNextPage: raw.Pagination.HasNextPage,
	}, nil
}

// Details returns the full record for one anime, or nil when the
// upstream does not know the id.
func (c *Client) Details(ctx context.Context, malID int) (*models.CatalogItem, error) {
	var raw models.JikanAnimeResponse
	err := c.get(ctx, fmt.Sprintf("/anime/%d/full", malID), &raw)
	if err != nil {
		if err == errUpstreamNotFound {
			return nil, nil
		}
		return nil, err
	}

	item := catalog.NormalizeAnime(raw.Data, 0)
	return &item, nil
}

func (c *Client) Popular(ctx context.Context, page, limit int) ([]models.CatalogItem, error) {
	params := url.Values{}
	params.Set("page", strconv.Itoa(page))
	params.Set("limit", strconv.Itoa(limit))

	var raw models.JikanSearchResponse
	if err := c.get(ctx, "/top/anime?"+params.Encode(), &raw); err != nil {
		return nil, err
	}

	results := make([]models.CatalogItem, 0, len(raw.Data))
	for _, a := range raw.Data {
		results = append(results, catalog.NormalizeAnime(a, catalog.PopularSynopsisLimit))
	}
	return results, nil
}

func (c *Client) Recommendations(ctx context.Context, limit int) ([]models.AnimeRecommendation, error) {
	var raw models.JikanRecommendationsResponse
	if err := c.get(ctx, fmt.Sprintf("/recommendations/anime?limit=%d", limit), &raw); err != nil {
		return nil, err
	}

	out := make([]models.AnimeRecommendation, 0, limit)
	for _, rec := range raw.Data {
		for _, entry := range rec.Entries {
			out = append(out, catalog.NormalizeRecommendation(entry))
			if len(out) >= limit {
				return out, nil
			}
		}
	}
	return out, nil
}

var errUpstreamNotFound = fmt.Errorf("upstream not found")

func (c *Client) get(ctx context.Context, path string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return fmt.Errorf("build jikan request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.logger.WithError(err).WithField("path", path).Warn("jikan request failed")
		return fmt.Errorf("jikan request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return errUpstreamNotFound
	}
	if resp.StatusCode != http.StatusOK {
		c.logger.WithFields(logrus.Fields{
			"path":   path,
			"status": resp.StatusCode,
		}).Warn("jikan returned non-OK status")
		return fmt.Errorf("jikan status %d", resp.StatusCode)
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode jikan response: %w", err)
	}
	return nil
}
