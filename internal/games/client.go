package games

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

const (
	defaultTimeout = 30 * time.Second
	recentWindow   = 6 * 30 * 24 * time.Hour // roughly six months
)

// Client talks to the RAWG API and returns normalized catalog items.
type Client struct {
	baseURL    string
	apiKey     string
	httpClient *http.Client
	logger     *logrus.Logger
}

func NewClient(baseURL, apiKey string, logger *logrus.Logger) *Client {
	if logger == nil {
		logger = logrus.New()
	}
	return &Client{
		baseURL: baseURL,
		apiKey:  apiKey,
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

func (c *Client) Search(ctx context.Context, query string, page int) ([]models.CatalogItem, error) {
	params := c.params()
	params.Set("search", query)
	params.Set("page", strconv.Itoa(page))

	return c.list(ctx, "/games?"+params.Encode(), catalog.SearchSynopsisLimit)
}

// Details returns the full record for one game, or nil when the upstream
// does not know the id.
func (c *Client) Details(ctx context.Context, id int) (*models.CatalogItem, error) {
	params := c.params()

	var raw models.RawgGame
	err := c.get(ctx, fmt.Sprintf("/games/%d?%s", id, params.Encode()), &raw)
	if err != nil {
		if err == errUpstreamNotFound {
			return nil, nil
		}
		return nil, err
	}

	item := catalog.NormalizeGame(raw, 0)
	return &item, nil
}

// Recent lists games released within the last six months, newest and
// best-rated first.
func (c *Client) Recent(ctx context.Context, limit int) ([]models.CatalogItem, error) {
	now := time.Now()
	from := now.Add(-recentWindow).Format("2006-01-02")
	to := now.Format("2006-01-02")

	params := c.params()
	params.Set("dates", from+","+to)
	params.Set("ordering", "-released,-rating")
	params.Set("page_size", strconv.Itoa(limit))

	return c.list(ctx, "/games?"+params.Encode(), catalog.PopularSynopsisLimit)
}

func (c *Client) Popular(ctx context.Context, page, pageSize int) ([]models.CatalogItem, error) {
	params := c.params()
	params.Set("ordering", "-rating")
	params.Set("page", strconv.Itoa(page))
	params.Set("page_size", strconv.Itoa(pageSize))

	return c.list(ctx, "/games?"+params.Encode(), catalog.PopularSynopsisLimit)
}

func (c *Client) list(ctx context.Context, path string, descriptionLimit int) ([]models.CatalogItem, error) {
	var raw models.RawgSearchResponse
	if err := c.get(ctx, path, &raw); err != nil {
		return nil, err
	}

	items := make([]models.CatalogItem, 0, len(raw.Results))
	for _, g := range raw.Results {
		items = append(items, catalog.NormalizeGame(g, descriptionLimit))
	}
	return items, nil
}

func (c *Client) params() url.Values {
	params := url.Values{}
	if c.apiKey != "" {
		params.Set("key", c.apiKey)
	}
	return params
}

var errUpstreamNotFound = fmt.Errorf("upstream not found")

func (c *Client) get(ctx context.Context, path string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return fmt.Errorf("build rawg request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.logger.WithError(err).Warn("rawg request failed")
		return fmt.Errorf("rawg request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return errUpstreamNotFound
	}
	if resp.StatusCode != http.StatusOK {
		c.logger.WithField("status", resp.StatusCode).Warn("rawg returned non-OK status")
		return fmt.Errorf("rawg status %d", resp.StatusCode)
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode rawg response: %w", err)
	}
	return nil
}
