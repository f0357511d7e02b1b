package games

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"catalogohub/pkg/models"
)

func newTestRouter(t *testing.T, upstream http.HandlerFunc) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	client := newTestClient(t, upstream)
	handler := NewHandler(client, logrus.New())

	router := gin.New()
	handler.RegisterRoutes(router.Group("/games"))
	return router
}

func listGames(t *testing.T, router *gin.Engine, path string) []models.CatalogItem {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, path, nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("%s: expected 200, got %d: %s", path, w.Code, w.Body.String())
	}
	var items []models.CatalogItem
	if err := json.Unmarshal(w.Body.Bytes(), &items); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	return items
}

func TestPopularHidesAdultByDefault(t *testing.T) {
	router := newTestRouter(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(popularPayload))
	})

	// Mature-rated GTA is dropped, Everyone-rated Witcher stays
	items := listGames(t, router, "/games/popular")
	if len(items) != 1 {
		t.Fatalf("expected 1 item after filtering, got %d", len(items))
	}
	if items[0].ExternalID != "3328" {
		t.Fatalf("expected only the clean game, got %#v", items[0])
	}

	items = listGames(t, router, "/games/popular?includeAdult=true")
	if len(items) != 2 {
		t.Fatalf("expected both items with includeAdult, got %d", len(items))
	}
	if !items[0].IsAdultContent {
		t.Fatal("adult flag must survive the opt-in path")
	}
}

func TestRecentHidesAdultByDefault(t *testing.T) {
	router := newTestRouter(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(popularPayload))
	})

	items := listGames(t, router, "/games/recent")
	if len(items) != 1 || items[0].IsAdultContent {
		t.Fatalf("expected adult items filtered out, got %#v", items)
	}

	items = listGames(t, router, "/games/recent?includeAdult=true")
	if len(items) != 2 {
		t.Fatalf("expected both items with includeAdult, got %d", len(items))
	}
}

func TestSearchRequiresQuery(t *testing.T) {
	router := newTestRouter(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"results": []}`))
	})

	req := httptest.NewRequest(http.MethodGet, "/games/search", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 without query, got %d", w.Code)
	}
}

func TestUpstreamFailureMapsToBadGateway(t *testing.T) {
	router := newTestRouter(t, func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "boom", http.StatusInternalServerError)
	})

	req := httptest.NewRequest(http.MethodGet, "/games/popular", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusBadGateway {
		t.Fatalf("expected 502, got %d", w.Code)
	}
}
