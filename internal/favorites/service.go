package favorites

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"strings"
	"unicode/utf8"

	"github.com/google/uuid"

	"catalogohub/pkg/models"
)

// ErrNotFound covers both a missing favorite and one owned by another
// user. The two cases are deliberately indistinguishable to callers.
var ErrNotFound = errors.New("favorite not found")

type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Reason)
}

// Service enforces validation and ownership scoping over the favorites
// store.
type Service struct {
	Repo *Repo
}

func NewService(repo *Repo) *Service {
	return &Service{Repo: repo}
}

type CreateFavoriteInput struct {
	ExternalID string `json:"externalId"`
	Kind       string `json:"type"`
	Title      string `json:"title"`
	ImageURL   string `json:"imageUrl"`
}

// Create validates the input and persists a favorite owned by ownerID.
// The owner always comes from the authenticated identity; any owner field
// a client sends in the body never reaches this point.
func (s *Service) Create(ctx context.Context, ownerID string, in CreateFavoriteInput) (*models.Favorite, error) {
	if ownerID == "" {
		return nil, errors.New("create favorite: missing owner")
	}

	kind, ok := models.ParseKind(in.Kind)
	if !ok {
		return nil, &ValidationError{Field: "type", Reason: "must be Game or Anime"}
	}

	externalID := strings.TrimSpace(in.ExternalID)
	if externalID == "" {
		return nil, &ValidationError{Field: "externalId", Reason: "required"}
	}

	title := strings.TrimSpace(in.Title)
	if title == "" || utf8.RuneCountInString(title) > 200 {
		return nil, &ValidationError{Field: "title", Reason: "must be 1-200 chars"}
	}

	if !validImageURL(in.ImageURL) {
		return nil, &ValidationError{Field: "imageUrl", Reason: "must be a valid http(s) URL"}
	}

	f := models.Favorite{
		ID:         uuid.NewString(),
		OwnerID:    ownerID,
		ExternalID: externalID,
		Kind:       kind,
		Title:      title,
		ImageURL:   in.ImageURL,
	}

	if err := s.Repo.Insert(ctx, &f); err != nil {
		return nil, err
	}
	return &f, nil
}

// List returns all favorites owned by ownerID, newest first.
func (s *Service) List(ctx context.Context, ownerID string) ([]models.Favorite, error) {
	return s.Repo.ListByOwner(ctx, ownerID, "")
}

// ListByKind filters additionally by kind.
func (s *Service) ListByKind(ctx context.Context, ownerID, kind string) ([]models.Favorite, error) {
	k, ok := models.ParseKind(kind)
	if !ok {
		return nil, &ValidationError{Field: "kind", Reason: "must be Game or Anime"}
	}
	return s.Repo.ListByOwner(ctx, ownerID, k)
}

// Delete removes the favorite when it exists and belongs to ownerID;
// otherwise ErrNotFound.
func (s *Service) Delete(ctx context.Context, ownerID, id string) error {
	ok, err := s.Repo.Delete(ctx, ownerID, id)
	if err != nil {
		return err
	}
	if !ok {
		return ErrNotFound
	}
	return nil
}

// BuildSummary aggregates the owner's current favorites for the report.
func (s *Service) BuildSummary(ctx context.Context, ownerID string) (models.FavoritesSummary, []models.Favorite, error) {
	items, err := s.Repo.ListByOwner(ctx, ownerID, "")
	if err != nil {
		return models.FavoritesSummary{}, nil, err
	}

	sum := models.FavoritesSummary{TotalItems: len(items)}
	for i := range items {
		switch items[i].Kind {
		case models.KindGame:
			sum.GamesCount++
		case models.KindAnime:
			sum.AnimesCount++
		}

		t := items[i].CreatedAt
		if sum.OldestItem == nil || t.Before(*sum.OldestItem) {
			tt := t
			sum.OldestItem = &tt
		}
		if sum.NewestItem == nil || t.After(*sum.NewestItem) {
			tt := t
			sum.NewestItem = &tt
		}
	}

	return sum, items, nil
}

func validImageURL(raw string) bool {
	u, err := url.Parse(raw)
	if err != nil {
		return false
	}
	return (u.Scheme == "http" || u.Scheme == "https") && u.Host != ""
}
