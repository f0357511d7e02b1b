package favorites

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"catalogohub/pkg/database"
	"catalogohub/pkg/models"
)

func newTestService(t *testing.T) (*Service, *sql.DB) {
	t.Helper()

	db, err := database.Open(database.Config{Path: filepath.Join(t.TempDir(), "test.db")})
	if err != nil {
		t.Fatalf("open test db: %v", err)
	}
	t.Cleanup(func() { db.Close() })

	if err := database.Migrate(db); err != nil {
		t.Fatalf("migrate test db: %v", err)
	}
	return NewService(NewRepo(db)), db
}

func createUser(t *testing.T, db *sql.DB, id string) {
	t.Helper()
	_, err := db.Exec(`INSERT INTO users (id, email, password_hash) VALUES (?, ?, ?)`,
		id, id+"@example.com", "x")
	if err != nil {
		t.Fatalf("insert user %s: %v", id, err)
	}
}

func validInput() CreateFavoriteInput {
	return CreateFavoriteInput{
		ExternalID: "20",
		Kind:       "Anime",
		Title:      "Naruto",
		ImageURL:   "https://example.com/x.jpg",
	}
}

func TestCreateThenListRoundTrip(t *testing.T) {
	svc, db := newTestService(t)
	createUser(t, db, "user-a")
	ctx := context.Background()

	before := time.Now().UTC().Add(-time.Second)

	created, err := svc.Create(ctx, "user-a", validInput())
	if err != nil {
		t.Fatalf("create returned error: %v", err)
	}
	if created.ID == "" {
		t.Fatal("expected created favorite to have an id")
	}
	if created.OwnerID != "user-a" {
		t.Fatalf("expected owner user-a, got %q", created.OwnerID)
	}
	if created.CreatedAt.Before(before) {
		t.Fatalf("createdAt %v is before creation time", created.CreatedAt)
	}

	items, err := svc.List(ctx, "user-a")
	if err != nil {
		t.Fatalf("list returned error: %v", err)
	}
	if len(items) != 1 {
		t.Fatalf("expected exactly one favorite, got %d", len(items))
	}
	got := items[0]
	if got.ID != created.ID || got.ExternalID != "20" || got.Kind != models.KindAnime || got.Title != "Naruto" {
		t.Fatalf("round-tripped favorite does not match: %#v", got)
	}
	if got.CreatedAt.IsZero() {
		t.Fatal("expected non-zero createdAt after scan")
	}
}

func TestCreateValidation(t *testing.T) {
	svc, db := newTestService(t)
	createUser(t, db, "user-a")
	ctx := context.Background()

	longTitle := ""
	for i := 0; i < 201; i++ {
		longTitle += "x"
	}

	cases := []struct {
		name   string
		mutate func(*CreateFavoriteInput)
	}{
		{"bad kind", func(in *CreateFavoriteInput) { in.Kind = "Movie" }},
		{"empty kind", func(in *CreateFavoriteInput) { in.Kind = "" }},
		{"empty external id", func(in *CreateFavoriteInput) { in.ExternalID = "  " }},
		{"empty title", func(in *CreateFavoriteInput) { in.Title = "" }},
		{"title too long", func(in *CreateFavoriteInput) { in.Title = longTitle }},
		{"relative image url", func(in *CreateFavoriteInput) { in.ImageURL = "/x.jpg" }},
		{"non-http scheme", func(in *CreateFavoriteInput) { in.ImageURL = "ftp://example.com/x.jpg" }},
		{"garbage image url", func(in *CreateFavoriteInput) { in.ImageURL = "://" }},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			in := validInput()
			tc.mutate(&in)

			_, err := svc.Create(ctx, "user-a", in)
			var verr *ValidationError
			if !errors.As(err, &verr) {
				t.Fatalf("expected validation error, got %v", err)
			}
		})
	}
}

func TestCreateTitleLengthCountsRunes(t *testing.T) {
	svc, db := newTestService(t)
	createUser(t, db, "user-a")
	ctx := context.Background()

	// 150 chars but 300 bytes; must pass the 200-char limit
	in := validInput()
	in.Title = strings.Repeat("é", 150)
	if _, err := svc.Create(ctx, "user-a", in); err != nil {
		t.Fatalf("150-char title rejected: %v", err)
	}

	in = validInput()
	in.Title = strings.Repeat("é", 201)
	_, err := svc.Create(ctx, "user-a", in)
	var verr *ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("expected validation error for 201-char title, got %v", err)
	}
}

func TestOwnershipIsolation(t *testing.T) {
	svc, db := newTestService(t)
	createUser(t, db, "user-a")
	createUser(t, db, "user-b")
	ctx := context.Background()

	if _, err := svc.Create(ctx, "user-a", validInput()); err != nil {
		t.Fatalf("create: %v", err)
	}

	items, err := svc.List(ctx, "user-b")
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(items) != 0 {
		t.Fatalf("user-b must not see user-a favorites, got %d", len(items))
	}
}

func TestListOrderedNewestFirst(t *testing.T) {
	svc, db := newTestService(t)
	createUser(t, db, "user-a")
	ctx := context.Background()

	titles := []string{"First", "Second", "Third"}
	for _, title := range titles {
		in := validInput()
		in.Title = title
		if _, err := svc.Create(ctx, "user-a", in); err != nil {
			t.Fatalf("create %s: %v", title, err)
		}
		time.Sleep(5 * time.Millisecond)
	}

	items, err := svc.List(ctx, "user-a")
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(items) != 3 {
		t.Fatalf("expected 3 favorites, got %d", len(items))
	}
	if items[0].Title != "Third" || items[2].Title != "First" {
		t.Fatalf("expected newest first, got %q..%q", items[0].Title, items[2].Title)
	}
}

func TestListByKind(t *testing.T) {
	svc, db := newTestService(t)
	createUser(t, db, "user-a")
	ctx := context.Background()

	game := validInput()
	game.Kind = "Game"
	game.Title = "Celeste"
	if _, err := svc.Create(ctx, "user-a", game); err != nil {
		t.Fatalf("create game: %v", err)
	}
	if _, err := svc.Create(ctx, "user-a", validInput()); err != nil {
		t.Fatalf("create anime: %v", err)
	}

	games, err := svc.ListByKind(ctx, "user-a", "game")
	if err != nil {
		t.Fatalf("list by kind: %v", err)
	}
	if len(games) != 1 || games[0].Kind != models.KindGame {
		t.Fatalf("expected one game, got %#v", games)
	}

	if _, err := svc.ListByKind(ctx, "user-a", "movie"); err == nil {
		t.Fatal("expected validation error for unknown kind")
	}
}

func TestDeleteNotFoundIsUniform(t *testing.T) {
	svc, db := newTestService(t)
	createUser(t, db, "user-a")
	createUser(t, db, "user-b")
	ctx := context.Background()

	created, err := svc.Create(ctx, "user-a", validInput())
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	// deleting someone else's favorite looks exactly like a missing id
	if err := svc.Delete(ctx, "user-b", created.ID); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound for foreign favorite, got %v", err)
	}
	if err := svc.Delete(ctx, "user-a", "no-such-id"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound for missing id, got %v", err)
	}

	// the owner can delete it
	if err := svc.Delete(ctx, "user-a", created.ID); err != nil {
		t.Fatalf("owner delete failed: %v", err)
	}
	items, _ := svc.List(ctx, "user-a")
	if len(items) != 0 {
		t.Fatalf("expected empty list after delete, got %d", len(items))
	}
}

func TestBuildSummary(t *testing.T) {
	svc, db := newTestService(t)
	createUser(t, db, "user-a")
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		in := validInput()
		in.Kind = "Game"
		in.Title = fmt.Sprintf("Game %d", i)
		if _, err := svc.Create(ctx, "user-a", in); err != nil {
			t.Fatalf("create game: %v", err)
		}
		time.Sleep(2 * time.Millisecond)
	}
	for i := 0; i < 2; i++ {
		in := validInput()
		in.Title = fmt.Sprintf("Anime %d", i)
		if _, err := svc.Create(ctx, "user-a", in); err != nil {
			t.Fatalf("create anime: %v", err)
		}
		time.Sleep(2 * time.Millisecond)
	}

	sum, items, err := svc.BuildSummary(ctx, "user-a")
	if err != nil {
		t.Fatalf("summary: %v", err)
	}
	if sum.TotalItems != 5 || sum.GamesCount != 3 || sum.AnimesCount != 2 {
		t.Fatalf("unexpected counts: %+v", sum)
	}
	if len(items) != 5 {
		t.Fatalf("expected 5 items alongside summary, got %d", len(items))
	}
	if sum.OldestItem == nil || sum.NewestItem == nil {
		t.Fatal("expected oldest/newest to be set")
	}

	var min, max time.Time
	for i, it := range items {
		if i == 0 || it.CreatedAt.Before(min) {
			min = it.CreatedAt
		}
		if i == 0 || it.CreatedAt.After(max) {
			max = it.CreatedAt
		}
	}
	if !sum.OldestItem.Equal(min) || !sum.NewestItem.Equal(max) {
		t.Fatalf("summary range %v..%v does not match items %v..%v",
			sum.OldestItem, sum.NewestItem, min, max)
	}
}

func TestBuildSummaryEmpty(t *testing.T) {
	svc, db := newTestService(t)
	createUser(t, db, "user-a")

	sum, items, err := svc.BuildSummary(context.Background(), "user-a")
	if err != nil {
		t.Fatalf("summary: %v", err)
	}
	if sum.TotalItems != 0 || sum.OldestItem != nil || sum.NewestItem != nil {
		t.Fatalf("expected empty summary, got %+v", sum)
	}
	if len(items) != 0 {
		t.Fatalf("expected no items, got %d", len(items))
	}
}
