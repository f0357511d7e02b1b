package favorites

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"catalogohub/pkg/models"
)

type Repo struct {
	DB *sql.DB
}

func NewRepo(db *sql.DB) *Repo {
	return &Repo{DB: db}
}

// Insert persists a new favorite. CreatedAt is assigned here, not by the
// caller.
func (r *Repo) Insert(ctx context.Context, f *models.Favorite) error {
	f.CreatedAt = time.Now().UTC()

	_, err := r.DB.ExecContext(ctx, `
		INSERT INTO user_favorites (id, user_id, external_id, kind, title, image_url, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)
	`, f.ID, f.OwnerID, f.ExternalID, f.Kind, f.Title, f.ImageURL, f.CreatedAt)
	if err != nil {
		return fmt.Errorf("insert favorite: %w", err)
	}
	return nil
}

// ListByOwner returns the owner's favorites, newest first. An empty kind
// returns all kinds.
func (r *Repo) ListByOwner(ctx context.Context, ownerID string, kind models.Kind) ([]models.Favorite, error) {
	var rows *sql.Rows
	var err error

	if kind == "" {
		rows, err = r.DB.QueryContext(ctx, `
			SELECT id, user_id, external_id, kind, title, image_url, created_at
			FROM user_favorites
			WHERE user_id = ?
			ORDER BY created_at DESC
		`, ownerID)
	} else {
		rows, err = r.DB.QueryContext(ctx, `
			SELECT id, user_id, external_id, kind, title, image_url, created_at
			FROM user_favorites
			WHERE user_id = ? AND kind = ?
			ORDER BY created_at DESC
		`, ownerID, kind)
	}

	if err != nil {
		return nil, fmt.Errorf("list favorites: %w", err)
	}
	defer rows.Close()

	out := make([]models.Favorite, 0)
	for rows.Next() {
		var f models.Favorite
		if err := rows.Scan(&f.ID, &f.OwnerID, &f.ExternalID, &f.Kind, &f.Title, &f.ImageURL, &f.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan favorite row: %w", err)
		}
		out = append(out, f)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows err: %w", err)
	}

	return out, nil
}

// Delete removes the favorite only when it belongs to ownerID. Returns
// false both for a missing id and for someone else's row.
func (r *Repo) Delete(ctx context.Context, ownerID, id string) (bool, error) {
	res, err := r.DB.ExecContext(ctx, `
		DELETE FROM user_favorites
		WHERE id = ? AND user_id = ?
	`, id, ownerID)
	if err != nil {
		return false, fmt.Errorf("delete favorite: %w", err)
	}
	n, _ := res.RowsAffected()
	return n > 0, nil
}
