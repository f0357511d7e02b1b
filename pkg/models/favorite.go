package models

import "time"

// Favorite is a catalog item pinned by a user. Rows are immutable once
// created; the only mutation is deletion.
type Favorite struct {
	ID         string    `json:"id"`
	OwnerID    string    `json:"userId"`
	ExternalID string    `json:"externalId"`
	Kind       Kind      `json:"type"`
	Title      string    `json:"title"`
	ImageURL   string    `json:"imageUrl"`
	CreatedAt  time.Time `json:"createdAt"`
}

// FavoritesSummary aggregates a user's favorites for the PDF report.
// Oldest/Newest are nil when the list is empty.
type FavoritesSummary struct {
	TotalItems  int        `json:"totalItems"`
	GamesCount  int        `json:"gamesCount"`
	AnimesCount int        `json:"animesCount"`
	OldestItem  *time.Time `json:"oldestItem"`
	NewestItem  *time.Time `json:"newestItem"`
}
