// Package store provides data persistence interfaces and implementations.
package store

import (
	"context"

	"reflectr/internal/models"
)

// DataStore defines the persistence contract for the journal.
//
// GetTrades returns only trades owned by userID, most recent first, with
// ties on timestamp broken by id so the ordering is deterministic.
// SaveTrade is an upsert by id: an existing trade is fully replaced, a new
// one is added. It is the sole mutation primitive for trades. Corrupt or
// missing stored data degrades to empty results on the read path; it never
// fails the caller.
type DataStore interface {
	// Trades
	GetTrades(ctx context.Context, userID string) ([]models.Trade, error)
	SaveTrade(ctx context.Context, trade *models.Trade) error
	DeleteTrade(ctx context.Context, id string) error

	// Current user
	GetUser(ctx context.Context) (*models.User, error)
	SaveUser(ctx context.Context, user *models.User) error
	DeleteUser(ctx context.Context) error

	// Lifecycle
	Close() error
}
