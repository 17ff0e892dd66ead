package store

import (
	"context"
	"sort"
	"sync"

	"reflectr/internal/models"
)

// MemoryStore is an in-memory DataStore used in tests and wherever no
// database file is wanted. It honors the same ordering and upsert
// semantics as the SQLite implementation.
type MemoryStore struct {
	mu     sync.RWMutex
	trades map[string]models.Trade
	user   *models.User
}

// NewMemoryStore creates an empty in-memory store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		trades: make(map[string]models.Trade),
	}
}

// SaveTrade upserts a trade by id.
func (m *MemoryStore) SaveTrade(ctx context.Context, trade *models.Trade) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.trades[trade.ID] = *trade.Clone()
	return nil
}

// GetTrades returns the user's trades, most recent first, id descending
// on equal timestamps.
func (m *MemoryStore) GetTrades(ctx context.Context, userID string) ([]models.Trade, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	var trades []models.Trade
	for _, t := range m.trades {
		if t.UserID == userID {
			trades = append(trades, *t.Clone())
		}
	}

	sort.Slice(trades, func(i, j int) bool {
		if !trades[i].Timestamp.Equal(trades[j].Timestamp) {
			return trades[i].Timestamp.After(trades[j].Timestamp)
		}
		return trades[i].ID > trades[j].ID
	})

	return trades, nil
}

// DeleteTrade removes a trade; missing ids are a no-op.
func (m *MemoryStore) DeleteTrade(ctx context.Context, id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.trades, id)
	return nil
}

// SaveUser stores the current user.
func (m *MemoryStore) SaveUser(ctx context.Context, user *models.User) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	u := *user
	m.user = &u
	return nil
}

// GetUser returns the current user, or nil when logged out.
func (m *MemoryStore) GetUser(ctx context.Context) (*models.User, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if m.user == nil {
		return nil, nil
	}
	u := *m.user
	return &u, nil
}

// DeleteUser clears the current user.
func (m *MemoryStore) DeleteUser(ctx context.Context) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.user = nil
	return nil
}

// Close is a no-op for the in-memory store.
func (m *MemoryStore) Close() error {
	return nil
}
