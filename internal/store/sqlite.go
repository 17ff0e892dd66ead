// Package store provides data persistence implementations.
package store

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	_ "github.com/mattn/go-sqlite3"

	apperrors "reflectr/internal/errors"
	"reflectr/internal/models"
)

// currentUserKey is the fixed logical name under which the single
// current user record is stored.
const currentUserKey = "current"

// SQLiteStore implements DataStore using SQLite.
type SQLiteStore struct {
	db *sql.DB
}

// NewSQLiteStore creates a new SQLite-based data store.
func NewSQLiteStore(dbPath string) (*SQLiteStore, error) {
	db, err := sql.Open("sqlite3", dbPath+"?_journal_mode=WAL&_busy_timeout=5000")
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	db.SetMaxOpenConns(4)
	db.SetMaxIdleConns(2)
	db.SetConnMaxLifetime(time.Hour)

	s := &SQLiteStore{db: db}
	if err := s.initSchema(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to initialize schema: %w", err)
	}

	return s, nil
}

// initSchema creates all required tables and indexes.
func (s *SQLiteStore) initSchema() error {
	schema := `
	-- Journal entries, one row per trade
	CREATE TABLE IF NOT EXISTS trades (
		id TEXT PRIMARY KEY,
		user_id TEXT NOT NULL,
		timestamp DATETIME NOT NULL,
		symbol TEXT NOT NULL,
		emotional_state TEXT NOT NULL,
		impulsiveness INTEGER NOT NULL,
		confidence INTEGER NOT NULL,
		fear INTEGER NOT NULL,
		reason TEXT,
		plan TEXT,
		is_complete INTEGER NOT NULL DEFAULT 0,
		outcome TEXT,
		followed_plan INTEGER,
		tilt INTEGER NOT NULL DEFAULT 0,
		regret INTEGER NOT NULL DEFAULT 0,
		reflection TEXT,
		emotional_shift TEXT,
		created_at DATETIME DEFAULT CURRENT_TIMESTAMP
	);

	-- Single current-user record keyed by a fixed logical name
	CREATE TABLE IF NOT EXISTS users (
		key TEXT PRIMARY KEY,
		id TEXT NOT NULL,
		email TEXT NOT NULL,
		name TEXT,
		is_pro INTEGER NOT NULL DEFAULT 0,
		updated_at DATETIME DEFAULT CURRENT_TIMESTAMP
	);

	CREATE INDEX IF NOT EXISTS idx_trades_user ON trades(user_id);
	CREATE INDEX IF NOT EXISTS idx_trades_timestamp ON trades(timestamp);
	`

	_, err := s.db.Exec(schema)
	return err
}

// Close closes the database connection.
func (s *SQLiteStore) Close() error {
	return s.db.Close()
}

// ============================================================================
// Trade Methods
// ============================================================================

// SaveTrade upserts a trade by id. An existing row is fully replaced.
func (s *SQLiteStore) SaveTrade(ctx context.Context, trade *models.Trade) error {
	var followedPlan sql.NullInt64
	if trade.FollowedPlan != nil {
		followedPlan = sql.NullInt64{Int64: boolToInt(*trade.FollowedPlan), Valid: true}
	}

	_, err := s.db.ExecContext(ctx, `
		INSERT OR REPLACE INTO trades
		(id, user_id, timestamp, symbol, emotional_state, impulsiveness, confidence, fear, reason, plan, is_complete, outcome, followed_plan, tilt, regret, reflection, emotional_shift)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`, trade.ID, trade.UserID, trade.Timestamp.UTC(), trade.Symbol, string(trade.EmotionalState),
		trade.Impulsiveness, trade.Confidence, trade.Fear, trade.Reason, trade.Plan,
		boolToInt(trade.IsComplete), string(trade.OutcomeOrPending()), followedPlan,
		boolToInt(trade.Tilt), boolToInt(trade.Regret), trade.Reflection, trade.EmotionalShift)
	if err != nil {
		return apperrors.NewStorageError("save_trade", trade.ID, err)
	}
	return nil
}

// GetTrades retrieves a user's trades, most recent first. Rows that fail
// to deserialize are skipped rather than failing the read.
func (s *SQLiteStore) GetTrades(ctx context.Context, userID string) ([]models.Trade, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, user_id, timestamp, symbol, emotional_state, impulsiveness, confidence, fear, reason, plan, is_complete, outcome, followed_plan, tilt, regret, reflection, emotional_shift
		FROM trades
		WHERE user_id = ?
		ORDER BY timestamp DESC, id DESC
	`, userID)
	if err != nil {
		return nil, apperrors.NewStorageError("get_trades", userID, err)
	}
	defer rows.Close()

	var trades []models.Trade
	for rows.Next() {
		t, err := scanTrade(rows)
		if err != nil {
			// Corrupt row: degrade to "no data" for this entry.
			continue
		}
		trades = append(trades, *t)
	}

	return trades, rows.Err()
}

// DeleteTrade removes the trade with the given id; missing ids are a no-op.
func (s *SQLiteStore) DeleteTrade(ctx context.Context, id string) error {
	_, err := s.db.ExecContext(ctx, `DELETE FROM trades WHERE id = ?`, id)
	if err != nil {
		return apperrors.NewStorageError("delete_trade", id, err)
	}
	return nil
}

func scanTrade(rows *sql.Rows) (*models.Trade, error) {
	var t models.Trade
	var state, outcome string
	var reason, plan, reflection, shift sql.NullString
	var isComplete, tilt, regret int
	var followedPlan sql.NullInt64

	if err := rows.Scan(&t.ID, &t.UserID, &t.Timestamp, &t.Symbol, &state,
		&t.Impulsiveness, &t.Confidence, &t.Fear, &reason, &plan,
		&isComplete, &outcome, &followedPlan, &tilt, &regret, &reflection, &shift); err != nil {
		return nil, err
	}

	parsedState, err := models.ParseEmotionalState(state)
	if err != nil {
		return nil, err
	}
	t.EmotionalState = parsedState

	if outcome != "" {
		parsedOutcome, err := models.ParseOutcome(outcome)
		if err != nil {
			return nil, err
		}
		t.Outcome = parsedOutcome
	}

	t.Reason = reason.String
	t.Plan = plan.String
	t.Reflection = reflection.String
	t.EmotionalShift = shift.String
	t.IsComplete = isComplete == 1
	t.Tilt = tilt == 1
	t.Regret = regret == 1
	if followedPlan.Valid {
		fp := followedPlan.Int64 == 1
		t.FollowedPlan = &fp
	}
	t.Timestamp = t.Timestamp.UTC()

	return &t, nil
}

// ============================================================================
// User Methods
// ============================================================================

// SaveUser stores the current user record under the fixed logical key.
func (s *SQLiteStore) SaveUser(ctx context.Context, user *models.User) error {
	_, err := s.db.ExecContext(ctx, `
		INSERT OR REPLACE INTO users (key, id, email, name, is_pro, updated_at)
		VALUES (?, ?, ?, ?, ?, CURRENT_TIMESTAMP)
	`, currentUserKey, user.ID, user.Email, user.Name, boolToInt(user.IsPro))
	if err != nil {
		return apperrors.NewStorageError("save_user", user.ID, err)
	}
	return nil
}

// GetUser returns the current user, or nil when no one is logged in or
// the stored record cannot be read.
func (s *SQLiteStore) GetUser(ctx context.Context) (*models.User, error) {
	var u models.User
	var isPro int
	err := s.db.QueryRowContext(ctx, `
		SELECT id, email, name, is_pro FROM users WHERE key = ?
	`, currentUserKey).Scan(&u.ID, &u.Email, &u.Name, &isPro)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		// Treat unreadable data as "no user" rather than a fatal error.
		return nil, nil
	}
	u.IsPro = isPro == 1
	return &u, nil
}

// DeleteUser removes the current user record (logout).
func (s *SQLiteStore) DeleteUser(ctx context.Context) error {
	_, err := s.db.ExecContext(ctx, `DELETE FROM users WHERE key = ?`, currentUserKey)
	if err != nil {
		return apperrors.NewStorageError("delete_user", currentUserKey, err)
	}
	return nil
}

func boolToInt(b bool) int64 {
	if b {
		return 1
	}
	return 0
}
