package store

import (
	"context"
	"fmt"
	"path/filepath"
	"testing"
	"time"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"

	"reflectr/internal/models"
)

func newTestStore(t *testing.T) *SQLiteStore {
	t.Helper()
	dbPath := filepath.Join(t.TempDir(), "journal_test.db")
	store, err := NewSQLiteStore(dbPath)
	if err != nil {
		t.Fatalf("Failed to create store: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func TestSQLiteStore_TradeRoundTrip(t *testing.T) {
	ctx := context.Background()
	store := newTestStore(t)

	followed := false
	original := &models.Trade{
		ID:             "trade_01ROUNDTRIP",
		UserID:         "user_testtrader",
		Timestamp:      time.Date(2026, 4, 2, 10, 15, 0, 0, time.UTC),
		Symbol:         "HDFC",
		EmotionalState: models.StateFragile,
		Impulsiveness:  8,
		Confidence:     4,
		Fear:           7,
		Reason:         "revenge after the morning stop-out",
		Plan:           "no plan, honestly",
		IsComplete:     true,
		Outcome:        models.OutcomeLoss,
		FollowedPlan:   &followed,
		Tilt:           true,
		Regret:         true,
		Reflection:     "should have walked away",
		EmotionalShift: "Fragile to Charged",
	}

	if err := store.SaveTrade(ctx, original); err != nil {
		t.Fatalf("SaveTrade failed: %v", err)
	}

	trades, err := store.GetTrades(ctx, "user_testtrader")
	if err != nil {
		t.Fatalf("GetTrades failed: %v", err)
	}
	if len(trades) != 1 {
		t.Fatalf("Expected 1 trade, got %d", len(trades))
	}

	got := trades[0]
	if got.ID != original.ID || got.Symbol != original.Symbol ||
		got.EmotionalState != original.EmotionalState ||
		got.Impulsiveness != original.Impulsiveness ||
		got.Confidence != original.Confidence || got.Fear != original.Fear ||
		got.Reason != original.Reason || got.Plan != original.Plan ||
		got.IsComplete != original.IsComplete || got.Outcome != original.Outcome ||
		got.Tilt != original.Tilt || got.Regret != original.Regret ||
		got.Reflection != original.Reflection || got.EmotionalShift != original.EmotionalShift {
		t.Errorf("Round trip mismatch:\n  saved: %+v\n  got:   %+v", original, got)
	}
	if !got.Timestamp.Equal(original.Timestamp) {
		t.Errorf("Timestamp mismatch: saved %v, got %v", original.Timestamp, got.Timestamp)
	}
	if got.FollowedPlan == nil || *got.FollowedPlan != followed {
		t.Error("FollowedPlan answer lost in round trip")
	}
}

func TestSQLiteStore_OpenTradeComesBackPending(t *testing.T) {
	ctx := context.Background()
	store := newTestStore(t)

	open := &models.Trade{
		ID:             "trade_01OPEN",
		UserID:         "user_testtrader",
		Timestamp:      time.Now().UTC(),
		Symbol:         "SBIN",
		EmotionalState: models.StateNeutral,
		Impulsiveness:  2,
		Confidence:     6,
		Fear:           1,
	}
	if err := store.SaveTrade(ctx, open); err != nil {
		t.Fatalf("SaveTrade failed: %v", err)
	}

	trades, _ := store.GetTrades(ctx, "user_testtrader")
	if len(trades) != 1 {
		t.Fatalf("Expected 1 trade, got %d", len(trades))
	}
	if trades[0].Outcome != models.OutcomePending {
		t.Errorf("Open trade must read back Pending, got %q", trades[0].Outcome)
	}
	if trades[0].FollowedPlan != nil {
		t.Error("Open trade must read back an unanswered FollowedPlan")
	}
	if trades[0].IsComplete {
		t.Error("Open trade must read back incomplete")
	}
}

func TestSQLiteStore_UserLifecycle(t *testing.T) {
	ctx := context.Background()
	store := newTestStore(t)

	if u, err := store.GetUser(ctx); err != nil || u != nil {
		t.Fatalf("Fresh store must have no user, got %v, %v", u, err)
	}

	user := &models.User{ID: "user_avatrader", Email: "ava@trader.io", Name: "Ava"}
	if err := store.SaveUser(ctx, user); err != nil {
		t.Fatalf("SaveUser failed: %v", err)
	}

	// second save replaces the single record
	user.IsPro = true
	if err := store.SaveUser(ctx, user); err != nil {
		t.Fatalf("SaveUser (update) failed: %v", err)
	}

	got, err := store.GetUser(ctx)
	if err != nil {
		t.Fatalf("GetUser failed: %v", err)
	}
	if got == nil || !got.IsPro || got.Email != "ava@trader.io" {
		t.Errorf("GetUser = %+v, want pro user", got)
	}

	if err := store.DeleteUser(ctx); err != nil {
		t.Fatalf("DeleteUser failed: %v", err)
	}
	if u, _ := store.GetUser(ctx); u != nil {
		t.Error("User must be gone after DeleteUser")
	}
}

// Property: for any batch of trades inserted in any order, GetTrades
// returns all of them most recent first, ties broken by id descending.
func TestProperty_TradeOrderingInvariant(t *testing.T) {
	ctx := context.Background()
	store := newTestStore(t)

	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 50
	parameters.Rng.Seed(time.Now().UnixNano())

	properties := gopter.NewProperties(parameters)

	run := 0
	properties.Property("Trades read back most recent first", prop.ForAll(
		func(count int, minuteOffsets []int) bool {
			run++
			userID := fmt.Sprintf("user_run%d", run)
			base := time.Date(2026, 5, 1, 9, 0, 0, 0, time.UTC)

			for i := 0; i < count; i++ {
				offset := 0
				if len(minuteOffsets) > 0 {
					offset = minuteOffsets[i%len(minuteOffsets)] % 30
				}
				trade := &models.Trade{
					ID:             fmt.Sprintf("trade_r%04d_%04d", run, i),
					UserID:         userID,
					Timestamp:      base.Add(time.Duration(offset) * time.Minute),
					Symbol:         "ITC",
					EmotionalState: models.StateNeutral,
					Impulsiveness:  i % 11,
					Confidence:     5,
					Fear:           1,
				}
				if err := store.SaveTrade(ctx, trade); err != nil {
					t.Logf("SaveTrade failed: %v", err)
					return false
				}
			}

			trades, err := store.GetTrades(ctx, userID)
			if err != nil {
				t.Logf("GetTrades failed: %v", err)
				return false
			}
			if len(trades) != count {
				t.Logf("Expected %d trades, got %d", count, len(trades))
				return false
			}

			for i := 1; i < len(trades); i++ {
				prev, cur := trades[i-1], trades[i]
				if cur.Timestamp.After(prev.Timestamp) {
					return false
				}
				if cur.Timestamp.Equal(prev.Timestamp) && cur.ID > prev.ID {
					return false
				}
			}
			return true
		},
		gen.IntRange(0, 15),
		gen.SliceOf(gen.IntRange(0, 1000)),
	))

	properties.TestingRun(t)
}

// Property: saving the same trade id repeatedly keeps exactly one row,
// reflecting the latest write.
func TestProperty_UpsertKeepsSingleRow(t *testing.T) {
	ctx := context.Background()
	store := newTestStore(t)

	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 50
	parameters.Rng.Seed(time.Now().UnixNano())

	properties := gopter.NewProperties(parameters)

	run := 0
	properties.Property("Repeated saves of one id keep one row", prop.ForAll(
		func(writes int, finalImpulse int) bool {
			run++
			userID := fmt.Sprintf("user_upsert%d", run)
			id := fmt.Sprintf("trade_u%06d", run)

			for w := 0; w < writes; w++ {
				impulse := w % 11
				if w == writes-1 {
					impulse = finalImpulse
				}
				trade := &models.Trade{
					ID:             id,
					UserID:         userID,
					Timestamp:      time.Date(2026, 5, 2, 11, 0, 0, 0, time.UTC),
					Symbol:         "LT",
					EmotionalState: models.StateCharged,
					Impulsiveness:  impulse,
					Confidence:     5,
					Fear:           3,
				}
				if err := store.SaveTrade(ctx, trade); err != nil {
					return false
				}
			}

			trades, err := store.GetTrades(ctx, userID)
			if err != nil {
				return false
			}
			if writes == 0 {
				return len(trades) == 0
			}
			return len(trades) == 1 && trades[0].Impulsiveness == finalImpulse
		},
		gen.IntRange(0, 10),
		gen.IntRange(0, 10),
	))

	properties.TestingRun(t)
}
