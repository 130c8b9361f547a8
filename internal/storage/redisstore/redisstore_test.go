package redisstore

import (
	"context"
	"fmt"
	"os"
	"reflect"
	"testing"
	"time"

	"github.com/mmynk/whistkeeper/internal/models"
)

// newTestStore connects to the Redis named by REDIS_ADDR and skips the test
// when it is unset.
func newTestStore(t *testing.T) *RedisStore {
	t.Helper()

	addr := os.Getenv("REDIS_ADDR")
	if addr == "" {
		t.Skip("REDIS_ADDR not set")
	}

	key := fmt.Sprintf("whist:test:%d", time.Now().UnixNano())
	store, err := New(context.Background(), addr, os.Getenv("REDIS_PASSWORD"), key)
	if err != nil {
		t.Fatalf("Failed to connect: %v", err)
	}
	t.Cleanup(func() {
		store.client.Del(context.Background(), key)
		store.Close()
	})
	return store
}

func TestRedisStore(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	empty, err := store.Load(ctx)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if !reflect.DeepEqual(empty, models.NewAppState()) {
		t.Errorf("expected default state, got %+v", empty)
	}

	state := models.AppState{
		Players: []models.Player{{ID: "a", Name: "Anna", CreatedAt: time.Date(2024, 9, 1, 12, 0, 0, 0, time.UTC)}},
		GameNights: []models.GameNight{{
			ID:       "g",
			Date:     time.Date(2024, 9, 1, 19, 0, 0, 0, time.UTC),
			Players:  []string{"a", "b", "c", "d"},
			Rounds:   []models.Round{{ID: "r", Bidder: "a", BidLevel: 7, TrumpType: models.TrumpAlm, TricksWon: 7, Success: true, Points: 2}},
			Scores:   map[string]int{"a": 6, "b": -2, "c": -2, "d": -2},
			IsActive: true,
		}},
		ActiveGameID: "g",
	}

	if err := store.Save(ctx, state); err != nil {
		t.Fatalf("Save failed: %v", err)
	}
	loaded, err := store.Load(ctx)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if !reflect.DeepEqual(loaded, state) {
		t.Errorf("round trip mismatch:\n got %+v\nwant %+v", loaded, state)
	}
}

func TestNew_Unreachable(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	if _, err := New(ctx, "127.0.0.1:1", "", ""); err == nil {
		t.Error("expected error connecting to closed port")
	}
}
