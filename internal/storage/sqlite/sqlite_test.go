package sqlite

import (
	"context"
	"os"
	"path/filepath"
	"reflect"
	"testing"
	"time"

	"github.com/mmynk/whistkeeper/internal/models"
	"github.com/mmynk/whistkeeper/internal/storage"
)

func newTestStore(t *testing.T) *SQLiteStore {
	t.Helper()

	// Create temp directory for test database
	tempDir, err := os.MkdirTemp("", "whistkeeper-test-*")
	if err != nil {
		t.Fatalf("Failed to create temp dir: %v", err)
	}
	t.Cleanup(func() { os.RemoveAll(tempDir) })

	store, err := New(filepath.Join(tempDir, "nested", "test.db"))
	if err != nil {
		t.Fatalf("Failed to create store: %v", err)
	}
	t.Cleanup(func() { store.Close() })

	return store
}

func sampleState() models.AppState {
	created := time.Date(2024, 9, 1, 12, 0, 0, 0, time.UTC)
	return models.AppState{
		Players: []models.Player{
			{ID: "p-dorte", Name: "Dorte", CreatedAt: created.Add(3 * time.Minute)},
			{ID: "p-anna", Name: "Anna", CreatedAt: created},
			{ID: "p-bent", Name: "Bent", CreatedAt: created.Add(time.Minute)},
			{ID: "p-carl", Name: "Carl", CreatedAt: created.Add(2 * time.Minute)},
			{ID: "p-eva", Name: "Eva", CreatedAt: created.Add(4 * time.Minute)},
		},
		GameNights: []models.GameNight{
			{
				ID:      "g-old",
				Date:    created.Add(24 * time.Hour),
				Players: []string{"p-anna", "p-bent", "p-carl", "p-dorte"},
				Rounds: []models.Round{
					{ID: "r-2", Bidder: "p-carl", BidLevel: 7, TrumpType: models.TrumpAlm, SpecialBid: models.SpecialSol, TricksWon: 7, Success: true, Points: 5},
					{ID: "r-1", Bidder: "p-anna", Partner: "p-bent", BidLevel: 8, TrumpType: models.TrumpVip, VipCount: 3, TricksWon: 6, Success: false, Points: -12},
				},
				Scores:   map[string]int{"p-anna": -17, "p-bent": -17, "p-carl": 27, "p-dorte": 7},
				IsActive: false,
			},
			{
				ID:       "g-new",
				Date:     created.Add(48*time.Hour + 123*time.Millisecond),
				Players:  []string{"p-eva", "p-dorte", "p-carl", "p-bent"},
				Rounds:   []models.Round{},
				Scores:   map[string]int{"p-eva": 0, "p-dorte": 0, "p-carl": 0, "p-bent": 0},
				IsActive: true,
			},
		},
		ActiveGameID: "g-new",
	}
}

func TestSQLiteStore(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	t.Run("Load on empty database returns default state", func(t *testing.T) {
		state, err := store.Load(ctx)
		if err != nil {
			t.Fatalf("Load failed: %v", err)
		}
		if !reflect.DeepEqual(state, models.NewAppState()) {
			t.Errorf("expected default state, got %+v", state)
		}
	})

	t.Run("Save and Load round trip", func(t *testing.T) {
		want := sampleState()
		if err := store.Save(ctx, want); err != nil {
			t.Fatalf("Save failed: %v", err)
		}

		loaded, err := store.Load(ctx)
		if err != nil {
			t.Fatalf("Load failed: %v", err)
		}
		if !reflect.DeepEqual(loaded, want) {
			t.Errorf("round trip mismatch:\n got %+v\nwant %+v", loaded, want)
		}
	})

	t.Run("Save replaces previous snapshot", func(t *testing.T) {
		state := sampleState()
		state.GameNights = state.GameNights[:1]
		state.ActiveGameID = ""
		state.Players[0].Name = "Dorthe"

		if err := store.Save(ctx, state); err != nil {
			t.Fatalf("Save failed: %v", err)
		}

		loaded, err := store.Load(ctx)
		if err != nil {
			t.Fatalf("Load failed: %v", err)
		}
		if len(loaded.GameNights) != 1 {
			t.Errorf("expected 1 game night, got %d", len(loaded.GameNights))
		}
		if loaded.ActiveGameID != "" {
			t.Errorf("expected no active game, got %q", loaded.ActiveGameID)
		}
		if loaded.PlayerName("p-dorte") != "Dorthe" {
			t.Errorf("rename not persisted: %q", loaded.PlayerName("p-dorte"))
		}
	})

	t.Run("Optional round fields survive as absent", func(t *testing.T) {
		loaded, err := store.Load(ctx)
		if err != nil {
			t.Fatalf("Load failed: %v", err)
		}
		solo := loaded.GameNight("g-old").Round("r-2")
		if solo == nil {
			t.Fatal("round r-2 missing")
		}
		if !solo.IsSolo() || solo.VipCount != 0 {
			t.Errorf("solo round = %+v", solo)
		}
		if solo.SpecialBid != models.SpecialSol {
			t.Errorf("SpecialBid = %q, want sol", solo.SpecialBid)
		}
	})
}

func TestSQLiteStore_Reopen(t *testing.T) {
	tempDir := t.TempDir()
	dbPath := filepath.Join(tempDir, "whist.db")
	ctx := context.Background()

	store, err := New(dbPath)
	if err != nil {
		t.Fatalf("Failed to create store: %v", err)
	}
	if err := store.Save(ctx, sampleState()); err != nil {
		t.Fatalf("Save failed: %v", err)
	}
	store.Close()

	reopened, err := New(dbPath)
	if err != nil {
		t.Fatalf("Failed to reopen store: %v", err)
	}
	defer reopened.Close()

	loaded, err := reopened.Load(ctx)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if len(loaded.GameNights) != 2 || loaded.ActiveGameID != "g-new" {
		t.Errorf("unexpected state after reopen: %d games, active %q", len(loaded.GameNights), loaded.ActiveGameID)
	}
}

func TestSQLiteStore_ImportedState(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	doc := `{
  "players": [
    {"id": "a", "name": "Anna", "createdAt": "2024-09-01T12:00:00Z"},
    {"id": "b", "name": "Bent", "createdAt": "2024-09-01T12:00:00Z"}
  ],
  "gameNights": [{
    "id": "g1",
    "date": "2024-09-01T19:00:00Z",
    "players": ["a", "b", "c", "d"],
    "rounds": [
      {"id": "r1", "bidder": "a", "partner": null, "bidLevel": 7, "trumpType": "alm",
       "vipCount": null, "specialBid": null, "tricksWon": 7, "success": true, "points": 2},
      {"id": "r2", "bidder": "c", "partner": "d", "bidLevel": 9, "trumpType": "vip",
       "vipCount": 2, "specialBid": null, "tricksWon": 8, "success": false, "points": -16}
    ],
    "scores": {"a": 2, "b": -2, "c": -2, "d": -2},
    "isActive": false
  }],
  "activeGameId": null
}`

	imported, err := storage.Import([]byte(doc))
	if err != nil {
		t.Fatalf("Import failed: %v", err)
	}
	if err := store.Save(ctx, imported); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	loaded, err := store.Load(ctx)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if !reflect.DeepEqual(loaded, imported) {
		t.Errorf("loaded state differs from import:\n got %+v\nwant %+v", loaded, imported)
	}
	if _, err := storage.Export(loaded); err != nil {
		t.Errorf("Export of loaded state failed: %v", err)
	}
}
