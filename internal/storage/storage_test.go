package storage

import (
	"os"
	"testing"

	"github.com/hailam/hexplay/internal/board"
	"github.com/hailam/hexplay/internal/hex"
)

func openTestStorage(t *testing.T) *Storage {
	t.Helper()
	s, err := NewStorageAt(t.TempDir())
	if err != nil {
		t.Fatalf("Failed to open storage: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func TestStorage(t *testing.T) {
	t.Run("DefaultPreferences", func(t *testing.T) {
		prefs := DefaultPreferences()
		if prefs.Username != "Player" {
			t.Errorf("Expected username 'Player', got '%s'", prefs.Username)
		}
		if !prefs.UseUnicode {
			t.Errorf("Expected unicode enabled by default")
		}
		if !prefs.SoundEnabled {
			t.Errorf("Expected sound enabled by default")
		}
	})

	t.Run("NewGameStats", func(t *testing.T) {
		stats := NewGameStats()
		if stats.GamesPlayed != 0 {
			t.Errorf("Expected 0 games played")
		}
		if stats.GetWinRate() != 0 {
			t.Errorf("Expected 0 win rate")
		}
	})

	t.Run("WinRate", func(t *testing.T) {
		stats := &GameStats{
			GamesPlayed: 10,
			Wins:        5,
			Losses:      3,
			Draws:       2,
		}
		rate := stats.GetWinRate()
		if rate != 50 {
			t.Errorf("Expected 50%% win rate, got %.2f%%", rate)
		}
	})

	t.Run("PreferencesRoundTrip", func(t *testing.T) {
		s := openTestStorage(t)

		prefs := DefaultPreferences()
		prefs.Username = "Tester"
		prefs.UseColors = false
		if err := s.SavePreferences(prefs); err != nil {
			t.Fatalf("SavePreferences failed: %v", err)
		}

		loaded, err := s.LoadPreferences()
		if err != nil {
			t.Fatalf("LoadPreferences failed: %v", err)
		}
		if loaded.Username != "Tester" || loaded.UseColors {
			t.Errorf("Preferences did not round-trip: %+v", loaded)
		}
	})

	t.Run("RecordGame", func(t *testing.T) {
		s := openTestStorage(t)

		for i := 0; i < 3; i++ {
			if err := s.RecordGame(GameResult{Won: true, Color: board.White}); err != nil {
				t.Fatalf("RecordGame failed: %v", err)
			}
		}
		if err := s.RecordGame(GameResult{Draw: true, Color: board.Black}); err != nil {
			t.Fatalf("RecordGame failed: %v", err)
		}

		stats, err := s.LoadStats()
		if err != nil {
			t.Fatalf("LoadStats failed: %v", err)
		}
		if stats.GamesPlayed != 4 || stats.Wins != 3 || stats.Draws != 1 {
			t.Errorf("Unexpected stats: %+v", stats)
		}
		if stats.LongestWinStrk != 3 || stats.CurrentStreak != 0 {
			t.Errorf("Streak tracking wrong: %+v", stats)
		}
		if stats.WinsByColor[board.White.String()] != 3 {
			t.Errorf("Wins by color wrong: %+v", stats.WinsByColor)
		}
	})
}

func TestSavedGameRoundTrip(t *testing.T) {
	s := openTestStorage(t)

	b := board.New()
	if err := b.MovePiece(hex.Hex{Q: 0, R: -1, S: 1}, hex.Hex{Q: 0, R: 0, S: 0}); err != nil {
		t.Fatal(err)
	}
	if err := b.MovePiece(hex.Hex{Q: 1, R: 1, S: -2}, hex.Hex{Q: 1, R: 0, S: -1}); err != nil {
		t.Fatal(err)
	}

	if err := s.SaveGame(Snapshot("test-game", b)); err != nil {
		t.Fatalf("SaveGame failed: %v", err)
	}

	names, err := s.ListGames()
	if err != nil {
		t.Fatalf("ListGames failed: %v", err)
	}
	if len(names) != 1 || names[0] != "test-game" {
		t.Fatalf("ListGames returned %v", names)
	}

	sg, err := s.LoadGame("test-game")
	if err != nil {
		t.Fatalf("LoadGame failed: %v", err)
	}

	restored, err := sg.Restore()
	if err != nil {
		t.Fatalf("Restore failed: %v", err)
	}
	if restored.SideToMove() != b.SideToMove() {
		t.Errorf("Side to move lost in round trip")
	}
	if len(restored.History()) != 2 {
		t.Errorf("Expected 2 replayed moves, got %d", len(restored.History()))
	}
	if _, ok := restored.PieceAt(hex.Hex{Q: 0, R: 0, S: 0}); !ok {
		t.Errorf("Replayed pawn missing from destination")
	}

	if err := s.DeleteGame("test-game"); err != nil {
		t.Fatalf("DeleteGame failed: %v", err)
	}
	if names, _ = s.ListGames(); len(names) != 0 {
		t.Errorf("Game not deleted: %v", names)
	}

	if _, err := s.LoadGame("missing"); err == nil {
		t.Error("Expected error loading missing game")
	}
}

func TestSaveGameRequiresName(t *testing.T) {
	s := openTestStorage(t)
	if err := s.SaveGame(&SavedGame{}); err == nil {
		t.Error("Expected error saving unnamed game")
	}
}

func TestDataPaths(t *testing.T) {
	dataDir, err := GetDataDir()
	if err != nil {
		t.Fatalf("GetDataDir failed: %v", err)
	}
	if dataDir == "" {
		t.Error("GetDataDir returned empty path")
	}

	if _, err := os.Stat(dataDir); os.IsNotExist(err) {
		t.Errorf("Data directory was not created: %s", dataDir)
	}

	t.Logf("Data directory: %s", dataDir)
}
