package storage

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/dgraph-io/badger/v4"

	"github.com/hailam/hexplay/internal/board"
	"github.com/hailam/hexplay/internal/hex"
)

// Storage keys
const (
	keyPreferences = "preferences"
	keyStats       = "stats"
	keyFirstLaunch = "first_launch"
	gamePrefix     = "game:"
)

// GameMode represents the game mode
type GameMode int

const (
	ModeLocal GameMode = iota
	ModeOnline
)

// UserPreferences stores user settings
type UserPreferences struct {
	Username     string    `json:"username"`
	GameMode     GameMode  `json:"game_mode"`
	UseUnicode   bool      `json:"use_unicode"`
	UseColors    bool      `json:"use_colors"`
	ShowCoords   bool      `json:"show_coords"`
	SoundEnabled bool      `json:"sound_enabled"`
	LastPlayed   time.Time `json:"last_played"`
}

// DefaultPreferences returns default user preferences
func DefaultPreferences() *UserPreferences {
	return &UserPreferences{
		Username:     "Player",
		GameMode:     ModeLocal,
		UseUnicode:   true,
		UseColors:    true,
		SoundEnabled: true,
		LastPlayed:   time.Now(),
	}
}

// GameStats stores play statistics
type GameStats struct {
	GamesPlayed    int            `json:"games_played"`
	Wins           int            `json:"wins"`
	Losses         int            `json:"losses"`
	Draws          int            `json:"draws"`
	WinsByColor    map[string]int `json:"wins_by_color"`
	TotalPlayTime  time.Duration  `json:"total_play_time"`
	LongestWinStrk int            `json:"longest_win_streak"`
	CurrentStreak  int            `json:"current_streak"`
}

// NewGameStats returns empty play statistics
func NewGameStats() *GameStats {
	return &GameStats{
		WinsByColor: make(map[string]int),
	}
}

// GameResult represents the result of a completed game
type GameResult struct {
	Won      bool
	Draw     bool
	Color    board.Color
	Duration time.Duration
}

// SavedMove is one half-move of a saved game.
type SavedMove struct {
	From [3]int `json:"from"`
	To   [3]int `json:"to"`
}

// SavedGame stores a game as the move sequence from the starting
// position. Restoring replays the moves, so a record that no longer
// passes move validation is rejected instead of producing a corrupt
// board.
type SavedGame struct {
	Name    string      `json:"name"`
	SavedAt time.Time   `json:"saved_at"`
	Moves   []SavedMove `json:"moves"`
}

// Snapshot captures the move history of a game played from the
// starting position.
func Snapshot(name string, b *board.Board) *SavedGame {
	sg := &SavedGame{Name: name, SavedAt: time.Now()}
	for _, rec := range b.History() {
		sg.Moves = append(sg.Moves, SavedMove{
			From: [3]int{rec.From.Q, rec.From.R, rec.From.S},
			To:   [3]int{rec.To.Q, rec.To.R, rec.To.S},
		})
	}
	return sg
}

// Restore replays a saved game onto a fresh board.
func (sg *SavedGame) Restore() (*board.Board, error) {
	b := board.New()
	for i, mv := range sg.Moves {
		from := hex.Hex{Q: mv.From[0], R: mv.From[1], S: mv.From[2]}
		to := hex.Hex{Q: mv.To[0], R: mv.To[1], S: mv.To[2]}
		if err := b.MovePiece(from, to); err != nil {
			return nil, fmt.Errorf("replay move %d (%v to %v): %w", i+1, from, to, err)
		}
	}
	return b, nil
}

// Storage wraps BadgerDB for persistent storage
type Storage struct {
	db *badger.DB
}

// NewStorage opens the database in the platform data directory.
func NewStorage() (*Storage, error) {
	dbDir, err := GetDatabaseDir()
	if err != nil {
		return nil, err
	}
	return NewStorageAt(dbDir)
}

// NewStorageAt opens the database in the given directory.
func NewStorageAt(dir string) (*Storage, error) {
	opts := badger.DefaultOptions(dir)
	opts.Logger = nil // Disable logging

	db, err := badger.Open(opts)
	if err != nil {
		return nil, err
	}

	return &Storage{db: db}, nil
}

// Close closes the database
func (s *Storage) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

// IsFirstLaunch returns true if this is the first launch
func (s *Storage) IsFirstLaunch() (bool, error) {
	firstLaunch := true

	err := s.db.View(func(txn *badger.Txn) error {
		_, err := txn.Get([]byte(keyFirstLaunch))
		if err == badger.ErrKeyNotFound {
			firstLaunch = true
			return nil
		}
		if err != nil {
			return err
		}
		firstLaunch = false
		return nil
	})

	return firstLaunch, err
}

// MarkFirstLaunchComplete marks that first launch setup is complete
func (s *Storage) MarkFirstLaunchComplete() error {
	return s.db.Update(func(txn *badger.Txn) error {
		return txn.Set([]byte(keyFirstLaunch), []byte("done"))
	})
}

// SavePreferences saves user preferences
func (s *Storage) SavePreferences(prefs *UserPreferences) error {
	prefs.LastPlayed = time.Now()

	data, err := json.Marshal(prefs)
	if err != nil {
		return err
	}

	return s.db.Update(func(txn *badger.Txn) error {
		return txn.Set([]byte(keyPreferences), data)
	})
}

// LoadPreferences loads user preferences, returns defaults if not found
func (s *Storage) LoadPreferences() (*UserPreferences, error) {
	prefs := DefaultPreferences()

	err := s.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get([]byte(keyPreferences))
		if err == badger.ErrKeyNotFound {
			return nil // Use defaults
		}
		if err != nil {
			return err
		}

		return item.Value(func(val []byte) error {
			return json.Unmarshal(val, prefs)
		})
	})

	return prefs, err
}

// SaveGame stores a game under its name, replacing any previous save.
func (s *Storage) SaveGame(sg *SavedGame) error {
	if sg.Name == "" {
		return fmt.Errorf("saved game needs a name")
	}

	data, err := json.Marshal(sg)
	if err != nil {
		return err
	}

	return s.db.Update(func(txn *badger.Txn) error {
		return txn.Set([]byte(gamePrefix+sg.Name), data)
	})
}

// LoadGame retrieves a saved game by name.
func (s *Storage) LoadGame(name string) (*SavedGame, error) {
	sg := &SavedGame{}

	err := s.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get([]byte(gamePrefix + name))
		if err == badger.ErrKeyNotFound {
			return fmt.Errorf("no saved game named %q", name)
		}
		if err != nil {
			return err
		}

		return item.Value(func(val []byte) error {
			return json.Unmarshal(val, sg)
		})
	})
	if err != nil {
		return nil, err
	}

	return sg, nil
}

// ListGames returns the names of all saved games.
func (s *Storage) ListGames() ([]string, error) {
	var names []string

	err := s.db.View(func(txn *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		opts.PrefetchValues = false
		it := txn.NewIterator(opts)
		defer it.Close()

		prefix := []byte(gamePrefix)
		for it.Seek(prefix); it.ValidForPrefix(prefix); it.Next() {
			key := string(it.Item().Key())
			names = append(names, strings.TrimPrefix(key, gamePrefix))
		}
		return nil
	})

	return names, err
}

// DeleteGame removes a saved game. Deleting a missing game is not an error.
func (s *Storage) DeleteGame(name string) error {
	return s.db.Update(func(txn *badger.Txn) error {
		return txn.Delete([]byte(gamePrefix + name))
	})
}

// SaveStats saves play statistics
func (s *Storage) SaveStats(stats *GameStats) error {
	data, err := json.Marshal(stats)
	if err != nil {
		return err
	}

	return s.db.Update(func(txn *badger.Txn) error {
		return txn.Set([]byte(keyStats), data)
	})
}

// LoadStats loads play statistics, returns empty stats if not found
func (s *Storage) LoadStats() (*GameStats, error) {
	stats := NewGameStats()

	err := s.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get([]byte(keyStats))
		if err == badger.ErrKeyNotFound {
			return nil // Use empty stats
		}
		if err != nil {
			return err
		}

		return item.Value(func(val []byte) error {
			return json.Unmarshal(val, stats)
		})
	})

	return stats, err
}

// RecordGame records a completed game and updates statistics
func (s *Storage) RecordGame(result GameResult) error {
	stats, err := s.LoadStats()
	if err != nil {
		return err
	}

	stats.GamesPlayed++
	stats.TotalPlayTime += result.Duration

	if result.Draw {
		stats.Draws++
		stats.CurrentStreak = 0
	} else if result.Won {
		stats.Wins++
		stats.CurrentStreak++
		if stats.CurrentStreak > stats.LongestWinStrk {
			stats.LongestWinStrk = stats.CurrentStreak
		}
		stats.WinsByColor[result.Color.String()]++
	} else {
		stats.Losses++
		stats.CurrentStreak = 0
	}

	return s.SaveStats(stats)
}

// GetWinRate returns the win rate as a percentage (0-100)
func (s *GameStats) GetWinRate() float64 {
	if s.GamesPlayed == 0 {
		return 0
	}
	return float64(s.Wins) / float64(s.GamesPlayed) * 100
}
