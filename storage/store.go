// Package storage keeps the saved session and the leaderboard as msgpack
// files in one directory.
package storage

import (
	"log"
	"os"
	"path/filepath"
	"sort"
	"sync"
	"time"

	"github.com/pkg/errors"
	"github.com/tsujio/game-scramble/game"
	"github.com/vmihailenco/msgpack/v5"
)

const (
	saveFile        = "save.msgpack"
	leaderboardFile = "leaderboard.msgpack"

	// LeaderboardSize is the number of entries kept.
	LeaderboardSize = 10
	// SaveInterval throttles session saves.
	SaveInterval = time.Second
)

// Store implements game.Recorder. Write failures are logged and never reach
// the game.
type Store struct {
	dir string

	mu       sync.Mutex
	lastSave time.Time
}

func Open(dir string) (*Store, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, errors.Wrapf(err, "create %s", dir)
	}
	return &Store{dir: dir}, nil
}

func (s *Store) path(name string) string {
	return filepath.Join(s.dir, name)
}

func (s *Store) OfferSave(g game.SaveGame) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.lastSave.IsZero() && g.Timestamp.Sub(s.lastSave) < SaveInterval {
		return
	}
	if err := s.write(saveFile, &g); err != nil {
		log.Printf("save game: %v", err)
		return
	}
	s.lastSave = g.Timestamp
}

func (s *Store) DiscardSave() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.lastSave = time.Time{}
	if err := os.Remove(s.path(saveFile)); err != nil && !os.IsNotExist(err) {
		log.Printf("discard save: %v", err)
	}
}

func (s *Store) OfferScore(e game.ScoreEntry) {
	s.mu.Lock()
	defer s.mu.Unlock()

	entries, err := s.leaderboard()
	if err != nil {
		log.Printf("leaderboard: %v", err)
		entries = nil
	}
	entries = Insert(entries, e)
	if err := s.write(leaderboardFile, entries); err != nil {
		log.Printf("leaderboard: %v", err)
	}
}

// LoadSave returns the saved session, or nil when there is none.
func (s *Store) LoadSave() (*game.SaveGame, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var g game.SaveGame
	ok, err := s.read(saveFile, &g)
	if err != nil || !ok {
		return nil, err
	}
	return &g, nil
}

// Leaderboard returns the kept entries, best first.
func (s *Store) Leaderboard() ([]game.ScoreEntry, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.leaderboard()
}

func (s *Store) leaderboard() ([]game.ScoreEntry, error) {
	var entries []game.ScoreEntry
	if _, err := s.read(leaderboardFile, &entries); err != nil {
		return nil, err
	}
	return entries, nil
}

// Insert adds e to a best-first leaderboard and drops what falls past
// LeaderboardSize. Equal scores keep their arrival order.
func Insert(entries []game.ScoreEntry, e game.ScoreEntry) []game.ScoreEntry {
	out := append(append([]game.ScoreEntry(nil), entries...), e)
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Score > out[j].Score
	})
	if len(out) > LeaderboardSize {
		out = out[:LeaderboardSize]
	}
	return out
}

func (s *Store) read(name string, v interface{}) (bool, error) {
	b, err := os.ReadFile(s.path(name))
	if os.IsNotExist(err) {
		return false, nil
	}
	if err != nil {
		return false, errors.Wrapf(err, "read %s", name)
	}
	if err := msgpack.Unmarshal(b, v); err != nil {
		return false, errors.Wrapf(err, "decode %s", name)
	}
	return true, nil
}

// write replaces the file through a rename so readers never see a partial
// file.
func (s *Store) write(name string, v interface{}) error {
	b, err := msgpack.Marshal(v)
	if err != nil {
		return errors.Wrapf(err, "encode %s", name)
	}
	tmp := s.path(name + ".tmp")
	if err := os.WriteFile(tmp, b, 0o644); err != nil {
		return errors.Wrapf(err, "write %s", name)
	}
	if err := os.Rename(tmp, s.path(name)); err != nil {
		return errors.Wrapf(err, "replace %s", name)
	}
	return nil
}
