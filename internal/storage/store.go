package storage

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/charmbracelet/log"
)

// Keys used in the backend key-value space.
const (
	keyGameState    = "game_state"
	keyBestScore    = "best_score"
	keyScoreHistory = "score_history"
)

// ScoreHistoryCap bounds the number of finished-game scores kept.
const ScoreHistoryCap = 20

// ScoreRecord is one finished game's result.
type ScoreRecord struct {
	Score     int       `json:"score"`
	Timestamp time.Time `json:"timestamp"`
}

// Store provides typed access to game data over a Backend.
type Store struct {
	backend Backend
	ns      string
}

// NewStore wraps a backend with typed accessors.
func NewStore(backend Backend) *Store {
	return &Store{backend: backend}
}

// NewNamespacedStore wraps a backend with a key prefix so multiple
// players can share one database. Used by the SSH server.
func NewNamespacedStore(backend Backend, namespace string) *Store {
	return &Store{backend: backend, ns: namespace}
}

// key prefixes a raw key with the store's namespace.
func (s *Store) key(k string) string {
	if s.ns == "" {
		return k
	}
	return s.ns + "/" + k
}

// SaveGame persists a serialized game state.
func (s *Store) SaveGame(ctx context.Context, state []byte) error {
	if err := s.backend.Set(ctx, s.key(keyGameState), state); err != nil {
		return fmt.Errorf("storage: cannot save game: %w", err)
	}
	return nil
}

// LoadGame returns the last saved game state, or ErrNotFound.
func (s *Store) LoadGame(ctx context.Context) ([]byte, error) {
	return s.backend.Get(ctx, s.key(keyGameState))
}

// ClearGame removes the saved game state.
func (s *Store) ClearGame(ctx context.Context) error {
	return s.backend.Delete(ctx, s.key(keyGameState))
}

// BestScore returns the highest recorded score, 0 if none.
func (s *Store) BestScore(ctx context.Context) (int, error) {
	raw, err := s.backend.Get(ctx, s.key(keyBestScore))
	if errors.Is(err, ErrNotFound) {
		return 0, nil
	}
	if err != nil {
		return 0, err
	}
	var best int
	if err := json.Unmarshal(raw, &best); err != nil {
		log.Warn("corrupt best score, resetting", "err", err)
		return 0, nil
	}
	return best, nil
}

// RecordBest updates the best score if score exceeds the stored value.
// Returns true when a new best was written.
func (s *Store) RecordBest(ctx context.Context, score int) (bool, error) {
	best, err := s.BestScore(ctx)
	if err != nil {
		return false, err
	}
	if score <= best {
		return false, nil
	}
	raw, err := json.Marshal(score)
	if err != nil {
		return false, fmt.Errorf("storage: cannot encode best score: %w", err)
	}
	if err := s.backend.Set(ctx, s.key(keyBestScore), raw); err != nil {
		return false, err
	}
	return true, nil
}

// AppendScore adds a finished game's score to the history,
// evicting the oldest entries beyond ScoreHistoryCap.
func (s *Store) AppendScore(ctx context.Context, score int) error {
	records, err := s.ScoreHistory(ctx)
	if err != nil {
		return err
	}
	records = append(records, ScoreRecord{Score: score, Timestamp: time.Now()})
	if len(records) > ScoreHistoryCap {
		records = records[len(records)-ScoreHistoryCap:]
	}
	raw, err := json.Marshal(records)
	if err != nil {
		return fmt.Errorf("storage: cannot encode score history: %w", err)
	}
	if err := s.backend.Set(ctx, s.key(keyScoreHistory), raw); err != nil {
		return fmt.Errorf("storage: cannot save score history: %w", err)
	}
	return nil
}

// ScoreHistory returns recorded scores, oldest first.
func (s *Store) ScoreHistory(ctx context.Context) ([]ScoreRecord, error) {
	raw, err := s.backend.Get(ctx, s.key(keyScoreHistory))
	if errors.Is(err, ErrNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	var records []ScoreRecord
	if err := json.Unmarshal(raw, &records); err != nil {
		log.Warn("corrupt score history, resetting", "err", err)
		return nil, nil
	}
	return records, nil
}

// Close closes the underlying backend.
func (s *Store) Close() error {
	return s.backend.Close()
}
