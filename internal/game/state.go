package game

import (
	"errors"
	"fmt"
)

// ErrInvalidState is returned by LoadState when a persisted state fails
// validation. Callers recover by starting a fresh game.
var ErrInvalidState = errors.New("game: invalid saved state")

// SavedTile is the persisted form of a tile.
type SavedTile struct {
	ID    TileID `json:"id"`
	Value int    `json:"value"`
	Row   int    `json:"row"`
	Col   int    `json:"col"`
}

// SavedState is the serializable snapshot of a session, written after each
// committed move and read once at startup.
type SavedState struct {
	Cells    [BoardSize][BoardSize]TileID `json:"grid"`
	Tiles    []SavedTile                  `json:"tiles"`
	NextID   TileID                       `json:"next_tile_id"`
	Score    int                          `json:"score"`
	GameOver bool                         `json:"game_over"`
	Won      bool                         `json:"won"`
}

// Save captures the current session for persistence. An in-flight move is
// completed first, so the snapshot is always a settled board even when the
// caller saves mid-animation (quit during a slide).
func (g *Game) Save() SavedState {
	g.Settle()
	s := SavedState{
		Cells:    g.board.cells,
		NextID:   g.board.nextID,
		Score:    g.score,
		GameOver: g.gameOver,
		Won:      g.won,
	}
	for _, t := range g.board.Tiles() {
		s.Tiles = append(s.Tiles, SavedTile{ID: t.ID, Value: t.Value, Row: t.Row, Col: t.Col})
	}
	return s
}

// validate checks the grid/tile-set invariants on a loaded state: every
// referenced id exists, no id occupies two cells, values are powers of two
// of at least 2, positions are in range, and the id counter is ahead of
// every live id.
func (s SavedState) validate() error {
	byID := make(map[TileID]SavedTile, len(s.Tiles))
	for _, t := range s.Tiles {
		if t.ID == NoTile {
			return fmt.Errorf("%w: tile with zero id", ErrInvalidState)
		}
		if _, dup := byID[t.ID]; dup {
			return fmt.Errorf("%w: duplicate tile id %d", ErrInvalidState, t.ID)
		}
		if t.Row < 0 || t.Row >= BoardSize || t.Col < 0 || t.Col >= BoardSize {
			return fmt.Errorf("%w: tile %d out of range at (%d,%d)", ErrInvalidState, t.ID, t.Row, t.Col)
		}
		if t.Value < 2 || t.Value&(t.Value-1) != 0 {
			return fmt.Errorf("%w: tile %d has non power-of-two value %d", ErrInvalidState, t.ID, t.Value)
		}
		if t.ID >= s.NextID {
			return fmt.Errorf("%w: tile id %d not below counter %d", ErrInvalidState, t.ID, s.NextID)
		}
		byID[t.ID] = t
	}

	seen := make(map[TileID]bool, len(s.Tiles))
	for row := range BoardSize {
		for col := range BoardSize {
			id := s.Cells[row][col]
			if id == NoTile {
				continue
			}
			t, ok := byID[id]
			if !ok {
				return fmt.Errorf("%w: cell (%d,%d) references missing tile %d", ErrInvalidState, row, col, id)
			}
			if seen[id] {
				return fmt.Errorf("%w: tile %d referenced by two cells", ErrInvalidState, id)
			}
			if t.Row != row || t.Col != col {
				return fmt.Errorf("%w: tile %d position mismatch", ErrInvalidState, id)
			}
			seen[id] = true
		}
	}

	// A settled state has no tiles off the grid.
	if len(seen) != len(s.Tiles) {
		return fmt.Errorf("%w: tile set contains unreferenced tiles", ErrInvalidState)
	}
	return nil
}

// LoadState replaces the live session with a persisted one. The undo
// history and input queue are cleared; a validation failure leaves the
// game untouched so the caller can fall back to Reset.
func (g *Game) LoadState(s SavedState) error {
	if err := s.validate(); err != nil {
		return err
	}

	b := NewBoard()
	b.cells = s.Cells
	b.nextID = s.NextID
	for _, t := range s.Tiles {
		b.tiles[t.ID] = &Tile{ID: t.ID, Value: t.Value, Row: t.Row, Col: t.Col}
	}

	g.board = b
	g.score = s.Score
	g.gameOver = s.GameOver
	g.won = s.Won
	g.history.Clear()
	g.queue = moveQueue{}
	g.phase = phaseIdle
	g.phaseTicks = 0
	g.pendingResult = nil
	return nil
}
