package game

// HistoryDepth is the undo stack capacity. Pushing beyond it evicts the
// oldest entry, not the most recent.
const HistoryDepth = 32

// tileRecord is the undo-relevant subset of a tile.
type tileRecord struct {
	id       TileID
	value    int
	row, col int
}

// snapshot is an immutable deep copy of the undoable game state, taken
// before every state-mutating operation.
type snapshot struct {
	cells    [BoardSize][BoardSize]TileID
	tiles    []tileRecord
	nextID   TileID
	score    int
	gameOver bool
	won      bool
}

// history is the bounded undo stack.
type history struct {
	entries []snapshot
}

// Push stores a snapshot, evicting the oldest entry at capacity.
func (h *history) Push(s snapshot) {
	if len(h.entries) >= HistoryDepth {
		h.entries = h.entries[1:]
	}
	h.entries = append(h.entries, s)
}

// Pop removes and returns the most recent snapshot.
func (h *history) Pop() (snapshot, bool) {
	if len(h.entries) == 0 {
		return snapshot{}, false
	}
	s := h.entries[len(h.entries)-1]
	h.entries = h.entries[:len(h.entries)-1]
	return s, true
}

// Drop discards the most recent snapshot. Used when a move turns out to be
// a no-op so it does not pollute the undo history.
func (h *history) Drop() {
	if len(h.entries) > 0 {
		h.entries = h.entries[:len(h.entries)-1]
	}
}

// Clear empties the stack. Called on explicit state reload from persistence.
func (h *history) Clear() {
	h.entries = h.entries[:0]
}

// Len returns the current stack depth.
func (h *history) Len() int {
	return len(h.entries)
}

// capture deep-copies the live state into a snapshot. Transient animation
// flags (New, Hidden) are not part of the undoable state; restore always
// produces settled tiles.
func (g *Game) capture() snapshot {
	s := snapshot{
		cells:    g.board.cells,
		nextID:   g.board.nextID,
		score:    g.score,
		gameOver: g.gameOver,
		won:      g.won,
	}
	for _, t := range g.board.Tiles() {
		s.tiles = append(s.tiles, tileRecord{id: t.ID, value: t.Value, row: t.Row, col: t.Col})
	}
	return s
}

// restore fully replaces the live state with a snapshot's values.
func (g *Game) restore(s snapshot) {
	b := NewBoard()
	b.cells = s.cells
	b.nextID = s.nextID
	for _, r := range s.tiles {
		b.tiles[r.id] = &Tile{ID: r.id, Value: r.value, Row: r.row, Col: r.col}
	}
	g.board = b
	g.score = s.score
	g.gameOver = s.gameOver
	g.won = s.won
}

// Undo reverts to the state before the last committed move or restart.
// It is a no-op while a move is in flight or when the stack is empty, and
// is allowed in the terminal state: undo is the recovery path from game
// over. Returns true when a snapshot was restored.
func (g *Game) Undo() bool {
	if g.queue.InFlight() {
		return false
	}
	s, ok := g.history.Pop()
	if !ok {
		return false
	}
	g.restore(s)
	g.pendingResult = nil
	return true
}

// CanUndo reports whether Undo would restore a snapshot right now.
func (g *Game) CanUndo() bool {
	return !g.queue.InFlight() && g.history.Len() > 0
}
