package game

import (
	"testing"

	"github.com/vovakirdan/tui-2048/internal/core"
)

func TestHistoryBoundedFIFO(t *testing.T) {
	var h history

	for i := 0; i < HistoryDepth+1; i++ {
		h.Push(snapshot{score: i})
	}

	if h.Len() != HistoryDepth {
		t.Fatalf("Len = %d, want %d", h.Len(), HistoryDepth)
	}

	// The 33rd push evicts the oldest entry, not the most recent
	s, _ := h.Pop()
	if s.score != HistoryDepth {
		t.Errorf("most recent snapshot score = %d, want %d", s.score, HistoryDepth)
	}
	// Pop everything; the bottom must be entry 1, not 0
	var last snapshot
	for {
		got, ok := h.Pop()
		if !ok {
			break
		}
		last = got
	}
	if last.score != 1 {
		t.Errorf("oldest surviving snapshot score = %d, want 1 (entry 0 evicted)", last.score)
	}
}

func TestHistoryDrop(t *testing.T) {
	var h history
	h.Push(snapshot{score: 1})
	h.Push(snapshot{score: 2})

	h.Drop()

	s, ok := h.Pop()
	if !ok || s.score != 1 {
		t.Errorf("after Drop, top = %v,%v, want score 1", s.score, ok)
	}

	// Drop on empty is harmless
	h.Drop()
	h.Drop()
}

func TestUndoRestoresExactState(t *testing.T) {
	g := newTestGame(t)
	g.board.Place(0, 0, 2)
	g.board.Place(0, 1, 2)
	g.board.Place(2, 3, 8)

	wantValues := boardValues(g.board)
	wantNextID := g.board.nextID

	g.Move(DirLeft)
	if boardValues(g.board) == wantValues {
		t.Fatal("move should have changed the board")
	}

	if !g.Undo() {
		t.Fatal("Undo should succeed after a committed move")
	}

	if boardValues(g.board) != wantValues {
		t.Errorf("undo board:\n%v\nwant:\n%v", boardValues(g.board), wantValues)
	}
	if g.Score() != 0 {
		t.Errorf("undo score = %d, want 0", g.Score())
	}
	if g.board.nextID != wantNextID {
		t.Errorf("undo nextID = %d, want %d", g.board.nextID, wantNextID)
	}
	if g.IsOver() || g.Won() {
		t.Error("undo should restore clear flags")
	}
}

func TestUndoEmptyStack(t *testing.T) {
	g := newTestGame(t)
	if g.Undo() {
		t.Error("Undo with empty history should be a no-op")
	}
}

func TestUndoBlockedWhileInFlight(t *testing.T) {
	g := New(Options{SlideTicks: 4, PopTicks: 2})
	g.Reset(core.RuntimeConfig{ScreenW: 80, ScreenH: 24, Seed: 3})
	clearBoard(g)
	g.history.Clear()
	g.board.Place(0, 0, 2)
	g.board.Place(0, 3, 2)

	g.Enqueue(DirLeft)
	g.Advance() // phase 1 started, move in flight

	if g.Undo() {
		t.Error("Undo must be refused while a move is in flight")
	}
	if g.CanUndo() {
		t.Error("CanUndo must be false while a move is in flight")
	}
}

func TestUndoRecoversFromGameOver(t *testing.T) {
	g := newTestGame(t)
	// Any committed move, then force game over
	g.board.Place(0, 0, 2)
	g.board.Place(0, 1, 2)
	g.Move(DirLeft)
	g.gameOver = true

	if !g.Undo() {
		t.Fatal("undo must be allowed in the terminal state")
	}
	if g.IsOver() {
		t.Error("undo should clear the terminal flag")
	}

	// And gameplay continues
	g.Enqueue(DirUp)
	if g.QueueLen() != 1 {
		t.Error("input should be accepted again after undo")
	}
}

func TestRestartIsUndoable(t *testing.T) {
	g := newTestGame(t)
	g.board.Place(0, 0, 64)
	g.score = 640
	want := boardValues(g.board)

	g.Restart()

	if g.Score() != 0 {
		t.Fatal("restart should zero the score")
	}
	if boardValues(g.board) == want {
		t.Fatal("restart should replace the board")
	}

	if !g.Undo() {
		t.Fatal("restart must be one undo away")
	}
	if boardValues(g.board) != want || g.Score() != 640 {
		t.Error("undo should restore the pre-restart game")
	}
}

func TestUndoChain(t *testing.T) {
	// Several moves, then unwind them all; each undo must restore the
	// matching earlier board.
	g := New(Options{Instant: true})
	g.Reset(core.RuntimeConfig{ScreenW: 80, ScreenH: 24, Seed: 21})

	var boards [][BoardSize][BoardSize]int
	var scores []int
	dirs := []Direction{DirLeft, DirUp, DirRight, DirDown, DirLeft}

	for _, dir := range dirs {
		boards = append(boards, boardValues(g.board))
		scores = append(scores, g.Score())
		if !g.Move(dir).Committed {
			// A no-op move records nothing; drop its expectation
			boards = boards[:len(boards)-1]
			scores = scores[:len(scores)-1]
		}
	}

	for i := len(boards) - 1; i >= 0; i-- {
		if !g.Undo() {
			t.Fatalf("undo %d refused", i)
		}
		if boardValues(g.board) != boards[i] {
			t.Fatalf("undo %d: board mismatch", i)
		}
		if g.Score() != scores[i] {
			t.Fatalf("undo %d: score = %d, want %d", i, g.Score(), scores[i])
		}
	}
}
