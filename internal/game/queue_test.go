package game

import (
	"testing"

	"github.com/vovakirdan/tui-2048/internal/core"
)

func TestQueueFIFO(t *testing.T) {
	var q moveQueue

	q.Push(DirLeft)
	q.Push(DirUp)
	q.Push(DirRight)

	d, ok := q.Pop()
	if !ok || d != DirLeft {
		t.Fatalf("Pop() = %v,%v, want left,true", d, ok)
	}

	// One in flight: nothing else comes out until Done
	if _, ok := q.Pop(); ok {
		t.Fatal("Pop must refuse while a move is in flight")
	}
	if !q.InFlight() {
		t.Fatal("queue should report in flight")
	}

	q.Done()
	d, _ = q.Pop()
	if d != DirUp {
		t.Errorf("second Pop = %v, want up", d)
	}
	q.Done()
	d, _ = q.Pop()
	if d != DirRight {
		t.Errorf("third Pop = %v, want right", d)
	}
	q.Done()

	if _, ok := q.Pop(); ok {
		t.Error("empty queue should not Pop")
	}
}

func TestQueueClearKeepsInFlight(t *testing.T) {
	var q moveQueue
	q.Push(DirLeft)
	q.Push(DirRight)
	q.Pop()

	q.Clear()

	if q.Len() != 0 {
		t.Error("Clear should drop buffered directions")
	}
	if !q.InFlight() {
		t.Error("Clear must not abort the in-flight move")
	}
}

func TestQueuedMovesResolveSequentially(t *testing.T) {
	// Row 0 full of 2s; two queued lefts must resolve one at a time in
	// submission order: first [2,2,2,2] -> [4,4,..], then [4,4,..] -> [8,..].
	g := New(Options{SlideTicks: 3, PopTicks: 2})
	g.Reset(core.RuntimeConfig{ScreenW: 80, ScreenH: 24, Seed: 5})
	clearBoard(g)
	g.history.Clear()
	for col := range BoardSize {
		g.board.Place(0, col, 2)
	}
	g.PinNextCell(3, 3)

	g.Enqueue(DirLeft)
	g.Enqueue(DirLeft)

	// First tick starts move one; move two stays buffered
	g.Advance()
	if !g.queue.InFlight() {
		t.Fatal("first move should be in flight")
	}
	if g.QueueLen() != 1 {
		t.Fatalf("QueueLen = %d, want 1 buffered move", g.QueueLen())
	}

	// Drive until the first move commits
	committed := 0
	for i := 0; i < 20 && committed == 0; i++ {
		if g.Advance().Committed {
			committed++
		}
	}
	if committed != 1 {
		t.Fatal("first move never committed")
	}

	// After commit one: two 4s at the left edge, second move not yet started
	if g.board.At(0, 0).Value != 4 || g.board.At(0, 1).Value != 4 {
		t.Fatalf("after first move, row 0 = %v", boardValues(g.board)[0])
	}

	g.PinNextCell(3, 2)
	for i := 0; i < 40 && committed == 1; i++ {
		if g.Advance().Committed {
			committed++
		}
	}
	if committed != 2 {
		t.Fatal("second move never committed")
	}
	if g.board.At(0, 0).Value != 8 {
		t.Errorf("after second move, (0,0) = %+v, want 8", g.board.At(0, 0))
	}
	if g.Score() != 16 {
		t.Errorf("score = %d, want 16 (4+4 then 8)", g.Score())
	}
}

func TestEnqueueIgnoredWhenOver(t *testing.T) {
	g := newTestGame(t)
	g.gameOver = true

	g.Enqueue(DirLeft)
	if g.QueueLen() != 0 {
		t.Error("input after game over should not be buffered")
	}
}
