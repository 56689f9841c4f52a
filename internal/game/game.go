package game

import (
	"math/rand"

	"github.com/vovakirdan/tui-2048/internal/core"
)

// Default tuning, overridable through Options.
const (
	defaultSpawn4Prob = 0.10
	defaultWinValue   = 2048

	// Animation phase durations in ticks at 60fps. Phase 1 of a move
	// (position assignment) and phase 2 (removal/reveal/spawn/terminal
	// check) are separated by the slide ticks; the pop ticks keep the
	// queue blocked until the spawned tile has appeared.
	defaultSlideTicks = 8 // ~133ms
	defaultPopTicks   = 6 // ~100ms
)

// movePhase tracks where the in-flight move is in its two-phase commit.
type movePhase int

const (
	phaseIdle    movePhase = iota
	phaseSliding           // positions assigned, sources traveling
	phasePopping           // move committed, new tile popping in
)

// Options tune a game without touching its core semantics.
type Options struct {
	Spawn4Probability float64 // chance a spawned tile is a 4 (default 0.10)
	WinValue          int     // tile value that flips the won flag (default 2048)
	SlideTicks        int     // phase 1 duration; 0 resolves moves instantly
	PopTicks          int     // pop duration after commit
	Instant           bool    // collapse both phases into a single tick
}

// Game is one 2048 session: board, score, input queue, undo history, and
// the two-phase move state machine driven by ticks. Construct with New and
// pass by reference; there is no package-level game state.
type Game struct {
	rng  *rand.Rand
	opts Options

	board    *Board
	score    int
	gameOver bool
	won      bool

	queue   moveQueue
	history history

	phase         movePhase
	phaseTicks    int
	pendingResult *MoveResult

	spawn4Prob  float64
	winValue    int
	pinnedValue int
	pinnedCell  *Cell

	screenW, screenH int
	tooSmall         bool
}

// New creates a game with the given options. Call Reset before playing.
func New(opts Options) *Game {
	if opts.Spawn4Probability <= 0 {
		opts.Spawn4Probability = defaultSpawn4Prob
	}
	if opts.WinValue <= 0 {
		opts.WinValue = defaultWinValue
	}
	if opts.SlideTicks <= 0 && !opts.Instant {
		opts.SlideTicks = defaultSlideTicks
	}
	if opts.PopTicks <= 0 && !opts.Instant {
		opts.PopTicks = defaultPopTicks
	}
	if opts.Instant {
		opts.SlideTicks = 0
		opts.PopTicks = 0
	}
	return &Game{opts: opts}
}

// Reset initializes a fresh session: empty board, two starting tiles, empty
// queue and history. Used at startup and after a failed state load.
func (g *Game) Reset(cfg core.RuntimeConfig) {
	g.rng = rand.New(rand.NewSource(cfg.Seed))
	g.screenW = cfg.ScreenW
	g.screenH = cfg.ScreenH
	g.spawn4Prob = g.opts.Spawn4Probability
	g.winValue = g.opts.WinValue

	g.board = NewBoard()
	g.score = 0
	g.gameOver = false
	g.won = false
	g.queue = moveQueue{}
	g.history.Clear()
	g.phase = phaseIdle
	g.phaseTicks = 0
	g.pendingResult = nil
	g.pinnedValue = 0
	g.pinnedCell = nil

	g.spawnTile()
	g.spawnTile()

	g.checkScreenSize()
}

// Restart begins a new game but, unlike Reset, snapshots the old state
// first so the previous game is one undo away.
func (g *Game) Restart() {
	if g.queue.InFlight() {
		return
	}
	g.history.Push(g.capture())

	g.board = NewBoard()
	g.score = 0
	g.gameOver = false
	g.won = false
	g.queue.Clear()
	g.pendingResult = nil
	g.spawnTile()
	g.spawnTile()
}

// Enqueue buffers a directional input. The move is applied by subsequent
// Advance calls, strictly after any in-flight move completes.
func (g *Game) Enqueue(dir Direction) {
	if g.gameOver {
		return
	}
	g.queue.Push(dir)
}

// Advance runs one tick of the move state machine and returns what changed.
// This is the only place moves start and finish, which is what guarantees
// phase 2 of move N always precedes phase 1 of move N+1.
func (g *Game) Advance() core.StepResult {
	var res core.StepResult

	switch g.phase {
	case phaseIdle:
		res.Committed, res.Ended = g.startNextMove()

	case phaseSliding:
		g.phaseTicks++
		if g.phaseTicks >= g.opts.SlideTicks {
			ended := g.commitPending()
			res.Committed = true
			res.Ended = ended
			if g.opts.PopTicks > 0 {
				g.phase = phasePopping
				g.phaseTicks = 0
			} else {
				g.endMove()
				g.startNextMove()
			}
		}

	case phasePopping:
		g.phaseTicks++
		if g.phaseTicks >= g.opts.PopTicks {
			g.endMove()
			g.startNextMove()
		}
	}

	res.State = g.State()
	return res
}

// startNextMove pops the queue and runs phase 1 of the next move, if any.
// A snapshot is taken before the attempt and discarded when the move turns
// out to be a no-op, so no-op moves never consume undo budget. In instant
// mode the commit happens in the same tick and is reported through the
// return values.
func (g *Game) startNextMove() (committed, ended bool) {
	if g.gameOver {
		g.queue.Clear()
		return false, false
	}

	dir, ok := g.queue.Pop()
	if !ok {
		return false, false
	}

	g.history.Push(g.capture())
	result := g.computeMove(dir)
	if !result.Moved {
		g.history.Drop()
		g.queue.Done()
		return false, false
	}

	g.pendingResult = &result
	if g.opts.SlideTicks <= 0 {
		ended = g.commitPending()
		g.endMove()
		return true, ended
	}
	g.phase = phaseSliding
	g.phaseTicks = 0
	return false, false
}

// commitPending runs phase 2 for the in-flight move.
// Returns true when the game just reached the terminal state.
func (g *Game) commitPending() bool {
	if g.pendingResult == nil {
		return false
	}
	ended := g.finishMove(*g.pendingResult)
	g.pendingResult = nil
	return ended
}

// endMove releases the queue for the next move.
func (g *Game) endMove() {
	g.phase = phaseIdle
	g.phaseTicks = 0
	g.queue.Done()
}

// Settle completes the in-flight move, if any, so the board holds no
// transient slide state. Queued moves stay buffered and resume on the next
// Advance. Returns true when settling ended the game.
func (g *Game) Settle() bool {
	if !g.queue.InFlight() {
		return false
	}
	ended := g.commitPending()
	g.endMove()
	return ended
}

// Move enqueues a direction and advances until the move has fully
// committed. Convenience for instant-mode callers and tests; with
// animations enabled it ticks through the phases synchronously.
func (g *Game) Move(dir Direction) core.StepResult {
	g.Enqueue(dir)
	res := g.Advance()
	for g.queue.InFlight() {
		r := g.Advance()
		if r.Committed {
			res.Committed = true
			res.Ended = res.Ended || r.Ended
		}
		res.State = r.State
	}
	return res
}

// Step consumes one platform input frame and advances one tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	switch {
	case in.Has(core.ActionUp):
		g.Enqueue(DirUp)
	case in.Has(core.ActionDown):
		g.Enqueue(DirDown)
	case in.Has(core.ActionLeft):
		g.Enqueue(DirLeft)
	case in.Has(core.ActionRight):
		g.Enqueue(DirRight)
	}

	if in.Has(core.ActionUndo) {
		g.Undo()
	}
	if in.Has(core.ActionRestart) {
		g.Restart()
	}

	if g.tooSmall {
		return core.StepResult{State: g.State()}
	}
	return g.Advance()
}

// State returns the render-facing game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:    g.score,
		GameOver: g.gameOver,
		Won:      g.won,
		CanUndo:  g.CanUndo(),
	}
}

// Score returns the current score.
func (g *Game) Score() int {
	return g.score
}

// IsOver reports whether the terminal state has been reached.
func (g *Game) IsOver() bool {
	return g.gameOver
}

// Won reports whether the win tile has been built this session.
func (g *Game) Won() bool {
	return g.won
}

// Board exposes the live board for rendering and tests.
func (g *Game) Board() *Board {
	return g.board
}

// QueueLen returns the number of buffered, not-yet-started moves.
func (g *Game) QueueLen() int {
	return g.queue.Len()
}

// HistoryLen returns the undo stack depth.
func (g *Game) HistoryLen() int {
	return g.history.Len()
}

// SetScreenSize updates the cached screen dimensions on resize.
func (g *Game) SetScreenSize(w, h int) {
	g.screenW = w
	g.screenH = h
	g.checkScreenSize()
}

// checkScreenSize flags the session when the terminal cannot fit the board.
func (g *Game) checkScreenSize() {
	const minW, minH = 29, 14 // board 25x9 plus HUD and margins
	g.tooSmall = g.screenW < minW || g.screenH < minH
}
