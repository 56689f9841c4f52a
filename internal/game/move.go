package game

// Direction is a slide direction.
type Direction int

const (
	DirUp Direction = iota
	DirDown
	DirLeft
	DirRight
)

// String returns a human-readable direction name.
func (d Direction) String() string {
	switch d {
	case DirUp:
		return "up"
	case DirDown:
		return "down"
	case DirLeft:
		return "left"
	case DirRight:
		return "right"
	default:
		return "unknown"
	}
}

// MoveResult is the ephemeral outcome of one move attempt. It is produced by
// computeMove, consumed by the commit/cleanup step, then discarded.
type MoveResult struct {
	Moved   bool
	Merges  []MergeOp
	Removed []TileID
}

// computeMove resolves all four lines for the direction and, when any line
// reports movement, applies the new layout in a single pass:
//
//   - surviving tiles get their final positions and grid cells
//   - merge results are created Hidden at their target cell
//   - merge sources are slid to the target (for the renderer) and dropped
//     from the grid, but stay in the tile set until finishMove removes them
//
// No line observes a half-updated tile set: positions are planned first,
// applied after every line has resolved. When nothing moved, the board is
// left untouched and the caller must discard its history snapshot.
func (g *Game) computeMove(dir Direction) MoveResult {
	isRow := dir == DirLeft || dir == DirRight
	reverse := dir == DirRight || dir == DirDown

	var lines [BoardSize]lineResult
	moved := false
	for n := range BoardSize {
		lines[n] = g.board.resolveLine(lineCells(n, isRow), reverse)
		if lines[n].moved {
			moved = true
		}
	}

	if !moved {
		return MoveResult{}
	}

	res := MoveResult{Moved: true}
	b := g.board
	b.cells = [BoardSize][BoardSize]TileID{}

	for n := range BoardSize {
		line := lines[n]
		for _, p := range line.placements {
			t := b.tiles[p.id]
			t.Row, t.Col = p.row, p.col
			t.New = false
			b.cells[p.row][p.col] = p.id
		}
		for _, m := range line.merges {
			// Sources travel to the target cell; the renderer animates them
			// there before the hidden result is revealed.
			for _, sid := range m.Sources {
				s := b.tiles[sid]
				s.Row, s.Col = m.Row, m.Col
				s.New = false
			}
			b.tiles[m.NewID] = &Tile{
				ID:         m.NewID,
				Value:      m.Value,
				Row:        m.Row,
				Col:        m.Col,
				Hidden:     true,
				MergedFrom: m.Sources,
			}
			b.cells[m.Row][m.Col] = m.NewID

			if m.Value >= g.winValue {
				g.won = true
			}
		}
		res.Merges = append(res.Merges, line.merges...)
		res.Removed = append(res.Removed, line.removed...)
		g.score += line.score
	}

	return res
}

// finishMove applies the second phase of a committed move: merge sources are
// removed, merge results revealed, one new tile spawned, and the terminal
// condition evaluated. Returns true when the game just ended.
func (g *Game) finishMove(res MoveResult) bool {
	for _, id := range res.Removed {
		g.board.Remove(id)
	}
	for _, m := range res.Merges {
		if t := g.board.Tile(m.NewID); t != nil {
			t.Hidden = false
		}
	}

	g.spawnTile()

	if !g.gameOver && !g.board.HasMove() {
		g.gameOver = true
		return true
	}
	return false
}

// spawnTile places one random tile in a uniformly random empty cell: value 2
// with probability 1-spawn4Prob, value 4 otherwise. Fails silently when the
// grid is full. Pin hooks override the cell and/or value exactly once.
func (g *Game) spawnTile() *Tile {
	empty := g.board.EmptyCells()
	if len(empty) == 0 {
		g.pinnedCell = nil
		g.pinnedValue = 0
		return nil
	}

	cell := empty[g.rng.Intn(len(empty))]
	if g.pinnedCell != nil {
		if g.board.At(g.pinnedCell.Row, g.pinnedCell.Col) == nil {
			cell = *g.pinnedCell
		}
		g.pinnedCell = nil
	}

	value := 2
	if g.rng.Float64() < g.spawn4Prob {
		value = 4
	}
	if g.pinnedValue > 0 {
		value = g.pinnedValue
		g.pinnedValue = 0
	}

	id, ok := g.board.Place(cell.Row, cell.Col, value)
	if !ok {
		return nil
	}
	t := g.board.Tile(id)
	t.New = true
	return t
}

// PinNextValue forces the next spawned tile's value. Consumed once by the
// next spawn; a debug affordance that does not alter merge semantics.
func (g *Game) PinNextValue(value int) {
	g.pinnedValue = value
}

// PinNextCell forces the next spawned tile's cell if it is still empty when
// the spawn happens. Consumed once by the next spawn.
func (g *Game) PinNextCell(row, col int) {
	if row < 0 || row >= BoardSize || col < 0 || col >= BoardSize {
		return
	}
	g.pinnedCell = &Cell{Row: row, Col: col}
}
