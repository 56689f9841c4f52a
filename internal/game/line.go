package game

// MergeOp records one merge resolved during a move: two source tiles of
// equal value collapse into a new tile of double value at the target cell.
type MergeOp struct {
	Sources [2]TileID
	NewID   TileID
	Row     int
	Col     int
	Value   int
}

// placement is a surviving (unmerged) tile's final position.
type placement struct {
	id       TileID
	row, col int
}

// lineResult is the outcome of resolving a single row or column.
type lineResult struct {
	moved      bool
	merges     []MergeOp
	removed    []TileID
	placements []placement
	score      int
}

// resolveLine compacts and merges one line. cells lists the line's
// coordinates in board order; reverse is set when travel is toward the
// high-index edge (right or down), in which case the processing order is
// flipped so index 0 is the edge tiles slide into.
//
// Each tile participates in at most one merge per move: three equal tiles
// in a row produce exactly one merge, and the walk advances past both
// sources so the result never merges again in the same pass. Merge-result
// ids are allocated here so the caller can report them, but no tile or grid
// mutation happens until the move engine applies the aggregated results.
func (b *Board) resolveLine(cells [BoardSize]Cell, reverse bool) lineResult {
	// Occupied tiles in processing order.
	var seq []*Tile
	for i := range BoardSize {
		c := cells[i]
		if reverse {
			c = cells[BoardSize-1-i]
		}
		if id := b.cells[c.Row][c.Col]; id != NoTile {
			seq = append(seq, b.tiles[id])
		}
	}

	// target maps a compacted slot back to a true board cell.
	target := func(slot int) Cell {
		if reverse {
			return cells[BoardSize-1-slot]
		}
		return cells[slot]
	}

	var res lineResult
	slot := 0
	for i := 0; i < len(seq); i++ {
		t := seq[i]
		dst := target(slot)

		if i+1 < len(seq) && seq[i+1].Value == t.Value {
			pair := seq[i+1]
			merged := t.Value * 2
			res.merges = append(res.merges, MergeOp{
				Sources: [2]TileID{t.ID, pair.ID},
				NewID:   b.allocID(),
				Row:     dst.Row,
				Col:     dst.Col,
				Value:   merged,
			})
			res.removed = append(res.removed, t.ID, pair.ID)
			res.score += merged
			res.moved = true
			i++ // both sources consumed
		} else {
			res.placements = append(res.placements, placement{id: t.ID, row: dst.Row, col: dst.Col})
			if dst.Row != t.Row || dst.Col != t.Col {
				res.moved = true
			}
		}
		slot++
	}

	return res
}

// lineCells returns the board-order coordinates of the nth row or column.
func lineCells(n int, isRow bool) [BoardSize]Cell {
	var cells [BoardSize]Cell
	for i := range BoardSize {
		if isRow {
			cells[i] = Cell{Row: n, Col: i}
		} else {
			cells[i] = Cell{Row: i, Col: n}
		}
	}
	return cells
}
