// Package game implements the 2048 engine: an identity-bearing tile arena,
// the slide-and-merge resolver, move serialization, undo history, and the
// hooks the platform layer needs for rendering and persistence.
package game

import "sort"

// BoardSize is the board dimension. The board is always 4x4.
const BoardSize = 4

// TileID identifies a tile for its whole lifetime. IDs are allocated from a
// strictly increasing counter and never reused within a session.
type TileID int

// NoTile marks an empty grid cell.
const NoTile TileID = 0

// Cell is a board coordinate.
type Cell struct {
	Row, Col int
}

// Tile is a numbered game piece. Tiles are owned by the Board's tile set;
// grid cells reference them by id only.
type Tile struct {
	ID    TileID
	Value int
	Row   int
	Col   int

	// New marks a tile spawned by the most recent committed move.
	New bool

	// Hidden marks a merge-result tile that has been placed at its target
	// cell but not yet revealed. The renderer shows the two source tiles
	// traveling there instead, so the merged tile does not teleport in.
	Hidden bool

	// MergedFrom holds the two source tile ids when this tile is the result
	// of a merge, zero otherwise.
	MergedFrom [2]TileID
}

// Board holds the tile arena and the 4x4 grid of id references.
// Cell occupancy in the grid is the single source of truth for emptiness;
// the tile set may briefly hold merge-source tiles that no cell references
// (between move resolution and cleanup).
type Board struct {
	cells  [BoardSize][BoardSize]TileID
	tiles  map[TileID]*Tile
	nextID TileID
}

// NewBoard creates an empty board.
func NewBoard() *Board {
	return &Board{
		tiles:  make(map[TileID]*Tile),
		nextID: 1,
	}
}

// allocID hands out the next tile id.
func (b *Board) allocID() TileID {
	id := b.nextID
	b.nextID++
	return id
}

// Place creates a new tile at the given cell.
// Returns false without mutating anything if the cell is occupied;
// callers must check emptiness first.
func (b *Board) Place(row, col, value int) (TileID, bool) {
	if row < 0 || row >= BoardSize || col < 0 || col >= BoardSize {
		return NoTile, false
	}
	if b.cells[row][col] != NoTile {
		return NoTile, false
	}

	id := b.allocID()
	b.tiles[id] = &Tile{ID: id, Value: value, Row: row, Col: col}
	b.cells[row][col] = id
	return id, true
}

// Remove deletes a tile from the tile set and clears its grid reference if
// any cell still points at it. Must be called only after all resolution and
// rendering logic has finished referencing the tile.
func (b *Board) Remove(id TileID) {
	t, ok := b.tiles[id]
	if !ok {
		return
	}
	if b.cells[t.Row][t.Col] == id {
		b.cells[t.Row][t.Col] = NoTile
	}
	delete(b.tiles, id)
}

// Tile returns the tile with the given id, or nil.
func (b *Board) Tile(id TileID) *Tile {
	return b.tiles[id]
}

// At returns the tile occupying the given cell, or nil if it is empty.
func (b *Board) At(row, col int) *Tile {
	id := b.cells[row][col]
	if id == NoTile {
		return nil
	}
	return b.tiles[id]
}

// EmptyCells returns the coordinates of all empty cells in row-major order.
func (b *Board) EmptyCells() []Cell {
	var cells []Cell
	for row := range BoardSize {
		for col := range BoardSize {
			if b.cells[row][col] == NoTile {
				cells = append(cells, Cell{Row: row, Col: col})
			}
		}
	}
	return cells
}

// Tiles returns every live tile ordered by id, including merge-source tiles
// awaiting cleanup. Stable order keeps rendering and tests deterministic.
func (b *Board) Tiles() []*Tile {
	tiles := make([]*Tile, 0, len(b.tiles))
	for _, t := range b.tiles {
		tiles = append(tiles, t)
	}
	sort.Slice(tiles, func(i, j int) bool {
		return tiles[i].ID < tiles[j].ID
	})
	return tiles
}

// OccupiedCount returns the number of cells that reference a tile.
func (b *Board) OccupiedCount() int {
	count := 0
	for row := range BoardSize {
		for col := range BoardSize {
			if b.cells[row][col] != NoTile {
				count++
			}
		}
	}
	return count
}

// MaxValue returns the highest tile value on the grid, 0 when empty.
func (b *Board) MaxValue() int {
	maxVal := 0
	for row := range BoardSize {
		for col := range BoardSize {
			if t := b.At(row, col); t != nil && t.Value > maxVal {
				maxVal = t.Value
			}
		}
	}
	return maxVal
}

// HasEmptyCell returns true if at least one cell is empty.
func (b *Board) HasEmptyCell() bool {
	for row := range BoardSize {
		for col := range BoardSize {
			if b.cells[row][col] == NoTile {
				return true
			}
		}
	}
	return false
}

// HasAdjacentPair returns true if any horizontally or vertically adjacent
// tiles share a value.
func (b *Board) HasAdjacentPair() bool {
	for row := range BoardSize {
		for col := range BoardSize {
			t := b.At(row, col)
			if t == nil {
				continue
			}
			if col < BoardSize-1 {
				if right := b.At(row, col+1); right != nil && right.Value == t.Value {
					return true
				}
			}
			if row < BoardSize-1 {
				if below := b.At(row+1, col); below != nil && below.Value == t.Value {
					return true
				}
			}
		}
	}
	return false
}

// HasMove returns true if any move is possible.
func (b *Board) HasMove() bool {
	return b.HasEmptyCell() || b.HasAdjacentPair()
}
