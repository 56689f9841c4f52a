package game

import "testing"

func TestBoardPlace(t *testing.T) {
	b := NewBoard()

	id, ok := b.Place(1, 2, 2)
	if !ok {
		t.Fatal("Place on empty cell should succeed")
	}
	if id == NoTile {
		t.Fatal("Place should return a real tile id")
	}

	tile := b.Tile(id)
	if tile == nil {
		t.Fatal("placed tile should exist in the tile set")
	}
	if tile.Row != 1 || tile.Col != 2 || tile.Value != 2 {
		t.Errorf("tile = {%d,%d,%d}, want {1,2,2}", tile.Row, tile.Col, tile.Value)
	}
	if b.At(1, 2) != tile {
		t.Error("grid cell should reference the placed tile")
	}

	// Occupied cell must be a no-op
	if _, ok := b.Place(1, 2, 4); ok {
		t.Error("Place on occupied cell should fail")
	}
	if b.At(1, 2).Value != 2 {
		t.Error("failed Place must not mutate the cell")
	}

	// Out of range
	if _, ok := b.Place(4, 0, 2); ok {
		t.Error("Place out of range should fail")
	}
}

func TestBoardIDsMonotonic(t *testing.T) {
	b := NewBoard()

	var last TileID
	for i := 0; i < BoardSize; i++ {
		id, _ := b.Place(0, i, 2)
		if id <= last {
			t.Errorf("tile id %d not greater than previous %d", id, last)
		}
		last = id
	}

	// Removing a tile must not recycle its id
	b.Remove(last)
	id, _ := b.Place(1, 0, 2)
	if id <= last {
		t.Errorf("id %d reused after removal of %d", id, last)
	}
}

func TestBoardRemove(t *testing.T) {
	b := NewBoard()
	id, _ := b.Place(2, 2, 8)

	b.Remove(id)

	if b.Tile(id) != nil {
		t.Error("removed tile should be gone from the tile set")
	}
	if b.At(2, 2) != nil {
		t.Error("removed tile's cell should be empty")
	}

	// Removing again is harmless
	b.Remove(id)
	// Removing an unknown id is harmless
	b.Remove(9999)
}

func TestBoardEmptyCellsRowMajor(t *testing.T) {
	b := NewBoard()
	b.Place(0, 0, 2)
	b.Place(1, 1, 2)

	cells := b.EmptyCells()
	if len(cells) != 14 {
		t.Fatalf("EmptyCells count = %d, want 14", len(cells))
	}
	if cells[0] != (Cell{Row: 0, Col: 1}) {
		t.Errorf("first empty cell = %v, want (0,1)", cells[0])
	}
	// Row-major: every cell sorts after the previous one
	for i := 1; i < len(cells); i++ {
		prev, cur := cells[i-1], cells[i]
		if cur.Row < prev.Row || (cur.Row == prev.Row && cur.Col <= prev.Col) {
			t.Fatalf("EmptyCells not in row-major order: %v before %v", prev, cur)
		}
	}
}

func TestBoardAdjacency(t *testing.T) {
	tests := []struct {
		name     string
		values   [BoardSize][BoardSize]int
		expected bool
	}{
		{
			name: "horizontal pair",
			values: [BoardSize][BoardSize]int{
				{2, 2, 0, 0},
			},
			expected: true,
		},
		{
			name: "vertical pair",
			values: [BoardSize][BoardSize]int{
				{2, 0, 0, 0},
				{2, 0, 0, 0},
			},
			expected: true,
		},
		{
			name: "diagonal only",
			values: [BoardSize][BoardSize]int{
				{2, 4, 0, 0},
				{4, 2, 0, 0},
			},
			expected: false,
		},
		{
			name: "full checkerboard",
			values: [BoardSize][BoardSize]int{
				{2, 4, 2, 4},
				{4, 2, 4, 2},
				{2, 4, 2, 4},
				{4, 2, 4, 2},
			},
			expected: false,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			b := boardFromValues(tc.values)
			if got := b.HasAdjacentPair(); got != tc.expected {
				t.Errorf("HasAdjacentPair() = %v, want %v", got, tc.expected)
			}
		})
	}
}

func TestBoardHasMove(t *testing.T) {
	// Checkerboard: full, no neighbors, no move
	b := boardFromValues([BoardSize][BoardSize]int{
		{2, 4, 2, 4},
		{4, 2, 4, 2},
		{2, 4, 2, 4},
		{4, 2, 4, 2},
	})
	if b.HasMove() {
		t.Error("full checkerboard should have no move")
	}

	// An empty cell alone allows a move
	b2 := NewBoard()
	b2.Place(0, 0, 2)
	if !b2.HasMove() {
		t.Error("board with empty cells should have a move")
	}
}

func TestBoardMaxValue(t *testing.T) {
	b := NewBoard()
	if b.MaxValue() != 0 {
		t.Errorf("empty board MaxValue = %d, want 0", b.MaxValue())
	}
	b.Place(0, 0, 2)
	b.Place(3, 3, 1024)
	if b.MaxValue() != 1024 {
		t.Errorf("MaxValue = %d, want 1024", b.MaxValue())
	}
}

// boardFromValues builds a board from a value grid; zero means empty.
func boardFromValues(values [BoardSize][BoardSize]int) *Board {
	b := NewBoard()
	for row := range BoardSize {
		for col := range BoardSize {
			if values[row][col] != 0 {
				b.Place(row, col, values[row][col])
			}
		}
	}
	return b
}

// boardValues reads the grid back as a value matrix.
func boardValues(b *Board) [BoardSize][BoardSize]int {
	var values [BoardSize][BoardSize]int
	for row := range BoardSize {
		for col := range BoardSize {
			if t := b.At(row, col); t != nil {
				values[row][col] = t.Value
			}
		}
	}
	return values
}
