package core

import "testing"

func TestGridAtOutOfBounds(t *testing.T) {
	g := NewGrid(4, 3)
	g.Set(1, 1, TileMario)

	tests := []struct {
		name     string
		x, y     int
		expected Tile
	}{
		{"in bounds", 1, 1, TileMario},
		{"negative x", -1, 1, TileEmpty},
		{"negative y", 1, -1, TileEmpty},
		{"x past width", 4, 1, TileEmpty},
		{"y past height", 1, 3, TileEmpty},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := g.At(tc.x, tc.y); got != tc.expected {
				t.Errorf("At(%d, %d) = %v, expected %v", tc.x, tc.y, got, tc.expected)
			}
		})
	}
}

func TestGridSetOutOfBoundsIgnored(t *testing.T) {
	g := NewGrid(2, 2)
	g.Set(5, 5, TileGoomba)
	g.Set(-1, 0, TileGoomba)

	if len(g.Find(TileGoomba)) != 0 {
		t.Error("Out-of-bounds Set should not place tiles")
	}
}

func TestGridFindRowMajorOrder(t *testing.T) {
	g := NewGrid(4, 3)
	g.Set(3, 0, TileGoomba)
	g.Set(0, 1, TileGoomba)
	g.Set(2, 1, TileGoomba)

	positions := g.Find(TileGoomba)
	expected := []Position{{X: 3, Y: 0}, {X: 0, Y: 1}, {X: 2, Y: 1}}

	if len(positions) != len(expected) {
		t.Fatalf("Find() returned %d positions, expected %d", len(positions), len(expected))
	}
	for i, pos := range positions {
		if pos != expected[i] {
			t.Errorf("Find()[%d] = %+v, expected %+v", i, pos, expected[i])
		}
	}
}

func TestGridFindEmptyResult(t *testing.T) {
	g := NewGrid(4, 4)
	if got := g.Find(TilePipe); got != nil {
		t.Errorf("Find() on empty grid = %v, expected nil", got)
	}
}

func TestGridFromRowsRagged(t *testing.T) {
	g := GridFromRows([][]Tile{
		{TileMario, TileEmpty},
		{TileBlock},
	})

	if g.Width() != 2 || g.Height() != 2 {
		t.Fatalf("Dimensions = %dx%d, expected 2x2", g.Width(), g.Height())
	}
	if g.At(1, 1) != TileEmpty {
		t.Error("Short row should be padded with empty tiles")
	}
	if g.At(0, 1) != TileBlock {
		t.Error("Tile from short row lost")
	}
}

func TestGridEqualAndRows(t *testing.T) {
	g1 := NewGrid(3, 2)
	g1.Set(1, 0, TilePipe)

	g2 := GridFromRows(g1.Rows())
	if !g1.Equal(g2) {
		t.Error("Grid rebuilt from Rows() should be equal")
	}

	// Rows() must be a copy
	rows := g1.Rows()
	rows[0][1] = TileGoomba
	if g1.At(1, 0) != TilePipe {
		t.Error("Mutating Rows() result leaked into the grid")
	}

	g2.Set(0, 0, TileMario)
	if g1.Equal(g2) {
		t.Error("Grids with different cells should not be equal")
	}

	g3 := NewGrid(2, 2)
	if g1.Equal(g3) {
		t.Error("Grids with different dimensions should not be equal")
	}
}
