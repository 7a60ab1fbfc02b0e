package board

import (
	"errors"
	"testing"

	"chessview/src/base"
	"chessview/src/grid"
)

// testResolver hands out the piece identity as the sprite so tests can
// check what ends up in the draw commands.
func testResolver(k base.PieceKind, c base.PieceColor) (base.AssetRef, error) {
	return c.String() + " " + k.String(), nil
}

func newTestBoard(t *testing.T, layout []Placement) *Board {
	t.Helper()
	b, err := New(grid.Default(), ClassicPalette, layout, testResolver)
	if err != nil {
		t.Fatalf("unwanted error building board: %v", err)
	}
	return b
}

func TestNewPawnRank(t *testing.T) {
	b := newTestBoard(t, PawnRank())
	for row := 0; row < 8; row++ {
		for col := 0; col < 8; col++ {
			pos := base.Point{Row: row, Col: col}
			tile, ok := b.TileAt(pos)
			if !ok {
				t.Fatalf("no tile at %v", pos)
			}
			if want := base.ShadeOf(row, col); tile.Shade() != want {
				t.Errorf("tile %v shade = %v, wanted %v", pos, tile.Shade(), want)
			}
			if want := row == 6; tile.Occupied() != want {
				t.Errorf("tile %v occupied = %v, wanted %v", pos, tile.Occupied(), want)
			}
			if tile.Highlighted() {
				t.Errorf("tile %v highlighted after construction", pos)
			}
		}
	}
	if err := b.Validate(); err != nil {
		t.Errorf("fresh board fails validation: %v", err)
	}
}

func TestNewClassic(t *testing.T) {
	b := newTestBoard(t, Classic())
	if got := len(b.pieces); got != 32 {
		t.Fatalf("classic layout placed %v pieces, wanted 32", got)
	}
	counts := map[base.PieceColor]int{}
	for _, p := range b.pieces {
		counts[p.Color()]++
	}
	if counts[base.White] != 16 || counts[base.Black] != 16 {
		t.Errorf("classic layout colors = %v white / %v black, wanted 16/16", counts[base.White], counts[base.Black])
	}
	if p := b.PieceAt(base.Point{Row: 0, Col: 4}); p == nil || p.Kind() != base.King || p.Color() != base.Black {
		t.Errorf("wanted black king at (0,4), got %+v", p)
	}
	if p := b.PieceAt(base.Point{Row: 7, Col: 3}); p == nil || p.Kind() != base.Queen || p.Color() != base.White {
		t.Errorf("wanted white queen at (7,3), got %+v", p)
	}
	if err := b.Validate(); err != nil {
		t.Errorf("classic board fails validation: %v", err)
	}
}

func TestNewRejectsBadPlacement(t *testing.T) {
	placementTests := []struct {
		layout  []Placement
		wantErr error
	}{
		{
			[]Placement{{Kind: base.Pawn, Color: base.White, At: base.Point{Row: 8, Col: 0}}},
			ErrPlacementOutOfBounds,
		},
		{
			[]Placement{{Kind: base.Pawn, Color: base.White, At: base.Point{Row: 0, Col: -1}}},
			ErrPlacementOutOfBounds,
		},
		{
			[]Placement{
				{Kind: base.Pawn, Color: base.White, At: base.Point{Row: 3, Col: 3}},
				{Kind: base.Rook, Color: base.Black, At: base.Point{Row: 3, Col: 3}},
			},
			ErrCellOccupied,
		},
	}
	for i, test := range placementTests {
		_, err := New(grid.Default(), ClassicPalette, test.layout, testResolver)
		if !errors.Is(err, test.wantErr) {
			t.Errorf("Test %v: New error = %v, wanted %v", i, err, test.wantErr)
		}
	}
}

func TestNewResolverFailureAborts(t *testing.T) {
	wantErr := errors.New("no such file")
	failing := func(base.PieceKind, base.PieceColor) (base.AssetRef, error) {
		return nil, wantErr
	}
	if _, err := New(grid.Default(), ClassicPalette, PawnRank(), failing); !errors.Is(err, wantErr) {
		t.Errorf("New error = %v, wanted wrapped %v", err, wantErr)
	}
}

func TestPieceAt(t *testing.T) {
	b := newTestBoard(t, PawnRank())
	if p := b.PieceAt(base.Point{Row: 6, Col: 3}); p == nil || p.Kind() != base.Pawn {
		t.Errorf("PieceAt(6,3) = %+v, wanted a pawn", p)
	}
	if p := b.PieceAt(base.Point{Row: 4, Col: 4}); p != nil {
		t.Errorf("PieceAt(4,4) = %+v, wanted nil", p)
	}
}

func TestClearHighlightsIdempotent(t *testing.T) {
	b := newTestBoard(t, PawnRank())
	b.tiles[2][2].SetHighlighted(true)
	b.tiles[5][3].SetHighlighted(true)
	for n := 0; n < 2; n++ {
		b.ClearHighlights()
		for row := range b.tiles {
			for col := range b.tiles[row] {
				if b.tiles[row][col].Highlighted() {
					t.Fatalf("pass %v: tile (%v,%v) still highlighted", n, row, col)
				}
			}
		}
	}
}

func TestClearSelectionIdempotent(t *testing.T) {
	b := newTestBoard(t, PawnRank())
	b.selectAt(base.Point{Row: 6, Col: 0})
	for n := 0; n < 2; n++ {
		b.ClearSelection()
		if b.Selected() != nil {
			t.Fatalf("pass %v: still a selected piece", n)
		}
	}
	for i, p := range b.pieces {
		if p.Selected() {
			t.Errorf("piece %v still marked selected", i)
		}
	}
}

func TestValidateDetectsCorruption(t *testing.T) {
	corruptions := []struct {
		name    string
		corrupt func(b *Board)
	}{
		{"shared cell", func(b *Board) { b.pieces[1].pos = b.pieces[0].pos }},
		{"stale occupancy", func(b *Board) { b.tiles[0][0].SetOccupied(true) }},
		{"missing occupancy", func(b *Board) { b.tiles[6][0].SetOccupied(false) }},
		{"dangling selection", func(b *Board) { b.selected = len(b.pieces) }},
		{"unmarked selection", func(b *Board) { b.selected = 0 }},
		{"off-board piece", func(b *Board) { b.pieces[0].pos = base.Point{Row: -1, Col: 0} }},
	}
	for i, test := range corruptions {
		b := newTestBoard(t, PawnRank())
		test.corrupt(b)
		if err := b.Validate(); err == nil {
			t.Errorf("Test %v (%v): corruption not detected", i, test.name)
		}
	}
}
