package grid

import (
	"image"
	"testing"

	"chessview/src/base"
)

func TestPixelToCell(t *testing.T) {
	g := Default()
	pixelTests := []struct {
		x, y    int
		want    base.Point
		wantErr bool
	}{
		{0, 0, base.Point{Row: 0, Col: 0}, false},
		{99, 99, base.Point{Row: 0, Col: 0}, false},
		{100, 0, base.Point{Row: 0, Col: 1}, false},
		{0, 100, base.Point{Row: 1, Col: 0}, false},
		{350, 620, base.Point{Row: 6, Col: 3}, false},
		{799, 799, base.Point{Row: 7, Col: 7}, false},
		{800, 0, base.Point{}, true},
		{0, 800, base.Point{}, true},
		{-1, 0, base.Point{}, true},
		{0, -1, base.Point{}, true},
		{-100, -100, base.Point{}, true},
		{12345, 0, base.Point{}, true},
	}
	for i, test := range pixelTests {
		got, err := g.PixelToCell(test.x, test.y)
		if test.wantErr {
			if err == nil {
				t.Errorf("Test %v: PixelToCell(%v,%v) wanted error, got %v", i, test.x, test.y, got)
			}
			continue
		}
		if err != nil {
			t.Errorf("Test %v: PixelToCell(%v,%v) unwanted error: %v", i, test.x, test.y, err)
			continue
		}
		if got != test.want {
			t.Errorf("Test %v: PixelToCell(%v,%v) = %v, wanted %v", i, test.x, test.y, got, test.want)
		}
	}
}

// Every pixel of the window maps to some cell, and the cell's region
// contains the pixel that produced it.
func TestPixelToCellCoversWindow(t *testing.T) {
	g := Default()
	w, h := g.WindowSize()
	for x := 0; x < w; x++ {
		for y := 0; y < h; y++ {
			p, err := g.PixelToCell(x, y)
			if err != nil {
				t.Fatalf("PixelToCell(%v,%v): unwanted error: %v", x, y, err)
			}
			if !image.Pt(x, y).In(g.CellToRegion(p)) {
				t.Fatalf("pixel (%v,%v) not inside region of its own cell %v", x, y, p)
			}
		}
	}
}

// CellToRegion∘PixelToCell is idempotent on tile regions: converting a
// region's corner back to a cell yields the same region.
func TestRegionRoundTrip(t *testing.T) {
	g := Default()
	for row := 0; row < g.BoardSize; row++ {
		for col := 0; col < g.BoardSize; col++ {
			p := base.Point{Row: row, Col: col}
			r := g.CellToRegion(p)
			back, err := g.PixelToCell(r.Min.X, r.Min.Y)
			if err != nil {
				t.Fatalf("cell %v: unwanted error: %v", p, err)
			}
			if r2 := g.CellToRegion(back); r2 != r {
				t.Errorf("cell %v: region %v round-tripped to %v", p, r, r2)
			}
		}
	}
}

func TestCellToRegion(t *testing.T) {
	g := Default()
	regionTests := []struct {
		p    base.Point
		want image.Rectangle
	}{
		{base.Point{Row: 0, Col: 0}, image.Rect(0, 0, 100, 100)},
		{base.Point{Row: 0, Col: 7}, image.Rect(700, 0, 800, 100)},
		{base.Point{Row: 7, Col: 0}, image.Rect(0, 700, 100, 800)},
		{base.Point{Row: 6, Col: 3}, image.Rect(300, 600, 400, 700)},
	}
	for i, test := range regionTests {
		if got := g.CellToRegion(test.p); got != test.want {
			t.Errorf("Test %v: CellToRegion(%v) = %v, wanted %v", i, test.p, got, test.want)
		}
	}
}

func TestPieceRegion(t *testing.T) {
	g := Default()
	got := g.PieceRegion(base.Point{Row: 1, Col: 2})
	want := image.Rect(205, 105, 295, 195)
	if got != want {
		t.Errorf("PieceRegion = %v, wanted %v", got, want)
	}
	if got.Dx() != g.TileSize-2*g.PieceInset || got.Dy() != g.TileSize-2*g.PieceInset {
		t.Errorf("piece region size = %vx%v, wanted %vx%v", got.Dx(), got.Dy(), 90, 90)
	}
}

func TestWindowSize(t *testing.T) {
	w, h := Default().WindowSize()
	if w != 800 || h != 800 {
		t.Errorf("WindowSize = %vx%v, wanted 800x800", w, h)
	}
}
