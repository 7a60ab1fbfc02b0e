package grid

import (
	"errors"
	"image"

	"chessview/src/base"
)

// ErrOutOfBounds marks a pixel coordinate that lands outside the board.
// Callers recover by ignoring the event.
var ErrOutOfBounds = errors.New("pixel outside the board")

// Geometry converts between the render surface's pixel space (origin
// top-left) and grid cells. Stateless; safe to copy.
type Geometry struct {
	BoardSize  int // cells per side
	TileSize   int // pixels per cell
	PieceInset int // pixels between a piece sprite and its tile edge
}

func Default() Geometry {
	return Geometry{BoardSize: 8, TileSize: 100, PieceInset: 5}
}

// PixelToCell maps a pixel to its cell: x selects the column, y the row,
// the same convention CellToRegion draws with.
func (g Geometry) PixelToCell(x, y int) (base.Point, error) {
	if x < 0 || y < 0 {
		return base.Point{}, ErrOutOfBounds
	}
	p := base.Point{Row: y / g.TileSize, Col: x / g.TileSize}
	if !p.InBounds(g.BoardSize) {
		return base.Point{}, ErrOutOfBounds
	}
	return p, nil
}

// CellToRegion returns the full tile rectangle of a cell.
func (g Geometry) CellToRegion(p base.Point) image.Rectangle {
	x := p.Col * g.TileSize
	y := p.Row * g.TileSize
	return image.Rect(x, y, x+g.TileSize, y+g.TileSize)
}

// PieceRegion returns the tile rectangle shrunk by the piece inset, so a
// sprite sits centered with a visible border of tile color around it.
func (g Geometry) PieceRegion(p base.Point) image.Rectangle {
	return g.CellToRegion(p).Inset(g.PieceInset)
}

// WindowSize is the pixel size of the surface that shows the whole board.
func (g Geometry) WindowSize() (w, h int) {
	s := g.BoardSize * g.TileSize
	return s, s
}
