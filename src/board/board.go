package board

import (
	"errors"
	"fmt"

	"chessview/src/base"
	"chessview/src/grid"
)

var (
	ErrPlacementOutOfBounds = errors.New("placement outside the board")
	ErrCellOccupied         = errors.New("cell already occupied")
)

// AssetResolver maps a piece identity to its drawable sprite. The GUI
// supplies one backed by image files; a resolver error is the single
// fatal startup path.
type AssetResolver func(base.PieceKind, base.PieceColor) (base.AssetRef, error)

// Board owns the tile grid and the piece collection. It is mutated by a
// single control loop only; no method is safe for concurrent use.
type Board struct {
	geom   grid.Geometry
	pal    Palette
	tiles  [][]Tile
	pieces []*Piece

	// index into pieces of the selected piece, -1 when idle
	selected int
}

// New builds the tile grid with derived shades and places the starting
// pieces, resolving a sprite for each. Placement and asset failures
// abort construction.
func New(geom grid.Geometry, pal Palette, layout []Placement, resolve AssetResolver) (*Board, error) {
	b := &Board{
		geom:     geom,
		pal:      pal,
		tiles:    make([][]Tile, geom.BoardSize),
		selected: -1,
	}
	for row := range b.tiles {
		b.tiles[row] = make([]Tile, geom.BoardSize)
		for col := range b.tiles[row] {
			b.tiles[row][col] = Tile{shade: base.ShadeOf(row, col)}
		}
	}
	for _, pl := range layout {
		if !pl.At.InBounds(geom.BoardSize) {
			return nil, fmt.Errorf("place %v %v at %v: %w", pl.Color, pl.Kind, pl.At, ErrPlacementOutOfBounds)
		}
		tile := b.tileAt(pl.At)
		if tile.Occupied() {
			return nil, fmt.Errorf("place %v %v at %v: %w", pl.Color, pl.Kind, pl.At, ErrCellOccupied)
		}
		sprite, err := resolve(pl.Kind, pl.Color)
		if err != nil {
			return nil, fmt.Errorf("load %v %v sprite: %w", pl.Color, pl.Kind, err)
		}
		b.pieces = append(b.pieces, &Piece{
			kind:   pl.Kind,
			color:  pl.Color,
			pos:    pl.At,
			sprite: sprite,
		})
		tile.SetOccupied(true)
	}
	return b, nil
}

func (b *Board) Size() int { return b.geom.BoardSize }

// PieceAt returns the piece on a cell, nil when the cell is empty.
func (b *Board) PieceAt(pos base.Point) *Piece {
	if i := b.pieceIndexAt(pos); i >= 0 {
		return b.pieces[i]
	}
	return nil
}

// TileAt returns a copy of the tile at pos for reading; ok is false
// when pos is off the board.
func (b *Board) TileAt(pos base.Point) (Tile, bool) {
	if !pos.InBounds(b.geom.BoardSize) {
		return Tile{}, false
	}
	return *b.tileAt(pos), true
}

// Selected returns the piece a subsequent click may move, nil when idle.
func (b *Board) Selected() *Piece {
	if b.selected < 0 {
		return nil
	}
	return b.pieces[b.selected]
}

// ClearHighlights drops every tile's highlight. Idempotent.
func (b *Board) ClearHighlights() {
	for row := range b.tiles {
		for col := range b.tiles[row] {
			b.tiles[row][col].SetHighlighted(false)
		}
	}
}

// ClearSelection deselects the selected piece, if any. Idempotent.
func (b *Board) ClearSelection() {
	if b.selected >= 0 {
		b.pieces[b.selected].Deselect()
		b.selected = -1
	}
}

// Validate checks the occupancy invariants: at most one piece per cell,
// tile occupancy agreeing with the piece collection, and the selection
// index pointing at the one selected piece. Test support; the mutation
// paths keep these true on their own.
func (b *Board) Validate() error {
	occ := make(map[base.Point]int, len(b.pieces))
	for i, p := range b.pieces {
		if !p.Position().InBounds(b.geom.BoardSize) {
			return fmt.Errorf("piece %d (%v %v) off the board at %v", i, p.Color(), p.Kind(), p.Position())
		}
		if j, ok := occ[p.Position()]; ok {
			return fmt.Errorf("pieces %d and %d share cell %v", j, i, p.Position())
		}
		occ[p.Position()] = i
	}
	for row := range b.tiles {
		for col := range b.tiles[row] {
			pos := base.Point{Row: row, Col: col}
			_, hasPiece := occ[pos]
			if b.tiles[row][col].Occupied() != hasPiece {
				return fmt.Errorf("tile %v occupied=%v but piece present=%v", pos, b.tiles[row][col].Occupied(), hasPiece)
			}
		}
	}
	if b.selected >= len(b.pieces) {
		return fmt.Errorf("selection index %d out of range", b.selected)
	}
	for i, p := range b.pieces {
		if p.Selected() != (i == b.selected) {
			return fmt.Errorf("piece %d selected=%v but selection index is %d", i, p.Selected(), b.selected)
		}
	}
	return nil
}

func (b *Board) tileAt(pos base.Point) *Tile {
	return &b.tiles[pos.Row][pos.Col]
}

func (b *Board) pieceIndexAt(pos base.Point) int {
	for i, p := range b.pieces {
		if p.Position() == pos {
			return i
		}
	}
	return -1
}

// removePieceAt drops a captured piece and keeps the selection index
// pointing at the same piece.
func (b *Board) removePieceAt(i int) {
	b.pieces = append(b.pieces[:i], b.pieces[i+1:]...)
	if b.selected > i {
		b.selected--
	} else if b.selected == i {
		b.selected = -1
	}
}
