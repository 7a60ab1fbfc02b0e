package board

import "chessview/src/base"

// Tile is one fixed cell of the board. The shade never changes after
// construction; occupancy and highlight mutate only through Board.
type Tile struct {
	shade       base.Shade
	occupied    bool
	highlighted bool
}

func (t *Tile) Shade() base.Shade { return t.shade }

func (t *Tile) Occupied() bool { return t.occupied }

func (t *Tile) Highlighted() bool { return t.highlighted }

func (t *Tile) SetOccupied(v bool) { t.occupied = v }

func (t *Tile) SetHighlighted(v bool) { t.highlighted = v }
