package board

import "chessview/src/base"

// Piece is a movable entity on the board. Placement validity lives in
// Board; a piece only records its own state.
type Piece struct {
	kind     base.PieceKind
	color    base.PieceColor
	pos      base.Point
	selected bool
	moved    bool
	sprite   base.AssetRef
}

func (p *Piece) Kind() base.PieceKind { return p.kind }

func (p *Piece) Color() base.PieceColor { return p.color }

func (p *Piece) Position() base.Point { return p.pos }

func (p *Piece) Selected() bool { return p.selected }

func (p *Piece) Moved() bool { return p.moved }

func (p *Piece) Sprite() base.AssetRef { return p.sprite }

func (p *Piece) Select()   { p.selected = true }
func (p *Piece) Deselect() { p.selected = false }

// MoveTo records the new position and that the piece has moved at least
// once (pawn double-step eligibility keys off this).
func (p *Piece) MoveTo(pos base.Point) {
	p.pos = pos
	p.moved = true
}
