package board

import "chessview/src/base"

// CandidateMoves returns the cells the piece may move to from where it
// stands. One dispatch point per kind; only pawn movement is modeled so
// far, the other kinds have no candidates yet.
func (b *Board) CandidateMoves(p *Piece) []base.Point {
	switch p.Kind() {
	case base.Pawn:
		return b.pawnMoves(p)
	default:
		return nil
	}
}

// pawnMoves: one forward step onto a free cell, plus the double step
// while the pawn has never moved and both cells are free. White steps
// toward row 0, black toward the last row. Forward steps never capture.
func (b *Board) pawnMoves(p *Piece) []base.Point {
	dir := -1
	if p.Color() == base.Black {
		dir = 1
	}
	one := base.Point{Row: p.Position().Row + dir, Col: p.Position().Col}
	if !one.InBounds(b.geom.BoardSize) || b.PieceAt(one) != nil {
		return nil
	}
	out := []base.Point{one}
	if !p.Moved() {
		two := base.Point{Row: one.Row + dir, Col: one.Col}
		if two.InBounds(b.geom.BoardSize) && b.PieceAt(two) == nil {
			out = append(out, two)
		}
	}
	return out
}
