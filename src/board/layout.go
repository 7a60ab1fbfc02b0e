package board

import (
	"errors"

	"chessview/src/base"
)

var ErrUnknownLayout = errors.New("unknown layout")

// Placement puts one piece on one cell of the starting position.
type Placement struct {
	Kind  base.PieceKind
	Color base.PieceColor
	At    base.Point
}

// PawnRank is one full rank of white pawns on row 6, each with a legal
// forward step toward row 0.
func PawnRank() []Placement {
	out := make([]Placement, 0, 8)
	for col := 0; col < 8; col++ {
		out = append(out, Placement{
			Kind:  base.Pawn,
			Color: base.White,
			At:    base.Point{Row: 6, Col: col},
		})
	}
	return out
}

// Classic is the standard 32-piece arrangement: black on rows 0-1,
// white on rows 6-7.
func Classic() []Placement {
	backRank := []base.PieceKind{
		base.Rook, base.Knight, base.Bishop, base.Queen,
		base.King, base.Bishop, base.Knight, base.Rook,
	}
	out := make([]Placement, 0, 32)
	for col, kind := range backRank {
		out = append(out,
			Placement{Kind: kind, Color: base.Black, At: base.Point{Row: 0, Col: col}},
			Placement{Kind: base.Pawn, Color: base.Black, At: base.Point{Row: 1, Col: col}},
			Placement{Kind: base.Pawn, Color: base.White, At: base.Point{Row: 6, Col: col}},
			Placement{Kind: kind, Color: base.White, At: base.Point{Row: 7, Col: col}},
		)
	}
	return out
}

// LayoutByName resolves a config or flag value to a starting layout.
func LayoutByName(name string) ([]Placement, error) {
	switch name {
	case "", "pawns":
		return PawnRank(), nil
	case "classic":
		return Classic(), nil
	default:
		return nil, ErrUnknownLayout
	}
}
