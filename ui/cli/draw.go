package cli

import (
	"fmt"
	"io"
	"strings"

	"chessview/src/base"
	"chessview/src/board"

	"github.com/fatih/color"
)

var (
	lightTile      = color.New(color.BgHiWhite, color.FgBlack)
	darkTile       = color.New(color.BgHiBlack, color.FgHiWhite)
	lightHighlight = color.New(color.BgHiCyan, color.FgBlack)
	darkHighlight  = color.New(color.BgCyan, color.FgBlack)
)

var whiteGlyphs = map[base.PieceKind]string{
	base.King:   "♔",
	base.Queen:  "♕",
	base.Rook:   "♖",
	base.Bishop: "♗",
	base.Knight: "♘",
	base.Pawn:   "♙",
}

var blackGlyphs = map[base.PieceKind]string{
	base.King:   "♚",
	base.Queen:  "♛",
	base.Rook:   "♜",
	base.Bishop: "♝",
	base.Knight: "♞",
	base.Pawn:   "♟",
}

func glyph(k base.PieceKind, c base.PieceColor) string {
	if c == base.White {
		return whiteGlyphs[k]
	}
	return blackGlyphs[k]
}

func tileStyle(t board.Tile) *color.Color {
	switch {
	case t.Shade() == base.Light && t.Highlighted():
		return lightHighlight
	case t.Shade() == base.Light:
		return lightTile
	case t.Highlighted():
		return darkHighlight
	default:
		return darkTile
	}
}

// PrintBoard renders the grid with file/rank margins: row 0 at the top
// as the highest rank, matching the GUI orientation.
func PrintBoard(w io.Writer, b *board.Board) {
	size := b.Size()

	var header strings.Builder
	header.WriteString(" ")
	for col := 0; col < size; col++ {
		fmt.Fprintf(&header, "  %c", rune('a'+col))
	}

	fmt.Fprintln(w)
	fmt.Fprintln(w, header.String())
	for row := 0; row < size; row++ {
		rank := size - row
		fmt.Fprintf(w, "%d ", rank)
		for col := 0; col < size; col++ {
			pos := base.Point{Row: row, Col: col}
			tile, _ := b.TileAt(pos)
			cell := "   "
			if p := b.PieceAt(pos); p != nil {
				cell = " " + glyph(p.Kind(), p.Color()) + " "
			}
			tileStyle(tile).Fprint(w, cell)
		}
		fmt.Fprintf(w, " %d\n", rank)
	}
	fmt.Fprintln(w, header.String())
	fmt.Fprintln(w)
}
