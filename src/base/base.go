package base

// PieceKind is the movement class of a piece. Only pawn movement is
// implemented so far; the other kinds exist for placement and rendering.
type PieceKind uint8

const (
	Pawn PieceKind = iota
	Queen
	Rook
	Knight
	Bishop
	King
)

func (k PieceKind) String() string {
	switch k {
	case Pawn:
		return "pawn"
	case Queen:
		return "queen"
	case Rook:
		return "rook"
	case Knight:
		return "knight"
	case Bishop:
		return "bishop"
	case King:
		return "king"
	default:
		return "invalid"
	}
}

type PieceColor uint8

const (
	White PieceColor = iota
	Black
)

func (c PieceColor) String() string {
	switch c {
	case White:
		return "white"
	case Black:
		return "black"
	default:
		return "invalid"
	}
}

// Other returns the opposite color.
func (c PieceColor) Other() PieceColor {
	return c ^ 1
}

// Shade is a tile's base color, fixed at board construction.
type Shade uint8

const (
	Light Shade = iota
	Dark
)

func (s Shade) String() string {
	switch s {
	case Light:
		return "light"
	case Dark:
		return "dark"
	default:
		return "invalid"
	}
}

// ShadeOf derives the checker pattern for a cell: light when row+col is even.
func ShadeOf(row, col int) Shade {
	if (row+col)%2 == 0 {
		return Light
	}
	return Dark
}

// Point is a cell on the grid, 0-indexed from the top-left corner.
type Point struct {
	Row int
	Col int
}

// InBounds reports whether the point lies on a size×size grid.
func (p Point) InBounds(size int) bool {
	return p.Row >= 0 && p.Row < size && p.Col >= 0 && p.Col < size
}

// AssetRef is an opaque handle to a drawable sprite. The core carries it from
// the resolver to the draw commands without ever looking inside; the GUI side
// supplies *ebiten.Image values, tests supply whatever they like.
type AssetRef interface{}
