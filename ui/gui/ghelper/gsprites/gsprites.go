package gsprites

import (
	"image"
	"image/color"
	"os"
	"path/filepath"

	"chessview/src/base"

	"github.com/fogleman/gg"
)

// sprite fills and outlines; outlines keep both colors readable on both
// tile shades
var (
	whiteFill   = color.RGBA{0xf2, 0xf0, 0xe8, 0xff}
	whiteStroke = color.RGBA{0x2a, 0x28, 0x26, 0xff}
	blackFill   = color.RGBA{0x2a, 0x28, 0x26, 0xff}
	blackStroke = color.RGBA{0xe6, 0xe6, 0xe6, 0xff}
)

// SpriteName is the file stem for a piece sprite: "wpawn", "bking", ...
func SpriteName(k base.PieceKind, c base.PieceColor) string {
	prefix := "w"
	if c == base.Black {
		prefix = "b"
	}
	return prefix + k.String()
}

// Render rasterizes one piece silhouette onto a transparent size×size
// canvas. Pure image output, no graphics context needed.
func Render(k base.PieceKind, c base.PieceColor, size int) image.Image {
	dc := gg.NewContext(size, size)

	fill, stroke := whiteFill, whiteStroke
	if c == base.Black {
		fill, stroke = blackFill, blackStroke
	}

	s := float64(size)
	tracePiece(dc, k, s)

	dc.SetRGBA255(int(fill.R), int(fill.G), int(fill.B), int(fill.A))
	dc.FillPreserve()
	dc.SetRGBA255(int(stroke.R), int(stroke.G), int(stroke.B), int(stroke.A))
	dc.SetLineWidth(s * 0.02)
	dc.Stroke()

	return dc.Image()
}

// Generate writes all twelve sprites into dir and returns the paths.
func Generate(dir string, size int) ([]string, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, err
	}
	kinds := []base.PieceKind{base.Pawn, base.Queen, base.Rook, base.Knight, base.Bishop, base.King}
	var paths []string
	for _, c := range []base.PieceColor{base.White, base.Black} {
		for _, k := range kinds {
			path := filepath.Join(dir, SpriteName(k, c)+".png")
			if err := gg.SavePNG(path, Render(k, c, size)); err != nil {
				return nil, err
			}
			paths = append(paths, path)
		}
	}
	return paths, nil
}

// tracePiece builds the silhouette path in canvas coordinates; shapes
// are laid out on a unit square and scaled by s.
func tracePiece(dc *gg.Context, k base.PieceKind, s float64) {
	switch k {
	case base.Pawn:
		dc.DrawCircle(0.50*s, 0.32*s, 0.14*s)
		trapezoid(dc, s, 0.40, 0.60, 0.46, 0.30, 0.70, 0.82)
	case base.Rook:
		for _, x := range []float64{0.28, 0.44, 0.60} {
			dc.DrawRectangle(x*s, 0.18*s, 0.12*s, 0.14*s)
		}
		dc.DrawRectangle(0.32*s, 0.32*s, 0.36*s, 0.50*s)
	case base.Knight:
		dc.MoveTo(0.30*s, 0.82*s)
		dc.LineTo(0.30*s, 0.58*s)
		dc.LineTo(0.42*s, 0.38*s)
		dc.LineTo(0.38*s, 0.20*s)
		dc.LineTo(0.56*s, 0.28*s)
		dc.LineTo(0.70*s, 0.48*s)
		dc.LineTo(0.72*s, 0.82*s)
		dc.ClosePath()
	case base.Bishop:
		dc.DrawCircle(0.50*s, 0.20*s, 0.06*s)
		dc.DrawEllipse(0.50*s, 0.48*s, 0.16*s, 0.22*s)
		trapezoid(dc, s, 0.42, 0.58, 0.68, 0.32, 0.68, 0.82)
	case base.Queen:
		for _, p := range []struct{ x, y float64 }{{0.30, 0.24}, {0.50, 0.18}, {0.70, 0.24}} {
			dc.DrawCircle(p.x*s, p.y*s, 0.06*s)
		}
		trapezoid(dc, s, 0.34, 0.66, 0.30, 0.28, 0.72, 0.82)
	case base.King:
		dc.DrawRectangle(0.47*s, 0.08*s, 0.06*s, 0.20*s)
		dc.DrawRectangle(0.40*s, 0.14*s, 0.20*s, 0.06*s)
		trapezoid(dc, s, 0.36, 0.64, 0.30, 0.28, 0.72, 0.82)
	}
	// common base plinth
	dc.DrawRectangle(0.24*s, 0.82*s, 0.52*s, 0.08*s)
}

// trapezoid from a narrow top edge (x1..x2 at yTop) widening to
// (x3..x4 at yBottom)
func trapezoid(dc *gg.Context, s, x1, x2, yTop, x3, x4, yBottom float64) {
	dc.MoveTo(x1*s, yTop*s)
	dc.LineTo(x2*s, yTop*s)
	dc.LineTo(x4*s, yBottom*s)
	dc.LineTo(x3*s, yBottom*s)
	dc.ClosePath()
}
