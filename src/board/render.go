package board

import (
	"image"
	"image/color"

	"chessview/src/base"
)

// Palette holds the four tile fills: light/dark crossed with
// highlighted or not.
type Palette struct {
	Light          color.RGBA
	Dark           color.RGBA
	LightHighlight color.RGBA
	DarkHighlight  color.RGBA
}

var ClassicPalette = Palette{
	Light:          color.RGBA{234, 221, 202, 255},
	Dark:           color.RGBA{111, 78, 55, 255},
	LightHighlight: color.RGBA{137, 196, 244, 255},
	DarkHighlight:  color.RGBA{112, 169, 215, 255},
}

var OceanPalette = Palette{
	Light:          color.RGBA{222, 227, 230, 255},
	Dark:           color.RGBA{70, 107, 131, 255},
	LightHighlight: color.RGBA{160, 210, 160, 255},
	DarkHighlight:  color.RGBA{106, 170, 106, 255},
}

func PaletteByName(name string) Palette {
	switch name {
	case "ocean":
		return OceanPalette
	default:
		return ClassicPalette
	}
}

// Fill picks the tile fill for a shade and highlight state.
func (pal Palette) Fill(s base.Shade, highlighted bool) color.RGBA {
	switch {
	case s == base.Light && highlighted:
		return pal.LightHighlight
	case s == base.Light:
		return pal.Light
	case highlighted:
		return pal.DarkHighlight
	default:
		return pal.Dark
	}
}

// DrawCommand tells the renderer to paint one visual element. Asset==nil
// means a filled rectangle; otherwise the sprite is drawn into Region.
type DrawCommand struct {
	Region image.Rectangle
	Fill   color.RGBA
	Asset  base.AssetRef
}

// DrawCommands enumerates the frame: every tile in row-major order,
// then every piece. Rebuilt on each call since highlight and selection
// state change between frames.
func (b *Board) DrawCommands() []DrawCommand {
	size := b.geom.BoardSize
	cmds := make([]DrawCommand, 0, size*size+len(b.pieces))
	for row := 0; row < size; row++ {
		for col := 0; col < size; col++ {
			t := &b.tiles[row][col]
			cmds = append(cmds, DrawCommand{
				Region: b.geom.CellToRegion(base.Point{Row: row, Col: col}),
				Fill:   b.pal.Fill(t.Shade(), t.Highlighted()),
			})
		}
	}
	for _, p := range b.pieces {
		cmds = append(cmds, DrawCommand{
			Region: b.geom.PieceRegion(p.Position()),
			Asset:  p.Sprite(),
		})
	}
	return cmds
}
