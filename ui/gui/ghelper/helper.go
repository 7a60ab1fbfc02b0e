package ghelper

import (
	"image"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
)

// DrawRect fills a region by scaling a 1x1 pixel, so no per-call image
// allocation at the region's size.
func DrawRect(screen *ebiten.Image, r image.Rectangle, c color.RGBA) {
	if r.Dx() <= 0 || r.Dy() <= 0 {
		return
	}
	px := ebiten.NewImage(1, 1)
	px.Fill(c)
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(r.Dx()), float64(r.Dy()))
	op.GeoM.Translate(float64(r.Min.X), float64(r.Min.Y))
	screen.DrawImage(px, op)
}

// DrawSprite scales an image into a region with linear filtering.
func DrawSprite(screen *ebiten.Image, r image.Rectangle, img *ebiten.Image) {
	if img == nil {
		return
	}
	iw := img.Bounds().Dx()
	ih := img.Bounds().Dy()
	if iw == 0 || ih == 0 {
		return
	}
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(r.Dx())/float64(iw), float64(r.Dy())/float64(ih))
	op.GeoM.Translate(float64(r.Min.X), float64(r.Min.Y))
	op.Filter = ebiten.FilterLinear
	screen.DrawImage(img, op)
}
