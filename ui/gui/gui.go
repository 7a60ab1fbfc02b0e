package gui

import (
	"fmt"

	"chessview/ui/gui/gbase"
	"chessview/ui/gui/gctx"
	"chessview/ui/gui/ghelper"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
)

// GUIProcessing is the ebiten.Game: it forwards click edges to the core
// and paints whatever draw commands the board produces.
type GUIProcessing struct {
	ctx           *gctx.GUIGameContext
	prevMouseDown bool
}

func NewGUI(ctx *gctx.GUIGameContext) *GUIProcessing {
	return &GUIProcessing{ctx: ctx}
}

func (gp *GUIProcessing) Run() error {
	w, h := gp.ctx.Geometry.WindowSize()
	ebiten.SetWindowSize(w, h)
	ebiten.SetWindowTitle(gbase.WindowTitle)
	return ebiten.RunGame(gp)
}

// Update runs before Draw each frame, so every queued click is handled
// before the frame's draw commands are produced.
func (gp *GUIProcessing) Update() error {
	mouseDown := ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft)
	justPressed := mouseDown && !gp.prevMouseDown
	gp.prevMouseDown = mouseDown

	if justPressed {
		mx, my := ebiten.CursorPosition()
		gp.ctx.Game.HandleClick(mx, my)
	}
	return nil
}

func (gp *GUIProcessing) Draw(screen *ebiten.Image) {
	screen.Fill(gbase.AppBg)

	for _, cmd := range gp.ctx.Game.DrawCommands() {
		if cmd.Asset == nil {
			ghelper.DrawRect(screen, cmd.Region, cmd.Fill)
			continue
		}
		img, ok := cmd.Asset.(*ebiten.Image)
		if !ok {
			// unexpected asset type: skip the sprite, keep the frame
			continue
		}
		ghelper.DrawSprite(screen, cmd.Region, img)
	}

	if gp.ctx.Config.Debug {
		ebitenutil.DebugPrint(screen, fmt.Sprintf("TPS: %0.2f", ebiten.ActualTPS()))
	}
}

func (gp *GUIProcessing) Layout(outsideWidth, outsideHeight int) (screenWidth, screenHeight int) {
	return gp.ctx.Geometry.WindowSize()
}
