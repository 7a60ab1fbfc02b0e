package gctx

import (
	"chessview/src"
	"chessview/src/grid"
	"chessview/src/logx"
	"chessview/ui/gui/gbase/gconf"
	"chessview/ui/gui/ghelper"
)

// ---- GUI Context ----

type GUIGameContext struct {
	Game         *src.Game
	AssetsWorker *ghelper.GUIAssetsWorker
	Config       *gconf.Config
	Geometry     grid.Geometry
	Logx         logx.Logger
}

func NewGUIGameContext(g *src.Game, a *ghelper.GUIAssetsWorker, c *gconf.Config, l logx.Logger) *GUIGameContext {
	return &GUIGameContext{
		Game:         g,
		AssetsWorker: a,
		Config:       c,
		Geometry:     c.Geometry(),
		Logx:         l,
	}
}
