package src

import (
	"chessview/src/board"
	"chessview/src/grid"
	"chessview/src/logx"
)

// Game wires the board to the logger. Call CreateFromLayout before
// anything else; the per-frame methods never fail after that.
type Game struct {
	board  *board.Board
	logger logx.Logger
}

func NewGame(logger logx.Logger) *Game {
	return &Game{logger: logger}
}

func (g *Game) CreateFromLayout(name string, geom grid.Geometry, pal board.Palette, resolve board.AssetResolver) error {
	g.logger.Debugf("create board with layout: %v", name)
	layout, err := board.LayoutByName(name)
	if err != nil {
		g.logger.Errorf("layout %q: %v", name, err)
		return err
	}
	b, err := board.New(geom, pal, layout, resolve)
	if err != nil {
		g.logger.Errorf("error build board: %v", err)
		return err
	}
	g.board = b
	return nil
}

func (g *Game) HandleClick(x, y int) board.ClickOutcome {
	outcome := g.board.HandleClick(x, y)
	if outcome == board.ClickIgnored {
		g.logger.Debugf("click (%v,%v): ignored", x, y)
	} else {
		g.logger.Infof("click (%v,%v): %v", x, y, outcome)
	}
	return outcome
}

func (g *Game) DrawCommands() []board.DrawCommand {
	return g.board.DrawCommands()
}

func (g *Game) Board() *board.Board { return g.board }
