package ui

import (
	"context"
	"fmt"
	"os"

	"chessview/src"
	"chessview/src/base"
	"chessview/src/board"
	"chessview/src/logx"
	clic "chessview/ui/cli"
	"chessview/ui/gui"
	"chessview/ui/gui/gbase/gconf"
	"chessview/ui/gui/gctx"
	"chessview/ui/gui/ghelper"
	"chessview/ui/gui/ghelper/gsprites"

	"github.com/fatih/color"
	"github.com/urfave/cli/v3"
	"golang.org/x/term"
)

const logfile string = "chessview.log"

func GetLogger(file *os.File, c *cli.Command) *logx.Logx {
	l := logx.NewLogx(c.String("level"), c.Bool("debug"), c.Bool("console"))
	l.InitLogger(file)
	return l
}

func loadConfig(c *cli.Command) (*gconf.Config, error) {
	cfg, err := gconf.NewGUIConfig()
	if err != nil {
		return nil, err
	}
	if c.String("layout") != "" {
		cfg.Layout = c.String("layout")
	}
	if c.String("assets") != "" {
		cfg.AssetsDir = c.String("assets")
	}
	if c.Bool("debug") {
		cfg.Debug = true
	}
	return cfg, nil
}

func RunGUI(c *cli.Command) error {
	file, err := os.OpenFile(logfile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0666)
	if err != nil {
		fmt.Printf("error open logfile: %v", err)
		return nil
	}
	defer file.Close()
	logger := GetLogger(file, c)

	cfg, err := loadConfig(c)
	if err != nil {
		logger.Errorf("error load config: %v", err)
		return err
	}

	aw, err := ghelper.NewGUIAssetsWorker(cfg.AssetsDir)
	if err != nil {
		logger.Errorf("error load assets: %v", err)
		return err
	}

	game := src.NewGame(logger)
	if err := game.CreateFromLayout(cfg.Layout, cfg.Geometry(), board.PaletteByName(cfg.Theme), aw.Resolver()); err != nil {
		return err
	}

	return gui.NewGUI(gctx.NewGUIGameContext(game, aw, cfg, logger)).Run()
}

func runPrint(c *cli.Command) error {
	file, err := os.OpenFile(logfile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0666)
	if err != nil {
		fmt.Printf("error open logfile: %v", err)
		return nil
	}
	defer file.Close()
	logger := GetLogger(file, c)

	cfg, err := loadConfig(c)
	if err != nil {
		logger.Errorf("error load config: %v", err)
		return err
	}

	// the terminal needs no sprites; resolve to the piece name
	resolve := func(k base.PieceKind, pc base.PieceColor) (base.AssetRef, error) {
		return pc.String() + " " + k.String(), nil
	}
	game := src.NewGame(logger)
	if err := game.CreateFromLayout(cfg.Layout, cfg.Geometry(), board.PaletteByName(cfg.Theme), resolve); err != nil {
		return err
	}

	if c.Bool("no-color") || !term.IsTerminal(int(os.Stdout.Fd())) {
		color.NoColor = true
	}
	clic.EnableANSI()
	clic.PrintBoard(os.Stdout, game.Board())
	return nil
}

func RunChessView() error {
	lvlf := &cli.StringFlag{
		Name:    "level",
		Aliases: []string{"l"},
		Usage:   "logger level",
		Value:   "info",
	}
	df := &cli.BoolFlag{
		Name:    "debug",
		Aliases: []string{"d"},
		Usage:   "enable debug mod",
	}
	cf := &cli.BoolFlag{
		Name:    "console",
		Aliases: []string{"c"},
		Usage:   "console logger encoding",
	}
	layf := &cli.StringFlag{
		Name:  "layout",
		Usage: "starting layout: pawns or classic",
	}
	asf := &cli.StringFlag{
		Name:  "assets",
		Usage: "piece sprite directory",
	}
	ncf := &cli.BoolFlag{
		Name:  "no-color",
		Usage: "disable colored output",
	}
	szf := &cli.IntFlag{
		Name:  "size",
		Usage: "sprite size in pixels",
		Value: 256,
	}
	guiff := []cli.Flag{layf, asf, df, lvlf, cf}
	printff := []cli.Flag{layf, ncf, df, lvlf, cf}

	return (&cli.Command{
		Name:  "chessview",
		Usage: "mini chessboard viewer",
		Flags: guiff,
		Commands: []*cli.Command{
			{
				Name:  "gui",
				Usage: "open the board window",
				Flags: guiff,
				Action: func(ctx context.Context, c *cli.Command) error {
					if err := RunGUI(c); err != nil {
						fmt.Printf("error GUI: %v\n", err)
					}
					return nil
				},
			},
			{
				Name:  "print",
				Usage: "print the starting board to the terminal",
				Flags: printff,
				Action: func(ctx context.Context, c *cli.Command) error {
					if err := runPrint(c); err != nil {
						fmt.Printf("error print: %v\n", err)
					}
					return nil
				},
			},
			{
				Name:  "assets",
				Usage: "sprite asset tools",
				Commands: []*cli.Command{
					{
						Name:  "generate",
						Usage: "render the piece sprites into the assets directory",
						Flags: []cli.Flag{asf, szf},
						Action: func(ctx context.Context, c *cli.Command) error {
							dir := c.String("assets")
							if dir == "" {
								dir = "assets/images"
							}
							paths, err := gsprites.Generate(dir, int(c.Int("size")))
							if err != nil {
								fmt.Printf("error generate sprites: %v\n", err)
								return nil
							}
							for _, p := range paths {
								fmt.Println(p)
							}
							return nil
						},
					},
				},
			},
		},
		Action: func(ctx context.Context, c *cli.Command) error {
			if err := RunGUI(c); err != nil {
				fmt.Printf("error GUI: %v\n", err)
			}
			return nil
		},
	}).Run(context.Background(), os.Args)
}
