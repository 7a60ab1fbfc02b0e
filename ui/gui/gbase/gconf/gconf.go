package gconf

import (
	"encoding/json"
	"fmt"
	"os"

	"chessview/src/grid"

	"github.com/adrg/xdg"
)

const cfgFile = "chessview.json"

type Config struct {
	BoardSize  int    `json:"board_size"`  // cells per side
	TileSize   int    `json:"tile_size"`   // pixels per cell
	PieceInset int    `json:"piece_inset"` // pixels around a sprite
	Layout     string `json:"layout"`      // pawns/classic
	Theme      string `json:"theme"`       // classic/ocean
	AssetsDir  string `json:"assets_dir"`  // piece sprite directory
	Debug      bool   `json:"debug"`       // true/false
}

func defaultConfig() Config {
	return Config{
		BoardSize:  8,
		TileSize:   100,
		PieceInset: 5,
		Layout:     "pawns",
		Theme:      "classic",
		AssetsDir:  "assets/images",
		Debug:      false,
	}
}

// NewGUIConfig reads the config from the working directory first, then
// from the XDG config home; a missing file means defaults. Malformed
// values are corrected rather than rejected.
func NewGUIConfig() (*Config, error) {
	path := cfgFile
	_, err := os.Stat(path)
	if os.IsNotExist(err) {
		abs, xerr := xdg.SearchConfigFile("chessview/" + cfgFile)
		if xerr != nil {
			def := defaultConfig()
			return &def, nil
		}
		path = abs
	} else if err != nil {
		return nil, err
	}

	conf, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer conf.Close()

	dec := json.NewDecoder(conf)
	var c Config
	if err := dec.Decode(&c); err != nil {
		return nil, fmt.Errorf("error decode config: %s", err)
	}
	correctableConfig(&c)

	return &c, nil
}

// Save writes the active config into the working directory for editing.
func (c *Config) Save() error {
	jsonData, err := json.MarshalIndent(c, "", "    ")
	if err != nil {
		return err
	}
	return os.WriteFile(cfgFile, jsonData, 0644)
}

// Geometry builds the grid geometry the config describes; the window
// size derives from it.
func (c *Config) Geometry() grid.Geometry {
	return grid.Geometry{
		BoardSize:  c.BoardSize,
		TileSize:   c.TileSize,
		PieceInset: c.PieceInset,
	}
}

func correctableConfig(c *Config) {
	def := defaultConfig()
	if c.BoardSize <= 0 {
		c.BoardSize = def.BoardSize
	}
	if c.TileSize <= 0 {
		c.TileSize = def.TileSize
	}
	if c.PieceInset < 0 || c.PieceInset*2 >= c.TileSize {
		c.PieceInset = def.PieceInset
	}
	if c.Layout != "pawns" && c.Layout != "classic" {
		c.Layout = def.Layout
	}
	if c.Theme != "classic" && c.Theme != "ocean" {
		c.Theme = def.Theme
	}
	if c.AssetsDir == "" {
		c.AssetsDir = def.AssetsDir
	}
}
