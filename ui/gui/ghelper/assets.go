package ghelper

import (
	"fmt"
	"os"
	"path/filepath"

	"chessview/src/base"
	"chessview/src/board"
	"chessview/ui/gui/ghelper/gsprites"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	_ "golang.org/x/image/bmp" // sprite files may be BMP as well as PNG
)

type pieceKey struct {
	kind  base.PieceKind
	color base.PieceColor
}

// GUIAssetsWorker loads one sprite per piece identity from the assets
// directory and hands them to the board as opaque references.
type GUIAssetsWorker struct {
	pieceImages map[pieceKey]*ebiten.Image
}

func NewGUIAssetsWorker(rootDirAssets string) (*GUIAssetsWorker, error) {
	imgs := make(map[pieceKey]*ebiten.Image, 12)
	kinds := []base.PieceKind{base.Pawn, base.Queen, base.Rook, base.Knight, base.Bishop, base.King}
	for _, c := range []base.PieceColor{base.White, base.Black} {
		for _, k := range kinds {
			img, err := loadSprite(rootDirAssets, gsprites.SpriteName(k, c))
			if err != nil {
				return nil, fmt.Errorf("load sprite for %v %v: %w (run `chessview assets generate` to create sprites)", c, k, err)
			}
			imgs[pieceKey{kind: k, color: c}] = img
		}
	}
	return &GUIAssetsWorker{pieceImages: imgs}, nil
}

func loadSprite(dir, name string) (*ebiten.Image, error) {
	var lastErr error
	for _, ext := range []string{".png", ".bmp"} {
		path := filepath.Join(dir, name+ext)
		if _, err := os.Stat(path); err != nil {
			lastErr = err
			continue
		}
		img, _, err := ebitenutil.NewImageFromFile(path)
		if err != nil {
			return nil, err
		}
		return img, nil
	}
	return nil, lastErr
}

func (aw *GUIAssetsWorker) Piece(k base.PieceKind, c base.PieceColor) *ebiten.Image {
	return aw.pieceImages[pieceKey{kind: k, color: c}]
}

// Resolver adapts the worker to the board's construction contract.
func (aw *GUIAssetsWorker) Resolver() board.AssetResolver {
	return func(k base.PieceKind, c base.PieceColor) (base.AssetRef, error) {
		img := aw.Piece(k, c)
		if img == nil {
			return nil, fmt.Errorf("no sprite loaded for %v %v", c, k)
		}
		return img, nil
	}
}
