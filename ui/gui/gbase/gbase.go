package gbase

import "image/color"

const WindowTitle = "ChessView"

// AppBg shows through only when the board does not cover the whole
// window (custom geometry in the config).
var AppBg = color.RGBA{0x2b, 0x2b, 0x2b, 0xff}
