package main

import (
	"fmt"
	"os"

	"chessview/ui"
)

func main() {
	if err := ui.RunChessView(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
