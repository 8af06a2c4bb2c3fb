// HexPlay - Glinski hexagonal chess built with Ebitengine
package main

import (
	"log"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/hailam/hexplay/internal/ui"
)

func main() {
	game := ui.NewGame()
	defer game.Close()

	ebiten.SetWindowSize(ui.ScreenWidth, ui.ScreenHeight)
	ebiten.SetWindowTitle("HexPlay")
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)

	if err := ebiten.RunGame(game); err != nil {
		log.Fatal(err)
	}
}
