package main

import (
	"flag"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
)

func main() {
	defsPath := flag.String("defs", "tweens.yaml", "tween defs file")
	curvePath := flag.String("curve", "curve.tengo", "scripted easing curve file")
	flag.Parse()

	game, err := NewGame(*defsPath, *curvePath)
	if err != nil {
		log.Fatal(err)
	}
	defer game.Close()

	ebiten.SetWindowSize(baseWidth, baseHeight)
	ebiten.SetWindowTitle("tween demo")
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)

	if err := ebiten.RunGame(game); err != nil {
		log.Fatal(err)
	}
}
