package main

import (
	"fmt"
	"image/color"
	"log"
	"math"
	"os"
	"path/filepath"

	"github.com/ebitenui/ebitenui"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/jakecoffman/cp"
	"golang.org/x/image/colornames"

	"github.com/milk9111/tween"
	"github.com/milk9111/tween/clock"
	"github.com/milk9111/tween/defs"
	"github.com/milk9111/tween/ease"
	"github.com/milk9111/tween/ecs"
	"github.com/milk9111/tween/ecs/component"
	"github.com/milk9111/tween/ecs/system"
	"github.com/milk9111/tween/interp"
)

const (
	baseWidth  = 960
	baseHeight = 540

	squareSize = 32
	startX     = 80
	endX       = baseWidth - 220
)

var squareColors = []color.RGBA{
	colornames.Coral,
	colornames.Mediumseagreen,
	colornames.Steelblue,
	colornames.Goldenrod,
}

type Game struct {
	clock  *clock.Clock
	runner *tween.Runner
	world  *ecs.World

	ui *ebitenui.UI

	defsPath string
	lib      defs.Library
	watcher  *defs.Watcher
	curve    ease.Curve

	squares []ecs.Entity
	tiles   []*ebiten.Image

	bg       interp.Color
	lastMode string
}

func NewGame(defsPath, curvePath string) (*Game, error) {
	lib, err := defs.LoadFile(defsPath)
	if err != nil {
		return nil, err
	}

	c := clock.New()
	g := &Game{
		clock:    c,
		runner:   tween.NewRunner(c),
		world:    ecs.NewWorld(),
		defsPath: defsPath,
		lib:      lib,
		bg:       interp.Color{R: 0.07, G: 0.07, B: 0.1, A: 1},
		lastMode: "(none)",
	}

	g.world.AddSystem(system.NewTweenSystem(c))

	for i, col := range squareColors {
		e := g.world.CreateEntity()
		t := component.NewTransform()
		t.Position = cp.Vector{X: startX, Y: float64(120 + i*90)}
		if err := ecs.Add(g.world, e, component.TransformComponent, t); err != nil {
			return nil, err
		}
		g.squares = append(g.squares, e)

		tile := ebiten.NewImage(squareSize, squareSize)
		tile.Fill(col)
		g.tiles = append(g.tiles, tile)
	}

	if src, err := os.ReadFile(curvePath); err == nil {
		curve, err := ease.CompileCurve(src)
		if err != nil {
			return nil, err
		}
		g.curve = curve
	} else {
		log.Printf("no curve script at %s, scripted mode disabled: %v", curvePath, err)
	}

	watcher, err := defs.NewWatcher(filepath.Dir(defsPath))
	if err != nil {
		log.Printf("defs watcher disabled: %v", err)
	} else {
		g.watcher = watcher
	}

	g.ui = newModePanel(g)
	return g, nil
}

func (g *Game) Close() {
	if g.watcher != nil {
		_ = g.watcher.Close()
	}
}

func (g *Game) Update() error {
	g.drainWatcher()
	g.ui.Update()

	if err := g.runner.Update(); err != nil {
		fmt.Printf("runner: %v\n", err)
	}
	g.world.Update()
	return nil
}

func (g *Game) drainWatcher() {
	if g.watcher == nil {
		return
	}
	for {
		select {
		case u := <-g.watcher.Updates:
			if u.Err != nil {
				fmt.Printf("defs watcher: %v\n", u.Err)
				continue
			}
			lib, err := defs.LoadFile(g.defsPath)
			if err != nil {
				fmt.Printf("reload %s: %v\n", u.Name, err)
				continue
			}
			g.lib = lib
			fmt.Printf("reloaded defs from %s\n", g.defsPath)
		default:
			return
		}
	}
}

// play restarts the slide animation on every square using the named
// mode, plus a spin and a background flash to show rotation and color
// tweens alongside.
func (g *Game) play(mode string) {
	g.lastMode = mode

	slide, ok := g.lib["slide-"+mode]
	if !ok {
		slide = defs.Def{Duration: 1.5, Ease: mode}
	}
	opt, err := slide.EaseOption()
	if err != nil {
		fmt.Printf("play %s: %v\n", mode, err)
		return
	}

	for _, e := range g.squares {
		t, ok := ecs.Get(g.world, e, component.TransformComponent)
		if !ok {
			continue
		}
		t.Position.X = startX
		t.Rotation = 0
		_ = ecs.Add(g.world, e, component.TransformComponent, t)

		if err := system.MoveTo(g.world, e, cp.Vector{X: endX, Y: t.Position.Y}, slide.Duration, opt); err != nil {
			fmt.Printf("move entity=%s: %v\n", e, err)
		}
		if err := system.RotateLocalTo(g.world, e, 180, slide.Duration, opt); err != nil {
			fmt.Printf("rotate entity=%s: %v\n", e, err)
		}
	}

	g.flashBackground()
}

// playCurve slides the squares through a custom curve instead of a
// mode/factor pair.
func (g *Game) playCurve(name string, curve ease.Curve) {
	if curve == nil {
		return
	}
	g.lastMode = name

	for _, e := range g.squares {
		t, ok := ecs.Get(g.world, e, component.TransformComponent)
		if !ok {
			continue
		}
		t.Position.X = startX
		t.Rotation = 0
		_ = ecs.Add(g.world, e, component.TransformComponent, t)

		if err := system.MoveTo(g.world, e, cp.Vector{X: endX, Y: t.Position.Y}, 1.5, tween.WithCurve(curve)); err != nil {
			fmt.Printf("move entity=%s: %v\n", e, err)
		}
	}

	g.flashBackground()
}

func (g *Game) flashBackground() {
	flash, ok := g.lib["flash"]
	if !ok {
		flash = defs.Def{Duration: 0.4, Ease: "ease-out", Factor: 2}
	}

	dark := interp.Color{R: 0.07, G: 0.07, B: 0.1, A: 1}
	lit := interp.Color{R: 0.16, G: 0.14, B: 0.22, A: 1}
	g.bg = lit

	_, err := flash.Start(g.runner,
		interp.ColorVal(lit), interp.ColorVal(dark),
		func(v interp.Value) { g.bg = v.Color() },
		nil)
	if err != nil {
		fmt.Printf("flash: %v\n", err)
	}
}

func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(toNRGBA(g.bg))

	for i, e := range g.squares {
		t, ok := ecs.Get(g.world, e, component.TransformComponent)
		if !ok {
			continue
		}
		op := &ebiten.DrawImageOptions{}
		op.GeoM.Translate(-squareSize/2, -squareSize/2)
		op.GeoM.Scale(t.Scale.X, t.Scale.Y)
		op.GeoM.Rotate(t.Rotation * degToRad)
		op.GeoM.Translate(t.Position.X, t.Position.Y)
		screen.DrawImage(g.tiles[i], op)
	}

	g.ui.Draw(screen)
	ebitenutil.DebugPrint(screen, fmt.Sprintf("FPS: %.1f    mode: %s", ebiten.ActualFPS(), g.lastMode))
}

const degToRad = math.Pi / 180

func toNRGBA(c interp.Color) color.NRGBA {
	return color.NRGBA{
		R: channel(c.R),
		G: channel(c.G),
		B: channel(c.B),
		A: channel(c.A),
	}
}

func channel(f float64) uint8 {
	if f <= 0 {
		return 0
	}
	if f >= 1 {
		return 255
	}
	return uint8(f*255 + 0.5)
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return baseWidth, baseHeight
}
