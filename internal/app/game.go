//go:build ebiten

package app

import (
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"labyrinth/internal/core"
	"labyrinth/internal/maze"
	"labyrinth/internal/render"
)

// Game adapts a generated floor to the ebiten.Game interface, revealing it
// one row at a time.
type Game struct {
	opts    Options
	floor   *maze.Floor
	raster  *core.ByteGrid
	frame   *core.ByteGrid
	painter *render.GridPainter
	pacer   *core.Pacer
	paused  bool
}

// New constructs a Game and generates its first floor.
func New(opts Options) *Game {
	g := &Game{opts: opts.normalized()}
	g.pacer = core.NewPacer(0, g.opts.RevealRate)
	g.Reset(g.opts.Maze.Seed)
	return g
}

// Reset generates a new floor from seed and restarts the reveal.
func (g *Game) Reset(seed int64) {
	g.opts.Maze.Seed = seed
	grid := maze.NewWithConfig(g.opts.Maze).Generate(g.opts.Maze.Width, g.opts.Maze.Height)
	g.floor = maze.Enclose(grid)
	g.raster = render.Rasterize(g.floor)
	g.frame = core.NewByteGrid(g.raster.W, g.raster.H)
	if g.painter == nil {
		g.painter = render.NewGridPainter(g.raster.W, g.raster.H)
	} else if w, h := g.painter.Size(); w != g.raster.W || h != g.raster.H {
		g.painter = render.NewGridPainter(g.raster.W, g.raster.H)
	}
	g.pacer.Restart(g.floor.H)
	slog.Debug("floor generated", "seed", seed, "width", g.floor.W, "height", g.floor.H)
}

// Update handles per-frame input and advances the reveal.
func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		g.paused = !g.paused
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyEnter) {
		g.pacer.Skip()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		g.Reset(g.opts.Maze.Seed)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyS) {
		g.Reset(time.Now().UnixNano())
	}

	if !g.paused {
		g.pacer.Advance()
	}
	return nil
}

// Draw renders the revealed part of the floor.
func (g *Game) Draw(screen *ebiten.Image) {
	render.Reveal(g.frame, g.raster, g.pacer.Shown())
	g.painter.Blit(screen, g.frame.Cells(), render.Palette, g.opts.Scale)
	ebitenutil.DebugPrint(screen, fmt.Sprintf("seed %d  rows %d/%d", g.opts.Maze.Seed, g.pacer.Shown(), g.floor.H))
}

// Layout returns the logical screen size.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.raster.W * g.opts.Scale, g.raster.H * g.opts.Scale
}

// Run opens the viewer window and blocks until it is closed.
func Run(opts Options) error {
	game := New(opts)
	size := game.raster.Size()

	ebiten.SetWindowTitle(opts.title())
	ebiten.SetWindowSize(size.W*game.opts.Scale, size.H*game.opts.Scale)

	if err := ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
		return err
	}
	return nil
}
