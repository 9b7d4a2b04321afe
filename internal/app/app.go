//go:build ebiten

package app

import (
	"fmt"
	"image"

	"lifegame/internal/render"
	"lifegame/pkg/core"
	"lifegame/pkg/sims/life"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

const statusHeight = 16

// Game adapts a life simulation to the ebiten.Game interface.
type Game struct {
	sim     *life.Life
	canvas  *render.Canvas
	painter *render.GridPainter
	pace    *core.FixedStep

	scale    int
	running  bool
	tickOnce bool
	seed     int64

	dragging bool
	lastCell image.Point
}

// New constructs a Game for the provided simulation. The simulation starts
// stopped so cells can be edited first.
func New(sim *life.Life, cfg *Config) *Game {
	size := sim.Size()
	canvas := render.NewCanvas(size.W, size.H, sim.Board(), render.DefaultPalette())
	return &Game{
		sim:     sim,
		canvas:  canvas,
		painter: render.NewGridPainter(canvas),
		pace:    core.NewFixedStep(cfg.GPS),
		scale:   cfg.Scale,
		seed:    cfg.Seed,
	}
}

func (g *Game) start() {
	g.running = true
	g.pace.Reset()
}

func (g *Game) stop() { g.running = false }

// Update handles input and advances the simulation at the configured pace.
func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		if g.running {
			g.stop()
		} else {
			g.start()
		}
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyN) {
		g.tickOnce = true
	}
	if !g.running {
		if inpututil.IsKeyJustPressed(ebiten.KeyC) {
			g.sim.Clear()
		}
		if inpututil.IsKeyJustPressed(ebiten.KeyR) {
			g.seed++
			g.sim.Reset(g.seed)
		}
	}
	g.handleMouse()

	if (g.running && g.pace.ShouldStep()) || g.tickOnce {
		g.tickOnce = false
		if g.sim.Step() == 0 {
			g.stop()
		}
	}
	return nil
}

// handleMouse toggles the cell under the cursor on press and every newly
// entered cell while dragging.
func (g *Game) handleMouse() {
	if inpututil.IsMouseButtonJustReleased(ebiten.MouseButtonLeft) {
		g.dragging = false
		return
	}
	pressed := inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft)
	if !pressed && !g.dragging {
		return
	}
	px, py := ebiten.CursorPosition()
	pos, ok := cellAt(px, py, g.scale, g.sim.Size())
	if !ok {
		return
	}
	if pressed || pos != g.lastCell {
		_ = g.sim.Toggle(pos.X, pos.Y)
		g.lastCell = pos
	}
	g.dragging = true
}

// Draw renders the board and a status line.
func (g *Game) Draw(screen *ebiten.Image) {
	g.painter.Blit(screen, g.scale)
	state := "stopped"
	if g.running {
		state = "running"
	}
	b := g.sim.Board()
	msg := fmt.Sprintf("gen %d  alive %d  %s  [space] start/stop [n] step [c] clear [r] random",
		b.Generation(), b.Population(), state)
	ebitenutil.DebugPrintAt(screen, msg, 2, g.sim.Size().H*g.scale)
}

// Layout returns the logical screen size.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	s := g.sim.Size()
	return s.W * g.scale, s.H*g.scale + statusHeight
}
