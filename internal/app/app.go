//go:build ebiten

package app

import (
	"errors"
	"image/color"
	"time"

	"termlife/internal/core"
	"termlife/internal/render"
	"termlife/internal/ui"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

const hudWidth = 240

// Game adapts a Session to the ebiten.Game interface.
type Game struct {
	session *Session
	painter *render.GridPainter
	overlay *ui.Overlay
	hud     *ui.HUD

	onColor  color.Color
	offColor color.Color

	scale int
}

// NewGame constructs a Game for the provided automaton.
func NewGame(a core.Automaton, scale int, interval time.Duration) *Game {
	if scale <= 0 {
		scale = 1
	}
	size := a.Size()
	s := NewSession(a, interval)
	return &Game{
		session:  s,
		painter:  render.NewGridPainter(size.W, size.H),
		overlay:  ui.NewOverlay(scale),
		hud:      ui.NewHUD(s, a.Title(), hudWidth),
		onColor:  color.White,
		offColor: color.Black,
		scale:    scale,
	}
}

// Update handles per-frame logic and advances the automaton.
func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		g.session.SetPaused(!g.session.Paused())
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		g.session.Reset()
	}
	g.overlay.Update()
	g.hud.Update(g.gridWidth())
	g.session.Tick(inpututil.IsKeyJustPressed(ebiten.KeyN))
	return nil
}

// Draw renders the current state with the marker overlay and the HUD.
func (g *Game) Draw(screen *ebiten.Image) {
	state := g.session.State()
	g.painter.Blit(screen, state.Cells(), g.onColor, g.offColor, g.scale)
	g.overlay.Draw(screen, state)
	g.hud.Draw(screen, g.gridWidth(), state.Size().H*g.scale)
}

// Layout returns the logical screen size.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	s := g.session.State().Size()
	return s.W*g.scale + hudWidth, s.H * g.scale
}

func (g *Game) gridWidth() int {
	return g.session.State().Size().W * g.scale
}

// RunWindow opens a desktop window for a and blocks until it is closed.
func RunWindow(a core.Automaton, scale int, interval time.Duration) error {
	game := NewGame(a, scale, interval)
	w, h := game.Layout(0, 0)
	ebiten.SetWindowTitle(a.Title())
	ebiten.SetWindowSize(w, h)
	if err := ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
		return err
	}
	return nil
}
