//go:build ebiten

package ui

import (
	"image/color"

	"termlife/internal/core"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

var markerColor = color.RGBA{R: 255, G: 64, B: 64, A: 255}

// Overlay highlights the mobile agent of automata that implement core.Marker.
type Overlay struct {
	scale      int
	showMarker bool
	pixel      *ebiten.Image
}

// NewOverlay constructs a new overlay instance.
func NewOverlay(scale int) *Overlay {
	o := &Overlay{scale: scale, showMarker: true}
	o.pixel = ebiten.NewImage(1, 1)
	o.pixel.Fill(color.White)
	return o
}

// Update toggles the marker with the M key.
func (o *Overlay) Update() {
	if inpututil.IsKeyJustPressed(ebiten.KeyM) {
		o.showMarker = !o.showMarker
	}
}

// Draw renders the overlay for the current state onto the screen.
func (o *Overlay) Draw(screen *ebiten.Image, a core.Automaton) {
	if !o.showMarker {
		return
	}
	m, ok := a.(core.Marker)
	if !ok {
		return
	}
	x, y, ok := m.Marker()
	if !ok {
		return
	}
	scale := o.scale
	if scale <= 0 {
		scale = 1
	}
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(scale), float64(scale))
	op.GeoM.Translate(float64(x*scale), float64(y*scale))
	op.ColorScale.ScaleWithColor(markerColor)
	screen.DrawImage(o.pixel, op)
}
