//go:build !ebiten

package app

import (
	"errors"
	"time"

	"termlife/internal/core"
)

// ErrNoWindow is returned by RunWindow in builds without the ebiten tag.
var ErrNoWindow = errors.New("window mode requires building with -tags ebiten")

// RunWindow reports that the GUI is not compiled in.
func RunWindow(core.Automaton, int, time.Duration) error {
	return ErrNoWindow
}
