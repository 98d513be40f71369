// Package tui drives an automaton inside a full-screen terminal UI.
package tui

import (
	"context"
	"fmt"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/gdamore/tcell/v2"
	"golang.org/x/sync/errgroup"

	"termlife/internal/core"
)

const (
	// titleHeight is the bordered title bar above the board.
	titleHeight = 3
	// margin is the extra space the terminal needs beyond the grid in both
	// directions: the rendered border plus the title bar.
	margin = 5
)

// Options controls the terminal UI.
type Options struct {
	Interval time.Duration

	TitleStyle  tcell.Style
	BorderStyle tcell.Style
	BodyStyle   tcell.Style
}

// DefaultOptions returns the light-cyan title on a white frame.
func DefaultOptions(interval time.Duration) Options {
	return Options{
		Interval:    interval,
		TitleStyle:  tcell.StyleDefault.Foreground(tcell.ColorLightCyan),
		BorderStyle: tcell.StyleDefault.Foreground(tcell.ColorWhite),
		BodyStyle:   tcell.StyleDefault,
	}
}

// UI renders automaton states onto a tcell screen.
type UI struct {
	screen tcell.Screen
	opts   Options
}

// New wraps an initialised screen. The interval is clamped to
// core.MinInterval.
func New(screen tcell.Screen, opts Options) *UI {
	opts.Interval = core.ClampInterval(opts.Interval)
	return &UI{screen: screen, opts: opts}
}

// Interval returns the effective tick interval.
func (u *UI) Interval() time.Duration { return u.opts.Interval }

// ShouldContinue reports whether a key press leaves the session running.
// q, Ctrl-C and Esc quit; everything else is ignored.
func ShouldContinue(ev *tcell.EventKey) bool {
	switch ev.Key() {
	case tcell.KeyCtrlC, tcell.KeyEscape:
		return false
	case tcell.KeyRune:
		return ev.Rune() != 'q'
	}
	return true
}

// Run draws a, then replaces it with its successor every interval until a
// quit key arrives, ctx is cancelled or drawing fails. Quitting only happens
// between ticks. The last state is returned.
func (u *UI) Run(ctx context.Context, a core.Automaton) (core.Automaton, error) {
	events := make(chan tcell.Event)
	quit := make(chan struct{})

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		u.screen.ChannelEvents(events, quit)
		return nil
	})

	state := a
	g.Go(func() error {
		defer close(quit)
		var err error
		state, err = u.loop(ctx, a, events)
		return err
	})

	err := g.Wait()
	return state, err
}

func (u *UI) loop(ctx context.Context, state core.Automaton, events <-chan tcell.Event) (core.Automaton, error) {
	ticker := time.NewTicker(u.opts.Interval)
	defer ticker.Stop()

	if err := u.Draw(state); err != nil {
		return state, err
	}
	for {
		select {
		case <-ctx.Done():
			return state, nil
		case ev, ok := <-events:
			if !ok {
				return state, nil
			}
			switch ev := ev.(type) {
			case *tcell.EventKey:
				if !ShouldContinue(ev) {
					return state, nil
				}
			case *tcell.EventResize:
				u.screen.Sync()
				if err := u.Draw(state); err != nil {
					return state, err
				}
			}
		case <-ticker.C:
			state = state.Step()
			if err := u.Draw(state); err != nil {
				return state, err
			}
		}
	}
}

// Draw paints the title bar and the rendered board centered below it. It
// fails with core.ErrDisplaySizeTooSmall when the screen cannot hold the
// board plus its margin.
func (u *UI) Draw(a core.Automaton) error {
	sw, sh := u.screen.Size()
	size := a.Size()
	if sw < size.W+margin || sh < size.H+margin {
		return fmt.Errorf("%w: need %dx%d, terminal is %dx%d",
			core.ErrDisplaySizeTooSmall, size.W+margin, size.H+margin, sw, sh)
	}

	u.screen.Clear()
	u.drawBox(0, 0, sw, titleHeight)
	title := a.Title()
	u.drawText((sw-utf8.RuneCountInString(title))/2, 1, title, u.opts.TitleStyle)

	for i, line := range strings.Split(a.Render(), "\n") {
		u.drawText((sw-utf8.RuneCountInString(line))/2, titleHeight+i, line, u.opts.BodyStyle)
	}
	u.screen.Show()
	return nil
}

func (u *UI) drawText(x, y int, s string, style tcell.Style) {
	for _, r := range s {
		u.screen.SetContent(x, y, r, nil, style)
		x++
	}
}

func (u *UI) drawBox(x, y, w, h int) {
	if w < 2 || h < 2 {
		return
	}
	st := u.opts.BorderStyle
	right, bottom := x+w-1, y+h-1
	for cx := x + 1; cx < right; cx++ {
		u.screen.SetContent(cx, y, tcell.RuneHLine, nil, st)
		u.screen.SetContent(cx, bottom, tcell.RuneHLine, nil, st)
	}
	for cy := y + 1; cy < bottom; cy++ {
		u.screen.SetContent(x, cy, tcell.RuneVLine, nil, st)
		u.screen.SetContent(right, cy, tcell.RuneVLine, nil, st)
	}
	u.screen.SetContent(x, y, tcell.RuneULCorner, nil, st)
	u.screen.SetContent(right, y, tcell.RuneURCorner, nil, st)
	u.screen.SetContent(x, bottom, tcell.RuneLLCorner, nil, st)
	u.screen.SetContent(right, bottom, tcell.RuneLRCorner, nil, st)
}

// RunTerminal opens the process terminal, runs the UI on it and restores the
// terminal before returning.
func RunTerminal(ctx context.Context, a core.Automaton, opts Options) (core.Automaton, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return a, fmt.Errorf("creating screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return a, fmt.Errorf("initializing screen: %w", err)
	}
	defer screen.Fini()
	screen.HideCursor()
	return New(screen, opts).Run(ctx, a)
}
