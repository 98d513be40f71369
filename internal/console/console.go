// Package console prints automaton generations to a plain writer.
package console

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/apex/log"

	"termlife/internal/core"
)

// Options controls the print loop.
type Options struct {
	// Interval is the pause between generations. Zero prints as fast as
	// possible.
	Interval time.Duration
	// Generations limits how many steps are printed after the initial state.
	// Zero runs until ctx is cancelled.
	Generations int
}

// Run prints the initial state and then one rendered block per generation.
// Cancelling ctx stops the loop between generations; the last printed state
// is returned.
func Run(ctx context.Context, w io.Writer, a core.Automaton, opts Options) (core.Automaton, error) {
	if _, err := fmt.Fprintln(w, a.Render()); err != nil {
		return a, err
	}

	var tick <-chan time.Time
	if opts.Interval > 0 {
		ticker := time.NewTicker(opts.Interval)
		defer ticker.Stop()
		tick = ticker.C
	}

	for i := 0; opts.Generations <= 0 || i < opts.Generations; i++ {
		if err := wait(ctx, tick); err != nil {
			return a, nil
		}
		a = a.Step()
		log.WithFields(log.Fields{
			"sim":        a.Name(),
			"generation": a.Generation(),
		}).Debug("tick")
		if _, err := fmt.Fprintln(w, a.Render()); err != nil {
			return a, err
		}
	}
	return a, nil
}

func wait(ctx context.Context, tick <-chan time.Time) error {
	if tick == nil {
		return ctx.Err()
	}
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-tick:
		return nil
	}
}
