package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/apex/log"
	"github.com/apex/log/handlers/cli"

	"termlife/internal/app"
	"termlife/internal/console"
	"termlife/internal/core"
	_ "termlife/internal/sims/ant"
	_ "termlife/internal/sims/briansbrain"
	_ "termlife/internal/sims/elementary"
	_ "termlife/internal/sims/life"
	"termlife/internal/tui"
)

func main() {
	cfg, err := app.Parse(os.Args[0], os.Args[1:], os.Stderr)
	if errors.Is(err, flag.ErrHelp) {
		os.Exit(0)
	}
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}

	log.SetHandler(cli.New(os.Stderr))
	log.SetLevelFromString(cfg.LogLevel)

	a, err := app.Build(cfg)
	if err != nil {
		log.WithError(err).Fatal("building simulation")
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	ctxLog := log.WithFields(log.Fields{
		"sim":    a.Name(),
		"mode":   cfg.Mode,
		"width":  a.Size().W,
		"height": a.Size().H,
	})
	ctxLog.Debug("starting")

	final, err := run(ctx, cfg, a)
	if err != nil {
		stop()
		ctxLog.WithError(err).Fatal("run failed")
	}
	ctxLog.WithField("generation", final.Generation()).Debug("stopped")
}

func run(ctx context.Context, cfg *app.Config, a core.Automaton) (core.Automaton, error) {
	switch cfg.Mode {
	case app.ModePrint:
		return console.Run(ctx, os.Stdout, a, console.Options{
			Interval:    cfg.Interval(),
			Generations: cfg.Generations,
		})
	case app.ModeWindow:
		return a, app.RunWindow(a, cfg.Scale, cfg.Interval())
	default:
		return tui.RunTerminal(ctx, a, tui.DefaultOptions(cfg.Interval()))
	}
}
