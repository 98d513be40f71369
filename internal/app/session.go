package app

import (
	"strconv"
	"time"

	"termlife/internal/core"
)

const (
	intervalKey   = "interval_ms"
	maxIntervalMS = 5000
)

// Build constructs the automaton selected by cfg.
func Build(cfg *Config) (core.Automaton, error) {
	factory, err := core.Lookup(cfg.Sim)
	if err != nil {
		return nil, err
	}
	return factory(cfg.SimOptions())
}

// Session owns the current automaton of a frame-driven frontend and replaces
// it on each tick.
type Session struct {
	initial core.Automaton
	state   core.Automaton
	step    *core.FixedStep
	paused  bool
}

// NewSession starts a session at a with the given tick interval.
func NewSession(a core.Automaton, interval time.Duration) *Session {
	return &Session{initial: a, state: a, step: core.NewFixedStep(interval)}
}

// State returns the current automaton.
func (s *Session) State() core.Automaton { return s.state }

// Paused reports whether timed ticks are suspended.
func (s *Session) Paused() bool { return s.paused }

// SetPaused suspends or resumes timed ticks.
func (s *Session) SetPaused(p bool) { s.paused = p }

// Reset returns to the initial automaton.
func (s *Session) Reset() { s.state = s.initial }

// Tick advances the automaton when the interval has elapsed and the session is
// not paused, or unconditionally when force is set. It reports whether a step
// happened.
func (s *Session) Tick(force bool) bool {
	due := s.step.ShouldStep()
	if force || (!s.paused && due) {
		s.state = s.state.Step()
		return true
	}
	return false
}

// Parameters merges the automaton's parameters with the session settings.
func (s *Session) Parameters() core.ParameterSnapshot {
	var snap core.ParameterSnapshot
	if p, ok := s.state.(core.ParameterProvider); ok {
		snap = p.Parameters()
	}
	paused := "no"
	if s.paused {
		paused = "yes"
	}
	snap.Groups = append(snap.Groups, core.ParameterGroup{
		Name: "Session",
		Params: []core.Parameter{
			core.IntParam(intervalKey, "Interval (ms)", int(s.step.Interval()/time.Millisecond)),
			core.StringParam("paused", "Paused", paused),
		},
	})
	return snap
}

// ParameterControls exposes the tick interval as an adjustable control.
func (s *Session) ParameterControls() []core.ParameterControl {
	return []core.ParameterControl{{
		Key:    intervalKey,
		Label:  "Interval (ms)",
		Step:   10,
		Min:    int(core.MinInterval / time.Millisecond),
		Max:    maxIntervalMS,
		HasMin: true,
		HasMax: true,
	}}
}

// SetIntParameter updates the tick interval.
func (s *Session) SetIntParameter(key string, value int) bool {
	if key != intervalKey || value <= 0 || value > maxIntervalMS {
		return false
	}
	s.step.SetInterval(time.Duration(value) * time.Millisecond)
	return true
}

// String summarises the session for logs.
func (s *Session) String() string {
	return s.state.Name() + "@" + strconv.Itoa(s.state.Generation())
}
