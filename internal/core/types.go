package core

import (
	"fmt"
	"sort"
	"strings"
)

// Size describes the dimensions of a simulation grid.
type Size struct {
	W int
	H int
}

// Automaton is the contract every cellular automaton implements. Values are
// immutable: Step returns the successor state and leaves the receiver intact,
// so a driver owns exactly one current value and replaces it each tick.
type Automaton interface {
	Name() string
	Title() string
	Size() Size
	Step() Automaton
	Render() string
	Cells() []bool
	Generation() int
}

// Marker is implemented by automata with a mobile agent that should be
// highlighted on top of the cells.
type Marker interface {
	Marker() (x, y int, ok bool)
}

// ParameterProvider is implemented by automata that describe their current
// settings for display.
type ParameterProvider interface {
	Parameters() ParameterSnapshot
}

// Advance applies n transitions to a. Non-positive n returns a unchanged.
func Advance(a Automaton, n int) Automaton {
	for i := 0; i < n; i++ {
		a = a.Step()
	}
	return a
}

// Factory constructs an Automaton using an optional configuration map.
type Factory func(cfg map[string]string) (Automaton, error)

var sims = map[string]Factory{}

// Register adds a simulation factory under the provided name.
func Register(name string, f Factory) {
	if name == "" || f == nil {
		return
	}
	sims[name] = f
}

// Sims exposes the registry of available simulation factories.
func Sims() map[string]Factory {
	return sims
}

// Names lists the registered simulation names in sorted order.
func Names() []string {
	names := make([]string, 0, len(sims))
	for name := range sims {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Lookup returns the factory registered under name.
func Lookup(name string) (Factory, error) {
	f, ok := sims[name]
	if !ok {
		return nil, fmt.Errorf("%w %q (available: %s)", ErrUnknownSim, name, strings.Join(Names(), ", "))
	}
	return f, nil
}
