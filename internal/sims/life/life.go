package life

import (
	"fmt"
	"strings"

	"termlife/internal/core"
)

// Variant pairs a neighbour topology with a rule.
type Variant uint8

const (
	// VariantNormal is Conway's Game of Life on the Moore neighbourhood.
	VariantNormal Variant = iota
	// VariantVonNeumann applies Conway's rule to the distance-2 cardinal
	// neighbourhood.
	VariantVonNeumann
	// VariantDayAndNight applies the Day and Night rule to the Moore
	// neighbourhood.
	VariantDayAndNight
)

type strategy struct {
	name     string
	topology Topology
	rule     Rule
}

var strategies = map[Variant]strategy{
	VariantNormal:      {name: "normal", topology: TopologyMoore, rule: RuleConway},
	VariantVonNeumann:  {name: "vonneumann", topology: TopologyVonNeumann, rule: RuleConway},
	VariantDayAndNight: {name: "dayandnight", topology: TopologyMoore, rule: RuleDayAndNight},
}

// ParseVariant resolves a variant name. Hyphens and underscores are ignored,
// so "von-neumann" and "day_and_night" are accepted.
func ParseVariant(name string) (Variant, error) {
	key := strings.NewReplacer("-", "", "_", "").Replace(strings.ToLower(strings.TrimSpace(name)))
	if key == "" {
		return VariantNormal, nil
	}
	for v, s := range strategies {
		if s.name == key {
			return v, nil
		}
	}
	return VariantNormal, fmt.Errorf("unknown variant %q (want normal, vonneumann or dayandnight)", name)
}

// String returns the variant name accepted by ParseVariant.
func (v Variant) String() string {
	if s, ok := strategies[v]; ok {
		return s.name
	}
	return "unknown"
}

// Topology returns the neighbourhood the variant counts on.
func (v Variant) Topology() Topology { return strategies[v].topology }

// Rule returns the rule the variant applies.
func (v Variant) Rule() Rule { return strategies[v].rule }

// Next computes the following generation of g under variant v. Every cell is
// evaluated against g, never against partially updated cells.
func Next(g *core.Grid, v Variant) *core.Grid {
	s := strategies[v]
	return g.Map(func(x, y int, alive bool) bool {
		return s.rule.Apply(alive, CountNeighbors(g, x, y, s.topology))
	})
}

// Life is a bounded (non-wrapping) Game of Life automaton.
type Life struct {
	grid       *core.Grid
	variant    Variant
	generation int
}

// New returns a Life automaton starting from g.
func New(g *core.Grid, v Variant) *Life {
	return &Life{grid: g, variant: v}
}

// Name returns the simulation identifier.
func (l *Life) Name() string { return "life" }

// Title returns the heading shown above the board.
func (l *Life) Title() string { return "Conway's Game of Life" }

// Size returns the grid dimensions.
func (l *Life) Size() core.Size { return l.grid.Size() }

// Grid exposes the current generation.
func (l *Life) Grid() *core.Grid { return l.grid }

// Variant reports the rule variant carried through every transition.
func (l *Life) Variant() Variant { return l.variant }

// Generation reports how many steps led to this state.
func (l *Life) Generation() int { return l.generation }

// Cells returns a row-major copy of the current cells.
func (l *Life) Cells() []bool { return l.grid.Cells() }

// Render draws the current generation as a bordered text block.
func (l *Life) Render() string { return l.grid.Render() }

// Step advances the simulation by one generation.
func (l *Life) Step() core.Automaton { return l.Next() }

// Next is Step with the concrete return type.
func (l *Life) Next() *Life {
	return &Life{grid: Next(l.grid, l.variant), variant: l.variant, generation: l.generation + 1}
}

// Parameters describes the automaton for the HUD.
func (l *Life) Parameters() core.ParameterSnapshot {
	return core.ParameterSnapshot{Groups: []core.ParameterGroup{
		core.GridParameters(l.grid, l.generation),
		{
			Name: "Rule",
			Params: []core.Parameter{
				core.StringParam("variant", "Variant", l.variant.String()),
				core.StringParam("topology", "Neighbours", l.variant.Topology().String()),
				core.StringParam("rule", "Rule", l.variant.Rule().String()),
			},
		},
	}}
}

func init() {
	core.Register("life", func(cfg map[string]string) (core.Automaton, error) {
		c, err := FromMap(cfg)
		if err != nil {
			return nil, err
		}
		g, err := c.Grid.Build()
		if err != nil {
			return nil, err
		}
		return New(g, c.Variant), nil
	})
}
