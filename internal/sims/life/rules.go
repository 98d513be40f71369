package life

// Rule decides a cell's next state from its current state and neighbour count.
type Rule uint8

const (
	// RuleConway is B3/S23.
	RuleConway Rule = iota
	// RuleDayAndNight is B3678/S34678.
	RuleDayAndNight
)

// Apply returns whether a cell with the given state and neighbour count is
// alive in the next generation.
func (r Rule) Apply(alive bool, neighbors int) bool {
	switch r {
	case RuleDayAndNight:
		if alive {
			switch neighbors {
			case 0, 1, 2, 5:
				return false
			}
			return true
		}
		switch neighbors {
		case 3, 6, 7, 8:
			return true
		}
		return false
	default:
		if alive {
			return neighbors == 2 || neighbors == 3
		}
		return neighbors == 3
	}
}

// String names the rule.
func (r Rule) String() string {
	switch r {
	case RuleConway:
		return "B3/S23"
	case RuleDayAndNight:
		return "B3678/S34678"
	default:
		return "unknown"
	}
}
