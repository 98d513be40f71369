package ui

import (
	"strconv"

	"termlife/internal/core"
)

// adjustControl returns the value one step away from current in direction,
// clamped to the control's bounds. ok is false when the value cannot move.
func adjustControl(ctrl core.ParameterControl, current, direction int) (int, bool) {
	if direction == 0 {
		return current, false
	}
	step := ctrl.Step
	if step <= 0 {
		step = 1
	}
	target := current + direction*step
	if ctrl.HasMin && target < ctrl.Min {
		target = ctrl.Min
	}
	if ctrl.HasMax && target > ctrl.Max {
		target = ctrl.Max
	}
	return target, target != current
}

// snapshotLines flattens a snapshot into "Label: value" lines with a header
// per group.
func snapshotLines(snap core.ParameterSnapshot) []string {
	var lines []string
	for _, g := range snap.Groups {
		lines = append(lines, g.Name)
		for _, p := range g.Params {
			lines = append(lines, "  "+p.Label+": "+p.Value)
		}
	}
	return lines
}

// controlValue reads the current integer value of key from snap.
func controlValue(snap core.ParameterSnapshot, key string) (int, bool) {
	p, ok := snap.Lookup(key)
	if !ok || p.Type != core.ParamTypeInt {
		return 0, false
	}
	v, err := strconv.Atoi(p.Value)
	if err != nil {
		return 0, false
	}
	return v, true
}
