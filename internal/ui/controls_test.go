package ui

import (
	"slices"
	"testing"

	"termlife/internal/core"
)

func TestAdjustControl(t *testing.T) {
	ctrl := core.ParameterControl{Key: "interval_ms", Step: 10, Min: 10, Max: 100, HasMin: true, HasMax: true}
	cases := []struct {
		current, direction int
		want               int
		ok                 bool
	}{
		{50, 1, 60, true},
		{50, -1, 40, true},
		{15, -1, 10, true},
		{10, -1, 10, false},
		{100, 1, 100, false},
		{95, 1, 100, true},
		{50, 0, 50, false},
	}
	for _, c := range cases {
		got, ok := adjustControl(ctrl, c.current, c.direction)
		if got != c.want || ok != c.ok {
			t.Fatalf("adjust(%d, %d) = %d, %v; want %d, %v", c.current, c.direction, got, ok, c.want, c.ok)
		}
	}
	if got, ok := adjustControl(core.ParameterControl{}, 3, -1); got != 2 || !ok {
		t.Fatalf("unbounded adjust = %d, %v", got, ok)
	}
}

func TestSnapshotLines(t *testing.T) {
	snap := core.ParameterSnapshot{Groups: []core.ParameterGroup{
		{Name: "World", Params: []core.Parameter{core.IntParam("w", "Width", 5)}},
		{Name: "Rule", Params: []core.Parameter{core.StringParam("variant", "Variant", "normal")}},
	}}
	want := []string{"World", "  Width: 5", "Rule", "  Variant: normal"}
	if got := snapshotLines(snap); !slices.Equal(got, want) {
		t.Fatalf("lines = %q, want %q", got, want)
	}
	if v, ok := controlValue(snap, "w"); !ok || v != 5 {
		t.Fatalf("controlValue(w) = %d, %v", v, ok)
	}
	if _, ok := controlValue(snap, "variant"); ok {
		t.Fatal("string parameters are not controls")
	}
}
