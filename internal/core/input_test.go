package core

import "testing"

func TestDirection(t *testing.T) {
	tests := []struct {
		name    string
		actions []Action
		want    float64
	}{
		{"no keys held", nil, 0},
		{"up only", []Action{ActionUp}, 1},
		{"down only", []Action{ActionDown}, -1},
		{"both cancel out", []Action{ActionUp, ActionDown}, 0},
		{"unrelated action ignored", []Action{ActionPause}, 0},
		{"up plus unrelated", []Action{ActionUp, ActionRestart}, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in := NewInputFrame()
			for _, a := range tt.actions {
				in.Set(a)
			}
			if got := Direction(in); got != tt.want {
				t.Errorf("Direction() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestDirectionZeroValueFrame(t *testing.T) {
	// A zero-value frame (nil map) must behave like "nothing held".
	var in InputFrame
	if got := Direction(in); got != 0 {
		t.Errorf("Direction(zero frame) = %v, want 0", got)
	}
}

func TestInputFrameClear(t *testing.T) {
	in := NewInputFrame()
	in.Set(ActionUp)
	in.Set(ActionPause)
	in.Clear()

	if in.Has(ActionUp) || in.Has(ActionPause) {
		t.Error("Clear should remove all actions")
	}
}

func TestActionString(t *testing.T) {
	if ActionUp.String() != "Up" {
		t.Errorf("ActionUp.String() = %q", ActionUp.String())
	}
	if Action(99).String() != "Unknown" {
		t.Errorf("unknown action should stringify as Unknown, got %q", Action(99).String())
	}
}
