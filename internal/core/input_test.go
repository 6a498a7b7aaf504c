package core

import "testing"

func TestInputFrameSetHas(t *testing.T) {
	f := NewInputFrame()
	if !f.Empty() {
		t.Error("New frame should be empty")
	}

	f.Set(ActionFlap)
	f.Set(ActionFlap)
	if !f.Has(ActionFlap) {
		t.Error("Frame should have Flap after Set")
	}
	if f.Has(ActionRestart) {
		t.Error("Frame should not have Restart")
	}
	if len(f.Actions) != 1 {
		t.Errorf("Repeated Set should record one action, got %d", len(f.Actions))
	}

	f.Clear()
	if !f.Empty() {
		t.Error("Frame should be empty after Clear")
	}
}

func TestInputFrameZeroValue(t *testing.T) {
	var f InputFrame
	if f.Has(ActionQuit) {
		t.Error("Zero frame should have no actions")
	}
	f.Set(ActionQuit)
	if !f.Has(ActionQuit) {
		t.Error("Set on zero frame should allocate")
	}
}

func TestActionString(t *testing.T) {
	tests := map[Action]string{
		ActionNone:    "None",
		ActionFlap:    "Flap",
		ActionRestart: "Restart",
		ActionQuit:    "Quit",
		Action(99):    "Unknown",
	}
	for a, want := range tests {
		if got := a.String(); got != want {
			t.Errorf("Action(%d).String() = %q, expected %q", int(a), got, want)
		}
	}
}

func TestTickInterval(t *testing.T) {
	cfg := DefaultConfig()
	if cfg.TickInterval().Milliseconds() != 16 {
		t.Errorf("60 Hz tick should be ~16ms, got %v", cfg.TickInterval())
	}
	cfg.TickRate = 0
	if cfg.TickInterval() != DefaultConfig().TickInterval() {
		t.Error("Non-positive tick rate should fall back to 60 Hz")
	}
}
