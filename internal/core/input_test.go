package core

import "testing"

func TestInputFrameSetHas(t *testing.T) {
	f := NewInputFrame()

	if f.Has(ActionPrimary) {
		t.Error("New frame should have no actions")
	}

	f.Set(ActionPrimary)
	f.Set(ActionLeft)

	if !f.Has(ActionPrimary) || !f.Has(ActionLeft) {
		t.Error("Set actions should be reported by Has")
	}
	if f.Has(ActionRight) {
		t.Error("Unset action should not be reported")
	}
}

func TestInputFrameZeroValue(t *testing.T) {
	// A zero-value frame is usable: Has is false, Set allocates lazily
	var f InputFrame

	if f.Has(ActionUp) {
		t.Error("Zero-value frame should report no actions")
	}

	f.Set(ActionUp)
	if !f.Has(ActionUp) {
		t.Error("Set on a zero-value frame should work")
	}
}

func TestInputFrameClear(t *testing.T) {
	f := NewInputFrame()
	f.Set(ActionUp)
	f.Set(ActionDown)

	f.Clear()

	if f.Has(ActionUp) || f.Has(ActionDown) {
		t.Error("Clear should remove all actions")
	}

	// Frame stays usable after Clear
	f.Set(ActionPause)
	if !f.Has(ActionPause) {
		t.Error("Frame should accept actions after Clear")
	}
}

func TestInputFrameClone(t *testing.T) {
	f := NewInputFrame()
	f.Set(ActionPrimary)

	clone := f.Clone()
	if !clone.Has(ActionPrimary) {
		t.Error("Clone should copy set actions")
	}

	// Mutating the clone must not affect the original
	clone.Set(ActionSecondary)
	if f.Has(ActionSecondary) {
		t.Error("Clone should be independent of the original")
	}
}

func TestActionString(t *testing.T) {
	tests := []struct {
		action   Action
		expected string
	}{
		{ActionNone, "None"},
		{ActionUp, "Up"},
		{ActionPrimary, "Primary"},
		{ActionSecondary, "Secondary"},
		{ActionBack, "Back"},
		{ActionQuit, "Quit"},
		{ActionPause, "Pause"},
		{Action(99), "Unknown"},
	}

	for _, tc := range tests {
		if got := tc.action.String(); got != tc.expected {
			t.Errorf("Action(%d).String() = %q, expected %q", tc.action, got, tc.expected)
		}
	}
}
