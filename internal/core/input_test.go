package core

import "testing"

func TestInputFrameSetHasClear(t *testing.T) {
	f := NewInputFrame()

	if f.Has(ActionConfirm) {
		t.Error("new frame should have no actions")
	}

	f.Set(ActionConfirm)
	f.Set(ActionLeft)
	if !f.Has(ActionConfirm) || !f.Has(ActionLeft) {
		t.Error("set actions should be reported")
	}
	if f.Has(ActionRight) {
		t.Error("unset action should not be reported")
	}

	f.Clear()
	if f.Has(ActionConfirm) || f.Has(ActionLeft) {
		t.Error("Clear should drop all actions")
	}
}

func TestInputFrameZeroValue(t *testing.T) {
	// A zero frame must be usable: Set lazily allocates.
	var f InputFrame
	if f.Has(ActionUp) {
		t.Error("zero frame should report nothing")
	}
	f.Set(ActionUp)
	if !f.Has(ActionUp) {
		t.Error("Set on zero frame should work")
	}
}

func TestInputFrameClone(t *testing.T) {
	f := NewInputFrame()
	f.Set(ActionToggle)

	c := f.Clone()
	f.Clear()

	if !c.Has(ActionToggle) {
		t.Error("clone should be independent of the original")
	}
}

func TestActionString(t *testing.T) {
	cases := []struct {
		action Action
		want   string
	}{
		{ActionNone, "None"},
		{ActionNext, "Next"},
		{ActionToggle, "Toggle"},
		{ActionIncrease, "Increase"},
		{ActionConfirm, "Confirm"},
	}
	for _, tc := range cases {
		if got := tc.action.String(); got != tc.want {
			t.Errorf("%d.String() = %q, expected %q", tc.action, got, tc.want)
		}
	}
}
