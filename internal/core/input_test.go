package core

import "testing"

func TestInputFrameOrder(t *testing.T) {
	f := NewInputFrame()
	f.Set(ActionLeft)
	f.Set(ActionNone)
	f.Set(ActionLeft)
	f.Set(ActionJump)

	if f.Len() != 3 {
		t.Fatalf("Len() = %d, expected 3 (ActionNone is dropped)", f.Len())
	}
	got := f.Actions()
	want := []Action{ActionLeft, ActionLeft, ActionJump}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("Actions()[%d] = %v, expected %v", i, got[i], want[i])
		}
	}
	if !f.Has(ActionJump) || f.Has(ActionRight) {
		t.Error("Has() reports wrong membership")
	}

	clone := f.Clone()
	f.Clear()
	if f.Len() != 0 {
		t.Error("Clear should empty the frame")
	}
	if clone.Len() != 3 {
		t.Error("Clone should not share storage with the original")
	}
}

func TestActionOptionIndex(t *testing.T) {
	tests := []struct {
		action Action
		index  int
		ok     bool
	}{
		{ActionOption1, 0, true},
		{ActionOption2, 1, true},
		{ActionOption3, 2, true},
		{ActionJump, -1, false},
	}

	for _, tc := range tests {
		idx, ok := tc.action.OptionIndex()
		if idx != tc.index || ok != tc.ok {
			t.Errorf("%v.OptionIndex() = (%d, %v), expected (%d, %v)", tc.action, idx, ok, tc.index, tc.ok)
		}
	}
}
