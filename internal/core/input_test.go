package core

import "testing"

func TestInputFrameTurnsOrder(t *testing.T) {
	f := NewInputFrame()
	f.Set(ActionUp)
	f.Set(ActionPause)
	f.Set(ActionLeft)

	turns := f.Turns()
	if len(turns) != 2 {
		t.Fatalf("Turns() len = %d, expected 2", len(turns))
	}
	if turns[0] != DirUp || turns[1] != DirLeft {
		t.Errorf("Turns() = %v, expected [up left]", turns)
	}

	if !f.Has(ActionPause) {
		t.Error("Has(ActionPause) should be true")
	}
	if f.Has(ActionQuit) {
		t.Error("Has(ActionQuit) should be false")
	}
}

func TestInputFrameClear(t *testing.T) {
	f := NewInputFrame()
	f.Set(ActionRight)
	f.Clear()

	if f.Has(ActionRight) {
		t.Error("Clear should remove actions")
	}
	if len(f.Turns()) != 0 {
		t.Error("Clear should remove turns")
	}
}

func TestZeroInputFrame(t *testing.T) {
	var f InputFrame
	if f.Has(ActionUp) {
		t.Error("zero frame should have no actions")
	}
	f.Set(ActionDown)
	if !f.Has(ActionDown) {
		t.Error("Set on zero frame should allocate")
	}
}
