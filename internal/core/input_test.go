package core

import "testing"

func TestInputFrameQueuesMoves(t *testing.T) {
	f := NewInputFrame()
	f.Set(ActionLeft)
	f.Set(ActionLeft)
	f.Set(ActionRight)
	f.Set(ActionPause)

	if !f.Has(ActionLeft) || !f.Has(ActionRight) || !f.Has(ActionPause) {
		t.Fatal("Has() should report every action that was set")
	}

	want := []int{-1, -1, 1}
	if len(f.Moves) != len(want) {
		t.Fatalf("Moves = %v, expected %v", f.Moves, want)
	}
	for i := range want {
		if f.Moves[i] != want[i] {
			t.Errorf("Moves[%d] = %d, expected %d", i, f.Moves[i], want[i])
		}
	}
}

func TestInputFrameClear(t *testing.T) {
	f := NewInputFrame()
	f.Set(ActionRight)
	f.Set(ActionConfirm)

	f.Clear()

	if f.Has(ActionRight) || f.Has(ActionConfirm) || len(f.Moves) != 0 {
		t.Error("Clear() should drop actions and moves")
	}
}

func TestZeroInputFrame(t *testing.T) {
	var f InputFrame
	if f.Has(ActionQuit) {
		t.Error("zero frame should have no actions")
	}
	f.Set(ActionQuit)
	if !f.Has(ActionQuit) {
		t.Error("Set() on zero frame should allocate")
	}
}

func TestActionString(t *testing.T) {
	if ActionLeft.String() != "Left" || ActionQuit.String() != "Quit" {
		t.Error("unexpected action names")
	}
	if Action(99).String() != "Unknown" {
		t.Error("out-of-range action should be Unknown")
	}
}
