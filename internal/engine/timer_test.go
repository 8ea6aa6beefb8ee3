package engine

import "testing"

func TestTimerFires(t *testing.T) {
	tm := NewTimer(0.5)

	fired := 0
	for i := 0; i < 16; i++ {
		fired += tm.Advance(0.125)
	}
	if fired != 4 {
		t.Errorf("fired %d times over 2s, want 4", fired)
	}

	if got := tm.Advance(1.25); got != 2 {
		t.Errorf("Advance(1.25) = %d, want 2", got)
	}
	if got := tm.Advance(0.25); got != 1 {
		t.Errorf("remainder should carry over, Advance(0.25) = %d", got)
	}
}

func TestTimerDisabled(t *testing.T) {
	var tm Timer
	if got := tm.Advance(10); got != 0 {
		t.Errorf("zero interval fired %d times", got)
	}

	tm = NewTimer(1)
	if got := tm.Advance(-3); got != 0 {
		t.Errorf("negative amount fired %d times", got)
	}
}

func TestTimerReset(t *testing.T) {
	tm := NewTimer(1)
	tm.Advance(0.75)
	tm.Reset()

	if got := tm.Advance(0.5); got != 0 {
		t.Errorf("Reset should drop the partial interval, fired %d", got)
	}
}
