package animations

import "testing"

func TestUpdateRespectsDelay(t *testing.T) {
	a := NewAnimation(12, 150, 1000)

	if a.Update(1050) {
		t.Fatal("advanced after 50ms")
	}
	if a.Update(1100) {
		t.Fatal("advanced after 100ms")
	}
	if a.Frame() != 0 {
		t.Fatalf("frame = %d, want 0", a.Frame())
	}

	if !a.Update(1150) {
		t.Fatal("did not advance after 150ms")
	}
	if a.Frame() != 1 {
		t.Fatalf("frame = %d, want 1", a.Frame())
	}
	if a.LastFrameTime() != 1150 {
		t.Errorf("lastFrameTime = %d, want 1150", a.LastFrameTime())
	}

	// The next advance is measured from the reset boundary
	if a.Update(1299) {
		t.Error("advanced 149ms after reset")
	}
	if !a.Update(1300) {
		t.Error("did not advance 150ms after reset")
	}
}

func TestUpdateAdvancesOnePerCall(t *testing.T) {
	a := NewAnimation(12, 150, 0)

	// A long gap still only moves one frame
	a.Update(10_000)
	if a.Frame() != 1 {
		t.Errorf("frame = %d, want 1", a.Frame())
	}
}

func TestUpdateWraps(t *testing.T) {
	a := NewAnimation(12, 150, 0)
	now := int64(0)
	for i := 0; i < 12; i++ {
		now += 150
		a.Update(now)
	}
	if a.Frame() != 0 {
		t.Errorf("frame after 12 advances = %d, want 0", a.Frame())
	}
}

func TestHoldKeepsTimer(t *testing.T) {
	a := NewAnimation(12, 150, 0)
	a.Update(150)
	a.Update(300)
	a.Hold()

	if a.Frame() != 0 {
		t.Errorf("frame = %d, want 0", a.Frame())
	}
	if a.LastFrameTime() != 300 {
		t.Errorf("lastFrameTime = %d, want 300", a.LastFrameTime())
	}
}

func TestRestart(t *testing.T) {
	a := NewAnimation(12, 150, 0)
	a.Update(150)
	a.Update(300)

	a.Restart(1000)
	if a.Frame() != 0 || a.LastFrameTime() != 1000 {
		t.Fatalf("after Restart: frame %d, lastFrameTime %d", a.Frame(), a.LastFrameTime())
	}
	if a.Update(1100) {
		t.Error("advanced 100ms after Restart")
	}
}

func TestSetFrameWraps(t *testing.T) {
	a := NewAnimation(12, 150, 0)

	a.SetFrame(13)
	if a.Frame() != 1 {
		t.Errorf("SetFrame(13) -> %d, want 1", a.Frame())
	}
	a.SetFrame(-1)
	if a.Frame() != 11 {
		t.Errorf("SetFrame(-1) -> %d, want 11", a.Frame())
	}
}
