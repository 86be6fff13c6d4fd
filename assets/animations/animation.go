package animations

// Animation cycles through FrameCount frames, advancing at most one frame
// each time DelayMillis has elapsed on the caller's clock.
type Animation struct {
	FrameCount    int
	DelayMillis   int64 // how many milliseconds before next frame
	frame         int
	lastFrameTime int64
}

// Update advances the frame if the delay has elapsed since the last advance
// and reports whether it did.
func (a *Animation) Update(nowMillis int64) bool {
	if nowMillis-a.lastFrameTime < a.DelayMillis {
		return false
	}
	a.lastFrameTime = nowMillis
	a.frame++
	if a.frame >= a.FrameCount {
		// loop back to the beginning
		a.frame = 0
	}
	return true
}

func (a *Animation) Frame() int {
	return a.frame
}

// LastFrameTime is the clock reading of the most recent advance.
func (a *Animation) LastFrameTime() int64 {
	return a.lastFrameTime
}

// Hold pins the animation on its first frame without touching the timer.
func (a *Animation) Hold() {
	a.frame = 0
}

// SetFrame jumps to frame, wrapped into [0, FrameCount).
func (a *Animation) SetFrame(frame int) {
	if a.FrameCount <= 0 {
		a.frame = 0
		return
	}
	a.frame = ((frame % a.FrameCount) + a.FrameCount) % a.FrameCount
}

// Restart returns to the first frame and restarts the timer at nowMillis.
func (a *Animation) Restart(nowMillis int64) {
	a.frame = 0
	a.lastFrameTime = nowMillis
}

func NewAnimation(frameCount int, delayMillis, nowMillis int64) *Animation {
	return &Animation{
		FrameCount:    frameCount,
		DelayMillis:   delayMillis,
		frame:         0,
		lastFrameTime: nowMillis,
	}
}
