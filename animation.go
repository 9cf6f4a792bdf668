package sprig

import (
	"fmt"
	"math"
)

// WrapMode controls what happens when playback reaches the last frame.
type WrapMode uint8

const (
	WrapOnce     WrapMode = iota // play through Iterations times, forward only
	WrapLoop                     // restart from the first frame each iteration
	WrapPingPong                 // alternate forward and backward iterations
)

// Completion selects what the owning sprite does once an animation finishes.
// The Clock never applies it; Sprite.Tick does.
type Completion uint8

const (
	CompletionNone       Completion = iota // keep showing the last frame
	CompletionDestroy                      // destroy the owning object
	CompletionHide                         // hide the owning renderable
	CompletionRevert                       // show the sprite's rest image again
)

// String returns the completion policy name.
func (c Completion) String() string {
	switch c {
	case CompletionNone:
		return "none"
	case CompletionDestroy:
		return "destroy"
	case CompletionHide:
		return "hide"
	case CompletionRevert:
		return "revert"
	default:
		return "completion(?)"
	}
}

// String returns the wrap mode name.
func (w WrapMode) String() string {
	switch w {
	case WrapOnce:
		return "once"
	case WrapLoop:
		return "loop"
	case WrapPingPong:
		return "pingpong"
	default:
		return "wrap(?)"
	}
}

// frameEpsilon absorbs float drift when elapsed time lands on a frame or
// iteration boundary (e.g. 0.2+0.2+0.2 against 3 frames at 5 fps).
const frameEpsilon = 1e-9

// AnimationDefinition is an immutable, shareable description of a frame
// animation. Playback position lives in a Clock, never here.
type AnimationDefinition struct {
	Name string

	// Frames are the atlas rectangles shown in order. FrameIDs, when set,
	// are the atlas ids they were resolved from.
	Frames   []Rect
	FrameIDs []string

	FramesPerSecond float64
	WrapMode        WrapMode
	Iterations      int     // negative plays forever; zero is treated as one
	Speed           float64 // zero is treated as one
	Delay           float64 // seconds before playback starts
	Completion      Completion
	AutoPlay        bool
}

// Validate rejects definitions a Clock cannot play. It never modifies d;
// the tolerated zero Speed and Iterations are read as 1 wherever they are used.
func (d *AnimationDefinition) Validate() error {
	if len(d.Frames) == 0 {
		return fmt.Errorf("%w: %q has no frames", ErrDegenerateAnimation, d.Name)
	}
	if !(d.FramesPerSecond > 0) || math.IsInf(d.FramesPerSecond, 0) {
		return fmt.Errorf("%w: %q has frame rate %v", ErrDegenerateAnimation, d.Name, d.FramesPerSecond)
	}
	if d.Delay < 0 || math.IsNaN(d.Delay) {
		return fmt.Errorf("%w: %q has negative delay %v", ErrDegenerateAnimation, d.Name, d.Delay)
	}
	return nil
}

// PlaybackSpeed returns Speed, reading zero as 1.
func (d *AnimationDefinition) PlaybackSpeed() float64 {
	if d.Speed == 0 {
		return 1
	}
	return d.Speed
}

// IterationCount returns Iterations, reading zero as 1.
func (d *AnimationDefinition) IterationCount() int {
	if d.Iterations == 0 {
		return 1
	}
	return d.Iterations
}

// FrameDuration returns the seconds each frame is displayed.
func (d *AnimationDefinition) FrameDuration() float64 {
	return 1 / d.FramesPerSecond
}

// LoopDuration returns the seconds a single pass over all frames takes.
func (d *AnimationDefinition) LoopDuration() float64 {
	return d.FrameDuration() * float64(len(d.Frames))
}

// TotalDuration returns LoopDuration * Iterations, or +Inf for infinite
// iterations.
func (d *AnimationDefinition) TotalDuration() float64 {
	n := d.IterationCount()
	if n < 0 {
		return math.Inf(1)
	}
	return d.LoopDuration() * float64(n)
}

// Clock is the per-instance playback state of an AnimationDefinition.
// It is a pure timing state machine: Advance reports frame changes and
// completion, and the caller decides what to do with them.
type Clock struct {
	def *AnimationDefinition

	speed         float64
	iterations    int
	frameDuration float64
	loopDuration  float64
	totalDuration float64

	elapsedDelay  float64
	delayComplete bool
	totalElapsed  float64
	elapsedInLoop float64
	completed     int // completed iterations
	currentFrame  int // -1 until the first frame is emitted

	paused      bool
	stopped     bool
	reversed    bool
	loopingBack bool
}

// NewClock creates a clock for def. It starts stopped and begins playing
// immediately when def.AutoPlay is set. def must have passed Validate.
func NewClock(def *AnimationDefinition) *Clock {
	c := &Clock{}
	c.SetDefinition(def)
	return c
}

// SetDefinition swaps the animation driven by this clock, resetting all
// playback state. Auto-playing definitions start immediately.
func (c *Clock) SetDefinition(def *AnimationDefinition) {
	c.def = def
	c.speed = def.PlaybackSpeed()
	c.iterations = def.IterationCount()
	c.frameDuration = def.FrameDuration()
	c.loopDuration = def.LoopDuration()
	c.totalDuration = def.TotalDuration()
	c.Stop()
	if def.AutoPlay {
		c.Play()
	}
}

// Definition returns the animation being played.
func (c *Clock) Definition() *AnimationDefinition { return c.def }

// Advance moves playback forward by dt seconds of real time and reports
// whether the displayed frame changed and whether the animation is complete.
// A stopped clock reports completion without changing any state; a paused
// clock reports nothing. The tick that finishes the start delay does not
// advance playback.
func (c *Clock) Advance(dt float64) (frameChanged, complete bool) {
	if c.stopped {
		return false, true
	}
	if c.paused {
		return false, false
	}

	if !c.delayComplete && c.elapsedDelay < c.def.Delay {
		c.elapsedDelay += dt
		if c.elapsedDelay >= c.def.Delay {
			c.delayComplete = true
		}
		return false, false
	}

	step := dt * c.speed
	if c.reversed {
		c.totalElapsed -= step
	} else {
		c.totalElapsed += step
	}
	c.totalElapsed = math.Max(0, math.Min(c.totalElapsed, c.totalDuration))

	c.completed = int(math.Floor(c.totalElapsed/c.loopDuration + frameEpsilon))
	iterations := c.iterations
	c.loopingBack = isLoopingBack(c.def.WrapMode, iterations, c.completed)

	switch {
	case iterations > 0 && c.completed >= iterations:
		c.elapsedInLoop = c.loopDuration
		if !c.reversed {
			complete = true
		}
	default:
		// Same as totalElapsed mod loopDuration, but consistent with the
		// epsilon used for completed when time lands on a boundary.
		c.elapsedInLoop = math.Max(0, c.totalElapsed-float64(c.completed)*c.loopDuration)
	}

	if c.reversed && c.totalElapsed <= 0 {
		complete = true
	}
	if complete {
		return false, true
	}

	displayed := c.elapsedInLoop
	if c.loopingBack {
		displayed = c.loopDuration - c.elapsedInLoop
	}
	frame := c.frameAt(displayed)
	if frame != c.currentFrame {
		c.currentFrame = frame
		return true, false
	}
	return false, false
}

// isLoopingBack reports whether playback is in the backward half of a
// ping-pong cycle. Finite ping-pongs that have run out count as looping back
// on even completed counts so they rest on the right frame.
func isLoopingBack(mode WrapMode, iterations, completed int) bool {
	if mode != WrapPingPong {
		return false
	}
	odd := completed%2 != 0
	switch {
	case iterations < 0:
		return odd
	case completed >= iterations:
		return !odd
	default:
		return odd
	}
}

func (c *Clock) frameAt(t float64) int {
	frame := int(math.Floor(t/c.frameDuration + frameEpsilon))
	if last := len(c.def.Frames) - 1; frame > last {
		frame = last
	}
	if frame < 0 {
		frame = 0
	}
	return frame
}

// CurrentFrame returns the index of the last emitted frame, or -1 if no
// frame has been emitted since the last Stop.
func (c *Clock) CurrentFrame() int { return c.currentFrame }

// Frame returns the frame to display and its atlas rectangle. Before the
// first emission this is the first frame.
func (c *Clock) Frame() (int, Rect) {
	i := c.currentFrame
	if i < 0 {
		i = 0
	}
	return i, c.def.Frames[i]
}

// Elapsed returns the total playback time, excluding the start delay.
func (c *Clock) Elapsed() float64 { return c.totalElapsed }

// CompletedIterations returns the number of whole iterations played.
func (c *Clock) CompletedIterations() int { return c.completed }

// IsPaused reports whether the clock is paused.
func (c *Clock) IsPaused() bool { return c.paused }

// IsStopped reports whether the clock is stopped.
func (c *Clock) IsStopped() bool { return c.stopped }

// IsReversed reports whether playback runs backward.
func (c *Clock) IsReversed() bool { return c.reversed }

// IsLoopingBack reports whether playback is in the backward half of a
// ping-pong cycle, as computed by the last Advance.
func (c *Clock) IsLoopingBack() bool { return c.loopingBack }

// Play resumes or starts playback.
func (c *Clock) Play() {
	c.paused = false
	c.stopped = false
}

// Pause freezes playback without resetting it.
func (c *Clock) Pause() {
	c.paused = true
}

// Stop resets all playback state, including the start delay, and stops the
// clock. The next Play starts over and emits the first frame again.
func (c *Clock) Stop() {
	c.currentFrame = -1
	c.elapsedDelay = 0
	c.delayComplete = false
	c.totalElapsed = 0
	c.elapsedInLoop = 0
	c.completed = 0
	c.reversed = false
	c.loopingBack = false
	c.stopped = true
}

// Restart is Stop followed by Play.
func (c *Clock) Restart() {
	c.Stop()
	c.Play()
}

// Reverse toggles the playback direction in place.
func (c *Clock) Reverse() {
	c.reversed = !c.reversed
}

// PlayForward sets forward playback and plays.
func (c *Clock) PlayForward() {
	c.reversed = false
	c.Play()
}

// PlayReverse sets backward playback and plays.
func (c *Clock) PlayReverse() {
	c.reversed = true
	c.Play()
}
