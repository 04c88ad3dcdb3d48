package pinpoint

import (
	"time"

	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// ProgressFunc receives the normalized progress of an animation in [0, 1].
type ProgressFunc func(progress float64)

// Animation is a single running timeline created by Animator.Run.
// Progress callbacks receive monotonically non-decreasing values and the
// final call always passes exactly 1.
type Animation struct {
	tween    *gween.Tween
	fn       ProgressFunc
	done     func()
	progress float64

	finished  bool
	cancelled bool
}

// Cancel stops future progress callbacks and suppresses the completion
// callback. Values already written by the progress callback stay as they
// are. Cancelling a finished animation is a no-op.
func (a *Animation) Cancel() {
	if a == nil || a.finished {
		return
	}
	a.cancelled = true
}

// Progress returns the last progress value passed to the callback.
func (a *Animation) Progress() float64 {
	return a.progress
}

// Finished reports whether the animation ran to completion.
func (a *Animation) Finished() bool {
	return a.finished
}

// Cancelled reports whether the animation was cancelled before completing.
func (a *Animation) Cancelled() bool {
	return a.cancelled
}

// Active reports whether the animation will still receive updates.
func (a *Animation) Active() bool {
	return !a.finished && !a.cancelled
}

// step advances the timeline by dt seconds.
func (a *Animation) step(dt float32) {
	if !a.Active() {
		return
	}
	val, finished := a.tween.Update(dt)
	p := clamp01(float64(val))
	if finished {
		p = 1
	}
	// gween can round below a previously reported value on float32 edges.
	if p < a.progress {
		p = a.progress
	}
	a.progress = p
	a.fn(p)
	if finished {
		// The progress callback may have cancelled us.
		if a.cancelled {
			return
		}
		a.finished = true
		if a.done != nil {
			a.done()
		}
	}
}

// Animator drives linear 0→1 timelines from elapsed time. It does not own a
// clock; the scene calls Update once per frame.
//
// Animations started from inside a callback join on the next Update.
type Animator struct {
	running []*Animation
	buf     []*Animation
}

// NewAnimator creates an empty Animator.
func NewAnimator() *Animator {
	return &Animator{}
}

// Run starts a timeline of the given duration. fn is called on every
// Update with the clamped progress; done, if non-nil, is called once after
// the terminal progress=1 callback unless the animation was cancelled.
func (am *Animator) Run(fn ProgressFunc, duration time.Duration, done func()) *Animation {
	if duration < 0 {
		duration = 0
	}
	a := &Animation{
		tween: gween.New(0, 1, float32(duration.Seconds()), ease.Linear),
		fn:    fn,
		done:  done,
	}
	am.running = append(am.running, a)
	return a
}

// Update advances every live animation by dt and drops the ones that
// finished or were cancelled.
func (am *Animator) Update(dt time.Duration) {
	if len(am.running) == 0 {
		return
	}
	step := float32(dt.Seconds())

	// Iterate a snapshot: callbacks may start or cancel animations.
	am.buf = append(am.buf[:0], am.running...)
	for _, a := range am.buf {
		a.step(step)
	}
	clear(am.buf)

	live := am.running[:0]
	for _, a := range am.running {
		if a.Active() {
			live = append(live, a)
		}
	}
	clear(am.running[len(live):])
	am.running = live
}

// Len returns the number of animations still running.
func (am *Animator) Len() int {
	n := 0
	for _, a := range am.running {
		if a.Active() {
			n++
		}
	}
	return n
}
