// Package tween implements the animation engine that drives all particle
// movement and fading: given a target object, a set of property end
// values, and a duration, it interpolates the properties over time and
// invokes a completion callback exactly once on natural completion.
//
// The engine is cooperative and single-threaded. A host loop advances all
// in-flight tweens by calling Update(dt) once per frame; no goroutines or
// timers are involved, so callbacks never run concurrently with each
// other or with the caller.
package tween

// Values maps property names to target values for an animation request.
type Values map[string]float64

// Target is any object whose named numeric properties can be animated.
// Property reports the current value of a property and whether the target
// knows it; SetProperty assigns it.
type Target interface {
	Property(name string) (float64, bool)
	SetProperty(name string, value float64)
}

// Options configures a single animation request. The zero value means
// linear easing, no delay.
type Options struct {
	// Easing shapes the progress curve. Nil means EaseLinear.
	Easing Easing

	// Delay postpones interpolation by the given number of seconds. The
	// target holds its current values during the delay.
	Delay float64

	// Curve, when non-empty, replaces Easing with a keyframe curve mapping
	// normalized time to eased progress.
	Curve []Keyframe

	// CurveInterpolation selects the per-segment interpolation mode used
	// when Curve is set (see EvaluateKeyframes).
	CurveInterpolation string

	// Duration, when positive, overrides the duration passed to Animate.
	Duration float64
}

// Tween is a handle to one in-flight animation. It is returned by
// Engine.Animate and stays valid after completion or cancellation.
type Tween struct {
	target     Target
	from       map[string]float64
	to         Values
	duration   float64
	delay      float64
	elapsed    float64
	easing     Easing
	curve      []Keyframe
	curveMode  string
	onComplete func()

	done      bool
	cancelled bool
}

// Cancel stops the tween without completing it. The target keeps whatever
// values the last Update applied and the completion callback never fires.
// Cancelling a finished or already-cancelled tween is a no-op.
func (t *Tween) Cancel() {
	if t.done {
		return
	}
	t.cancelled = true
}

// Active reports whether the tween is still running (not completed and
// not cancelled).
func (t *Tween) Active() bool {
	return !t.done && !t.cancelled
}

// step advances the tween and applies interpolated values to the target.
func (t *Tween) step(dt float64) {
	if t.done || t.cancelled {
		return
	}

	t.elapsed += dt
	if t.elapsed < t.delay {
		return
	}

	progress := 1.0
	if t.duration > 0 {
		progress = (t.elapsed - t.delay) / t.duration
		if progress > 1 {
			progress = 1
		}
	}

	eased := progress
	if len(t.curve) > 0 {
		eased = EvaluateKeyframes(t.curve, progress, t.curveMode)
	} else if t.easing != nil {
		eased = t.easing(progress)
	}

	for name, end := range t.to {
		t.target.SetProperty(name, Lerp(t.from[name], end, eased))
	}

	if progress >= 1 {
		t.done = true
		if t.onComplete != nil {
			t.onComplete()
		}
	}
}

// Engine owns all in-flight tweens and advances them from the host loop.
type Engine struct {
	tweens []*Tween
}

// NewEngine creates an empty animation engine.
func NewEngine() *Engine {
	return &Engine{}
}

// Animate starts interpolating the named properties of target from their
// current values to the values in to, over duration seconds. onComplete,
// if non-nil, is invoked exactly once when the tween finishes naturally;
// it never fires after Cancel.
//
// Start values are captured when Animate is called. Properties the target
// does not report start from zero.
func (e *Engine) Animate(target Target, to Values, duration float64, opts Options, onComplete func()) *Tween {
	if opts.Duration > 0 {
		duration = opts.Duration
	}

	from := make(map[string]float64, len(to))
	for name := range to {
		v, _ := target.Property(name)
		from[name] = v
	}

	t := &Tween{
		target:     target,
		from:       from,
		to:         to,
		duration:   duration,
		delay:      opts.Delay,
		easing:     opts.Easing,
		curve:      opts.Curve,
		curveMode:  opts.CurveInterpolation,
		onComplete: onComplete,
	}
	e.tweens = append(e.tweens, t)
	return t
}

// Set assigns property values immediately, with no animation.
func (e *Engine) Set(target Target, values Values) {
	for name, v := range values {
		target.SetProperty(name, v)
	}
}

// Update advances every in-flight tween by dt seconds. Completion
// callbacks run synchronously from here; tweens they start join the
// engine and are first stepped on the next Update.
func (e *Engine) Update(dt float64) {
	// Callbacks may append to e.tweens; iterate only the tweens that
	// existed when the frame began.
	n := len(e.tweens)
	for i := 0; i < n; i++ {
		e.tweens[i].step(dt)
	}

	alive := make([]*Tween, 0, len(e.tweens))
	for _, t := range e.tweens {
		if t.Active() {
			alive = append(alive, t)
		}
	}
	e.tweens = alive
}

// Pending reports the number of tweens currently owned by the engine.
func (e *Engine) Pending() int {
	return len(e.tweens)
}
