package tween

import (
	"fmt"
	"math"
	"sort"

	"github.com/phanxgames/tween/ease"
)

// State is the lifecycle state of an Animation or Task.
type State uint8

const (
	StateScheduled State = iota // constructed, no target bound yet
	StateDelaying               // target bound, delay not yet elapsed
	StateRunning                // actively interpolating or firing
	StateFinished               // completed; inert
	StateAborted                // cancelled; inert
)

// Terminal reports whether the state is Finished or Aborted.
func (s State) Terminal() bool {
	return s == StateFinished || s == StateAborted
}

// String returns the state's name.
func (s State) String() string {
	switch s {
	case StateScheduled:
		return "scheduled"
	case StateDelaying:
		return "delaying"
	case StateRunning:
		return "running"
	case StateFinished:
		return "finished"
	case StateAborted:
		return "aborted"
	}
	return "unknown"
}

// Config holds the per-animation settings. The zero value is usable:
// zero duration resolves instantly, the transition defaults to
// ease.Linear, and initial values are read from the target.
type Config struct {
	// Duration is how long the animation runs once active. Zero means
	// the animation lands on its final values on the first active tick.
	Duration float64

	// Delay is elapsed time to consume before the animation activates.
	Delay float64

	// Transition is the easing curve. Nil means ease.Linear.
	Transition ease.TweenFunc

	// RoundValues rounds every value to the nearest integer before it
	// is written. Use for integer-coordinate targets exposed through
	// float accessors; IntField accessors round on their own.
	RoundValues bool

	// Relative interprets track values as offsets from the initial
	// value instead of absolute finals.
	Relative bool

	// Initial overrides the initial value for every track. Accepted
	// shapes: float64, float32, int, int64, or func() float64. Nil
	// reads each track's current value from its accessor (write-only
	// accessors start from 0). A callable is invoked exactly once, at
	// activation.
	Initial any
}

// track is one animated attribute. initial and delta are bound at
// activation and never change afterward.
type track struct {
	name     string
	final    any // numeric or func() float64, resolved at activation
	accessor Accessor
	initial  float64
	delta    float64
}

// Animation changes numeric values on a target over time.
//
// Construct with New, bind a target with Start (exactly once), then
// drive it with Update(dt) each frame, directly or through a Group:
//
//	ani, err := tween.New(map[string]any{"x": 100.0, "y": 100.0}, tween.Config{
//		Duration:   1.5,
//		Transition: ease.OutQuad,
//	})
//	if err != nil {
//		...
//	}
//	ani.Start(sprite)
//
// Track values may be offsets from the current value (Config.Relative)
// or zero-argument callables resolved at activation. Callbacks
// registered with On run at activation (TriggerStart), after each
// tick's values are applied (TriggerUpdate), and once on completion
// (TriggerFinish).
//
// An Animation is not safe for concurrent use; all mutation must come
// from a single update goroutine.
type Animation struct {
	callbacks

	tracks      []*track
	duration    float64
	delay       float64
	transition  ease.TweenFunc
	roundValues bool
	relative    bool
	initial     any

	elapsed float64
	state   State
	target  Target
}

// reservedName reports whether a track name collides with a
// configuration option. Tracks live in their own namespace, but track
// names often come from data files, so the collision stays a
// construction-time failure rather than silently animating nothing.
func reservedName(name string) bool {
	switch name {
	case "duration", "transition", "initial", "relative", "round_values", "delay":
		return true
	}
	return false
}

// validValue reports whether v is an accepted number-or-callable shape.
func validValue(v any) bool {
	if _, ok := v.(func() float64); ok {
		return true
	}
	_, ok := toNumber(v)
	return ok
}

// New creates an Animation from a map of track name to final value.
// Finals may be numeric or func() float64. At least one track is
// required. Track names matching configuration options fail with
// ErrReservedName, non-numeric finals with ErrInvalidTrackValue, and
// an unsupported Config.Initial shape with ErrInvalidInitialValue.
func New(tracks map[string]any, cfg Config) (*Animation, error) {
	if len(tracks) == 0 {
		return nil, ErrNoTracks
	}
	a := &Animation{
		duration:    math.Max(0, cfg.Duration),
		delay:       math.Max(0, cfg.Delay),
		transition:  cfg.Transition,
		roundValues: cfg.RoundValues,
		relative:    cfg.Relative,
		initial:     cfg.Initial,
		state:       StateScheduled,
	}
	if a.transition == nil {
		a.transition = ease.Linear
	}
	if a.initial != nil && !validValue(a.initial) {
		return nil, fmt.Errorf("%w: %T", ErrInvalidInitialValue, cfg.Initial)
	}
	for name, final := range tracks {
		if reservedName(name) {
			return nil, fmt.Errorf("%w: %q", ErrReservedName, name)
		}
		if !validValue(final) {
			return nil, fmt.Errorf("%w: track %q is %T", ErrInvalidTrackValue, name, final)
		}
		a.tracks = append(a.tracks, &track{name: name, final: final})
	}
	// Deterministic application order regardless of map iteration.
	sort.Slice(a.tracks, func(i, j int) bool { return a.tracks[i].name < a.tracks[j].name })
	return a, nil
}

// Animate constructs an animation and starts it on target in one call.
func Animate(target Target, tracks map[string]any, cfg Config) (*Animation, error) {
	a, err := New(tracks, cfg)
	if err != nil {
		return nil, err
	}
	if err := a.Start(target); err != nil {
		return nil, err
	}
	return a, nil
}

// On registers fn to run at the given trigger point. Callbacks run in
// registration order; panics are not recovered and propagate to the
// caller of Update.
func (a *Animation) On(tr Trigger, fn func()) {
	a.add(tr, fn)
}

// State returns the current lifecycle state.
func (a *Animation) State() State { return a.state }

// Done reports whether the animation is Finished or Aborted.
func (a *Animation) Done() bool { return a.state.Terminal() }

// Target returns the bound target, or nil before Start.
func (a *Animation) Target() Target { return a.target }

// Start binds the animation to a target and begins accruing elapsed
// time against the delay. The target must expose an accessor for every
// track name. A second call fails with ErrAlreadyStarted.
func (a *Animation) Start(target Target) error {
	if a.state != StateScheduled {
		return ErrAlreadyStarted
	}
	for _, tr := range a.tracks {
		acc, ok := target.Accessor(tr.name)
		if !ok {
			return fmt.Errorf("%w: %q", ErrMissingAccessor, tr.name)
		}
		tr.accessor = acc
	}
	a.target = target
	a.state = StateDelaying
	return nil
}

// Update advances the animation by dt. Ticking a Finished or Aborted
// animation is a no-op, as is ticking before Start. Within one tick
// all tracks are applied in a single pass before TriggerUpdate
// callbacks run. Initial-value resolution happens on the tick that
// consumes the delay; a resolution failure aborts the animation and is
// returned.
func (a *Animation) Update(dt float64) error {
	if a.state != StateDelaying && a.state != StateRunning {
		return nil
	}
	a.elapsed += dt
	if a.state == StateDelaying {
		if a.elapsed < a.delay {
			return nil
		}
		a.elapsed -= a.delay
		if err := a.activate(); err != nil {
			return err
		}
		// A real delay consumes its whole tick; the overshoot carries
		// in elapsed and the first interpolated values land next tick.
		if a.delay > 0 {
			return nil
		}
	}

	p := 1.0
	if a.duration > 0 {
		p = math.Min(1, a.elapsed/a.duration)
	}
	t := a.transition(p)
	for _, tr := range a.tracks {
		a.apply(tr, tr.initial+tr.delta*t)
	}
	a.emit(TriggerUpdate)
	if p >= 1 {
		a.complete()
	}
	return nil
}

// activate resolves and caches every track's initial and delta, then
// fires TriggerStart. Runs exactly once per animation so callable
// initials with side effects stay deterministic.
func (a *Animation) activate() error {
	for _, tr := range a.tracks {
		initial, err := a.resolveInitial(tr)
		if err != nil {
			a.state = StateAborted
			return err
		}
		final, ok := resolveValue(tr.final)
		if !ok {
			a.state = StateAborted
			return fmt.Errorf("%w: track %q", ErrInvalidTrackValue, tr.name)
		}
		if a.relative {
			final += initial
		}
		tr.initial = initial
		tr.delta = final - initial
	}
	a.state = StateRunning
	a.emit(TriggerStart)
	return nil
}

// resolveInitial implements the initial-value rules: an explicit
// initial (number or callable) wins and is validated strictly; without
// one the accessor's current value is read, and write-only accessors
// default to 0.
func (a *Animation) resolveInitial(tr *track) (float64, error) {
	if a.initial != nil {
		v, ok := resolveValue(a.initial)
		if !ok {
			return 0, fmt.Errorf("%w: track %q", ErrInvalidInitialValue, tr.name)
		}
		return v, nil
	}
	if v, ok := tr.accessor.Get(); ok {
		return v, nil
	}
	return 0, nil
}

func (a *Animation) apply(tr *track, v float64) {
	if a.roundValues {
		v = math.Round(v)
	}
	tr.accessor.Set(v)
}

// complete applies the exact final value of every track, so the target
// lands on the requested end value regardless of easing and float
// drift, then fires TriggerFinish.
func (a *Animation) complete() {
	for _, tr := range a.tracks {
		a.apply(tr, tr.initial+tr.delta)
	}
	a.state = StateFinished
	a.emit(TriggerFinish)
}

// Finish forces the animation to complete immediately: final values
// are applied and TriggerFinish fires, as if the duration had elapsed.
// A still-delaying animation activates first (resolving initials and
// firing TriggerStart). Before Start there is no target to write to,
// so the animation just becomes Finished. Finishing a terminal
// animation is a no-op.
func (a *Animation) Finish() error {
	switch a.state {
	case StateFinished, StateAborted:
		return nil
	case StateScheduled:
		a.state = StateFinished
		a.emit(TriggerFinish)
		return nil
	case StateDelaying:
		if err := a.activate(); err != nil {
			return err
		}
	}
	a.complete()
	return nil
}

// Abort cancels the animation. No further values are written, no
// TriggerFinish fires, and already-applied values stay as last
// written. Aborting a terminal animation is a no-op.
func (a *Animation) Abort() {
	if a.state.Terminal() {
		return
	}
	a.state = StateAborted
}
