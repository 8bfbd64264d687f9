package tween

import "errors"

var (
	// ErrInvalidInitialValue reports an explicit initial value that is not
	// numeric and not a func() float64, or a callable initial that produced
	// NaN or an infinity.
	ErrInvalidInitialValue = errors.New("tween: invalid initial value")

	// ErrAlreadyStarted reports a second Start call on an animation.
	ErrAlreadyStarted = errors.New("tween: animation already started")

	// ErrReservedName reports a track named after a configuration field
	// (duration, transition, initial, relative, round_values, delay).
	ErrReservedName = errors.New("tween: reserved name used as track name")

	// ErrNoTracks reports an animation constructed without any tracks.
	ErrNoTracks = errors.New("tween: animation has no tracks")

	// ErrInvalidTrackValue reports a track final that is not numeric and
	// not a func() float64, or a callable final that produced NaN or an
	// infinity.
	ErrInvalidTrackValue = errors.New("tween: invalid track value")

	// ErrMissingAccessor reports a bound target that exposes no accessor
	// for one of the animation's track names.
	ErrMissingAccessor = errors.New("tween: target has no accessor for track")

	// ErrTaskAlreadyFinished reports Schedule or Chain on a terminal task.
	ErrTaskAlreadyFinished = errors.New("tween: task already finished")

	// ErrAlreadyChained reports a second Chain call on a task.
	ErrAlreadyChained = errors.New("tween: task already chained")

	// ErrNeverFinishes reports chaining onto a task that repeats forever.
	ErrNeverFinishes = errors.New("tween: cannot chain to a task that never finishes")

	// ErrNoCallbacks reports a task that became eligible to fire with no
	// fire callbacks registered.
	ErrNoCallbacks = errors.New("tween: task has no callbacks")
)
