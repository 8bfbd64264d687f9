package tween

// Task invokes callbacks after an elapsed interval, optionally
// repeating, without any hooks into a clock or event loop. Drive it
// with Update(dt) each frame, directly or through a Group.
//
//	// run once after one second
//	task := tween.NewTask(1.0, 1, callLater)
//
//	// run 24 times at one-second intervals
//	task = tween.NewTask(1.0, 24, callLater)
//
//	// run every 2.5 seconds forever
//	task = tween.NewTask(2.5, -1, callLater)
//
//	// run somethingElse when the first task completes
//	task = tween.NewTask(2.5, 1, callLater)
//	task.Chain(tween.NewTask(0, 1, somethingElse))
//
// A chained task must not also be added to a Group; its predecessor
// activates it at the finish instant and the Group adopts it on the
// next pass.
//
// A Task is not safe for concurrent use; all mutation must come from a
// single update goroutine.
type Task struct {
	callbacks

	interval float64
	times    int // -1 repeats forever; counts down to 0 otherwise
	elapsed  float64
	state    State
	next     *Task
}

// NewTask creates a running task that fires the given callbacks every
// interval, times times. times -1 repeats forever; 0 finishes on the
// first tick without firing. Negative times other than -1 are treated
// as -1. Callbacks may also be added later with Schedule.
func NewTask(interval float64, times int, fns ...func()) *Task {
	if times < -1 {
		times = -1
	}
	t := &Task{interval: interval, times: times, state: StateRunning}
	for _, fn := range fns {
		t.add(TriggerFire, fn)
	}
	return t
}

// State returns the current lifecycle state.
func (t *Task) State() State { return t.state }

// Done reports whether the task is Finished or Aborted.
func (t *Task) Done() bool { return t.state.Terminal() }

// TimesRemaining returns the number of firings left, or -1 when the
// task repeats forever. It never goes below 0.
func (t *Task) TimesRemaining() int { return t.times }

// Chained returns the successor task, or nil.
func (t *Task) Chained() *Task { return t.next }

// Schedule appends fn to the trigger's callback list. TriggerFire runs
// on every firing; TriggerFinish runs once when the task completes.
// Callbacks may be added while the task is running, but not after it
// has reached a terminal state (ErrTaskAlreadyFinished).
func (t *Task) Schedule(tr Trigger, fn func()) error {
	if t.state.Terminal() {
		return ErrTaskAlreadyFinished
	}
	t.add(tr, fn)
	return nil
}

// Chain sets next as the successor, activated at the instant this task
// finishes. Fails with ErrAlreadyChained if a successor is already
// set, ErrTaskAlreadyFinished on a terminal task, and ErrNeverFinishes
// when this task repeats forever.
func (t *Task) Chain(next *Task) error {
	if t.state.Terminal() {
		return ErrTaskAlreadyFinished
	}
	if t.next != nil {
		return ErrAlreadyChained
	}
	if t.times < 0 {
		return ErrNeverFinishes
	}
	t.next = next
	return nil
}

// Update advances the task by dt. A large delta spanning several
// intervals fires once per interval crossed, and the remainder is
// preserved so drift never accumulates across firings. Ticking a
// terminal task is a no-op.
//
// When the repeat count reaches 0 the task finishes, fires its
// TriggerFinish callbacks, and activates its chained successor: the
// part of the tick that elapsed after the finish instant belongs to
// the successor, so the successor's first tick is invoked here with
// that remainder.
//
// Becoming eligible to fire with no TriggerFire callbacks registered
// fails with ErrNoCallbacks.
func (t *Task) Update(dt float64) error {
	if t.state.Terminal() {
		return nil
	}
	t.elapsed += dt
	for t.elapsed >= t.interval && t.times != 0 {
		if t.count(TriggerFire) == 0 {
			return ErrNoCallbacks
		}
		t.elapsed -= t.interval
		t.emit(TriggerFire)
		if t.times > 0 {
			t.times--
		}
		// A zero interval fires at most once per tick.
		if t.interval <= 0 {
			break
		}
	}
	if t.times == 0 {
		t.state = StateFinished
		t.emit(TriggerFinish)
		if t.next != nil && t.elapsed > 0 {
			return t.next.Update(t.elapsed)
		}
	}
	return nil
}

// Abort cancels the task and drops its chained successor. No
// TriggerFinish callbacks fire. Aborting a terminal task is a no-op.
func (t *Task) Abort() {
	if t.state.Terminal() {
		return
	}
	t.state = StateAborted
	t.next = nil
}
