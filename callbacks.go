package tween

// Trigger identifies a moment in an instance's lifecycle at which
// registered callbacks run.
type Trigger uint8

const (
	TriggerStart  Trigger = iota // animation activated (delay elapsed)
	TriggerUpdate                // values applied for a tick
	TriggerFinish                // terminal completion via Finish or natural end
	TriggerFire                  // task interval elapsed

	numTriggers
)

// String returns the trigger's name.
func (tr Trigger) String() string {
	switch tr {
	case TriggerStart:
		return "on start"
	case TriggerUpdate:
		return "on update"
	case TriggerFinish:
		return "on finish"
	case TriggerFire:
		return "on fire"
	}
	return "unknown"
}

// callbacks holds ordered callback lists per trigger. Shared by
// Animation and Task. Callbacks run in registration order; panics are
// not recovered and propagate to the caller's Update.
type callbacks struct {
	lists [numTriggers][]func()
}

func (c *callbacks) add(tr Trigger, fn func()) {
	c.lists[tr] = append(c.lists[tr], fn)
}

func (c *callbacks) emit(tr Trigger) {
	for _, fn := range c.lists[tr] {
		fn()
	}
}

func (c *callbacks) count(tr Trigger) int {
	return len(c.lists[tr])
}
