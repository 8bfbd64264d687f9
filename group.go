package tween

import "reflect"

// Updatable is the contract shared by Animation and Task: advance by a
// time delta, and report terminal state so a container can detach the
// instance.
type Updatable interface {
	Update(dt float64) error
	Done() bool
}

// Group is a host-side container for live animations and tasks. Call
// Update once per frame with the elapsed delta; every member is ticked
// in one pass, chained successors of tasks that finished during the
// pass are adopted, and terminal members are dropped afterward.
//
// Group members are pure time-keeping instances, never visual
// primitives; Group deliberately has no Draw method.
//
//	group := tween.NewGroup()
//	group.Add(ani, task)
//	...
//	if err := group.Update(dt); err != nil {
//		...
//	}
//
// Update stops at the first member error; the caller decides whether
// to abort that instance or the whole batch. Callback panics are not
// recovered either and propagate out of Update.
type Group struct {
	members []Updatable
}

// NewGroup creates an empty group.
func NewGroup() *Group {
	return &Group{}
}

// Add registers instances to be ticked by Update. Do not add a task
// that is chained to another; its predecessor hands it over when it
// activates.
func (g *Group) Add(items ...Updatable) {
	g.members = append(g.members, items...)
}

// Len returns the number of live members.
func (g *Group) Len() int { return len(g.members) }

// Update ticks every member by dt, adopts chained successors of tasks
// that finished, and removes terminal members. Members added by
// callbacks during the pass are not ticked until the next pass.
func (g *Group) Update(dt float64) error {
	n := len(g.members)
	for i := 0; i < n; i++ {
		if err := g.members[i].Update(dt); err != nil {
			return err
		}
	}

	var adopted []Updatable
	live := g.members[:0]
	for _, m := range g.members {
		if t, ok := m.(*Task); ok && t.state == StateFinished {
			// A large delta can run several chain links to completion
			// within this pass; follow the chain past terminal links to
			// the first task still live.
			next := t.Chained()
			for next != nil && next.Done() {
				next = next.Chained()
			}
			if next != nil {
				adopted = append(adopted, next)
			}
		}
		if !m.Done() {
			live = append(live, m)
		}
	}
	// Clear the vacated tail so drained members are not retained.
	for i := len(live); i < len(g.members); i++ {
		g.members[i] = nil
	}
	g.members = append(live, adopted...)
	return nil
}

// RemoveAnimationsOf removes every animation bound to the given target
// and returns the removed instances. Tasks and animations bound to
// other targets are left in place.
func (g *Group) RemoveAnimationsOf(target Target) []*Animation {
	var removed []*Animation
	live := g.members[:0]
	for _, m := range g.members {
		if a, ok := m.(*Animation); ok && sameTarget(a.target, target) {
			removed = append(removed, a)
			continue
		}
		live = append(live, m)
	}
	// Clear the tail so removed members are not retained.
	for i := len(live); i < len(g.members); i++ {
		g.members[i] = nil
	}
	g.members = live
	return removed
}

// sameTarget compares target handles by identity. Map- and
// slice-backed targets (AccessorMap included) are not comparable with
// ==, so those compare by underlying pointer.
func sameTarget(a, b Target) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	ra, rb := reflect.ValueOf(a), reflect.ValueOf(b)
	if ra.Type() != rb.Type() {
		return false
	}
	switch ra.Kind() {
	case reflect.Map, reflect.Slice, reflect.Func:
		return ra.Pointer() == rb.Pointer()
	}
	if ra.Comparable() {
		return a == b
	}
	return false
}
