package tween

import (
	"errors"
	"math"
	"testing"
)

func TestGroupTicksAllMembers(t *testing.T) {
	s1, s2 := &testSprite{}, &testSprite{}
	a1, _ := Animate(s1, map[string]any{"x": 100.0}, Config{Duration: 1000})
	a2, _ := Animate(s2, map[string]any{"x": 200.0}, Config{Duration: 1000})
	fires := 0
	task := NewTask(500, -1, func() { fires++ })

	g := NewGroup()
	g.Add(a1, a2, task)

	if err := g.Update(500); err != nil {
		t.Fatalf("Update: %v", err)
	}
	if math.Abs(s1.X-50) > tolerance || math.Abs(s2.X-100) > tolerance {
		t.Errorf("(s1.X, s2.X) = (%f, %f), want (50, 100)", s1.X, s2.X)
	}
	if fires != 1 {
		t.Errorf("task fired %d times, want 1", fires)
	}
}

func TestGroupDrainsTerminalMembers(t *testing.T) {
	s := &testSprite{}
	ani, _ := Animate(s, map[string]any{"x": 10.0}, Config{Duration: 100})
	task := NewTask(100, 1, func() {})

	g := NewGroup()
	g.Add(ani, task)
	if g.Len() != 2 {
		t.Fatalf("Len = %d, want 2", g.Len())
	}

	g.Update(100)
	if g.Len() != 0 {
		t.Errorf("Len = %d after terminal pass, want 0", g.Len())
	}
	// Drained instances stay inert.
	if ani.State() != StateFinished || task.State() != StateFinished {
		t.Errorf("states = (%v, %v), want finished", ani.State(), task.State())
	}
}

func TestGroupDropsAbortedMembers(t *testing.T) {
	s := &testSprite{}
	ani, _ := Animate(s, map[string]any{"x": 10.0}, Config{Duration: 1000})
	g := NewGroup()
	g.Add(ani)

	ani.Abort()
	g.Update(10)
	if g.Len() != 0 {
		t.Errorf("Len = %d, want 0 after abort drain", g.Len())
	}
}

func TestGroupAdoptsChainedTask(t *testing.T) {
	aFired, bFired := 0, 0
	a := NewTask(2500, 1, func() { aFired++ })
	b := NewTask(1000, 1, func() { bFired++ })
	a.Chain(b)

	g := NewGroup()
	g.Add(a)

	// A finishes mid-tick; B absorbs the trailing 500 and joins the group.
	g.Update(3000)
	if aFired != 1 || bFired != 0 {
		t.Fatalf("(a, b) fired (%d, %d), want (1, 0)", aFired, bFired)
	}
	if g.Len() != 1 {
		t.Fatalf("Len = %d, want 1 (b adopted, a drained)", g.Len())
	}

	g.Update(400) // b at 900 since activation
	if bFired != 0 {
		t.Fatal("b fired early")
	}
	g.Update(100) // b at exactly 1000
	if bFired != 1 {
		t.Errorf("b fired %d times, want 1", bFired)
	}
	if g.Len() != 0 {
		t.Errorf("Len = %d, want 0", g.Len())
	}
}

func TestGroupAdoptsAcrossFinishedChainLinks(t *testing.T) {
	var fired []string
	a := NewTask(100, 1, func() { fired = append(fired, "a") })
	b := NewTask(100, 1, func() { fired = append(fired, "b") })
	c := NewTask(100, 1, func() { fired = append(fired, "c") })
	a.Chain(b)
	b.Chain(c)

	g := NewGroup()
	g.Add(a)

	// One large tick finishes a and b; c activates with the trailing 50
	// and must be adopted even though its direct predecessor was never
	// a group member.
	if err := g.Update(250); err != nil {
		t.Fatalf("Update: %v", err)
	}
	if len(fired) != 2 || fired[0] != "a" || fired[1] != "b" {
		t.Fatalf("fired = %v, want [a b]", fired)
	}
	if g.Len() != 1 {
		t.Fatalf("Len = %d, want 1 (c adopted)", g.Len())
	}

	g.Update(50) // c at exactly 100 since activation
	if len(fired) != 3 || fired[2] != "c" {
		t.Errorf("fired = %v, want [a b c]", fired)
	}
	if g.Len() != 0 {
		t.Errorf("Len = %d, want 0", g.Len())
	}
}

func TestGroupDrainClearsVacatedSlots(t *testing.T) {
	done := NewTask(10, 1, func() {})
	live := NewTask(10, -1, func() {})

	g := NewGroup()
	g.Add(done, live)

	g.Update(10)
	if g.Len() != 1 {
		t.Fatalf("Len = %d, want 1", g.Len())
	}
	// The drained member must not stay reachable through the backing
	// array tail.
	tail := g.members[:2]
	if tail[1] != nil {
		t.Errorf("vacated slot still holds %T", tail[1])
	}
}

func TestGroupPropagatesUpdateErrors(t *testing.T) {
	ani, _ := New(map[string]any{"x": 1.0}, Config{
		Duration: 10,
		Initial:  func() float64 { return math.Inf(1) },
	})
	ani.Start(&testSprite{})

	g := NewGroup()
	g.Add(ani)
	if err := g.Update(1); !errors.Is(err, ErrInvalidInitialValue) {
		t.Fatalf("Update err = %v, want ErrInvalidInitialValue", err)
	}
}

func TestRemoveAnimationsOf(t *testing.T) {
	s1, s2 := &testSprite{}, &testSprite{}
	a1, _ := Animate(s1, map[string]any{"x": 1.0}, Config{Duration: 100})
	a2, _ := Animate(s1, map[string]any{"y": 2.0}, Config{Duration: 100})
	a3, _ := Animate(s2, map[string]any{"x": 3.0}, Config{Duration: 100})
	task := NewTask(100, 1, func() {})

	g := NewGroup()
	g.Add(a1, a2, a3, task)

	removed := g.RemoveAnimationsOf(s1)
	if len(removed) != 2 {
		t.Fatalf("removed %d animations, want 2", len(removed))
	}
	if g.Len() != 2 {
		t.Errorf("Len = %d, want 2 (a3 and the task remain)", g.Len())
	}
	if more := g.RemoveAnimationsOf(s1); len(more) != 0 {
		t.Errorf("second removal returned %d, want 0", len(more))
	}
}

func TestRemoveAnimationsOfMapTarget(t *testing.T) {
	x := 0.0
	m1 := AccessorMap{"x": Field(&x)}
	m2 := AccessorMap{"x": Field(&x)}
	a1, _ := Animate(m1, map[string]any{"x": 1.0}, Config{Duration: 100})
	a2, _ := Animate(m2, map[string]any{"x": 2.0}, Config{Duration: 100})

	g := NewGroup()
	g.Add(a1, a2)

	// Map targets compare by identity, not contents.
	removed := g.RemoveAnimationsOf(m1)
	if len(removed) != 1 || removed[0] != a1 {
		t.Fatalf("removed %d animations, want just the m1-bound one", len(removed))
	}
	if g.Len() != 1 {
		t.Errorf("Len = %d, want 1", g.Len())
	}
}

func TestGroupMembersAddedDuringPassTickNextPass(t *testing.T) {
	s := &testSprite{}
	g := NewGroup()

	spawner := NewTask(10, 1, func() {
		late, _ := Animate(s, map[string]any{"x": 100.0}, Config{Duration: 100})
		g.Add(late)
	})
	g.Add(spawner)

	g.Update(10)
	if s.X != 0 {
		t.Errorf("X = %f, want 0 (late member not ticked in the same pass)", s.X)
	}
	g.Update(50)
	if math.Abs(s.X-50) > tolerance {
		t.Errorf("X = %f, want 50", s.X)
	}
}
