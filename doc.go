// Package tween is a tick-driven value-interpolation and delayed-execution
// engine.
//
// Tween has no clock, thread, or timer of its own: all time advances
// through explicit Update(dt) calls supplied by the host's per-frame
// loop, which makes it a natural fit for [Ebitengine] games but usable
// from any loop that can produce a time delta.
//
// # Animations
//
// An [Animation] transitions named numeric values on an opaque target
// from an initial value to a final value over a duration, through a
// configurable easing curve from the [ease] subpackage:
//
//	ani, err := tween.New(map[string]any{"x": 120.0, "y": 80.0}, tween.Config{
//		Duration:   2,
//		Delay:      0.5,
//		Transition: ease.OutBounce,
//	})
//	if err != nil {
//		log.Fatal(err)
//	}
//	ani.Start(tween.AccessorMap{
//		"x": tween.Field(&sprite.X),
//		"y": tween.Field(&sprite.Y),
//	})
//
// Targets are opaque: the engine only needs a named [Accessor] per
// track, built from a float field ([Field]), an int field ([IntField]),
// a write-only setter ([Setter]), or a getter/setter pair ([Property]).
// Initial values are read from the target at activation, overridden by
// [Config].Initial, or default to 0 for write-only accessors. Final
// values may be absolute, relative offsets ([Config].Relative), or
// zero-argument callables resolved at activation.
//
// # Tasks
//
// A [Task] invokes callbacks after an interval, optionally repeating,
// and can chain a successor that activates the instant it finishes:
//
//	spawn := tween.NewTask(2.5, -1, spawnEnemy)   // forever
//	intro := tween.NewTask(1.0, 1, showBanner)    // once
//	intro.Chain(tween.NewTask(3.0, 1, hideBanner))
//
// # Groups
//
// A [Group] holds live animations and tasks, ticks them in one pass,
// adopts chained tasks, and drops finished ones. Groups hold pure
// time-keeping instances and have no draw path.
//
// Both engines expose callback trigger points ([TriggerStart],
// [TriggerUpdate], [TriggerFinish], [TriggerFire]); callbacks run in
// registration order, and panics propagate to the host's update call.
// Everything in this package assumes a single logical update
// goroutine, matching the usual game-loop model.
//
// [Ebitengine]: https://ebitengine.org
package tween
