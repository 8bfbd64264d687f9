package tween

import "math"

// Accessor reads and writes one animatable value on a target. Get
// reports ok == false when the value is write-only (a setter method
// with no paired getter); the engine then falls back to 0 unless the
// animation supplies an explicit initial value.
type Accessor interface {
	Get() (value float64, ok bool)
	Set(value float64)
}

// Target exposes named accessors for its animatable values. The engine
// assumes nothing else about the underlying object.
type Target interface {
	Accessor(name string) (Accessor, bool)
}

// AccessorMap is the stock Target implementation: a plain map from
// attribute name to accessor.
//
//	pos := tween.AccessorMap{
//		"x": tween.Field(&sprite.X),
//		"y": tween.Field(&sprite.Y),
//	}
type AccessorMap map[string]Accessor

// Accessor implements Target.
func (m AccessorMap) Accessor(name string) (Accessor, bool) {
	a, ok := m[name]
	return a, ok
}

type fieldAccessor struct{ p *float64 }

func (f fieldAccessor) Get() (float64, bool) { return *f.p, true }
func (f fieldAccessor) Set(v float64)        { *f.p = v }

// Field returns an accessor backed by a float64 field.
func Field(p *float64) Accessor { return fieldAccessor{p} }

type intFieldAccessor struct{ p *int }

func (f intFieldAccessor) Get() (float64, bool) { return float64(*f.p), true }
func (f intFieldAccessor) Set(v float64)        { *f.p = int(math.Round(v)) }

// IntField returns an accessor backed by an int field. Writes are
// rounded to the nearest integer, so integer-coordinate targets (tile
// positions, pixel rects) never jitter from truncation regardless of
// the animation's RoundValues setting.
func IntField(p *int) Accessor { return intFieldAccessor{p} }

type setterAccessor struct{ fn func(float64) }

func (s setterAccessor) Get() (float64, bool) { return 0, false }
func (s setterAccessor) Set(v float64)        { s.fn(v) }

// Setter returns a write-only accessor wrapping a setter method. There
// is no readable current value, so an animation without an explicit
// initial starts from 0.
func Setter(fn func(float64)) Accessor { return setterAccessor{fn} }

type propertyAccessor struct {
	get func() float64
	set func(float64)
}

func (p propertyAccessor) Get() (float64, bool) { return p.get(), true }
func (p propertyAccessor) Set(v float64)        { p.set(v) }

// Property returns an accessor backed by a getter/setter pair.
func Property(get func() float64, set func(float64)) Accessor {
	return propertyAccessor{get, set}
}

// toNumber coerces the numeric shapes accepted for initial values and
// track finals. Callables are not handled here; see resolveValue.
func toNumber(v any) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case float32:
		return float64(n), true
	case int:
		return float64(n), true
	case int64:
		return float64(n), true
	}
	return 0, false
}

// resolveValue resolves a number-or-callable to a float64. Callables
// are invoked exactly once, at the caller's chosen instant. Non-finite
// results and unsupported shapes report ok == false.
func resolveValue(v any) (float64, bool) {
	if fn, ok := v.(func() float64); ok {
		v = fn()
	}
	n, ok := toNumber(v)
	if !ok || math.IsNaN(n) || math.IsInf(n, 0) {
		return 0, false
	}
	return n, true
}
