// Package ease provides the easing functions used by the tween package.
//
// Each function maps normalized progress t in [0, 1] to eased progress,
// with f(0) == 0 and f(1) == 1. The Back and Elastic families overshoot
// those bounds mid-curve but still land exactly on the endpoints.
//
// The curves are the classic Penner set: Quad, Cubic, Quart, Quint,
// Sine, Expo, Circ, Back, Elastic, and Bounce, each as In, Out, and
// InOut variants, plus Linear.
package ease

import "math"

// TweenFunc maps normalized progress to eased progress.
type TweenFunc func(t float64) float64

// Linear returns t unchanged.
func Linear(t float64) float64 { return t }

// InQuad accelerates from zero velocity.
func InQuad(t float64) float64 { return t * t }

// OutQuad decelerates to zero velocity.
func OutQuad(t float64) float64 { return -t * (t - 2) }

// InOutQuad accelerates until halfway, then decelerates.
func InOutQuad(t float64) float64 {
	t *= 2
	if t < 1 {
		return 0.5 * t * t
	}
	t--
	return -0.5 * (t*(t-2) - 1)
}

// InCubic accelerates from zero velocity.
func InCubic(t float64) float64 { return t * t * t }

// OutCubic decelerates to zero velocity.
func OutCubic(t float64) float64 {
	t--
	return t*t*t + 1
}

// InOutCubic accelerates until halfway, then decelerates.
func InOutCubic(t float64) float64 {
	t *= 2
	if t < 1 {
		return 0.5 * t * t * t
	}
	t -= 2
	return 0.5 * (t*t*t + 2)
}

// InQuart accelerates from zero velocity.
func InQuart(t float64) float64 { return t * t * t * t }

// OutQuart decelerates to zero velocity.
func OutQuart(t float64) float64 {
	t--
	return -(t*t*t*t - 1)
}

// InOutQuart accelerates until halfway, then decelerates.
func InOutQuart(t float64) float64 {
	t *= 2
	if t < 1 {
		return 0.5 * t * t * t * t
	}
	t -= 2
	return -0.5 * (t*t*t*t - 2)
}

// InQuint accelerates from zero velocity.
func InQuint(t float64) float64 { return t * t * t * t * t }

// OutQuint decelerates to zero velocity.
func OutQuint(t float64) float64 {
	t--
	return t*t*t*t*t + 1
}

// InOutQuint accelerates until halfway, then decelerates.
func InOutQuint(t float64) float64 {
	t *= 2
	if t < 1 {
		return 0.5 * t * t * t * t * t
	}
	t -= 2
	return 0.5 * (t*t*t*t*t + 2)
}

// InSine accelerates along a quarter sine wave.
func InSine(t float64) float64 { return -math.Cos(t*(math.Pi/2)) + 1 }

// OutSine decelerates along a quarter sine wave.
func OutSine(t float64) float64 { return math.Sin(t * (math.Pi / 2)) }

// InOutSine eases along a half sine wave.
func InOutSine(t float64) float64 { return -0.5 * (math.Cos(math.Pi*t) - 1) }

// InExpo accelerates exponentially.
func InExpo(t float64) float64 {
	if t == 0 {
		return 0
	}
	return math.Pow(2, 10*(t-1))
}

// OutExpo decelerates exponentially.
func OutExpo(t float64) float64 {
	if t == 1 {
		return 1
	}
	return -math.Pow(2, -10*t) + 1
}

// InOutExpo accelerates exponentially until halfway, then decelerates.
func InOutExpo(t float64) float64 {
	if t == 0 {
		return 0
	}
	if t == 1 {
		return 1
	}
	t *= 2
	if t < 1 {
		return 0.5 * math.Pow(2, 10*(t-1))
	}
	t--
	return 0.5 * (-math.Pow(2, -10*t) + 2)
}

// InCirc accelerates along a quarter circle.
func InCirc(t float64) float64 { return -(math.Sqrt(1-t*t) - 1) }

// OutCirc decelerates along a quarter circle.
func OutCirc(t float64) float64 {
	t--
	return math.Sqrt(1 - t*t)
}

// InOutCirc accelerates until halfway, then decelerates, along circle arcs.
func InOutCirc(t float64) float64 {
	t *= 2
	if t < 1 {
		return -0.5 * (math.Sqrt(1-t*t) - 1)
	}
	t -= 2
	return 0.5 * (math.Sqrt(1-t*t) + 1)
}

// backOvershoot tunes how far the Back family pulls past its endpoints.
const backOvershoot = 1.70158

// InBack pulls slightly backward before accelerating.
func InBack(t float64) float64 {
	return t * t * ((backOvershoot+1)*t - backOvershoot)
}

// OutBack overshoots the target slightly before settling.
func OutBack(t float64) float64 {
	t--
	return t*t*((backOvershoot+1)*t+backOvershoot) + 1
}

// InOutBack pulls backward, accelerates, then overshoots and settles.
func InOutBack(t float64) float64 {
	const s = backOvershoot * 1.525
	t *= 2
	if t < 1 {
		return 0.5 * (t * t * ((s+1)*t - s))
	}
	t -= 2
	return 0.5 * (t*t*((s+1)*t+s) + 2)
}

// InElastic oscillates with growing amplitude toward the target.
func InElastic(t float64) float64 {
	const p = 0.3
	const s = p / 4
	if t == 0 {
		return 0
	}
	if t == 1 {
		return 1
	}
	t--
	return -(math.Pow(2, 10*t) * math.Sin((t-s)*(2*math.Pi)/p))
}

// OutElastic overshoots and oscillates with decaying amplitude.
func OutElastic(t float64) float64 {
	const p = 0.3
	const s = p / 4
	if t == 0 {
		return 0
	}
	if t == 1 {
		return 1
	}
	return math.Pow(2, -10*t)*math.Sin((t-s)*(2*math.Pi)/p) + 1
}

// InOutElastic oscillates inward until halfway, then outward.
func InOutElastic(t float64) float64 {
	const p = 0.3 * 1.5
	const s = p / 4
	t *= 2
	if t == 0 {
		return 0
	}
	if t == 2 {
		return 1
	}
	t--
	if t < 0 {
		return -0.5 * (math.Pow(2, 10*t) * math.Sin((t-s)*(2*math.Pi)/p))
	}
	return math.Pow(2, -10*t)*math.Sin((t-s)*(2*math.Pi)/p)*0.5 + 1
}

// outBounce is the base bounce curve shared by the Bounce family.
func outBounce(t float64) float64 {
	switch {
	case t < 1/2.75:
		return 7.5625 * t * t
	case t < 2/2.75:
		t -= 1.5 / 2.75
		return 7.5625*t*t + 0.75
	case t < 2.5/2.75:
		t -= 2.25 / 2.75
		return 7.5625*t*t + 0.9375
	default:
		t -= 2.625 / 2.75
		return 7.5625*t*t + 0.984375
	}
}

// InBounce bounces with growing rebounds toward the target.
func InBounce(t float64) float64 { return 1 - outBounce(1-t) }

// OutBounce bounces off the target with decaying rebounds.
func OutBounce(t float64) float64 { return outBounce(t) }

// InOutBounce bounces inward until halfway, then outward.
func InOutBounce(t float64) float64 {
	if t < 0.5 {
		return InBounce(t*2) * 0.5
	}
	return OutBounce(t*2-1)*0.5 + 0.5
}
