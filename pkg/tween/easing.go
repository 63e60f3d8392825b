package tween

import "math"

// Easing Functions
//
// An easing function shapes the speed curve of an animation. Every
// function takes a progress value t ∈ [0, 1] and returns the eased
// progress ∈ [0, 1].
//
// Reference: https://easings.net/

// Easing maps raw animation progress to eased progress.
type Easing func(t float64) float64

// EaseLinear is the identity easing (constant speed).
func EaseLinear(t float64) float64 {
	return t
}

// EaseOutCubic starts fast and ends slow.
// Formula: f(t) = 1 - (1-t)³
func EaseOutCubic(t float64) float64 {
	return 1 - math.Pow(1-t, 3)
}

// EaseInCubic starts slow and ends fast.
// Formula: f(t) = t³
func EaseInCubic(t float64) float64 {
	return t * t * t
}

// EaseInOutCubic starts slow, speeds up in the middle, and ends slow.
// Formula:
//
//	t < 0.5:  f(t) = 4t³
//	t >= 0.5: f(t) = 1 - (-2t + 2)³ / 2
func EaseInOutCubic(t float64) float64 {
	if t < 0.5 {
		return 4 * t * t * t
	}
	return 1 - math.Pow(-2*t+2, 3)/2
}

// EaseOutQuad starts fast and ends slow, softer than the cubic variant.
// Formula: f(t) = 1 - (1-t)²
func EaseOutQuad(t float64) float64 {
	return 1 - (1-t)*(1-t)
}

// EaseInQuad starts slow and ends fast.
// Formula: f(t) = t²
func EaseInQuad(t float64) float64 {
	return t * t
}

// EaseOutExpo starts very fast and ends very slow.
// Formula: f(t) = 1 - 2^(-10t)
func EaseOutExpo(t float64) float64 {
	if t >= 1.0 {
		return 1.0
	}
	return 1 - math.Pow(2, -10*t)
}

// Lerp linearly interpolates between a and b: t=0 returns a, t=1 returns b.
func Lerp(a, b, t float64) float64 {
	return a + (b-a)*t
}

// easingsByName maps the names accepted in preset files to easing
// functions. Names are the exported function names without the "Ease"
// prefix.
var easingsByName = map[string]Easing{
	"Linear":     EaseLinear,
	"InQuad":     EaseInQuad,
	"OutQuad":    EaseOutQuad,
	"InCubic":    EaseInCubic,
	"OutCubic":   EaseOutCubic,
	"InOutCubic": EaseInOutCubic,
	"OutExpo":    EaseOutExpo,
}

// EasingByName resolves an easing function by name. Unknown or empty
// names resolve to EaseLinear, so preset files degrade gracefully.
func EasingByName(name string) Easing {
	if e, ok := easingsByName[name]; ok {
		return e
	}
	return EaseLinear
}
