package tween

import "math"

// Keyframe is a single point on an animation curve: a normalized time in
// [0, 1] and the curve value at that time.
type Keyframe struct {
	Time  float64
	Value float64
}

// EvaluateKeyframes calculates the interpolated value at time t (0-1)
// using the provided keyframes and interpolation mode.
//
// The keyframes must be sorted by Time. The interpolation mode names a
// per-segment easing ("Linear", "EaseIn", "EaseOut", "FastInOutWeak");
// unknown or empty modes fall back to linear.
func EvaluateKeyframes(keyframes []Keyframe, t float64, interpolation string) float64 {
	if len(keyframes) == 0 {
		return 0
	}
	if len(keyframes) == 1 {
		return keyframes[0].Value
	}

	t = math.Max(0, math.Min(1, t))

	// Before the first keyframe the curve holds its initial value.
	if t < keyframes[0].Time {
		return keyframes[0].Value
	}

	for i := 0; i < len(keyframes)-1; i++ {
		k0 := keyframes[i]
		k1 := keyframes[i+1]

		if t >= k0.Time && t <= k1.Time {
			duration := k1.Time - k0.Time
			if duration <= 0 {
				return k0.Value
			}
			ratio := (t - k0.Time) / duration

			switch interpolation {
			case "EaseIn":
				ratio = ratio * ratio
			case "EaseOut":
				ratio = 1 - (1-ratio)*(1-ratio)
			case "FastInOutWeak":
				ratio = ratio * ratio * (3 - 2*ratio)
			}
			return k0.Value + ratio*(k1.Value-k0.Value)
		}
	}

	// Beyond the last keyframe the curve holds its final value.
	return keyframes[len(keyframes)-1].Value
}
