// Package valuespec parses the value strings accepted in preset files.
// A value string describes either a fixed number, a random range, or a
// keyframe curve:
//
//   - Fixed value: "1500" → min=1500, max=1500, keyframes=nil
//   - Range: "[0.7 0.9]" → min=0.7, max=0.9 (sampled per particle)
//   - Double range: "[0.4 0.6] [0.8 1.2]" → a two-keyframe curve whose
//     start and end values are sampled from the two ranges
//   - Keyframes: "0,2 0.5,4 1,1" → time,value pairs on a normalized
//     0-1 timeline
//   - Interpolation keyword: "Linear 0,0 1,1" → keyframes with the
//     named per-segment interpolation mode
package valuespec

import (
	"math/rand"
	"strconv"
	"strings"

	"github.com/gonewx/sparks/pkg/tween"
)

// interpolation keywords recognized inside keyframe value strings.
var interpolationKeywords = []string{"Linear", "EaseIn", "EaseOut", "FastInOutWeak"}

// Parse parses a value string.
//
// Returns:
//   - min, max: the range bounds (equal for fixed values)
//   - keyframes: the parsed curve, nil unless the string is a curve
//   - interpolation: the per-segment interpolation mode, "" for linear
func Parse(s string) (min, max float64, keyframes []tween.Keyframe, interpolation string) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, 0, nil, ""
	}

	// Double range "[a b] [c d]": random start and end, linear curve.
	if strings.Count(s, "[") == 2 && strings.Count(s, "]") == 2 {
		parts := strings.Split(s, "]")
		startMin, startMax, ok1 := parseRangePart(parts[0])
		endMin, endMax, ok2 := parseRangePart(parts[1])
		if ok1 && ok2 {
			keyframes = []tween.Keyframe{
				{Time: 0, Value: RandomInRange(startMin, startMax)},
				{Time: 1, Value: RandomInRange(endMin, endMax)},
			}
			return 0, 0, keyframes, "Linear"
		}
	}

	// Range "[min max]" or bracketed single value "[value]".
	if strings.HasPrefix(s, "[") && strings.HasSuffix(s, "]") {
		fields := strings.Fields(strings.Trim(s, "[]"))
		switch len(fields) {
		case 2:
			min, _ = strconv.ParseFloat(fields[0], 64)
			max, _ = strconv.ParseFloat(fields[1], 64)
			return min, max, nil, ""
		case 1:
			if v, err := strconv.ParseFloat(fields[0], 64); err == nil {
				return v, v, nil, ""
			}
		}
		return 0, 0, nil, ""
	}

	// Strip an interpolation keyword, if present.
	for _, keyword := range interpolationKeywords {
		if strings.Contains(s, keyword) {
			interpolation = keyword
			s = strings.TrimSpace(strings.ReplaceAll(s, keyword, ""))
			break
		}
	}

	// Keyframes: "time,value" pairs.
	if strings.Contains(s, ",") || interpolation != "" {
		for _, part := range strings.Fields(s) {
			pair := strings.Split(part, ",")
			if len(pair) != 2 {
				continue
			}
			time, err1 := strconv.ParseFloat(pair[0], 64)
			value, err2 := strconv.ParseFloat(pair[1], 64)
			if err1 == nil && err2 == nil {
				keyframes = append(keyframes, tween.Keyframe{Time: time, Value: value})
			}
		}
		if len(keyframes) > 0 {
			return 0, 0, keyframes, interpolation
		}
	}

	// Fixed value.
	if v, err := strconv.ParseFloat(s, 64); err == nil {
		return v, v, nil, ""
	}

	return 0, 0, nil, ""
}

// parseRangePart parses one "[a b" fragment produced by splitting a
// double-range string on "]".
func parseRangePart(s string) (min, max float64, ok bool) {
	s = strings.TrimSpace(s)
	s = strings.TrimPrefix(s, "[")
	fields := strings.Fields(s)
	if len(fields) != 2 {
		return 0, 0, false
	}
	min, err1 := strconv.ParseFloat(fields[0], 64)
	max, err2 := strconv.ParseFloat(fields[1], 64)
	return min, max, err1 == nil && err2 == nil
}

// RandomInRange returns a random float64 in [min, max]. When min >= max
// it returns min, so fixed values pass through unchanged.
func RandomInRange(min, max float64) float64 {
	if min >= max {
		return min
	}
	return min + rand.Float64()*(max-min)
}
