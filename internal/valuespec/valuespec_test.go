package valuespec

import (
	"testing"
)

// TestParse_FixedValue verifies plain numbers come back as a degenerate
// range with no keyframes.
func TestParse_FixedValue(t *testing.T) {
	cases := []struct {
		input string
		want  float64
	}{
		{"1500", 1500},
		{"0.75", 0.75},
		{"-12.5", -12.5},
		{"  3 ", 3},
	}

	for _, tc := range cases {
		min, max, kfs, interp := Parse(tc.input)
		if min != tc.want || max != tc.want {
			t.Errorf("Parse(%q): got min=%v max=%v, want both %v", tc.input, min, max, tc.want)
		}
		if kfs != nil || interp != "" {
			t.Errorf("Parse(%q): unexpected keyframes %v / interp %q", tc.input, kfs, interp)
		}
	}
}

func TestParse_Range(t *testing.T) {
	min, max, kfs, _ := Parse("[0.7 0.9]")
	if min != 0.7 || max != 0.9 {
		t.Errorf("got min=%v max=%v, want 0.7 and 0.9", min, max)
	}
	if kfs != nil {
		t.Errorf("unexpected keyframes: %v", kfs)
	}
}

func TestParse_BracketedSingleValue(t *testing.T) {
	min, max, _, _ := Parse("[5]")
	if min != 5 || max != 5 {
		t.Errorf("got min=%v max=%v, want both 5", min, max)
	}
}

func TestParse_Keyframes(t *testing.T) {
	_, _, kfs, interp := Parse("0,2 0.5,4 1,1")
	if len(kfs) != 3 {
		t.Fatalf("keyframe count: got %d, want 3", len(kfs))
	}
	if kfs[0].Time != 0 || kfs[0].Value != 2 {
		t.Errorf("first keyframe: got %+v", kfs[0])
	}
	if kfs[2].Time != 1 || kfs[2].Value != 1 {
		t.Errorf("last keyframe: got %+v", kfs[2])
	}
	if interp != "" {
		t.Errorf("interpolation: got %q, want empty", interp)
	}
}

func TestParse_KeyframesWithInterpolation(t *testing.T) {
	_, _, kfs, interp := Parse("EaseOut 0,0 1,1")
	if interp != "EaseOut" {
		t.Errorf("interpolation: got %q, want EaseOut", interp)
	}
	if len(kfs) != 2 {
		t.Errorf("keyframe count: got %d, want 2", len(kfs))
	}
}

// TestParse_DoubleRange verifies the "[a b] [c d]" form produces a
// two-keyframe curve whose values fall inside the two ranges.
func TestParse_DoubleRange(t *testing.T) {
	for i := 0; i < 20; i++ {
		_, _, kfs, interp := Parse("[0.4 0.6] [0.8 1.2]")
		if len(kfs) != 2 {
			t.Fatalf("keyframe count: got %d, want 2", len(kfs))
		}
		if interp != "Linear" {
			t.Fatalf("interpolation: got %q, want Linear", interp)
		}
		if kfs[0].Value < 0.4 || kfs[0].Value > 0.6 {
			t.Fatalf("start value out of range: %v", kfs[0].Value)
		}
		if kfs[1].Value < 0.8 || kfs[1].Value > 1.2 {
			t.Fatalf("end value out of range: %v", kfs[1].Value)
		}
	}
}

func TestParse_EmptyAndGarbage(t *testing.T) {
	for _, input := range []string{"", "   ", "banana", "[oops]"} {
		min, max, kfs, interp := Parse(input)
		if min != 0 || max != 0 || kfs != nil || interp != "" {
			t.Errorf("Parse(%q): got (%v, %v, %v, %q), want zero values",
				input, min, max, kfs, interp)
		}
	}
}

// TestRandomInRange verifies sampled values stay inside the range and
// that a degenerate range passes through.
func TestRandomInRange(t *testing.T) {
	for i := 0; i < 100; i++ {
		v := RandomInRange(2, 5)
		if v < 2 || v > 5 {
			t.Fatalf("RandomInRange(2, 5) = %v, out of range", v)
		}
	}
	if v := RandomInRange(3, 3); v != 3 {
		t.Errorf("RandomInRange(3, 3) = %v, want 3", v)
	}
	if v := RandomInRange(5, 2); v != 5 {
		t.Errorf("RandomInRange(5, 2) = %v, want 5 (min wins on inverted range)", v)
	}
}
