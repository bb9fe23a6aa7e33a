package wheel

import "math"

const fullTurn = 2 * math.Pi

// Slice is the angular span of one name. Angles are in radians, measured
// clockwise from the positive x axis in screen space (y grows downward).
type Slice struct {
	Index int
	Start float64
	End   float64
}

// Mid is the angle labels are rotated to.
func (s Slice) Mid() float64 { return s.Start + (s.End-s.Start)/2 }

// SliceAngle is the span of each of n equal slices, 0 when n is 0.
func SliceAngle(n int) float64 {
	if n <= 0 {
		return 0
	}
	return fullTurn / float64(n)
}

// Slices lays out n slices at the given rotation. The -π/2 term puts the
// start of slice 0 under the top pointer at rotation 0.
func Slices(n int, rotation float64) []Slice {
	if n <= 0 {
		return nil
	}
	angle := SliceAngle(n)
	out := make([]Slice, n)
	for i := range out {
		start := float64(i)*angle + rotation - math.Pi/2
		out[i] = Slice{Index: i, Start: start, End: start + angle}
	}
	return out
}

// normalizeAngle reduces a into [0, 2π) whatever its sign.
func normalizeAngle(a float64) float64 {
	r := math.Mod(a, fullTurn)
	if r < 0 {
		r += fullTurn
	}
	if r >= fullTurn {
		r = 0
	}
	return r
}

// WinnerIndex maps a resting rotation to the slice under the pointer.
// ok is false when there are no slices.
func WinnerIndex(rotation float64, n int) (index int, ok bool) {
	if n <= 0 {
		return 0, false
	}
	normalized := normalizeAngle(rotation - math.Pi/2)
	index = int(math.Floor((fullTurn-normalized)/SliceAngle(n))) % n
	if index < 0 {
		index += n
	}
	return index, true
}

// EaseOutCubic decelerates p in [0,1] toward 1.
func EaseOutCubic(p float64) float64 {
	q := 1 - p
	return 1 - q*q*q
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
