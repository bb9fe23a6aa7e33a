package wheel

import (
	"math"
	"testing"
)

const epsilon = 1e-9

func TestSlicesCoverFullTurn(t *testing.T) {
	for _, n := range []int{1, 2, 3, 7, 12, 100} {
		slices := Slices(n, 1.234)
		if len(slices) != n {
			t.Fatalf("n=%d: got %d slices", n, len(slices))
		}
		want := 2 * math.Pi / float64(n)
		total := 0.0
		for i, s := range slices {
			if span := s.End - s.Start; math.Abs(span-want) > epsilon {
				t.Errorf("n=%d slice %d spans %f, want %f", n, i, span, want)
			}
			if i > 0 && math.Abs(s.Start-slices[i-1].End) > epsilon {
				t.Errorf("n=%d gap between slice %d and %d", n, i-1, i)
			}
			total += s.End - s.Start
		}
		if math.Abs(total-2*math.Pi) > epsilon {
			t.Errorf("n=%d: slices sum to %f", n, total)
		}
	}
}

func TestSlicesStartAtPointer(t *testing.T) {
	slices := Slices(4, 0)
	if math.Abs(slices[0].Start+math.Pi/2) > epsilon {
		t.Errorf("slice 0 starts at %f, want -π/2", slices[0].Start)
	}
	if Slices(0, 0) != nil {
		t.Error("expected no slices for an empty wheel")
	}
	if SliceAngle(0) != 0 {
		t.Error("expected zero slice angle for an empty wheel")
	}
}

func TestWinnerIndex(t *testing.T) {
	tests := []struct {
		name     string
		rotation float64
		n        int
		want     int
	}{
		{name: "rest position seven names", rotation: 0, n: 7, want: 1},
		{name: "quarter turn lands on boundary", rotation: math.Pi / 2, n: 4, want: 0},
		{name: "just past quarter turn", rotation: math.Pi/2 + 0.1, n: 4, want: 3},
		{name: "negative rotation", rotation: -math.Pi / 2, n: 4, want: 2},
		{name: "many full turns", rotation: 10 * math.Pi, n: 3, want: 0},
		{name: "single name", rotation: 3.3, n: 1, want: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := WinnerIndex(tt.rotation, tt.n)
			if !ok {
				t.Fatal("expected ok")
			}
			if got != tt.want {
				t.Errorf("WinnerIndex(%f, %d) = %d, want %d", tt.rotation, tt.n, got, tt.want)
			}
		})
	}
}

func TestWinnerIndexEmptyWheel(t *testing.T) {
	if _, ok := WinnerIndex(1, 0); ok {
		t.Error("expected no winner for zero slices")
	}
}

func TestWinnerIndexAlwaysInRange(t *testing.T) {
	for i := 0; i < 2000; i++ {
		rotation := float64(i)*0.0137 - 5
		for _, n := range []int{1, 2, 5, 9} {
			got, _ := WinnerIndex(rotation, n)
			if got < 0 || got >= n {
				t.Fatalf("WinnerIndex(%f, %d) = %d out of range", rotation, n, got)
			}
		}
	}
}

func TestNormalizeAngle(t *testing.T) {
	if got := normalizeAngle(-math.Pi / 2); math.Abs(got-3*math.Pi/2) > epsilon {
		t.Errorf("normalizeAngle(-π/2) = %f, want 3π/2", got)
	}
	if got := normalizeAngle(4 * math.Pi); got != 0 {
		t.Errorf("normalizeAngle(4π) = %f, want 0", got)
	}
}

func TestEaseOutCubic(t *testing.T) {
	if EaseOutCubic(0) != 0 || EaseOutCubic(1) != 1 {
		t.Fatal("ease-out must map 0→0 and 1→1")
	}
	if got := EaseOutCubic(0.5); math.Abs(got-0.875) > epsilon {
		t.Errorf("EaseOutCubic(0.5) = %f, want 0.875", got)
	}
	prev := 0.0
	for i := 1; i <= 100; i++ {
		v := EaseOutCubic(float64(i) / 100)
		if v < prev {
			t.Fatalf("ease-out decreased at step %d", i)
		}
		prev = v
	}
}
