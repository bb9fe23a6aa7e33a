package wheel

import (
	"image/color"
	"math"
	"testing"
)

func TestRenderDrawsOneWedgePerName(t *testing.T) {
	s := &recordingSurface{width: 400, height: 300}
	names := []string{"Alice", "Bob", "Cara", "Dan", "Eve"}

	Render(s, Frame{Names: names, Rotation: 0.4, WheelColor: color.Black, TextColor: color.White})

	if len(s.wedges) != len(names) {
		t.Fatalf("expected %d wedges, got %d", len(names), len(s.wedges))
	}
	if s.circles != 0 {
		t.Errorf("expected no placeholder circle, got %d", s.circles)
	}
	if len(s.labels) != len(names) {
		t.Fatalf("expected %d labels, got %d", len(names), len(s.labels))
	}

	_, _, radius := Geometry(400, 300)
	if radius != 130 {
		t.Fatalf("expected radius 130, got %f", radius)
	}
	for i, l := range s.labels {
		if l.Text != names[i] {
			t.Errorf("label %d = %q, want %q", i, l.Text, names[i])
		}
		mid := s.wedges[i].start + (s.wedges[i].end-s.wedges[i].start)/2
		if math.Abs(l.Angle-mid) > epsilon {
			t.Errorf("label %d angle %f does not track wedge mid %f", i, l.Angle, mid)
		}
		if l.Align != AlignEnd || l.X != radius-LabelInset || l.Y != LabelBaseline {
			t.Errorf("label %d placed at (%f,%f) align %d", i, l.X, l.Y, l.Align)
		}
		if l.OriginX != 200 || l.OriginY != 150 {
			t.Errorf("label %d origin (%f,%f), want wheel center", i, l.OriginX, l.OriginY)
		}
	}
}

func TestRenderEmptyWheelShowsPlaceholder(t *testing.T) {
	s := &recordingSurface{width: 200, height: 200}

	Render(s, Frame{WheelColor: color.Black, TextColor: color.White})

	if len(s.wedges) != 0 {
		t.Errorf("expected no wedges, got %d", len(s.wedges))
	}
	if s.circles != 1 {
		t.Errorf("expected one placeholder circle, got %d", s.circles)
	}
	if len(s.labels) != 1 || s.labels[0].Text != PlaceholderText || s.labels[0].Align != AlignCenter {
		t.Errorf("unexpected placeholder labels: %+v", s.labels)
	}
}

func TestGeometryNeverNegative(t *testing.T) {
	if _, _, r := Geometry(10, 10); r != 0 {
		t.Errorf("expected radius clamped to 0, got %f", r)
	}
}
