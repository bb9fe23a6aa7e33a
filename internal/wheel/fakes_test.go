package wheel

import (
	"fmt"
	"image/color"
	"math/rand"
	"time"

	"github.com/iburimskiy/wheel-picker/internal/schedule"
	"github.com/jonboulle/clockwork"
)

// zeroSource makes every random draw return its minimum.
type zeroSource struct{}

func (zeroSource) Int63() int64 { return 0 }
func (zeroSource) Seed(int64)   {}

type wedge struct {
	start, end float64
}

type recordingSurface struct {
	width, height float64
	wedges        []wedge
	circles       int
	labels        []Label
}

func (s *recordingSurface) Size() (float64, float64) { return s.width, s.height }

func (s *recordingSurface) FillWedge(cx, cy, radius, start, end float64, fill color.Color) {
	s.wedges = append(s.wedges, wedge{start: start, end: end})
}

func (s *recordingSurface) FillCircle(cx, cy, radius float64, fill color.Color) {
	s.circles++
}

func (s *recordingSurface) DrawLabel(l Label) { s.labels = append(s.labels, l) }

type fakeView struct {
	calls        []string
	redraws      int
	spinEnabled  bool
	scrollLocked bool
	celebration  string
	announcement string
}

func (v *fakeView) Redraw() { v.redraws++ }

func (v *fakeView) SetSpinEnabled(enabled bool) {
	v.spinEnabled = enabled
	v.calls = append(v.calls, fmt.Sprintf("spin-enabled:%t", enabled))
}

func (v *fakeView) ShowCelebration(winner string) {
	v.celebration = winner
	v.calls = append(v.calls, "show-celebration:"+winner)
}

func (v *fakeView) HideCelebration() {
	v.celebration = ""
	v.calls = append(v.calls, "hide-celebration")
}

func (v *fakeView) ShowAnnouncement(winner string) {
	v.announcement = winner
	v.calls = append(v.calls, "show-announcement:"+winner)
}

func (v *fakeView) HideAnnouncement() {
	v.announcement = ""
	v.calls = append(v.calls, "hide-announcement")
}

func (v *fakeView) SetScrollLocked(locked bool) {
	v.scrollLocked = locked
	v.calls = append(v.calls, fmt.Sprintf("scroll-locked:%t", locked))
}

func (v *fakeView) count(call string) int {
	n := 0
	for _, c := range v.calls {
		if c == call {
			n++
		}
	}
	return n
}

type fakeSounds struct {
	events []string
}

func (s *fakeSounds) Play(c Cue) { s.events = append(s.events, "play:"+c.String()) }
func (s *fakeSounds) Stop(c Cue) { s.events = append(s.events, "stop:"+c.String()) }

type harness struct {
	clock  *clockwork.FakeClock
	loop   *schedule.Loop
	view   *fakeView
	sounds *fakeSounds
	picker *Picker
}

func newHarness(opts Options) *harness {
	clock := clockwork.NewFakeClock()
	h := &harness{
		clock:  clock,
		loop:   schedule.New(clock),
		view:   &fakeView{},
		sounds: &fakeSounds{},
	}
	if opts.Rand == nil {
		opts.Rand = rand.New(zeroSource{})
	}
	h.picker = NewPicker(opts, h.loop, h.sounds, h.view)
	return h
}

// advance moves the clock in frame-sized steps, ticking the loop each time.
func (h *harness) advance(d time.Duration) {
	const frame = 16 * time.Millisecond
	for d > 0 {
		step := min(frame, d)
		h.clock.Advance(step)
		h.loop.Tick()
		d -= step
	}
}
