package schedule

import (
	"time"

	"github.com/jonboulle/clockwork"
)

// minInterval keeps a zero or negative repeat interval from firing every tick forever.
const minInterval = time.Millisecond

type timer struct {
	id       uint64
	deadline time.Time
	interval time.Duration
	fn       func()
	stopped  bool
}

// Loop is a single-threaded stand-in for a browser's requestAnimationFrame,
// setTimeout and setInterval. Nothing runs on its own: the owner calls Tick
// once per rendered frame and every due callback runs on the caller's goroutine.
type Loop struct {
	clock  clockwork.Clock
	frames []func()
	timers []*timer
	nextID uint64
}

// New creates a loop reading time from clock.
// In production, use clockwork.NewRealClock(). In tests, a FakeClock.
func New(clock clockwork.Clock) *Loop {
	if clock == nil {
		clock = clockwork.NewRealClock()
	}
	return &Loop{clock: clock}
}

func (l *Loop) Now() time.Time { return l.clock.Now() }

// NextFrame queues fn for the next Tick.
func (l *Loop) NextFrame(fn func()) {
	l.frames = append(l.frames, fn)
}

// After runs fn once, on the first Tick at or past now+d. The returned
// function cancels it; calling it after the timer fired is harmless.
func (l *Loop) After(d time.Duration, fn func()) func() {
	return l.add(d, 0, fn)
}

// Every runs fn on each Tick at least d after the previous run, until cancelled.
func (l *Loop) Every(d time.Duration, fn func()) func() {
	if d < minInterval {
		d = minInterval
	}
	return l.add(d, d, fn)
}

func (l *Loop) add(d, interval time.Duration, fn func()) func() {
	l.nextID++
	t := &timer{
		id:       l.nextID,
		deadline: l.clock.Now().Add(d),
		interval: interval,
		fn:       fn,
	}
	l.timers = append(l.timers, t)
	return func() { t.stopped = true }
}

// Pending reports queued frame callbacks and live timers.
func (l *Loop) Pending() (frames, timers int) {
	for _, t := range l.timers {
		if !t.stopped {
			timers++
		}
	}
	return len(l.frames), timers
}

// Tick runs the frame callbacks queued before this call, then every timer
// whose deadline has passed, earliest first. Work scheduled from inside a
// callback waits for the next Tick.
func (l *Loop) Tick() {
	frames := l.frames
	l.frames = nil
	for _, fn := range frames {
		fn()
	}

	now := l.clock.Now()
	limit := l.nextID
	fired := make(map[uint64]bool)
	for {
		t := l.earliestDue(now, limit, fired)
		if t == nil {
			break
		}
		fired[t.id] = true
		if t.interval > 0 {
			t.deadline = now.Add(t.interval)
		} else {
			t.stopped = true
		}
		t.fn()
	}
	l.compact()
}

func (l *Loop) earliestDue(now time.Time, limit uint64, fired map[uint64]bool) *timer {
	var best *timer
	for _, t := range l.timers {
		if t.stopped || t.id > limit || fired[t.id] || t.deadline.After(now) {
			continue
		}
		if best == nil || t.deadline.Before(best.deadline) ||
			(t.deadline.Equal(best.deadline) && t.id < best.id) {
			best = t
		}
	}
	return best
}

func (l *Loop) compact() {
	live := l.timers[:0]
	for _, t := range l.timers {
		if !t.stopped {
			live = append(live, t)
		}
	}
	for i := len(live); i < len(l.timers); i++ {
		l.timers[i] = nil
	}
	l.timers = live
}
