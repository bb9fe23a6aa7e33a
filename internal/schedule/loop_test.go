package schedule

import (
	"reflect"
	"testing"
	"time"

	"github.com/jonboulle/clockwork"
)

func TestNextFrameRunsOnNextTick(t *testing.T) {
	l := New(clockwork.NewFakeClock())

	var got []int
	l.NextFrame(func() {
		got = append(got, 1)
		l.NextFrame(func() { got = append(got, 2) })
	})

	l.Tick()
	if !reflect.DeepEqual(got, []int{1}) {
		t.Fatalf("after first tick got %v, want [1]", got)
	}
	l.Tick()
	if !reflect.DeepEqual(got, []int{1, 2}) {
		t.Fatalf("after second tick got %v, want [1 2]", got)
	}
}

func TestAfterFiresOnceInDeadlineOrder(t *testing.T) {
	clock := clockwork.NewFakeClock()
	l := New(clock)

	var got []string
	l.After(300*time.Millisecond, func() { got = append(got, "late") })
	l.After(100*time.Millisecond, func() { got = append(got, "early") })

	clock.Advance(50 * time.Millisecond)
	l.Tick()
	if len(got) != 0 {
		t.Fatalf("timers fired early: %v", got)
	}

	clock.Advance(time.Second)
	l.Tick()
	l.Tick()
	if !reflect.DeepEqual(got, []string{"early", "late"}) {
		t.Errorf("got %v, want [early late]", got)
	}
	if _, timers := l.Pending(); timers != 0 {
		t.Errorf("expected no live timers, got %d", timers)
	}
}

func TestCancelledTimerNeverFires(t *testing.T) {
	clock := clockwork.NewFakeClock()
	l := New(clock)

	fired := false
	cancel := l.After(10*time.Millisecond, func() { fired = true })
	cancel()

	clock.Advance(time.Second)
	l.Tick()
	if fired {
		t.Error("cancelled timer fired")
	}
	cancel()
}

func TestEveryRepeatsUntilCancelled(t *testing.T) {
	clock := clockwork.NewFakeClock()
	l := New(clock)

	count := 0
	cancel := l.Every(50*time.Millisecond, func() { count++ })

	for i := 0; i < 4; i++ {
		clock.Advance(50 * time.Millisecond)
		l.Tick()
	}
	if count != 4 {
		t.Fatalf("expected 4 runs, got %d", count)
	}

	// A long stall still yields a single run per tick.
	clock.Advance(time.Second)
	l.Tick()
	if count != 5 {
		t.Fatalf("expected 5 runs after stall, got %d", count)
	}

	cancel()
	clock.Advance(time.Second)
	l.Tick()
	if count != 5 {
		t.Errorf("interval ran after cancel: %d", count)
	}
}

func TestTimerScheduledInsideCallbackWaitsForNextTick(t *testing.T) {
	clock := clockwork.NewFakeClock()
	l := New(clock)

	inner := false
	l.After(0, func() {
		l.After(0, func() { inner = true })
	})

	l.Tick()
	if inner {
		t.Fatal("nested timer ran in the same tick")
	}
	l.Tick()
	if !inner {
		t.Error("nested timer did not run on the following tick")
	}
}
