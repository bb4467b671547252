package timer

import (
	"testing"
	"time"
)

func TestStartAndRunToExpiry(t *testing.T) {
	t.Parallel()

	now := time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)
	c := New(0)
	if !c.Start(30, now) {
		t.Fatalf("Start(30) rejected")
	}
	if c.Remaining() != 30 {
		t.Fatalf("remaining=%d want 30", c.Remaining())
	}

	expiries := 0
	for i := 0; i < 30; i++ {
		if c.Tick() {
			expiries++
		}
	}
	if c.Remaining() != 0 {
		t.Fatalf("remaining=%d want 0", c.Remaining())
	}
	if expiries != 1 {
		t.Fatalf("expired fired %d times, want exactly once", expiries)
	}
	if !c.Expired() {
		t.Fatalf("expired flag not set")
	}

	// Further ticks at zero stay quiet.
	if c.Tick() {
		t.Fatalf("tick past zero fired expiry again")
	}
	if c.Remaining() != 0 {
		t.Fatalf("remaining went negative")
	}
}

func TestStartRejectsNonPositive(t *testing.T) {
	t.Parallel()

	now := time.Now()
	c := New(0)
	if c.Start(0, now) {
		t.Fatalf("Start(0) accepted")
	}
	if c.Start(-1, now) {
		t.Fatalf("Start(-1) accepted")
	}
	if c.Running() {
		t.Fatalf("countdown running after rejected starts")
	}
}

func TestStartClampsToMax(t *testing.T) {
	t.Parallel()

	now := time.Now()
	c := New(0)
	c.Start(100000, now)
	if c.Remaining() != DefaultMaxSeconds {
		t.Fatalf("remaining=%d want clamp to %d", c.Remaining(), DefaultMaxSeconds)
	}

	c = New(60)
	c.Start(90, now)
	if c.Remaining() != 60 {
		t.Fatalf("remaining=%d want custom clamp 60", c.Remaining())
	}
}

func TestResetOrStopWithinWindowStops(t *testing.T) {
	t.Parallel()

	start := time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)
	c := New(0)
	c.Start(30, start)

	if got := c.ResetOrStop(start.Add(1 * time.Second)); got != OutcomeStopped {
		t.Fatalf("outcome=%v want OutcomeStopped", got)
	}
	if c.Remaining() != 0 {
		t.Fatalf("remaining=%d want 0 after stop", c.Remaining())
	}
	if c.Expired() {
		t.Fatalf("stop left expiry flag set")
	}
}

func TestResetOrStopAfterWindowRestarts(t *testing.T) {
	t.Parallel()

	start := time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)
	c := New(0)
	c.Start(30, start)
	for i := 0; i < 10; i++ {
		c.Tick()
	}
	if c.Remaining() != 20 {
		t.Fatalf("remaining=%d want 20", c.Remaining())
	}

	if got := c.ResetOrStop(start.Add(2 * time.Second)); got != OutcomeRestarted {
		t.Fatalf("outcome=%v want OutcomeRestarted", got)
	}
	if c.Remaining() != 30 {
		t.Fatalf("remaining=%d want 30 after restart", c.Remaining())
	}
}

func TestResetOrStopRestartsAfterExpiry(t *testing.T) {
	t.Parallel()

	start := time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)
	c := New(0)
	c.Start(2, start)
	c.Tick()
	c.Tick()
	if !c.Expired() {
		t.Fatalf("countdown should be expired")
	}

	if got := c.ResetOrStop(start.Add(time.Minute)); got != OutcomeRestarted {
		t.Fatalf("outcome=%v want OutcomeRestarted", got)
	}
	if c.Expired() {
		t.Fatalf("restart left expiry flag set")
	}
	if c.Remaining() != 2 {
		t.Fatalf("remaining=%d want 2", c.Remaining())
	}
}

func TestResetOrStopWithNothingArmed(t *testing.T) {
	t.Parallel()

	c := New(0)
	if got := c.ResetOrStop(time.Now()); got != OutcomeNone {
		t.Fatalf("outcome=%v want OutcomeNone", got)
	}
}

func TestVisible(t *testing.T) {
	t.Parallel()

	c := New(0)
	if c.Visible(false) {
		t.Fatalf("idle countdown visible without menu")
	}
	if !c.Visible(true) {
		t.Fatalf("countdown hidden while menu open")
	}
	c.Start(5, time.Now())
	if !c.Visible(false) {
		t.Fatalf("running countdown hidden")
	}
	c.Stop()
	if c.Visible(false) {
		t.Fatalf("stopped countdown still visible")
	}
}
