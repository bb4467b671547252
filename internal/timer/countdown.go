// Package timer implements the session countdown: a duration armed
// from the timer menu, advanced by an external one-second tick, with a
// debounced reset-or-stop action.
package timer

import "time"

// stopWindow is how soon after starting a reset press means "stop"
// rather than "restart".
const stopWindow = 2 * time.Second

// DefaultMaxSeconds caps a single countdown at 24 hours.
const DefaultMaxSeconds = 86400

// Outcome reports what ResetOrStop decided to do.
type Outcome int

const (
	OutcomeNone Outcome = iota
	OutcomeStopped
	OutcomeRestarted
)

// Countdown tracks the armed duration, the seconds left, and the expiry
// flag the status line blinks on. It holds no scheduling state; the
// host arms and cancels the one-second tick around it.
type Countdown struct {
	duration    int
	remaining   int
	lastStarted time.Time
	expired     bool
	max         int
}

func New(maxSeconds int) *Countdown {
	if maxSeconds <= 0 {
		maxSeconds = DefaultMaxSeconds
	}
	return &Countdown{max: maxSeconds}
}

// Start arms the countdown and reports whether it did. Non-positive
// durations are ignored; anything beyond the cap is clamped. Starting
// clears a previous expiry.
func (c *Countdown) Start(seconds int, now time.Time) bool {
	if seconds <= 0 {
		return false
	}
	if seconds > c.max {
		seconds = c.max
	}
	c.duration = seconds
	c.remaining = seconds
	c.lastStarted = now
	c.expired = false
	return true
}

// Tick advances the countdown one second. It reports true exactly once
// per arming, on the tick that reaches zero; at zero further ticks do
// nothing.
func (c *Countdown) Tick() (expired bool) {
	if c.remaining <= 0 {
		return false
	}
	c.remaining--
	if c.remaining == 0 {
		c.expired = true
		return true
	}
	return false
}

// Stop forces the countdown to zero and clears the expiry flag. The
// armed duration is remembered so a later reset can restart it.
func (c *Countdown) Stop() {
	c.remaining = 0
	c.expired = false
}

// ResetOrStop interprets the reset action: pressed within two seconds
// of starting it stops the countdown, so an accidental re-press right
// after arming does not restart the clock. Otherwise it restarts with
// the remembered duration.
func (c *Countdown) ResetOrStop(now time.Time) Outcome {
	if c.remaining > 0 && now.Sub(c.lastStarted) < stopWindow {
		c.Stop()
		return OutcomeStopped
	}
	if c.duration > 0 {
		c.Start(c.duration, now)
		return OutcomeRestarted
	}
	return OutcomeNone
}

func (c *Countdown) Remaining() int { return c.remaining }

func (c *Countdown) Duration() int { return c.duration }

func (c *Countdown) Running() bool { return c.remaining > 0 }

// Expired reports whether the last armed countdown ran to zero and has
// not been re-armed or stopped since.
func (c *Countdown) Expired() bool { return c.expired }

// Visible reports whether the timer display should show: whenever the
// timer menu is open or time is still on the clock. Derived on every
// render, never stored.
func (c *Countdown) Visible(menuOpen bool) bool {
	return menuOpen || c.remaining > 0
}
