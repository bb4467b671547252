package quotes

import "time"

// Limiter admits a bounded number of requests per trailing window.
// Only admitted requests are recorded, so a denied burst cannot keep
// the window saturated after the original admissions age out.
type Limiter struct {
	limit   int
	window  time.Duration
	history []time.Time
}

func NewLimiter(limit int, window time.Duration) *Limiter {
	if limit <= 0 {
		limit = 3
	}
	if window <= 0 {
		window = 15 * time.Minute
	}
	return &Limiter{limit: limit, window: window}
}

// Allowed prunes aged-out admissions and reports whether another
// request fits the window.
func (l *Limiter) Allowed(now time.Time) bool {
	l.prune(now)
	return len(l.history) < l.limit
}

// Record notes an admitted request.
func (l *Limiter) Record(now time.Time) {
	l.history = append(l.history, now)
}

func (l *Limiter) prune(now time.Time) {
	kept := l.history[:0]
	for _, t := range l.history {
		if now.Sub(t) < l.window {
			kept = append(kept, t)
		}
	}
	l.history = kept
}
