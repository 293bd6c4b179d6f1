package runner

import "time"

// Clock supplies wall-clock time for power-up deadlines.
// Deadlines keep running while ticking is suspended (quiz, shop, tutorial).
type Clock interface {
	Now() time.Time
}

type systemClock struct{}

func (systemClock) Now() time.Time { return time.Now() }

// deadline is an absolute expiry stamp. The zero value is expired.
type deadline struct {
	until time.Time
}

func (d *deadline) start(now time.Time, seconds float64) {
	d.until = now.Add(time.Duration(seconds * float64(time.Second)))
}

func (d *deadline) active(now time.Time) bool {
	return !d.until.IsZero() && now.Before(d.until)
}

func (d *deadline) remaining(now time.Time) time.Duration {
	if !d.active(now) {
		return 0
	}
	return d.until.Sub(now)
}

func (d *deadline) clear() {
	d.until = time.Time{}
}
