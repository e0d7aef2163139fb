// Package clock supplies "now" to code that must stay deterministic under test.
package clock

import "time"

// Clock reports the current time.
type Clock interface {
	Now() time.Time
}

type systemClock struct{}

func (systemClock) Now() time.Time { return time.Now() }

// System returns a clock backed by time.Now.
func System() Clock { return systemClock{} }

type fixedClock struct {
	t time.Time
}

func (c fixedClock) Now() time.Time { return c.t }

// Fixed returns a clock that always reports t.
func Fixed(t time.Time) Clock { return fixedClock{t: t} }

// AtDate returns a fixed clock at noon UTC on a YYYY-MM-DD date.
func AtDate(date string) (Clock, error) {
	t, err := time.Parse("2006-01-02", date)
	if err != nil {
		return nil, err
	}
	return Fixed(t.Add(12 * time.Hour)), nil
}
