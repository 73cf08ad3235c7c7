package timelock

import (
	"fmt"
	"math"
	"time"

	"github.com/goto/workforce/domain"
)

// DefaultFallbackDays is the number of calendar days after the event date at which a
// request without an explicit lock date closes.
const DefaultFallbackDays = 60

type Config struct {
	FallbackDays int    `mapstructure:"fallback_days" default:"60"`
	Timezone     string `mapstructure:"timezone" default:"UTC"`
}

// Evaluator decides whether a request has passed the fiscal period close.
// It holds no clock: callers pass now on every evaluation.
type Evaluator struct {
	fallbackDays int
	location     *time.Location
}

func NewEvaluator(cfg Config) (*Evaluator, error) {
	loc := time.UTC
	if cfg.Timezone != "" {
		l, err := time.LoadLocation(cfg.Timezone)
		if err != nil {
			return nil, fmt.Errorf("loading timezone %q: %w", cfg.Timezone, err)
		}
		loc = l
	}

	days := cfg.FallbackDays
	if days <= 0 {
		days = DefaultFallbackDays
	}

	return &Evaluator{fallbackDays: days, location: loc}, nil
}

func (e *Evaluator) Location() *time.Location {
	return e.location
}

// Evaluate prefers the explicit lock date, then falls back to the calendar day of the
// event date plus the fallback days. The request stays editable through the lock date
// and locks at its last second (23:59:59 in the evaluator's timezone).
// A backend-immutable request is always locked.
func (e *Evaluator) Evaluate(r *domain.Request, now time.Time) domain.TimeLock {
	var lock domain.TimeLock

	switch {
	case r.LockDate != nil:
		lockDate := *r.LockDate
		lock.LockDate = &lockDate
		lock.Source = domain.LockSourceExplicit
	case r.EventDate() != nil:
		lockDate := e.calendarDay(*r.EventDate()).AddDate(0, 0, e.fallbackDays)
		lock.LockDate = &lockDate
		lock.Source = domain.LockSourceFallback
	}

	if lock.LockDate != nil {
		lockDay := e.calendarDay(*lock.LockDate)
		lockEnd := lockDay.AddDate(0, 0, 1).Add(-time.Second)
		lock.IsLocked = !now.Before(lockEnd)
		if !lock.IsLocked {
			today := e.calendarDay(now)
			lock.DaysUntilLock = int(math.Round(lockDay.Sub(today).Hours() / 24))
		}
	}

	if r.IsImmutable {
		lock.IsLocked = true
		lock.DaysUntilLock = 0
		if lock.Source == domain.LockSourceNone {
			lock.Source = domain.LockSourceBackend
		}
	}

	return lock
}

func (e *Evaluator) calendarDay(t time.Time) time.Time {
	t = t.In(e.location)
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, e.location)
}
