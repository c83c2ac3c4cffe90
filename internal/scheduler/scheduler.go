// Package scheduler fires a callback once daily at a fixed local hour. The
// decision of whether anything should happen on a given day belongs to the
// callback, not the scheduler.
package scheduler

import (
	"context"
	"log/slog"
	"time"
)

// Daily runs Fn every day at Hour:00 in Location until the context is done.
type Daily struct {
	Hour     int
	Location *time.Location
	Fn       func(now time.Time)
}

func (d Daily) Run(ctx context.Context) error {
	for {
		now := time.Now().In(d.Location)
		next := NextFire(now, d.Hour)
		slog.Debug("Scheduler sleeping", "until", next)

		timer := time.NewTimer(next.Sub(now))
		select {
		case <-ctx.Done():
			timer.Stop()
			return ctx.Err()
		case fired := <-timer.C:
			d.Fn(fired.In(d.Location))
		}
	}
}

// NextFire returns the next occurrence of hour:00 strictly after now.
func NextFire(now time.Time, hour int) time.Time {
	next := time.Date(now.Year(), now.Month(), now.Day(), hour, 0, 0, 0, now.Location())
	if !next.After(now) {
		next = next.AddDate(0, 0, 1)
	}
	return next
}
