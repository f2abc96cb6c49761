package forms

import (
	"time"

	"github.com/Its-donkey/techsolutions-site/internal/ui/eventloop"
)

// Debouncer delays a callback until calls stop arriving for the wait period.
type Debouncer struct {
	sched   eventloop.Scheduler
	wait    time.Duration
	pending eventloop.Timer
}

// NewDebouncer builds a debouncer on the given scheduler.
func NewDebouncer(sched eventloop.Scheduler, wait time.Duration) *Debouncer {
	return &Debouncer{sched: sched, wait: wait}
}

// Trigger replaces any pending call with fn.
func (d *Debouncer) Trigger(fn func()) {
	d.Cancel()
	var timer eventloop.Timer
	timer = d.sched.AfterFunc(d.wait, func() {
		if d.pending == timer {
			d.pending = nil
		}
		fn()
	})
	d.pending = timer
}

// Cancel drops the pending call, if any.
func (d *Debouncer) Cancel() {
	if d.pending != nil {
		d.pending.Stop()
		d.pending = nil
	}
}

// Pending reports whether a call is waiting.
func (d *Debouncer) Pending() bool {
	return d.pending != nil
}
