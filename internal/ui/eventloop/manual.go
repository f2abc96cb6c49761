package eventloop

import (
	"sort"
	"sync"
	"time"
)

// Manual is a Scheduler driven by a virtual clock. Timers fire only from
// Advance, and posted tasks run only from RunNext or RunPosted, both on the
// calling goroutine. It backs controller tests that need exact timing.
type Manual struct {
	mu     sync.Mutex
	now    time.Duration
	seq    uint64
	timers []*manualTimer
	posted chan func()
}

type manualTimer struct {
	m       *Manual
	at      time.Duration
	every   time.Duration
	seq     uint64
	fn      func()
	stopped bool
}

// NewManual returns a Manual scheduler at virtual time zero.
func NewManual() *Manual {
	return &Manual{posted: make(chan func(), 256)}
}

// Post queues fn for RunNext/RunPosted. Safe to call from any goroutine.
func (m *Manual) Post(fn func()) {
	if fn == nil {
		return
	}
	m.posted <- fn
}

// AfterFunc schedules fn once at now+d.
func (m *Manual) AfterFunc(d time.Duration, fn func()) Timer {
	return m.schedule(d, 0, fn)
}

// Every schedules fn at now+d and then every d.
func (m *Manual) Every(d time.Duration, fn func()) Timer {
	if d <= 0 {
		d = time.Millisecond
	}
	return m.schedule(d, d, fn)
}

func (m *Manual) schedule(d, every time.Duration, fn func()) Timer {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.seq++
	t := &manualTimer{m: m, at: m.now + d, every: every, seq: m.seq, fn: fn}
	m.timers = append(m.timers, t)
	return t
}

// Now reports the virtual time elapsed since creation.
func (m *Manual) Now() time.Duration {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.now
}

// Pending counts timers that have not fired (one-shot) or been stopped.
func (m *Manual) Pending() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.timers)
}

// Advance moves the clock forward by d, firing every due timer in deadline
// order. Callbacks may schedule or stop timers.
func (m *Manual) Advance(d time.Duration) {
	m.mu.Lock()
	target := m.now + d
	m.mu.Unlock()

	for {
		m.mu.Lock()
		next := m.nextDueLocked(target)
		if next == nil {
			m.now = target
			m.mu.Unlock()
			return
		}
		m.now = next.at
		if next.every > 0 {
			m.seq++
			next.at += next.every
			next.seq = m.seq
		} else {
			next.stopped = true
			m.removeLocked(next)
		}
		fn := next.fn
		m.mu.Unlock()

		fn()
	}
}

func (m *Manual) nextDueLocked(target time.Duration) *manualTimer {
	if len(m.timers) == 0 {
		return nil
	}
	sort.SliceStable(m.timers, func(i, j int) bool {
		if m.timers[i].at == m.timers[j].at {
			return m.timers[i].seq < m.timers[j].seq
		}
		return m.timers[i].at < m.timers[j].at
	})
	if first := m.timers[0]; first.at <= target {
		return first
	}
	return nil
}

func (m *Manual) removeLocked(t *manualTimer) {
	for i, candidate := range m.timers {
		if candidate == t {
			m.timers = append(m.timers[:i], m.timers[i+1:]...)
			return
		}
	}
}

// RunPosted runs every task queued so far and reports how many ran.
func (m *Manual) RunPosted() int {
	ran := 0
	for {
		select {
		case fn := <-m.posted:
			fn()
			ran++
		default:
			return ran
		}
	}
}

// RunNext waits up to timeout for one posted task and runs it.
func (m *Manual) RunNext(timeout time.Duration) bool {
	select {
	case fn := <-m.posted:
		fn()
		return true
	case <-time.After(timeout):
		return false
	}
}

func (t *manualTimer) Stop() bool {
	t.m.mu.Lock()
	defer t.m.mu.Unlock()
	if t.stopped {
		return false
	}
	t.stopped = true
	t.m.removeLocked(t)
	return true
}
