package engine

import "time"

// Timer is a pending scheduled callback.
type Timer interface {
	// Stop cancels the callback. It returns false if the callback already ran
	// or was already stopped.
	Stop() bool
}

// Scheduler runs a callback once after a delay.
type Scheduler interface {
	AfterFunc(d time.Duration, f func()) Timer
}

// RealScheduler schedules on the wall clock via time.AfterFunc.
// Callbacks run on their own goroutine; the owner must serialise access to
// the session they touch.
type RealScheduler struct{}

// AfterFunc implements Scheduler.
func (RealScheduler) AfterFunc(d time.Duration, f func()) Timer {
	return time.AfterFunc(d, f)
}

// ManualClock is a deterministic Scheduler driven by explicit Advance calls.
// The terminal game loop advances it once per tick; tests advance it directly.
// Callbacks run synchronously inside Advance.
type ManualClock struct {
	now    time.Duration
	seq    uint64
	timers []*manualTimer
}

type manualTimer struct {
	at      time.Duration
	seq     uint64
	f       func()
	stopped bool
	fired   bool
}

// Stop implements Timer.
func (t *manualTimer) Stop() bool {
	if t.stopped || t.fired {
		return false
	}
	t.stopped = true
	return true
}

// NewManualClock returns a clock at time zero.
func NewManualClock() *ManualClock {
	return &ManualClock{}
}

// AfterFunc implements Scheduler.
func (c *ManualClock) AfterFunc(d time.Duration, f func()) Timer {
	if d < 0 {
		d = 0
	}
	c.seq++
	t := &manualTimer{at: c.now + d, seq: c.seq, f: f}
	c.timers = append(c.timers, t)
	return t
}

// Now returns the elapsed clock time.
func (c *ManualClock) Now() time.Duration {
	return c.now
}

// Pending returns the number of scheduled callbacks that have not run or been stopped.
func (c *ManualClock) Pending() int {
	n := 0
	for _, t := range c.timers {
		if !t.stopped && !t.fired {
			n++
		}
	}
	return n
}

// Advance moves the clock forward by d and runs every due callback in
// deadline order (ties in scheduling order). Returns how many callbacks ran.
func (c *ManualClock) Advance(d time.Duration) int {
	if d > 0 {
		c.now += d
	}

	ran := 0
	for {
		next := c.nextDue()
		if next == nil {
			break
		}
		next.fired = true
		next.f()
		ran++
	}
	c.compact()
	return ran
}

func (c *ManualClock) nextDue() *manualTimer {
	var next *manualTimer
	for _, t := range c.timers {
		if t.stopped || t.fired || t.at > c.now {
			continue
		}
		if next == nil || t.at < next.at || (t.at == next.at && t.seq < next.seq) {
			next = t
		}
	}
	return next
}

func (c *ManualClock) compact() {
	live := c.timers[:0]
	for _, t := range c.timers {
		if !t.stopped && !t.fired {
			live = append(live, t)
		}
	}
	for i := len(live); i < len(c.timers); i++ {
		c.timers[i] = nil
	}
	c.timers = live
}
