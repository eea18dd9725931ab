// Package timer manages independently running per-item countdowns. Each
// countdown holds only its absolute deadline; remaining time is always
// recomputed from the wall clock, never from accumulated ticks, so the
// displayed value survives scheduling jitter and suspension. Countdown
// state is ephemeral and does not touch persisted item records.
package timer

import (
	"math"
	"sync"
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// DefaultInterval is the tick granularity used when none is configured.
const DefaultInterval = 250 * time.Millisecond

// TickMsg is a tea.Msg published on every tick of a running countdown.
type TickMsg struct {
	ItemID    string
	Remaining int // whole seconds, never negative
}

// ExpiredMsg is a tea.Msg published exactly once when a countdown reaches
// zero. The countdown is already removed when this is delivered.
type ExpiredMsg struct {
	ItemID string
}

// countdown is one active descriptor: the absolute deadline plus its
// cancellation channel.
type countdown struct {
	deadline time.Time
	stop     chan struct{}
}

// Runner owns zero or more concurrently running countdowns, at most one
// per item id. Countdowns run independently; the mutex only guards the
// registry.
type Runner struct {
	interval time.Duration
	events   chan tea.Msg

	mu     sync.Mutex
	active map[string]*countdown
}

// NewRunner creates a Runner ticking at the given interval.
// A non-positive interval falls back to DefaultInterval.
func NewRunner(interval time.Duration) *Runner {
	if interval <= 0 {
		interval = DefaultInterval
	}
	return &Runner{
		interval: interval,
		events:   make(chan tea.Msg, 64),
		active:   make(map[string]*countdown),
	}
}

// Start begins a countdown of duration d for the item, cancelling any
// countdown already running for it.
func (r *Runner) Start(itemID string, d time.Duration) {
	cd := &countdown{
		deadline: time.Now().Add(d),
		stop:     make(chan struct{}),
	}

	r.mu.Lock()
	if old, ok := r.active[itemID]; ok {
		close(old.stop)
	}
	r.active[itemID] = cd
	r.mu.Unlock()

	// Publish the full remaining time immediately so displays update
	// before the first tick.
	r.send(TickMsg{ItemID: itemID, Remaining: remainingSeconds(cd.deadline, time.Now())})

	go r.run(itemID, cd)
}

// Stop cancels the countdown for the item. Idempotent.
func (r *Runner) Stop(itemID string) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if cd, ok := r.active[itemID]; ok {
		close(cd.stop)
		delete(r.active, itemID)
	}
}

// StopAll cancels every active countdown, e.g. when navigating away from
// the timer-bearing view. Persisted durations are untouched.
func (r *Runner) StopAll() {
	r.mu.Lock()
	defer r.mu.Unlock()

	for id, cd := range r.active {
		close(cd.stop)
		delete(r.active, id)
	}
}

// Running reports whether a countdown is active for the item.
func (r *Runner) Running(itemID string) bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	_, ok := r.active[itemID]
	return ok
}

// Remaining returns the whole seconds left on the item's countdown,
// derived from its deadline. The second return is false when no countdown
// is running for the item.
func (r *Runner) Remaining(itemID string) (int, bool) {
	r.mu.Lock()
	cd, ok := r.active[itemID]
	r.mu.Unlock()

	if !ok {
		return 0, false
	}
	return remainingSeconds(cd.deadline, time.Now()), true
}

// ActiveCount returns the number of running countdowns.
func (r *Runner) ActiveCount() int {
	r.mu.Lock()
	defer r.mu.Unlock()

	return len(r.active)
}

// Events exposes the raw event stream. Mostly useful in tests; the
// application consumes events through WaitForNextEvent.
func (r *Runner) Events() <-chan tea.Msg {
	return r.events
}

// WaitForNextEvent returns a tea.Cmd that waits for the next tick or
// expiry. After receiving an event the caller re-arms by calling
// WaitForNextEvent again.
func (r *Runner) WaitForNextEvent() tea.Cmd {
	return func() tea.Msg {
		msg, ok := <-r.events
		if !ok {
			return nil
		}
		return msg
	}
}

// run is the per-countdown goroutine.
func (r *Runner) run(itemID string, cd *countdown) {
	ticker := time.NewTicker(r.interval)
	defer ticker.Stop()

	for {
		select {
		case <-cd.stop:
			return
		case <-ticker.C:
			rem := remainingSeconds(cd.deadline, time.Now())
			if rem <= 0 {
				r.expire(itemID, cd)
				return
			}
			r.send(TickMsg{ItemID: itemID, Remaining: rem})
		}
	}
}

// expire removes the descriptor and publishes the expiry, unless the
// countdown was stopped or restarted in the meantime.
func (r *Runner) expire(itemID string, cd *countdown) {
	r.mu.Lock()
	current, ok := r.active[itemID]
	if ok && current == cd {
		delete(r.active, itemID)
	}
	r.mu.Unlock()

	if ok && current == cd {
		r.send(ExpiredMsg{ItemID: itemID})
	}
}

// send publishes an event without blocking; ticks are droppable since the
// next one recomputes from the deadline anyway.
func (r *Runner) send(msg tea.Msg) {
	select {
	case r.events <- msg:
	default:
	}
}

// remainingSeconds derives the whole seconds left before deadline,
// rounded up and clamped to zero.
func remainingSeconds(deadline, now time.Time) int {
	left := int(math.Ceil(deadline.Sub(now).Seconds()))
	if left < 0 {
		return 0
	}
	return left
}
