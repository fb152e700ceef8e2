package rotation

import (
	"sync"
	"time"
)

// Rotator owns a State and advances it on a fixed period. Each carousel gets
// its own Rotator; they are independent and share no ordering guarantees.
// The ticker goroutine is started on Start and must be released with Stop
// before the owning service discards its state.
type Rotator struct {
	mu     sync.Mutex
	state  State
	period time.Duration

	done    chan struct{}
	stopped sync.Once
	running bool
}

// NewRotator builds a stopped Rotator paging pageSize items per advance.
func NewRotator(pageSize int, period time.Duration) *Rotator {
	return &Rotator{
		state:  NewState(0, pageSize),
		period: period,
		done:   make(chan struct{}),
	}
}

// Start launches the periodic advance. Calling Start twice is a no-op.
func (r *Rotator) Start() {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.running {
		return
	}
	r.running = true

	go r.loop()
}

func (r *Rotator) loop() {
	ticker := time.NewTicker(r.period)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			r.Advance()
		case <-r.done:
			return
		}
	}
}

// Stop cancels the periodic advance. Safe to call multiple times and on a
// Rotator that was never started.
func (r *Rotator) Stop() {
	r.stopped.Do(func() { close(r.done) })
}

// Advance moves to the next page immediately.
func (r *Rotator) Advance() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.state = r.state.Advance()
}

// GoTo moves to an explicit page, clamping out-of-range targets.
func (r *Rotator) GoTo(target int) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.state = r.state.GoTo(target)
}

// SetCount resizes the underlying collection, re-clamping the current page.
func (r *Rotator) SetCount(count int) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.state = r.state.Resize(count)
}

// State returns a snapshot of the current rotation state.
func (r *Rotator) State() State {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.state
}
