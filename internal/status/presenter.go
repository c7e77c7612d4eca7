package status

import (
	"sync"
	"time"
)

// Timer is the subset of *time.Timer the presenter needs.
type Timer interface {
	Stop() bool
}

// Clock schedules expiry callbacks. Tests substitute a manual clock.
type Clock interface {
	Now() time.Time
	AfterFunc(d time.Duration, f func()) Timer
}

type realClock struct{}

func (realClock) Now() time.Time { return time.Now() }

func (realClock) AfterFunc(d time.Duration, f func()) Timer { return time.AfterFunc(d, f) }

// Presenter is the live status machine owned by one form component.
//
// A second Begin while a submission is in flight is ignored. An outcome
// reverts to Idle after Kind.Timeout unless a new Begin supersedes it first.
// Close cancels the pending expiry; nothing is published after Close.
type Presenter struct {
	mu        sync.Mutex
	kind      Kind
	clock     Clock
	state     State
	gen       uint64
	timer     Timer
	closed    bool
	observers []func(State)
}

// Option configures a Presenter.
type Option func(*Presenter)

// WithClock overrides the wall clock.
func WithClock(c Clock) Option {
	return func(p *Presenter) { p.clock = c }
}

// NewPresenter returns an idle presenter for the given form kind.
func NewPresenter(kind Kind, opts ...Option) *Presenter {
	p := &Presenter{kind: kind, clock: realClock{}}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Kind returns the form kind the presenter was built for.
func (p *Presenter) Kind() Kind { return p.kind }

// State returns the current state.
func (p *Presenter) State() State {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.state
}

// Message returns the text for the current state.
func (p *Presenter) Message() string { return Message(p.kind, p.State()) }

// OnChange registers fn to be called after every transition. Callbacks run
// outside the presenter's lock, possibly on a timer goroutine.
func (p *Presenter) OnChange(fn func(State)) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.observers = append(p.observers, fn)
}

// Begin moves to Submitting. It returns false, changing nothing, when a
// submission is already in flight or the presenter is closed.
func (p *Presenter) Begin() bool {
	p.mu.Lock()
	if p.closed || p.state == Submitting {
		p.mu.Unlock()
		return false
	}
	p.stopTimerLocked()
	p.gen++
	obs := p.setLocked(Submitting)
	p.mu.Unlock()
	notify(obs, Submitting)
	return true
}

// Finish records the outcome of the in-flight submission and arms the expiry
// timer. It is a no-op unless the presenter is Submitting.
func (p *Presenter) Finish(err error) State {
	next := Classify(err)

	p.mu.Lock()
	if p.closed || p.state != Submitting {
		s := p.state
		p.mu.Unlock()
		return s
	}
	p.gen++
	gen := p.gen
	obs := p.setLocked(next)
	p.timer = p.clock.AfterFunc(p.kind.Timeout(), func() { p.expire(gen) })
	p.mu.Unlock()

	notify(obs, next)
	return next
}

// Close cancels any pending expiry. The presenter ignores all later calls.
func (p *Presenter) Close() {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.closed = true
	p.stopTimerLocked()
	p.observers = nil
}

func (p *Presenter) expire(gen uint64) {
	p.mu.Lock()
	if p.closed || gen != p.gen || !p.state.Terminal() {
		p.mu.Unlock()
		return
	}
	p.timer = nil
	obs := p.setLocked(Idle)
	p.mu.Unlock()
	notify(obs, Idle)
}

func (p *Presenter) setLocked(s State) []func(State) {
	p.state = s
	obs := make([]func(State), len(p.observers))
	copy(obs, p.observers)
	return obs
}

func (p *Presenter) stopTimerLocked() {
	if p.timer != nil {
		p.timer.Stop()
		p.timer = nil
	}
}

func notify(obs []func(State), s State) {
	for _, fn := range obs {
		fn(s)
	}
}
