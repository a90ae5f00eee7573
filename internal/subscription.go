package internal

import (
	"errors"
	"sync"
	"time"
)

// Subscription is one registered listener of a signal.
type Subscription struct {
	mu sync.Mutex

	signal *Signal
	fn     func(any)

	// zero means synchronous delivery
	debounce time.Duration

	// receives panics raised by fn, nil lets them propagate
	onPanic func(any)

	active bool

	// pending trailing call, and the generation it was scheduled for.
	// a timer that fires after being superseded checks gen and bails out.
	timer *time.Timer
	gen   uint64
}

// SubscribeOptions configures a subscription.
type SubscribeOptions struct {
	Debounce time.Duration
	OnPanic  func(any)
}

// Active reports whether the subscription still receives notifications.
func (sub *Subscription) Active() bool {
	sub.mu.Lock()
	defer sub.mu.Unlock()

	return sub.active
}

// Pending reports whether a debounced call is waiting for its timer.
func (sub *Subscription) Pending() bool {
	sub.mu.Lock()
	defer sub.mu.Unlock()

	return sub.timer != nil
}

// Cancel removes the subscription from its signal and drops any pending debounced call.
// Calling it more than once is a no-op.
func (sub *Subscription) Cancel() {
	sub.mu.Lock()
	if !sub.active {
		sub.mu.Unlock()
		return
	}
	sub.active = false

	dropped := sub.stopTimer()
	sub.mu.Unlock()

	sub.signal.remove(sub)

	Logger().Debug("cell: unsubscribed", "debounce", sub.debounce, "dropped_pending", dropped)
}

func (sub *Subscription) deliver(v any) {
	if sub.debounce <= 0 {
		if sub.Active() {
			sub.invoke(v)
		}
		return
	}

	sub.schedule(v)
}

// schedule restarts the debounce window with v as the value to deliver.
func (sub *Subscription) schedule(v any) {
	sub.mu.Lock()
	defer sub.mu.Unlock()

	if !sub.active {
		return
	}

	if sub.stopTimer() {
		Logger().Debug("cell: coalesced debounced notification", "debounce", sub.debounce)
	}

	sub.gen++
	gen := sub.gen
	sub.timer = time.AfterFunc(sub.debounce, func() {
		sub.fire(gen, v)
	})
}

func (sub *Subscription) fire(gen uint64, v any) {
	sub.mu.Lock()
	if !sub.active || gen != sub.gen {
		sub.mu.Unlock()
		return
	}
	sub.timer = nil
	sub.mu.Unlock()

	sub.invoke(v)
}

// stopTimer must be called with sub.mu held.
func (sub *Subscription) stopTimer() bool {
	if sub.timer == nil {
		return false
	}

	sub.timer.Stop()
	sub.timer = nil
	sub.gen++

	return true
}

func (sub *Subscription) invoke(v any) {
	if sub.onPanic != nil {
		defer func() {
			if r := recover(); r != nil {
				// runaway recursion is never swallowed
				if err, ok := r.(error); ok && errors.Is(err, ErrCycle) {
					panic(r)
				}

				Logger().Error("cell: subscriber panicked", "panic", r)
				sub.onPanic(r)
			}
		}()
	}

	sub.fn(v)
}
