package internal

import (
	"slices"
	"sync"
)

type Signal struct {
	mu sync.Mutex

	value any

	subs []*Subscription
}

func NewSignal(initial any) *Signal {
	return &Signal{
		value: initial,
	}
}

func (s *Signal) Read() any {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.value
}

// Write stores v and notifies every subscriber, equal values included.
func (s *Signal) Write(v any) {
	subs := s.store(func(any) any { return v })
	s.notify(subs, v)
}

// Update stores fn(current). fn runs with the signal locked.
func (s *Signal) Update(fn func(any) any) {
	var v any
	subs := s.store(func(prev any) any {
		v = fn(prev)
		return v
	})

	s.notify(subs, v)
}

// Subscribe registers fn and calls it right away with the current value.
// The initial value and the registration are taken atomically; a write racing
// from another goroutine may still be delivered before the initial call.
func (s *Signal) Subscribe(fn func(any), opts SubscribeOptions) *Subscription {
	sub, current := s.add(fn, opts)

	Logger().Debug("cell: subscribed", "debounce", opts.Debounce)

	sub.invoke(current)

	return sub
}

// OnChange registers fn for future writes only, without debounce.
func (s *Signal) OnChange(fn func()) *Subscription {
	sub, _ := s.add(func(any) { fn() }, SubscribeOptions{})
	return sub
}

// Subscribers returns the number of registered subscriptions.
func (s *Signal) Subscribers() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	return len(s.subs)
}

// store replaces the value with next(current) and returns the subscribers to notify.
// the lock is released even if next panics.
func (s *Signal) store(next func(any) any) []*Subscription {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.value = next(s.value)
	return slices.Clone(s.subs)
}

// add registers a subscription and returns the value current at registration.
func (s *Signal) add(fn func(any), opts SubscribeOptions) (*Subscription, any) {
	sub := &Subscription{
		signal:   s,
		fn:       fn,
		debounce: opts.Debounce,
		onPanic:  opts.OnPanic,
		active:   true,
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.subs = append(s.subs, sub)
	return sub, s.value
}

func (s *Signal) remove(sub *Subscription) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if i := slices.Index(s.subs, sub); i != -1 {
		s.subs = slices.Delete(s.subs, i, i+1)
	}
}

// the snapshot is taken before notifying, so subscribers may (un)subscribe freely.
// cancelled ones are skipped by deliver, new ones wait for the next write.
func (s *Signal) notify(subs []*Subscription, v any) {
	if len(subs) == 0 {
		return
	}

	GetRuntime().Notify(func() {
		for _, sub := range subs {
			sub.deliver(v)
		}
	})
}
