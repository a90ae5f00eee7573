package cell

import "time"

// SubscribeOption configures a subscription.
type SubscribeOption func(*subscribeOptions)

type subscribeOptions struct {
	// trailing-edge debounce window, zero delivers synchronously
	debounce time.Duration

	onPanic func(any)
}

// WithDebounce coalesces notifications arriving within d of each other.
// Only the last value is delivered, d after the last write, on a timer goroutine.
// The initial call made by Subscribe is never debounced.
//
// Example:
//
//	query.Subscribe(search, cell.WithDebounce(300*time.Millisecond))
func WithDebounce(d time.Duration) SubscribeOption {
	return func(o *subscribeOptions) {
		o.debounce = d
	}
}

// OnPanic hands panics raised by the subscriber to fn instead of propagating them.
// If not set, the panic propagates as usual.
// Panics wrapping ErrCycle always propagate, even through a subscriber with OnPanic.
func OnPanic(fn func(any)) SubscribeOption {
	return func(o *subscribeOptions) {
		o.onPanic = fn
	}
}

func applyOptions(opts []SubscribeOption) subscribeOptions {
	var options subscribeOptions
	for _, opt := range opts {
		opt(&options)
	}
	return options
}
