package cell

import (
	"log/slog"

	"github.com/AnatoleLucet/cell/internal"
)

func as[T any](v any) T {
	if v == nil {
		var zero T
		return zero
	}

	return v.(T)
}

// Reader is the read capability of a signal.
type Reader[T any] interface {
	Read() T
}

// Writer is the write capability of a signal.
type Writer[T any] interface {
	Write(v T)
	Update(fn func(T) T)
}

// Observable is the subscribe capability of a signal.
type Observable[T any] interface {
	Dependency

	Subscribe(fn func(T), opts ...SubscribeOption) (unsubscribe func())
}

// Dependency is anything a computed can re-derive on.
// Both *Signal and *Computed are dependencies.
type Dependency interface {
	// OnChange registers fn to run after every future change, without initial call nor debounce.
	OnChange(fn func()) (unsubscribe func())
}

type Signal[T any] struct {
	signal *internal.Signal
}

// NewSignal creates a read/write signal holding initial.
func NewSignal[T any](initial T) *Signal[T] {
	return &Signal[T]{
		internal.NewSignal(initial),
	}
}

// Read the current value of the signal.
func (s *Signal[T]) Read() T {
	return as[T](s.signal.Read())
}

// Write a new value to the signal and notify its subscribers,
// even if the value did not change.
func (s *Signal[T]) Write(v T) {
	s.signal.Write(v)
}

// Update writes fn(current) to the signal.
// fn runs while the signal is locked and must not use the signal itself.
func (s *Signal[T]) Update(fn func(T) T) {
	s.signal.Update(func(v any) any {
		return fn(as[T](v))
	})
}

// Subscribe calls fn with the current value, then with every new value.
// The returned function unsubscribes; calling it again is a no-op.
func (s *Signal[T]) Subscribe(fn func(T), opts ...SubscribeOption) func() {
	return subscribe(s.signal, fn, opts)
}

func (s *Signal[T]) OnChange(fn func()) func() {
	return s.signal.OnChange(fn).Cancel
}

// Capabilities splits the signal into its read, write and subscribe halves.
// None of them can be converted back into the others.
func (s *Signal[T]) Capabilities() (Reader[T], Writer[T], Observable[T]) {
	return reader[T]{s}, writer[T]{s}, observable[T]{s}
}

type Computed[T any] struct {
	computed *internal.Computed
}

// NewComputed creates a read-only signal holding derive(),
// re-derived each time one of deps changes.
// Dependencies are fixed, derive is never tracked automatically.
func NewComputed[T any](derive func() T, deps ...Dependency) *Computed[T] {
	hooks := make([]internal.Dependency, 0, len(deps))
	for _, dep := range deps {
		hooks = append(hooks, dep.OnChange)
	}

	return &Computed[T]{
		internal.NewComputed(func() any { return derive() }, hooks),
	}
}

// Read the last derived value.
func (c *Computed[T]) Read() T {
	return as[T](c.computed.Read())
}

// Subscribe calls fn with the current value, then with every re-derived value.
func (c *Computed[T]) Subscribe(fn func(T), opts ...SubscribeOption) func() {
	return subscribe(c.computed.Signal, fn, opts)
}

func (c *Computed[T]) OnChange(fn func()) func() {
	return c.computed.OnChange(fn).Cancel
}

// Dispose detaches the computed from its dependencies, freezing its value.
// Its own subscribers stay registered but will not hear from it again.
func (c *Computed[T]) Dispose() {
	c.computed.Dispose()
}

func subscribe[T any](s *internal.Signal, fn func(T), opts []SubscribeOption) func() {
	o := applyOptions(opts)

	sub := s.Subscribe(func(v any) { fn(as[T](v)) }, internal.SubscribeOptions{
		Debounce: o.debounce,
		OnPanic:  o.onPanic,
	})

	return sub.Cancel
}

type reader[T any] struct{ s *Signal[T] }

func (r reader[T]) Read() T { return r.s.Read() }

type writer[T any] struct{ s *Signal[T] }

func (w writer[T]) Write(v T)           { w.s.Write(v) }
func (w writer[T]) Update(fn func(T) T) { w.s.Update(fn) }

type observable[T any] struct{ s *Signal[T] }

func (o observable[T]) Subscribe(fn func(T), opts ...SubscribeOption) func() {
	return o.s.Subscribe(fn, opts...)
}

func (o observable[T]) OnChange(fn func()) func() { return o.s.OnChange(fn) }

// SetLogger overrides the logger used for debug traces and recovered panics.
//
// If not set, slog.Default() is used.
func SetLogger(l *slog.Logger) {
	internal.SetLogger(l)
}
