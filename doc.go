// Package cell provides observable value cells with explicitly declared derivations.
//
// A [Signal] holds a value that can be read, written and subscribed to.
// A [Computed] holds the result of a derive function and re-evaluates it
// whenever one of the dependencies it was constructed with changes:
//
//	a := cell.NewSignal(2)
//	b := cell.NewSignal(3)
//	sum := cell.NewComputed(func() int { return a.Read() + b.Read() }, a, b)
//
//	a.Write(10) // sum.Read() == 13
//
// Dependencies are never tracked automatically and writes are never batched:
// each write synchronously notifies every subscriber before returning,
// whether or not the value changed.
//
// Subscribers can be debounced with [WithDebounce]. A debounced subscriber
// only receives the last of a burst of writes, on a timer goroutine.
// Unsubscribing cancels a pending debounced call.
//
// Cycles are not prevented. A computed that ends up writing to its own
// source panics with an error wrapping [ErrCycle] once notifications nest
// deeper than [MaxDepth].
package cell
