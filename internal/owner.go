package internal

import "sync"

// Owner collects the cleanups of a node and runs them once on Dispose.
type Owner struct {
	mu sync.Mutex

	// cleanup functions to be called when the owner is disposed
	cleanups []func()

	disposed bool
}

func NewOwner() *Owner {
	return &Owner{
		cleanups: make([]func(), 0),
	}
}

// OnCleanup registers fn to run on Dispose.
// If the owner is already disposed, fn runs immediately.
func (o *Owner) OnCleanup(fn func()) {
	o.mu.Lock()
	if o.disposed {
		o.mu.Unlock()
		fn()
		return
	}
	o.cleanups = append(o.cleanups, fn)
	o.mu.Unlock()
}

func (o *Owner) Disposed() bool {
	o.mu.Lock()
	defer o.mu.Unlock()

	return o.disposed
}

// Dispose runs the cleanups in reverse registration order. Subsequent calls are no-ops.
func (o *Owner) Dispose() {
	o.mu.Lock()
	if o.disposed {
		o.mu.Unlock()
		return
	}
	o.disposed = true

	cleanups := o.cleanups
	o.cleanups = nil
	o.mu.Unlock()

	for i := len(cleanups) - 1; i >= 0; i-- {
		cleanups[i]()
	}
}
