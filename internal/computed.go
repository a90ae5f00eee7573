package internal

// Dependency is the change hook of a node a computed derives from.
// It returns the function that removes the hook.
type Dependency func(fn func()) (unsubscribe func())

type Computed struct {
	*Owner
	*Signal

	// called whenever a dependency changes
	derive func() any
}

func NewComputed(derive func() any, deps []Dependency) *Computed {
	c := &Computed{
		Owner:  NewOwner(),
		Signal: NewSignal(derive()),

		derive: derive,
	}

	for _, dep := range deps {
		c.OnCleanup(dep(c.recompute))
	}

	return c
}

func (c *Computed) recompute() {
	// a dependency may still be notifying from a snapshot taken before Dispose
	if c.Disposed() {
		return
	}

	c.Write(c.derive())
}

// Dispose detaches the computed from its dependencies. Its value stays frozen.
func (c *Computed) Dispose() {
	if c.Disposed() {
		return
	}

	c.Owner.Dispose()
	Logger().Debug("cell: computed disposed")
}
