package internal

import (
	"errors"
	"fmt"
)

// MaxDepth is the number of nested notifications a single goroutine may be in
// before a write is considered runaway recursion.
const MaxDepth = 10000

// ErrCycle is raised (as a panic value) when notifications nest deeper than MaxDepth.
var ErrCycle = errors.New("cell: notification cycle")

// Runtime holds the per-goroutine notification state.
type Runtime struct {
	gid int64

	// each nested notification increases the depth by 1
	depth int
}

func NewRuntime(gid int64) *Runtime {
	return &Runtime{gid: gid}
}

// Depth returns how many notifications are currently on this goroutine's stack.
func (r *Runtime) Depth() int {
	return r.depth
}

// Notify runs fn as one notification level.
func (r *Runtime) Notify(fn func()) {
	r.enter()
	defer r.leave()

	fn()
}

func (r *Runtime) enter() {
	r.depth++
	if r.depth > MaxDepth {
		r.depth--
		panic(fmt.Errorf("%w: more than %d nested notifications", ErrCycle, MaxDepth))
	}
}

func (r *Runtime) leave() {
	r.depth--
	if r.depth == 0 {
		releaseRuntime(r)
	}
}
