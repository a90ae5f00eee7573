//go:build !wasm

package internal

import (
	"sync"

	"github.com/petermattis/goid"
)

var runtimes sync.Map

// GetRuntime returns the runtime of the calling goroutine.
func GetRuntime() *Runtime {
	gid := getGID()

	if r, ok := runtimes.Load(gid); ok {
		return r.(*Runtime)
	}

	r := NewRuntime(gid)
	runtimes.Store(gid, r)
	return r
}

// CurrentDepth returns the notification depth of the calling goroutine
// without creating a runtime for it.
func CurrentDepth() int {
	if r, ok := runtimes.Load(getGID()); ok {
		return r.(*Runtime).Depth()
	}

	return 0
}

// timer goroutines come and go, so idle runtimes are dropped
func releaseRuntime(r *Runtime) {
	runtimes.Delete(r.gid)
}

func getGID() int64 {
	return goid.Get()
}
