package cell

import "github.com/AnatoleLucet/cell/internal"

// MaxDepth is how many notifications may nest on one goroutine,
// e.g. a chain of computeds, before the write is treated as a cycle.
const MaxDepth = internal.MaxDepth

// ErrCycle is wrapped by the panic value raised when notifications nest deeper than MaxDepth,
// which happens when a computed or subscriber ends up writing to one of its own sources.
// Cycles are not broken silently; the panic propagates unless caught.
var ErrCycle = internal.ErrCycle
