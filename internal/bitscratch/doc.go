// Package bitscratch provides the thread-local "seen" bit-set scratch
// buffer used by the Assignment Engine's and Conflict Resolver's shared
// min_available primitive.
//
// A Set is obtained from a sync.Pool with Acquire and handed back with
// Release; callers acquire one per unit of work (one vertex in the
// Assignment Engine's strategies and the resolver's repair, or one
// pre-pass or Sequential walk), not once per worker goroutine. While
// acquired it is owned by a single goroutine, so no synchronization is
// needed to use it. A Set grows monotonically as colorstate's ceiling
// grows; it is
// pre-grown to prefillBits on first use as a scratch-sizing hint, never
// as a hard limit.
//
// The "smallest unused color" query is the same operation a vertex-
// coloring dataflow operator performs via github.com/kelindar/bitmap's
// MinZero.
package bitscratch
