package bitscratch

import (
	"sync"

	"github.com/kelindar/bitmap"
)

// prefillBits is the scratch-sizing hint carried over from the original
// source's literal 5000-color constant: Sets are pre-grown to this many
// bits on first use so early min_available calls on modest graphs never
// pay a growth cost. It is not a limit; Grow is called again whenever the
// ceiling exceeds the current capacity.
const prefillBits = 5000

// Set is a per-worker "seen color" scratch bit-set. It is not safe for
// concurrent use — each goroutine must own its own Set. cap tracks the
// bit-set's own notion of how many bits it has grown to, since capacity
// bookkeeping is kept here rather than round-tripped through the bitmap
// library on every query.
type Set struct {
	bm  bitmap.Bitmap
	cap int32
}

var pool = sync.Pool{
	New: func() any {
		s := &Set{}
		s.bm.Grow(prefillBits)
		s.cap = prefillBits
		return s
	},
}

// Acquire obtains a Set from the pool, cleared and ready for use. Pair
// with Release when the calling goroutine is done with it.
func Acquire() *Set {
	s := pool.Get().(*Set)
	s.bm.Clear()
	return s
}

// Release returns s to the pool for reuse by another worker goroutine.
func Release(s *Set) {
	pool.Put(s)
}

// Grow ensures the bit-set can represent bit indices up to n-1.
func (s *Set) Grow(n int32) {
	if n <= s.cap {
		return
	}
	s.bm.Grow(uint32(n))
	s.cap = n
}

// Mark sets bit i, growing the underlying storage if needed.
func (s *Set) Mark(i int32) {
	s.Grow(i + 1)
	s.bm.Set(uint32(i))
}

// Clear resets every bit to zero without shrinking capacity.
func (s *Set) Clear() {
	s.bm.Clear()
	s.bm.Grow(uint32(s.cap))
}

// MinFree returns the smallest index i >= 0 with bit i unset, growing the
// bit-set if every currently-representable bit is set.
func (s *Set) MinFree() int32 {
	for {
		i, ok := s.bm.MinZero()
		if ok && int32(i) < s.cap {
			return int32(i)
		}
		s.Grow(s.cap + 64)
	}
}
