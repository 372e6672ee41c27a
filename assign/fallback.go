package assign

import (
	"sync"

	"github.com/katalvlaran/chromatix/colorstate"
	"github.com/katalvlaran/chromatix/graphstore"
	"github.com/katalvlaran/chromatix/internal/bitscratch"
)

// fallbackMutex serializes the rare fallback path the AtomicCAS and HTM
// strategies converge to once their retry budgets are exhausted. It is
// deliberately package-level rather than per-run: two concurrent runs
// sharing it only ever costs a little contention on an already-rare path,
// and keeping one mutex per run would need to be threaded through every
// call site for no benefit.
var fallbackMutex sync.Mutex

// fallbackAssign recomputes minAvailable for v under a global lock and
// publishes it, guaranteeing forward progress regardless of how many
// times CAS or a transaction attempt has already failed for v. This is
// the serialized non-transactional path AtomicCAS and HTM fall through
// to once their retry budgets are exhausted; STM mints a fresh unique
// color instead (see stm.go).
func fallbackAssign(g *graphstore.Graph, state *colorstate.State, v int32, scratch *bitscratch.Set) int32 {
	fallbackMutex.Lock()
	defer fallbackMutex.Unlock()

	c := minAvailable(g, state, v, scratch)
	state.BumpCeilingTo(c)
	state.Assign(v, c)
	return c
}
