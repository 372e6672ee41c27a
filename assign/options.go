package assign

import (
	"runtime"

	"github.com/go-logr/logr"
)

// SchedulerKind selects how the parallel phase partitions the
// ProcessingOrder suffix across worker goroutines.
type SchedulerKind int

const (
	// Dynamic claims the next unprocessed vertex from a shared atomic
	// cursor — the default, and the only scheduler that guarantees an
	// idle worker never starves behind one slow, contended worker.
	Dynamic SchedulerKind = iota
	// WorkStealing gives each worker a contiguous static slice of the
	// suffix to drain first, then lets idle workers steal from the
	// opposite end of the first non-empty slice found scanning the other
	// workers round-robin.
	WorkStealing
)

// highDegreeFloor is the minimum degree that qualifies a vertex for the
// sequential pre-pass regardless of graph size, so tiny graphs with a
// handful of high-degree hubs still get them serialized before any
// parallel work starts.
const highDegreeFloor = 50

// maxPrefixFraction bounds the pre-pass to at most this fraction of N,
// so a pathological graph where "most vertices" clear the degree
// threshold cannot degenerate into an entirely sequential run.
const maxPrefixFraction = 0.3

// Options configures a single Assignment Engine run. The zero value is
// not usable; construct via NewOptions.
type Options struct {
	Threads              int
	RetryBudget          int
	HighDegreePct        float32
	HighContentionDegree int32
	Scheduler            SchedulerKind
	Logger               logr.Logger
}

// NewOptions returns Options populated with the documented
// defaults: Threads = runtime.GOMAXPROCS(0), RetryBudget = 4,
// HighDegreePct = 1.0, HighContentionDegree = 100, Scheduler = Dynamic,
// Logger = logr.Discard().
func NewOptions() Options {
	return Options{
		Threads:              runtime.GOMAXPROCS(0),
		RetryBudget:          4,
		HighDegreePct:        1.0,
		HighContentionDegree: 100,
		Scheduler:            Dynamic,
		Logger:               logr.Discard(),
	}
}

// degreeThreshold computes max(highDegreeFloor, N*HighDegreePct/100), the
// degree above which a vertex is colored in the sequential pre-pass.
func (o Options) degreeThreshold(n int32) int32 {
	pct := int32(float32(n) * o.HighDegreePct / 100.0)
	if pct > highDegreeFloor {
		return pct
	}
	return highDegreeFloor
}
