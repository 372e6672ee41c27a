package coloring

import (
	"runtime"

	"github.com/go-logr/logr"

	"github.com/katalvlaran/chromatix/assign"
)

// Strategy selects which of the four publication strategies the
// Assignment Engine's parallel phase uses. It mirrors assign.Kind one for
// one; Color translates between the two so assign stays an internal
// implementation detail and callers only ever see coloring.Strategy.
type Strategy int

const (
	Sequential Strategy = iota
	AtomicCAS
	STM
	HTM
)

func (s Strategy) toAssignKind() assign.Kind {
	return assign.Kind(s)
}

// SchedulerKind re-exports assign.SchedulerKind so callers configuring
// Options never need to import the assign package directly.
type SchedulerKind = assign.SchedulerKind

const (
	Dynamic      = assign.Dynamic
	WorkStealing = assign.WorkStealing
)

// Options configures a single end-to-end Color run. The zero value is not
// directly usable; build one with NewOptions and apply functional Options
// on top, following a BuildOption-style convention.
type Options struct {
	Threads               int
	MaxResolverIterations int
	RetryBudget           int
	HighDegreePct         float32
	HighContentionDegree  int32
	DetectBipartite       bool
	Scheduler             SchedulerKind
	Logger                logr.Logger
}

// Option mutates an Options in place; pass any number to Color.
type Option func(*Options)

// NewOptions returns the documented defaults: Threads =
// runtime.GOMAXPROCS(0), MaxResolverIterations = 3, RetryBudget = 4,
// HighDegreePct = 1.0, HighContentionDegree = 100, DetectBipartite =
// false, Scheduler = Dynamic, Logger = logr.Discard().
func NewOptions() Options {
	return Options{
		Threads:               runtime.GOMAXPROCS(0),
		MaxResolverIterations: 3,
		RetryBudget:           4,
		HighDegreePct:         1.0,
		HighContentionDegree:  100,
		DetectBipartite:       false,
		Scheduler:             Dynamic,
		Logger:                logr.Discard(),
	}
}

// WithThreads overrides the worker count.
func WithThreads(n int) Option {
	return func(o *Options) { o.Threads = n }
}

// WithMaxResolverIterations overrides the Conflict Resolver's iteration
// cap before it falls back to the guaranteed-unique final pass.
func WithMaxResolverIterations(n int) Option {
	return func(o *Options) { o.MaxResolverIterations = n }
}

// WithRetryBudget overrides the per-vertex retry budget the AtomicCAS,
// STM and HTM strategies spend before falling back: AtomicCAS and HTM to
// the mutex path, STM to a freshly allocated unique color.
func WithRetryBudget(n int) Option {
	return func(o *Options) { o.RetryBudget = n }
}

// WithHighDegreePct overrides the percentage of N used to compute the
// pre-pass degree threshold (see assign.Options.degreeThreshold).
func WithHighDegreePct(pct float32) Option {
	return func(o *Options) { o.HighDegreePct = pct }
}

// WithHighContentionDegree overrides the degree above which the HTM
// strategy bypasses a hardware-transaction attempt entirely.
func WithHighContentionDegree(d int32) Option {
	return func(o *Options) { o.HighContentionDegree = d }
}

// WithDetectBipartite enables the opt-in BFS two-coloring fast path; see
// bipartite.go.
func WithDetectBipartite(b bool) Option {
	return func(o *Options) { o.DetectBipartite = b }
}

// WithScheduler overrides the parallel phase's scheduling discipline.
func WithScheduler(s SchedulerKind) Option {
	return func(o *Options) { o.Scheduler = s }
}

// WithLogger attaches a logr.Logger for structured progress reporting.
func WithLogger(l logr.Logger) Option {
	return func(o *Options) { o.Logger = l }
}

func (o Options) toAssignOptions() assign.Options {
	return assign.Options{
		Threads:              o.Threads,
		RetryBudget:          o.RetryBudget,
		HighDegreePct:        o.HighDegreePct,
		HighContentionDegree: o.HighContentionDegree,
		Scheduler:            o.Scheduler,
		Logger:               o.Logger,
	}
}
