package coloring

import "errors"

// ErrNilGraph is returned by Color when passed a nil *graphstore.Graph;
// this is an InvalidInput per the error taxonomy, caught before any
// pipeline stage runs rather than surfacing as a nil-pointer panic deep
// inside order.Compute.
var ErrNilGraph = errors.New("coloring: graph is nil")

// ErrUnknownStrategy is returned by Color when strategy is outside the
// four defined Strategy values.
var ErrUnknownStrategy = errors.New("coloring: unknown strategy")
