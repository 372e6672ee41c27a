// Package loader reads an edge-list file in one of two recognized shapes
// and normalizes it to the (N, edges) pair graphstore.Build expects.
//
// Shape is auto-detected from the first non-comment, non-blank line:
//
//   - header-style: that line is a single integer N; every subsequent
//     line is "u v" with 0 <= u,v < N.
//   - SNAP-style: lines starting with '#' or '%' are comments; every
//     other line is "u v" with arbitrary non-negative ids, which are
//     compacted to [0..N) in first-seen order.
//
// Malformed lines do not abort the read: every bad line is recorded and
// the whole batch is returned together as one combined error via
// go.uber.org/multierr, so a caller sees every problem in a file in one
// pass instead of fixing and re-running one line at a time.
package loader
