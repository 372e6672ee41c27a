// Package order computes the ProcessingOrder consumed by the Assignment
// Engine: a permutation of [0,N) sorted by descending degree, ties broken
// by ascending vertex id for determinism.
//
// High-degree vertices are the most constrained, so coloring them first
// tends to lower the total color count and reduces the odds of two
// threads racing to color vertices that are each other's neighbors.
//
// Compute chooses between two equivalent algorithms by vertex count: a
// direct stable sort below directSortThreshold, and a linear degree-bucket
// pass above it. Both are required to, and do, produce the identical
// permutation for the same input.
package order
