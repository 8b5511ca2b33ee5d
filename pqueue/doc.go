// Package pqueue implements an indexed binary min-heap: a priority queue
// that hands back a stable Handle for every inserted payload, so a caller
// can look up and remove an arbitrary in-flight entry in O(log n) without
// scanning.
//
// Each entry carries its own current tree index, so an arbitrary removal
// bubbles the target node to the root via unconditional parent swaps and
// then performs a standard pop — rather than the swap-with-last,
// sift-either-direction fixup most textbook indexed heaps use. Entry
// lifetime is left to the garbage collector; the one ownership contract
// that matters is that every entry ever inserted is popped or removed
// exactly once.
package pqueue
