// Package curvefit implements the incremental cubic Bézier curve fitter:
// a priority-queue-driven knot-removal loop (remove pass), a sharp-corner
// preservation pass (corner pass), and a knot-relocation pass (refit
// pass), composed by Fit/FitFloat32 into the full pipeline described in
// the curve fitter's system overview.
//
// The three passes share nothing but a knot.Ring and the read-only sample
// array: each owns its own pqueue.Queue keyed on locally re-computed
// squared fit error, and each uses cubicfit.FitSingle as the single-segment
// least-squares solve.
package curvefit
