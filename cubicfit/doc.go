// Package cubicfit fits one cubic Bézier segment through a span of
// N-dimensional samples given fixed tangent directions at each end:
// FitSingle(points, tanL, tanR) -> (hL, hR, errSq).
//
// The algorithm is the classical two-parameter Bézier fit (Schneider,
// "An Algorithm for Automatically Fitting Digitized Curves", Graphics
// Gems, 1990): fix both endpoints and both tangent directions,
// parameterize the interior samples by chord length, and solve the
// resulting 2x2 normal-equations system for the two handle lengths that
// minimize summed squared residual. The 2x2 solve itself is done with
// gonum/mat rather than a hand-rolled Cramer's rule.
package cubicfit
