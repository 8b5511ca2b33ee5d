// Package vecn implements N-dimensional vector arithmetic over plain
// []float64 slices, shared by every pass of the curve fitter.
//
// Every function here is a pure, allocation-free leaf: output buffers are
// always supplied by the caller, and dimensionality D is a runtime
// parameter rather than a type parameter, since knots may carry 2-D, 3-D
// or arbitrary N-D positions depending on the caller. Mirrors the
// sub_vn_vnvn / normalize_vn / project_plane_vn_vnvn_normalized family
// in the original curve_fit_nd C sources.
package vecn
