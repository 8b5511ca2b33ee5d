// Package knot implements the doubly-linked ring of curve-fit knots: a
// pooled array of Knot values linked by integer Prev/Next indices rather
// than pointers. Prev/Next are -1-terminated indices into Ring.Knots (no
// aliasing hazard, no pointer arithmetic), and each knot owns its own two
// tangent slices outright so a corner knot's tangents are copied in,
// never aliased to another knot's buffer.
package knot

// None marks an absent ring link (an open-curve endpoint) or an absent
// knot index.
const None = -1
