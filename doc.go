// Package astk is a parametric-surface geometry kernel for engineering
// shape design. It represents polynomial Bezier, rational Bezier, and
// general NURBS patches, evaluates points and derivatives on them, and
// enforces positional (G0), tangential (G1), and curvature (G2) continuity
// across shared patch edges so multi-patch shapes assemble without seams.
//
// Surfaces are single-owner values: continuity enforcement mutates the
// target patch's control grids in place, and the kernel performs no internal
// locking. All operations are synchronous and bounded by grid and degree
// sizes known at call time.
package astk
