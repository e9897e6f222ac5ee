// Package cell2d implements the two-dimensional convex-cell kernel:
// a single convex polygon kept as a doubly linked cycle of vertices in
// index-addressed arrays, refined by successive half-space
// intersections ("plane cuts"). It is the elementary building block a
// planar Voronoi tessellation is assembled from, one generator at a
// time, by cutting an axis-aligned bounding box with the perpendicular
// bisector to every neighboring generator.
//
// The cell is single-owner and single-threaded: every operation runs
// to completion synchronously, and no aliasing survives a plane cut
// that triggers storage growth.
package cell2d
