// Package tessellate is the container that iterates over generators,
// built only through the public interface the cell2d kernel offers.
// It builds one convex cell per generator point by starting from an
// axis-aligned bounding box and cutting with the perpendicular
// bisector to every neighboring generator, closest first, stopping
// early once no farther generator can possibly reach the shrinking
// cell.
package tessellate
