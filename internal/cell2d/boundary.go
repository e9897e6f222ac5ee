package cell2d

// Point is a geometric (already-halved) vertex coordinate.
type Point struct {
	X, Y float64
}

// Boundary returns the cell's vertices in cycle order (following
// next), starting at vertex 0, as geometric coordinates. It is the
// read-only view output adapters walk; nil for an empty cell.
func (c *Cell) Boundary() []Point {
	if c.p == 0 {
		return nil
	}
	out := make([]Point, 0, c.p)
	k := 0
	for {
		out = append(out, Point{X: 0.5 * c.x(k), Y: 0.5 * c.y(k)})
		k = c.next(k)
		if k == 0 {
			break
		}
	}
	return out
}
