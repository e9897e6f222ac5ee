package render

import (
	"bufio"
	"fmt"
	"io"

	"github.com/0x0FACED/planecut/internal/cell2d"
)

// Gnuplot writes the cell's boundary as a gnuplot polyline: one "x y"
// line per vertex plus the supplied displacement, terminated by
// re-emitting the first vertex and a blank line. A cell with no
// vertices writes nothing.
func Gnuplot(w io.Writer, c *cell2d.Cell, dx, dy float64) error {
	boundary := c.Boundary()
	if len(boundary) == 0 {
		return nil
	}

	bw := bufio.NewWriter(w)
	for _, v := range boundary {
		if _, err := fmt.Fprintf(bw, "%g %g\n", dx+v.X, dy+v.Y); err != nil {
			return err
		}
	}
	if _, err := fmt.Fprintf(bw, "%g %g\n\n", dx+boundary[0].X, dy+boundary[0].Y); err != nil {
		return err
	}
	return bw.Flush()
}

// POV writes one sphere-and-cylinder fragment per edge of the cell's
// boundary, at the given z elevation, in POV-Ray scene syntax. A cell
// with no vertices writes nothing.
func POV(w io.Writer, c *cell2d.Cell, dx, dy, dz float64) error {
	boundary := c.Boundary()
	if len(boundary) == 0 {
		return nil
	}

	bw := bufio.NewWriter(w)
	n := len(boundary)
	for i, v := range boundary {
		next := boundary[(i+1)%n]
		_, err := fmt.Fprintf(bw, "sphere{<%g,%g,%g>,r}\ncylinder{<%g,%g,%g>,<%g,%g,%g>,r}\n",
			dx+v.X, dy+v.Y, dz,
			dx+v.X, dy+v.Y, dz,
			dx+next.X, dy+next.Y, dz)
		if err != nil {
			return err
		}
	}
	return bw.Flush()
}

// Custom writes one newline-terminated record built from format,
// substituting the following recognized tokens:
//
//	%i generator id       %x generator X     %y generator Y
//	%q "X Y"               %r generator radius %w vertex count
//	%m 0.25*MaxRadiusSquared()   %p perimeter   %a area
//	%c cell-local centroid "cx cy"
//	%C centroid displaced by the generator "x+cx y+cy"
//
// An unrecognized token after '%' is emitted verbatim as '%' followed
// by that character. A trailing lone '%' is likewise emitted verbatim.
func Custom(w io.Writer, c *cell2d.Cell, format string, id int, x, y, r float64) error {
	bw := bufio.NewWriter(w)

	for i := 0; i < len(format); i++ {
		ch := format[i]
		if ch != '%' {
			if err := bw.WriteByte(ch); err != nil {
				return err
			}
			continue
		}

		i++
		if i >= len(format) {
			if err := bw.WriteByte('%'); err != nil {
				return err
			}
			break
		}

		var err error
		switch format[i] {
		case 'i':
			_, err = fmt.Fprintf(bw, "%d", id)
		case 'x':
			_, err = fmt.Fprintf(bw, "%g", x)
		case 'y':
			_, err = fmt.Fprintf(bw, "%g", y)
		case 'q':
			_, err = fmt.Fprintf(bw, "%g %g", x, y)
		case 'r':
			_, err = fmt.Fprintf(bw, "%g", r)
		case 'w':
			_, err = fmt.Fprintf(bw, "%d", c.VertexCount())
		case 'm':
			_, err = fmt.Fprintf(bw, "%g", 0.25*c.MaxRadiusSquared())
		case 'p':
			_, err = fmt.Fprintf(bw, "%g", c.Perimeter())
		case 'a':
			_, err = fmt.Fprintf(bw, "%g", c.Area())
		case 'c':
			cx, cy := c.Centroid()
			_, err = fmt.Fprintf(bw, "%g %g", cx, cy)
		case 'C':
			cx, cy := c.Centroid()
			_, err = fmt.Fprintf(bw, "%g %g", x+cx, y+cy)
		default:
			_, err = fmt.Fprintf(bw, "%%%c", format[i])
		}
		if err != nil {
			return err
		}
	}

	if err := bw.WriteByte('\n'); err != nil {
		return err
	}
	return bw.Flush()
}
