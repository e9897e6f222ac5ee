package tessellate

import (
	"fmt"
	"sort"

	"go.uber.org/zap"

	"github.com/0x0FACED/planecut/internal/cell2d"
	"github.com/0x0FACED/planecut/internal/telemetry"
)

// Generator is a point that owns one cell of the tessellation.
type Generator struct {
	X, Y float64
}

// BoundingBox is the starting rectangle every cell is carved out of,
// in world coordinates.
type BoundingBox struct {
	Xmin, Xmax, Ymin, Ymax float64
}

// Options configures the cells a Container builds.
type Options struct {
	Cell   cell2d.Config
	Logger *telemetry.Logger
}

// CellResult pairs a generator with the convex cell built for it.
// Vertex coordinates read off Cell are cell-local (relative to Site);
// add Site to get world coordinates, exactly the %C custom-output
// convention.
type CellResult struct {
	Site Generator
	Cell *cell2d.Cell
}

// Diagram is the result of tessellating a generator set: one Voronoi
// cell per surviving generator (a generator whose cell is not
// destroyed by the bounding box itself, which only happens if it lies
// outside it).
type Diagram struct {
	Cells []CellResult
}

// Container iterates over generators and builds their cells.
type Container struct {
	bbox BoundingBox
	opts Options
}

// New builds a Container for the given bounding box and cell options.
// A zero Options.Logger falls back to a no-op sink.
func New(bbox BoundingBox, opts Options) *Container {
	if opts.Logger == nil {
		opts.Logger = telemetry.Nop()
	}
	return &Container{bbox: bbox, opts: opts}
}

// Build constructs the full diagram for the given generators. Each
// cell's construction depends only on the generator slice (read-only)
// and its own cell2d.Cell, so a caller may instead call BuildCell
// directly per index from multiple goroutines without additional
// synchronization.
func (c *Container) Build(generators []Generator) (*Diagram, error) {
	results := make([]CellResult, 0, len(generators))
	for i := range generators {
		cell, err := c.BuildCell(generators, i)
		if err != nil {
			return nil, fmt.Errorf("tessellate: generator %d: %w", i, err)
		}
		if cell.VertexCount() == 0 {
			c.opts.Logger.Info("tessellate: generator outside bounding box, skipped",
				zap.Int("index", i), zap.Float64("x", generators[i].X), zap.Float64("y", generators[i].Y))
			continue
		}
		results = append(results, CellResult{Site: generators[i], Cell: cell})
	}
	return &Diagram{Cells: results}, nil
}

// neighbor is a candidate cutting plane: the offset to another
// generator, sorted by ascending squared distance so BuildCell can
// stop as soon as no farther generator could possibly reach the
// shrinking cell.
type neighbor struct {
	dx, dy, dist2 float64
}

// BuildCell builds the cell for generators[i] alone: init to the
// bounding box translated into cell-local coordinates, then cut by
// the perpendicular bisector to every other generator, nearest first.
// A generator that does not itself lie within the bounding box owns no
// region of it and is reported as an empty (VertexCount() == 0) cell
// without ever calling Init.
func (c *Container) BuildCell(generators []Generator, i int) (*cell2d.Cell, error) {
	site := generators[i]
	cell := cell2d.New(c.opts.Cell, c.opts.Logger)

	if site.X < c.bbox.Xmin || site.X > c.bbox.Xmax || site.Y < c.bbox.Ymin || site.Y > c.bbox.Ymax {
		return cell, nil
	}

	err := cell.Init(c.bbox.Xmin-site.X, c.bbox.Xmax-site.X, c.bbox.Ymin-site.Y, c.bbox.Ymax-site.Y)
	if err != nil {
		return nil, err
	}

	neighbors := make([]neighbor, 0, len(generators)-1)
	for j, other := range generators {
		if j == i {
			continue
		}
		dx := other.X - site.X
		dy := other.Y - site.Y
		neighbors = append(neighbors, neighbor{dx: dx, dy: dy, dist2: dx*dx + dy*dy})
	}
	sort.Slice(neighbors, func(a, b int) bool { return neighbors[a].dist2 < neighbors[b].dist2 })

	for _, n := range neighbors {
		if cell.VertexCount() == 0 {
			break
		}
		// A generator farther than twice the cell's current maximum
		// vertex radius cannot possibly cut it: every surviving
		// vertex is already at least that much closer to the site
		// than to this generator. cell_2d.cc's max_radius_squared doc
		// comment names this exact use.
		mrs := 0.25 * cell.MaxRadiusSquared()
		if n.dist2 > 4*mrs {
			break
		}

		rsq := 0.5 * n.dist2
		if _, err := cell.Plane(n.dx, n.dy, rsq); err != nil {
			return nil, err
		}
	}

	return cell, nil
}
