package tessellate

import (
	"math"
	"testing"

	"github.com/0x0FACED/planecut/internal/cell2d"
)

func square() BoundingBox {
	return BoundingBox{Xmin: 0, Xmax: 10, Ymin: 0, Ymax: 10}
}

func TestBuildCellSingleGeneratorFillsBoundingBox(t *testing.T) {
	c := New(square(), Options{Cell: cell2d.DefaultConfig()})
	diagram, err := c.Build([]Generator{{X: 5, Y: 5}})
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	if len(diagram.Cells) != 1 {
		t.Fatalf("len(diagram.Cells) = %d, want 1", len(diagram.Cells))
	}
	if got := diagram.Cells[0].Cell.Area(); math.Abs(got-100) > 1e-6 {
		t.Fatalf("Area() = %v, want 100", got)
	}
}

func TestBuildCellTwoGeneratorsSplitEvenly(t *testing.T) {
	c := New(square(), Options{Cell: cell2d.DefaultConfig()})
	diagram, err := c.Build([]Generator{{X: 2, Y: 5}, {X: 8, Y: 5}})
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	if len(diagram.Cells) != 2 {
		t.Fatalf("len(diagram.Cells) = %d, want 2", len(diagram.Cells))
	}
	for _, cell := range diagram.Cells {
		if got := cell.Cell.Area(); math.Abs(got-50) > 1e-6 {
			t.Fatalf("Area() for site %v = %v, want 50", cell.Site, got)
		}
	}
}

func TestBuildCellGeneratorOutsideBoundingBoxIsDestroyed(t *testing.T) {
	c := New(BoundingBox{Xmin: 0, Xmax: 10, Ymin: 0, Ymax: 10}, Options{Cell: cell2d.DefaultConfig()})
	cell, err := c.BuildCell([]Generator{{X: 50, Y: 50}}, 0)
	if err != nil {
		t.Fatalf("BuildCell: %v", err)
	}
	if cell.VertexCount() != 0 {
		t.Fatalf("VertexCount() = %d, want 0 for a generator outside the bounding box", cell.VertexCount())
	}
}

// TestManyNearTangentPlanes borrows the original kernel's
// degenerate-cut example (repeated near-tangent cuts around a
// center), exercising vertex-grazing and repeated-cut paths a
// handful of hand-picked scenarios can't reach.
func TestManyNearTangentPlanes(t *testing.T) {
	c := cell2d.New(cell2d.DefaultConfig(), nil)
	if err := c.Init(-1, 1, -1, 1); err != nil {
		t.Fatalf("Init: %v", err)
	}

	const n = 64
	for k := 0; k < n; k++ {
		theta := 2 * math.Pi * float64(k) / float64(n)
		x, y := math.Cos(theta), math.Sin(theta)
		if _, err := c.Plane(x, y, 0.9); err != nil {
			t.Fatalf("Plane at theta=%v: %v", theta, err)
		}
		if err := c.CheckInvariants(); err != nil {
			t.Fatalf("CheckInvariants after cut %d: %v", k, err)
		}
	}

	if c.VertexCount() < 3 {
		t.Fatalf("VertexCount() = %d, want a surviving polygon", c.VertexCount())
	}

	// The cuts carve a regular n-gon circumscribed about the circle of
	// radius 0.9, so every surviving vertex lies within radius
	// 0.9/cos(pi/n) (+tolerance) of the origin.
	limit := 0.9 * 0.9 / (math.Cos(math.Pi/n) * math.Cos(math.Pi/n))
	if got := c.MaxRadiusSquared() * 0.25; got > limit+1e-6 {
		t.Fatalf("MaxRadiusSquared()*0.25 = %v, want <= %v", got, limit)
	}
}
