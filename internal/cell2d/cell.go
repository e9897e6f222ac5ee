package cell2d

import (
	"go.uber.org/zap"

	"github.com/0x0FACED/planecut/internal/telemetry"
)

// CutResult reports whether a plane cut left anything behind.
type CutResult int

const (
	// CellSurvives means the cell is non-empty after the cut (which
	// may have been a no-op, if the whole cell already lay on the
	// preserved side of the plane).
	CellSurvives CutResult = iota
	// CellDestroyed means the entire cell lay strictly outside the
	// half-space and has been reduced to zero vertices.
	CellDestroyed
)

func (r CutResult) String() string {
	if r == CellDestroyed {
		return "destroyed"
	}
	return "survives"
}

// Cell is a planar, simple, convex polygon kept as a doubly linked
// cycle of vertices embedded in index-addressed arrays. Coordinates
// are stored at 2x their geometric value internally (see Init); every
// exported measurement compensates for that scaling.
//
// A Cell is single-owner and single-threaded: no operation may run
// concurrently with another on the same Cell, and any external index
// captured before a Plane call that triggers growth is invalid after
// it.
type Cell struct {
	storage
}

// New creates an empty Cell (VertexCount() == 0) with the given
// configuration. A nil logger falls back to a no-op sink.
func New(cfg Config, log *telemetry.Logger) *Cell {
	if log == nil {
		log = telemetry.Nop()
	}
	return &Cell{storage: newStorage(cfg, log)}
}

// VertexCount returns the number of live vertices, 0 for an
// uninitialized or destroyed cell.
func (c *Cell) VertexCount() int { return c.p }

// Init resets the cell to the rectangle [xmin,xmax] x [ymin,ymax],
// discarding any prior state. Vertices are laid out counter-clockwise
// starting at (xmin, ymin).
func (c *Cell) Init(xmin, xmax, ymin, ymax float64) error {
	if xmin >= xmax || ymin >= ymax {
		return ErrInvalidInitialization
	}

	xmin *= 2
	xmax *= 2
	ymin *= 2
	ymax *= 2

	if c.capacity < 4 {
		if err := c.growVertices(); err != nil {
			return err
		}
	}

	c.setXY(0, xmin, ymin)
	c.setXY(1, xmax, ymin)
	c.setXY(2, xmax, ymax)
	c.setXY(3, xmin, ymax)

	c.setNext(0, 1)
	c.setPrev(0, 3)
	c.setNext(1, 2)
	c.setPrev(1, 0)
	c.setNext(2, 3)
	c.setPrev(2, 1)
	c.setNext(3, 0)
	c.setPrev(3, 2)

	c.p = 4
	c.deleteStack = c.deleteStack[:0]

	c.log.Debug("cell2d: initialized rectangle",
		zap.Float64("xmin", xmin/2), zap.Float64("xmax", xmax/2),
		zap.Float64("ymin", ymin/2), zap.Float64("ymax", ymax/2))
	return nil
}

// position returns the signed distance of vertex i from the cutting
// plane x*X + y*Y = rsq, compensating for the internal 2x coordinate
// scaling.
func (c *Cell) position(x, y, rsq float64, i int) float64 {
	return 0.5*(x*c.x(i)+y*c.y(i)) - rsq
}

// Plane cuts the cell by the half-space x*X + y*Y <= rsq, removing
// vertices strictly on the far side and introducing up to two new
// vertices where the plane crosses surviving edges.
func (c *Cell) Plane(x, y, rsq float64) (CutResult, error) {
	if c.p == 0 {
		return CellDestroyed, nil
	}

	tol := c.cfg.Tolerance
	pos := func(i int) float64 { return c.position(x, y, rsq, i) }

	// Phase 1: locate a witness strictly outside the plane; on-plane
	// vertices are not taken as witnesses.
	up := 0
	u := pos(up)
	if u < tol {
		up2 := c.next(up)
		u2 := pos(up2)
		up3 := c.prev(up)
		u3 := pos(up3)
		if u2 > u3 {
			for u2 < tol {
				up2 = c.next(up2)
				u2 = pos(up2)
				if up2 == up3 {
					return CellSurvives, nil
				}
			}
			up, u = up2, u2
		} else {
			for u3 < tol {
				up3 = c.prev(up3)
				u3 = pos(up3)
				if up2 == up3 {
					return CellSurvives, nil
				}
			}
			up, u = up3, u3
		}
	}

	c.deleteStack = c.deleteStack[:0]

	// Phase 2: sweep forward along next, marking vertices to delete.
	if err := c.pushDelete(up); err != nil {
		return CellSurvives, err
	}
	l := u
	up2 := c.next(up)
	u2 := pos(up2)
	for u2 > tol {
		if err := c.pushDelete(up2); err != nil {
			return CellSurvives, err
		}
		up2 = c.next(up2)
		l = u2
		u2 = pos(up2)
		if up2 == up {
			c.p = 0
			c.deleteStack = c.deleteStack[:0]
			c.log.Info("cell2d: plane cut destroyed cell")
			return CellDestroyed, nil
		}
	}

	// Phase 3, endpoint reached along next.
	var cp int
	if u2 > -tol {
		cp = up2
	} else {
		if err := c.reserveVertex(); err != nil {
			return CellSurvives, err
		}
		lp := c.prev(up2)
		fac := 1 / (u2 - l)
		nx := (c.x(lp)*u2 - c.x(up2)*l) * fac
		ny := (c.y(lp)*u2 - c.y(up2)*l) * fac
		newIdx := c.p
		c.setXY(newIdx, nx, ny)
		c.setNext(newIdx, up2)
		c.setPrev(up2, newIdx)
		cp = newIdx
		c.p++
	}

	// Phase 2 mirror: sweep backward along prev, marking vertices to
	// delete.
	l = u
	up3 := c.prev(up)
	u3 := pos(up3)
	for u3 > tol {
		if err := c.pushDelete(up3); err != nil {
			return CellSurvives, err
		}
		up3 = c.prev(up3)
		l = u3
		u3 = pos(up3)
		if up3 == up2 {
			break
		}
	}

	// Phase 3, endpoint reached along prev.
	if u3 > tol {
		c.setPrev(cp, up3)
		c.setNext(up3, cp)
	} else {
		if err := c.reserveVertex(); err != nil {
			return CellSurvives, err
		}
		lp := c.next(up3)
		fac := 1 / (u3 - l)
		nx := (c.x(lp)*u3 - c.x(up3)*l) * fac
		ny := (c.y(lp)*u3 - c.y(up3)*l) * fac
		newIdx := c.p
		c.setXY(newIdx, nx, ny)
		c.setNext(newIdx, cp)
		c.setPrev(cp, newIdx)
		c.setPrev(newIdx, up3)
		c.setNext(up3, newIdx)
		c.p++
	}

	// Phase 4: mark and compact.
	for _, idx := range c.deleteStack {
		c.setNext(idx, -1)
	}
	for len(c.deleteStack) > 0 {
		for {
			c.p--
			if c.next(c.p) != -1 {
				break
			}
		}
		top := c.deleteStack[len(c.deleteStack)-1]
		c.deleteStack = c.deleteStack[:len(c.deleteStack)-1]
		if top < c.p {
			nx := c.next(c.p)
			pv := c.prev(c.p)
			c.setPrev(nx, top)
			c.setNext(pv, top)
			c.setXY(top, c.x(c.p), c.y(c.p))
			c.setNext(top, nx)
			c.setPrev(top, pv)
		} else {
			c.p++
		}
	}

	c.log.Debug("cell2d: plane cut survived", zap.Int("vertices", c.p))
	return CellSurvives, nil
}
