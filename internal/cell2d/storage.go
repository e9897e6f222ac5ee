package cell2d

import (
	"go.uber.org/zap"

	"github.com/0x0FACED/planecut/internal/telemetry"
)

// storage owns the two parallel dynamic arrays a Cell is built from:
// vertex coordinates and the edge table. Both are packed the way the
// original C++ kernel packs them (interleaved pairs in a single
// slice) rather than as an array-of-structs, so growth is a single
// slice copy instead of one per field.
//
// coords holds (x, y) pairs at [2*i, 2*i+1]; both are stored doubled,
// see Cell's doc comment for why. edges holds (next, prev) pairs at
// [2*i, 2*i+1].
type storage struct {
	coords []float64
	edges  []int

	p        int // live vertex count; valid indices are 0..p-1
	capacity int // allocated slot count; capacity >= p

	deleteStack []int
	cfg         Config
	log         *telemetry.Logger
}

func newStorage(cfg Config, log *telemetry.Logger) storage {
	if cfg.InitialVertices < 4 {
		cfg.InitialVertices = 4
	}
	if cfg.InitialDeleteSize < 1 {
		cfg.InitialDeleteSize = 1
	}
	if log == nil {
		log = telemetry.Nop()
	}
	return storage{
		coords:      make([]float64, 2*cfg.InitialVertices),
		edges:       make([]int, 2*cfg.InitialVertices),
		capacity:    cfg.InitialVertices,
		deleteStack: make([]int, 0, cfg.InitialDeleteSize),
		cfg:         cfg,
		log:         log,
	}
}

// growVertices doubles the vertex and edge arrays, copying live data
// into freshly allocated slices. It fails with a *CapacityError if
// doubling would exceed cfg.MaxVertices.
func (s *storage) growVertices() error {
	next := s.capacity * 2
	if next > s.cfg.MaxVertices {
		return &CapacityError{Which: VertexCeiling, Attempt: next, Max: s.cfg.MaxVertices}
	}

	coords := make([]float64, 2*next)
	copy(coords, s.coords)
	edges := make([]int, 2*next)
	copy(edges, s.edges)

	s.coords = coords
	s.edges = edges
	s.capacity = next

	s.log.Debug("cell2d: vertex storage grown", zap.Int("capacity", next))
	return nil
}

// reserveVertex ensures room for one more live vertex, growing if the
// arrays are full.
func (s *storage) reserveVertex() error {
	if s.p == s.capacity {
		return s.growVertices()
	}
	return nil
}

// pushDelete appends a vertex index to the delete stack, growing it
// (doubling) if it is at capacity. Mirrors add_memory_ds in the
// original: the cursor is simply the slice length, so no rebasing is
// needed the way a raw pointer would require.
func (s *storage) pushDelete(idx int) error {
	if len(s.deleteStack) == cap(s.deleteStack) {
		next := cap(s.deleteStack) * 2
		if next == 0 {
			next = 1
		}
		if next > s.cfg.MaxDeleteSize {
			return &CapacityError{Which: DeleteStackCeiling, Attempt: next, Max: s.cfg.MaxDeleteSize}
		}
		grown := make([]int, len(s.deleteStack), next)
		copy(grown, s.deleteStack)
		s.deleteStack = grown
		s.log.Debug("cell2d: delete stack grown", zap.Int("capacity", next))
	}
	s.deleteStack = append(s.deleteStack, idx)
	return nil
}

func (s *storage) x(i int) float64 { return s.coords[2*i] }
func (s *storage) y(i int) float64 { return s.coords[2*i+1] }

func (s *storage) next(i int) int { return s.edges[2*i] }
func (s *storage) prev(i int) int { return s.edges[2*i+1] }

func (s *storage) setNext(i, v int) { s.edges[2*i] = v }
func (s *storage) setPrev(i, v int) { s.edges[2*i+1] = v }

func (s *storage) setXY(i int, x, y float64) {
	s.coords[2*i] = x
	s.coords[2*i+1] = y
}
