// Package circuit wires junction boxes in 3D space into circuits by
// repeatedly connecting the closest pair of boxes that has not been
// connected yet.
//
// Every box starts in its own circuit. Connecting two boxes in different
// circuits merges those circuits; connecting two boxes that already share a
// circuit changes nothing. Circuits are addressed by a stable id and are
// never removed, only drained, so ids handed out stay valid.
package circuit

import (
	"errors"
	"fmt"
	"math"
	"slices"

	aoc "github.com/maisem/aoc2025"
	"gonum.org/v1/gonum/spatial/r3"
	"tailscale.com/util/set"
)

// ErrExhausted is returned by ProcessUntilSingleCircuit when every
// connection has been used and more than one circuit remains.
var ErrExhausted = errors.New("circuit: connections exhausted")

// Box is a junction box. Its position never changes; the circuit it belongs
// to does.
type Box struct {
	Pos     r3.Vec
	circuit int
}

// Circuit returns the id of the circuit b belongs to.
func (b Box) Circuit() int {
	return b.circuit
}

// Connection is a candidate cable between two boxes.
type Connection struct {
	From, To int
	Distance float64
}

// Equal reports whether c and o join the same pair of boxes, in either
// direction, with the same length.
func (c Connection) Equal(o Connection) bool {
	if c.Distance != o.Distance {
		return false
	}
	return c.From == o.From && c.To == o.To || c.From == o.To && c.To == o.From
}

func (c Connection) String() string {
	return fmt.Sprintf("%d-%d:%.3f", c.From, c.To, c.Distance)
}

// System is a set of boxes, the circuits they form and the connections not
// yet used. It is not safe for concurrent use.
type System struct {
	boxes    []Box
	circuits []set.Set[int] // by circuit id; drained circuits are empty
	live     int            // non-empty circuits
	conns    *aoc.PQ[Connection, float64]
	forest   aoc.Graph[int]
}

// New returns an empty System with room for n boxes.
func New(n int) *System {
	return &System{
		boxes:    make([]Box, 0, n),
		circuits: make([]set.Set[int], 0, n),
		conns:    aoc.MinQueue[Connection, float64](),
	}
}

// Build returns a System holding a box for each point, each in its own
// circuit, and a connection for every unordered pair of boxes. Box and
// circuit ids follow the order of points.
func Build(points []r3.Vec) *System {
	s := New(len(points))
	for _, p := range points {
		s.AddBox(p)
	}
	n := len(points)
	s.conns.Grow(n * (n - 1) / 2)
	for i := range n {
		for j := i + 1; j < n; j++ {
			s.Connect(i, j)
		}
	}
	return s
}

// AddBox adds a box at p in a new singleton circuit and returns its id.
func (s *System) AddBox(p r3.Vec) int {
	id := len(s.boxes)
	c := len(s.circuits)
	s.boxes = append(s.boxes, Box{Pos: p, circuit: c})
	members := make(set.Set[int])
	members.Add(id)
	s.circuits = append(s.circuits, members)
	s.live++
	return id
}

// Connect queues a connection between boxes from and to.
func (s *System) Connect(from, to int) Connection {
	c := Connection{
		From:     from,
		To:       to,
		Distance: r3.Norm(r3.Sub(s.boxes[from].Pos, s.boxes[to].Pos)),
	}
	s.conns.Push(&aoc.PQI[Connection, float64]{V: c, P: c.Distance})
	return c
}

// Len returns the number of boxes.
func (s *System) Len() int { return len(s.boxes) }

// Box returns box i.
func (s *System) Box(i int) Box { return s.boxes[i] }

// CircuitOf returns the id of the circuit box i belongs to.
func (s *System) CircuitOf(i int) int { return s.boxes[i].circuit }

// Live returns the number of non-empty circuits.
func (s *System) Live() int { return s.live }

// Pending returns the number of connections not yet processed.
func (s *System) Pending() int { return s.conns.Len() }

// Members returns the sorted box ids of circuit c.
func (s *System) Members(c int) []int {
	m := s.circuits[c].Slice()
	slices.Sort(m)
	return m
}

// Sizes returns the size of every circuit indexed by circuit id, including
// drained circuits.
func (s *System) Sizes() []int {
	out := make([]int, len(s.circuits))
	for i, c := range s.circuits {
		out[i] = c.Len()
	}
	return out
}

// LargestProduct returns the product of the sizes of the n largest
// non-empty circuits. If fewer than n circuits are non-empty, all of them
// are multiplied.
func (s *System) LargestProduct(n int) int {
	sizes := slices.DeleteFunc(s.Sizes(), func(v int) bool { return v == 0 })
	slices.SortFunc(sizes, func(a, b int) int { return b - a })
	return aoc.Product(sizes[:min(n, len(sizes))]...)
}

// Forest returns the connections that merged circuits as a graph over box
// ids. Edge weights are distances rounded to the nearest integer.
func (s *System) Forest() *aoc.Graph[int] {
	g := s.forest.Clone()
	for i := range s.boxes {
		g.AddNode(i)
	}
	return g
}

// Merge moves every box of the smaller of circuits a and b into the larger
// one. When both are the same size, b is drained into a. Merging a circuit
// with itself does nothing.
func (s *System) Merge(a, b int) {
	if a == b {
		return
	}
	small, large := b, a
	if s.circuits[a].Len() < s.circuits[b].Len() {
		small, large = a, b
	}
	if s.circuits[small].Len() == 0 {
		return
	}
	dst := s.circuits[large]
	for id := range s.circuits[small] {
		dst.Add(id)
		s.boxes[id].circuit = large
	}
	clear(s.circuits[small])
	s.live--
}

// Apply merges the circuits of the two boxes of c. It reports false, and
// changes nothing, if they are already in the same circuit.
func (s *System) Apply(c Connection) bool {
	a, b := s.CircuitOf(c.From), s.CircuitOf(c.To)
	if a == b {
		return false
	}
	s.Merge(a, b)
	s.forest.AddEdge(c.From, c.To, int(math.Round(c.Distance)))
	return true
}

// ProcessBounded applies the k shortest pending connections, whether or not
// they merge anything. It stops early if no connections are left and returns
// the number applied.
func (s *System) ProcessBounded(k int) int {
	n := 0
	for n < k {
		it, ok := s.conns.PopOk()
		if !ok {
			break
		}
		s.Apply(it.V)
		n++
	}
	return n
}

// ProcessUntilSingleCircuit applies pending connections, shortest first,
// until all boxes share one circuit. It returns the connection applied last.
// Among connections of equal length the order is unspecified.
func (s *System) ProcessUntilSingleCircuit() (Connection, error) {
	for {
		it, ok := s.conns.PopOk()
		if !ok {
			return Connection{}, fmt.Errorf("%w: %d circuits remain", ErrExhausted, s.live)
		}
		s.Apply(it.V)
		if s.live == 1 {
			return it.V, nil
		}
	}
}
