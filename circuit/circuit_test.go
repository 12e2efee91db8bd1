package circuit

import (
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/spatial/r3"
)

const sample = `162,817,812
57,618,57
906,360,560
592,479,940
352,342,300
466,668,158
542,29,236
431,825,988
739,650,466
52,470,668
216,146,977
819,987,18
117,168,530
805,96,715
346,949,466
970,615,88
941,993,340
862,61,35
984,92,344
425,690,689
`

func sampleSystem(t *testing.T) *System {
	t.Helper()
	pts, err := ParsePoints(sample)
	require.NoError(t, err)
	require.Len(t, pts, 20)
	return Build(pts)
}

// twoClusters is two triangles far apart, each with two sides of length 1.
func twoClusters() []r3.Vec {
	return []r3.Vec{
		{X: 0, Y: 0, Z: 0},
		{X: 1, Y: 0, Z: 0},
		{X: 0, Y: 1, Z: 0},
		{X: 100, Y: 100, Z: 100},
		{X: 101, Y: 100, Z: 100},
		{X: 100, Y: 101, Z: 100},
	}
}

// checkPartition verifies every box is in exactly one circuit and that its
// circuit id agrees with the circuit's members.
func checkPartition(t *testing.T, s *System) {
	t.Helper()
	seen := make(map[int]int)
	live := 0
	for c := range s.Sizes() {
		members := s.Members(c)
		if len(members) > 0 {
			live++
		}
		for _, b := range members {
			prev, dup := seen[b]
			require.Falsef(t, dup, "box %d in circuits %d and %d", b, prev, c)
			seen[b] = c
			require.Equalf(t, c, s.CircuitOf(b), "box %d", b)
		}
	}
	require.Len(t, seen, s.Len())
	require.Equal(t, live, s.Live())
}

func TestBuild(t *testing.T) {
	s := sampleSystem(t)
	n := s.Len()
	assert.Equal(t, 20, n)
	assert.Equal(t, n*(n-1)/2, s.Pending())
	assert.Equal(t, n, s.Live())
	for i := range n {
		assert.Equal(t, i, s.CircuitOf(i))
		assert.Equal(t, i, s.Box(i).Circuit())
		assert.Equal(t, []int{i}, s.Members(i))
	}
	checkPartition(t, s)
}

func TestSampleBounded(t *testing.T) {
	s := sampleSystem(t)
	assert.Equal(t, 10, s.ProcessBounded(10))
	assert.Equal(t, 40, s.LargestProduct(3))

	sizes := slices.DeleteFunc(s.Sizes(), func(v int) bool { return v == 0 })
	slices.Sort(sizes)
	slices.Reverse(sizes)
	assert.Equal(t, []int{5, 4, 2, 2, 1, 1, 1, 1, 1, 1, 1}, sizes)
	checkPartition(t, s)
}

func TestSampleClosure(t *testing.T) {
	s := sampleSystem(t)
	last, err := s.ProcessUntilSingleCircuit()
	require.NoError(t, err)
	got := int(s.Box(last.From).Pos.X) * int(s.Box(last.To).Pos.X)
	assert.Equal(t, 25272, got)
	assert.Equal(t, 1, s.Live())
	checkPartition(t, s)
}

func TestTwoClusters(t *testing.T) {
	s := Build(twoClusters())
	s.ProcessBounded(4)
	assert.Equal(t, 2, s.Live())
	assert.Equal(t, 9, s.LargestProduct(3))
	assert.Equal(t, s.CircuitOf(0), s.CircuitOf(2))
	assert.Equal(t, s.CircuitOf(3), s.CircuitOf(5))
	assert.NotEqual(t, s.CircuitOf(0), s.CircuitOf(3))
}

func TestMonotonicShrink(t *testing.T) {
	s := sampleSystem(t)
	for s.Pending() > 0 {
		before := s.Live()
		it := s.conns.Peek().V
		merged := s.CircuitOf(it.From) != s.CircuitOf(it.To)
		require.Equal(t, 1, s.ProcessBounded(1))
		if merged {
			require.Equal(t, before-1, s.Live())
		} else {
			require.Equal(t, before, s.Live())
		}
		checkPartition(t, s)
	}
	assert.Equal(t, 1, s.Live())
	assert.Len(t, s.Members(s.CircuitOf(0)), s.Len())
}

func TestMerge(t *testing.T) {
	s := Build(twoClusters())

	s.Merge(2, 2)
	assert.Equal(t, []int{2}, s.Members(2))
	assert.Equal(t, 6, s.Live())

	// Equal sizes: the second circuit drains into the first.
	s.Merge(0, 1)
	assert.Equal(t, []int{0, 1}, s.Members(0))
	assert.Empty(t, s.Members(1))
	assert.Equal(t, 0, s.CircuitOf(1))

	// The smaller circuit drains regardless of argument order.
	s.Merge(2, 0)
	assert.Equal(t, []int{0, 1, 2}, s.Members(0))
	assert.Empty(t, s.Members(2))
	assert.Equal(t, 0, s.CircuitOf(2))

	// Drained circuits stay addressable and merging them is a no-op.
	s.Merge(1, 0)
	assert.Equal(t, []int{0, 1, 2}, s.Members(0))
	assert.Equal(t, 4, s.Live())
	assert.Equal(t, []int{3, 0, 0, 1, 1, 1}, s.Sizes())
	checkPartition(t, s)
}

func TestApply(t *testing.T) {
	s := Build(twoClusters())
	c := Connection{From: 0, To: 1, Distance: 1}
	assert.True(t, s.Apply(c))
	assert.False(t, s.Apply(c))
	assert.False(t, s.Apply(Connection{From: 1, To: 0, Distance: 1}))
	assert.Equal(t, 5, s.Live())
}

func TestProcessBoundedStopsEarly(t *testing.T) {
	s := Build(twoClusters()[:3])
	assert.Equal(t, 3, s.ProcessBounded(100))
	assert.Equal(t, 0, s.Pending())
	assert.Equal(t, 1, s.Live())
	assert.Equal(t, 3, s.LargestProduct(3))
}

func TestExhausted(t *testing.T) {
	s := New(2)
	s.AddBox(r3.Vec{})
	s.AddBox(r3.Vec{X: 1})
	_, err := s.ProcessUntilSingleCircuit()
	assert.ErrorIs(t, err, ErrExhausted)

	_, err = Build([]r3.Vec{{X: 1}}).ProcessUntilSingleCircuit()
	assert.ErrorIs(t, err, ErrExhausted)

	c := s.Connect(0, 1)
	assert.Equal(t, 1.0, c.Distance)
	last, err := s.ProcessUntilSingleCircuit()
	require.NoError(t, err)
	assert.True(t, last.Equal(c))
}

func TestClosureAlwaysConnects(t *testing.T) {
	// Every pair is equidistant from its neighbors along each axis, so the
	// queue is full of ties.
	var pts []r3.Vec
	for x := range 3 {
		for y := range 3 {
			for z := range 3 {
				pts = append(pts, r3.Vec{X: float64(x), Y: float64(y), Z: float64(z)})
			}
		}
	}
	s := Build(pts)
	_, err := s.ProcessUntilSingleCircuit()
	require.NoError(t, err)
	assert.Equal(t, 1, s.Live())
	assert.Len(t, s.Members(s.CircuitOf(0)), len(pts))
	checkPartition(t, s)
}

func TestForest(t *testing.T) {
	s := sampleSystem(t)
	s.ProcessBounded(10)
	f := s.Forest()
	for b := range s.Len() {
		want := s.Members(s.CircuitOf(b))
		got := make([]int, 0, len(want))
		for k := range f.ReachableNodes(b) {
			got = append(got, k)
		}
		slices.Sort(got)
		assert.Equalf(t, want, got, "box %d", b)
	}
	comps := f.Components(func(a, b int) int { return a - b })
	assert.Len(t, comps, s.Live())
}

func TestConnectionEqual(t *testing.T) {
	tests := []struct {
		a, b Connection
		want bool
	}{
		{Connection{0, 1, 2}, Connection{0, 1, 2}, true},
		{Connection{0, 1, 2}, Connection{1, 0, 2}, true},
		{Connection{0, 1, 2}, Connection{0, 1, 3}, false},
		{Connection{0, 1, 2}, Connection{0, 2, 2}, false},
	}
	for _, tt := range tests {
		assert.Equalf(t, tt.want, tt.a.Equal(tt.b), "%v.Equal(%v)", tt.a, tt.b)
	}
}
