package aoc

import (
	"container/heap"
	"fmt"

	"golang.org/x/exp/constraints"
)

type Stack[T any] struct {
	s []T
}

func (s *Stack[T]) Push(v T) {
	s.s = append(s.s, v)
}

func (s *Stack[T]) Pop() (T, bool) {
	if len(s.s) == 0 {
		var zero T
		return zero, false
	}
	v := s.s[len(s.s)-1]
	s.s = s.s[:len(s.s)-1]
	return v, true
}

func (s *Stack[T]) Peek() (T, bool) {
	if len(s.s) == 0 {
		var zero T
		return zero, false
	}
	return s.s[len(s.s)-1], true
}

func (s *Stack[T]) Len() int {
	return len(s.s)
}

// Values returns the stack contents from bottom to top. The returned slice
// aliases the stack.
func (s *Stack[T]) Values() []T {
	return s.s
}

// PQI is an item in a PQ. V is the value and P its priority.
type PQI[T any, Pri constraints.Ordered] struct {
	V  T
	P  Pri
	ix int
}

func (i *PQI[T, Pri]) String() string {
	return fmt.Sprintf("%v:%v", i.V, i.P)
}

// Index returns the position of the item in the queue, or -1 once it has
// been popped.
func (i *PQI[T, Pri]) Index() int {
	return i.ix
}

// MinQueue returns a queue that pops the lowest priority first.
func MinQueue[T any, Pri constraints.Ordered]() *PQ[T, Pri] {
	return &PQ[T, Pri]{
		pq: pq[T, Pri]{
			min: true,
		},
	}
}

// MaxQueue returns a queue that pops the highest priority first. It is
// equivalent to the zero PQ.
func MaxQueue[T any, Pri constraints.Ordered]() *PQ[T, Pri] {
	return &PQ[T, Pri]{}
}

type PQ[T any, Pri constraints.Ordered] struct {
	pq pq[T, Pri]
}

func (pq *PQ[T, Pri]) Push(v *PQI[T, Pri]) {
	heap.Push(&pq.pq, v)
}

// Pop removes and returns the next item. It panics if the queue is empty.
func (pq *PQ[T, Pri]) Pop() *PQI[T, Pri] {
	return heap.Pop(&pq.pq).(*PQI[T, Pri])
}

// PopOk is like Pop but reports false instead of panicking on an empty
// queue.
func (pq *PQ[T, Pri]) PopOk() (*PQI[T, Pri], bool) {
	if pq.Len() == 0 {
		return nil, false
	}
	return pq.Pop(), true
}

func (pq *PQ[T, Pri]) Update(v *PQI[T, Pri]) {
	heap.Fix(&pq.pq, v.ix)
}

func (pq *PQ[T, Pri]) Peek() *PQI[T, Pri] {
	return pq.pq.q[0]
}

func (pq *PQ[T, Pri]) Len() int {
	return pq.pq.Len()
}

// Grow makes room for n more items without reallocating.
func (pq *PQ[T, Pri]) Grow(n int) {
	if cap(pq.pq.q)-len(pq.pq.q) < n {
		q := make([]*PQI[T, Pri], len(pq.pq.q), len(pq.pq.q)+n)
		copy(q, pq.pq.q)
		pq.pq.q = q
	}
}

type pq[T any, Pri constraints.Ordered] struct {
	q   []*PQI[T, Pri]
	min bool
}

func (pq pq[T, Pri]) Len() int { return len(pq.q) }

func (pq pq[T, Pri]) Less(i, j int) bool {
	// heap pops the "least" item, so a max queue compares with greater than.
	if pq.min {
		return pq.q[i].P < pq.q[j].P
	}
	return pq.q[i].P > pq.q[j].P
}

func (pq pq[T, Pri]) Swap(i, j int) {
	q := pq.q
	q[i], q[j] = q[j], q[i]
	q[i].ix = i
	q[j].ix = j
}

func (pq *pq[T, Pri]) Push(x any) {
	n := len(pq.q)
	i := x.(*PQI[T, Pri])
	i.ix = n
	pq.q = append(pq.q, i)
}

func (pq *pq[T, Pri]) Pop() any {
	old := pq.q
	n := len(old)
	item := old[n-1]
	old[n-1] = nil // avoid memory leak
	item.ix = -1   // for safety

	pq.q = old[0 : n-1]
	return item
}

func NewQueue[T any](in ...T) Queue[T] {
	return Queue[T]{
		q: in,
	}
}

type Queue[T any] struct {
	q []T
}

func (q *Queue[T]) Len() int {
	return len(q.q)
}

func (q *Queue[T]) Push(v T) {
	q.q = append(q.q, v)
}

func (q *Queue[T]) Pop() (T, bool) {
	if len(q.q) == 0 {
		var zero T
		return zero, false
	}
	v := q.q[0]
	q.q = q.q[1:]
	return v, true
}

func (q *Queue[T]) While(f func(T) bool) {
	for {
		v, ok := q.Pop()
		if !ok {
			return
		}
		if !f(v) {
			return
		}
	}
}
