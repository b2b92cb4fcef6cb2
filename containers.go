package aoc

import (
	"container/heap"

	"golang.org/x/exp/constraints"
)

// PQI is an item in a PQ. V is the payload and P its priority.
type PQI[T any, P constraints.Ordered] struct {
	V T
	P P
}

// MaxQueue returns a queue that pops the highest priority first.
func MaxQueue[T any, P constraints.Ordered]() *PQ[T, P] {
	return &PQ[T, P]{}
}

type PQ[T any, P constraints.Ordered] struct {
	pq pq[T, P]
}

func (pq *PQ[T, P]) Push(v *PQI[T, P]) {
	heap.Push(&pq.pq, v)
}

func (pq *PQ[T, P]) Pop() *PQI[T, P] {
	return heap.Pop(&pq.pq).(*PQI[T, P])
}

func (pq *PQ[T, P]) Len() int {
	return pq.pq.Len()
}

type pq[T any, P constraints.Ordered] []*PQI[T, P]

func (pq pq[T, P]) Len() int { return len(pq) }

// Less uses greater than so that Pop gives the highest priority.
func (pq pq[T, P]) Less(i, j int) bool {
	return pq[i].P > pq[j].P
}

func (pq pq[T, P]) Swap(i, j int) {
	pq[i], pq[j] = pq[j], pq[i]
}

func (pq *pq[T, P]) Push(x any) {
	*pq = append(*pq, x.(*PQI[T, P]))
}

func (pq *pq[T, P]) Pop() any {
	old := *pq
	n := len(old)
	item := old[n-1]
	old[n-1] = nil // avoid memory leak
	*pq = old[0 : n-1]
	return item
}

// Largest returns the n highest values in descending order. If there are
// fewer than n values, all of them are returned.
func Largest[P constraints.Ordered](n int, vals ...P) []P {
	q := MaxQueue[int, P]()
	for i, v := range vals {
		q.Push(&PQI[int, P]{V: i, P: v})
	}
	out := make([]P, 0, min(n, len(vals)))
	for len(out) < n && q.Len() > 0 {
		out = append(out, q.Pop().P)
	}
	return out
}
