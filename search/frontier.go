package search

import "container/heap"

// stackFrontier removes the most recently inserted node first (LIFO).
type stackFrontier[S comparable, A any] struct {
	nodes []*Node[S, A]
}

// NewStack returns a LIFO frontier: graph search with it is depth-first.
func NewStack[S comparable, A any]() Frontier[S, A] {
	return &stackFrontier[S, A]{}
}

func (f *stackFrontier[S, A]) Push(n *Node[S, A]) { f.nodes = append(f.nodes, n) }

func (f *stackFrontier[S, A]) Pop() *Node[S, A] {
	last := len(f.nodes) - 1
	n := f.nodes[last]
	f.nodes[last] = nil // release for GC
	f.nodes = f.nodes[:last]

	return n
}

func (f *stackFrontier[S, A]) Len() int { return len(f.nodes) }

// queueFrontier removes the earliest inserted node first (FIFO).
type queueFrontier[S comparable, A any] struct {
	nodes []*Node[S, A]
	head  int
}

// NewQueue returns a FIFO frontier: graph search with it is breadth-first.
func NewQueue[S comparable, A any]() Frontier[S, A] {
	return &queueFrontier[S, A]{}
}

func (f *queueFrontier[S, A]) Push(n *Node[S, A]) { f.nodes = append(f.nodes, n) }

func (f *queueFrontier[S, A]) Pop() *Node[S, A] {
	n := f.nodes[f.head]
	f.nodes[f.head] = nil
	f.head++
	// compact once the consumed prefix dominates the backing array
	if f.head > len(f.nodes)/2 {
		f.nodes = append(f.nodes[:0], f.nodes[f.head:]...)
		f.head = 0
	}

	return n
}

func (f *queueFrontier[S, A]) Len() int { return len(f.nodes) - f.head }

// pqItem pairs a node with its priority key and a monotone sequence number.
// The sequence number makes ties stable: equal keys pop in insertion order.
type pqItem[S comparable, A any] struct {
	node *Node[S, A]
	key  float64
	seq  uint64
}

// nodePQ is a min-heap of *pqItem ordered by (key, seq).
type nodePQ[S comparable, A any] []*pqItem[S, A]

func (pq nodePQ[S, A]) Len() int { return len(pq) }

func (pq nodePQ[S, A]) Less(i, j int) bool {
	if pq[i].key != pq[j].key {
		return pq[i].key < pq[j].key
	}

	return pq[i].seq < pq[j].seq
}

func (pq nodePQ[S, A]) Swap(i, j int) { pq[i], pq[j] = pq[j], pq[i] }

func (pq *nodePQ[S, A]) Push(x any) { *pq = append(*pq, x.(*pqItem[S, A])) }

func (pq *nodePQ[S, A]) Pop() any {
	old := *pq
	n := len(old)
	it := old[n-1]
	old[n-1] = nil
	*pq = old[:n-1]

	return it
}

// priorityFrontier removes the node with the minimum key first, where the key
// is computed once at insertion time. Ties pop in insertion order.
type priorityFrontier[S comparable, A any] struct {
	pq   nodePQ[S, A]
	keyF func(n *Node[S, A]) float64
	seq  uint64
}

// NewCostOrdered returns a frontier ordered by cumulative path cost:
// graph search with it is uniform-cost search (Dijkstra over the state space).
func NewCostOrdered[S comparable, A any]() Frontier[S, A] {
	return &priorityFrontier[S, A]{
		keyF: func(n *Node[S, A]) float64 { return n.Cost },
	}
}

// NewBestFirst returns a frontier ordered by cumulative cost plus h(state):
// graph search with it is A*. A nil h falls back to the Zero heuristic,
// making NewBestFirst(nil) equivalent to NewCostOrdered.
func NewBestFirst[S comparable, A any](h Heuristic[S]) Frontier[S, A] {
	if h == nil {
		h = Zero[S]
	}

	return &priorityFrontier[S, A]{
		keyF: func(n *Node[S, A]) float64 { return n.Cost + h(n.State) },
	}
}

func (f *priorityFrontier[S, A]) Push(n *Node[S, A]) {
	heap.Push(&f.pq, &pqItem[S, A]{node: n, key: f.keyF(n), seq: f.seq})
	f.seq++
}

func (f *priorityFrontier[S, A]) Pop() *Node[S, A] {
	return heap.Pop(&f.pq).(*pqItem[S, A]).node
}

func (f *priorityFrontier[S, A]) Len() int { return f.pq.Len() }
