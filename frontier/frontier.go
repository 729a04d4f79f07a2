// Package frontier implements the vertex-selection step shared by the greedy
// tree builders (Prim and Dijkstra): keep a tentative cost per vertex, lower it
// when a cheaper connection is found, and repeatedly finalize the cheapest
// unfinalized vertex.
//
// Two strategies are provided and produce identical selections:
//
//   - Scan: linear scan over all vertices per selection, O(V²) total.
//   - Heap: binary min-heap with lazy decrease-key, O((V + E) log V) total.
//
// Tie-breaking is deterministic in both: among vertices with equal minimal
// cost the lowest index is selected. Vertices whose cost is still +Inf are
// never selected; Next reports exhaustion instead.
package frontier

import (
	"container/heap"
	"errors"
	"fmt"
	"math"
	"strings"
)

// Strategy selects how Next finds the cheapest unfinalized vertex.
type Strategy int

const (
	// Scan walks all vertices in index order on every Next call.
	Scan Strategy = iota

	// Heap keeps candidates in a binary heap ordered by (cost, index).
	Heap
)

// ErrUnknownStrategy is returned by ParseStrategy for unrecognized names.
var ErrUnknownStrategy = errors.New("frontier: unknown strategy")

// String returns "scan" or "heap".
func (s Strategy) String() string {
	switch s {
	case Scan:
		return "scan"
	case Heap:
		return "heap"
	default:
		return fmt.Sprintf("Strategy(%d)", int(s))
	}
}

// Valid reports whether s is one of the declared strategies.
func (s Strategy) Valid() bool {
	return s == Scan || s == Heap
}

// ParseStrategy maps "scan" / "heap" (case-insensitive) to a Strategy.
func ParseStrategy(name string) (Strategy, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "scan":
		return Scan, nil
	case "heap":
		return Heap, nil
	default:
		return Scan, fmt.Errorf("%w: %q", ErrUnknownStrategy, name)
	}
}

// Frontier tracks tentative costs and finalized flags for n vertices.
// It is single-use and not safe for concurrent use.
type Frontier struct {
	strategy Strategy
	cost     []float64 // best known cost per vertex, +Inf if none
	done     []bool    // finalized flags
	pq       itemPQ    // heap strategy only
}

// New returns a Frontier over n vertices with every cost at +Inf.
// An invalid strategy falls back to Scan.
// Complexity: O(n).
func New(n int, s Strategy) *Frontier {
	if !s.Valid() {
		s = Scan
	}
	f := &Frontier{
		strategy: s,
		cost:     make([]float64, n),
		done:     make([]bool, n),
	}
	for i := range f.cost {
		f.cost[i] = math.Inf(1)
	}
	if s == Heap {
		f.pq = make(itemPQ, 0, n)
	}

	return f
}

// Strategy returns the strategy in use.
func (f *Frontier) Strategy() Strategy { return f.strategy }

// Cost returns the tentative (or final) cost of v.
func (f *Frontier) Cost(v int) float64 { return f.cost[v] }

// Costs returns a copy of all costs.
func (f *Frontier) Costs() []float64 {
	out := make([]float64, len(f.cost))
	copy(out, f.cost)

	return out
}

// Done reports whether v has been finalized by Next.
func (f *Frontier) Done(v int) bool { return f.done[v] }

// Lower sets cost[v] = c if v is not finalized and c is strictly below the
// current cost. It reports whether the cost changed.
func (f *Frontier) Lower(v int, c float64) bool {
	if f.done[v] || !(c < f.cost[v]) {
		return false
	}
	f.cost[v] = c
	if f.strategy == Heap {
		heap.Push(&f.pq, item{v: v, cost: c})
	}

	return true
}

// Next finalizes and returns the unfinalized vertex with minimal finite cost,
// lowest index first on ties. ok is false when no such vertex remains.
func (f *Frontier) Next() (v int, ok bool) {
	if f.strategy == Heap {
		return f.nextHeap()
	}

	return f.nextScan()
}

// nextScan is the O(V) selection: the first strict minimum in index order wins.
func (f *Frontier) nextScan() (int, bool) {
	u := -1
	best := math.Inf(1)
	for i, c := range f.cost {
		if !f.done[i] && c < best {
			best = c
			u = i
		}
	}
	if u < 0 {
		return -1, false
	}
	f.done[u] = true

	return u, true
}

// nextHeap pops until a live entry appears. An entry is stale when its vertex
// is finalized or its cost was lowered after the push.
func (f *Frontier) nextHeap() (int, bool) {
	for f.pq.Len() > 0 {
		it := heap.Pop(&f.pq).(item)
		if f.done[it.v] || it.cost != f.cost[it.v] {
			continue
		}
		f.done[it.v] = true

		return it.v, true
	}

	return -1, false
}

// item is a heap entry: vertex v offered at cost.
type item struct {
	v    int
	cost float64
}

// itemPQ is a min-heap of items ordered by cost, then by vertex index.
type itemPQ []item

func (pq itemPQ) Len() int { return len(pq) }

func (pq itemPQ) Less(i, j int) bool {
	if pq[i].cost != pq[j].cost {
		return pq[i].cost < pq[j].cost
	}

	return pq[i].v < pq[j].v
}

func (pq itemPQ) Swap(i, j int) { pq[i], pq[j] = pq[j], pq[i] }

func (pq *itemPQ) Push(x interface{}) { *pq = append(*pq, x.(item)) }

func (pq *itemPQ) Pop() interface{} {
	old := *pq
	n := len(old)
	it := old[n-1]
	*pq = old[:n-1]

	return it
}
