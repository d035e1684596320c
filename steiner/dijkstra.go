package steiner

import (
	"container/heap"

	"github.com/routegraph/steinergrid/graph"
)

// nodeItem is one entry in Dijkstra's priority queue.
type nodeItem struct {
	id   int
	dist int
}

// nodePQ implements heap.Interface over []*nodeItem, ordered by
// smallest dist first.
type nodePQ []*nodeItem

func (pq nodePQ) Len() int            { return len(pq) }
func (pq nodePQ) Less(i, j int) bool  { return pq[i].dist < pq[j].dist }
func (pq nodePQ) Swap(i, j int)       { pq[i], pq[j] = pq[j], pq[i] }
func (pq *nodePQ) Push(x interface{}) { *pq = append(*pq, x.(*nodeItem)) }
func (pq *nodePQ) Pop() interface{} {
	old := *pq
	n := len(old)
	it := old[n-1]
	*pq = old[:n-1]

	return it
}

// dijkstra runs a single-source shortest-paths search from start over
// g's non-negative integer edge weights. dist only contains entries
// for reachable vertices. parent[v] is v's predecessor on the shortest
// path from start; ties are broken deterministically by keeping the
// first relaxation encountered in Dijkstra's popped-node order (a
// later equal-distance relaxation never overwrites an earlier one).
//
// Complexity: O((V+E) log V).
func dijkstra(g *graph.Graph, start int) (dist map[int]int, parent map[int]int) {
	dist = map[int]int{start: 0}
	parent = make(map[int]int)
	visited := make(map[int]bool)

	pq := &nodePQ{}
	heap.Init(pq)
	heap.Push(pq, &nodeItem{id: start, dist: 0})

	for pq.Len() > 0 {
		u := heap.Pop(pq).(*nodeItem)
		if visited[u.id] {
			continue
		}
		visited[u.id] = true

		for _, e := range g.Neighbors(u.id) {
			if visited[e.To] {
				continue
			}
			nd := dist[u.id] + e.Weight
			if d, ok := dist[e.To]; !ok || nd < d {
				dist[e.To] = nd
				parent[e.To] = u.id
				heap.Push(pq, &nodeItem{id: e.To, dist: nd})
			}
		}
	}

	return dist, parent
}

// vertexPath reconstructs the ordered vertex sequence from "from" to
// "to" using the parent map produced by dijkstra(g, from).
func vertexPath(parent map[int]int, from, to int) []int {
	rev := []int{to}
	cur := to
	for cur != from {
		p, ok := parent[cur]
		if !ok {
			break
		}
		cur = p
		rev = append(rev, cur)
	}
	for i, j := 0, len(rev)-1; i < j; i, j = i+1, j-1 {
		rev[i], rev[j] = rev[j], rev[i]
	}

	return rev
}

// edgesFromVertices looks up the underlying graph.Edge for each
// consecutive pair in an ordered vertex path.
func edgesFromVertices(g *graph.Graph, vertices []int) []graph.Edge {
	edges := make([]graph.Edge, 0, len(vertices)-1)
	for i := 0; i+1 < len(vertices); i++ {
		edges = append(edges, findEdge(g, vertices[i], vertices[i+1]))
	}

	return edges
}

func findEdge(g *graph.Graph, u, v int) graph.Edge {
	for _, e := range g.Neighbors(u) {
		if e.To == v {
			return e
		}
	}

	return graph.Edge{From: u, To: v}
}

func sumWeights(edges []graph.Edge) int {
	total := 0
	for _, e := range edges {
		total += e.Weight
	}

	return total
}
