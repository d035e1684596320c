package steiner

import (
	"container/heap"
	"sort"

	"github.com/routegraph/steinergrid/graph"
)

// pathRecord is a terminal-to-terminal shortest path: a "short path"
// summary (source, dest, weight) plus its "full path" (the ordered
// vertex/edge sequence that realizes it).
type pathRecord struct {
	source, dest int
	weight       int
	vertices     []int
	edges        []graph.Edge
}

// pathPQ implements heap.Interface over []*pathRecord, ordered by
// ascending weight with ties broken by (source, destination).
type pathPQ []*pathRecord

func (pq pathPQ) Len() int { return len(pq) }
func (pq pathPQ) Less(i, j int) bool {
	if pq[i].weight != pq[j].weight {
		return pq[i].weight < pq[j].weight
	}
	if pq[i].source != pq[j].source {
		return pq[i].source < pq[j].source
	}

	return pq[i].dest < pq[j].dest
}
func (pq pathPQ) Swap(i, j int)       { pq[i], pq[j] = pq[j], pq[i] }
func (pq *pathPQ) Push(x interface{}) { *pq = append(*pq, x.(*pathRecord)) }
func (pq *pathPQ) Pop() interface{} {
	old := *pq
	n := len(old)
	it := old[n-1]
	*pq = old[:n-1]

	return it
}

func newPathPQ(paths []pathRecord) *pathPQ {
	pq := make(pathPQ, len(paths))
	for i := range paths {
		p := paths[i]
		pq[i] = &p
	}
	heap.Init(&pq)

	return &pq
}

// Solve approximates the minimum Steiner tree spanning g's Terminals,
// using the two-phase Dijkstra + Kruskal algorithm described in this
// package's doc comment.
//
// Contracts: never fails on a connected input; the returned edges,
// viewed as an undirected graph, are connected, acyclic, and span
// Terminals; for |Terminals| <= 2 the result is the direct shortest
// path (or empty for a single terminal); the result is deterministic
// given the graph's vertex and adjacency ordering.
//
// Complexity: Phase A is O(|T|*(|E|+|V|)*log|V|); each Kruskal pass is
// O(|E_H|*log|E_H|*alpha(|V|)).
func Solve(g *graph.Graph) []graph.Edge {
	terminals := g.Terminals()
	if len(terminals) <= 1 {
		return nil
	}

	paths := phaseA(g, terminals)
	accepted, steinerPoints := firstKruskalPass(paths, terminals)

	k := make(map[int]bool, len(terminals)+len(steinerPoints))
	for _, t := range terminals {
		k[t] = true
	}
	for v := range steinerPoints {
		k[v] = true
	}

	var segments []pathRecord
	for _, p := range accepted {
		segments = append(segments, splitAtSteinerPoints(p, k)...)
	}

	kList := make([]int, 0, len(k))
	for v := range k {
		kList = append(kList, v)
	}
	sort.Ints(kList)

	return dedupeEdges(secondKruskalPass(segments, kList))
}

// phaseA runs Dijkstra from every terminal and records, for every
// unordered terminal pair reachable from each other, one pathRecord.
func phaseA(g *graph.Graph, terminals []int) []pathRecord {
	seen := make(map[[2]int]bool)
	var out []pathRecord

	for _, t := range terminals {
		dist, parent := dijkstra(g, t)
		for _, u := range terminals {
			if u == t {
				continue
			}
			if _, reachable := dist[u]; !reachable {
				continue
			}
			key := sortedPair(t, u)
			if seen[key] {
				continue
			}
			seen[key] = true

			vertices := vertexPath(parent, t, u)
			edges := edgesFromVertices(g, vertices)
			out = append(out, pathRecord{
				source: t, dest: u, weight: dist[u],
				vertices: vertices, edges: edges,
			})
		}
	}

	return out
}

// firstKruskalPass builds the auxiliary graph H over the terminals
// from Phase A's short paths and runs Kruskal over a priority queue,
// promoting any non-terminal vertex visited by two different accepted
// full paths to a Steiner terminal.
func firstKruskalPass(paths []pathRecord, terminals []int) (accepted []pathRecord, steinerPoints map[int]bool) {
	ds := newDisjointSet()
	for _, t := range terminals {
		ds.makeSet(t)
	}
	steinerPoints = make(map[int]bool)

	pq := newPathPQ(paths)
	for pq.Len() > 0 && !ds.isSingleComponent(terminals) {
		p := heap.Pop(pq).(*pathRecord)
		if ds.find(p.source) == ds.find(p.dest) {
			continue
		}
		ds.union(p.source, p.dest)
		accepted = append(accepted, *p)

		for _, v := range interiorVertices(p.vertices) {
			if !ds.has(v) {
				ds.makeSet(v)
				ds.union(v, p.source)
			} else {
				steinerPoints[v] = true
			}
		}
	}

	return accepted, steinerPoints
}

// splitAtSteinerPoints cuts a full path into sub-paths at every vertex
// belonging to K (the terminals union the promoted Steiner points),
// producing a refined collection of short paths and matching full
// paths between vertices of K.
func splitAtSteinerPoints(p pathRecord, k map[int]bool) []pathRecord {
	var segments []pathRecord
	segStart := 0
	for i := 1; i < len(p.vertices); i++ {
		if !k[p.vertices[i]] {
			continue
		}
		segEdges := p.edges[segStart:i]
		segments = append(segments, pathRecord{
			source:   p.vertices[segStart],
			dest:     p.vertices[i],
			weight:   sumWeights(segEdges),
			vertices: append([]int(nil), p.vertices[segStart:i+1]...),
			edges:    append([]graph.Edge(nil), segEdges...),
		})
		segStart = i
	}

	return segments
}

// secondKruskalPass runs Kruskal a second time over the refined
// k-short paths, seeded with a fresh disjoint set over K, stopping
// once |K|-1 edges have been accepted. Each accepted k-short path
// contributes its underlying k-full path's edges to the final tree.
func secondKruskalPass(segments []pathRecord, k []int) []graph.Edge {
	ds := newDisjointSet()
	for _, v := range k {
		ds.makeSet(v)
	}

	var final []graph.Edge
	target := len(k) - 1
	if target <= 0 {
		return final
	}

	pq := newPathPQ(segments)
	accepted := 0
	for pq.Len() > 0 && accepted < target {
		p := heap.Pop(pq).(*pathRecord)
		if ds.find(p.source) == ds.find(p.dest) {
			continue
		}
		ds.union(p.source, p.dest)
		final = append(final, p.edges...)
		accepted++
	}

	return final
}

func interiorVertices(vertices []int) []int {
	if len(vertices) <= 2 {
		return nil
	}

	return vertices[1 : len(vertices)-1]
}

func sortedPair(a, b int) [2]int {
	if a > b {
		a, b = b, a
	}

	return [2]int{a, b}
}

// dedupeEdges removes duplicate underlying graph edges that can arise
// when two accepted k-short paths happen to share an underlying
// segment, and sorts the result for deterministic output.
func dedupeEdges(edges []graph.Edge) []graph.Edge {
	seen := make(map[[2]int]bool, len(edges))
	out := make([]graph.Edge, 0, len(edges))
	for _, e := range edges {
		key := sortedPair(e.From, e.To)
		if seen[key] {
			continue
		}
		seen[key] = true
		out = append(out, e)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].From != out[j].From {
			return out[i].From < out[j].From
		}

		return out[i].To < out[j].To
	})

	return out
}
