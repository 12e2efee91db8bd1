package aoc

import (
	"slices"

	"golang.org/x/exp/maps"
)

type Graph[K comparable] struct {
	Nodes map[K]bool
	Edges map[K]map[K]int
}

func (g *Graph[K]) Clone() *Graph[K] {
	var out Graph[K]
	out.Nodes = maps.Clone(g.Nodes)
	out.Edges = maps.Clone(g.Edges)
	for k, e := range g.Edges {
		out.Edges[k] = maps.Clone(e)
	}
	return &out
}

func (g *Graph[K]) ReachableNodes(a K) map[K]bool {
	visited := make(map[K]bool)
	var q Queue[K]
	q.Push(a)
	q.While(func(v K) bool {
		if visited[v] {
			return true
		}
		visited[v] = true
		for k := range g.Edges[v] {
			q.Push(k)
		}
		return true
	})
	return visited
}

// Components returns the connected components of the graph. Each component
// is sorted with less, and the components are ordered by their first node.
func (g *Graph[K]) Components(less func(a, b K) int) [][]K {
	seen := make(map[K]bool, len(g.Nodes))
	var out [][]K
	for n := range g.Nodes {
		if seen[n] {
			continue
		}
		c := maps.Keys(g.ReachableNodes(n))
		for _, k := range c {
			seen[k] = true
		}
		slices.SortFunc(c, less)
		out = append(out, c)
	}
	slices.SortFunc(out, func(a, b []K) int {
		return less(a[0], b[0])
	})
	return out
}

func (g *Graph[K]) AddNode(a K) {
	InitMap(&g.Nodes)
	g.Nodes[a] = true
}

func (g *Graph[K]) AddEdge(a, b K, dist int) {
	InitMap(&g.Edges)
	InitMap(&g.Nodes)
	if g.Edges[a] == nil {
		g.Edges[a] = make(map[K]int)
	}
	if g.Edges[b] == nil {
		g.Edges[b] = make(map[K]int)
	}
	g.Edges[a][b] = dist
	g.Edges[b][a] = dist
	g.Nodes[a] = true
	g.Nodes[b] = true
}

func InitMap[K comparable, V any](m *map[K]V) {
	if *m == nil {
		*m = make(map[K]V)
	}
}
