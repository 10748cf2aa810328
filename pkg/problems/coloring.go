package problems

import (
	"fmt"
	"math/rand"

	"github.com/gitrdm/gocsp/pkg/csp"
)

// GraphColoring models graph coloring: one variable per node with the color
// domain 0..k-1, and a NotEqual constraint per edge.
type GraphColoring struct {
	nodes     []string
	edges     [][2]int
	numColors int
	name      string
}

// NewGraphColoring creates a coloring problem over the given nodes and
// edges (pairs of node indices). Returns an error for an empty node list,
// a non-positive color count, or an edge index out of range.
func NewGraphColoring(nodes []string, edges [][2]int, numColors int, name string) (*GraphColoring, error) {
	if len(nodes) == 0 {
		return nil, fmt.Errorf("graph coloring: no nodes")
	}
	if numColors <= 0 {
		return nil, fmt.Errorf("graph coloring: need at least one color, got %d", numColors)
	}
	for _, e := range edges {
		if e[0] < 0 || e[0] >= len(nodes) || e[1] < 0 || e[1] >= len(nodes) {
			return nil, fmt.Errorf("graph coloring: edge (%d,%d) out of range", e[0], e[1])
		}
	}
	if name == "" {
		name = "GraphColoring"
	}
	nodesCopy := make([]string, len(nodes))
	copy(nodesCopy, nodes)
	edgesCopy := make([][2]int, len(edges))
	copy(edgesCopy, edges)

	return &GraphColoring{nodes: nodesCopy, edges: edgesCopy, numColors: numColors, name: name}, nil
}

// CSP builds the constraint problem.
func (g *GraphColoring) CSP() (*csp.CSP[int], error) {
	b := csp.NewBuilder[int](g.name)

	vars := make([]*csp.Variable[int], len(g.nodes))
	for i, node := range g.nodes {
		v, err := b.AddVariable(node, csp.IntRange(0, g.numColors-1))
		if err != nil {
			return nil, err
		}
		vars[i] = v
	}

	for _, e := range g.edges {
		if err := b.AddConstraint(csp.NewNotEqual(vars[e[0]], vars[e[1]])); err != nil {
			return nil, err
		}
	}
	return b.Build()
}

// Name returns the problem's display name.
func (g *GraphColoring) Name() string {
	return fmt.Sprintf("%s (%d nodes, %d edges, %d colors)", g.name, len(g.nodes), len(g.edges), g.numColors)
}

// Description returns a one-line description.
func (g *GraphColoring) Description() string {
	return fmt.Sprintf("Color %d nodes with %d colors such that no adjacent nodes have the same color.", len(g.nodes), g.numColors)
}

// Nodes returns the node names.
func (g *GraphColoring) Nodes() []string { return g.nodes }

// Edges returns the edge list.
func (g *GraphColoring) Edges() [][2]int { return g.edges }

// NumColors returns the color count.
func (g *GraphColoring) NumColors() int { return g.numColors }

// PetersenGraph returns the Petersen graph with the given color count.
func PetersenGraph(numColors int) (*GraphColoring, error) {
	nodes := make([]string, 10)
	for i := range nodes {
		nodes[i] = fmt.Sprintf("N%d", i)
	}
	edges := [][2]int{
		// Outer pentagon.
		{0, 1}, {1, 2}, {2, 3}, {3, 4}, {4, 0},
		// Inner pentagram.
		{5, 7}, {7, 9}, {9, 6}, {6, 8}, {8, 5},
		// Spokes.
		{0, 5}, {1, 6}, {2, 7}, {3, 8}, {4, 9},
	}
	return NewGraphColoring(nodes, edges, numColors, "Petersen")
}

// CompleteGraph returns K_n with the given color count.
func CompleteGraph(n, numColors int) (*GraphColoring, error) {
	nodes := make([]string, n)
	for i := range nodes {
		nodes[i] = fmt.Sprintf("N%d", i)
	}
	var edges [][2]int
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			edges = append(edges, [2]int{i, j})
		}
	}
	return NewGraphColoring(nodes, edges, numColors, fmt.Sprintf("K%d", n))
}

// CycleGraph returns C_n with the given color count.
func CycleGraph(n, numColors int) (*GraphColoring, error) {
	nodes := make([]string, n)
	for i := range nodes {
		nodes[i] = fmt.Sprintf("N%d", i)
	}
	edges := make([][2]int, 0, n)
	for i := 0; i < n; i++ {
		edges = append(edges, [2]int{i, (i + 1) % n})
	}
	return NewGraphColoring(nodes, edges, numColors, fmt.Sprintf("C%d", n))
}

// RandomGraph returns a seeded Erdős–Rényi style graph: each pair becomes
// an edge with the given probability.
func RandomGraph(numNodes int, edgeProbability float64, numColors int, seed int64) (*GraphColoring, error) {
	rng := rand.New(rand.NewSource(seed))
	nodes := make([]string, numNodes)
	for i := range nodes {
		nodes[i] = fmt.Sprintf("N%d", i)
	}
	var edges [][2]int
	for i := 0; i < numNodes; i++ {
		for j := i + 1; j < numNodes; j++ {
			if rng.Float64() < edgeProbability {
				edges = append(edges, [2]int{i, j})
			}
		}
	}
	return NewGraphColoring(nodes, edges, numColors, "Random")
}
