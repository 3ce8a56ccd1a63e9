package mst_test

import (
	"fmt"

	"github.com/katalvlaran/skelgraph/graph3d"
	"github.com/katalvlaran/skelgraph/mst"
)

// ExampleMinimumSpanningTree extracts a tree from a small skeleton with one redundant edge.
// The 2-3 edge closes a cycle and is the one left out.
func ExampleMinimumSpanningTree() {
	g := graph3d.NewGraph()
	g.AddNode(graph3d.Vec3{0, 0, 0})
	g.AddNode(graph3d.Vec3{1, 0, 0})
	g.AddNode(graph3d.Vec3{1, 2, 0})
	g.AddNode(graph3d.Vec3{0, 0, 4})
	_, _ = g.ConnectNodes(0, 1)
	_, _ = g.ConnectNodes(1, 2)
	_, _ = g.ConnectNodes(0, 3)
	_, _ = g.ConnectNodes(2, 3)

	tree, err := mst.MinimumSpanningTree(g)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	for _, e := range tree.Edges() {
		fmt.Printf("%d-%d ", e.A, e.B)
	}
	fmt.Printf("(%.1f)\n", tree.TotalEdgeLength())

	_, total, _ := mst.Kruskal(g)
	fmt.Printf("kruskal: %.1f\n", total)
	// Output:
	// 0-1 1-2 0-3 (7.0)
	// kruskal: 7.0
}
