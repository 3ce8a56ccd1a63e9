// Package core_test provides benchmarks for core.Graph operations.
package core_test

import (
	"testing"

	"github.com/katalvlaran/skelgraph/core"
)

// BenchmarkConnectNodes measures edge insertion into a growing star.
func BenchmarkConnectNodes(b *testing.B) {
	g := core.NewGraph()
	center := g.AddNode()
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = g.ConnectNodes(center, g.AddNode())
	}
}

// BenchmarkNeighbors measures neighbor enumeration on a 1000-leaf star.
func BenchmarkNeighbors(b *testing.B) {
	g := core.NewGraph()
	center := g.AddNode()
	for i := 0; i < 1000; i++ {
		_, _ = g.ConnectNodes(center, g.AddNode())
	}
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = g.Neighbors(center)
	}
}

// BenchmarkReassignNodeID measures repeated merges along a chain.
func BenchmarkReassignNodeID(b *testing.B) {
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		b.StopTimer()
		g := core.NewGraph()
		prev := g.AddNode()
		for j := 0; j < 256; j++ {
			n := g.AddNode()
			_, _ = g.ConnectNodes(prev, n)
			prev = n
		}
		b.StartTimer()
		for j := core.NodeID(1); j < 256; j++ {
			_ = g.ReassignNodeID(j, 0, true)
		}
	}
}
