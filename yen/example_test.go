package yen_test

import (
	"context"
	"fmt"

	"github.com/katalvlaran/yenksp/graph"
	"github.com/katalvlaran/yenksp/paths"
	"github.com/katalvlaran/yenksp/yen"
)

// ExampleEngine_KShortestPaths lists every loopless route of a small graph.
func ExampleEngine_KShortestPaths() {
	g, _ := graph.New(4)
	_ = g.SetEdge(0, 1, 1)
	_ = g.SetEdge(1, 2, 1)
	_ = g.SetEdge(0, 2, 4)
	_ = g.SetEdge(2, 3, 1)
	_ = g.SetEdge(1, 3, 5)

	res, err := yen.NewEngine().KShortestPaths(context.Background(), g, 0, 3, 5)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	for i, p := range res.Paths {
		fmt.Printf("k=%d cost=%d %s\n", i+1, res.Costs[i], paths.String(p))
	}
	// Output:
	// k=1 cost=3 0 -> 1 -> 2 -> 3
	// k=2 cost=5 0 -> 2 -> 3
	// k=3 cost=6 0 -> 1 -> 3
}
