package repair_test

import (
	"fmt"

	"github.com/katalvlaran/mstrepair/core"
	"github.com/katalvlaran/mstrepair/repair"
)

// ExampleGraph_Repair removes the weight-3 edge from the sample MST and repairs it.
func ExampleGraph_Repair() {
	g, err := repair.New(5, []core.Edge{
		{U: 0, V: 1, Weight: 2},
		{U: 0, V: 3, Weight: 6},
		{U: 1, V: 2, Weight: 3},
		{U: 1, V: 3, Weight: 8},
		{U: 1, V: 4, Weight: 5},
		{U: 2, V: 4, Weight: 7},
		{U: 3, V: 4, Weight: 9},
	})
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	mst, _ := g.BuildMST()
	fmt.Println("initial:", mst, g.TotalWeight())

	idx, _ := g.IndexOfWeight(3)
	out, err := g.Repair(idx)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println("removed:", out.Removed)
	fmt.Println("components:", out.Partition.A, out.Partition.B)
	fmt.Println("replacement:", out.Replacement)
	fmt.Println("repaired:", g.CurrentMST(), out.Weight)
	// Output:
	// initial: [(0-1: 2) (1-2: 3) (1-4: 5) (0-3: 6)] 16
	// removed: (1-2: 3)
	// components: {0, 1, 3, 4} {2}
	// replacement: (2-4: 7)
	// repaired: [(0-1: 2) (1-4: 5) (0-3: 6) (2-4: 7)] 20
}
