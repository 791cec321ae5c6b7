package builder_test

import (
	"fmt"

	"github.com/katalvlaran/adjset/adjacency"
	"github.com/katalvlaran/adjset/builder"
	"github.com/katalvlaran/adjset/core"
)

// ExampleBuilder demonstrates staging, freezing, and repair after a failed
// freeze never being needed on a consistent build.
func ExampleBuilder() {
	a, b, c := core.NewVertex("A"), core.NewVertex("B"), core.NewVertex("C")
	ab, _ := core.New(a, b)
	bc, _ := core.New(b, c)

	// 1) Stage two edges (endpoints are auto-created):
	bld := builder.New().AddEdge(ab).AddEdge(bc)

	// 2) Freeze through the validation pipeline:
	st := adjacency.NewStatus()
	g, ok := bld.Build(st)
	fmt.Println("built:", ok, "status:", st)
	fmt.Print(g)

	// Output:
	// built: true status: ok
	// AdjacencySets:
	//    A --> [(A --- B)]
	//    B --> [(B --- A), (B --- C)]
	//    C --> [(C --- B)]
}

// ExampleBuilder_Contract demonstrates merging two adjacent vertices.
func ExampleBuilder_Contract() {
	a, b, c := core.NewVertex("A"), core.NewVertex("B"), core.NewVertex("C")
	ab, _ := core.New(a, b)
	bc, _ := core.New(b, c)

	bld := builder.New().AddEdge(ab).AddEdge(bc)

	// Contract A—B: both endpoints merge into AB, B—C rewires to AB—C.
	merged, err := bld.Contract(ab)
	if err != nil {
		fmt.Println("contract failed:", err)
		return
	}
	fmt.Println("merged vertex:", merged)
	fmt.Print(bld)

	// Output:
	// merged vertex: AB
	// Builder:
	//    AB --> [(AB --- C)]
	//    C --> [(C --- AB)]
}
