package astar_test

import (
	"fmt"

	"github.com/katalvlaran/hotyard/astar"
	"github.com/katalvlaran/hotyard/container"
	"github.com/katalvlaran/hotyard/yard"
)

func ExampleSolve() {
	s := yard.New(2, 2, 4000)
	s.Seed(0, container.New("A", 0, 600))

	sol, err := astar.Solve(*s,
		astar.WithTimings(astar.Timings{CraneMoveS: 10, CraneLowerS: 5, CraneLiftS: 5, ClearingS: 60}),
		astar.WithMaxNodes(5000),
	)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println("found:", sol.Found)
	// Output:
	// found: true
}
