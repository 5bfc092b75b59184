package cluster_test

import (
	"fmt"

	"github.com/nightscan/starfield/cluster"
	"github.com/nightscan/starfield/grid"
)

////////////////////////////////////////////////////////////////////////////////
// Example: Count
////////////////////////////////////////////////////////////////////////////////

// ExampleCount demonstrates counting clusters of active cells on a small
// occupancy mask.
// Scenario:
//
//   - 5×4 mask; 1 = active, 0 = background
//   - Conn8 (default): diagonal contact joins cells into one cluster
//
// Expect three clusters: the pair at the top left (diagonal contact), the
// lone cell at the top right, and the run along the bottom row.
func ExampleCount() {
	rows := [][]int{
		{1, 0, 0, 0, 1},
		{0, 1, 0, 0, 0},
		{0, 0, 0, 0, 0},
		{0, 1, 1, 1, 0},
	}
	m, _ := grid.NewMask(len(rows[0]), len(rows))
	for y, row := range rows {
		for x, v := range row {
			if v != 0 {
				m.Set(x, y, true)
			}
		}
	}

	n, _ := cluster.Count(m)
	fmt.Println("clusters:", n)

	// Output:
	// clusters: 3
}

////////////////////////////////////////////////////////////////////////////////
// Example: Components
////////////////////////////////////////////////////////////////////////////////

// ExampleComponents lists each cluster's cells in row-major discovery order.
func ExampleComponents() {
	rows := [][]int{
		{1, 1, 0},
		{0, 0, 0},
		{0, 0, 1},
	}
	m, _ := grid.NewMask(len(rows[0]), len(rows))
	for y, row := range rows {
		for x, v := range row {
			if v != 0 {
				m.Set(x, y, true)
			}
		}
	}

	comps, _ := cluster.Components(m)
	fmt.Println("components:", len(comps))
	for i, comp := range comps {
		fmt.Printf("component %d:", i)
		for _, idx := range comp {
			x, y := m.Coordinate(idx)
			fmt.Printf(" (%d,%d)", x, y)
		}
		fmt.Println()
	}

	// Output:
	// components: 2
	// component 0: (0,0) (1,0)
	// component 1: (2,2)
}
