package grid_test

import (
	"testing"

	"github.com/katalvlaran/gridpath/grid"
)

// sparseField builds an n×n grid with a diagonal band of obstacles that
// never touches the endpoints.
func sparseField(n int) [][]int {
	values := make([][]int, n)
	for y := range values {
		values[y] = make([]int, n)
	}
	for i := 1; i < n-1; i++ {
		values[i][(i+1)%n] = 1
	}

	return values
}

func BenchmarkNewGrid(b *testing.B) {
	values := sparseField(64)
	opts := grid.DefaultGridOptions()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := grid.NewGrid(values, opts); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkDistances(b *testing.B) {
	g, err := grid.NewGrid(sparseField(64), grid.DefaultGridOptions())
	if err != nil {
		b.Fatal(err)
	}
	from := g.Start()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = g.Distances(from)
	}
}
