package sorting

import (
	"math/rand"
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
)

func sorters() map[string]Sorter[int] {
	return map[string]Sorter[int]{
		"bubble":       Bubble[int]{},
		"insertion":    Insertion[int]{},
		"inplacemerge": InPlaceMerge[int]{},
	}
}

func TestSortRandom(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	for name, s := range sorters() {
		t.Run(name, func(t *testing.T) {
			for _, n := range []int{0, 1, 2, 3, 10, 17, 100, 1000} {
				data := make([]int, n)
				for i := range data {
					data[i] = rng.Intn(1000)
				}
				want := slices.Clone(data)
				slices.Sort(want)
				s.Sort(data)
				assert.Equal(t, want, data, "length %d", n)
			}
		})
	}
}

func TestSortShapes(t *testing.T) {
	shapes := map[string][]int{
		"sorted":   {1, 2, 3, 4, 5, 6, 7, 8},
		"reversed": {8, 7, 6, 5, 4, 3, 2, 1},
		"equal":    {4, 4, 4, 4, 4},
		"dups":     {3, 1, 3, 1, 2, 2, 3, 1},
		"organ":    {1, 3, 5, 7, 6, 4, 2, 0},
	}
	for name, s := range sorters() {
		for shape, src := range shapes {
			t.Run(name+"/"+shape, func(t *testing.T) {
				data := slices.Clone(src)
				want := slices.Clone(src)
				slices.Sort(want)
				s.Sort(data)
				assert.Equal(t, want, data)
			})
		}
	}
}

func TestSortStrings(t *testing.T) {
	data := []string{"pear", "apple", "fig", "banana", "cherry"}
	InPlaceMerge[string]{}.Sort(data)
	assert.Equal(t, []string{"apple", "banana", "cherry", "fig", "pear"}, data)
}

func TestRotate(t *testing.T) {
	s := []int{1, 2, 3, 4, 5}
	rotate(s, 2)
	assert.Equal(t, []int{3, 4, 5, 1, 2}, s)
}

func BenchmarkSort(b *testing.B) {
	rng := rand.New(rand.NewSource(1))
	src := make([]int, 1000)
	for i := range src {
		src[i] = rng.Int()
	}
	data := make([]int, len(src))
	for name, s := range sorters() {
		b.Run(name, func(b *testing.B) {
			for i := 0; i < b.N; i++ {
				copy(data, src)
				s.Sort(data)
			}
		})
	}
}
