package ArrayGen

import (
	"fmt"
	"math/rand"
	"time"

	"golang.org/x/exp/slices"
)

const (
	MAX_SIZE        = 100000
	VALUE_RANGE_MIN = 0
	VALUE_RANGE_MAX = 6000

	MIN_TEST_SIZE  = 500
	TEST_SIZE_STEP = 100
)

type Distribution int

const (
	Random Distribution = iota
	ReverseSorted
	AlmostSorted
)

func (d Distribution) String() string {
	switch d {
	case Random:
		return "random"
	case ReverseSorted:
		return "reverse sorted"
	case AlmostSorted:
		return "almost sorted"
	}
	return fmt.Sprintf("Distribution(%d)", int(d))
}

// InvalidSizeError is returned when a prefix longer than the base arrays,
// or a negative one, is requested.
type InvalidSizeError struct {
	Size int
	Max  int
}

func (e *InvalidSizeError) Error() string {
	return fmt.Sprintf("invalid array size %d: must be within [0, %d]", e.Size, e.Max)
}

// Generator holds the three base arrays. They are filled once by New and
// only ever read afterwards; every accessor hands out a fresh copy.
type Generator struct {
	randomArray        []int
	reverseSortedArray []int
	almostSortedArray  []int
}

// New builds the base arrays from rng. A nil rng is replaced with a
// time-seeded source.
func New(rng *rand.Rand) *Generator {
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	g := &Generator{}
	g.generateBaseArrays(rng)
	return g
}

func (g *Generator) generateBaseArrays(rng *rand.Rand) {
	g.randomArray = make([]int, MAX_SIZE)
	for i := range g.randomArray {
		g.randomArray[i] = VALUE_RANGE_MIN + rng.Intn(VALUE_RANGE_MAX-VALUE_RANGE_MIN+1)
	}

	ascending := slices.Clone(g.randomArray)
	slices.Sort(ascending)

	g.reverseSortedArray = slices.Clone(ascending)
	reverse(g.reverseSortedArray)

	g.almostSortedArray = ascending
	MakeAlmostSorted(g.almostSortedArray, rng)
}

/**
Perturbs a (normally sorted) slice with len(a)/100 random index-pair swaps.
Indexes are drawn with replacement, so an element may be swapped with itself
or moved more than once.
*/
func MakeAlmostSorted(a []int, rng *rand.Rand) {
	swapCount := len(a) / 100
	for i := 0; i < swapCount; i++ {
		idx1 := rng.Intn(len(a))
		idx2 := rng.Intn(len(a))
		a[idx1], a[idx2] = a[idx2], a[idx1]
	}
}

func (g *Generator) RandomArray(size int) ([]int, error) {
	return subArray(g.randomArray, size)
}

func (g *Generator) ReverseSortedArray(size int) ([]int, error) {
	return subArray(g.reverseSortedArray, size)
}

func (g *Generator) AlmostSortedArray(size int) ([]int, error) {
	return subArray(g.almostSortedArray, size)
}

// Array dispatches to the accessor for dist.
func (g *Generator) Array(dist Distribution, size int) ([]int, error) {
	switch dist {
	case Random:
		return g.RandomArray(size)
	case ReverseSorted:
		return g.ReverseSortedArray(size)
	case AlmostSorted:
		return g.AlmostSortedArray(size)
	}
	return nil, fmt.Errorf("unknown distribution %v", dist)
}

// TestSizes returns 500, 600, ..., 100000.
func (g *Generator) TestSizes() []int {
	sizes := make([]int, 0, (MAX_SIZE-MIN_TEST_SIZE)/TEST_SIZE_STEP+1)
	for size := MIN_TEST_SIZE; size <= MAX_SIZE; size += TEST_SIZE_STEP {
		sizes = append(sizes, size)
	}
	return sizes
}

func subArray(src []int, size int) ([]int, error) {
	if size < 0 || size > len(src) {
		return nil, &InvalidSizeError{Size: size, Max: len(src)}
	}
	return slices.Clone(src[:size]), nil
}

func reverse(a []int) {
	for low, high := 0, len(a)-1; low < high; low, high = low+1, high-1 {
		a[low], a[high] = a[high], a[low]
	}
}
