package SortTester

import (
	"fmt"
	"io"
	"os"
	"time"

	"MergeSortBench/ArrayGen"
	"MergeSortBench/MergeSort"
)

const (
	NUM_TRIALS = 5
	// progress is printed for sizes divisible by this, plus the first size
	PROGRESS_STEP = 10000
)

type Algorithm int

const (
	Standard Algorithm = iota
	Hybrid
)

func (a Algorithm) String() string {
	switch a {
	case Standard:
		return "standard"
	case Hybrid:
		return "hybrid"
	}
	return fmt.Sprintf("Algorithm(%d)", int(a))
}

// SortFunc returns the in-place sort implementing a.
func (a Algorithm) SortFunc() func([]int) {
	switch a {
	case Standard:
		return MergeSort.MergeSort[int]
	case Hybrid:
		return MergeSort.HybridMergeSort[int]
	}
	return nil
}

type Result struct {
	Size   int
	Micros float64
}

type SortTester struct {
	Trials int
	Out    io.Writer
	// Sizes overrides the generator's test sizes when non-nil.
	// Progress is then printed for its first entry instead of size 500.
	Sizes []int
}

func New() *SortTester {
	return &SortTester{Trials: NUM_TRIALS, Out: os.Stdout}
}

// MeasureTime sorts a private copy of arr and returns the elapsed whole microseconds.
func (s *SortTester) MeasureTime(arr []int, sortFn func([]int)) int64 {
	work := make([]int, len(arr))
	copy(work, arr)
	start := time.Now()
	sortFn(work)
	return time.Since(start).Microseconds()
}

// AverageTime is the arithmetic mean of s.Trials MeasureTime runs.
func (s *SortTester) AverageTime(arr []int, sortFn func([]int)) float64 {
	trials := s.Trials
	if trials <= 0 {
		trials = NUM_TRIALS
	}
	var total int64
	for i := 0; i < trials; i++ {
		total += s.MeasureTime(arr, sortFn)
	}
	return float64(total) / float64(trials)
}

func (s *SortTester) TestStandardSorting(gen *ArrayGen.Generator, dist ArrayGen.Distribution) ([]Result, error) {
	return s.TestSorting(gen, Standard, dist)
}

func (s *SortTester) TestHybridSorting(gen *ArrayGen.Generator, dist ArrayGen.Distribution) ([]Result, error) {
	return s.TestSorting(gen, Hybrid, dist)
}

/**
Runs alg over every test size of gen for one distribution and returns one
Result per size, in size order.
*/
func (s *SortTester) TestSorting(gen *ArrayGen.Generator, alg Algorithm, dist ArrayGen.Distribution) ([]Result, error) {
	sortFn := alg.SortFunc()
	if sortFn == nil {
		return nil, fmt.Errorf("unknown algorithm %v", alg)
	}

	switch alg {
	case Hybrid:
		s.printf("Testing %v hybrid sort (threshold=%d)...\n", dist, MergeSort.INSERTION_THRESHOLD)
	default:
		s.printf("Testing %v merge sort\n", dist)
	}

	sizes := s.Sizes
	if sizes == nil {
		sizes = gen.TestSizes()
	}
	results := make([]Result, 0, len(sizes))
	for i, size := range sizes {
		arr, err := gen.Array(dist, size)
		if err != nil {
			return nil, fmt.Errorf("%v %v, size %d: %w", alg, dist, size, err)
		}
		avg := s.AverageTime(arr, sortFn)
		results = append(results, Result{Size: size, Micros: avg})

		if size%PROGRESS_STEP == 0 || i == 0 {
			s.printf("Size: %d, Time: %g μs\n", size, avg)
		}
	}
	return results, nil
}

func (s *SortTester) printf(format string, args ...interface{}) {
	if s.Out == nil {
		return
	}
	fmt.Fprintf(s.Out, format, args...)
}
