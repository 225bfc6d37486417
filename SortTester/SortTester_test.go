package SortTester

import (
	"bytes"
	"errors"
	"math/rand"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"MergeSortBench/ArrayGen"
)

func newGen() *ArrayGen.Generator {
	return ArrayGen.New(rand.New(rand.NewSource(1)))
}

func TestAlgorithmSortFunc(t *testing.T) {
	for _, alg := range []Algorithm{Standard, Hybrid} {
		a := []int{5, 3, 3, 1, 2}
		alg.SortFunc()(a)
		require.Equal(t, []int{1, 2, 3, 3, 5}, a, alg.String())
	}
	require.Nil(t, Algorithm(7).SortFunc())
}

func TestStandardAndHybridAgree(t *testing.T) {
	g := newGen()
	for _, dist := range []ArrayGen.Distribution{ArrayGen.Random, ArrayGen.ReverseSorted, ArrayGen.AlmostSorted} {
		a, err := g.Array(dist, 20000)
		require.NoError(t, err)
		b, err := g.Array(dist, 20000)
		require.NoError(t, err)
		Standard.SortFunc()(a)
		Hybrid.SortFunc()(b)
		require.Equal(t, a, b, dist.String())
	}
}

func TestMeasureTimeSortsCopy(t *testing.T) {
	s := &SortTester{Trials: 1}
	in := []int{3, 2, 1}
	var seen []int
	elapsed := s.MeasureTime(in, func(a []int) {
		a[0] = 99
		seen = a
		time.Sleep(2 * time.Millisecond)
	})
	require.GreaterOrEqual(t, elapsed, int64(2000))
	require.Equal(t, []int{3, 2, 1}, in)
	require.Equal(t, []int{99, 2, 1}, seen)
}

func TestAverageTimeRunsEveryTrial(t *testing.T) {
	s := New()
	in := []int{4, 1, 3}
	calls := 0
	avg := s.AverageTime(in, func(a []int) {
		calls++
		require.Equal(t, []int{4, 1, 3}, a)
		a[0] = 0
	})
	require.Equal(t, NUM_TRIALS, calls)
	require.GreaterOrEqual(t, avg, 0.0)
}

func TestAverageTimeIsMean(t *testing.T) {
	s := &SortTester{Trials: 2}
	n := 0
	avg := s.AverageTime([]int{1}, func([]int) {
		n++
		if n == 2 {
			time.Sleep(4 * time.Millisecond)
		}
	})
	// one fast trial and one of at least 4ms
	require.GreaterOrEqual(t, avg, 2000.0)
}

func TestTestSorting(t *testing.T) {
	var out bytes.Buffer
	s := &SortTester{Trials: 1, Out: &out, Sizes: []int{500, 600, 10000}}
	g := newGen()

	results, err := s.TestStandardSorting(g, ArrayGen.Random)
	require.NoError(t, err)
	require.Len(t, results, 3)
	for i, size := range s.Sizes {
		require.Equal(t, size, results[i].Size)
		require.GreaterOrEqual(t, results[i].Micros, 0.0)
	}
	require.Contains(t, out.String(), "Testing random merge sort")
	require.Contains(t, out.String(), "Size: 500,")
	require.Contains(t, out.String(), "Size: 10000,")
	require.NotContains(t, out.String(), "Size: 600,")

	out.Reset()
	results, err = s.TestHybridSorting(g, ArrayGen.AlmostSorted)
	require.NoError(t, err)
	require.Len(t, results, 3)
	require.Contains(t, out.String(), "Testing almost sorted hybrid sort (threshold=15)")
}

func TestTestSortingProgressOnFirstOverriddenSize(t *testing.T) {
	var out bytes.Buffer
	s := &SortTester{Trials: 1, Out: &out, Sizes: []int{700, 800, 20000}}
	_, err := s.TestSorting(newGen(), Standard, ArrayGen.ReverseSorted)
	require.NoError(t, err)
	require.Contains(t, out.String(), "Size: 700,")
	require.NotContains(t, out.String(), "Size: 800,")
	require.Contains(t, out.String(), "Size: 20000,")
}

func TestTestSortingInvalidSize(t *testing.T) {
	s := &SortTester{Trials: 1, Sizes: []int{500, ArrayGen.MAX_SIZE + 100}}
	_, err := s.TestSorting(newGen(), Hybrid, ArrayGen.ReverseSorted)
	var sizeErr *ArrayGen.InvalidSizeError
	require.True(t, errors.As(err, &sizeErr))
	require.Equal(t, ArrayGen.MAX_SIZE+100, sizeErr.Size)
}

func TestTestSortingUnknownAlgorithm(t *testing.T) {
	s := &SortTester{Trials: 1, Sizes: []int{500}}
	_, err := s.TestSorting(newGen(), Algorithm(9), ArrayGen.Random)
	require.Error(t, err)
}

func TestFilename(t *testing.T) {
	require.Equal(t, "standard_merge_random.csv", Filename(Standard, ArrayGen.Random))
	require.Equal(t, "standard_merge_reverse.csv", Filename(Standard, ArrayGen.ReverseSorted))
	require.Equal(t, "standard_merge_almost.csv", Filename(Standard, ArrayGen.AlmostSorted))
	require.Equal(t, "hybrid_merge_random.csv", Filename(Hybrid, ArrayGen.Random))
	require.Equal(t, "hybrid_merge_reverse.csv", Filename(Hybrid, ArrayGen.ReverseSorted))
	require.Equal(t, "hybrid_merge_almost.csv", Filename(Hybrid, ArrayGen.AlmostSorted))
}

func TestCSVRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "results.csv")
	s := &SortTester{}
	want := []Result{{Size: 500, Micros: 12.4}, {Size: 600, Micros: 13.1}}

	require.NoError(t, s.SaveResultsToCSV(want, path))

	raw, err := os.ReadFile(path)
	require.NoError(t, err)
	require.Equal(t, "Size,TimeMicroseconds\n500,12.4\n600,13.1\n", string(raw))

	got, err := LoadResultsFromCSV(path)
	require.NoError(t, err)
	require.Equal(t, want, got)
}

func TestSaveOverwrites(t *testing.T) {
	path := filepath.Join(t.TempDir(), "results.csv")
	require.NoError(t, os.WriteFile(path, []byte(strings.Repeat("junk\n", 50)), 0o644))

	var out bytes.Buffer
	s := &SortTester{Out: &out}
	require.NoError(t, s.SaveResultsToCSV([]Result{{Size: 700, Micros: 3}}, path))
	require.Contains(t, out.String(), "Results saved to "+path)

	raw, err := os.ReadFile(path)
	require.NoError(t, err)
	require.Equal(t, "Size,TimeMicroseconds\n700,3\n", string(raw))
}

func TestSaveEmptyResults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "empty.csv")
	require.NoError(t, (&SortTester{}).SaveResultsToCSV(nil, path))

	got, err := LoadResultsFromCSV(path)
	require.NoError(t, err)
	require.Empty(t, got)
}

func TestSaveUnwritablePath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "missing", "dir", "results.csv")
	err := (&SortTester{}).SaveResultsToCSV([]Result{{Size: 500, Micros: 1}}, path)

	var writeErr *FileWriteError
	require.True(t, errors.As(err, &writeErr))
	require.Equal(t, path, writeErr.Path)
	require.True(t, errors.Is(err, os.ErrNotExist))
}

func TestLoadRejectsBadFiles(t *testing.T) {
	dir := t.TempDir()
	cases := map[string]string{
		"noheader": "500,12.4\n",
		"badsize":  "Size,TimeMicroseconds\nx,12.4\n",
		"badtime":  "Size,TimeMicroseconds\n500,slow\n",
		"columns":  "Size,TimeMicroseconds\n500\n",
		"empty":    "",
	}
	for name, body := range cases {
		path := filepath.Join(dir, name+".csv")
		require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
		_, err := LoadResultsFromCSV(path)
		require.Error(t, err, name)
	}

	_, err := LoadResultsFromCSV(filepath.Join(dir, "nope.csv"))
	require.Error(t, err)
}
