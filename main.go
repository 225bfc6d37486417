package main

import (
	"flag"
	"fmt"
	"io"
	"math/rand"
	"os"
	"path/filepath"

	"MergeSortBench/ArrayGen"
	"MergeSortBench/SortTester"
)

func main() {
	outDir := flag.String("out", ".", "directory the result CSV files are written to")
	seed := flag.Int64("seed", 0, "seed for the base arrays; 0 seeds from the clock")
	trials := flag.Int("trials", SortTester.NUM_TRIALS, "timed runs averaged per size")
	quiet := flag.Bool("quiet", false, "suppress progress output")
	flag.Parse()

	var rng *rand.Rand
	if *seed != 0 {
		rng = rand.New(rand.NewSource(*seed))
	}
	generator := ArrayGen.New(rng)

	tester := SortTester.New()
	tester.Trials = *trials
	if *quiet {
		tester.Out = io.Discard
	}

	failed := 0
	for _, alg := range []SortTester.Algorithm{SortTester.Standard, SortTester.Hybrid} {
		if alg == SortTester.Standard {
			fmt.Fprintln(tester.Out, "merge sort")
		} else {
			fmt.Fprintln(tester.Out, "\n hybrid_sort ")
		}
		for _, dist := range []ArrayGen.Distribution{ArrayGen.Random, ArrayGen.ReverseSorted, ArrayGen.AlmostSorted} {
			if err := runPass(tester, generator, alg, dist, *outDir); err != nil {
				fmt.Fprintf(os.Stderr, "%v %v: %v\n", alg, dist, err)
				failed++
			}
		}
	}
	if failed > 0 {
		os.Exit(1)
	}
}

func runPass(tester *SortTester.SortTester, generator *ArrayGen.Generator, alg SortTester.Algorithm, dist ArrayGen.Distribution, outDir string) error {
	results, err := tester.TestSorting(generator, alg, dist)
	if err != nil {
		return err
	}
	return tester.SaveResultsToCSV(results, filepath.Join(outDir, SortTester.Filename(alg, dist)))
}
