package SortTester

import (
	"encoding/csv"
	"fmt"
	"os"
	"strconv"

	"MergeSortBench/ArrayGen"
)

var csvHeader = []string{"Size", "TimeMicroseconds"}

// FileWriteError reports an output file that could not be created or written.
type FileWriteError struct {
	Path string
	Err  error
}

func (e *FileWriteError) Error() string {
	return fmt.Sprintf("write %s: %v", e.Path, e.Err)
}

func (e *FileWriteError) Unwrap() error { return e.Err }

// Filename is the result file name for one benchmark pass, e.g. hybrid_merge_almost.csv.
func Filename(alg Algorithm, dist ArrayGen.Distribution) string {
	var suffix string
	switch dist {
	case ArrayGen.Random:
		suffix = "random"
	case ArrayGen.ReverseSorted:
		suffix = "reverse"
	case ArrayGen.AlmostSorted:
		suffix = "almost"
	default:
		suffix = strconv.Itoa(int(dist))
	}
	return fmt.Sprintf("%v_merge_%s.csv", alg, suffix)
}

// SaveResultsToCSV writes results to filename, replacing any existing file.
func (s *SortTester) SaveResultsToCSV(results []Result, filename string) (err error) {
	f, err := os.Create(filename)
	if err != nil {
		return &FileWriteError{Path: filename, Err: err}
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = &FileWriteError{Path: filename, Err: cerr}
		}
	}()

	w := csv.NewWriter(f)
	if err := w.Write(csvHeader); err != nil {
		return &FileWriteError{Path: filename, Err: err}
	}
	for _, r := range results {
		record := []string{
			strconv.Itoa(r.Size),
			strconv.FormatFloat(r.Micros, 'f', -1, 64),
		}
		if err := w.Write(record); err != nil {
			return &FileWriteError{Path: filename, Err: err}
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return &FileWriteError{Path: filename, Err: err}
	}

	s.printf("Results saved to %s\n", filename)
	return nil
}

// LoadResultsFromCSV reads a file written by SaveResultsToCSV.
func LoadResultsFromCSV(filename string) ([]Result, error) {
	f, err := os.Open(filename)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.FieldsPerRecord = len(csvHeader)
	records, err := r.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", filename, err)
	}
	if len(records) == 0 || records[0][0] != csvHeader[0] || records[0][1] != csvHeader[1] {
		return nil, fmt.Errorf("read %s: missing %s,%s header", filename, csvHeader[0], csvHeader[1])
	}

	results := make([]Result, 0, len(records)-1)
	for i, rec := range records[1:] {
		size, err := strconv.Atoi(rec[0])
		if err != nil {
			return nil, fmt.Errorf("read %s line %d: size: %w", filename, i+2, err)
		}
		micros, err := strconv.ParseFloat(rec[1], 64)
		if err != nil {
			return nil, fmt.Errorf("read %s line %d: time: %w", filename, i+2, err)
		}
		results = append(results, Result{Size: size, Micros: micros})
	}
	return results, nil
}
