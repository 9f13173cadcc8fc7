package vdj

import (
	"github.com/montanaflynn/stats"
	"gonum.org/v1/gonum/stat"
)

// ClonotypeSizes returns the number of attached cells per clonotype, in no
// particular order.
func ClonotypeSizes(a Attachment) []float64 {
	counts := make(map[string]int)
	for _, call := range a.ByBarcode {
		counts[call.ClonotypeID]++
	}

	sizes := make([]float64, 0, len(counts))
	for _, n := range counts {
		sizes = append(sizes, float64(n))
	}

	return sizes
}

// SizeSummary describes the cells-per-clonotype distribution of one
// attachment.
type SizeSummary struct {
	Clonotypes int
	Cells      int
	Singletons int
	Mean       float64
	Median     float64
	StdDev     float64
}

// SummarizeSizes computes the distribution summary for the given clonotype
// sizes. An empty input yields the zero summary.
func SummarizeSizes(sizes []float64) SizeSummary {
	out := SizeSummary{Clonotypes: len(sizes)}
	if len(sizes) == 0 {
		return out
	}

	for _, size := range sizes {
		out.Cells += int(size)
		if size == 1 {
			out.Singletons++
		}
	}

	// Mean and median via montanaflynn; these only error on empty input,
	// which is excluded above.
	out.Mean, _ = stats.Mean(sizes)
	out.Median, _ = stats.Median(sizes)
	out.StdDev = stat.StdDev(sizes, nil)

	return out
}
