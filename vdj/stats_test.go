package vdj

import (
	"math"
	"testing"
)

func TestClonotypeSizesCountMultiplicity(t *testing.T) {
	attachment := Attachment{
		Receptor: ReceptorT,
		ByBarcode: map[string]ClonotypeCall{
			"bc1": {ClonotypeID: "c1", CDR3sAA: "TRA:X"},
			"bc2": {ClonotypeID: "c1", CDR3sAA: "TRA:X"},
			"bc3": {ClonotypeID: "c2", CDR3sAA: "TRA:Z"},
		},
	}

	sizes := ClonotypeSizes(attachment)
	if len(sizes) != 2 {
		t.Fatal("Expected 2 clonotypes, got", len(sizes))
	}

	total := 0.0
	largest := 0.0
	for _, size := range sizes {
		total += size
		if size > largest {
			largest = size
		}
	}
	if total != 3 {
		t.Error("Expected 3 cells in total, got", total)
	}
	if largest != 2 {
		t.Error("Expected the expanded clonotype to have 2 cells, got", largest)
	}
}

func TestSummarizeSizes(t *testing.T) {
	summary := SummarizeSizes([]float64{1, 1, 4})

	if summary.Clonotypes != 3 {
		t.Error("Expected 3 clonotypes, got", summary.Clonotypes)
	}
	if summary.Cells != 6 {
		t.Error("Expected 6 cells, got", summary.Cells)
	}
	if summary.Singletons != 2 {
		t.Error("Expected 2 singletons, got", summary.Singletons)
	}
	if math.Abs(summary.Mean-2) > 1e-12 {
		t.Error("Expected mean 2, got", summary.Mean)
	}
	if math.Abs(summary.Median-1) > 1e-12 {
		t.Error("Expected median 1, got", summary.Median)
	}
	if math.Abs(summary.StdDev-math.Sqrt(3)) > 1e-12 {
		t.Error("Expected sample standard deviation sqrt(3), got", summary.StdDev)
	}
}

func TestSummarizeSizesEmpty(t *testing.T) {
	summary := SummarizeSizes(nil)

	if summary.Clonotypes != 0 || summary.Cells != 0 || summary.Mean != 0 {
		t.Errorf("Expected the zero summary, got %+v", summary)
	}
}
