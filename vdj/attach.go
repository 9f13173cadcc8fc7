package vdj

import "fmt"

// Attach joins deduplicated contig rows to summary rows on clonotype id,
// yielding at most one complete ClonotypeCall per barcode.
//
// All contigs of one cell share the same clonotype call upstream, so the
// first row seen for a barcode wins and later rows for it are ignored. Contig
// rows whose clonotype id has no summary row (including sentinel ids like
// "None") are dropped and counted rather than failing the run, since partial
// annotation is an accepted outcome. A clonotype id appearing twice in the
// summary table makes the join ambiguous and fails with a *FormatError.
func Attach(contigs []ContigAnnotation, summaries []ClonotypeSummary, receptor ReceptorType) (Attachment, error) {
	index := make(map[string]ClonotypeSummary, len(summaries))
	for _, summary := range summaries {
		if _, exists := index[summary.ClonotypeID]; exists {
			return Attachment{}, &FormatError{
				Column: "clonotype_id",
				Reason: fmt.Sprintf("clonotype id %q appears more than once in the summary table", summary.ClonotypeID),
			}
		}
		index[summary.ClonotypeID] = summary
	}

	out := Attachment{
		Receptor:  receptor,
		ByBarcode: make(map[string]ClonotypeCall),
	}

	seen := make(map[string]struct{})
	for _, contig := range contigs {
		if _, duplicate := seen[contig.Barcode]; duplicate {
			continue
		}
		seen[contig.Barcode] = struct{}{}

		summary, exists := index[contig.RawClonotypeID]
		if !exists {
			out.DroppedNoSummary++
			continue
		}

		out.ByBarcode[contig.Barcode] = ClonotypeCall{
			ClonotypeID: summary.ClonotypeID,
			CDR3sAA:     summary.CDR3sAA,
		}
	}

	return out, nil
}
