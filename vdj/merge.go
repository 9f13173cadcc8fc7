package vdj

import (
	"gopkg.in/guregu/null.v3"
)

// NewMetadataTable builds a metadata table for the given barcode universe,
// preserving input order, with all clonotype columns null.
func NewMetadataTable(barcodes []string) MetadataTable {
	table := make(MetadataTable, 0, len(barcodes))
	for _, barcode := range barcodes {
		table = append(table, CellMetadata{Barcode: barcode})
	}

	return table
}

// WithAttachment returns a copy of the table with the attachment's receptor
// columns populated. Only that receptor's two columns are written: barcodes
// present in the attachment get their call, all others get explicit nulls.
// The other receptor's columns pass through untouched, so applying a T and a
// B attachment commutes, and re-applying the same attachment is a no-op.
func (t MetadataTable) WithAttachment(a Attachment) MetadataTable {
	out := make(MetadataTable, len(t))
	copy(out, t)

	for i, cell := range out {
		clonotypeID := null.String{}
		cdr3sAA := null.String{}
		if call, exists := a.ByBarcode[cell.Barcode]; exists {
			clonotypeID = null.StringFrom(call.ClonotypeID)
			cdr3sAA = null.StringFrom(call.CDR3sAA)
		}

		switch a.Receptor {
		case ReceptorT:
			out[i].TClonotypeID = clonotypeID
			out[i].TCDR3sAA = cdr3sAA
		case ReceptorB:
			out[i].BClonotypeID = clonotypeID
			out[i].BCDR3sAA = cdr3sAA
		}
	}

	return out
}
