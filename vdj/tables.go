// Package vdj attaches V(D)J clonotype calls from vendor-pipeline tables to
// per-cell barcodes, producing a nullable metadata table suitable for joining
// against a gene-expression analysis.
package vdj

import (
	"gopkg.in/guregu/null.v3"
)

// ReceptorType distinguishes the two immune receptor lineages whose
// clonotype tables can be attached to the same cell population.
type ReceptorType string

const (
	ReceptorT ReceptorType = "t"
	ReceptorB ReceptorType = "b"
)

// ContigAnnotation is one row of the per-cell contig annotation table. A cell
// with several assembled contigs contributes several rows sharing one
// barcode. Vendor columns beyond these two are ignored.
type ContigAnnotation struct {
	Barcode        string `csv:"barcode"`
	RawClonotypeID string `csv:"raw_clonotype_id"`
}

// ClonotypeSummary is one row of the per-clonotype summary table, keyed by
// clonotype id.
type ClonotypeSummary struct {
	ClonotypeID string `csv:"clonotype_id"`
	CDR3sAA     string `csv:"cdr3s_aa"`
}

// ClonotypeCall is a resolved clonotype assignment. Both fields are always
// populated: a barcode either gets a complete call or no entry at all.
type ClonotypeCall struct {
	ClonotypeID string
	CDR3sAA     string
}

// Attachment maps each barcode with a resolved clonotype to its call, for one
// receptor type. DroppedNoSummary counts contig rows whose clonotype id
// (including sentinel values like "None") had no summary row; these are
// dropped, not errors.
type Attachment struct {
	Receptor         ReceptorType
	ByBarcode        map[string]ClonotypeCall
	DroppedNoSummary int
}

// CellMetadata holds the receptor-typed clonotype columns for one cell. The
// null.String zero value is the explicit "no clonotype detected" marker,
// distinguishable from an empty string.
type CellMetadata struct {
	Barcode      string
	TClonotypeID null.String
	TCDR3sAA     null.String
	BClonotypeID null.String
	BCDR3sAA     null.String
}

// MetadataTable is the ordered per-cell metadata table. Its methods return
// derived tables rather than mutating the receiver, so the T and B merges can
// be applied in either order.
type MetadataTable []CellMetadata

// Diagnostics aggregates the non-fatal counts a run reports alongside its
// output table.
type Diagnostics struct {
	DroppedNoSummary    map[ReceptorType]int
	DualReceptorRemoved int
}
