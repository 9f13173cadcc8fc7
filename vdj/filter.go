package vdj

// FilterDualReceptor removes cells carrying both a T and a B clonotype call.
// A cell called as both lineages at once is treated as a barcode collision or
// doublet, not biology. Surviving cells keep their order and their fields;
// the removed count is reported so runs can be compared.
func FilterDualReceptor(t MetadataTable) (MetadataTable, int) {
	out := make(MetadataTable, 0, len(t))
	removed := 0

	for _, cell := range t {
		if cell.TClonotypeID.Valid && cell.BClonotypeID.Valid {
			removed++
			continue
		}
		out = append(out, cell)
	}

	return out, removed
}
