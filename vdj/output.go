package vdj

import (
	"bufio"
	"fmt"
	"io"

	"github.com/carbocation/pfx"
	"gopkg.in/guregu/null.v3"
)

// missingMarker is how null metadata fields are rendered on disk. In memory
// the distinction between null and empty string is kept; serialization uses
// the conventional NA marker.
const missingMarker = "NA"

// WriteTSV writes the table with its header row, one cell per line, nulls
// rendered as NA.
func (t MetadataTable) WriteTSV(w io.Writer) error {
	bw := bufio.NewWriter(w)

	if _, err := fmt.Fprintln(bw, "barcode\tt_clonotype_id\tt_cdr3s_aa\tb_clonotype_id\tb_cdr3s_aa"); err != nil {
		return pfx.Err(err)
	}

	for _, cell := range t {
		_, err := fmt.Fprintf(bw, "%s\t%s\t%s\t%s\t%s\n",
			cell.Barcode,
			render(cell.TClonotypeID),
			render(cell.TCDR3sAA),
			render(cell.BClonotypeID),
			render(cell.BCDR3sAA),
		)
		if err != nil {
			return pfx.Err(err)
		}
	}

	return bw.Flush()
}

func render(field null.String) string {
	if !field.Valid {
		return missingMarker
	}

	return field.String
}
