package vdj

import (
	"bufio"
	"bytes"
	"encoding/csv"
	"fmt"
	"io"
	"io/ioutil"
	"strings"

	"cloud.google.com/go/storage"
	"github.com/carbocation/pfx"
	"github.com/gocarina/gocsv"

	"github.com/scgenomics/vdjannotate"
)

// LoadContigAnnotations reads a per-cell contig annotation table. The file
// may be comma- or tab-delimited, compressed, or a gs:// URL (client may be
// nil for local paths). A missing barcode or raw_clonotype_id column is a
// *FormatError.
func LoadContigAnnotations(path string, client *storage.Client) ([]ContigAnnotation, error) {
	data, err := slurp(path, client)
	if err != nil {
		return nil, err
	}

	if err := requireColumns(path, data, "barcode", "raw_clonotype_id"); err != nil {
		return nil, err
	}

	rows := []ContigAnnotation{}
	if err := unmarshalDelimited(data, &rows); err != nil {
		return nil, pfx.Err(fmt.Errorf("%s: %v", path, err))
	}

	return rows, nil
}

// LoadClonotypeSummaries reads a per-clonotype summary table. A missing
// clonotype_id or cdr3s_aa column is a *FormatError.
func LoadClonotypeSummaries(path string, client *storage.Client) ([]ClonotypeSummary, error) {
	data, err := slurp(path, client)
	if err != nil {
		return nil, err
	}

	if err := requireColumns(path, data, "clonotype_id", "cdr3s_aa"); err != nil {
		return nil, err
	}

	rows := []ClonotypeSummary{}
	if err := unmarshalDelimited(data, &rows); err != nil {
		return nil, pfx.Err(fmt.Errorf("%s: %v", path, err))
	}

	return rows, nil
}

// LoadBarcodes reads the cell barcode universe, one barcode per line with no
// header, as emitted alongside a filtered feature-barcode matrix. Only the
// first tab-delimited field of each line is kept.
func LoadBarcodes(path string, client *storage.Client) ([]string, error) {
	rc, err := vdjannotate.Open(path, client)
	if err != nil {
		return nil, err
	}
	defer rc.Close()

	barcodes := []string{}
	scanner := bufio.NewScanner(rc)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		if tab := strings.IndexByte(line, '\t'); tab >= 0 {
			line = line[:tab]
		}
		barcodes = append(barcodes, line)
	}
	if err := scanner.Err(); err != nil {
		return nil, pfx.Err(fmt.Errorf("%s: %v", path, err))
	}

	return barcodes, nil
}

func slurp(path string, client *storage.Client) ([]byte, error) {
	rc, err := vdjannotate.Open(path, client)
	if err != nil {
		return nil, err
	}
	defer rc.Close()

	data, err := ioutil.ReadAll(rc)
	if err != nil {
		return nil, pfx.Err(fmt.Errorf("%s: %v", path, err))
	}

	return data, nil
}

// requireColumns parses the header row and fails with a *FormatError naming
// the first required column that is absent.
func requireColumns(path string, data []byte, required ...string) error {
	delim := vdjannotate.DetermineDelimiter(bytes.NewReader(data))

	r := csv.NewReader(bytes.NewReader(data))
	r.Comma = delim
	r.LazyQuotes = true

	header, err := r.Read()
	if err != nil {
		return pfx.Err(fmt.Errorf("%s: header parsing error: %v", path, err))
	}

	present := make(map[string]struct{}, len(header))
	for _, col := range header {
		present[strings.TrimSpace(col)] = struct{}{}
	}

	for _, col := range required {
		if _, exists := present[col]; !exists {
			return &FormatError{Path: path, Column: col, Reason: "required column is missing from the header"}
		}
	}

	return nil
}

func unmarshalDelimited(data []byte, out interface{}) error {
	delim := vdjannotate.DetermineDelimiter(bytes.NewReader(data))

	// Tell gocsv to use the detected delimiter
	gocsv.SetCSVReader(func(in io.Reader) gocsv.CSVReader {
		r := csv.NewReader(in)
		r.Comma = delim
		r.LazyQuotes = true
		return r
	})

	return gocsv.UnmarshalBytes(data, out)
}
