package vdjannotate

import (
	"bytes"
	"compress/gzip"
	"io/ioutil"
	"path/filepath"
	"testing"
)

func TestOpenLocalFile(t *testing.T) {
	contents := []byte("AAACCTGA-1\nAAACGGGT-1\n")
	path := filepath.Join(t.TempDir(), "barcodes.tsv")
	if err := ioutil.WriteFile(path, contents, 0644); err != nil {
		t.Fatal(err)
	}

	rc, err := Open(path, nil)
	if err != nil {
		t.Fatal(err)
	}
	defer rc.Close()

	out, err := ioutil.ReadAll(rc)
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(out, contents) {
		t.Errorf("Read mismatch: %q", out)
	}
}

func TestOpenLocalGzippedFile(t *testing.T) {
	contents := []byte("AAACCTGA-1\n")

	var buf bytes.Buffer
	gz := gzip.NewWriter(&buf)
	if _, err := gz.Write(contents); err != nil {
		t.Fatal(err)
	}
	if err := gz.Close(); err != nil {
		t.Fatal(err)
	}

	path := filepath.Join(t.TempDir(), "barcodes.tsv.gz")
	if err := ioutil.WriteFile(path, buf.Bytes(), 0644); err != nil {
		t.Fatal(err)
	}

	rc, err := Open(path, nil)
	if err != nil {
		t.Fatal(err)
	}
	defer rc.Close()

	out, err := ioutil.ReadAll(rc)
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(out, contents) {
		t.Errorf("Read mismatch: %q", out)
	}
}

func TestOpenMissingFile(t *testing.T) {
	_, err := Open(filepath.Join(t.TempDir(), "does-not-exist.csv"), nil)
	if err == nil {
		t.Fatal("Expected an error for a missing file")
	}
}

func TestOpenGoogleStoragePathWithoutClient(t *testing.T) {
	_, err := Open("gs://bucket/object.csv", nil)
	if err == nil {
		t.Fatal("Expected an error for a gs:// path with no client")
	}
}
