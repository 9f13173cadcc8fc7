package vdj

import (
	"reflect"
	"testing"
)

func testAttachmentT() Attachment {
	return Attachment{
		Receptor: ReceptorT,
		ByBarcode: map[string]ClonotypeCall{
			"bc1": {ClonotypeID: "c1", CDR3sAA: "TRA:X;TRB:Y"},
		},
	}
}

func testAttachmentB() Attachment {
	return Attachment{
		Receptor: ReceptorB,
		ByBarcode: map[string]ClonotypeCall{
			"bc2": {ClonotypeID: "c9", CDR3sAA: "IGH:Q"},
		},
	}
}

func TestMergeSetsNullsForAbsentBarcodes(t *testing.T) {
	table := NewMetadataTable([]string{"bc1", "bc2"}).WithAttachment(testAttachmentT())

	if !table[0].TClonotypeID.Valid || table[0].TClonotypeID.String != "c1" {
		t.Errorf("bc1 t_clonotype_id mismatch: %+v", table[0].TClonotypeID)
	}
	if !table[0].TCDR3sAA.Valid || table[0].TCDR3sAA.String != "TRA:X;TRB:Y" {
		t.Errorf("bc1 t_cdr3s_aa mismatch: %+v", table[0].TCDR3sAA)
	}

	// bc2 has no T clonotype: both fields must be null, not empty strings
	if table[1].TClonotypeID.Valid || table[1].TCDR3sAA.Valid {
		t.Errorf("bc2 should have null T fields: %+v", table[1])
	}
}

func TestMergeDoesNotMutateReceiver(t *testing.T) {
	original := NewMetadataTable([]string{"bc1"})
	derived := original.WithAttachment(testAttachmentT())

	if original[0].TClonotypeID.Valid {
		t.Error("WithAttachment mutated its receiver")
	}
	if !derived[0].TClonotypeID.Valid {
		t.Error("WithAttachment did not populate the derived table")
	}
}

func TestMergeIsIdempotentPerReceptor(t *testing.T) {
	attachment := testAttachmentT()
	once := NewMetadataTable([]string{"bc1", "bc2"}).WithAttachment(attachment)
	twice := once.WithAttachment(attachment)

	if !reflect.DeepEqual(once, twice) {
		t.Errorf("Merging the same attachment twice changed the table:\nonce:  %+v\ntwice: %+v", once, twice)
	}
}

func TestMergeCommutesAcrossReceptors(t *testing.T) {
	barcodes := []string{"bc1", "bc2", "bc3"}

	tFirst := NewMetadataTable(barcodes).WithAttachment(testAttachmentT()).WithAttachment(testAttachmentB())
	bFirst := NewMetadataTable(barcodes).WithAttachment(testAttachmentB()).WithAttachment(testAttachmentT())

	if !reflect.DeepEqual(tFirst, bFirst) {
		t.Errorf("T-then-B differs from B-then-T:\n%+v\n%+v", tFirst, bFirst)
	}

	// Each call touches only its own receptor's columns
	if !tFirst[0].TClonotypeID.Valid || tFirst[0].BClonotypeID.Valid {
		t.Errorf("bc1 should have only T fields set: %+v", tFirst[0])
	}
	if tFirst[1].TClonotypeID.Valid || !tFirst[1].BClonotypeID.Valid {
		t.Errorf("bc2 should have only B fields set: %+v", tFirst[1])
	}
	if tFirst[2].TClonotypeID.Valid || tFirst[2].BClonotypeID.Valid {
		t.Errorf("bc3 should have no fields set: %+v", tFirst[2])
	}
}

func TestMergePreservesBarcodeOrder(t *testing.T) {
	barcodes := []string{"bc3", "bc1", "bc2"}
	table := NewMetadataTable(barcodes).WithAttachment(testAttachmentT())

	for i, barcode := range barcodes {
		if table[i].Barcode != barcode {
			t.Errorf("Position %d: expected %s, got %s", i, barcode, table[i].Barcode)
		}
	}
}
