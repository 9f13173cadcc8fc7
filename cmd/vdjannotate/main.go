// vdjannotate attaches T- and/or B-cell clonotype calls from vendor V(D)J
// tables to a cell barcode universe, drops dual-receptor artifact cells, and
// emits a per-cell metadata table for downstream expression analysis.
package main

import (
	"context"
	"flag"
	"io"
	"log"
	"os"
	"strings"

	"cloud.google.com/go/storage"
	"github.com/aybabtme/uniplot/histogram"

	_ "github.com/scgenomics/vdjannotate/buildinfoprint"
	"github.com/scgenomics/vdjannotate/vdj"
)

var client *storage.Client

func main() {
	var barcodeFile, outputFile string
	var tContigFile, tClonotypeFile string
	var bContigFile, bClonotypeFile string
	var showHist bool
	flag.StringVar(&barcodeFile, "barcodes", "", "Path to the cell barcode list (barcodes.tsv, optionally gzipped) from the filtered feature-barcode matrix. Optionally, may be a google storage URL (gs://)")
	flag.StringVar(&tContigFile, "tcontigs", "", "Path to the TCR filtered_contig_annotations table. Optionally, may be a google storage URL (gs://)")
	flag.StringVar(&tClonotypeFile, "tclonotypes", "", "Path to the TCR clonotypes summary table. Optionally, may be a google storage URL (gs://)")
	flag.StringVar(&bContigFile, "bcontigs", "", "Path to the BCR filtered_contig_annotations table. Optionally, may be a google storage URL (gs://)")
	flag.StringVar(&bClonotypeFile, "bclonotypes", "", "Path to the BCR clonotypes summary table. Optionally, may be a google storage URL (gs://)")
	flag.StringVar(&outputFile, "output", "", "Path to the output metadata table. If empty, writes to stdout.")
	flag.BoolVar(&showHist, "hist", true, "Whether to print a cells-per-clonotype histogram to stderr")
	flag.Parse()

	if barcodeFile == "" {
		flag.Usage()
		log.Fatalln("Must specify a --barcodes file")
	}

	if (tContigFile == "") != (tClonotypeFile == "") {
		flag.Usage()
		log.Fatalln("--tcontigs and --tclonotypes must be specified together")
	}

	if (bContigFile == "") != (bClonotypeFile == "") {
		flag.Usage()
		log.Fatalln("--bcontigs and --bclonotypes must be specified together")
	}

	if tContigFile == "" && bContigFile == "" {
		flag.Usage()
		log.Fatalln("Must specify at least one receptor's tables (--tcontigs/--tclonotypes or --bcontigs/--bclonotypes)")
	}

	if strings.HasPrefix(barcodeFile, "gs://") ||
		strings.HasPrefix(tContigFile, "gs://") ||
		strings.HasPrefix(tClonotypeFile, "gs://") ||
		strings.HasPrefix(bContigFile, "gs://") ||
		strings.HasPrefix(bClonotypeFile, "gs://") {
		var err error
		client, err = storage.NewClient(context.Background())
		if err != nil {
			log.Fatalln(err)
		}
	}

	barcodes, err := vdj.LoadBarcodes(barcodeFile, client)
	if err != nil {
		log.Fatalln(err)
	}
	log.Println("Loaded", len(barcodes), "cell barcodes from", barcodeFile)

	table := vdj.NewMetadataTable(barcodes)
	diag := vdj.Diagnostics{DroppedNoSummary: make(map[vdj.ReceptorType]int)}
	sizes := []float64{}

	if tContigFile != "" {
		attachment, err := attachReceptor(tContigFile, tClonotypeFile, vdj.ReceptorT)
		if err != nil {
			log.Fatalln(err)
		}
		table = table.WithAttachment(attachment)
		diag.DroppedNoSummary[vdj.ReceptorT] = attachment.DroppedNoSummary
		sizes = append(sizes, vdj.ClonotypeSizes(attachment)...)
	}

	if bContigFile != "" {
		attachment, err := attachReceptor(bContigFile, bClonotypeFile, vdj.ReceptorB)
		if err != nil {
			log.Fatalln(err)
		}
		table = table.WithAttachment(attachment)
		diag.DroppedNoSummary[vdj.ReceptorB] = attachment.DroppedNoSummary
		sizes = append(sizes, vdj.ClonotypeSizes(attachment)...)
	}

	table, removed := vdj.FilterDualReceptor(table)
	diag.DualReceptorRemoved = removed
	if removed > 0 {
		log.Println("Removed", removed, "cells carrying both a T and a B clonotype (treated as doublets)")
	}

	var out io.WriteCloser = os.Stdout
	if outputFile != "" {
		out, err = os.OpenFile(outputFile, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0644)
		if err != nil {
			log.Fatalln(err)
		}
	}

	if err := table.WriteTSV(out); err != nil {
		log.Fatalln(err)
	}

	if outputFile != "" {
		if err := out.Close(); err != nil {
			log.Fatalln(err)
		}
	}

	log.Println("Wrote", len(table), "annotated cells")
	for receptor, dropped := range diag.DroppedNoSummary {
		if dropped > 0 {
			log.Printf("Warning: %d %s-receptor contig rows had no matching clonotype summary and were dropped\n", dropped, strings.ToUpper(string(receptor)))
		}
	}

	if showHist && len(sizes) > 0 {
		log.Println("Cells per clonotype:")
		hist := histogram.Hist(10, sizes)
		if err := histogram.Fprint(os.Stderr, hist, histogram.Linear(40)); err != nil {
			log.Fatalln(err)
		}
	}
}

func attachReceptor(contigFile, clonotypeFile string, receptor vdj.ReceptorType) (vdj.Attachment, error) {
	contigs, err := vdj.LoadContigAnnotations(contigFile, client)
	if err != nil {
		return vdj.Attachment{}, err
	}
	log.Println("Loaded", len(contigs), "contig annotations from", contigFile)

	summaries, err := vdj.LoadClonotypeSummaries(clonotypeFile, client)
	if err != nil {
		return vdj.Attachment{}, err
	}
	log.Println("Loaded", len(summaries), "clonotype summaries from", clonotypeFile)

	attachment, err := vdj.Attach(contigs, summaries, receptor)
	if err != nil {
		// The ambiguous-join error does not know which file it came from
		if formatErr, ok := err.(*vdj.FormatError); ok && formatErr.Path == "" {
			formatErr.Path = clonotypeFile
		}
		return vdj.Attachment{}, err
	}

	log.Println("Attached clonotypes to", len(attachment.ByBarcode), "barcodes")

	return attachment, nil
}
