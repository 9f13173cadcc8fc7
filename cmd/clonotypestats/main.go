// clonotypestats summarizes the cells-per-clonotype distribution of one
// receptor's V(D)J tables: clonotype and singleton counts, mean, median, and
// standard deviation, plus a terminal histogram.
package main

import (
	"context"
	"flag"
	"fmt"
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
	var contigFile, clonotypeFile, receptor string
	var buckets int
	flag.StringVar(&contigFile, "contigs", "", "Path to the filtered_contig_annotations table. Optionally, may be a google storage URL (gs://)")
	flag.StringVar(&clonotypeFile, "clonotypes", "", "Path to the clonotypes summary table. Optionally, may be a google storage URL (gs://)")
	flag.StringVar(&receptor, "receptor", "t", "Receptor type of the tables: t or b")
	flag.IntVar(&buckets, "buckets", 10, "Number of histogram buckets")
	flag.Parse()

	if contigFile == "" || clonotypeFile == "" {
		flag.Usage()
		log.Fatalln("Must specify both --contigs and --clonotypes")
	}

	receptorType := vdj.ReceptorType(strings.ToLower(receptor))
	if receptorType != vdj.ReceptorT && receptorType != vdj.ReceptorB {
		flag.Usage()
		log.Fatalln("--receptor must be t or b")
	}

	if strings.HasPrefix(contigFile, "gs://") || strings.HasPrefix(clonotypeFile, "gs://") {
		var err error
		client, err = storage.NewClient(context.Background())
		if err != nil {
			log.Fatalln(err)
		}
	}

	contigs, err := vdj.LoadContigAnnotations(contigFile, client)
	if err != nil {
		log.Fatalln(err)
	}

	summaries, err := vdj.LoadClonotypeSummaries(clonotypeFile, client)
	if err != nil {
		log.Fatalln(err)
	}

	attachment, err := vdj.Attach(contigs, summaries, receptorType)
	if err != nil {
		if formatErr, ok := err.(*vdj.FormatError); ok && formatErr.Path == "" {
			formatErr.Path = clonotypeFile
		}
		log.Fatalln(err)
	}

	if attachment.DroppedNoSummary > 0 {
		log.Println("Warning:", attachment.DroppedNoSummary, "contig rows had no matching clonotype summary and were dropped")
	}

	sizes := vdj.ClonotypeSizes(attachment)
	summary := vdj.SummarizeSizes(sizes)

	fmt.Printf("clonotypes\t%d\n", summary.Clonotypes)
	fmt.Printf("cells\t%d\n", summary.Cells)
	fmt.Printf("singletons\t%d\n", summary.Singletons)
	fmt.Printf("mean_cells_per_clonotype\t%.4g\n", summary.Mean)
	fmt.Printf("median_cells_per_clonotype\t%.4g\n", summary.Median)
	fmt.Printf("sd_cells_per_clonotype\t%.4g\n", summary.StdDev)

	if len(sizes) > 0 {
		hist := histogram.Hist(buckets, sizes)
		if err := histogram.Fprint(os.Stderr, hist, histogram.Linear(40)); err != nil {
			log.Fatalln(err)
		}
	}
}
