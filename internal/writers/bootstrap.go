package writers

import (
	"fmt"
	"io"
	"sort"

	"asenrich/internal/bootstrap"
)

// WriteBootstrap renders the raw enrichment distributions, one value per
// row. Barcodes follow first-seen order; contigs are sorted for determinism.
func WriteBootstrap(w io.Writer, barcodes []string, dists map[string]bootstrap.Distribution) error {
	if _, err := fmt.Fprintln(w, "Barcode\tAlignment\tEnrichment"); err != nil {
		return err
	}
	for _, barcode := range barcodes {
		dist := dists[barcode]
		contigs := make([]string, 0, len(dist))
		for c := range dist {
			contigs = append(contigs, c)
		}
		sort.Strings(contigs)
		for _, contig := range contigs {
			for _, v := range dist[contig] {
				if _, err := fmt.Fprintf(w, "%s\t%s\t%v\n", barcode, contig, v); err != nil {
					return err
				}
			}
		}
	}
	return nil
}

// WriteBootstrapSummary renders per-contig mean and 95% bounds of the
// bootstrap distributions.
func WriteBootstrapSummary(w io.Writer, barcodes []string, dists map[string]bootstrap.Distribution) error {
	if _, err := fmt.Fprintln(w, "Barcode\tAlignment\tN\tMean\tQ2.5\tQ97.5"); err != nil {
		return err
	}
	for _, barcode := range barcodes {
		for _, row := range bootstrap.Summarize(dists[barcode]) {
			_, err := fmt.Fprintf(w, "%s\t%s\t%d\t%v\t%v\t%v\n",
				barcode, row.Contig, row.N, row.Mean, row.Q025, row.Q975)
			if err != nil {
				return err
			}
		}
	}
	return nil
}
