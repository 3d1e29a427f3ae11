package writers

import (
	"fmt"
	"io"

	"asenrich/internal/stats"
)

// WriteSummary renders the per-barcode counter table. Row order: per-contig
// target rows and target totals for every barcode, then per-contig
// non-target rows, enrichment point estimates and non-target totals.
func WriteSummary(w io.Writer, acc *stats.Accumulator) error {
	if _, err := fmt.Fprintln(w, "Statistic\tChannel\tBarcode\tAlignment\tValue"); err != nil {
		return err
	}

	row := func(stat, channel, barcode, contig string, value any) error {
		_, err := fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%v\n", stat, channel, barcode, contig, value)
		return err
	}

	points := make(map[string][]stats.PointEstimate)
	for _, pe := range acc.PointEnrichment() {
		points[pe.Barcode] = append(points[pe.Barcode], pe)
	}

	for _, barcode := range acc.Barcodes() {
		bc := acc.Counters(barcode)
		for _, contig := range bc.Contigs() {
			bk := bc.Bucket(contig)
			if err := row("Reads_mapped", "Target", barcode, contig, bk.TargetReads); err != nil {
				return err
			}
			if err := row("Bases_mapped", "Target", barcode, contig, bk.TargetBases); err != nil {
				return err
			}
		}
		if err := row("Reads_total", "Target", barcode, "Total", bc.TargetReads); err != nil {
			return err
		}
		if err := row("Reads_mapped", "Target", barcode, "Total", bc.TargetReadsMapped); err != nil {
			return err
		}
		if err := row("Bases_total", "Target", barcode, "Total", bc.TargetBases); err != nil {
			return err
		}
		if err := row("Bases_mapped", "Target", barcode, "Total", bc.TargetBasesMapped); err != nil {
			return err
		}
	}

	for _, barcode := range acc.Barcodes() {
		bc := acc.Counters(barcode)
		for _, contig := range bc.Contigs() {
			bk := bc.Bucket(contig)
			if err := row("Reads_mapped", "Non-target", barcode, contig, bk.NonTargetReads); err != nil {
				return err
			}
			if err := row("Bases_mapped", "Non-target", barcode, contig, bk.NonTargetBases); err != nil {
				return err
			}
		}
		for _, pe := range points[barcode] {
			if err := row("Enrichment", "NA", barcode, pe.Contig, pe.Enrichment); err != nil {
				return err
			}
		}
		if err := row("Reads_total", "Non-target", barcode, "Total", bc.NonTargetReads); err != nil {
			return err
		}
		if err := row("Reads_mapped", "Non-target", barcode, "Total", bc.NonTargetReadsMapped); err != nil {
			return err
		}
		if err := row("Bases_total", "Non-target", barcode, "Total", bc.NonTargetBases); err != nil {
			return err
		}
		if err := row("Bases_mapped", "Non-target", barcode, "Total", bc.NonTargetBasesMapped); err != nil {
			return err
		}
	}
	return nil
}
