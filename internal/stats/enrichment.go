package stats

// PointEstimate is one barcode/contig enrichment ratio derived from the
// final totals (no resampling).
type PointEstimate struct {
	Barcode    string
	Contig     string
	Enrichment float64
}

// PointEnrichment derives enrichment ratios from the accumulated counters.
//
// For each contig: the proportion of target-channel bases assigned to it,
// over the same proportion on the non-target side. Zero target totals yield
// a 0 proportion; zero non-target denominators are floored to 1 so ratios
// stay finite. Rows are emitted only for contigs the non-target channels
// actually observed; a contig seen solely in target channels gets no row.
func (a *Accumulator) PointEnrichment() []PointEstimate {
	var out []PointEstimate
	for _, barcode := range a.order {
		bc := a.barcodes[barcode]
		for _, contig := range bc.contigs {
			bk := bc.buckets[contig]
			if bk.NonTargetReads == 0 {
				continue
			}

			targetProp := 0.0
			if bc.TargetBases > 0 {
				targetProp = float64(bk.TargetBases) / float64(bc.TargetBases)
			}

			ntBases := bk.NonTargetBases
			if ntBases == 0 {
				ntBases = 1
			}
			ntTotal := bc.NonTargetBases
			if ntTotal == 0 {
				ntTotal = 1
			}
			ntProp := float64(ntBases) / float64(ntTotal)

			out = append(out, PointEstimate{
				Barcode:    barcode,
				Contig:     contig,
				Enrichment: targetProp / ntProp,
			})
		}
	}
	return out
}
