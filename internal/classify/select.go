// Package classify turns a read's candidate alignments and run metadata into
// the per-read facts the aggregation and bootstrap stages consume.
package classify

import "asenrich/internal/align"

// Unaligned is the pseudo-contig for reads with no acceptable alignment.
const Unaligned = "unaligned"

// Classification is the single best-alignment decision for one read.
// Unaligned reads carry their full length as MatchedBases so that depth
// accounting sees every sequenced base.
type Classification struct {
	Contig       string
	MatchedBases int
	TotalLength  int
	Coverage     float64 // matched bases over reference span of the best hit
}

// Aligned reports whether the read was assigned a real contig.
func (c Classification) Aligned() bool { return c.Contig != Unaligned }

// SelectOptions tune best-alignment selection.
type SelectOptions struct {
	// MatchingProportion is the minimum Coverage for a hit to stand;
	// anything below demotes the read to unaligned.
	MatchingProportion float64
	// Targets, when non-nil, restricts selection to these contigs. Hits to
	// other contigs are ignored entirely, including for multi-map counting.
	Targets map[string]struct{}
	// RejectMulti demotes any read with more than one considered hit.
	RejectMulti bool
}

// Select reduces a read's hits to one Classification.
//
// The best hit is the one with the strictly greatest matched length; ties
// keep the earliest hit seen. Coverage follows whichever hit is currently
// best. Hits spanning zero reference bases have no defined coverage and can
// never become best, though they still count as seen for multi-map rejection.
func Select(hits []align.Hit, totalLength int, opt SelectOptions) Classification {
	contig := Unaligned
	matched := 0
	coverage := 0.0
	seen := 0

	for _, h := range hits {
		if opt.Targets != nil {
			if _, ok := opt.Targets[h.Contig]; !ok {
				continue
			}
		}
		seen++
		span := h.RefSpan()
		if span == 0 {
			continue
		}
		if h.MatchedLen > matched {
			matched = h.MatchedLen
			contig = h.Contig
			coverage = float64(matched) / float64(span)
		}
	}

	if coverage < opt.MatchingProportion {
		contig = Unaligned
	}
	if opt.RejectMulti && seen > 1 {
		contig = Unaligned
	}
	if contig == Unaligned {
		matched = totalLength
	}
	return Classification{
		Contig:       contig,
		MatchedBases: matched,
		TotalLength:  totalLength,
		Coverage:     coverage,
	}
}
