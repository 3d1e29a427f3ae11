// Package stats accumulates classified reads into per-barcode, per-contig
// counters and derives point-estimate enrichment from the totals.
package stats

import "asenrich/internal/classify"

// Bucket counts one contig's reads and matched bases, split by channel group.
type Bucket struct {
	TargetReads    int
	TargetBases    int
	NonTargetReads int
	NonTargetBases int
}

// BarcodeCounters is the running tally for one barcode. Base totals count
// full read lengths; the Mapped variants count matched bases of aligned
// reads only.
type BarcodeCounters struct {
	TotalReads int
	TotalBases int

	TargetReads    int
	TargetBases    int
	NonTargetReads int
	NonTargetBases int

	TargetReadsMapped    int
	TargetBasesMapped    int
	NonTargetReadsMapped int
	NonTargetBasesMapped int

	buckets map[string]*Bucket
	contigs []string // first-seen order
}

func newBarcodeCounters() *BarcodeCounters {
	return &BarcodeCounters{buckets: make(map[string]*Bucket)}
}

// bucket lazily creates the contig bucket on first access.
func (b *BarcodeCounters) bucket(contig string) *Bucket {
	if bk, ok := b.buckets[contig]; ok {
		return bk
	}
	bk := &Bucket{}
	b.buckets[contig] = bk
	b.contigs = append(b.contigs, contig)
	return bk
}

// Contigs returns contig names (including "unaligned") in first-seen order.
func (b *BarcodeCounters) Contigs() []string { return b.contigs }

// Bucket returns the counters for contig, or nil if never observed.
func (b *BarcodeCounters) Bucket(contig string) *Bucket { return b.buckets[contig] }

// Accumulator is the run-wide aggregation state, keyed by barcode. It is
// strictly additive; nothing is ever removed or decremented.
type Accumulator struct {
	barcodes map[string]*BarcodeCounters
	order    []string // first-seen order
}

func New() *Accumulator {
	return &Accumulator{barcodes: make(map[string]*BarcodeCounters)}
}

// Ensure creates the barcode's counters if absent. Called per input file so
// that barcodes with zero usable reads still appear in summaries.
func (a *Accumulator) Ensure(barcode string) *BarcodeCounters {
	if bc, ok := a.barcodes[barcode]; ok {
		return bc
	}
	bc := newBarcodeCounters()
	a.barcodes[barcode] = bc
	a.order = append(a.order, barcode)
	return bc
}

// Barcodes returns barcodes in first-seen order.
func (a *Accumulator) Barcodes() []string { return a.order }

// Counters returns the tally for barcode, or nil if never observed.
func (a *Accumulator) Counters(barcode string) *BarcodeCounters { return a.barcodes[barcode] }

// Update folds one classified read into the running counters.
func (a *Accumulator) Update(obs classify.Observation) {
	bc := a.Ensure(obs.Barcode)
	bk := bc.bucket(obs.Class.Contig)

	total := obs.Class.TotalLength
	matched := obs.Class.MatchedBases

	bc.TotalReads++
	bc.TotalBases += total

	if obs.Target {
		bc.TargetReads++
		bc.TargetBases += total
		bk.TargetReads++
		bk.TargetBases += matched
		if obs.Class.Aligned() {
			bc.TargetReadsMapped++
			bc.TargetBasesMapped += matched
		}
	} else {
		bc.NonTargetReads++
		bc.NonTargetBases += total
		bk.NonTargetReads++
		bk.NonTargetBases += matched
		if obs.Class.Aligned() {
			bc.NonTargetReadsMapped++
			bc.NonTargetBasesMapped += matched
		}
	}
}
