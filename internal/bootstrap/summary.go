package bootstrap

import (
	"sort"

	"gonum.org/v1/gonum/stat"
)

// SummaryRow condenses one contig's bootstrap distribution.
type SummaryRow struct {
	Contig string
	N      int
	Mean   float64
	Q025   float64
	Q975   float64
}

// Summarize reduces a distribution to per-contig mean and 95% empirical
// quantile bounds, sorted by contig name.
func Summarize(d Distribution) []SummaryRow {
	contigs := make([]string, 0, len(d))
	for c := range d {
		contigs = append(contigs, c)
	}
	sort.Strings(contigs)

	rows := make([]SummaryRow, 0, len(contigs))
	for _, c := range contigs {
		vals := d[c]
		if len(vals) == 0 {
			continue
		}
		sorted := make([]float64, len(vals))
		copy(sorted, vals)
		sort.Float64s(sorted)
		rows = append(rows, SummaryRow{
			Contig: c,
			N:      len(vals),
			Mean:   stat.Mean(sorted, nil),
			Q025:   stat.Quantile(0.025, stat.Empirical, sorted, nil),
			Q975:   stat.Quantile(0.975, stat.Empirical, sorted, nil),
		})
	}
	return rows
}
