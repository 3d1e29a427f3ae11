// Package align defines the boundary to the external sequence aligner.
// The classification core consumes candidate hits; it never aligns anything
// itself.
package align

import "context"

// Hit is one candidate mapping of a read against a reference contig.
type Hit struct {
	Contig     string
	RefStart   int
	RefEnd     int
	MatchedLen int // residue matches in the alignment
	BlockLen   int // alignment block length including gaps
}

// RefSpan is the reference interval covered by the hit. Hits with degenerate
// coordinates report 0 and can never be selected as a best alignment.
func (h Hit) RefSpan() int {
	s := h.RefEnd - h.RefStart
	if s < 0 {
		s = -s
	}
	return s
}

// Mapper aligns every read in one fastq/fasta file and returns hits grouped
// by read id. Reads with no hits may be absent from the map.
type Mapper interface {
	MapFile(ctx context.Context, path string) (map[string][]Hit, error)
}
