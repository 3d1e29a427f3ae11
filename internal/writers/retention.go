package writers

import (
	"bufio"
	"fmt"
	"os"
)

// RetainedRead is one classified read kept back for FASTA emission.
type RetainedRead struct {
	ID       string
	Identity float64 // coverage of the chosen best alignment
	Seq      []byte
}

type retentionKey struct {
	Group   string // "target" or "nontarget"
	Barcode string
	Contig  string
}

// Retention collects classified reads grouped by channel group, barcode and
// contig for end-of-run FASTA emission.
type Retention struct {
	reads map[retentionKey][]RetainedRead
	order []retentionKey
}

func NewRetention() *Retention {
	return &Retention{reads: make(map[retentionKey][]RetainedRead)}
}

// Add retains one read.
func (r *Retention) Add(target bool, barcode, contig string, read RetainedRead) {
	group := "nontarget"
	if target {
		group = "target"
	}
	k := retentionKey{Group: group, Barcode: barcode, Contig: contig}
	if _, ok := r.reads[k]; !ok {
		r.order = append(r.order, k)
	}
	r.reads[k] = append(r.reads[k], read)
}

// WriteFiles emits one FASTA per group/barcode/contig with reads observed,
// named "<prefix>_<barcode>_<group>_<contig>.fasta". Headers carry the
// contig and alignment identity alongside the read id.
func (r *Retention) WriteFiles(prefix string) error {
	for _, k := range r.order {
		reads := r.reads[k]
		if len(reads) == 0 {
			continue
		}
		path := fmt.Sprintf("%s_%s_%s_%s.fasta", prefix, k.Barcode, k.Group, k.Contig)
		if err := writeFasta(path, k.Contig, reads); err != nil {
			return err
		}
	}
	return nil
}

func writeFasta(path, contig string, reads []RetainedRead) error {
	fh, err := os.Create(path)
	if err != nil {
		return err
	}
	w := bufio.NewWriter(fh)
	for _, rd := range reads {
		if _, err := fmt.Fprintf(w, ">%s\t%s\t%v\n%s\n", rd.ID, contig, rd.Identity, rd.Seq); err != nil {
			_ = fh.Close()
			return err
		}
	}
	if err := w.Flush(); err != nil {
		_ = fh.Close()
		return err
	}
	return fh.Close()
}
