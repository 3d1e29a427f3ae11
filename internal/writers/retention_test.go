package writers

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestRetentionWriteFiles(t *testing.T) {
	dir := t.TempDir()
	prefix := filepath.Join(dir, "run1")

	r := NewRetention()
	r.Add(true, "barcode01", "X", RetainedRead{ID: "r1", Identity: 0.8, Seq: []byte("ACGT")})
	r.Add(true, "barcode01", "X", RetainedRead{ID: "r2", Identity: 0.9, Seq: []byte("TT")})
	r.Add(false, "barcode01", "unaligned", RetainedRead{ID: "r3", Identity: 0, Seq: []byte("GG")})

	if err := r.WriteFiles(prefix); err != nil {
		t.Fatal(err)
	}

	data, err := os.ReadFile(prefix + "_barcode01_target_X.fasta")
	if err != nil {
		t.Fatal(err)
	}
	got := string(data)
	if !strings.Contains(got, ">r1\tX\t0.8\nACGT\n") || !strings.Contains(got, ">r2\tX\t0.9\nTT\n") {
		t.Errorf("target fasta content:\n%s", got)
	}

	if _, err := os.Stat(prefix + "_barcode01_nontarget_unaligned.fasta"); err != nil {
		t.Errorf("missing non-target fasta: %v", err)
	}
}
