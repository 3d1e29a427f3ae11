package fastq

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func touch(t *testing.T, path string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, nil, 0o644); err != nil {
		t.Fatal(err)
	}
}

func TestDiscover(t *testing.T) {
	dir := t.TempDir()
	touch(t, filepath.Join(dir, "fastq_pass", "a_pass_barcode01_x_0.fastq.gz"))
	touch(t, filepath.Join(dir, "fastq_fail", "a_fail_barcode01_x_0.fastq"))
	touch(t, filepath.Join(dir, "fastq_pass", "notes.txt"))
	touch(t, filepath.Join(dir, "b.fq"))

	all, err := Discover(dir, DiscoverOptions{})
	if err != nil {
		t.Fatal(err)
	}
	if len(all) != 3 {
		t.Fatalf("got %d files, want 3: %v", len(all), all)
	}

	pass, err := Discover(dir, DiscoverOptions{PassOnly: true})
	if err != nil {
		t.Fatal(err)
	}
	if len(pass) != 1 || !strings.Contains(pass[0], "fastq_pass") {
		t.Fatalf("pass-only = %v", pass)
	}

	gz, err := Discover(dir, DiscoverOptions{GzOnly: true})
	if err != nil {
		t.Fatal(err)
	}
	if len(gz) != 1 || !strings.HasSuffix(gz[0], ".gz") {
		t.Fatalf("gz-only = %v", gz)
	}
}
