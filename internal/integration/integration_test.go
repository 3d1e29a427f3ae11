package integration

import (
	"bytes"
	"compress/gzip"
	"context"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"asenrich/internal/align"
	"asenrich/internal/app"
	"asenrich/internal/cli"
)

// fakeMapper returns the same canned hits for every file.
type fakeMapper map[string][]align.Hit

func (m fakeMapper) MapFile(ctx context.Context, path string) (map[string][]align.Hit, error) {
	return m, nil
}

func writeGzFastq(t *testing.T, path, content string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatal(err)
	}
	fh, err := os.Create(path)
	if err != nil {
		t.Fatal(err)
	}
	zw := gzip.NewWriter(fh)
	if _, err := zw.Write([]byte(content)); err != nil {
		t.Fatal(err)
	}
	if err := zw.Close(); err != nil {
		t.Fatal(err)
	}
	if err := fh.Close(); err != nil {
		t.Fatal(err)
	}
}

func fastqRecord(id string, channel string, n int) string {
	seq := strings.Repeat("A", n)
	qual := strings.Repeat("!", n)
	return "@" + id + " runid=r ch=" + channel + "\n" + seq + "\n+\n" + qual + "\n"
}

func parseOpts(t *testing.T, argv ...string) cli.Options {
	t.Helper()
	fs := cli.NewFlagSet("asenrich")
	fs.SetOutput(io.Discard)
	opts, err := cli.ParseArgs(fs, argv)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	return opts
}

func TestEnrichmentEndToEnd(t *testing.T) {
	dir := t.TempDir()
	run := filepath.Join(dir, "run")
	writeGzFastq(t, filepath.Join(run, "fastq_pass", "FAL_pass_barcode01_ab_0.fastq.gz"),
		fastqRecord("readA", "2", 100)+fastqRecord("readB", "10", 50))

	prefix := filepath.Join(dir, "out")
	opts := parseOpts(t,
		"-f", run,
		"-i", "ref.mmi",
		"-c", "1-4",
		"-p", "0.5",
		"-bs", "3",
		"--seed", "1",
		"-q",
		"-o", prefix,
	)
	mapper := fakeMapper{
		"readA": {{Contig: "X", RefStart: 0, RefEnd: 100, MatchedLen: 80, BlockLen: 95}},
	}

	var errBuf bytes.Buffer
	code := app.RunWithMapper(context.Background(), opts, mapper, &errBuf)
	if code != 0 {
		t.Fatalf("exit %d, stderr: %s", code, errBuf.String())
	}

	sum, err := os.ReadFile(prefix + "_summary.txt")
	if err != nil {
		t.Fatal(err)
	}
	for _, want := range []string{
		"Reads_mapped\tTarget\tbarcode01\tX\t1",
		"Bases_mapped\tTarget\tbarcode01\tX\t80",
		"Reads_total\tTarget\tbarcode01\tTotal\t1",
		"Bases_total\tTarget\tbarcode01\tTotal\t100",
		"Reads_mapped\tNon-target\tbarcode01\tunaligned\t1",
		"Bases_total\tNon-target\tbarcode01\tTotal\t50",
	} {
		if !strings.Contains(string(sum), want+"\n") {
			t.Errorf("summary missing %q:\n%s", want, sum)
		}
	}

	// Single-element groups force every draw: enrichment is exactly
	// (80/100) / (1/50) = 40 in all iterations.
	boot, err := os.ReadFile(prefix + "_bootstrap.txt")
	if err != nil {
		t.Fatal(err)
	}
	if got := strings.Count(string(boot), "barcode01\tX\t40\n"); got != 3 {
		t.Errorf("bootstrap rows = %d, want 3:\n%s", got, boot)
	}

	if _, err := os.Stat(prefix + "_bootstrap_summary.txt"); err != nil {
		t.Errorf("missing bootstrap summary: %v", err)
	}
	if _, err := os.Stat(prefix + "_barcode01_target_X.fasta"); err != nil {
		t.Errorf("missing retained fasta: %v", err)
	}
}

func TestEnrichmentNoArgsShowsUsage(t *testing.T) {
	var out, errBuf bytes.Buffer
	code := app.RunContext(context.Background(), nil, &out, &errBuf)
	if code != 0 {
		t.Fatalf("exit %d, want 0", code)
	}
	if !strings.Contains(out.String(), "Usage of asenrich") {
		t.Errorf("stdout missing usage:\n%s", out.String())
	}
}

func TestEnrichmentInvalidChannelFatal(t *testing.T) {
	dir := t.TempDir()
	run := filepath.Join(dir, "run")
	writeGzFastq(t, filepath.Join(run, "fastq_pass", "FAL_pass_barcode01_ab_0.fastq.gz"),
		fastqRecord("readA", "600", 100))

	opts := parseOpts(t, "-f", run, "-i", "ref.mmi", "-o", filepath.Join(dir, "out"))

	var errBuf bytes.Buffer
	code := app.RunWithMapper(context.Background(), opts, fakeMapper{}, &errBuf)
	if code != 3 {
		t.Fatalf("exit %d, want 3", code)
	}
	if !strings.Contains(errBuf.String(), "channel") {
		t.Errorf("stderr: %s", errBuf.String())
	}
}

func TestEnrichmentSeedReproducible(t *testing.T) {
	dir := t.TempDir()
	run := filepath.Join(dir, "run")
	var reads strings.Builder
	for i, ch := range []string{"1", "2", "3", "9", "10", "11"} {
		id := string(rune('a' + i))
		reads.WriteString(fastqRecord("read_"+id, ch, 100))
	}
	writeGzFastq(t, filepath.Join(run, "fastq_pass", "FAL_pass_barcode01_ab_0.fastq.gz"), reads.String())

	mapper := fakeMapper{
		"read_a": {{Contig: "X", RefStart: 0, RefEnd: 100, MatchedLen: 90}},
		"read_d": {{Contig: "X", RefStart: 0, RefEnd: 100, MatchedLen: 85}},
	}

	runOnce := func(prefix string) string {
		opts := parseOpts(t,
			"-f", run, "-i", "ref.mmi", "-c", "1-4",
			"-bs", "20", "--seed", "7", "-o", prefix,
		)
		var errBuf bytes.Buffer
		if code := app.RunWithMapper(context.Background(), opts, mapper, &errBuf); code != 0 {
			t.Fatalf("exit %d: %s", code, errBuf.String())
		}
		data, err := os.ReadFile(prefix + "_bootstrap.txt")
		if err != nil {
			t.Fatal(err)
		}
		return string(data)
	}

	first := runOnce(filepath.Join(dir, "o1"))
	second := runOnce(filepath.Join(dir, "o2"))
	if first != second {
		t.Error("same seed produced different bootstrap output")
	}
}
