package fastq

import (
	"errors"
	"fmt"
	"path/filepath"
	"strconv"
	"strings"
)

// ErrNoChannel reports a read header without a ch=N token.
var ErrNoChannel = errors.New("fastq: no channel token in read header")

// Channel extracts the flow-cell channel number from a nanopore read
// description ("... ch=95 start_time=...").
func Channel(desc string) (int, error) {
	for _, tok := range strings.Fields(desc) {
		v, ok := strings.CutPrefix(tok, "ch=")
		if !ok {
			continue
		}
		ch, err := strconv.Atoi(v)
		if err != nil {
			return 0, fmt.Errorf("fastq: channel token %q: %w", tok, err)
		}
		return ch, nil
	}
	return 0, ErrNoChannel
}

// baseTokens splits a read file's basename (suffixes stripped) on
// underscores: basecaller filenames look like
// "FAL01234_pass_barcode01_abc123_0.fastq.gz".
func baseTokens(path string) []string {
	name := filepath.Base(path)
	for _, ext := range []string{".gz", ".fastq", ".fq"} {
		name = strings.TrimSuffix(name, ext)
	}
	return strings.Split(name, "_")
}

// Barcode derives the multiplexing barcode from a read filename. The third
// underscore token is the barcode slot; anything not containing "barcode"
// means the run was not demultiplexed and maps to "NA".
func Barcode(path string) string {
	tok := baseTokens(path)
	if len(tok) > 2 && strings.Contains(tok[2], "barcode") {
		return tok[2]
	}
	return "NA"
}

// RunLabel returns the pass/fail filter token and barcode for a read file,
// used by the unblock analysis to group output rows.
func RunLabel(path string) (filter, barcode string) {
	tok := baseTokens(path)
	filter = "NA"
	if len(tok) > 1 {
		filter = tok[1]
	}
	return filter, Barcode(path)
}
