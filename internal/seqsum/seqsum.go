// Package seqsum loads the run-level side tables an analysis consumes: the
// unblocked-read-id list and the sequencing summary's timing columns.
package seqsum

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
)

// IDSet is a set of read ids.
type IDSet map[string]struct{}

// Contains reports membership of id.
func (s IDSet) Contains(id string) bool {
	_, ok := s[id]
	return ok
}

// Sequencing summary columns used here (0-based).
const (
	colReadID    = 4
	colStartTime = 9
)

// LoadIDSet reads one id per line (the unblocked_read_ids.txt layout).
func LoadIDSet(path string) (IDSet, error) {
	fh, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer fh.Close()

	set := make(IDSet)
	sc := bufio.NewScanner(fh)
	for sc.Scan() {
		id := strings.TrimSpace(sc.Text())
		if id != "" {
			set[id] = struct{}{}
		}
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}
	return set, nil
}

// LoadMuxSet extracts ids of reads whose start offset fell before the
// mux-scan period (seconds) from a sequencing summary file. The header line
// is skipped.
func LoadMuxSet(path string, muxPeriod float64) (IDSet, error) {
	fh, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer fh.Close()

	set := make(IDSet)
	sc := bufio.NewScanner(fh)
	sc.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	first := true
	ln := 0
	for sc.Scan() {
		ln++
		if first {
			first = false
			continue
		}
		fields := strings.Split(strings.TrimRight(sc.Text(), "\n"), "\t")
		if len(fields) <= colStartTime {
			return nil, fmt.Errorf("%s:%d: %d columns, want > %d", path, ln, len(fields), colStartTime)
		}
		start, err := strconv.ParseFloat(fields[colStartTime], 64)
		if err != nil {
			return nil, fmt.Errorf("%s:%d: start_time: %w", path, ln, err)
		}
		if start < muxPeriod {
			set[fields[colReadID]] = struct{}{}
		}
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}
	return set, nil
}

// FindSummary locates the sequencing_summary_*.txt file inside a run
// directory.
func FindSummary(dir string) (string, error) {
	matches, err := filepath.Glob(filepath.Join(dir, "sequencing_summary_*.txt"))
	if err != nil {
		return "", err
	}
	if len(matches) == 0 {
		return "", fmt.Errorf("no sequencing_summary_*.txt in %s", dir)
	}
	return matches[0], nil
}
