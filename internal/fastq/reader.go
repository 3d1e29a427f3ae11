// Package fastq streams reads out of nanopore run directories. It accepts
// both FASTA and FASTQ, plain or gzipped, with multi-line sequence sections.
package fastq

import (
	"bufio"
	"io"
	"strings"
)

// Record is one sequenced read. ID is the first whitespace token of the
// header; Desc is the full header line without its marker byte.
type Record struct {
	ID   string
	Desc string
	Seq  []byte
}

// ForEachRecord parses FASTA/FASTQ records from r and calls fn for each.
// Quality sections are length-matched against the sequence and discarded.
// A non-nil error from fn stops the scan and is returned.
func ForEachRecord(r io.Reader, fn func(Record) error) error {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), 16*1024*1024)

	var last string // buffered header line, marker stripped
	haveLast := false

	nextLine := func() (string, bool) {
		if !sc.Scan() {
			return "", false
		}
		return sc.Text(), true
	}

	for {
		if !haveLast {
			for {
				l, ok := nextLine()
				if !ok {
					return sc.Err()
				}
				if len(l) > 0 && (l[0] == '>' || l[0] == '@') {
					last = l[1:]
					haveLast = true
					break
				}
			}
		}

		desc := last
		id := desc
		if sp := strings.IndexAny(id, " \t"); sp >= 0 {
			id = id[:sp]
		}
		haveLast = false

		var seq []byte
		fastq := false
		for {
			l, ok := nextLine()
			if !ok {
				break
			}
			if len(l) > 0 && (l[0] == '@' || l[0] == '>' || l[0] == '+') {
				if l[0] == '+' {
					fastq = true
				} else {
					last = l[1:]
					haveLast = true
				}
				break
			}
			seq = append(seq, l...)
		}

		if fastq {
			// Consume quality lines until they cover the sequence.
			qlen := 0
			for qlen < len(seq) {
				l, ok := nextLine()
				if !ok {
					break
				}
				qlen += len(l)
			}
		}

		if err := fn(Record{ID: id, Desc: desc, Seq: seq}); err != nil {
			return err
		}
		if !haveLast {
			if fastq {
				continue // next record starts at the following header
			}
			return sc.Err()
		}
	}
}
