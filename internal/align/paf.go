package align

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// PAF mandatory columns (0-based). Everything after column 11 is optional
// SAM-like tags and ignored here.
const (
	pafColQueryName = 0
	pafColContig    = 5
	pafColRefStart  = 7
	pafColRefEnd    = 8
	pafColMatched   = 9
	pafColBlockLen  = 10
	pafMinColumns   = 12
)

// ParsePAFLine parses one PAF record into the query read id and a Hit.
func ParsePAFLine(line string) (string, Hit, error) {
	f := strings.Split(line, "\t")
	if len(f) < pafMinColumns {
		return "", Hit{}, fmt.Errorf("paf: %d columns, want >= %d", len(f), pafMinColumns)
	}
	var (
		h   Hit
		err error
	)
	h.Contig = f[pafColContig]
	if h.RefStart, err = strconv.Atoi(f[pafColRefStart]); err != nil {
		return "", Hit{}, fmt.Errorf("paf: ref start %q: %w", f[pafColRefStart], err)
	}
	if h.RefEnd, err = strconv.Atoi(f[pafColRefEnd]); err != nil {
		return "", Hit{}, fmt.Errorf("paf: ref end %q: %w", f[pafColRefEnd], err)
	}
	if h.MatchedLen, err = strconv.Atoi(f[pafColMatched]); err != nil {
		return "", Hit{}, fmt.Errorf("paf: matched len %q: %w", f[pafColMatched], err)
	}
	if h.BlockLen, err = strconv.Atoi(f[pafColBlockLen]); err != nil {
		return "", Hit{}, fmt.Errorf("paf: block len %q: %w", f[pafColBlockLen], err)
	}
	return f[pafColQueryName], h, nil
}

// ReadPAF consumes a PAF stream and groups hits by query read id, preserving
// aligner output order within each read.
func ReadPAF(r io.Reader) (map[string][]Hit, error) {
	hits := make(map[string][]Hit)
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), 4*1024*1024)
	ln := 0
	for sc.Scan() {
		ln++
		line := sc.Text()
		if line == "" {
			continue
		}
		id, h, err := ParsePAFLine(line)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", ln, err)
		}
		hits[id] = append(hits[id], h)
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}
	return hits, nil
}
