package classify

import (
	"testing"

	"asenrich/internal/align"
)

func TestSelectNoHits(t *testing.T) {
	got := Select(nil, 50, SelectOptions{MatchingProportion: 0.5})
	if got.Contig != Unaligned {
		t.Fatalf("contig = %q, want %q", got.Contig, Unaligned)
	}
	if got.MatchedBases != 50 {
		t.Errorf("matched bases = %d, want full length 50", got.MatchedBases)
	}
	if got.Coverage != 0 {
		t.Errorf("coverage = %v, want 0", got.Coverage)
	}
}

func TestSelectBestByMatchedLen(t *testing.T) {
	hits := []align.Hit{
		{Contig: "X", RefStart: 0, RefEnd: 100, MatchedLen: 60},
		{Contig: "Y", RefStart: 0, RefEnd: 100, MatchedLen: 80},
		{Contig: "Z", RefStart: 0, RefEnd: 200, MatchedLen: 70},
	}
	got := Select(hits, 100, SelectOptions{MatchingProportion: 0.5})
	if got.Contig != "Y" || got.MatchedBases != 80 {
		t.Fatalf("got %q/%d, want Y/80", got.Contig, got.MatchedBases)
	}
	if got.Coverage != 0.8 {
		t.Errorf("coverage = %v, want 0.8", got.Coverage)
	}
}

func TestSelectTieKeepsFirstSeen(t *testing.T) {
	hits := []align.Hit{
		{Contig: "first", RefStart: 0, RefEnd: 100, MatchedLen: 80},
		{Contig: "second", RefStart: 0, RefEnd: 100, MatchedLen: 80},
	}
	got := Select(hits, 100, SelectOptions{})
	if got.Contig != "first" {
		t.Fatalf("tie broke to %q, want first-seen", got.Contig)
	}
}

func TestSelectBelowCutoffUnaligned(t *testing.T) {
	hits := []align.Hit{{Contig: "X", RefStart: 0, RefEnd: 100, MatchedLen: 30}}
	got := Select(hits, 100, SelectOptions{MatchingProportion: 0.8})
	if got.Contig != Unaligned {
		t.Fatalf("contig = %q, want unaligned below cutoff", got.Contig)
	}
	if got.MatchedBases != 100 {
		t.Errorf("matched bases = %d, want full length after demotion", got.MatchedBases)
	}
}

func TestSelectRejectMulti(t *testing.T) {
	hits := []align.Hit{
		{Contig: "X", RefStart: 0, RefEnd: 100, MatchedLen: 90},
		{Contig: "Y", RefStart: 0, RefEnd: 100, MatchedLen: 10},
	}
	got := Select(hits, 100, SelectOptions{MatchingProportion: 0.5, RejectMulti: true})
	if got.Contig != Unaligned {
		t.Fatalf("contig = %q, want unaligned for multi-mapper", got.Contig)
	}

	// A single hit passes untouched.
	got = Select(hits[:1], 100, SelectOptions{MatchingProportion: 0.5, RejectMulti: true})
	if got.Contig != "X" {
		t.Fatalf("contig = %q, want X for single hit", got.Contig)
	}
}

func TestSelectRestrictedTargets(t *testing.T) {
	targets := map[string]struct{}{"X": {}}
	hits := []align.Hit{
		{Contig: "Y", RefStart: 0, RefEnd: 100, MatchedLen: 95},
		{Contig: "X", RefStart: 0, RefEnd: 100, MatchedLen: 80},
	}
	got := Select(hits, 100, SelectOptions{MatchingProportion: 0.5, Targets: targets})
	if got.Contig != "X" || got.MatchedBases != 80 {
		t.Fatalf("got %q/%d, want X/80 (Y filtered out)", got.Contig, got.MatchedBases)
	}

	// The filtered-out hit must not count toward multi-map rejection.
	got = Select(hits, 100, SelectOptions{MatchingProportion: 0.5, Targets: targets, RejectMulti: true})
	if got.Contig != "X" {
		t.Fatalf("contig = %q, want X: only one hit passes the filter", got.Contig)
	}
}

func TestSelectZeroSpanGuard(t *testing.T) {
	hits := []align.Hit{
		{Contig: "bad", RefStart: 50, RefEnd: 50, MatchedLen: 99},
		{Contig: "X", RefStart: 0, RefEnd: 100, MatchedLen: 80},
	}
	got := Select(hits, 100, SelectOptions{MatchingProportion: 0.5})
	if got.Contig != "X" {
		t.Fatalf("contig = %q, want X: zero-span hit can never win", got.Contig)
	}
}

// The worked example: 80 of 100 bases matching at cutoff 0.5.
func TestSelectScenario(t *testing.T) {
	hits := []align.Hit{{Contig: "X", RefStart: 100, RefEnd: 200, MatchedLen: 80}}
	got := Select(hits, 100, SelectOptions{MatchingProportion: 0.5})
	if got.Contig != "X" || got.MatchedBases != 80 || got.TotalLength != 100 {
		t.Fatalf("got %+v, want X/80/100", got)
	}
}
