package unblockcli

import (
	"io"
	"testing"
)

func parse(t *testing.T, argv ...string) (Options, error) {
	t.Helper()
	fs := NewFlagSet("asunblocks-test")
	fs.SetOutput(io.Discard)
	return ParseArgs(fs, argv)
}

func TestParseDefaults(t *testing.T) {
	opt, err := parse(t, "--indir", "run1/")
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if opt.MuxPeriod != 480 {
		t.Errorf("mux period = %d, want 480", opt.MuxPeriod)
	}
	if opt.Out != "result.txt" {
		t.Errorf("out = %q, want result.txt", opt.Out)
	}
	if opt.Reference != "" || opt.Unblocks != "" || opt.Summary != "" {
		t.Errorf("inferred paths should default empty: %+v", opt)
	}
}

func TestParseValidation(t *testing.T) {
	if _, err := parse(t); err == nil {
		t.Error("expected error without --indir")
	}
	if _, err := parse(t, "--indir", "x", "--mux-period", "-1"); err == nil {
		t.Error("expected error for negative mux period")
	}
}
