package writers

import (
	"bytes"
	"strings"
	"testing"
)

func TestWriteUnblocks(t *testing.T) {
	rows := []UnblockRow{
		{Type: "Target", Filter: "pass", Barcode: "barcode01", Ref: "X", Length: 120, Name: "r1", Mux: 1},
		{Type: "Non-target", Filter: "pass", Barcode: "NA", Ref: "None", Length: 45, Name: "r2", Mux: 0},
	}

	var buf bytes.Buffer
	if err := WriteUnblocks(&buf, rows); err != nil {
		t.Fatal(err)
	}
	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	if len(lines) != 3 {
		t.Fatalf("got %d lines, want header + 2 rows", len(lines))
	}
	if lines[0] != "Type\tFilter\tBarcode\tRef\tLength\tName\tMux" {
		t.Errorf("header = %q", lines[0])
	}
	if lines[1] != "Target\tpass\tbarcode01\tX\t120\tr1\t1" {
		t.Errorf("row = %q", lines[1])
	}
	if lines[2] != "Non-target\tpass\tNA\tNone\t45\tr2\t0" {
		t.Errorf("row = %q", lines[2])
	}
}
