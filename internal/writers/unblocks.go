package writers

import (
	"fmt"
	"io"
)

// UnblockRow is one read in the unblock analysis table.
type UnblockRow struct {
	Type    string // "Target" (sequenced to completion) or "Non-target" (unblocked)
	Filter  string // pass/fail token from the source filename
	Barcode string
	Ref     string
	Length  int
	Name    string
	Mux     int // 1 if the read started inside the mux-scan window
}

// WriteUnblocks renders the per-read unblock table.
func WriteUnblocks(w io.Writer, rows []UnblockRow) error {
	if _, err := fmt.Fprintln(w, "Type\tFilter\tBarcode\tRef\tLength\tName\tMux"); err != nil {
		return err
	}
	for _, r := range rows {
		_, err := fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%d\t%s\t%d\n",
			r.Type, r.Filter, r.Barcode, r.Ref, r.Length, r.Name, r.Mux)
		if err != nil {
			return err
		}
	}
	return nil
}
