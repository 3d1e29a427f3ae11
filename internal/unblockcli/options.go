// Package unblockcli parses flags for the asunblocks command.
package unblockcli

import (
	"errors"
	"flag"
	"fmt"

	"asenrich/internal/align"
	"asenrich/internal/version"
)

// Options holds all asunblocks flags, validated.
type Options struct {
	InDir     string
	Unblocks  string // "" = <indir>/unblocked_read_ids.txt
	Summary   string // "" = first sequencing_summary_*.txt under indir
	MuxPeriod int    // seconds
	Out       string
	Reference string // "" = no alignment

	Minimap2 string
	Preset   string

	Verbose bool
	Version bool
}

// NewFlagSet returns a configured FlagSet with custom usage/help.
func NewFlagSet(name string) *flag.FlagSet {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.Usage = func() {
		fmt.Fprintf(fs.Output(),
			`%s: per-read unblock analysis for nanopore adaptive-sampling runs

Partitions reads by membership in the unblocked-read-id set, tags reads
started during the mux scan and labels each with its first reference hit.
Version: %s

Usage of %s:
`, name, version.Version, name)
		fs.PrintDefaults()
	}
	return fs
}

// ParseArgs registers and parses all flags, returns an Options struct.
func ParseArgs(fs *flag.FlagSet, argv []string) (Options, error) {
	var opt Options
	var help bool

	fs.StringVar(&opt.InDir, "indir", "", "path to read directory [*]")
	fs.StringVar(&opt.Unblocks, "unblocks", "", "path to unblocks file (default inferred from --indir)")
	fs.StringVar(&opt.Summary, "summary", "", "path to sequencing summary (default inferred from --indir)")
	fs.IntVar(&opt.MuxPeriod, "mux-period", 480, "mux-scan period in seconds; earlier reads are tagged [480]")
	fs.StringVar(&opt.Out, "out", "result.txt", "output file [result.txt]")
	fs.StringVar(&opt.Reference, "ref", "", "minimap2 index; no alignment done if not specified")

	fs.StringVar(&opt.Minimap2, "minimap2", "", "path to minimap2 binary (default: from PATH)")
	fs.StringVar(&opt.Preset, "preset", align.DefaultPreset, "minimap2 preset ["+align.DefaultPreset+"]")

	fs.BoolVar(&opt.Verbose, "v", false, "verbose output [false]")
	fs.BoolVar(&opt.Verbose, "verbose", false, "alias of -v")
	fs.BoolVar(&opt.Version, "version", false, "print version and exit [false]")
	fs.BoolVar(&help, "h", false, "show this help message [false]")

	if err := fs.Parse(argv); err != nil {
		return opt, err
	}
	if help {
		fs.Usage()
		return opt, flag.ErrHelp
	}
	if opt.Version {
		return opt, nil
	}

	if opt.InDir == "" {
		return opt, errors.New("--indir is required")
	}
	if opt.MuxPeriod < 0 {
		return opt, errors.New("--mux-period must be ≥ 0")
	}
	return opt, nil
}
