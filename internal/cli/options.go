// Package cli parses flags for the asenrich command.
package cli

import (
	"errors"
	"flag"
	"fmt"
	"strings"

	"asenrich/internal/align"
	"asenrich/internal/classify"
	"asenrich/internal/version"
)

// Options holds all asenrich flags, validated.
type Options struct {
	FastqDir  string
	Reference string

	Channels    classify.Range
	MatchProp   float64
	Targets     []string // empty = no restriction
	RejectMulti bool
	PassOnly    bool

	OutputPrefix string
	GenFastq     bool

	Bootstrap int
	Seed      int64
	Threads   int

	Minimap2 string
	Preset   string

	Verbose bool
	Version bool
}

// TargetSet returns the restricted contig set, or nil when unrestricted.
func (o Options) TargetSet() map[string]struct{} {
	if len(o.Targets) == 0 {
		return nil
	}
	set := make(map[string]struct{}, len(o.Targets))
	for _, t := range o.Targets {
		set[t] = struct{}{}
	}
	return set
}

// NewFlagSet returns a configured FlagSet with custom usage/help.
func NewFlagSet(name string) *flag.FlagSet {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.Usage = func() {
		fmt.Fprintf(fs.Output(),
			`%s: adaptive-sampling enrichment analysis for nanopore runs

Aligns each read, splits target/control flow-cell channels and reports
per-barcode, per-contig enrichment with a bootstrap distribution.
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
	var channels string
	var targets string

	fs.StringVar(&opt.FastqDir, "f", "", "input directory containing fastq files [*]")
	fs.StringVar(&opt.FastqDir, "fastq-dir", "", "alias of -f")
	fs.StringVar(&opt.Reference, "i", "", "minimap2 reference (fasta or .mmi) [*]")
	fs.StringVar(&opt.Reference, "reference", "", "alias of -i")

	fs.StringVar(&channels, "c", "1-256", "target channels, in the form \"a-b\" [1-256]")
	fs.Float64Var(&opt.MatchProp, "p", 0.8, "minimum proportion of bases matching reference in alignment [0.8]")
	fs.StringVar(&targets, "t", "", "restrict to comma-separated target contigs (default no restriction)")
	fs.BoolVar(&opt.RejectMulti, "r", false, "remove multi-mapping reads [false]")
	fs.BoolVar(&opt.PassOnly, "b", false, "align only pass reads [false]")

	fs.StringVar(&opt.OutputPrefix, "o", "RU_output", "output prefix [RU_output]")
	fs.BoolVar(&opt.GenFastq, "q", false, "generate fasta files of aligned sequences [false]")

	fs.IntVar(&opt.Bootstrap, "bs", 100, "bootstrap iterations [100]")
	fs.Int64Var(&opt.Seed, "seed", 0, "bootstrap RNG seed (0 = time-derived) [0]")
	fs.IntVar(&opt.Threads, "threads", 0, "bootstrap worker threads (0 = all CPUs) [0]")

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

	if targets != "" {
		for _, t := range strings.Split(targets, ",") {
			if t = strings.TrimSpace(t); t != "" {
				opt.Targets = append(opt.Targets, t)
			}
		}
	}

	// Validation
	if opt.FastqDir == "" {
		return opt, errors.New("-f (fastq directory) is required")
	}
	if opt.Reference == "" {
		return opt, errors.New("-i (reference) is required")
	}
	r, err := classify.ParseRange(channels)
	if err != nil {
		return opt, err
	}
	opt.Channels = r
	if opt.MatchProp < 0 || opt.MatchProp > 1 {
		return opt, errors.New("-p must be within [0,1]")
	}
	if opt.Bootstrap < 0 {
		return opt, errors.New("-bs must be ≥ 0")
	}
	if opt.Threads < 0 {
		return opt, errors.New("--threads must be ≥ 0")
	}
	return opt, nil
}
