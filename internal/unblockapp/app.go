// Package unblockapp wires the asunblocks command: per-read partitioning by
// the unblocked-read-id set with mux tagging and first-hit labelling.
package unblockapp

import (
	"bufio"
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"asenrich/internal/align"
	"asenrich/internal/cmdutil"
	"asenrich/internal/fastq"
	"asenrich/internal/seqsum"
	"asenrich/internal/unblockcli"
	"asenrich/internal/version"
	"asenrich/internal/writers"
)

// NoAlignment is the reference label for reads processed without a mapper.
const NoAlignment = "None"

func RunContext(parent context.Context, argv []string, stdout, stderr io.Writer) int {
	if len(argv) == 0 {
		argv = []string{"-h"}
	}
	fs := unblockcli.NewFlagSet("asunblocks")
	fs.SetOutput(io.Discard)

	opts, err := unblockcli.ParseArgs(fs, argv)
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			fs.SetOutput(stdout)
			fs.Usage()
			return 0
		}
		_, _ = fmt.Fprintln(stderr, err)
		fs.SetOutput(stderr)
		fs.Usage()
		return 2
	}
	if opts.Version {
		_, _ = fmt.Fprintf(stdout, "asunblocks version %s\n", version.Version)
		return 0
	}

	var mapper align.Mapper
	if opts.Reference != "" {
		mapper = &align.Minimap2{
			Binary:    opts.Minimap2,
			Reference: opts.Reference,
			Preset:    opts.Preset,
		}
	}
	return RunWithMapper(parent, opts, mapper, stderr)
}

// RunWithMapper runs the analysis with an explicit aligner (nil disables
// alignment); tests substitute a fake.
func RunWithMapper(ctx context.Context, opts unblockcli.Options, mapper align.Mapper, stderr io.Writer) int {
	log := cmdutil.NewLogger(stderr, opts.Verbose)

	unblocksPath := opts.Unblocks
	if unblocksPath == "" {
		unblocksPath = filepath.Join(opts.InDir, "unblocked_read_ids.txt")
	}
	summaryPath := opts.Summary
	if summaryPath == "" {
		p, err := seqsum.FindSummary(opts.InDir)
		if err != nil {
			_, _ = fmt.Fprintln(stderr, err)
			return 3
		}
		summaryPath = p
	}

	unblocked, err := seqsum.LoadIDSet(unblocksPath)
	if err != nil {
		_, _ = fmt.Fprintln(stderr, err)
		return 3
	}
	log.Info().Int("unblocks", len(unblocked)).Str("path", unblocksPath).Msg("loaded unblocked read ids")

	muxIDs, err := seqsum.LoadMuxSet(summaryPath, float64(opts.MuxPeriod))
	if err != nil {
		_, _ = fmt.Fprintln(stderr, err)
		return 3
	}
	log.Info().Int("mux_reads", len(muxIDs)).Str("path", summaryPath).Msg("loaded mux-period read ids")

	if mapper != nil {
		log.Info().Str("reference", opts.Reference).Msg("aligning reads")
	}

	files, err := fastq.Discover(opts.InDir, fastq.DiscoverOptions{})
	if err != nil {
		_, _ = fmt.Fprintln(stderr, err)
		return 3
	}

	var targetRows, unblockRows []writers.UnblockRow
	for _, f := range files {
		if err := ctx.Err(); err != nil {
			return 130
		}
		filter, barcode := fastq.RunLabel(f)

		var hits map[string][]align.Hit
		if mapper != nil {
			hits, err = mapper.MapFile(ctx, f)
			if err != nil {
				_, _ = fmt.Fprintln(stderr, err)
				return 3
			}
		}

		rc, err := fastq.Open(f)
		if err != nil {
			_, _ = fmt.Fprintln(stderr, err)
			return 3
		}
		err = fastq.ForEachRecord(rc, func(rec fastq.Record) error {
			ref := NoAlignment
			if hs := hits[rec.ID]; len(hs) > 0 {
				// First mapping only; this analysis cares about identity of
				// the molecule, not alignment quality.
				ref = hs[0].Contig
			}
			mux := 0
			if muxIDs.Contains(rec.ID) {
				mux = 1
			}
			row := writers.UnblockRow{
				Filter:  filter,
				Barcode: barcode,
				Ref:     ref,
				Length:  len(rec.Seq),
				Name:    rec.ID,
				Mux:     mux,
			}
			if unblocked.Contains(rec.ID) {
				row.Type = "Non-target"
				unblockRows = append(unblockRows, row)
			} else {
				row.Type = "Target"
				targetRows = append(targetRows, row)
			}
			return nil
		})
		cerr := rc.Close()
		if err == nil {
			err = cerr
		}
		if err != nil {
			_, _ = fmt.Fprintln(stderr, err)
			return 3
		}
	}

	fh, err := os.Create(opts.Out)
	if err != nil {
		_, _ = fmt.Fprintln(stderr, err)
		return 3
	}
	w := bufio.NewWriter(fh)
	if err := writers.WriteUnblocks(w, append(targetRows, unblockRows...)); err == nil {
		err = w.Flush()
	}
	if cerr := fh.Close(); err == nil {
		err = cerr
	}
	if err != nil {
		if writers.IsBrokenPipe(err) {
			return 0
		}
		_, _ = fmt.Fprintln(stderr, err)
		return 3
	}
	log.Info().Str("path", opts.Out).Int("target", len(targetRows)).Int("unblocked", len(unblockRows)).Msg("wrote")
	return 0
}

func Run(argv []string, stdout, stderr io.Writer) int {
	return RunContext(context.Background(), argv, stdout, stderr)
}
