// Package app wires the asenrich command: classification, aggregation,
// bootstrap and output files.
package app

import (
	"bufio"
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"time"

	"asenrich/internal/align"
	"asenrich/internal/bootstrap"
	"asenrich/internal/classify"
	"asenrich/internal/cli"
	"asenrich/internal/cmdutil"
	"asenrich/internal/fastq"
	"asenrich/internal/pipeline"
	"asenrich/internal/stats"
	"asenrich/internal/version"
	"asenrich/internal/writers"
)

func RunContext(parent context.Context, argv []string, stdout, stderr io.Writer) int {
	if len(argv) == 0 {
		argv = []string{"-h"}
	}
	fs := cli.NewFlagSet("asenrich")
	fs.SetOutput(io.Discard)

	opts, err := cli.ParseArgs(fs, argv)
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
		_, _ = fmt.Fprintf(stdout, "asenrich version %s\n", version.Version)
		return 0
	}

	mapper := &align.Minimap2{
		Binary:    opts.Minimap2,
		Reference: opts.Reference,
		Preset:    opts.Preset,
		Secondary: true, // multi-map rejection needs every candidate hit
	}
	return RunWithMapper(parent, opts, mapper, stderr)
}

// RunWithMapper runs the analysis with an explicit aligner, which tests
// substitute with a fake.
func RunWithMapper(ctx context.Context, opts cli.Options, mapper align.Mapper, stderr io.Writer) int {
	log := cmdutil.NewLogger(stderr, opts.Verbose)

	acc := stats.New()
	groups := make(map[string]*bootstrap.Groups)
	var retained *writers.Retention
	if opts.GenFastq {
		retained = writers.NewRetention()
	}

	cfg := pipeline.Config{
		Dir: opts.FastqDir,
		// The basecaller gzips its per-barcode batches; anything else in
		// the run directory is not read data.
		Discover: fastq.DiscoverOptions{PassOnly: opts.PassOnly, GzOnly: true},
		Channels: opts.Channels,
		Select: classify.SelectOptions{
			MatchingProportion: opts.MatchProp,
			Targets:            opts.TargetSet(),
			RejectMulti:        opts.RejectMulti,
		},
		FileStart: func(path, barcode string) error {
			acc.Ensure(barcode)
			if _, ok := groups[barcode]; !ok {
				groups[barcode] = &bootstrap.Groups{}
			}
			return nil
		},
	}

	err := pipeline.ForEachRead(ctx, cfg, mapper, log, func(obs classify.Observation, rec fastq.Record) error {
		acc.Update(obs)
		groups[obs.Barcode].Add(obs.Target, bootstrap.Read{
			Contig:       obs.Class.Contig,
			MatchedBases: obs.Class.MatchedBases,
			TotalLength:  obs.Class.TotalLength,
		})
		if retained != nil {
			retained.Add(obs.Target, obs.Barcode, obs.Class.Contig, writers.RetainedRead{
				ID:       obs.ReadID,
				Identity: obs.Class.Coverage,
				Seq:      rec.Seq,
			})
		}
		return nil
	})
	if err != nil {
		if errors.Is(err, context.Canceled) {
			return 130
		}
		_, _ = fmt.Fprintln(stderr, err)
		return 3
	}

	for _, barcode := range acc.Barcodes() {
		bc := acc.Counters(barcode)
		log.Debug().
			Str("barcode", barcode).
			Int("total_reads", bc.TotalReads).
			Int("target_reads_mapped", bc.TargetReadsMapped).
			Int("target_bases", bc.TargetBases).
			Int("non_target_reads_mapped", bc.NonTargetReadsMapped).
			Int("non_target_bases", bc.NonTargetBases).
			Msg("barcode totals")
	}

	seed := opts.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	log.Info().Int64("seed", seed).Int("iterations", opts.Bootstrap).Msg("bootstrapping")

	dists := make(map[string]bootstrap.Distribution)
	for i, barcode := range acc.Barcodes() {
		dists[barcode] = bootstrap.Run(*groups[barcode], bootstrap.Config{
			Iterations: opts.Bootstrap,
			// Distinct seed block per barcode so barcodes draw
			// independent streams.
			Seed:    seed + int64(i)*int64(opts.Bootstrap+1),
			Workers: opts.Threads,
		})
	}

	outputs := []struct {
		path  string
		write func(io.Writer) error
	}{
		{opts.OutputPrefix + "_bootstrap.txt", func(w io.Writer) error {
			return writers.WriteBootstrap(w, acc.Barcodes(), dists)
		}},
		{opts.OutputPrefix + "_bootstrap_summary.txt", func(w io.Writer) error {
			return writers.WriteBootstrapSummary(w, acc.Barcodes(), dists)
		}},
		{opts.OutputPrefix + "_summary.txt", func(w io.Writer) error {
			return writers.WriteSummary(w, acc)
		}},
	}
	for _, o := range outputs {
		if err := writeFile(o.path, o.write); err != nil {
			if writers.IsBrokenPipe(err) {
				return 0
			}
			_, _ = fmt.Fprintln(stderr, err)
			return 3
		}
		log.Info().Str("path", o.path).Msg("wrote")
	}
	if retained != nil {
		if err := retained.WriteFiles(opts.OutputPrefix); err != nil {
			_, _ = fmt.Fprintln(stderr, err)
			return 3
		}
	}
	return 0
}

func writeFile(path string, write func(io.Writer) error) error {
	fh, err := os.Create(path)
	if err != nil {
		return err
	}
	w := bufio.NewWriter(fh)
	if err := write(w); err != nil {
		_ = fh.Close()
		return err
	}
	if err := w.Flush(); err != nil {
		_ = fh.Close()
		return err
	}
	return fh.Close()
}

func Run(argv []string, stdout, stderr io.Writer) int {
	return RunContext(context.Background(), argv, stdout, stderr)
}
