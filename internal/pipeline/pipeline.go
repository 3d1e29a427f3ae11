package pipeline

import (
	"context"

	"github.com/rs/zerolog"

	"asenrich/internal/align"
	"asenrich/internal/classify"
	"asenrich/internal/fastq"
	"asenrich/internal/seqsum"
)

// Config controls one enrichment-analysis pass over a run directory.
type Config struct {
	Dir      string
	Discover fastq.DiscoverOptions
	Channels classify.Range
	Select   classify.SelectOptions
	MuxIDs   seqsum.IDSet // optional; nil disables mux tagging

	// FileStart, when set, runs before each file's reads are visited, so
	// callers can register barcodes that end up with zero usable reads.
	FileStart func(path, barcode string) error
}

// Visit receives each read's observation along with the raw record so
// callers can retain sequences when asked to.
type Visit func(obs classify.Observation, rec fastq.Record) error

// ForEachRead discovers read files under cfg.Dir, aligns each file through
// mapper, classifies every read and hands it to visit. The first error
// (including context cancellation) stops the walk.
func ForEachRead(ctx context.Context, cfg Config, mapper align.Mapper, log zerolog.Logger, visit Visit) error {
	files, err := fastq.Discover(cfg.Dir, cfg.Discover)
	if err != nil {
		return err
	}

	for _, f := range files {
		if err := ctx.Err(); err != nil {
			return err
		}
		barcode := fastq.Barcode(f)
		if cfg.FileStart != nil {
			if err := cfg.FileStart(f, barcode); err != nil {
				return err
			}
		}

		log.Info().Str("file", f).Str("barcode", barcode).Msg("aligning")
		hits, err := mapper.MapFile(ctx, f)
		if err != nil {
			return err
		}

		rc, err := fastq.Open(f)
		if err != nil {
			return err
		}
		err = fastq.ForEachRecord(rc, func(rec fastq.Record) error {
			if err := ctx.Err(); err != nil {
				return err
			}
			channel, err := fastq.Channel(rec.Desc)
			if err != nil {
				return err
			}
			target, err := cfg.Channels.Contains(channel)
			if err != nil {
				return err
			}
			obs := classify.Observation{
				ReadID:  rec.ID,
				Barcode: barcode,
				Channel: channel,
				Target:  target,
				Mux:     cfg.MuxIDs.Contains(rec.ID),
				Class:   classify.Select(hits[rec.ID], len(rec.Seq), cfg.Select),
			}
			return visit(obs, rec)
		})
		cerr := rc.Close()
		if err != nil {
			return err
		}
		if cerr != nil {
			return cerr
		}
	}
	return nil
}
