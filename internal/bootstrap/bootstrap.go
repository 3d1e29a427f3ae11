// Package bootstrap estimates the sampling distribution of per-contig
// enrichment by resampling reads with replacement.
package bootstrap

import (
	"math/rand"
	"runtime"
	"time"

	"github.com/sourcegraph/conc/pool"
)

// Read is the retained per-read tuple the estimator resamples.
type Read struct {
	Contig       string
	MatchedBases int
	TotalLength  int
}

// Groups holds one barcode's retained reads split by channel group.
type Groups struct {
	Target  []Read
	Control []Read
}

// Add retains one read in the appropriate group.
func (g *Groups) Add(target bool, r Read) {
	if target {
		g.Target = append(g.Target, r)
	} else {
		g.Control = append(g.Control, r)
	}
}

// Distribution maps contig name to its enrichment values in iteration order.
// A contig missing from an iteration's target sample contributes no value
// for that iteration.
type Distribution map[string][]float64

// Config controls a bootstrap run.
type Config struct {
	Iterations int
	Seed       int64 // 0 = derive from wall clock
	Workers    int   // 0 = GOMAXPROCS
}

// Run draws Iterations resamples of the target and control groups and
// returns the per-contig enrichment distribution.
//
// Iterations are independent: each gets its own RNG derived from Seed and
// its index, and writes to its own result slot, so the output is identical
// for any worker count.
func Run(g Groups, cfg Config) Distribution {
	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	workers := cfg.Workers
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}

	results := make([]map[string]float64, cfg.Iterations)
	p := pool.New().WithMaxGoroutines(workers)
	for i := 0; i < cfg.Iterations; i++ {
		i := i
		p.Go(func() {
			rng := rand.New(rand.NewSource(seed + int64(i)))
			results[i] = iterate(rng, g.Target, g.Control)
		})
	}
	p.Wait()

	dist := make(Distribution)
	for _, res := range results {
		for contig, v := range res {
			dist[contig] = append(dist[contig], v)
		}
	}
	return dist
}

// resample draws len(src) reads from src with replacement. An empty source
// yields an empty sample rather than an error.
func resample(rng *rand.Rand, src []Read) []Read {
	if len(src) == 0 {
		return nil
	}
	out := make([]Read, len(src))
	for i := range out {
		out[i] = src[rng.Intn(len(src))]
	}
	return out
}

// iterate performs one bootstrap round and returns one enrichment value per
// contig appearing in the target sample.
func iterate(rng *rand.Rand, target, control []Read) map[string]float64 {
	tSample := resample(rng, target)
	cSample := resample(rng, control)

	tBases := make(map[string]int)
	tTotal := 0
	for _, r := range tSample {
		tBases[r.Contig] += r.MatchedBases
		tTotal += r.TotalLength
	}

	// Only contigs seen in the target sample are tracked on the control side.
	cBases := make(map[string]int)
	cTotal := 0
	for _, r := range cSample {
		cTotal += r.TotalLength
		if _, ok := tBases[r.Contig]; ok {
			cBases[r.Contig] += r.MatchedBases
		}
	}

	out := make(map[string]float64, len(tBases))
	for contig, tb := range tBases {
		if tTotal == 0 {
			out[contig] = 0
			continue
		}
		// Floor control counts to one base so the ratio stays finite.
		cb := cBases[contig]
		if cb == 0 {
			cb = 1
		}
		ct := cTotal
		if ct == 0 {
			ct = 1
		}
		out[contig] = (float64(tb) / float64(tTotal)) / (float64(cb) / float64(ct))
	}
	return out
}
