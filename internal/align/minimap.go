package align

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"os/exec"
	"strings"
)

// DefaultPreset is the minimap2 preset for nanopore reads.
const DefaultPreset = "map-ont"

// Minimap2 runs the minimap2 binary over whole read files and collects PAF
// output. The reference may be a fasta or a prebuilt .mmi index.
type Minimap2 struct {
	Binary    string // path to minimap2; "" means look it up on PATH
	Reference string
	Preset    string // "" means DefaultPreset
	Secondary bool   // keep secondary alignments (needed for multi-map detection)
}

func (m *Minimap2) args(path string) []string {
	preset := m.Preset
	if preset == "" {
		preset = DefaultPreset
	}
	a := []string{"-x", preset}
	if m.Secondary {
		a = append(a, "--secondary=yes")
	}
	return append(a, m.Reference, path)
}

// MapFile implements Mapper by invoking minimap2 on one read file.
func (m *Minimap2) MapFile(ctx context.Context, path string) (map[string][]Hit, error) {
	bin := m.Binary
	if bin == "" {
		bin = "minimap2"
	}
	cmd := exec.CommandContext(ctx, bin, m.args(path)...)

	var stderr bytes.Buffer
	cmd.Stderr = &stderr
	out, err := cmd.StdoutPipe()
	if err != nil {
		return nil, err
	}
	if err := cmd.Start(); err != nil {
		return nil, fmt.Errorf("minimap2: %w", err)
	}
	hits, perr := ReadPAF(out)
	if perr != nil {
		// The parser stopped mid-stream; drain the rest so the aligner
		// cannot block on a full pipe and stall Wait.
		_, _ = io.Copy(io.Discard, out)
	}
	werr := cmd.Wait()
	if werr != nil {
		msg := strings.TrimSpace(stderr.String())
		if msg != "" {
			return nil, fmt.Errorf("minimap2 %s: %w: %s", path, werr, msg)
		}
		return nil, fmt.Errorf("minimap2 %s: %w", path, werr)
	}
	if perr != nil {
		return nil, fmt.Errorf("minimap2 %s: %w", path, perr)
	}
	return hits, nil
}
