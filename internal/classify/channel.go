package classify

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// Physical channel bounds of the flow cell.
const (
	MinChannel = 1
	MaxChannel = 512
)

// ErrInvalidChannel reports a channel number outside the physical range.
var ErrInvalidChannel = errors.New("channel outside [1,512]")

// Range is the inclusive window of channels subject to adaptive sampling.
type Range struct {
	Min, Max int
}

// ParseRange parses "a-b" into a Range and validates it against the device
// bounds.
func ParseRange(s string) (Range, error) {
	lo, hi, ok := strings.Cut(s, "-")
	if !ok {
		return Range{}, fmt.Errorf("channel range %q: want \"a-b\"", s)
	}
	min, err := strconv.Atoi(strings.TrimSpace(lo))
	if err != nil {
		return Range{}, fmt.Errorf("channel range %q: %w", s, err)
	}
	max, err := strconv.Atoi(strings.TrimSpace(hi))
	if err != nil {
		return Range{}, fmt.Errorf("channel range %q: %w", s, err)
	}
	r := Range{Min: min, Max: max}
	if err := r.Validate(); err != nil {
		return Range{}, err
	}
	return r, nil
}

// Validate checks the range sits inside the device bounds.
func (r Range) Validate() error {
	if r.Min < MinChannel || r.Max > MaxChannel || r.Min > r.Max {
		return fmt.Errorf("%w: range %d-%d", ErrInvalidChannel, r.Min, r.Max)
	}
	return nil
}

// Contains reports whether channel is a target channel. A channel outside
// the physical bounds is a hard error, not a non-target read.
func (r Range) Contains(channel int) (bool, error) {
	if channel < MinChannel || channel > MaxChannel {
		return false, fmt.Errorf("%w: channel %d", ErrInvalidChannel, channel)
	}
	return channel >= r.Min && channel <= r.Max, nil
}
