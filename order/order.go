package order

import (
	"errors"
	"fmt"
	"math"

	"github.com/stripseq/stripseq/oracle"
	"github.com/stripseq/stripseq/segment"
)

var (
	// ErrEmptyInput reports a Chain call with no segments.
	ErrEmptyInput = errors.New("order: empty input")

	// ErrNoSelectableCandidate reports a chaining step at which every
	// remaining candidate was incomparable to the last placed segment, so no
	// valid selection exists.
	ErrNoSelectableCandidate = errors.New("order: no selectable candidate")
)

// choice is the best-so-far candidate of one chaining step. The zero value
// means no candidate has been selected yet.
type choice struct {
	ok       bool
	index    int
	distance float64
}

// admit records the candidate at index i if its distance beats the current
// selection under strict less-than. Ties keep the earlier candidate, and a
// NaN or +Inf distance never wins, so a step over only incomparable
// candidates ends with no selection.
func (c *choice) admit(i int, d float64) {
	if c.ok {
		if d < c.distance {
			c.index, c.distance = i, d
		}
		return
	}
	if d < math.Inf(1) {
		c.ok, c.index, c.distance = true, i, d
	}
}

// Chain orders segments by greedy nearest-neighbor chaining. The first
// segment is the anchor and always opens the result; every step appends the
// remaining segment with the smallest oracle distance to the last placed
// one, scanning remaining segments in their current order and keeping the
// first seen on exact ties.
//
// The result is a permutation of the input. Oracle errors propagate
// unmodified; a step with no selectable candidate fails with
// ErrNoSelectableCandidate. A single-segment input returns immediately with
// no oracle calls.
func Chain(segments []*segment.Segment, o oracle.Oracle) ([]*segment.Segment, error) {
	if len(segments) == 0 {
		return nil, ErrEmptyInput
	}

	ordered := make([]*segment.Segment, 0, len(segments))
	ordered = append(ordered, segments[0])
	remaining := append([]*segment.Segment(nil), segments[1:]...)

	for len(remaining) > 0 {
		last := ordered[len(ordered)-1]

		var best choice
		for i, candidate := range remaining {
			d, err := o.Distance(last.Tokens(), candidate.Tokens())
			if err != nil {
				return nil, err
			}
			best.admit(i, d)
		}
		if !best.ok {
			return nil, fmt.Errorf("order: step %d after %q: %w",
				len(ordered), last.ID(), ErrNoSelectableCandidate)
		}

		ordered = append(ordered, remaining[best.index])
		remaining = append(remaining[:best.index], remaining[best.index+1:]...)
	}
	return ordered, nil
}
