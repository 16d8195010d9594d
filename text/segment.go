package text

import (
	"golang.org/x/text/unicode/bidi"
)

// Run is a contiguous piece of text with a single resolved direction.
// Runs are produced in visual order, left to right, so shaping and
// painting them in sequence yields the correct display order.
type Run struct {
	// Text is the run's content in logical order.
	Text string

	// Direction is the resolved direction of the run.
	Direction Direction
}

// SplitRuns splits a string into single-direction runs using the Unicode
// bidirectional algorithm. The base direction resolves runs without a
// strong direction of their own (e.g. digits and punctuation).
//
// Vertical base directions skip bidi processing entirely and return the
// whole string as one run.
func SplitRuns(s string, base Direction) []Run {
	if s == "" {
		return nil
	}
	if base.IsVertical() {
		return []Run{{Text: s, Direction: base}}
	}

	defaultDir := bidi.Neutral
	if base == DirectionRTL {
		defaultDir = bidi.RightToLeft
	}

	p := bidi.Paragraph{}
	if _, err := p.SetString(s, bidi.DefaultDirection(defaultDir)); err != nil {
		return []Run{{Text: s, Direction: base}}
	}
	ordering, err := p.Order()
	if err != nil {
		return []Run{{Text: s, Direction: base}}
	}

	runs := make([]Run, 0, ordering.NumRuns())
	for i := 0; i < ordering.NumRuns(); i++ {
		r := ordering.Run(i)
		dir := base
		switch r.Direction() {
		case bidi.LeftToRight:
			dir = DirectionLTR
		case bidi.RightToLeft:
			dir = DirectionRTL
		}
		runs = append(runs, Run{Text: r.String(), Direction: dir})
	}

	return runs
}
