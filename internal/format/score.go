package format

import (
	"fmt"
	"math"
)

// ScoreBand is the coarse bucket a match score falls into.
type ScoreBand string

const (
	BandUnknown ScoreBand = "unknown"
	BandLow     ScoreBand = "low"
	BandMedium  ScoreBand = "medium"
	BandHigh    ScoreBand = "high"
)

// Band thresholds, inclusive lower bounds.
const (
	HighThreshold   = 0.8
	MediumThreshold = 0.6
)

type bandColors struct {
	text  string
	badge string
}

var colors = map[ScoreBand]bandColors{
	BandHigh:    {text: "text-green-600", badge: "bg-green-100 text-green-800"},
	BandMedium:  {text: "text-yellow-600", badge: "bg-yellow-100 text-yellow-800"},
	BandLow:     {text: "text-red-600", badge: "bg-red-100 text-red-800"},
	BandUnknown: {text: "text-gray-500", badge: "bg-gray-100 text-gray-800"},
}

// Band buckets score: nil is unknown, [0.8, ∞) high, [0.6, 0.8) medium and
// everything below 0.6 (including 0 and NaN) low.
func Band(score *float64) ScoreBand {
	if score == nil {
		return BandUnknown
	}
	s := *score
	switch {
	case s >= HighThreshold:
		return BandHigh
	case s >= MediumThreshold:
		return BandMedium
	default:
		return BandLow
	}
}

// TextColor is the colour token for plain score text.
func (b ScoreBand) TextColor() string {
	if c, ok := colors[b]; ok {
		return c.text
	}
	return colors[BandUnknown].text
}

// BadgeColor is the colour token pair for a score badge.
func (b ScoreBand) BadgeColor() string {
	if c, ok := colors[b]; ok {
		return c.badge
	}
	return colors[BandUnknown].badge
}

// Percent renders a 0..1 score as a whole percentage, e.g. "85%".
func (f *Formatter) Percent(score *float64) string {
	if score == nil || math.IsNaN(*score) {
		return f.text.noScore
	}
	return fmt.Sprintf("%d%%", int(math.Round(*score*100)))
}
