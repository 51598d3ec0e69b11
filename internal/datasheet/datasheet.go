// SPDX-License-Identifier: Apache-2.0

package datasheet

import (
	"encoding/json"
	"fmt"
	"math"
)

// Quantity identifies which physical quantity a template or candidate refers to.
type Quantity int

const (
	Voltage Quantity = iota
	Temperature
)

func (q Quantity) String() string {
	switch q {
	case Voltage:
		return "voltage"
	case Temperature:
		return "temperature"
	}
	return fmt.Sprintf("quantity(%d)", int(q))
}

// limits is the sanity envelope for one quantity. Candidates whose bounds fall
// outside it are extraction noise (part numbers, pin counts, page references)
// and are discarded rather than reported.
type limits struct {
	min, max float64
	// minSpan rejects degenerate ranges such as "5V to 5V".
	minSpan float64
}

var quantityLimits = map[Quantity]limits{
	Voltage:     {min: -1000, max: 1000, minSpan: 0.1},
	Temperature: {min: -273.15, max: 1000},
}

// boundsValid reports whether [low, high] is a plausible range for q.
// Inverted bounds are invalid, never swapped.
func (q Quantity) boundsValid(low, high float64) bool {
	lim, ok := quantityLimits[q]
	if !ok {
		return false
	}
	if low < lim.min || low > lim.max || high < lim.min || high > lim.max {
		return false
	}
	if low > high {
		return false
	}
	if high-low < lim.minSpan {
		return false
	}
	return true
}

// equalTolerance absorbs textual rounding noise ("3.15" vs "3.150") when
// comparing candidate ranges during consolidation.
const equalTolerance = 1e-9

// Range is a closed numeric interval [low, high], or the distinguished
// unknown state when a document carried no trustworthy value. A Range is
// immutable once constructed.
type Range struct {
	low, high float64
	known     bool
}

// NewRange returns a concrete range. Callers are expected to pass
// low <= high; the extractor never produces inverted bounds.
func NewRange(low, high float64) Range {
	return Range{low: low, high: high, known: true}
}

// UnknownRange returns the range that carries no bounds.
func UnknownRange() Range {
	return Range{}
}

// IsKnown reports whether the range carries concrete bounds.
func (r Range) IsKnown() bool {
	return r.known
}

// Low returns the lower bound. Only meaningful when IsKnown.
func (r Range) Low() float64 { return r.low }

// High returns the upper bound. Only meaningful when IsKnown.
func (r Range) High() float64 { return r.high }

// Contains reports whether v lies within the closed interval. An unknown
// range contains nothing: absence of trustworthy data is not optimism.
func (r Range) Contains(v float64) bool {
	return r.known && r.low <= v && v <= r.high
}

// Equal compares two ranges with a small absolute tolerance on the bounds.
// Unknown equals unknown.
func (r Range) Equal(other Range) bool {
	if r.known != other.known {
		return false
	}
	if !r.known {
		return true
	}
	return math.Abs(r.low-other.low) <= equalTolerance &&
		math.Abs(r.high-other.high) <= equalTolerance
}

func (r Range) String() string {
	if !r.known {
		return "unknown"
	}
	return fmt.Sprintf("[%g, %g]", r.low, r.high)
}

// MarshalJSON serializes a concrete range as {"low": ..., "high": ...} and an
// unknown range as null, so tool output is honest about missing data.
func (r Range) MarshalJSON() ([]byte, error) {
	if !r.known {
		return []byte("null"), nil
	}
	return json.Marshal(struct {
		Low  float64 `json:"low"`
		High float64 `json:"high"`
	}{r.low, r.high})
}

// Match is a single raw template hit: the span it covered and the textual
// bounds it captured, before numeric parsing and validation.
type Match struct {
	Start, End        int
	LowText, HighText string
}

// Template recognizes one lexical form of a range expression.
type Template interface {
	Name() string
	Quantity() Quantity
	// FindAll returns every hit of the template anywhere in text.
	FindAll(text string) []Match
}

// Candidate is a validated interval produced by the extractor. Template and
// Span are kept for diagnostics only; consolidation looks at the bounds.
type Candidate struct {
	Low, High float64
	Template  string
	Span      string
}

// Record is the parsed summary of one datasheet.
type Record struct {
	Identifier  string `json:"identifier"`
	Voltage     Range  `json:"voltage_range"`
	Temperature Range  `json:"temperature_range"`
}

// Equal reports whether two records agree on identifier and both ranges.
func (r Record) Equal(other Record) bool {
	return r.Identifier == other.Identifier &&
		r.Voltage.Equal(other.Voltage) &&
		r.Temperature.Equal(other.Temperature)
}
