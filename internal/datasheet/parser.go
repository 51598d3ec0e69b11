// SPDX-License-Identifier: Apache-2.0

package datasheet

import (
	"go.uber.org/zap"
)

// Parser is the facade over extraction and consolidation: one call per
// document, one Record out. Parsing is total — malformed or sparse text
// degrades to unknown ranges, never to an error.
type Parser struct {
	extractor *Extractor
	log       *zap.Logger
}

// Option configures a Parser.
type Option func(*Parser)

// WithLogger routes extraction and consolidation diagnostics to log.
// The default logger is a no-op; diagnostics never change results.
func WithLogger(log *zap.Logger) Option {
	return func(p *Parser) {
		if log != nil {
			p.log = log
		}
	}
}

// NewParser creates a Parser over the given templates.
func NewParser(templates []Template, opts ...Option) *Parser {
	p := &Parser{log: zap.NewNop()}
	for _, opt := range opts {
		opt(p)
	}
	p.extractor = NewExtractor(templates, p.log)
	return p
}

// ParseResult is the output of ParseWithDiagnostics: the record plus the
// candidate lists it was consolidated from.
type ParseResult struct {
	Record                Record
	VoltageCandidates     []Candidate
	TemperatureCandidates []Candidate
}

// Parse extracts and consolidates both quantities and assembles a Record.
func (p *Parser) Parse(identifier, text string) Record {
	return p.ParseWithDiagnostics(identifier, text).Record
}

// ParseWithDiagnostics is Parse plus the raw candidate lists, for callers
// that report why a range degraded to unknown.
func (p *Parser) ParseWithDiagnostics(identifier, text string) ParseResult {
	voltageCands := p.extractor.Extract(text, Voltage)
	temperatureCands := p.extractor.Extract(text, Temperature)

	record := Record{
		Identifier:  identifier,
		Voltage:     p.consolidate(identifier, Voltage, voltageCands),
		Temperature: p.consolidate(identifier, Temperature, temperatureCands),
	}
	return ParseResult{
		Record:                record,
		VoltageCandidates:     voltageCands,
		TemperatureCandidates: temperatureCands,
	}
}

func (p *Parser) consolidate(identifier string, q Quantity, candidates []Candidate) Range {
	r := Consolidate(candidates)
	switch {
	case r.IsKnown():
		p.log.Debug("consolidated range",
			zap.String("component", identifier),
			zap.Stringer("quantity", q),
			zap.Stringer("range", r),
			zap.Int("candidates", len(candidates)))
	case len(candidates) == 0:
		p.log.Debug("no candidates found",
			zap.String("component", identifier),
			zap.Stringer("quantity", q))
	default:
		p.log.Debug("conflicting candidates, range unknown",
			zap.String("component", identifier),
			zap.Stringer("quantity", q),
			zap.Int("candidates", len(candidates)))
	}
	return r
}
