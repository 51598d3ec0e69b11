// SPDX-License-Identifier: Apache-2.0

package datasheet

import (
	"sort"
	"strconv"
	"strings"

	"go.uber.org/zap"
)

// Extractor applies an ordered set of templates to raw datasheet text and
// produces every validated candidate interval for a quantity. Template
// registration order is the priority order: more specific (prefixed)
// templates must be registered before generic ones.
type Extractor struct {
	templates []Template
	log       *zap.Logger
}

// NewExtractor creates an Extractor over the given templates. A nil logger
// disables diagnostics.
func NewExtractor(templates []Template, log *zap.Logger) *Extractor {
	if log == nil {
		log = zap.NewNop()
	}
	return &Extractor{templates: templates, log: log}
}

// Extract returns every candidate interval for q found in text, ordered by
// first match position with ties broken by template priority. Overlapping
// hits are resolved first-match-wins: a hit whose span overlaps an already
// accepted one is dropped. Zero matches yields an empty slice, never an
// error; malformed or implausible hits are silently discarded.
func (e *Extractor) Extract(text string, q Quantity) []Candidate {
	type hit struct {
		start, end int
		priority   int
		cand       Candidate
	}

	var hits []hit
	priority := 0
	for _, tmpl := range e.templates {
		if tmpl.Quantity() != q {
			continue
		}
		priority++
		for _, m := range tmpl.FindAll(text) {
			span := text[m.Start:m.End]
			low, lerr := parseBound(m.LowText)
			high, herr := parseBound(m.HighText)
			if lerr != nil || herr != nil {
				e.log.Debug("discarding candidate with unparseable bound",
					zap.Stringer("quantity", q),
					zap.String("template", tmpl.Name()),
					zap.String("span", span))
				continue
			}
			if !q.boundsValid(low, high) {
				e.log.Debug("discarding candidate outside sanity bounds",
					zap.Stringer("quantity", q),
					zap.String("template", tmpl.Name()),
					zap.String("span", span),
					zap.Float64("low", low),
					zap.Float64("high", high))
				continue
			}
			hits = append(hits, hit{
				start:    m.Start,
				end:      m.End,
				priority: priority,
				cand:     Candidate{Low: low, High: high, Template: tmpl.Name(), Span: span},
			})
		}
	}

	sort.SliceStable(hits, func(i, j int) bool {
		if hits[i].start != hits[j].start {
			return hits[i].start < hits[j].start
		}
		return hits[i].priority < hits[j].priority
	})

	var candidates []Candidate
	lastEnd := -1
	for _, h := range hits {
		if h.start < lastEnd {
			e.log.Debug("discarding candidate overlapping an earlier match",
				zap.Stringer("quantity", q),
				zap.String("template", h.cand.Template),
				zap.String("span", h.cand.Span))
			continue
		}
		candidates = append(candidates, h.cand)
		lastEnd = h.end
	}
	return candidates
}

// parseBound parses one captured bound as a signed decimal float. Templates
// may capture a space between sign and digits ("- 40").
func parseBound(s string) (float64, error) {
	return strconv.ParseFloat(strings.ReplaceAll(s, " ", ""), 64)
}
