// SPDX-License-Identifier: Apache-2.0

// Package templates holds the lexical forms of voltage and temperature range
// expressions found in component datasheets. Each template is a compiled
// pattern over a signed decimal number, a unit token, a range joiner, and a
// second signed number, with optional leading or trailing context.
package templates

import (
	"regexp"

	"github.com/compatproj/datasheet-mcp/internal/datasheet"
)

// Shared pattern fragments. Every template captures exactly two groups: the
// low bound text and the high bound text.
const (
	// number allows a space between sign and digits ("- 40"); the extractor
	// strips it before parsing.
	number = `([-+]?\s?\d+(?:\.\d+)?)`
	joiner = `\s*(?:to|[-–~,])\s*`
	// degMark covers the degree sign in its common byte-level renderings:
	// the real sign, the UTF-8 sign read as Latin-1 ("Â°"), and the
	// replacement rune left by a failed decode.
	degMark = `(?:°|Â°|\x{FFFD})`
)

// rangeTemplate is one compiled lexical form.
type rangeTemplate struct {
	name     string
	quantity datasheet.Quantity
	re       *regexp.Regexp
}

func (t *rangeTemplate) Name() string                 { return t.name }
func (t *rangeTemplate) Quantity() datasheet.Quantity { return t.quantity }

func (t *rangeTemplate) FindAll(text string) []datasheet.Match {
	idx := t.re.FindAllStringSubmatchIndex(text, -1)
	matches := make([]datasheet.Match, 0, len(idx))
	for _, m := range idx {
		matches = append(matches, datasheet.Match{
			Start:    m[0],
			End:      m[1],
			LowText:  text[m[2]:m[3]],
			HighText: text[m[4]:m[5]],
		})
	}
	return matches
}

// Default returns every template in priority order. Order matters: prefixed
// (more specific) templates are registered before bare ones so that overlap
// resolution and candidate ordering stay deterministic.
func Default() []datasheet.Template {
	return []datasheet.Template{
		NewPrefixedVoltage(),
		NewBareVoltage(),
		NewPrefixedTemperature(),
		NewBareTemperature(),
	}
}
