// SPDX-License-Identifier: Apache-2.0

package templates

import (
	"regexp"

	"github.com/compatproj/datasheet-mcp/internal/datasheet"
)

// Celsius tokens. The marker is required adjacent to the trailing bound and
// optional on the leading one; a bare "C" next to the number also counts.
const (
	celsiusOpt = `(?:\s*` + degMark + `)?(?:\s*C\b)?`
	celsiusReq = `(?:\s*` + degMark + `)?\s*C\b`
)

// NewPrefixedTemperature recognizes ranges introduced by a temperature
// keyword, e.g. "Operating temperature: -40°C to +85°C" or
// "Ta = -40C to 125C". Keyword and bounds must share a sentence segment.
func NewPrefixedTemperature() datasheet.Template {
	return &rangeTemplate{
		name:     "prefixed-temperature",
		quantity: datasheet.Temperature,
		re: regexp.MustCompile(
			`(?i)\b(?:temperature|t[aj]\b|industrial\s+temperature|operation\s+(?:over|at)|operating)` +
				`(?:\s+(?:grade|range))?` +
				`[^.\n]*?` +
				number + celsiusOpt +
				joiner + number + celsiusReq,
		),
	}
}

// NewBareTemperature recognizes a free-standing range with signed bounds and
// a trailing Celsius marker, e.g. "-40°C to +85°C" in any of the degree-sign
// renderings.
func NewBareTemperature() datasheet.Template {
	return &rangeTemplate{
		name:     "bare-temperature",
		quantity: datasheet.Temperature,
		re: regexp.MustCompile(
			`(?i)` + number + celsiusOpt +
				joiner + number + celsiusReq,
		),
	}
}
