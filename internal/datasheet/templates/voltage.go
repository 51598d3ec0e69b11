// SPDX-License-Identifier: Apache-2.0

package templates

import (
	"regexp"

	"github.com/compatproj/datasheet-mcp/internal/datasheet"
)

// voltUnit accepts "V", "v", and hyphenated forms such as "3.3-V".
const voltUnit = `\s*-?V`

// NewPrefixedVoltage recognizes ranges introduced by a supply keyword, e.g.
// "Supply voltage: 2.7V to 5.5V" or "VDD range of 1.8V to 3.6V". The unit
// marker is required on the trailing bound and optional on the leading one.
func NewPrefixedVoltage() datasheet.Template {
	return &rangeTemplate{
		name:     "prefixed-voltage",
		quantity: datasheet.Voltage,
		re: regexp.MustCompile(
			`(?i)\b(?:v(?:dd|ref|in)?|input|supply|voltage|power)` +
				`(?:\s+(?:range|voltage))?` +
				`(?:\s*(?:of|from|:))?` +
				`\s*` + number + `(?:` + voltUnit + `)?` +
				joiner + number + voltUnit,
		),
	}
}

// NewBareVoltage recognizes a free-standing range with unit markers on both
// bounds and an optional qualifier, e.g. "3.15V to 3.45V Operation".
func NewBareVoltage() datasheet.Template {
	return &rangeTemplate{
		name:     "bare-voltage",
		quantity: datasheet.Voltage,
		re: regexp.MustCompile(
			`(?i)` + number + voltUnit +
				joiner + number + voltUnit +
				`(?:\s+operation)?`,
		),
	}
}
