// SPDX-License-Identifier: Apache-2.0

package datasheet

// Consolidate reduces the candidate intervals found for one quantity in one
// document to a single Range. No candidates yields unknown. One candidate is
// taken as-is. Several candidates must all agree (within tolerance) to be
// trusted; disagreeing specifications in one document are untrustworthy as a
// whole, not resolvable by picking one, so any conflict yields unknown.
func Consolidate(candidates []Candidate) Range {
	if len(candidates) == 0 {
		return UnknownRange()
	}
	result := NewRange(candidates[0].Low, candidates[0].High)
	for _, c := range candidates[1:] {
		if !result.Equal(NewRange(c.Low, c.High)) {
			return UnknownRange()
		}
	}
	return result
}
