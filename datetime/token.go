package datetime

import (
	"cmp"
	"slices"
)

// Token is a half-open byte range [Start, End) into a source string,
// produced by one matching pass of an extractor.
type Token struct {
	Start int
	End   int
}

// Length returns the byte length of the token.
func (t Token) Length() int {
	return t.End - t.Start
}

// MergeTokens unions overlapping or touching tokens and materializes one
// ExtractResult per merged group, with Text sliced from source and Type
// set to entityType. Input order does not matter; tokens are sorted
// internally. Output is sorted by start offset and free of overlaps.
// Tokens outside [0, len(source)] or with a non-positive length are
// dropped.
func MergeTokens(tokens []Token, source, entityType string) []ExtractResult {
	valid := make([]Token, 0, len(tokens))
	for _, t := range tokens {
		if t.Start < 0 || t.End <= t.Start || t.End > len(source) {
			continue
		}
		valid = append(valid, t)
	}
	if len(valid) == 0 {
		return nil
	}

	slices.SortFunc(valid, func(a, b Token) int {
		if c := cmp.Compare(a.Start, b.Start); c != 0 {
			return c
		}
		return cmp.Compare(a.End, b.End)
	})

	var out []ExtractResult
	i := 0
	for i < len(valid) {
		start, end := valid[i].Start, valid[i].End
		j := i + 1
		for j < len(valid) && valid[j].Start <= end {
			if valid[j].End > end {
				end = valid[j].End
			}
			j++
		}
		out = append(out, ExtractResult{
			Start:  start,
			Length: end - start,
			Text:   source[start:end],
			Type:   entityType,
		})
		i = j
	}
	return out
}
