package datetime

import "testing"

func TestMergeTokens(t *testing.T) {
	t.Parallel()

	source := "0123456789abcdef"
	tests := []struct {
		name   string
		tokens []Token
		want   []ExtractResult
	}{
		{
			name:   "empty input",
			tokens: nil,
			want:   nil,
		},
		{
			name:   "single token",
			tokens: []Token{{Start: 2, End: 5}},
			want:   []ExtractResult{{Start: 2, Length: 3, Text: "234", Type: TypeDate}},
		},
		{
			name:   "overlapping tokens union",
			tokens: []Token{{Start: 2, End: 6}, {Start: 4, End: 9}},
			want:   []ExtractResult{{Start: 2, Length: 7, Text: "2345678", Type: TypeDate}},
		},
		{
			name:   "touching tokens union",
			tokens: []Token{{Start: 0, End: 3}, {Start: 3, End: 5}},
			want:   []ExtractResult{{Start: 0, Length: 5, Text: "01234", Type: TypeDate}},
		},
		{
			name:   "disjoint tokens stay separate",
			tokens: []Token{{Start: 6, End: 8}, {Start: 0, End: 2}},
			want: []ExtractResult{
				{Start: 0, Length: 2, Text: "01", Type: TypeDate},
				{Start: 6, Length: 2, Text: "67", Type: TypeDate},
			},
		},
		{
			name:   "contained token absorbed",
			tokens: []Token{{Start: 1, End: 9}, {Start: 3, End: 5}},
			want:   []ExtractResult{{Start: 1, Length: 8, Text: "12345678", Type: TypeDate}},
		},
		{
			name:   "invalid tokens dropped",
			tokens: []Token{{Start: -1, End: 3}, {Start: 5, End: 5}, {Start: 10, End: 99}, {Start: 1, End: 2}},
			want:   []ExtractResult{{Start: 1, Length: 1, Text: "1", Type: TypeDate}},
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got := MergeTokens(tt.tokens, source, TypeDate)
			if len(got) != len(tt.want) {
				t.Fatalf("got %d results, want %d\n  got: %v", len(got), len(tt.want), got)
			}
			for i := range tt.want {
				if got[i] != tt.want[i] {
					t.Errorf("[%d] got %+v, want %+v", i, got[i], tt.want[i])
				}
			}
		})
	}
}

func TestMergeTokensIdempotent(t *testing.T) {
	t.Parallel()

	source := "0123456789abcdef"
	tokens := []Token{
		{Start: 2, End: 6}, {Start: 4, End: 9},
		{Start: 11, End: 13}, {Start: 13, End: 14},
		{Start: 0, End: 1},
	}

	first := MergeTokens(tokens, source, TypeDateTimePeriod)

	// Feeding the merged spans back in must reproduce them exactly.
	remerged := make([]Token, len(first))
	for i, er := range first {
		remerged[i] = Token{Start: er.Start, End: er.End()}
	}
	second := MergeTokens(remerged, source, TypeDateTimePeriod)

	if len(second) != len(first) {
		t.Fatalf("re-merge changed result count: %d != %d\n  first: %v\n  second: %v",
			len(second), len(first), first, second)
	}
	for i := range first {
		if second[i] != first[i] {
			t.Errorf("[%d] re-merge changed span: %+v != %+v", i, second[i], first[i])
		}
	}
}

func TestExtractResultOverlaps(t *testing.T) {
	t.Parallel()

	a := ExtractResult{Start: 2, Length: 4}
	tests := []struct {
		name  string
		other ExtractResult
		want  bool
	}{
		{"identical", ExtractResult{Start: 2, Length: 4}, true},
		{"partial", ExtractResult{Start: 4, Length: 4}, true},
		{"contained", ExtractResult{Start: 3, Length: 1}, true},
		{"touching is not overlapping", ExtractResult{Start: 6, Length: 2}, false},
		{"disjoint", ExtractResult{Start: 10, Length: 2}, false},
	}
	for _, tt := range tests {
		if got := a.Overlaps(tt.other); got != tt.want {
			t.Errorf("%s: Overlaps = %v, want %v", tt.name, got, tt.want)
		}
		if got := tt.other.Overlaps(a); got != tt.want {
			t.Errorf("%s: reverse Overlaps = %v, want %v", tt.name, got, tt.want)
		}
	}
}
