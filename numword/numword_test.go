package numword

import "testing"

func TestEnglish(t *testing.T) {
	t.Parallel()

	table := English()
	tests := []struct {
		word string
		want int
	}{
		{"zero", 0},
		{"one", 1},
		{"nineteen", 19},
		{"twenty", 20},
		{"twenty five", 25},
		{"twenty-five", 25},
		{"ninety nine", 99},
		{"a", 1},
		{"an", 1},
	}
	for _, tt := range tests {
		if got, ok := table[tt.word]; !ok || got != tt.want {
			t.Errorf("English()[%q] = %d, %v; want %d", tt.word, got, ok, tt.want)
		}
	}
	if _, ok := table["hundred"]; ok {
		t.Error("English() covers values above ninety-nine")
	}
}

func TestSpanish(t *testing.T) {
	t.Parallel()

	table := Spanish()
	tests := []struct {
		word string
		want int
	}{
		{"cero", 0},
		{"uno", 1},
		{"quince", 15},
		{"dieciséis", 16},
		{"dieciseis", 16},
		{"veinte", 20},
		{"veinticinco", 25},
		{"veintidós", 22},
		{"veintidos", 22},
		{"treinta", 30},
		{"treinta y cinco", 35},
		{"noventa y nueve", 99},
		{"un", 1},
		{"una", 1},
	}
	for _, tt := range tests {
		if got, ok := table[tt.word]; !ok || got != tt.want {
			t.Errorf("Spanish()[%q] = %d, %v; want %d", tt.word, got, ok, tt.want)
		}
	}
}
