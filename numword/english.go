// English cardinal word tables.
package numword

var englishOnes = [20]string{
	"zero",
	"one",
	"two",
	"three",
	"four",
	"five",
	"six",
	"seven",
	"eight",
	"nine",
	"ten",
	"eleven",
	"twelve",
	"thirteen",
	"fourteen",
	"fifteen",
	"sixteen",
	"seventeen",
	"eighteen",
	"nineteen",
}

// englishTens is indexed by tens digit (2–9); lower indexes are unused.
var englishTens = [10]string{
	2: "twenty",
	3: "thirty",
	4: "forty",
	5: "fifty",
	6: "sixty",
	7: "seventy",
	8: "eighty",
	9: "ninety",
}

var english = buildEnglish()

func buildEnglish() map[string]int {
	table := make(map[string]int)
	for v, w := range englishOnes {
		table[w] = v
	}
	for d := 2; d <= 9; d++ {
		table[englishTens[d]] = d * 10
		for o := 1; o <= 9; o++ {
			v := d*10 + o
			table[englishTens[d]+" "+englishOnes[o]] = v
			table[englishTens[d]+"-"+englishOnes[o]] = v
		}
	}
	// Articles stand in for the cardinal one: "an hour", "a minute".
	table["a"] = 1
	table["an"] = 1
	return table
}
