// Spanish cardinal word tables.
package numword

var spanishOnes = [30]string{
	"cero",
	"uno",
	"dos",
	"tres",
	"cuatro",
	"cinco",
	"seis",
	"siete",
	"ocho",
	"nueve",
	"diez",
	"once",
	"doce",
	"trece",
	"catorce",
	"quince",
	"dieciséis",
	"diecisiete",
	"dieciocho",
	"diecinueve",
	"veinte",
	"veintiuno",
	"veintidós",
	"veintitrés",
	"veinticuatro",
	"veinticinco",
	"veintiséis",
	"veintisiete",
	"veintiocho",
	"veintinueve",
}

// spanishTens is indexed by tens digit (3–9); lower indexes are unused.
var spanishTens = [10]string{
	3: "treinta",
	4: "cuarenta",
	5: "cincuenta",
	6: "sesenta",
	7: "setenta",
	8: "ochenta",
	9: "noventa",
}

var spanish = buildSpanish()

func buildSpanish() map[string]int {
	table := make(map[string]int)
	for v, w := range spanishOnes {
		table[w] = v
	}
	for d := 3; d <= 9; d++ {
		table[spanishTens[d]] = d * 10
		for o := 1; o <= 9; o++ {
			table[spanishTens[d]+" y "+spanishOnes[o]] = d*10 + o
		}
	}
	// Accent-free spellings appear in informal text.
	table["dieciseis"] = 16
	table["veintidos"] = 22
	table["veintitres"] = 23
	table["veintiseis"] = 26
	// Gendered and apocopated forms of one, and the articles.
	table["un"] = 1
	table["una"] = 1
	return table
}
