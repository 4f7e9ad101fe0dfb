// Package numword provides word-to-value cardinal tables for the
// languages the recognizer supports.
//
// Each table maps a lowercase surface form to its integer value,
// covering zero through ninety-nine plus language-specific articles
// that act as the cardinal one ("an hour", "una hora"). Compound forms
// appear under every spelling the language allows ("twenty five",
// "twenty-five", "veinticinco", "treinta y cinco").
//
// Tables are built once at package init and must be treated as
// read-only; they are safe for concurrent use by multiple goroutines.
package numword

// English returns the English cardinal table.
func English() map[string]int {
	return english
}

// Spanish returns the Spanish cardinal table.
func Spanish() map[string]int {
	return spanish
}
