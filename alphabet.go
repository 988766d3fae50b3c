package scytale

// alphabetSize is the number of letters every cipher operates over.
const alphabetSize = 26

// euclidMod reduces n modulo m to a result in [0,m), never negative,
// regardless of the sign of n.
func euclidMod(n, m int) int {
	n %= m
	if n < 0 {
		n += m
	}
	return n
}

func isUpper(r rune) bool {
	return r >= 'A' && r <= 'Z'
}

func isLower(r rune) bool {
	return r >= 'a' && r <= 'z'
}

func isLetter(r rune) bool {
	return isUpper(r) || isLower(r)
}
