package scytale

import "strings"

// caesarCipher shifts every letter by a fixed amount, wrapping within
// the alphabet. Non-letters pass through unchanged.
type caesarCipher struct {
	shift int
}

// Caesar returns a Caesar cipher with the given shift. Any integer is
// accepted, including negative values and values beyond 25; the shift is
// normalized with Euclidean modulo at construction.
func Caesar(shift int) Cipher {
	return &caesarCipher{shift: euclidMod(shift, alphabetSize)}
}

// Algorithm returns the identifier for the Caesar cipher.
func (c *caesarCipher) Algorithm() Algorithm {
	return AlgorithmCaesar
}

// Encrypt shifts each letter forward by the cipher's shift, preserving
// case. Every other character is emitted unchanged.
func (c *caesarCipher) Encrypt(plaintext string) string {
	return strings.Map(func(r rune) rune {
		switch {
		case isLower(r):
			return 'a' + (r-'a'+rune(c.shift))%alphabetSize
		case isUpper(r):
			return 'A' + (r-'A'+rune(c.shift))%alphabetSize
		}
		return r
	}, plaintext)
}

// Decrypt shifts each letter backward by the cipher's shift. It is
// encryption under the negated shift, re-normalized the same way, so it
// is correct for any original key.
func (c *caesarCipher) Decrypt(ciphertext string) string {
	inverse := caesarCipher{shift: euclidMod(-c.shift, alphabetSize)}
	return inverse.Encrypt(ciphertext)
}
