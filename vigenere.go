package scytale

import "strings"

// vigenereCipher shifts each letter by the value of a repeating keyword
// character. Non-letters pass through unchanged but still consume a
// key-stream position, so spacing and punctuation affect the alignment
// of every letter after them.
type vigenereCipher struct {
	key string
}

// Vigenere returns a Vigenère cipher for the given keyword. The keyword
// is lowercased once at construction, so its case never affects output.
// An empty keyword returns ErrEmptyKey.
func Vigenere(key string) (Cipher, error) {
	if key == "" {
		return nil, newConfigError(ErrEmptyKey, AlgorithmVigenere, KeyWord)
	}
	return &vigenereCipher{key: strings.ToLower(key)}, nil
}

// Algorithm returns the identifier for the Vigenère cipher.
func (v *vigenereCipher) Algorithm() Algorithm {
	return AlgorithmVigenere
}

// Encrypt shifts each letter forward by the keyword character at the
// current key-stream position, preserving the letter's case.
func (v *vigenereCipher) Encrypt(plaintext string) string {
	return v.transform(plaintext, 1)
}

// Decrypt shifts each letter backward by the keyword character at the
// current key-stream position.
func (v *vigenereCipher) Decrypt(ciphertext string) string {
	return v.transform(ciphertext, -1)
}

// transform runs the key stream over text with the given translation
// sign. The key-stream index advances for every input character, letters
// or not.
func (v *vigenereCipher) transform(text string, translation int) string {
	var b strings.Builder
	b.Grow(len(text))

	i := 0
	for _, r := range text {
		if isLetter(r) {
			b.WriteRune(shiftByKey(r, v.key[i%len(v.key)], translation))
		} else {
			b.WriteRune(r)
		}
		i++
	}

	return b.String()
}

// shiftByKey shifts a single letter by a keyword character's value,
// mirroring the letter's own case on output. Euclidean modulo keeps the
// offset non-negative when subtracting.
func shiftByKey(r rune, key byte, translation int) rune {
	base := rune('a')
	if isUpper(r) {
		base = 'A'
	}

	offset := int(r-base) + translation*(int(key)-'a')
	return base + rune(euclidMod(offset, alphabetSize))
}
