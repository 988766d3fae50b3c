package scytale

import "strings"

// matrixSize is the side length of the Playfair key matrix.
const matrixSize = 5

// playfairCipher substitutes consecutive letter pairs through a 5x5 key
// matrix. The matrix is built once at construction and never mutated.
//
// Input is expected to be ASCII letters. The matrix covers exactly the
// 25 letters A-Z minus J (J is looked up as I), so feeding any other
// character into a transformation violates the matrix invariant and
// panics.
type playfairCipher struct {
	matrix [matrixSize][matrixSize]byte
}

// Playfair returns a Playfair cipher for the given keyword. The keyword
// is cleaned first: uppercased, duplicates and non-letters removed, and
// J dropped. Cleaned keyword letters fill the matrix row-major, followed
// by the remaining letters of the alphabet in order.
func Playfair(key string) Cipher {
	return &playfairCipher{matrix: buildMatrix(key)}
}

// buildMatrix derives the 5x5 matrix from a keyword. The result always
// holds each of the 25 letters A-Z minus J exactly once.
func buildMatrix(key string) [matrixSize][matrixSize]byte {
	var matrix [matrixSize][matrixSize]byte
	seen := make(map[byte]bool)

	index := 0
	place := func(c byte) {
		matrix[index/matrixSize][index%matrixSize] = c
		seen[c] = true
		index++
	}

	for _, r := range strings.ToUpper(key) {
		c := byte(r)
		if r < 'A' || r > 'Z' || c == 'J' || seen[c] {
			continue
		}
		place(c)
	}

	for c := byte('A'); c <= 'Z'; c++ {
		if c == 'J' || seen[c] {
			continue
		}
		place(c)
	}

	return matrix
}

// position returns the row and column of a letter in the matrix,
// treating J as I. A miss means the matrix invariant is broken or the
// input was not a letter; either is a defect, so it panics.
func (p *playfairCipher) position(c byte) (int, int) {
	if c == 'J' {
		c = 'I'
	}

	for row := 0; row < matrixSize; row++ {
		for col := 0; col < matrixSize; col++ {
			if p.matrix[row][col] == c {
				return row, col
			}
		}
	}

	panic("scytale: character not found in playfair matrix")
}

// swapPair substitutes one uppercase letter pair. translation is +1 for
// encryption and -1 for decryption.
//
// An identical pair has its second letter replaced by X before lookup.
// A shared row steps each letter sideways with wraparound; a shared
// column steps each letter vertically with wraparound; otherwise each
// letter takes the other's column (its own inverse, so translation is
// irrelevant in that branch).
func (p *playfairCipher) swapPair(first, second byte, translation int) (byte, byte) {
	if first == second {
		second = 'X'
	}

	firstRow, firstCol := p.position(first)
	secondRow, secondCol := p.position(second)

	switch {
	case firstRow == secondRow:
		return p.matrix[firstRow][euclidMod(firstCol+translation, matrixSize)],
			p.matrix[secondRow][euclidMod(secondCol+translation, matrixSize)]
	case firstCol == secondCol:
		return p.matrix[euclidMod(firstRow+translation, matrixSize)][firstCol],
			p.matrix[euclidMod(secondRow+translation, matrixSize)][secondCol]
	}

	return p.matrix[firstRow][secondCol], p.matrix[secondRow][firstCol]
}

// Algorithm returns the identifier for the Playfair cipher.
func (p *playfairCipher) Algorithm() Algorithm {
	return AlgorithmPlayfair
}

// Encrypt substitutes the input pair by pair. Odd-length input is padded
// with a trailing x that stays in the output. Each output letter mirrors
// the case of its corresponding input letter.
func (p *playfairCipher) Encrypt(plaintext string) string {
	if len(plaintext)%2 != 0 {
		plaintext += "x"
	}

	var b strings.Builder
	b.Grow(len(plaintext))

	for i := 0; i < len(plaintext); i += 2 {
		first, second := plaintext[i], plaintext[i+1]
		outFirst, outSecond := p.swapPair(toUpperByte(first), toUpperByte(second), 1)

		if !isUpperByte(first) {
			outFirst = toLowerByte(outFirst)
		}
		if !isUpperByte(second) {
			outSecond = toLowerByte(outSecond)
		}

		b.WriteByte(outFirst)
		b.WriteByte(outSecond)
	}

	return b.String()
}

// Decrypt substitutes the input pair by pair with the reverse
// translation, padding odd-length input the same way as Encrypt. Output
// case comes straight from the matrix, so it is always uppercase; the
// classic algorithm does not track case provenance on decryption.
func (p *playfairCipher) Decrypt(ciphertext string) string {
	if len(ciphertext)%2 != 0 {
		ciphertext += "x"
	}

	var b strings.Builder
	b.Grow(len(ciphertext))

	for i := 0; i < len(ciphertext); i += 2 {
		outFirst, outSecond := p.swapPair(toUpperByte(ciphertext[i]), toUpperByte(ciphertext[i+1]), -1)
		b.WriteByte(outFirst)
		b.WriteByte(outSecond)
	}

	return b.String()
}

func isUpperByte(c byte) bool {
	return c >= 'A' && c <= 'Z'
}

func toUpperByte(c byte) byte {
	if c >= 'a' && c <= 'z' {
		return c - 'a' + 'A'
	}
	return c
}

func toLowerByte(c byte) byte {
	if c >= 'A' && c <= 'Z' {
		return c - 'A' + 'a'
	}
	return c
}
