// Package scytale provides classical substitution ciphers behind a
// uniform encrypt/decrypt contract.
//
// These are educational and legacy algorithms, not secure primitives.
// Do not use them to protect anything.
//
// # Algorithms
//
// The set of implementations is closed:
//
//   - Caesar: fixed integer shift over the 26-letter alphabet
//   - Vigenère: per-position shift driven by a repeating keyword
//   - Playfair: digraph substitution through a 5x5 key matrix
//
// Caesar and Vigenère preserve case and pass non-letters through
// unchanged. Playfair treats its input as a raw stream of letters; see
// the Playfair constructor for its matrix and padding rules.
//
// # Keys
//
// Each algorithm takes its key in a natural form: an integer shift for
// Caesar, a text keyword for Vigenère and Playfair. The Key sum type
// carries either form, and New rejects a mismatched kind with a
// ConfigError:
//
//	cipher, err := scytale.New(scytale.AlgorithmCaesar, scytale.ShiftKey(13))
//	if err != nil {
//	    // errors.Is(err, scytale.ErrKeyMismatch)
//	}
//	out := cipher.Encrypt("test") // "grfg"
//
// Constructors are also available directly when the algorithm is known
// at compile time:
//
//	cipher := scytale.Caesar(13)
//	cipher, err := scytale.Vigenere("key")
//	cipher := scytale.Playfair("keyword")
//
// # Convenience Operations
//
// EncryptText, DecryptText, and Transform resolve ciphers through a
// registry that caches instances per algorithm and key, and emit capitan
// signals around each operation:
//
//	out, err := scytale.EncryptText(ctx, scytale.AlgorithmVigenere, scytale.WordKey("key"), "secret")
//
// # Round Trips
//
// For every cipher, Decrypt(Encrypt(x)) recovers x, with two Playfair
// caveats: padding added to odd-length input stays in the output, and
// decryption always emits uppercase.
package scytale

import (
	"context"
	"time"
)

// EncryptText encrypts plaintext with the given algorithm and key. The
// cipher is resolved through the registry, so repeated calls with the
// same key reuse one instance.
func EncryptText(ctx context.Context, algorithm Algorithm, key Key, plaintext string) (string, error) {
	cipher, err := Use(algorithm, key)
	if err != nil {
		return "", err
	}

	emitEncryptStart(ctx, algorithm, len(plaintext))
	start := time.Now()

	ciphertext := cipher.Encrypt(plaintext)

	emitEncryptComplete(ctx, algorithm, len(ciphertext), time.Since(start))
	return ciphertext, nil
}

// DecryptText decrypts ciphertext with the given algorithm and key. The
// cipher is resolved through the registry, so repeated calls with the
// same key reuse one instance.
func DecryptText(ctx context.Context, algorithm Algorithm, key Key, ciphertext string) (string, error) {
	cipher, err := Use(algorithm, key)
	if err != nil {
		return "", err
	}

	emitDecryptStart(ctx, algorithm, len(ciphertext))
	start := time.Now()

	plaintext := cipher.Decrypt(ciphertext)

	emitDecryptComplete(ctx, algorithm, len(plaintext), time.Since(start))
	return plaintext, nil
}

// Transform runs text through the algorithm in the given direction.
// An unknown direction returns ErrUnknownDirection.
func Transform(ctx context.Context, algorithm Algorithm, direction Direction, key Key, text string) (string, error) {
	switch direction {
	case DirectionEncrypt:
		return EncryptText(ctx, algorithm, key, text)
	case DirectionDecrypt:
		return DecryptText(ctx, algorithm, key, text)
	}
	return "", newParseError(ErrUnknownDirection, string(direction))
}
