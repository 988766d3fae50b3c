// Package testing provides test utilities for scytale.
package testing

import (
	"testing"

	"github.com/zoobzio/scytale"
)

// TestShiftKey returns the shift key used across tests.
func TestShiftKey() scytale.Key {
	return scytale.ShiftKey(13)
}

// TestWordKey returns the keyword key used across tests.
func TestWordKey() scytale.Key {
	return scytale.WordKey("keyword")
}

// TestCipher returns a Caesar cipher configured for testing.
func TestCipher() scytale.Cipher {
	cipher, err := scytale.New(scytale.AlgorithmCaesar, TestShiftKey())
	if err != nil {
		panic(err)
	}
	return cipher
}

// AssertRoundTrip fails t unless decrypting the encryption of plaintext
// recovers it exactly.
func AssertRoundTrip(t *testing.T, cipher scytale.Cipher, plaintext string) {
	t.Helper()

	got := cipher.Decrypt(cipher.Encrypt(plaintext))
	if got != plaintext {
		t.Errorf("%s round-trip failed: got %q, want %q", cipher.Algorithm(), got, plaintext)
	}
}
