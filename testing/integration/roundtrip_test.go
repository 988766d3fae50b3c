package integration

import (
	"context"
	"testing"

	"github.com/zoobzio/scytale"
	ciphertest "github.com/zoobzio/scytale/testing"
)

func TestRoundTrip_Caesar(t *testing.T) {
	cipher, err := scytale.New(scytale.AlgorithmCaesar, ciphertest.TestShiftKey())
	if err != nil {
		t.Fatalf("New error: %v", err)
	}

	ciphertest.AssertRoundTrip(t, cipher, "The quick brown fox jumps over 13 lazy dogs!")
}

func TestRoundTrip_Vigenere(t *testing.T) {
	cipher, err := scytale.New(scytale.AlgorithmVigenere, ciphertest.TestWordKey())
	if err != nil {
		t.Fatalf("New error: %v", err)
	}

	ciphertest.AssertRoundTrip(t, cipher, "Attack at dawn, from the north-west!")
}

func TestRoundTrip_Playfair(t *testing.T) {
	cipher, err := scytale.New(scytale.AlgorithmPlayfair, ciphertest.TestWordKey())
	if err != nil {
		t.Fatalf("New error: %v", err)
	}

	// Playfair input: even-length letters with no identical pair.
	ciphertest.AssertRoundTrip(t, cipher, "MEFTATDAWN")
}

func TestTransform_AllAlgorithms(t *testing.T) {
	scytale.Reset()
	ctx := context.Background()

	tests := []struct {
		name      string
		algorithm scytale.Algorithm
		key       scytale.Key
		plaintext string
	}{
		{"caesar", scytale.AlgorithmCaesar, ciphertest.TestShiftKey(), "attack at dawn"},
		{"vigenere", scytale.AlgorithmVigenere, ciphertest.TestWordKey(), "attack at dawn"},
		{"playfair", scytale.AlgorithmPlayfair, ciphertest.TestWordKey(), "SIGNALFLAG"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ciphertext, err := scytale.Transform(ctx, tt.algorithm, scytale.DirectionEncrypt, tt.key, tt.plaintext)
			if err != nil {
				t.Fatalf("Transform(encrypt) error: %v", err)
			}

			plaintext, err := scytale.Transform(ctx, tt.algorithm, scytale.DirectionDecrypt, tt.key, ciphertext)
			if err != nil {
				t.Fatalf("Transform(decrypt) error: %v", err)
			}

			// Playfair decryption always emits uppercase, so its
			// plaintext here is already uppercase.
			if plaintext != tt.plaintext {
				t.Errorf("round-trip failed: got %q, want %q", plaintext, tt.plaintext)
			}
		})
	}
}
