package testing

import (
	"testing"

	"github.com/zoobzio/scytale"
)

func TestTestShiftKey(t *testing.T) {
	key := TestShiftKey()
	if key.Kind() != scytale.KeyShift {
		t.Errorf("TestShiftKey().Kind() = %q, want %q", key.Kind(), scytale.KeyShift)
	}
}

func TestTestWordKey(t *testing.T) {
	key := TestWordKey()
	if key.Kind() != scytale.KeyWord {
		t.Errorf("TestWordKey().Kind() = %q, want %q", key.Kind(), scytale.KeyWord)
	}
}

func TestTestCipher(t *testing.T) {
	cipher := TestCipher()
	if cipher == nil {
		t.Fatal("TestCipher() should not return nil")
	}

	// Verify it works
	if got := cipher.Encrypt("test"); got != "grfg" {
		t.Errorf("Encrypt(%q) = %q, want %q", "test", got, "grfg")
	}
}

func TestAssertRoundTrip(t *testing.T) {
	AssertRoundTrip(t, TestCipher(), "The quick brown fox")
}
