package scytale

import "testing"

func TestCaesar_Encrypt(t *testing.T) {
	cipher := Caesar(13)

	if got := cipher.Encrypt("test"); got != "grfg" {
		t.Errorf("Encrypt(%q) = %q, want %q", "test", got, "grfg")
	}
}

func TestCaesar_Decrypt(t *testing.T) {
	cipher := Caesar(13)

	if got := cipher.Decrypt("grfg"); got != "test" {
		t.Errorf("Decrypt(%q) = %q, want %q", "grfg", got, "test")
	}
}

func TestCaesar_ShiftNormalization(t *testing.T) {
	tests := []struct {
		name  string
		shift int
		in    string
		want  string
	}{
		{"plain", 3, "abc", "def"},
		{"zero", 0, "abc", "abc"},
		{"full wrap", 26, "abc", "abc"},
		{"beyond alphabet", 29, "abc", "def"},
		{"negative", -3, "abc", "xyz"},
		{"negative equivalent", -23, "abc", "def"},
		{"large negative", -100, "abc", "cde"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Caesar(tt.shift).Encrypt(tt.in); got != tt.want {
				t.Errorf("Caesar(%d).Encrypt(%q) = %q, want %q", tt.shift, tt.in, got, tt.want)
			}
		})
	}
}

func TestCaesar_CasePreserved(t *testing.T) {
	cipher := Caesar(1)

	if got := cipher.Encrypt("AbCz"); got != "BcDa" {
		t.Errorf("Encrypt(%q) = %q, want %q", "AbCz", got, "BcDa")
	}
}

func TestCaesar_NonLettersFixed(t *testing.T) {
	cipher := Caesar(7)
	in := "123 !? ,."

	if got := cipher.Encrypt(in); got != in {
		t.Errorf("Encrypt(%q) = %q, non-letters should pass through unchanged", in, got)
	}
}

func TestCaesar_EmptyInput(t *testing.T) {
	cipher := Caesar(5)

	if got := cipher.Encrypt(""); got != "" {
		t.Errorf("Encrypt(\"\") = %q, want empty", got)
	}
}

func TestCaesar_RoundTrip(t *testing.T) {
	shifts := []int{0, 1, 13, 25, 26, 27, -1, -13, -100, 1000}
	plaintext := "The quick brown Fox, 42 jumps!"

	for _, shift := range shifts {
		cipher := Caesar(shift)
		if got := cipher.Decrypt(cipher.Encrypt(plaintext)); got != plaintext {
			t.Errorf("shift %d: round-trip failed: got %q, want %q", shift, got, plaintext)
		}
	}
}

func TestCaesar_Algorithm(t *testing.T) {
	if got := Caesar(3).Algorithm(); got != AlgorithmCaesar {
		t.Errorf("Algorithm() = %q, want %q", got, AlgorithmCaesar)
	}
}
