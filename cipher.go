package scytale

// Cipher transforms text under a key fixed at construction.
type Cipher interface {
	// Algorithm returns the identifier for this cipher (e.g., "caesar").
	Algorithm() Algorithm

	// Encrypt transforms plaintext into ciphertext.
	Encrypt(plaintext string) string

	// Decrypt transforms ciphertext back into plaintext.
	Decrypt(ciphertext string) string
}
