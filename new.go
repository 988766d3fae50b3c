package scytale

// New constructs the cipher for algorithm, validating that the key's
// kind matches what the algorithm accepts: a shift key for Caesar, a
// word key for Vigenère and Playfair. A mismatch returns a ConfigError
// wrapping ErrKeyMismatch.
func New(algorithm Algorithm, key Key) (Cipher, error) {
	expected, ok := keyKinds[algorithm]
	if !ok {
		return nil, newParseError(ErrUnknownAlgorithm, string(algorithm))
	}
	if key.kind != expected {
		return nil, newConfigError(ErrKeyMismatch, algorithm, key.kind)
	}

	switch algorithm {
	case AlgorithmCaesar:
		return Caesar(key.shift), nil
	case AlgorithmVigenere:
		return Vigenere(key.word)
	default:
		return Playfair(key.word), nil
	}
}
