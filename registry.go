package scytale

import (
	"context"
	"sync"
)

// registryKey combines algorithm and key material for cache lookup.
type registryKey struct {
	algorithm Algorithm
	kind      KeyKind
	shift     int
	word      string
}

var (
	registry   = make(map[registryKey]Cipher)
	registryMu sync.RWMutex
)

// Use returns a cached cipher or constructs a new one via New. Ciphers
// are cached by algorithm and key, so derived state like the Playfair
// matrix is built once per key rather than once per operation. Cached
// ciphers are read-only after construction and safe for concurrent use.
func Use(algorithm Algorithm, key Key) (Cipher, error) {
	rk := registryKey{algorithm: algorithm, kind: key.kind, shift: key.shift, word: key.word}

	// Fast path: read-lock cache check
	registryMu.RLock()
	if cached, ok := registry[rk]; ok {
		registryMu.RUnlock()
		return cached, nil
	}
	registryMu.RUnlock()

	// Slow path: build and cache with write-lock
	registryMu.Lock()
	defer registryMu.Unlock()

	// Double-check pattern
	if cached, ok := registry[rk]; ok {
		return cached, nil
	}

	cipher, err := New(algorithm, key)
	if err != nil {
		return nil, err
	}

	registry[rk] = cipher
	emitCipherCreated(context.Background(), algorithm)
	return cipher, nil
}

// Reset clears the cipher registry.
// This is primarily useful for test isolation.
func Reset() {
	registryMu.Lock()
	defer registryMu.Unlock()
	registry = make(map[registryKey]Cipher)
}
