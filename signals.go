package scytale

import (
	"context"
	"time"

	"github.com/zoobzio/capitan"
)

// Signals for cipher events.
var (
	SignalCipherCreated   = capitan.NewSignal("scytale.cipher.created", "Cipher instantiated")
	SignalEncryptStart    = capitan.NewSignal("scytale.encrypt.start", "Encrypt operation beginning")
	SignalEncryptComplete = capitan.NewSignal("scytale.encrypt.complete", "Encrypt operation finished")
	SignalDecryptStart    = capitan.NewSignal("scytale.decrypt.start", "Decrypt operation beginning")
	SignalDecryptComplete = capitan.NewSignal("scytale.decrypt.complete", "Decrypt operation finished")
)

// Keys for typed event data.
var (
	KeyAlgorithm    = capitan.NewStringKey("algorithm")
	KeyInputLength  = capitan.NewIntKey("input_length")
	KeyOutputLength = capitan.NewIntKey("output_length")
	KeyDuration     = capitan.NewDurationKey("duration")
)

// emitCipherCreated emits an event when a cipher is constructed.
func emitCipherCreated(ctx context.Context, algorithm Algorithm) {
	capitan.Emit(ctx, SignalCipherCreated,
		KeyAlgorithm.Field(string(algorithm)),
	)
}

// emitEncryptStart emits an event when encryption begins.
func emitEncryptStart(ctx context.Context, algorithm Algorithm, inputLength int) {
	capitan.Emit(ctx, SignalEncryptStart,
		KeyAlgorithm.Field(string(algorithm)),
		KeyInputLength.Field(inputLength),
	)
}

// emitEncryptComplete emits an event when encryption finishes.
func emitEncryptComplete(ctx context.Context, algorithm Algorithm, outputLength int, duration time.Duration) {
	capitan.Emit(ctx, SignalEncryptComplete,
		KeyAlgorithm.Field(string(algorithm)),
		KeyOutputLength.Field(outputLength),
		KeyDuration.Field(duration),
	)
}

// emitDecryptStart emits an event when decryption begins.
func emitDecryptStart(ctx context.Context, algorithm Algorithm, inputLength int) {
	capitan.Emit(ctx, SignalDecryptStart,
		KeyAlgorithm.Field(string(algorithm)),
		KeyInputLength.Field(inputLength),
	)
}

// emitDecryptComplete emits an event when decryption finishes.
func emitDecryptComplete(ctx context.Context, algorithm Algorithm, outputLength int, duration time.Duration) {
	capitan.Emit(ctx, SignalDecryptComplete,
		KeyAlgorithm.Field(string(algorithm)),
		KeyOutputLength.Field(outputLength),
		KeyDuration.Field(duration),
	)
}
