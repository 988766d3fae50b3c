package scytale

// KeyKind identifies the representation a cipher key carries.
type KeyKind string

const (
	// KeyShift is an integer shift amount (Caesar).
	KeyShift KeyKind = "shift"

	// KeyWord is a text keyword (Vigenère, Playfair).
	KeyWord KeyKind = "word"
)

// keyKinds maps each algorithm to the key kind it accepts.
var keyKinds = map[Algorithm]KeyKind{
	AlgorithmCaesar:   KeyShift,
	AlgorithmVigenere: KeyWord,
	AlgorithmPlayfair: KeyWord,
}

// Key is a cipher key in one of two representations: an integer shift or
// a text keyword. The zero value is not a valid key; construct one with
// ShiftKey or WordKey. New validates the kind against the chosen
// algorithm, so a mismatch surfaces as a ConfigError, not a crash.
type Key struct {
	kind  KeyKind
	shift int
	word  string
}

// ShiftKey returns a Key carrying an integer shift amount.
// Any value is acceptable; ciphers normalize it as needed.
func ShiftKey(shift int) Key {
	return Key{kind: KeyShift, shift: shift}
}

// WordKey returns a Key carrying a text keyword.
func WordKey(word string) Key {
	return Key{kind: KeyWord, word: word}
}

// Kind returns the representation this key carries.
func (k Key) Kind() KeyKind {
	return k.kind
}
