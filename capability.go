package scytale

// Algorithm identifies a supported cipher algorithm.
// Use ParseAlgorithm to resolve user-facing names and aliases.
type Algorithm string

const (
	// AlgorithmCaesar shifts every letter by a fixed amount.
	AlgorithmCaesar Algorithm = "caesar"

	// AlgorithmVigenere shifts each letter by a repeating keyword.
	AlgorithmVigenere Algorithm = "vigenere"

	// AlgorithmPlayfair substitutes letter pairs through a 5x5 key matrix.
	AlgorithmPlayfair Algorithm = "playfair"
)

// Direction selects which way a transformation runs.
type Direction string

const (
	// DirectionEncrypt transforms plaintext into ciphertext.
	DirectionEncrypt Direction = "encrypt"

	// DirectionDecrypt transforms ciphertext back into plaintext.
	DirectionDecrypt Direction = "decrypt"
)

// validAlgorithms contains all valid algorithms for input validation.
var validAlgorithms = map[Algorithm]bool{
	AlgorithmCaesar:   true,
	AlgorithmVigenere: true,
	AlgorithmPlayfair: true,
}

// validDirections contains all valid directions for input validation.
var validDirections = map[Direction]bool{
	DirectionEncrypt: true,
	DirectionDecrypt: true,
}

// algorithmAliases maps user-facing names, including single-letter
// shorthands, onto canonical algorithms.
var algorithmAliases = map[string]Algorithm{
	"caesar":   AlgorithmCaesar,
	"c":        AlgorithmCaesar,
	"vigenere": AlgorithmVigenere,
	"v":        AlgorithmVigenere,
	"playfair": AlgorithmPlayfair,
	"p":        AlgorithmPlayfair,
}

// directionAliases maps user-facing names onto canonical directions.
var directionAliases = map[string]Direction{
	"encrypt": DirectionEncrypt,
	"e":       DirectionEncrypt,
	"decrypt": DirectionDecrypt,
	"d":       DirectionDecrypt,
}

// IsValidAlgorithm returns true if the algorithm is a known cipher algorithm.
func IsValidAlgorithm(algo Algorithm) bool {
	return validAlgorithms[algo]
}

// IsValidDirection returns true if the direction is a known direction.
func IsValidDirection(dir Direction) bool {
	return validDirections[dir]
}

// ParseAlgorithm resolves a name or alias ("caesar"/"c", "vigenere"/"v",
// "playfair"/"p") to its Algorithm. Returns ErrUnknownAlgorithm wrapped in
// a ParseError for anything else.
func ParseAlgorithm(name string) (Algorithm, error) {
	if algo, ok := algorithmAliases[name]; ok {
		return algo, nil
	}
	return "", newParseError(ErrUnknownAlgorithm, name)
}

// ParseDirection resolves a name or alias ("encrypt"/"e", "decrypt"/"d")
// to its Direction. Returns ErrUnknownDirection wrapped in a ParseError
// for anything else.
func ParseDirection(name string) (Direction, error) {
	if dir, ok := directionAliases[name]; ok {
		return dir, nil
	}
	return "", newParseError(ErrUnknownDirection, name)
}
