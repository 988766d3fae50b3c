// Command scytale encrypts and decrypts text with classical
// substitution ciphers.
package main

import (
	"errors"
	"fmt"
	"os"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/zoobzio/scytale"
)

var (
	algorithmFlag  string
	directionFlag  string
	keyFlag        string
	bruteForceFlag bool
)

var rootCmd = &cobra.Command{
	Use:   "scytale [flags] <text>",
	Short: "Encrypt and decrypt text with classical substitution ciphers",
	Long: `Encrypt and decrypt text with classical substitution ciphers.

Supported algorithms:
  caesar (c)     fixed integer shift; key is an integer
  vigenere (v)   repeating keyword shift; key is text
  playfair (p)   5x5 matrix digraph substitution; key is text

These ciphers are educational, not secure.

Examples:
  scytale -a caesar -d encrypt -k 13 "test"
  scytale -a v -d e -k key "secret"
  scytale -a playfair -d decrypt -k keyword "NORDKU"`,
	Args:         cobra.ExactArgs(1),
	SilenceUsage: true,
	RunE:         run,
}

func init() {
	rootCmd.Flags().StringVarP(&algorithmFlag, "algorithm", "a", "", "cipher algorithm (caesar/c, vigenere/v, playfair/p)")
	rootCmd.Flags().StringVarP(&directionFlag, "direction", "d", "", "direction (encrypt/e, decrypt/d)")
	rootCmd.Flags().StringVarP(&keyFlag, "key", "k", "", "cipher key (integer for caesar, text otherwise)")
	rootCmd.Flags().BoolVarP(&bruteForceFlag, "brute-force", "b", false, "in decryption mode, brute force the key")

	_ = rootCmd.MarkFlagRequired("algorithm")
	_ = rootCmd.MarkFlagRequired("direction")
	_ = rootCmd.MarkFlagRequired("key")
}

func run(cmd *cobra.Command, args []string) error {
	algorithm, err := scytale.ParseAlgorithm(algorithmFlag)
	if err != nil {
		return err
	}

	direction, err := scytale.ParseDirection(directionFlag)
	if err != nil {
		return err
	}

	// Brute force only makes sense when decrypting. The search itself is
	// not implemented; only the flag combination is validated.
	if bruteForceFlag && direction == scytale.DirectionEncrypt {
		return errors.New("brute force mode cannot be used with encryption")
	}

	key, err := buildKey(algorithm, keyFlag)
	if err != nil {
		return err
	}

	output, err := scytale.Transform(cmd.Context(), algorithm, direction, key, args[0])
	if err != nil {
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Algorithm: %s\n", algorithm)
	fmt.Fprintf(cmd.OutOrStdout(), "Direction: %s\n", direction)
	fmt.Fprintf(cmd.OutOrStdout(), "Output: %s\n", output)
	return nil
}

// buildKey converts the raw key flag into the kind the algorithm
// accepts. The key's type must match the algorithm before the core is
// ever invoked.
func buildKey(algorithm scytale.Algorithm, raw string) (scytale.Key, error) {
	if algorithm == scytale.AlgorithmCaesar {
		shift, err := strconv.Atoi(raw)
		if err != nil {
			return scytale.Key{}, fmt.Errorf("algorithm %q requires an integer key, got %q", algorithm, raw)
		}
		return scytale.ShiftKey(shift), nil
	}
	return scytale.WordKey(raw), nil
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
