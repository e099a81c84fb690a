package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"github.com/strongpass/strongpass-go/internal/config"
	"github.com/strongpass/strongpass-go/internal/crypto"
)

const passwordLabel = "Generated Strong Password:"

type generateOptions struct {
	length   int
	count    int
	hash     bool
	strength bool
}

func newRootCmd(cfg *config.Config) *cobra.Command {
	opts := generateOptions{length: cfg.DefaultLength, count: 1}

	cmd := &cobra.Command{
		Use:   "strongpass",
		Short: "Generate strong random passwords",
		Long: `strongpass prints a random password containing at least one lowercase
letter, uppercase letter, digit and punctuation character.

The default random source is fast but not cryptographically secure.
Pass --secure (or set STRONGPASS_SECURE=true) for real credentials.`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runGenerate(cmd.OutOrStdout(), sourceFor(cfg.Secure), opts)
		},
	}

	cmd.PersistentFlags().BoolVar(&cfg.Secure, "secure", cfg.Secure, "use crypto/rand instead of the default PRNG")

	f := cmd.Flags()
	f.IntVarP(&opts.length, "length", "l", opts.length, fmt.Sprintf("password length (minimum %d)", crypto.MinLength))
	f.IntVarP(&opts.count, "count", "c", opts.count, "number of passwords to generate")
	f.BoolVar(&opts.hash, "hash", false, "also print an Argon2id hash of each password")
	f.BoolVar(&opts.strength, "strength", false, "also print the strength estimate of each password")

	cmd.AddCommand(newServeCmd(cfg))

	return cmd
}

func sourceFor(secure bool) crypto.Source {
	if secure {
		return crypto.SecureSource()
	}
	return crypto.DefaultSource()
}

// runGenerate writes nothing unless every password was generated.
func runGenerate(w io.Writer, src crypto.Source, opts generateOptions) error {
	if opts.count < 1 {
		return fmt.Errorf("%w: count must be at least 1, got %d", crypto.ErrInvalidArgument, opts.count)
	}

	passwords := make([]string, 0, opts.count)
	for i := 0; i < opts.count; i++ {
		p, err := crypto.Generate(src, opts.length)
		if err != nil {
			return err
		}
		passwords = append(passwords, p)
	}

	hashes := make([]string, len(passwords))
	if opts.hash {
		for i, p := range passwords {
			h, err := crypto.HashSecret(p)
			if err != nil {
				return fmt.Errorf("hashing password: %w", err)
			}
			hashes[i] = h
		}
	}

	for i, p := range passwords {
		fmt.Fprintln(w, passwordLabel, p)
		if opts.strength {
			s := crypto.Strength(p)
			fmt.Fprintf(w, "Strength: %s (%d/%d)\n", s.Label, s.Score, crypto.MaxStrengthScore)
		}
		if opts.hash {
			fmt.Fprintln(w, "Argon2id:", hashes[i])
		}
	}

	return nil
}
