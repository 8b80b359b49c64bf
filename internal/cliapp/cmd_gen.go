package cliapp

import (
	"context"
	"encoding/hex"
	"fmt"

	flag "github.com/spf13/pflag"

	"github.com/kanbanly/fraci"
)

// GenCmd returns the "gen" command: a single key strictly between two
// bounds (or an unbounded end), using cfg's resolved medium and alphabet.
func GenCmd(cfg Config) *Command {
	fs := flag.NewFlagSet("gen", flag.ContinueOnError)
	a := fs.String("a", "", "Lower bound key (empty for none)")
	b := fs.String("b", "", "Upper bound key (empty for none)")
	skip := fs.Int("skip", 0, "Number of conflict-suffix candidates to skip")

	return &Command{
		Flags: fs,
		Usage: "gen [--a key] [--b key] [--skip n]",
		Short: "Generate a single key strictly between --a and --b",
		Exec: func(_ context.Context, o *IO, _ []string) error {
			bf, sf, err := factories(cfg)
			if err != nil {
				return err
			}

			if sf != nil {
				return genString(o, sf, *a, *b, *skip)
			}

			return genBinary(o, bf, *a, *b, *skip)
		},
	}
}

func genString(o *IO, f *fraci.StringFactory, a, b string, skip int) error {
	if skip == 0 {
		key, err := f.KeyBetween(fraci.StringKey(a), fraci.StringKey(b))
		if err != nil {
			return err
		}

		o.Println(string(key))

		return nil
	}

	seq := f.GenerateKeyBetween(fraci.StringKey(a), fraci.StringKey(b), skip)

	key, ok, err := seq.Next()
	if err != nil {
		return err
	}

	if !ok {
		return fmt.Errorf("%w", fraci.ErrMaxLengthExceeded)
	}

	o.Println(string(key))

	return nil
}

func genBinary(o *IO, f *fraci.BinaryFactory, a, b string, skip int) error {
	aBytes, err := decodeHexKey(a)
	if err != nil {
		return err
	}

	bBytes, err := decodeHexKey(b)
	if err != nil {
		return err
	}

	if skip == 0 {
		key, err := f.KeyBetween(aBytes, bBytes)
		if err != nil {
			return err
		}

		o.Println(hex.EncodeToString(key))

		return nil
	}

	seq := f.GenerateKeyBetween(aBytes, bBytes, skip)

	key, ok, err := seq.Next()
	if err != nil {
		return err
	}

	if !ok {
		return fmt.Errorf("%w", fraci.ErrMaxLengthExceeded)
	}

	o.Println(hex.EncodeToString(key))

	return nil
}

func decodeHexKey(s string) (fraci.BinaryKey, error) {
	if s == "" {
		return nil, nil
	}

	b, err := hex.DecodeString(s)
	if err != nil {
		return nil, fmt.Errorf("fraci: invalid hex key %q: %w", s, err)
	}

	return fraci.BinaryKey(b), nil
}
