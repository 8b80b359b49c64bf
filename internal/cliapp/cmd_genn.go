package cliapp

import (
	"context"
	"encoding/hex"
	"strings"

	flag "github.com/spf13/pflag"

	"github.com/kanbanly/fraci"
)

// GenNCmd returns the "genn" command: n keys in ascending order strictly
// between two bounds.
func GenNCmd(cfg Config) *Command {
	fs := flag.NewFlagSet("genn", flag.ContinueOnError)
	a := fs.String("a", "", "Lower bound key (empty for none)")
	b := fs.String("b", "", "Upper bound key (empty for none)")
	n := fs.IntP("n", "n", 1, "Number of keys to generate")

	return &Command{
		Flags: fs,
		Usage: "genn -n count [--a key] [--b key]",
		Short: "Generate n keys strictly between --a and --b",
		Exec: func(_ context.Context, o *IO, _ []string) error {
			bf, sf, err := factories(cfg)
			if err != nil {
				return err
			}

			if sf != nil {
				keys, err := sf.NKeysBetween(fraci.StringKey(*a), fraci.StringKey(*b), *n)
				if err != nil {
					return err
				}

				strs := make([]string, len(keys))
				for i, k := range keys {
					strs[i] = string(k)
				}

				o.Println(strings.Join(strs, "\n"))

				return nil
			}

			aBytes, err := decodeHexKey(*a)
			if err != nil {
				return err
			}

			bBytes, err := decodeHexKey(*b)
			if err != nil {
				return err
			}

			keys, err := bf.NKeysBetween(aBytes, bBytes, *n)
			if err != nil {
				return err
			}

			strs := make([]string, len(keys))
			for i, k := range keys {
				strs[i] = hex.EncodeToString(k)
			}

			o.Println(strings.Join(strs, "\n"))

			return nil
		},
	}
}
