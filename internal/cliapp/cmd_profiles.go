package cliapp

import (
	"context"
	"errors"
	"fmt"

	flag "github.com/spf13/pflag"
)

// ProfilesCmd returns the "profiles" command: list or save named
// string-mode alphabets in the user's profile file.
func ProfilesCmd(env []string) *Command {
	fs := flag.NewFlagSet("profiles", flag.ContinueOnError)
	digitBase := fs.String("digit-base", "", "Digit alphabet to save")
	lengthBase := fs.String("length-base", "", "Length-marker alphabet to save")

	return &Command{
		Flags: fs,
		Usage: "profiles list|save <name> [--digit-base ... --length-base ...]",
		Short: "List or save named alphabet profiles",
		Exec: func(_ context.Context, o *IO, args []string) error {
			store := NewProfileStore(DefaultProfilePath(env))

			if len(args) == 0 {
				return errors.New("fraci: profiles requires a subcommand: list or save")
			}

			switch args[0] {
			case "list":
				return profilesList(o, store)
			case "save":
				if len(args) < 2 {
					return errors.New("fraci: profiles save requires a name")
				}

				return profilesSave(store, args[1], *digitBase, *lengthBase)
			default:
				return fmt.Errorf("fraci: unknown profiles subcommand: %s", args[0])
			}
		},
	}
}

func profilesList(o *IO, store *ProfileStore) error {
	profiles, err := store.List()
	if err != nil {
		return err
	}

	rows := make([][]string, len(profiles))
	for i, p := range profiles {
		rows[i] = []string{p.Name, p.DigitBase, p.LengthBase}
	}

	o.Printf("%s", renderTable([]string{"NAME", "DIGIT BASE", "LENGTH BASE"}, rows))

	return nil
}

func profilesSave(store *ProfileStore, name, digitBase, lengthBase string) error {
	if digitBase == "" || lengthBase == "" {
		return errors.New("fraci: profiles save requires --digit-base and --length-base")
	}

	return store.Save(Profile{Name: name, DigitBase: digitBase, LengthBase: lengthBase})
}
