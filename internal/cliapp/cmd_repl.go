package cliapp

import (
	"context"
	"encoding/hex"
	"errors"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/peterh/liner"
	flag "github.com/spf13/pflag"

	"github.com/kanbanly/fraci"
)

// ReplCmd returns the "repl" command: an interactive session for trying
// out key generation against cfg's resolved medium, one bound pair at a
// time, with readline-style history.
func ReplCmd(cfg Config) *Command {
	fs := flag.NewFlagSet("repl", flag.ContinueOnError)
	historyPath := fs.String("history", defaultHistoryPath(), "Path to the REPL history file")

	return &Command{
		Flags: fs,
		Usage: "repl [--history path]",
		Short: "Interactive session for generating keys",
		Exec: func(_ context.Context, o *IO, _ []string) error {
			return runRepl(o, cfg, *historyPath)
		},
	}
}

func defaultHistoryPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}

	return filepath.Join(home, ".config", "fraci", "repl_history")
}

func runRepl(o *IO, cfg Config, historyPath string) error {
	bf, sf, err := factories(cfg)
	if err != nil {
		return err
	}

	line := liner.NewLiner()
	defer line.Close()

	line.SetCtrlCAborts(true)

	if historyPath != "" {
		if f, err := os.Open(historyPath); err == nil { //nolint:gosec // user-chosen path
			_, _ = line.ReadHistory(f)
			_ = f.Close()
		}
	}

	o.Println("fraci repl — commands: between <a> <b> | nbetween <a> <b> <n> | quit")

	for {
		input, err := line.Prompt("fraci> ")
		if err != nil {
			if errors.Is(err, liner.ErrPromptAborted) || errors.Is(err, io.EOF) {
				break
			}

			return err
		}

		input = strings.TrimSpace(input)
		if input == "" {
			continue
		}

		line.AppendHistory(input)

		if input == "quit" || input == "exit" {
			break
		}

		if err := replEval(o, bf, sf, input); err != nil {
			o.ErrPrintln("error:", err)
		}
	}

	if historyPath != "" {
		if err := os.MkdirAll(filepath.Dir(historyPath), 0o750); err == nil {
			if f, err := os.Create(historyPath); err == nil { //nolint:gosec // user-chosen path
				_, _ = line.WriteHistory(f)
				_ = f.Close()
			}
		}
	}

	return nil
}

func replEval(o *IO, bf *fraci.BinaryFactory, sf *fraci.StringFactory, input string) error {
	fields := strings.Fields(input)
	if len(fields) == 0 {
		return nil
	}

	switch fields[0] {
	case "between":
		if len(fields) != 3 {
			return errors.New("usage: between <a> <b>")
		}

		return replBetween(o, bf, sf, replBound(fields[1]), replBound(fields[2]))
	case "nbetween":
		if len(fields) != 4 {
			return errors.New("usage: nbetween <a> <b> <n>")
		}

		n, err := strconv.Atoi(fields[3])
		if err != nil {
			return errors.New("n must be an integer")
		}

		return replNBetween(o, bf, sf, replBound(fields[1]), replBound(fields[2]), n)
	default:
		return errors.New("unknown command: " + fields[0])
	}
}

// replBound lets the REPL user spell the absent bound as "-" since an
// empty shell argument is awkward to type positionally.
func replBound(s string) string {
	if s == "-" {
		return ""
	}

	return s
}

func replBetween(o *IO, bf *fraci.BinaryFactory, sf *fraci.StringFactory, a, b string) error {
	if sf != nil {
		key, err := sf.KeyBetween(fraci.StringKey(a), fraci.StringKey(b))
		if err != nil {
			return err
		}

		o.Println(string(key))

		return nil
	}

	aBytes, err := decodeHexKey(a)
	if err != nil {
		return err
	}

	bBytes, err := decodeHexKey(b)
	if err != nil {
		return err
	}

	key, err := bf.KeyBetween(aBytes, bBytes)
	if err != nil {
		return err
	}

	o.Println(hex.EncodeToString(key))

	return nil
}

func replNBetween(o *IO, bf *fraci.BinaryFactory, sf *fraci.StringFactory, a, b string, n int) error {
	if sf != nil {
		keys, err := sf.NKeysBetween(fraci.StringKey(a), fraci.StringKey(b), n)
		if err != nil {
			return err
		}

		for _, k := range keys {
			o.Println(string(k))
		}

		return nil
	}

	aBytes, err := decodeHexKey(a)
	if err != nil {
		return err
	}

	bBytes, err := decodeHexKey(b)
	if err != nil {
		return err
	}

	keys, err := bf.NKeysBetween(aBytes, bBytes, n)
	if err != nil {
		return err
	}

	for _, k := range keys {
		o.Println(hex.EncodeToString(k))
	}

	return nil
}
