package cliapp

import (
	"fmt"

	"github.com/kanbanly/fraci"
)

// factories resolves cfg into exactly one usable factory; the other return
// value is nil. Commands branch on which one is non-nil.
func factories(cfg Config) (*fraci.BinaryFactory, *fraci.StringFactory, error) {
	switch cfg.Mode {
	case "", "string":
		f, err := fraci.NewStringFactory(fraci.StringOptions{
			DigitBase:  []rune(cfg.DigitBase),
			LengthBase: []rune(cfg.LengthBase),
			MaxLength:  cfg.MaxLength,
			MaxRetries: cfg.MaxRetries,
		})
		if err != nil {
			return nil, nil, err
		}

		return nil, f, nil
	case "binary":
		f, err := fraci.NewBinaryFactory(fraci.BinaryOptions{
			MaxLength:  cfg.MaxLength,
			MaxRetries: cfg.MaxRetries,
		})
		if err != nil {
			return nil, nil, err
		}

		return f, nil, nil
	default:
		return nil, nil, fmt.Errorf("fraci: unknown mode %q (want binary or string)", cfg.Mode)
	}
}
