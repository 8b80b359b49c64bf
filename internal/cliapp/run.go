package cliapp

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	flag "github.com/spf13/pflag"
)

// Run is the fraci CLI entry point. Returns the process exit code.
func Run(out, errOut io.Writer, args []string, env []string, sigCh <-chan os.Signal) int {
	globalFlags := flag.NewFlagSet("fraci", flag.ContinueOnError)
	globalFlags.SetInterspersed(false)
	globalFlags.SetOutput(&strings.Builder{})

	flagHelp := globalFlags.BoolP("help", "h", false, "Show help")
	flagCwd := globalFlags.StringP("cwd", "C", "", "Run as if started in `dir`")
	flagConfig := globalFlags.StringP("config", "c", "", "Use specified config `file`")
	flagMode := globalFlags.String("mode", "", "Key medium: binary or string")
	flagDigitBase := globalFlags.String("digit-base", "", "Digit alphabet (string mode)")
	flagLengthBase := globalFlags.String("length-base", "", "Length-marker alphabet (string mode)")
	flagProfile := globalFlags.String("profile", "", "Named alphabet profile (string mode)")
	flagMaxLength := globalFlags.Int("max-length", 0, "Maximum encoded key length")
	flagMaxRetries := globalFlags.Int("max-retries", 0, "Maximum conflict-suffix retries")

	if err := globalFlags.Parse(args[1:]); err != nil {
		fprintln(errOut, "error:", err)

		return 1
	}

	workDir := *flagCwd
	if workDir == "" {
		wd, err := os.Getwd()
		if err != nil {
			fprintln(errOut, "error:", err)

			return 1
		}

		workDir = wd
	}

	overrides := Config{
		Mode:       *flagMode,
		DigitBase:  *flagDigitBase,
		LengthBase: *flagLengthBase,
		MaxLength:  *flagMaxLength,
		MaxRetries: *flagMaxRetries,
	}

	if *flagProfile != "" {
		store := NewProfileStore(DefaultProfilePath(env))

		p, ok, err := store.Get(*flagProfile)
		if err != nil {
			fprintln(errOut, "error:", err)

			return 1
		}

		if !ok {
			fprintln(errOut, "error: no such profile:", *flagProfile)

			return 1
		}

		overrides.DigitBase = p.DigitBase
		overrides.LengthBase = p.LengthBase
		overrides.Mode = "string"
	}

	cfg, err := LoadConfig(workDir, *flagConfig, overrides, env)
	if err != nil {
		fprintln(errOut, "error:", err)

		return 1
	}

	commands := allCommands(cfg, env)

	commandMap := make(map[string]*Command, len(commands))
	for _, cmd := range commands {
		commandMap[cmd.Name()] = cmd
	}

	commandAndArgs := globalFlags.Args()

	if *flagHelp || len(commandAndArgs) == 0 {
		printUsage(out, commands)

		return 0
	}

	cmd, ok := commandMap[commandAndArgs[0]]
	if !ok {
		fprintln(errOut, "error: unknown command:", commandAndArgs[0])
		printUsage(errOut, commands)

		return 1
	}

	cmdIO := NewIO(out, errOut)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	done := make(chan int, 1)

	go func() {
		done <- cmd.Run(ctx, cmdIO, commandAndArgs[1:])
	}()

	select {
	case code := <-done:
		return code
	case <-sigCh:
		fprintln(errOut, "interrupted")
		cancel()

		select {
		case <-done:
		case <-time.After(2 * time.Second):
		}

		return 130
	}
}

func allCommands(cfg Config, env []string) []*Command {
	return []*Command{
		GenCmd(cfg),
		GenNCmd(cfg),
		ProfilesCmd(env),
		ReplCmd(cfg),
	}
}

func printUsage(w io.Writer, commands []*Command) {
	fprintln(w, "fraci — fractional-index key generator")
	fprintln(w)
	fprintln(w, "Usage: fraci [global flags] <command> [args]")
	fprintln(w)
	fprintln(w, "Commands:")

	for _, c := range commands {
		fprintln(w, "  ", c.Usage, "-", c.Short)
	}
}

func fprintln(w io.Writer, a ...any) {
	_, _ = fmt.Fprintln(w, a...)
}
