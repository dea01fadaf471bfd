// Package cli implements the bk command line: global flag handling,
// configuration loading, and one [Command] per store operation.
package cli

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/calvinalkan/bookshelf/internal/book"
	"github.com/calvinalkan/bookshelf/internal/fs"

	flag "github.com/spf13/pflag"
)

// Run is the main entry point. Returns exit code.
//
// sigCh, if non-nil, cancels the command context on the first signal.
func Run(in io.Reader, out io.Writer, errOut io.Writer, args []string, env map[string]string, sigCh <-chan os.Signal) int {
	globals := flag.NewFlagSet("bk", flag.ContinueOnError)
	globals.SetInterspersed(false)
	globals.SetOutput(&strings.Builder{})

	workDir := globals.StringP("cwd", "C", "", "Run as if started in `dir`")
	configPath := globals.StringP("config", "c", "", "Use specified config `file`")
	filePath := globals.String("file", "", "Collection `file` (overrides config)")
	help := globals.BoolP("help", "h", false, "Show help")

	var rest []string
	if len(args) > 1 {
		rest = args[1:]
	}

	if err := globals.Parse(rest); err != nil {
		fprintln(errOut, "error:", err)
		printUsage(errOut, globals, nil)

		return 1
	}

	cfg, err := book.LoadConfig(book.LoadConfigInput{
		WorkDirOverride: *workDir,
		ConfigPath:      *configPath,
		FileOverride:    *filePath,
		HasFileOverride: globals.Changed("file"),
		Env:             env,
	})
	if err != nil {
		fprintln(errOut, "error:", err)
		printUsage(errOut, globals, nil)

		return 1
	}

	store := book.Open(fs.NewReal(), cfg.FileAbs)
	commands := allCommands(&cfg, store, in, env)

	if *help || globals.NArg() == 0 {
		printUsage(out, globals, commands)

		return 0
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	if sigCh != nil {
		go func() {
			select {
			case <-sigCh:
				cancel()
			case <-ctx.Done():
			}
		}()
	}

	return dispatch(ctx, NewIO(in, out, errOut), commands, globals.Args())
}

// dispatch runs the command named by args[0]. Returns exit code.
func dispatch(ctx context.Context, o *IO, commands []*Command, args []string) int {
	name := args[0]

	cmd := findCommand(commands, name)
	if cmd == nil {
		o.ErrPrintln("error: unknown command:", name)

		return 1
	}

	if code := cmd.Run(ctx, o, args[1:]); code != 0 {
		return code
	}

	return o.Finish()
}

func findCommand(commands []*Command, name string) *Command {
	for _, c := range commands {
		if c.Name() == name {
			return c
		}
	}

	return nil
}

// storeCommands builds fresh commands over store. Flag sets keep state
// between parses, so the shell calls this once per line.
func storeCommands(cfg *book.Config, store *book.Store) []*Command {
	return []*Command{
		AddCmd(store),
		RemoveCmd(store),
		SearchCmd(store),
		UpdateCmd(store),
		LsCmd(store),
		StatsCmd(store),
		PrintConfigCmd(cfg, store),
	}
}

func allCommands(cfg *book.Config, store *book.Store, in io.Reader, env map[string]string) []*Command {
	newCommands := func() []*Command { return storeCommands(cfg, store) }

	return append(newCommands(), ShellCmd(store, in, env, newCommands))
}

// joinArgs treats all positional arguments as one value, so
// `bk rm The Hobbit` and `bk rm "The Hobbit"` mean the same thing.
func joinArgs(args []string) string {
	return strings.Join(args, " ")
}

func fprintln(w io.Writer, a ...any) {
	_, _ = fmt.Fprintln(w, a...)
}

func printUsage(w io.Writer, globals *flag.FlagSet, commands []*Command) {
	fprintln(w, "bk - personal book collection tracker")
	fprintln(w)
	fprintln(w, "Usage: bk [flags] <command> [args]")
	fprintln(w)
	fprintln(w, "Global flags:")

	var buf strings.Builder
	globals.SetOutput(&buf)
	globals.PrintDefaults()
	globals.SetOutput(&strings.Builder{})
	_, _ = io.WriteString(w, buf.String())

	if len(commands) == 0 {
		return
	}

	fprintln(w)
	fprintln(w, "Commands:")

	for _, c := range commands {
		fprintln(w, c.HelpLine())
	}

	fprintln(w)
	fprintln(w, "Run 'bk <command> --help' for command flags.")
}
