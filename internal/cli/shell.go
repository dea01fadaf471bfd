package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
	"github.com/peterh/liner"

	"github.com/calvinalkan/bookshelf/internal/book"

	flag "github.com/spf13/pflag"
)

const shellPrompt = "bk> "

// lineReader is the part of [liner.State] the shell needs.
type lineReader interface {
	Prompt(prompt string) (string, error)
	AppendHistory(item string)
	Close() error
}

// ShellCmd returns the shell command. newCommands builds the command set
// for each line, so flags parsed on one line never leak into the next.
func ShellCmd(store *book.Store, in io.Reader, env map[string]string, newCommands func() []*Command) *Command {
	return &Command{
		Flags: flag.NewFlagSet("shell", flag.ContinueOnError),
		Usage: "shell",
		Short: "Interactive session",
		Long: `Start an interactive session. Every command is available without the
"bk" prefix; quote titles that contain spaces. Type 'exit' to quit.`,
		Exec: func(ctx context.Context, o *IO, _ []string) error {
			sh := &shell{
				store:       store,
				env:         env,
				newCommands: newCommands,
				session:     uuid.NewString(),
			}

			return sh.run(ctx, o, in)
		},
	}
}

type shell struct {
	store       *book.Store
	env         map[string]string
	newCommands func() []*Command
	session     string
	history     string
}

func (sh *shell) run(ctx context.Context, o *IO, in io.Reader) error {
	reader := sh.openReader(o, in)
	defer reader.Close()

	o.Printf("bk shell (session %s)\n", sh.session)
	o.Println("Collection:", sh.store.Path())
	o.Println("Type 'help' for available commands.")
	o.Println()

	for ctx.Err() == nil {
		line, err := reader.Prompt(shellPrompt)
		if err != nil {
			if errors.Is(err, liner.ErrPromptAborted) || errors.Is(err, io.EOF) {
				o.Println("\nBye!")

				break
			}

			return fmt.Errorf("reading input: %w", err)
		}

		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}

		reader.AppendHistory(line)

		args, err := splitArgs(line)
		if err != nil {
			o.ErrPrintln("error:", err)

			continue
		}

		switch strings.ToLower(args[0]) {
		case "exit", "quit", "q":
			o.Println("Bye!")

			return sh.saveHistory(o, reader)
		case "help", "?":
			sh.printHelp(o)

			continue
		case "shell":
			o.ErrPrintln("error: already in a shell")

			continue
		}

		lineIO := &IO{out: o.out, errOut: o.errOut, prompt: reader.Prompt}
		_ = dispatch(ctx, lineIO, sh.newCommands(), args)
	}

	return sh.saveHistory(o, reader)
}

// openReader uses liner on the process's own stdin and a plain line reader
// for anything else (pipes in tests, embedded use).
func (sh *shell) openReader(o *IO, in io.Reader) lineReader {
	if f, ok := in.(*os.File); ok && f == os.Stdin {
		state := liner.NewLiner()
		state.SetCtrlCAborts(true)
		state.SetCompleter(sh.complete)

		sh.history = historyFile(sh.env)
		if sh.history != "" {
			if f, err := os.Open(sh.history); err == nil {
				_, _ = state.ReadHistory(f)
				_ = f.Close()
			}
		}

		return &linerReader{State: state}
	}

	if in == nil {
		in = strings.NewReader("")
	}

	return &plainReader{next: readerPrompt(bufio.NewReader(in), o.out)}
}

func (sh *shell) saveHistory(o *IO, reader lineReader) error {
	lr, ok := reader.(*linerReader)
	if !ok || sh.history == "" {
		return nil
	}

	err := os.MkdirAll(filepath.Dir(sh.history), 0o755)
	if err == nil {
		var f *os.File

		f, err = os.Create(sh.history)
		if err == nil {
			_, err = lr.WriteHistory(f)
			_ = f.Close()
		}
	}

	if err != nil {
		o.Warn("cannot save shell history: "+err.Error(), "check permissions on "+sh.history)
	}

	return nil
}

func (sh *shell) complete(line string) []string {
	var out []string

	for _, c := range sh.newCommands() {
		if strings.HasPrefix(c.Name(), line) {
			out = append(out, c.Name()+" ")
		}
	}

	// Complete titles after rm/update.
	for _, prefix := range []string{"rm ", "update "} {
		rest, ok := strings.CutPrefix(line, prefix)
		if !ok {
			continue
		}

		for _, title := range sh.store.Titles() {
			if strings.HasPrefix(strings.ToLower(title), strings.ToLower(rest)) {
				out = append(out, prefix+quoteArg(title))
			}
		}
	}

	return out
}

func (sh *shell) printHelp(o *IO) {
	o.Println("Commands:")

	for _, c := range sh.newCommands() {
		o.Println(c.HelpLine())
	}

	o.Println(fmt.Sprintf("  %-32s %s", "help", "Show this help"))
	o.Println(fmt.Sprintf("  %-32s %s", "exit", "Leave the shell"))
}

// historyFile returns $XDG_STATE_HOME/bk/history, falling back to
// ~/.bk_history. Empty if neither variable is set.
func historyFile(env map[string]string) string {
	if state := env["XDG_STATE_HOME"]; state != "" {
		return filepath.Join(state, "bk", "history")
	}

	if home := env["HOME"]; home != "" {
		return filepath.Join(home, ".bk_history")
	}

	return ""
}

func quoteArg(s string) string {
	if !strings.ContainsAny(s, " \t'\"\\") {
		return s
	}

	return "'" + strings.ReplaceAll(s, "'", `'\''`) + "'"
}

type linerReader struct {
	*liner.State
}

type plainReader struct {
	next func(string) (string, error)
}

func (r *plainReader) Prompt(prompt string) (string, error) { return r.next(prompt) }
func (r *plainReader) AppendHistory(string)                 {}
func (r *plainReader) Close() error                         { return nil }
