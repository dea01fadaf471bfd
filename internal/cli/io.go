package cli

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

// IO handles command output and the occasional question back to the user.
type IO struct {
	out      io.Writer
	errOut   io.Writer
	prompt   func(string) (string, error)
	warnings []string
	started  bool
}

// NewIO creates a new IO instance. Answers to [IO.Confirm] are read line by
// line from in; a nil in answers every question with EOF.
func NewIO(in io.Reader, out, errOut io.Writer) *IO {
	o := &IO{out: out, errOut: errOut}

	if in != nil {
		o.prompt = readerPrompt(bufio.NewReader(in), out)
	}

	return o
}

// readerPrompt prints the question to out and reads one line from r.
func readerPrompt(r *bufio.Reader, out io.Writer) func(string) (string, error) {
	return func(question string) (string, error) {
		_, _ = fmt.Fprint(out, question)

		line, err := r.ReadString('\n')
		if err != nil && line == "" {
			return "", err
		}

		return strings.TrimRight(line, "\r\n"), nil
	}
}

// Warn adds a warning.
//
// Parameters:
//   - issue: what went wrong
//   - action: what the user should do about it
//
// Warnings are printed to stderr at both the START and END of output,
// ensuring visibility regardless of truncation or piping (head/tail).
// Any warnings cause exit code 1 to signal attention is needed.
func (o *IO) Warn(issue string, action string) {
	o.warnings = append(o.warnings, fmt.Sprintf("%s: %s", issue, action))
}

// Println writes to stdout. On first call, any collected warnings
// are printed to stderr first.
func (o *IO) Println(a ...any) {
	o.flushWarningsStart()
	_, _ = fmt.Fprintln(o.out, a...)
}

// Printf writes formatted output to stdout. On first call, any collected
// warnings are printed to stderr first.
func (o *IO) Printf(format string, a ...any) {
	o.flushWarningsStart()
	_, _ = fmt.Fprintf(o.out, format, a...)
}

// ErrPrintln writes to stderr.
func (o *IO) ErrPrintln(a ...any) {
	_, _ = fmt.Fprintln(o.errOut, a...)
}

// Confirm asks a yes/no question. Only "y" or "yes" (any case) count as yes;
// EOF counts as no.
func (o *IO) Confirm(question string) bool {
	if o.prompt == nil {
		return false
	}

	o.flushWarningsStart()

	answer, err := o.prompt(question + " [y/N] ")
	if err != nil {
		return false
	}

	switch strings.ToLower(strings.TrimSpace(answer)) {
	case "y", "yes":
		return true
	default:
		return false
	}
}

// Finish prints warnings to stderr and returns exit code.
// Returns 1 if any warnings, 0 otherwise.
func (o *IO) Finish() int {
	// If no output happened but we have warnings, print them at "start" position
	o.flushWarningsStart()

	// Always print at end
	for _, w := range o.warnings {
		_, _ = fmt.Fprintln(o.errOut, "warning:", w)
	}

	if len(o.warnings) > 0 {
		return 1
	}

	return 0
}

func (o *IO) flushWarningsStart() {
	if !o.started && len(o.warnings) > 0 {
		for _, w := range o.warnings {
			_, _ = fmt.Fprintln(o.errOut, "warning:", w)
		}

		o.started = true
	}
}
